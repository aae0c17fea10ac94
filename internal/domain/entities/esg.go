package entities

import "time"

// Categorias de pilares ESG
const (
	CategoryEnvironmental = "environmental"
	CategorySocial        = "social"
	CategoryGovernance    = "governance"
)

// ESGChecklist representa uma pergunta do catálogo ESG (dado de referência,
// criado via seed e raramente alterado)
type ESGChecklist struct {
	ID          int       `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	Title       string    `json:"title" gorm:"column:title"`
	Description string    `json:"description" gorm:"column:description"`
	Category    string    `json:"category" gorm:"column:category"`
	MaxPoints   int       `json:"max_points" gorm:"column:maxPoints"`
	IsActive    bool      `json:"is_active" gorm:"column:isActive;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:createdAt"`
}

func (ESGChecklist) TableName() string {
	return "esg_checklists"
}

// ESGResponse representa a resposta de uma fazenda a uma pergunta do checklist.
// Única por (farmId, checklistId): responder novamente sobrescreve a anterior.
type ESGResponse struct {
	ID          string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	ChecklistID int       `json:"checklist_id" gorm:"column:checklistId;uniqueIndex:idx_esg_responses_farm_checklist,priority:2"`
	FarmID      int       `json:"farm_id" gorm:"column:farmId;uniqueIndex:idx_esg_responses_farm_checklist,priority:1"`
	Response    bool      `json:"response" gorm:"column:response"`
	// Crédito binário: 0 ou maxPoints. A coluna aceita valores intermediários
	// para crédito parcial futuro.
	PointsObtained int       `json:"points_obtained" gorm:"column:pointsObtained"`
	EvidenceURL    string    `json:"evidence_url,omitempty" gorm:"column:evidenceUrl"`
	Notes          string    `json:"notes,omitempty" gorm:"column:notes"`
	RespondedAt    time.Time `json:"responded_at" gorm:"column:respondedAt"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updatedAt"`

	// Relações
	Checklist ESGChecklist `json:"checklist,omitempty" gorm:"foreignKey:ChecklistID"`
}

func (ESGResponse) TableName() string {
	return "esg_responses"
}
