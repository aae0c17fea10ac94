package entities

import "time"

// Níveis de selo ESG
const (
	BadgeBronze = "bronze"
	BadgeSilver = "silver"
	BadgeGold   = "gold"
)

// Badge representa um selo ESG concedido a uma fazenda. Histórico append-only:
// cada mudança de nível insere uma nova linha e a mais recente vale para exibição.
type Badge struct {
	ID         int        `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	FarmID     int        `json:"farm_id" gorm:"column:farmId"`
	Level      string     `json:"level" gorm:"column:level"`
	Score      int        `json:"score" gorm:"column:score"`
	AwardedAt  time.Time  `json:"awarded_at" gorm:"column:awardedAt"`
	ValidUntil *time.Time `json:"valid_until,omitempty" gorm:"column:validUntil"`
}

func (Badge) TableName() string {
	return "badges"
}
