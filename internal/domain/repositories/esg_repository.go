package repositories

import (
	"fmt"
	"time"

	"github.com/AgroVista/agro-vista-api/internal/domain/entities"
	"github.com/AgroVista/agro-vista-api/internal/infrastructure/cache"
	"github.com/AgroVista/agro-vista-api/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IESGRepository interface {
	GetActiveChecklists() ([]entities.ESGChecklist, error)
	GetChecklistByID(id int) (*entities.ESGChecklist, error)
	SaveResponse(response *entities.ESGResponse) error
	GetResponsesByFarm(farmID int) ([]entities.ESGResponse, error)
}

type esgRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewESGRepository(db *gorm.DB) IESGRepository {
	return &esgRepository{
		db:    db,
		cache: cache.New(),
	}
}

const checklistCacheKey = "esg:checklists:active"

// GetActiveChecklists retorna o catálogo ativo de perguntas ESG.
// Dado de referência estático: mantido em cache por 10 minutos.
func (r *esgRepository) GetActiveChecklists() ([]entities.ESGChecklist, error) {
	if cached, found := r.cache.Get(checklistCacheKey); found {
		return cached.([]entities.ESGChecklist), nil
	}

	var checklists []entities.ESGChecklist
	result := r.db.Model(&entities.ESGChecklist{}).
		Where(`"isActive" = ?`, true).
		Order("category, id").
		Find(&checklists)
	if result.Error != nil {
		return nil, fmt.Errorf("erro ao buscar checklists ESG: %w", result.Error)
	}

	r.cache.Set(checklistCacheKey, checklists, 10*time.Minute)

	return checklists, nil
}

// GetChecklistByID retorna uma pergunta específica do catálogo
func (r *esgRepository) GetChecklistByID(id int) (*entities.ESGChecklist, error) {
	var checklist entities.ESGChecklist
	result := r.db.First(&checklist, "id = ?", id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &checklist, nil
}

// SaveResponse grava a resposta de uma fazenda a uma pergunta do checklist.
// A resposta é única por (farmId, checklistId): responder de novo sobrescreve.
func (r *esgRepository) SaveResponse(response *entities.ESGResponse) error {
	now := time.Now().In(utils.GetBrasilLocation())

	if response.ID == "" {
		response.ID = uuid.New().String()
	}
	if response.RespondedAt.IsZero() {
		response.RespondedAt = now
	}
	response.UpdatedAt = now

	result := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "farmId"}, {Name: "checklistId"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"response", "pointsObtained", "evidenceUrl", "notes", "updatedAt",
		}),
	}).Create(response)

	if result.Error != nil {
		return fmt.Errorf("erro ao salvar resposta ESG: %w", result.Error)
	}

	return nil
}

// GetResponsesByFarm retorna as respostas atuais de uma fazenda, mais recentes primeiro
func (r *esgRepository) GetResponsesByFarm(farmID int) ([]entities.ESGResponse, error) {
	var responses []entities.ESGResponse
	result := r.db.Model(&entities.ESGResponse{}).
		Where(`"farmId" = ?`, farmID).
		Order(`"respondedAt" DESC`).
		Find(&responses)
	if result.Error != nil {
		return nil, fmt.Errorf("erro ao buscar respostas ESG da fazenda %d: %w", farmID, result.Error)
	}
	return responses, nil
}
