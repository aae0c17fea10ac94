package repositories

import (
	"fmt"

	"github.com/AgroVista/agro-vista-api/internal/domain/entities"
	"gorm.io/gorm"
)

type IProjectionRepository interface {
	Create(projection *entities.FinancialProjection) error
	GetByFarm(farmID int) ([]entities.FinancialProjection, error)
	Delete(id, farmID int) error
}

type projectionRepository struct {
	db *gorm.DB
}

func NewProjectionRepository(db *gorm.DB) IProjectionRepository {
	return &projectionRepository{db}
}

// Create persiste o snapshot de um cenário de projeção
func (r *projectionRepository) Create(projection *entities.FinancialProjection) error {
	if err := r.db.Create(projection).Error; err != nil {
		return fmt.Errorf("erro ao salvar projeção: %w", err)
	}
	return nil
}

// GetByFarm retorna as projeções salvas de uma fazenda, mais recentes primeiro
func (r *projectionRepository) GetByFarm(farmID int) ([]entities.FinancialProjection, error) {
	var projections []entities.FinancialProjection
	result := r.db.Model(&entities.FinancialProjection{}).
		Where(`"farmId" = ?`, farmID).
		Order(`"createdAt" DESC`).
		Find(&projections)
	if result.Error != nil {
		return nil, fmt.Errorf("erro ao buscar projeções da fazenda %d: %w", farmID, result.Error)
	}
	return projections, nil
}

// Delete remove uma projeção salva. O farmID entra no filtro para impedir
// remoção de registros de outra fazenda.
func (r *projectionRepository) Delete(id, farmID int) error {
	result := r.db.Where(`id = ? AND "farmId" = ?`, id, farmID).
		Delete(&entities.FinancialProjection{})
	if result.Error != nil {
		return fmt.Errorf("erro ao remover projeção %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
