package repositories

import (
	"fmt"

	"github.com/AgroVista/agro-vista-api/internal/domain/entities"
	"gorm.io/gorm"
)

type IBadgeRepository interface {
	Create(badge *entities.Badge) error
	GetLatestByFarm(farmID int) (*entities.Badge, error)
	GetByFarm(farmID int) ([]entities.Badge, error)
}

type badgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) IBadgeRepository {
	return &badgeRepository{db}
}

// Create insere um novo selo. Histórico append-only: nunca atualiza linhas existentes.
func (r *badgeRepository) Create(badge *entities.Badge) error {
	if err := r.db.Create(badge).Error; err != nil {
		return fmt.Errorf("erro ao gravar selo: %w", err)
	}
	return nil
}

// GetLatestByFarm retorna o selo mais recente da fazenda, ou nil quando não há selo
func (r *badgeRepository) GetLatestByFarm(farmID int) (*entities.Badge, error) {
	var badge entities.Badge
	result := r.db.Model(&entities.Badge{}).
		Where(`"farmId" = ?`, farmID).
		Order(`"awardedAt" DESC`).
		First(&badge)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &badge, nil
}

// GetByFarm retorna o histórico completo de selos da fazenda, mais recentes primeiro
func (r *badgeRepository) GetByFarm(farmID int) ([]entities.Badge, error) {
	var badges []entities.Badge
	result := r.db.Model(&entities.Badge{}).
		Where(`"farmId" = ?`, farmID).
		Order(`"awardedAt" DESC`).
		Find(&badges)
	if result.Error != nil {
		return nil, fmt.Errorf("erro ao buscar selos da fazenda %d: %w", farmID, result.Error)
	}
	return badges, nil
}
