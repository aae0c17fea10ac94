package repositories

import (
	"fmt"

	"github.com/AgroVista/agro-vista-api/internal/domain/entities"
	"gorm.io/gorm"
)

type IFarmRepository interface {
	GetFarms() ([]entities.Farm, error)
	GetFarmByID(id int) (*entities.Farm, error)
}

type farmRepository struct {
	db *gorm.DB
}

func NewFarmRepository(db *gorm.DB) IFarmRepository {
	return &farmRepository{db}
}

// GetFarms retorna todas as fazendas cadastradas
func (r *farmRepository) GetFarms() ([]entities.Farm, error) {
	var farms []entities.Farm
	result := r.db.Model(&entities.Farm{}).Order("name").Find(&farms)
	if result.Error != nil {
		return nil, fmt.Errorf("erro ao buscar fazendas: %w", result.Error)
	}
	return farms, nil
}

// GetFarmByID retorna uma fazenda pelo id, ou nil quando não existe
func (r *farmRepository) GetFarmByID(id int) (*entities.Farm, error) {
	var farm entities.Farm
	result := r.db.First(&farm, "id = ?", id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &farm, nil
}
