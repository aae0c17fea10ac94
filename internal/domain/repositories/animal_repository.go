package repositories

import (
	"fmt"
	"time"

	"github.com/AgroVista/agro-vista-api/internal/domain/entities"
	"github.com/AgroVista/agro-vista-api/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IAnimalRepository interface {
	GetAnimalsByFarm(farmID int, status string) ([]entities.Animal, error)
	GetAnimalByID(id int) (*entities.Animal, error)
	CountActiveByFarm(farmID int) (int64, error)
	CreateWeighing(weighing *entities.Weighing) error
	GetWeighingsByAnimal(animalID int) ([]entities.Weighing, error)
	GetLatestWeighing(animalID int) (*entities.Weighing, error)
	UpdateCurrentWeight(animalID, weight int) error
}

type animalRepository struct {
	db *gorm.DB
}

func NewAnimalRepository(db *gorm.DB) IAnimalRepository {
	return &animalRepository{db}
}

// GetAnimalsByFarm retorna os animais de uma fazenda, com filtro opcional de status
func (r *animalRepository) GetAnimalsByFarm(farmID int, status string) ([]entities.Animal, error) {
	query := r.db.Model(&entities.Animal{}).Where(`"farmId" = ?`, farmID)

	if status != "" {
		query = query.Where("status = ?", status)
	}

	var animals []entities.Animal
	result := query.Order(`"tagId"`).Find(&animals)
	if result.Error != nil {
		return nil, fmt.Errorf("erro ao buscar animais da fazenda %d: %w", farmID, result.Error)
	}
	return animals, nil
}

// GetAnimalByID retorna um animal pelo id, ou nil quando não existe
func (r *animalRepository) GetAnimalByID(id int) (*entities.Animal, error) {
	var animal entities.Animal
	result := r.db.First(&animal, "id = ?", id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &animal, nil
}

// CountActiveByFarm conta os animais ativos de uma fazenda
func (r *animalRepository) CountActiveByFarm(farmID int) (int64, error) {
	var count int64
	result := r.db.Model(&entities.Animal{}).
		Where(`"farmId" = ? AND status = ?`, farmID, entities.AnimalActive).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// CreateWeighing registra uma nova pesagem
func (r *animalRepository) CreateWeighing(weighing *entities.Weighing) error {
	if weighing.ID == "" {
		weighing.ID = uuid.New().String()
	}
	if weighing.CreatedAt.IsZero() {
		weighing.CreatedAt = time.Now().In(utils.GetBrasilLocation())
	}
	if err := r.db.Create(weighing).Error; err != nil {
		return fmt.Errorf("erro ao registrar pesagem: %w", err)
	}
	return nil
}

// GetWeighingsByAnimal retorna o histórico de pesagens, mais recentes primeiro
func (r *animalRepository) GetWeighingsByAnimal(animalID int) ([]entities.Weighing, error) {
	var weighings []entities.Weighing
	result := r.db.Model(&entities.Weighing{}).
		Where(`"animalId" = ?`, animalID).
		Order(`date DESC, "createdAt" DESC`).
		Find(&weighings)
	if result.Error != nil {
		return nil, fmt.Errorf("erro ao buscar pesagens do animal %d: %w", animalID, result.Error)
	}
	return weighings, nil
}

// GetLatestWeighing retorna a pesagem mais recente do animal, ou nil quando não há pesagem
func (r *animalRepository) GetLatestWeighing(animalID int) (*entities.Weighing, error) {
	var weighing entities.Weighing
	result := r.db.Model(&entities.Weighing{}).
		Where(`"animalId" = ?`, animalID).
		Order(`date DESC, "createdAt" DESC`).
		First(&weighing)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &weighing, nil
}

// UpdateCurrentWeight atualiza o peso atual do animal após uma pesagem
func (r *animalRepository) UpdateCurrentWeight(animalID, weight int) error {
	result := r.db.Model(&entities.Animal{}).
		Where("id = ?", animalID).
		Updates(map[string]interface{}{
			"currentWeight": weight,
			"updatedAt":     time.Now().In(utils.GetBrasilLocation()),
		})
	if result.Error != nil {
		return fmt.Errorf("erro ao atualizar peso do animal %d: %w", animalID, result.Error)
	}
	return nil
}
