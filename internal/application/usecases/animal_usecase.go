package usecases

import (
	"fmt"

	"github.com/AgroVista/agro-vista-api/internal/domain/entities"
	"github.com/AgroVista/agro-vista-api/internal/domain/repositories"
)

// RegisterWeighingInput representa os dados de uma nova pesagem
type RegisterWeighingInput struct {
	Weight int    `json:"weight" validate:"required,gt=0"`
	Date   string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Notes  string `json:"notes" validate:"omitempty,max=2000"`
}

// WeighingResult representa a pesagem registrada e o GMD contra a pesagem anterior
type WeighingResult struct {
	Weighing       entities.Weighing `json:"weighing"`
	GMD            float64           `json:"gmd"`
	PreviousWeight int               `json:"previous_weight,omitempty"`
	DaysBetween    int               `json:"days_between,omitempty"`
}

// ComputeGMD calcula o ganho médio diário em kg/dia entre duas pesagens.
// Intervalo de zero dias resulta em 0, nunca em divisão por zero.
func ComputeGMD(initialWeight, finalWeight, days int) float64 {
	if days == 0 {
		return 0
	}
	return float64(finalWeight-initialWeight) / float64(days)
}

// AnimalUseCase implementa os casos de uso do registro animal
type AnimalUseCase struct {
	animalRepo repositories.IAnimalRepository
}

// NewAnimalUseCase cria uma nova instância de AnimalUseCase
func NewAnimalUseCase(animalRepo repositories.IAnimalRepository) *AnimalUseCase {
	return &AnimalUseCase{
		animalRepo: animalRepo,
	}
}

// GetAnimals retorna os animais de uma fazenda, com filtro opcional de status
func (u *AnimalUseCase) GetAnimals(farmID int, status string) ([]entities.Animal, error) {
	return u.animalRepo.GetAnimalsByFarm(farmID, status)
}

// GetWeighings retorna o histórico de pesagens de um animal
func (u *AnimalUseCase) GetWeighings(animalID int) ([]entities.Weighing, error) {
	return u.animalRepo.GetWeighingsByAnimal(animalID)
}

// RegisterWeighing registra uma pesagem, atualiza o peso atual do animal e
// retorna o GMD em relação à pesagem anterior (0 quando é a primeira pesagem)
func (u *AnimalUseCase) RegisterWeighing(animalID int, input RegisterWeighingInput) (*WeighingResult, error) {
	animal, err := u.animalRepo.GetAnimalByID(animalID)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, fmt.Errorf("animal %d: %w", animalID, ErrAnimalNaoEncontrado)
	}

	date, err := parseDate(input.Date)
	if err != nil {
		return nil, fmt.Errorf("data de pesagem inválida: %w", err)
	}
	if date.IsZero() {
		date = todayInBrasil()
	}

	previous, err := u.animalRepo.GetLatestWeighing(animalID)
	if err != nil {
		return nil, err
	}

	weighing := &entities.Weighing{
		AnimalID: animalID,
		Weight:   input.Weight,
		Date:     date,
		Notes:    input.Notes,
	}

	if err := u.animalRepo.CreateWeighing(weighing); err != nil {
		return nil, err
	}

	if err := u.animalRepo.UpdateCurrentWeight(animalID, input.Weight); err != nil {
		return nil, err
	}

	result := &WeighingResult{Weighing: *weighing}

	if previous != nil {
		days := int(date.Sub(previous.Date).Hours() / 24)
		result.GMD = ComputeGMD(previous.Weight, input.Weight, days)
		result.PreviousWeight = previous.Weight
		result.DaysBetween = days
	}

	return result, nil
}
