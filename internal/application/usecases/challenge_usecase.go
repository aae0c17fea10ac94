package usecases

import (
	"fmt"
	"math"
	"time"

	"github.com/AgroVista/agro-vista-api/internal/domain/entities"
	"github.com/AgroVista/agro-vista-api/internal/domain/repositories"
	"github.com/AgroVista/agro-vista-api/internal/utils"
)

// CreateChallengeInput representa os dados de cadastro de um desafio
type CreateChallengeInput struct {
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description" validate:"omitempty,max=2000"`
	Points       int    `json:"points" validate:"required,gt=0"`
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"required,datetime=2006-01-02"`
	TargetMetric string `json:"target_metric" validate:"omitempty,max=100"`
	TargetValue  int    `json:"target_value" validate:"omitempty,gte=0"`
	Category     string `json:"category" validate:"omitempty,oneof=financial esg production management"`
}

// UpdateProgressInput representa a atualização de progresso em um desafio. O
// percentual é derivado do valor atual contra a meta do desafio, nunca enviado
// pelo cliente.
type UpdateProgressInput struct {
	CurrentValue float64 `json:"current_value" validate:"gte=0"`
	PointsEarned int     `json:"points_earned" validate:"gte=0"`
}

// ComputeGoalProgress calcula o percentual de avanço em direção a uma meta,
// limitado a 100. Meta zero resulta em 0, nunca em divisão por zero.
func ComputeGoalProgress(current, target float64) int {
	if target <= 0 {
		return 0
	}
	progress := int(math.Round(current / target * 100))
	if progress > 100 {
		return 100
	}
	if progress < 0 {
		return 0
	}
	return progress
}

// ChallengeUseCase implementa os casos de uso de desafios gamificados
type ChallengeUseCase struct {
	challengeRepo repositories.IChallengeRepository
}

// NewChallengeUseCase cria uma nova instância de ChallengeUseCase
func NewChallengeUseCase(challengeRepo repositories.IChallengeRepository) *ChallengeUseCase {
	return &ChallengeUseCase{
		challengeRepo: challengeRepo,
	}
}

// GetActive retorna os desafios com janela vigente
func (u *ChallengeUseCase) GetActive() ([]entities.Challenge, error) {
	return u.challengeRepo.GetActiveChallenges()
}

// GetAll retorna todos os desafios cadastrados
func (u *ChallengeUseCase) GetAll() ([]entities.Challenge, error) {
	return u.challengeRepo.GetAllChallenges()
}

// GetProgress retorna o progresso da fazenda em todos os desafios
func (u *ChallengeUseCase) GetProgress(farmID int) ([]entities.ChallengeProgress, error) {
	return u.challengeRepo.GetProgressByFarm(farmID)
}

// UpdateProgress recalcula o percentual a partir do valor atual contra a meta
// do desafio. Ao atingir 100 o desafio é concluído; a data da primeira
// conclusão é preservada, e regredir abaixo da meta desfaz a conclusão e limpa
// a data.
func (u *ChallengeUseCase) UpdateProgress(id int, input UpdateProgressInput) error {
	record, err := u.challengeRepo.GetProgressByID(id)
	if err != nil {
		return err
	}

	target := float64(record.Challenge.TargetValue)
	if target <= 0 {
		// Desafio sem meta numérica: o valor informado já é um percentual
		target = 100
	}

	progress := ComputeGoalProgress(input.CurrentValue, target)
	completed := progress >= 100

	var completedAt *time.Time
	if completed {
		if record.Completed && record.CompletedAt != nil {
			completedAt = record.CompletedAt
		} else {
			now := time.Now().In(utils.GetBrasilLocation())
			completedAt = &now
		}
	}

	return u.challengeRepo.UpdateProgress(id, progress, input.PointsEarned, completed, completedAt)
}

// Create cadastra um novo desafio
func (u *ChallengeUseCase) Create(input CreateChallengeInput) (*entities.Challenge, error) {
	startDate, err := parseDate(input.StartDate)
	if err != nil {
		return nil, fmt.Errorf("data de início inválida: %w", err)
	}

	endDate, err := parseDate(input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("data de término inválida: %w", err)
	}

	if endDate.Before(startDate) {
		return nil, fmt.Errorf("data de término anterior à data de início")
	}

	category := input.Category
	if category == "" {
		category = "production"
	}

	challenge := &entities.Challenge{
		Title:        input.Title,
		Description:  input.Description,
		Points:       input.Points,
		StartDate:    startDate,
		EndDate:      endDate,
		TargetMetric: input.TargetMetric,
		TargetValue:  input.TargetValue,
		Category:     category,
		IsActive:     true,
	}

	if err := u.challengeRepo.CreateChallenge(challenge); err != nil {
		return nil, err
	}

	return challenge, nil
}
