package repositories

import (
	"fmt"
	"time"

	"github.com/AgroVista/agro-vista-api/internal/domain/entities"
	"github.com/AgroVista/agro-vista-api/internal/utils"
	"gorm.io/gorm"
)

type IChallengeRepository interface {
	GetActiveChallenges() ([]entities.Challenge, error)
	GetAllChallenges() ([]entities.Challenge, error)
	CreateChallenge(challenge *entities.Challenge) error
	GetProgressByFarm(farmID int) ([]entities.ChallengeProgress, error)
	GetProgressByID(id int) (*entities.ChallengeProgress, error)
	UpdateProgress(id int, progressPercent, pointsEarned int, completed bool, completedAt *time.Time) error
}

type challengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) IChallengeRepository {
	return &challengeRepository{db}
}

// GetActiveChallenges retorna os desafios ativos cuja janela inclui a data atual
func (r *challengeRepository) GetActiveChallenges() ([]entities.Challenge, error) {
	today := time.Now().In(utils.GetBrasilLocation())

	var challenges []entities.Challenge
	result := r.db.Model(&entities.Challenge{}).
		Where(`"isActive" = ? AND "startDate" <= ? AND "endDate" >= ?`, true, today, today).
		Order(`"startDate" DESC`).
		Find(&challenges)
	if result.Error != nil {
		return nil, fmt.Errorf("erro ao buscar desafios ativos: %w", result.Error)
	}
	return challenges, nil
}

// GetAllChallenges retorna todos os desafios cadastrados
func (r *challengeRepository) GetAllChallenges() ([]entities.Challenge, error) {
	var challenges []entities.Challenge
	result := r.db.Model(&entities.Challenge{}).
		Order(`"startDate" DESC`).
		Find(&challenges)
	if result.Error != nil {
		return nil, fmt.Errorf("erro ao buscar desafios: %w", result.Error)
	}
	return challenges, nil
}

// CreateChallenge cadastra um novo desafio
func (r *challengeRepository) CreateChallenge(challenge *entities.Challenge) error {
	if err := r.db.Create(challenge).Error; err != nil {
		return fmt.Errorf("erro ao criar desafio: %w", err)
	}
	return nil
}

// GetProgressByFarm retorna o progresso da fazenda em todos os desafios
func (r *challengeRepository) GetProgressByFarm(farmID int) ([]entities.ChallengeProgress, error) {
	var progress []entities.ChallengeProgress
	result := r.db.Model(&entities.ChallengeProgress{}).
		Preload("Challenge").
		Where(`"farmId" = ?`, farmID).
		Order(`"updatedAt" DESC`).
		Find(&progress)
	if result.Error != nil {
		return nil, fmt.Errorf("erro ao buscar progresso de desafios da fazenda %d: %w", farmID, result.Error)
	}
	return progress, nil
}

// GetProgressByID retorna um registro de progresso com o desafio carregado
func (r *challengeRepository) GetProgressByID(id int) (*entities.ChallengeProgress, error) {
	var progress entities.ChallengeProgress
	result := r.db.Model(&entities.ChallengeProgress{}).
		Preload("Challenge").
		Where("id = ?", id).
		First(&progress)
	if result.Error != nil {
		return nil, result.Error
	}
	return &progress, nil
}

// UpdateProgress atualiza o progresso de um registro de desafio. O completedAt
// é gravado como recebido: nil limpa a coluna quando a conclusão é desfeita.
func (r *challengeRepository) UpdateProgress(id int, progressPercent, pointsEarned int, completed bool, completedAt *time.Time) error {
	updates := map[string]interface{}{
		"progressPercent": progressPercent,
		"pointsEarned":    pointsEarned,
		"completed":       completed,
		"completedAt":     completedAt,
		"updatedAt":       time.Now().In(utils.GetBrasilLocation()),
	}

	result := r.db.Model(&entities.ChallengeProgress{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("erro ao atualizar progresso %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
