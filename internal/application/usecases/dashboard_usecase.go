package usecases

import (
	"fmt"

	"github.com/AgroVista/agro-vista-api/internal/domain/entities"
	"github.com/AgroVista/agro-vista-api/internal/domain/repositories"
)

// DashboardResult representa o snapshot de indicadores de uma fazenda
type DashboardResult struct {
	Farm                entities.Farm   `json:"farm"`
	ESGScore            ESGScore        `json:"esg_score"`
	Badge               *entities.Badge `json:"badge"`
	ActiveAnimals       int64           `json:"active_animals"`
	ChallengePoints     int             `json:"challenge_points"`
	ChallengesCompleted int             `json:"challenges_completed"`
}

// DashboardUseCase agrega os indicadores da fazenda em uma única leitura
type DashboardUseCase struct {
	farmRepo      repositories.IFarmRepository
	esgRepo       repositories.IESGRepository
	badgeRepo     repositories.IBadgeRepository
	animalRepo    repositories.IAnimalRepository
	challengeRepo repositories.IChallengeRepository
}

// NewDashboardUseCase cria uma nova instância de DashboardUseCase
func NewDashboardUseCase(
	farmRepo repositories.IFarmRepository,
	esgRepo repositories.IESGRepository,
	badgeRepo repositories.IBadgeRepository,
	animalRepo repositories.IAnimalRepository,
	challengeRepo repositories.IChallengeRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		farmRepo:      farmRepo,
		esgRepo:       esgRepo,
		badgeRepo:     badgeRepo,
		animalRepo:    animalRepo,
		challengeRepo: challengeRepo,
	}
}

// GetFarmDashboard monta o painel da fazenda: score ESG, selo atual, rebanho
// ativo e avanço nos desafios. Leitura pura de estado, nada é gravado.
func (u *DashboardUseCase) GetFarmDashboard(farmID int) (*DashboardResult, error) {
	farm, err := u.farmRepo.GetFarmByID(farmID)
	if err != nil {
		return nil, err
	}
	if farm == nil {
		return nil, fmt.Errorf("fazenda %d: %w", farmID, ErrFazendaNaoEncontrada)
	}

	checklists, err := u.esgRepo.GetActiveChecklists()
	if err != nil {
		return nil, err
	}

	responses, err := u.esgRepo.GetResponsesByFarm(farmID)
	if err != nil {
		return nil, err
	}

	badge, err := u.badgeRepo.GetLatestByFarm(farmID)
	if err != nil {
		return nil, err
	}

	activeAnimals, err := u.animalRepo.CountActiveByFarm(farmID)
	if err != nil {
		return nil, err
	}

	progress, err := u.challengeRepo.GetProgressByFarm(farmID)
	if err != nil {
		return nil, err
	}

	points := 0
	completed := 0
	for _, p := range progress {
		points += p.PointsEarned
		if p.Completed {
			completed++
		}
	}

	return &DashboardResult{
		Farm:                *farm,
		ESGScore:            ComputeESGScore(checklists, responses),
		Badge:               badge,
		ActiveAnimals:       activeAnimals,
		ChallengePoints:     points,
		ChallengesCompleted: completed,
	}, nil
}
