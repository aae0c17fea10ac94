package usecases

import (
	"fmt"
	"sort"
	"time"

	"github.com/AgroVista/agro-vista-api/internal/domain/entities"
	"github.com/AgroVista/agro-vista-api/internal/domain/repositories"
	"github.com/patrickmn/go-cache"
)

// RankingEntry representa a posição de uma fazenda no ranking global
type RankingEntry struct {
	Position            int    `json:"position"`
	FarmID              int    `json:"farm_id"`
	FarmName            string `json:"farm_name"`
	Region              string `json:"region"`
	TotalPoints         int    `json:"total_points"`
	ChallengesCompleted int    `json:"challenges_completed"`
	ESGScore            int    `json:"esg_score"`
	ESGBadge            string `json:"esg_badge"`
}

// RankingUseCase implementa o ranking global de fazendas. O agregado cruza
// todas as fazendas, por isso o resultado fica em cache por alguns minutos.
type RankingUseCase struct {
	farmRepo      repositories.IFarmRepository
	esgRepo       repositories.IESGRepository
	challengeRepo repositories.IChallengeRepository
	cache         *cache.Cache
}

// NewRankingUseCase cria uma nova instância de RankingUseCase
func NewRankingUseCase(
	farmRepo repositories.IFarmRepository,
	esgRepo repositories.IESGRepository,
	challengeRepo repositories.IChallengeRepository,
) *RankingUseCase {
	return &RankingUseCase{
		farmRepo:      farmRepo,
		esgRepo:       esgRepo,
		challengeRepo: challengeRepo,
		cache:         cache.New(5*time.Minute, 10*time.Minute),
	}
}

// GetGlobalRanking monta o ranking por pontuação total (score ESG + pontos de
// desafios), com filtro opcional de região e limite de posições
func (u *RankingUseCase) GetGlobalRanking(region string, limit int) ([]RankingEntry, error) {
	cacheKey := fmt.Sprintf("ranking:%s:%d", region, limit)
	if cached, found := u.cache.Get(cacheKey); found {
		return cached.([]RankingEntry), nil
	}

	farms, err := u.farmRepo.GetFarms()
	if err != nil {
		return nil, err
	}

	// O catálogo é o mesmo para todas as fazendas
	checklists, err := u.esgRepo.GetActiveChecklists()
	if err != nil {
		return nil, err
	}

	entries := make([]RankingEntry, 0, len(farms))
	for _, farm := range farms {
		if region != "" && farm.Region != region {
			continue
		}

		responses, err := u.esgRepo.GetResponsesByFarm(farm.ID)
		if err != nil {
			return nil, err
		}
		esgScore := ComputeESGScore(checklists, responses).Percentage

		progress, err := u.challengeRepo.GetProgressByFarm(farm.ID)
		if err != nil {
			return nil, err
		}

		completed := 0
		totalPoints := esgScore
		for _, p := range progress {
			totalPoints += p.PointsEarned
			if p.Completed {
				completed++
			}
		}

		entries = append(entries, RankingEntry{
			FarmID:              farm.ID,
			FarmName:            farm.Name,
			Region:              farm.Region,
			TotalPoints:         totalPoints,
			ChallengesCompleted: completed,
			ESGScore:            esgScore,
			ESGBadge:            badgeDisplayName(BadgeLevelForScore(esgScore)),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	for i := range entries {
		entries[i].Position = i + 1
	}

	u.cache.Set(cacheKey, entries, cache.DefaultExpiration)

	return entries, nil
}

// badgeDisplayName traduz o nível de selo para o rótulo exibido no ranking
func badgeDisplayName(level string) string {
	switch level {
	case entities.BadgeGold:
		return "Ouro"
	case entities.BadgeSilver:
		return "Prata"
	case entities.BadgeBronze:
		return "Bronze"
	default:
		return "Sem Selo"
	}
}
