package usecases

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/AgroVista/agro-vista-api/internal/domain/entities"
	"github.com/AgroVista/agro-vista-api/internal/domain/repositories"
	"github.com/AgroVista/agro-vista-api/internal/utils"
)

// CategoryScore representa a pontuação obtida em um pilar ESG
type CategoryScore struct {
	Points    int `json:"points"`
	MaxPoints int `json:"max_points"`
}

// ESGScore representa o resultado do cálculo de score ESG de uma fazenda
type ESGScore struct {
	TotalPoints int                      `json:"total_points"`
	MaxPoints   int                      `json:"max_points"`
	Percentage  int                      `json:"percentage"`
	Categories  map[string]CategoryScore `json:"categories"`
}

// AnswerQuestionInput representa os dados de uma resposta a uma pergunta ESG
type AnswerQuestionInput struct {
	FarmID      int    `json:"farm_id" validate:"required,gt=0"`
	ChecklistID int    `json:"checklist_id" validate:"required,gt=0"`
	Response    bool   `json:"response"`
	Notes       string `json:"notes" validate:"omitempty,max=2000"`
	EvidenceURL string `json:"evidence_url" validate:"omitempty,url,max=500"`
}

// ComputeESGScore calcula o score ESG a partir do catálogo ativo e das respostas
// atuais da fazenda. Função pura: catálogo vazio resulta em score 0, nunca em
// divisão por zero. Perguntas não respondidas ou respondidas como "não" somam 0.
func ComputeESGScore(checklists []entities.ESGChecklist, responses []entities.ESGResponse) ESGScore {
	score := ESGScore{
		Categories: map[string]CategoryScore{},
	}

	answered := make(map[int]entities.ESGResponse, len(responses))
	for _, r := range responses {
		answered[r.ChecklistID] = r
	}

	for _, c := range checklists {
		cat := score.Categories[c.Category]
		cat.MaxPoints += c.MaxPoints
		score.MaxPoints += c.MaxPoints

		if r, ok := answered[c.ID]; ok && r.Response {
			cat.Points += r.PointsObtained
			score.TotalPoints += r.PointsObtained
		}

		score.Categories[c.Category] = cat
	}

	if score.MaxPoints == 0 {
		return score
	}

	score.Percentage = int(math.Round(float64(score.TotalPoints) / float64(score.MaxPoints) * 100))

	return score
}

// BadgeLevelForScore retorna o nível de selo para um score, ou string vazia
// quando o score não atinge o nível bronze
func BadgeLevelForScore(score int) string {
	switch {
	case score >= 90:
		return entities.BadgeGold
	case score >= 60:
		return entities.BadgeSilver
	case score >= 30:
		return entities.BadgeBronze
	default:
		return ""
	}
}

// ESGUseCase implementa os casos de uso de score ESG e selos
type ESGUseCase struct {
	esgRepo   repositories.IESGRepository
	badgeRepo repositories.IBadgeRepository
}

// NewESGUseCase cria uma nova instância de ESGUseCase
func NewESGUseCase(esgRepo repositories.IESGRepository, badgeRepo repositories.IBadgeRepository) *ESGUseCase {
	return &ESGUseCase{
		esgRepo:   esgRepo,
		badgeRepo: badgeRepo,
	}
}

// GetChecklists retorna o catálogo ativo de perguntas ESG
func (u *ESGUseCase) GetChecklists() ([]entities.ESGChecklist, error) {
	return u.esgRepo.GetActiveChecklists()
}

// GetResponses retorna as respostas atuais da fazenda
func (u *ESGUseCase) GetResponses(farmID int) ([]entities.ESGResponse, error) {
	return u.esgRepo.GetResponsesByFarm(farmID)
}

// CalculateScore recalcula o score ESG da fazenda a partir do estado persistido
func (u *ESGUseCase) CalculateScore(farmID int) (ESGScore, error) {
	checklists, err := u.esgRepo.GetActiveChecklists()
	if err != nil {
		return ESGScore{}, err
	}

	responses, err := u.esgRepo.GetResponsesByFarm(farmID)
	if err != nil {
		return ESGScore{}, err
	}

	return ComputeESGScore(checklists, responses), nil
}

// AnswerQuestion grava a resposta da fazenda, recalcula o score e dispara a
// concessão de selo. A gravação do selo é fire-and-forget: falha é logada e
// não invalida a resposta salva.
func (u *ESGUseCase) AnswerQuestion(input AnswerQuestionInput) (string, ESGScore, error) {
	checklist, err := u.esgRepo.GetChecklistByID(input.ChecklistID)
	if err != nil {
		return "", ESGScore{}, err
	}
	if checklist == nil || !checklist.IsActive {
		return "", ESGScore{}, fmt.Errorf("pergunta %d: %w", input.ChecklistID, ErrChecklistNaoEncontrado)
	}

	// Crédito binário: resposta "sim" vale maxPoints, "não" vale 0
	points := 0
	if input.Response {
		points = checklist.MaxPoints
	}

	response := &entities.ESGResponse{
		FarmID:         input.FarmID,
		ChecklistID:    input.ChecklistID,
		Response:       input.Response,
		PointsObtained: points,
		Notes:          input.Notes,
		EvidenceURL:    input.EvidenceURL,
	}

	if err := u.esgRepo.SaveResponse(response); err != nil {
		return "", ESGScore{}, err
	}

	score, err := u.CalculateScore(input.FarmID)
	if err != nil {
		return "", ESGScore{}, err
	}

	u.assignBadge(input.FarmID, score.Percentage)

	return response.ID, score, nil
}

// GetBadge retorna o selo atual da fazenda (linha mais recente), ou nil
func (u *ESGUseCase) GetBadge(farmID int) (*entities.Badge, error) {
	return u.badgeRepo.GetLatestByFarm(farmID)
}

// GetBadgeHistory retorna o histórico completo de selos da fazenda
func (u *ESGUseCase) GetBadgeHistory(farmID int) ([]entities.Badge, error) {
	return u.badgeRepo.GetByFarm(farmID)
}

// assignBadge concede um novo selo quando o score cruza para um nível diferente
// do selo mais recente. Erros são apenas logados: a resposta que disparou o
// recálculo já foi salva.
func (u *ESGUseCase) assignBadge(farmID, score int) {
	level := BadgeLevelForScore(score)
	if level == "" {
		return
	}

	current, err := u.badgeRepo.GetLatestByFarm(farmID)
	if err != nil {
		log.Printf("⚠️ Erro ao buscar selo atual da fazenda %d: %v", farmID, err)
		return
	}

	if current != nil && current.Level == level {
		return
	}

	now := time.Now().In(utils.GetBrasilLocation())
	validUntil := now.AddDate(1, 0, 0)

	badge := &entities.Badge{
		FarmID:     farmID,
		Level:      level,
		Score:      score,
		AwardedAt:  now,
		ValidUntil: &validUntil,
	}

	if err := u.badgeRepo.Create(badge); err != nil {
		log.Printf("⚠️ Erro ao conceder selo %s para fazenda %d: %v", level, farmID, err)
	}
}
