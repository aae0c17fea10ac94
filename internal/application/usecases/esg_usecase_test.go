package usecases

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/AgroVista/agro-vista-api/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeESGRepo struct {
	checklists []entities.ESGChecklist
	responses  map[int]entities.ESGResponse
}

func (f *fakeESGRepo) GetActiveChecklists() ([]entities.ESGChecklist, error) {
	return f.checklists, nil
}

func (f *fakeESGRepo) GetChecklistByID(id int) (*entities.ESGChecklist, error) {
	for i := range f.checklists {
		if f.checklists[i].ID == id {
			return &f.checklists[i], nil
		}
	}
	return nil, nil
}

func (f *fakeESGRepo) SaveResponse(response *entities.ESGResponse) error {
	if f.responses == nil {
		f.responses = map[int]entities.ESGResponse{}
	}
	if response.ID == "" {
		response.ID = fmt.Sprintf("resp-%d", response.ChecklistID)
	}
	f.responses[response.ChecklistID] = *response
	return nil
}

func (f *fakeESGRepo) GetResponsesByFarm(farmID int) ([]entities.ESGResponse, error) {
	out := make([]entities.ESGResponse, 0, len(f.responses))
	for _, r := range f.responses {
		out = append(out, r)
	}
	return out, nil
}

type fakeBadgeRepo struct {
	latest    *entities.Badge
	created   []entities.Badge
	createErr error
}

func (f *fakeBadgeRepo) Create(badge *entities.Badge) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *badge)
	f.latest = badge
	return nil
}

func (f *fakeBadgeRepo) GetLatestByFarm(farmID int) (*entities.Badge, error) {
	return f.latest, nil
}

func (f *fakeBadgeRepo) GetByFarm(farmID int) ([]entities.Badge, error) {
	return f.created, nil
}

func catalogoESG() []entities.ESGChecklist {
	return []entities.ESGChecklist{
		{ID: 1, Title: "Gestão de resíduos", Category: entities.CategoryEnvironmental, MaxPoints: 10, IsActive: true},
		{ID: 2, Title: "Uso racional de água", Category: entities.CategoryEnvironmental, MaxPoints: 10, IsActive: true},
		{ID: 3, Title: "Treinamento da equipe", Category: entities.CategorySocial, MaxPoints: 8, IsActive: true},
		{ID: 4, Title: "Registro contábil formal", Category: entities.CategoryGovernance, MaxPoints: 12, IsActive: true},
	}
}

func respostaSim(farmID, checklistID, points int) entities.ESGResponse {
	return entities.ESGResponse{
		FarmID:         farmID,
		ChecklistID:    checklistID,
		Response:       true,
		PointsObtained: points,
	}
}

func TestComputeESGScore_SemRespostas(t *testing.T) {
	score := ComputeESGScore(catalogoESG(), nil)

	assert.Equal(t, 0, score.TotalPoints)
	assert.Equal(t, 40, score.MaxPoints)
	assert.Equal(t, 0, score.Percentage)
}

func TestComputeESGScore_TodasSim(t *testing.T) {
	responses := []entities.ESGResponse{
		respostaSim(1, 1, 10),
		respostaSim(1, 2, 10),
		respostaSim(1, 3, 8),
		respostaSim(1, 4, 12),
	}

	score := ComputeESGScore(catalogoESG(), responses)

	assert.Equal(t, 40, score.TotalPoints)
	assert.Equal(t, 100, score.Percentage)
}

func TestComputeESGScore_RespostaNaoSomaZero(t *testing.T) {
	responses := []entities.ESGResponse{
		respostaSim(1, 1, 10),
		{FarmID: 1, ChecklistID: 2, Response: false, PointsObtained: 0},
	}

	score := ComputeESGScore(catalogoESG(), responses)

	assert.Equal(t, 10, score.TotalPoints)
	assert.Equal(t, 25, score.Percentage)
}

func TestComputeESGScore_ArredondamentoMeioParaCima(t *testing.T) {
	// 10/40 = 25%, 15/40 = 37.5% -> arredonda para 38
	responses := []entities.ESGResponse{
		respostaSim(1, 1, 10),
		{FarmID: 1, ChecklistID: 3, Response: true, PointsObtained: 5},
	}

	score := ComputeESGScore(catalogoESG(), responses)

	assert.Equal(t, 15, score.TotalPoints)
	assert.Equal(t, 38, score.Percentage)
}

func TestComputeESGScore_CatalogoVazio(t *testing.T) {
	score := ComputeESGScore(nil, []entities.ESGResponse{respostaSim(1, 1, 10)})

	assert.Equal(t, 0, score.MaxPoints)
	assert.Equal(t, 0, score.Percentage)
}

func TestComputeESGScore_RespostaForaDoCatalogoIgnorada(t *testing.T) {
	responses := []entities.ESGResponse{
		respostaSim(1, 99, 50), // pergunta inexistente/desativada
	}

	score := ComputeESGScore(catalogoESG(), responses)

	assert.Equal(t, 0, score.TotalPoints)
	assert.Equal(t, 0, score.Percentage)
}

func TestComputeESGScore_QuebraPorCategoria(t *testing.T) {
	responses := []entities.ESGResponse{
		respostaSim(1, 1, 10),
		respostaSim(1, 3, 8),
	}

	score := ComputeESGScore(catalogoESG(), responses)

	assert.Equal(t, CategoryScore{Points: 10, MaxPoints: 20}, score.Categories[entities.CategoryEnvironmental])
	assert.Equal(t, CategoryScore{Points: 8, MaxPoints: 8}, score.Categories[entities.CategorySocial])
	assert.Equal(t, CategoryScore{Points: 0, MaxPoints: 12}, score.Categories[entities.CategoryGovernance])
}

func TestAnswerQuestion_ConcedeSeloAoCruzarNivel(t *testing.T) {
	esgRepo := &fakeESGRepo{checklists: catalogoESG()}
	badgeRepo := &fakeBadgeRepo{}
	u := NewESGUseCase(esgRepo, badgeRepo)

	// 12/40 = 30% cruza o nível bronze
	responseID, score, err := u.AnswerQuestion(AnswerQuestionInput{FarmID: 1, ChecklistID: 4, Response: true})
	require.NoError(t, err)
	assert.NotEmpty(t, responseID)
	assert.Equal(t, 30, score.Percentage)

	require.Len(t, badgeRepo.created, 1)
	badge := badgeRepo.created[0]
	assert.Equal(t, entities.BadgeBronze, badge.Level)
	assert.Equal(t, 30, badge.Score)
	require.NotNil(t, badge.ValidUntil)
	assert.WithinDuration(t, time.Now().AddDate(1, 0, 0), *badge.ValidUntil, time.Minute)
}

func TestAnswerQuestion_NaoRepeteSeloDeMesmoNivel(t *testing.T) {
	esgRepo := &fakeESGRepo{checklists: catalogoESG()}
	badgeRepo := &fakeBadgeRepo{
		latest: &entities.Badge{FarmID: 1, Level: entities.BadgeBronze, Score: 30},
	}
	u := NewESGUseCase(esgRepo, badgeRepo)

	// 12/40 = 30%: mesmo nível do selo vigente, nenhuma linha nova
	_, score, err := u.AnswerQuestion(AnswerQuestionInput{FarmID: 1, ChecklistID: 4, Response: true})
	require.NoError(t, err)
	assert.Equal(t, 30, score.Percentage)
	assert.Empty(t, badgeRepo.created)
}

func TestAnswerQuestion_ScoreAbaixoDoBronzeNaoConcedeSelo(t *testing.T) {
	esgRepo := &fakeESGRepo{checklists: catalogoESG()}
	badgeRepo := &fakeBadgeRepo{}
	u := NewESGUseCase(esgRepo, badgeRepo)

	// 10/40 = 25%, abaixo do primeiro nível
	_, score, err := u.AnswerQuestion(AnswerQuestionInput{FarmID: 1, ChecklistID: 1, Response: true})
	require.NoError(t, err)
	assert.Equal(t, 25, score.Percentage)
	assert.Empty(t, badgeRepo.created)
}

func TestAnswerQuestion_FalhaNoSeloNaoInvalidaResposta(t *testing.T) {
	esgRepo := &fakeESGRepo{checklists: catalogoESG()}
	badgeRepo := &fakeBadgeRepo{createErr: errors.New("conexão recusada")}
	u := NewESGUseCase(esgRepo, badgeRepo)

	responseID, score, err := u.AnswerQuestion(AnswerQuestionInput{FarmID: 1, ChecklistID: 4, Response: true})

	// A resposta já foi salva: a falha na concessão do selo é apenas logada
	require.NoError(t, err)
	assert.NotEmpty(t, responseID)
	assert.Equal(t, 30, score.Percentage)
	assert.Empty(t, badgeRepo.created)
	assert.Contains(t, esgRepo.responses, 4)
}

func TestAnswerQuestion_PerguntaInexistente(t *testing.T) {
	u := NewESGUseCase(&fakeESGRepo{checklists: catalogoESG()}, &fakeBadgeRepo{})

	_, _, err := u.AnswerQuestion(AnswerQuestionInput{FarmID: 1, ChecklistID: 99, Response: true})
	assert.ErrorIs(t, err, ErrChecklistNaoEncontrado)
}

func TestBadgeLevelForScore(t *testing.T) {
	cases := []struct {
		score int
		level string
	}{
		{0, ""},
		{29, ""},
		{30, entities.BadgeBronze},
		{59, entities.BadgeBronze},
		{60, entities.BadgeSilver},
		{89, entities.BadgeSilver},
		{90, entities.BadgeGold},
		{100, entities.BadgeGold},
	}

	for _, c := range cases {
		assert.Equal(t, c.level, BadgeLevelForScore(c.score), "score %d", c.score)
	}
}
