package usecases

import (
	"testing"
	"time"

	"github.com/AgroVista/agro-vista-api/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChallengeRepo struct {
	record *entities.ChallengeProgress
	getErr error

	updatedPercent     int
	updatedPoints      int
	updatedCompleted   bool
	updatedCompletedAt *time.Time
}

func (f *fakeChallengeRepo) GetActiveChallenges() ([]entities.Challenge, error) { return nil, nil }
func (f *fakeChallengeRepo) GetAllChallenges() ([]entities.Challenge, error)    { return nil, nil }
func (f *fakeChallengeRepo) CreateChallenge(challenge *entities.Challenge) error {
	challenge.ID = 1
	return nil
}
func (f *fakeChallengeRepo) GetProgressByFarm(farmID int) ([]entities.ChallengeProgress, error) {
	return nil, nil
}
func (f *fakeChallengeRepo) GetProgressByID(id int) (*entities.ChallengeProgress, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.record, nil
}
func (f *fakeChallengeRepo) UpdateProgress(id int, progressPercent, pointsEarned int, completed bool, completedAt *time.Time) error {
	f.updatedPercent = progressPercent
	f.updatedPoints = pointsEarned
	f.updatedCompleted = completed
	f.updatedCompletedAt = completedAt
	return nil
}

func progressoDesafio(target int) *entities.ChallengeProgress {
	return &entities.ChallengeProgress{
		ID:          1,
		ChallengeID: 1,
		FarmID:      1,
		Challenge:   entities.Challenge{ID: 1, Title: "Guardião do Rebanho", Points: 150, TargetValue: target},
	}
}

func TestComputeGoalProgress(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		target   float64
		expected int
	}{
		{"meta pela metade", 50, 100, 50},
		{"meta atingida", 100, 100, 100},
		{"acima da meta limita em 100", 150, 100, 100},
		{"meta zero", 50, 0, 0},
		{"meta negativa", 50, -10, 0},
		{"progresso negativo limita em 0", -20, 100, 0},
		{"arredondamento", 1, 3, 33},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, ComputeGoalProgress(c.current, c.target))
		})
	}
}

func TestUpdateProgress_DerivaPercentualDaMeta(t *testing.T) {
	repo := &fakeChallengeRepo{record: progressoDesafio(4)}
	u := NewChallengeUseCase(repo)

	err := u.UpdateProgress(1, UpdateProgressInput{CurrentValue: 2, PointsEarned: 50})
	require.NoError(t, err)

	assert.Equal(t, 50, repo.updatedPercent)
	assert.Equal(t, 50, repo.updatedPoints)
	assert.False(t, repo.updatedCompleted)
	assert.Nil(t, repo.updatedCompletedAt)
}

func TestUpdateProgress_ConcluiAoAtingirMeta(t *testing.T) {
	repo := &fakeChallengeRepo{record: progressoDesafio(4)}
	u := NewChallengeUseCase(repo)

	err := u.UpdateProgress(1, UpdateProgressInput{CurrentValue: 4, PointsEarned: 150})
	require.NoError(t, err)

	assert.Equal(t, 100, repo.updatedPercent)
	assert.True(t, repo.updatedCompleted)
	require.NotNil(t, repo.updatedCompletedAt)
	assert.WithinDuration(t, time.Now(), *repo.updatedCompletedAt, time.Minute)
}

func TestUpdateProgress_PreservaDataDaPrimeiraConclusao(t *testing.T) {
	firstCompletion := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	record := progressoDesafio(4)
	record.Completed = true
	record.CompletedAt = &firstCompletion

	repo := &fakeChallengeRepo{record: record}
	u := NewChallengeUseCase(repo)

	err := u.UpdateProgress(1, UpdateProgressInput{CurrentValue: 5, PointsEarned: 150})
	require.NoError(t, err)

	assert.True(t, repo.updatedCompleted)
	require.NotNil(t, repo.updatedCompletedAt)
	assert.Equal(t, firstCompletion, *repo.updatedCompletedAt)
}

func TestUpdateProgress_RegressaoLimpaConclusao(t *testing.T) {
	firstCompletion := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	record := progressoDesafio(4)
	record.Completed = true
	record.CompletedAt = &firstCompletion

	repo := &fakeChallengeRepo{record: record}
	u := NewChallengeUseCase(repo)

	// Valor atual caiu abaixo da meta: a conclusão é desfeita sem deixar
	// data de conclusão antiga para trás
	err := u.UpdateProgress(1, UpdateProgressInput{CurrentValue: 2, PointsEarned: 50})
	require.NoError(t, err)

	assert.Equal(t, 50, repo.updatedPercent)
	assert.False(t, repo.updatedCompleted)
	assert.Nil(t, repo.updatedCompletedAt)
}

func TestUpdateProgress_DesafioSemMetaUsaPercentualDireto(t *testing.T) {
	repo := &fakeChallengeRepo{record: progressoDesafio(0)}
	u := NewChallengeUseCase(repo)

	err := u.UpdateProgress(1, UpdateProgressInput{CurrentValue: 40, PointsEarned: 0})
	require.NoError(t, err)

	assert.Equal(t, 40, repo.updatedPercent)
	assert.False(t, repo.updatedCompleted)
}
