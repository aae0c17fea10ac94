package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_CasoBase(t *testing.T) {
	u := NewBreakEvenUseCase()

	analysis, err := u.Analyze(BreakEvenInput{
		FixedCosts:          25000,
		VariableCostPerUnit: 150,
		UnitPrice:           500,
		CurrentUnits:        100,
	})
	require.NoError(t, err)

	base := analysis.BaseAnalysis
	assert.InDelta(t, 350, base.ContributionMargin, 1e-9)
	assert.InDelta(t, 70, base.ContributionMarginRatio, 1e-9)
	assert.InDelta(t, 25000.0/350, base.BreakEvenUnits, 1e-9)
	assert.InDelta(t, 25000.0/350*500, base.BreakEvenRevenue, 1e-9)
	assert.InDelta(t, 10000, base.CurrentProfit, 1e-9)
	assert.InDelta(t, 100-25000.0/350, base.MarginOfSafety, 1e-9)
}

func TestAnalyze_MargemContribuicaoZeroOuNegativa(t *testing.T) {
	u := NewBreakEvenUseCase()

	_, err := u.Analyze(BreakEvenInput{FixedCosts: 1000, VariableCostPerUnit: 500, UnitPrice: 500, CurrentUnits: 10})
	assert.ErrorIs(t, err, ErrBreakEvenInviavel)

	_, err = u.Analyze(BreakEvenInput{FixedCosts: 1000, VariableCostPerUnit: 600, UnitPrice: 500, CurrentUnits: 10})
	assert.ErrorIs(t, err, ErrBreakEvenInviavel)
}

func TestAnalyze_CenariosDeVolume(t *testing.T) {
	u := NewBreakEvenUseCase()

	analysis, err := u.Analyze(BreakEvenInput{
		FixedCosts:          25000,
		VariableCostPerUnit: 150,
		UnitPrice:           500,
		CurrentUnits:        100,
	})
	require.NoError(t, err)

	require.Len(t, analysis.VolumeScenarios, 11)

	assert.Equal(t, 50, analysis.VolumeScenarios[0].VolumePercentage)
	assert.InDelta(t, 50, analysis.VolumeScenarios[0].Units, 1e-9)
	assert.InDelta(t, 50*350-25000, analysis.VolumeScenarios[0].Profit, 1e-9)

	// Ponto central reproduz o lucro atual
	assert.Equal(t, 100, analysis.VolumeScenarios[5].VolumePercentage)
	assert.InDelta(t, analysis.BaseAnalysis.CurrentProfit, analysis.VolumeScenarios[5].Profit, 1e-9)

	assert.Equal(t, 150, analysis.VolumeScenarios[10].VolumePercentage)
	assert.InDelta(t, 150*350-25000, analysis.VolumeScenarios[10].Profit, 1e-9)

	// Lucro cresce monotonicamente com o volume
	for i := 1; i < len(analysis.VolumeScenarios); i++ {
		assert.Greater(t, analysis.VolumeScenarios[i].Profit, analysis.VolumeScenarios[i-1].Profit)
	}
}

func TestAnalyze_SensibilidadeDePreco(t *testing.T) {
	u := NewBreakEvenUseCase()

	analysis, err := u.Analyze(BreakEvenInput{
		FixedCosts:          25000,
		VariableCostPerUnit: 150,
		UnitPrice:           500,
		CurrentUnits:        100,
	})
	require.NoError(t, err)

	require.Len(t, analysis.PriceAnalysis, 5)
	assert.Equal(t, []string{"-20%", "-10%", "Atual", "+10%", "+20%"}, []string{
		analysis.PriceAnalysis[0].Label,
		analysis.PriceAnalysis[1].Label,
		analysis.PriceAnalysis[2].Label,
		analysis.PriceAnalysis[3].Label,
		analysis.PriceAnalysis[4].Label,
	})

	// Preço -20%: 400 - 150 = 250 de margem
	assert.InDelta(t, 400, analysis.PriceAnalysis[0].UnitPrice, 1e-9)
	assert.True(t, analysis.PriceAnalysis[0].Analysis.Feasible)
	assert.InDelta(t, 25000.0/250, analysis.PriceAnalysis[0].Analysis.BreakEvenUnits, 1e-9)

	// Ponto central reproduz a análise base
	assert.InDelta(t, analysis.BaseAnalysis.BreakEvenUnits, analysis.PriceAnalysis[2].Analysis.BreakEvenUnits, 1e-9)
}

func TestAnalyze_SensibilidadeComPontoInviavel(t *testing.T) {
	u := NewBreakEvenUseCase()

	// Margem apertada: 500 - 450 = 50. Preço -20% (400) fica abaixo do custo
	// variável e o ponto deve ser sinalizado como inviável.
	analysis, err := u.Analyze(BreakEvenInput{
		FixedCosts:          10000,
		VariableCostPerUnit: 450,
		UnitPrice:           500,
		CurrentUnits:        300,
	})
	require.NoError(t, err)

	assert.False(t, analysis.PriceAnalysis[0].Analysis.Feasible)
	assert.Zero(t, analysis.PriceAnalysis[0].Analysis.BreakEvenUnits)
	assert.True(t, analysis.PriceAnalysis[2].Analysis.Feasible)

	// Custo +20% (540) também ultrapassa o preço
	assert.False(t, analysis.CostAnalysis[4].Analysis.Feasible)
}

func TestAnalyze_SensibilidadeDeCusto(t *testing.T) {
	u := NewBreakEvenUseCase()

	analysis, err := u.Analyze(BreakEvenInput{
		FixedCosts:          25000,
		VariableCostPerUnit: 150,
		UnitPrice:           500,
		CurrentUnits:        100,
	})
	require.NoError(t, err)

	require.Len(t, analysis.CostAnalysis, 5)

	// Custo -20%: 500 - 120 = 380 de margem
	assert.InDelta(t, 120, analysis.CostAnalysis[0].VariableCostPerUnit, 1e-9)
	assert.InDelta(t, 25000.0/380, analysis.CostAnalysis[0].Analysis.BreakEvenUnits, 1e-9)

	// Custo maior exige mais unidades para equilibrar
	for i := 1; i < len(analysis.CostAnalysis); i++ {
		assert.Greater(t,
			analysis.CostAnalysis[i].Analysis.BreakEvenUnits,
			analysis.CostAnalysis[i-1].Analysis.BreakEvenUnits)
	}
}
