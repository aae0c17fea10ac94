package usecases

import (
	"math"
	"testing"

	"github.com/AgroVista/agro-vista-api/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseProjecao() ProjectionInput {
	return ProjectionInput{
		BaseRevenue:         100000,
		BaseVolume:          200,
		FixedCosts:          20000,
		VariableCostPerUnit: 150,
		Months:              12,
	}
}

func TestComputeScenario_PrimeiroMesIgualABase(t *testing.T) {
	result := ComputeScenario(baseProjecao(), entities.ScenarioRealistic, 2, 20)

	require.Len(t, result.Months, 12)

	first := result.Months[0]
	assert.Equal(t, 1, first.Month)
	assert.InDelta(t, 200, first.Volume, 1e-9)
	assert.InDelta(t, 100000, first.Revenue, 1e-9)
	assert.InDelta(t, 200*150, first.VariableCost, 1e-9)
	assert.InDelta(t, 100000*0.20, first.OperatingExpense, 1e-9)
	assert.InDelta(t, 100000-20000-30000-20000, first.Profit, 1e-9)
}

func TestComputeScenario_CrescimentoComposto(t *testing.T) {
	result := ComputeScenario(baseProjecao(), entities.ScenarioOptimistic, 5, 15)

	// Volume do mês m = base * 1.05^(m-1), sem arredondamento intermediário
	for i, m := range result.Months {
		expected := 200 * math.Pow(1.05, float64(i))
		assert.InDelta(t, expected, m.Volume, 1e-9, "mês %d", m.Month)
	}
}

func TestComputeScenario_CrescimentoNegativo(t *testing.T) {
	result := ComputeScenario(baseProjecao(), entities.ScenarioPessimistic, -1, 25)

	for i := 1; i < len(result.Months); i++ {
		assert.Less(t, result.Months[i].Volume, result.Months[i-1].Volume)
	}
}

func TestComputeScenario_ResumoAcumulado(t *testing.T) {
	result := ComputeScenario(baseProjecao(), entities.ScenarioRealistic, 2, 20)

	var totalRevenue, totalCosts, totalProfit float64
	for _, m := range result.Months {
		totalRevenue += m.Revenue
		totalCosts += 20000 + m.VariableCost + m.OperatingExpense
		totalProfit += m.Profit
	}

	assert.InDelta(t, totalRevenue, result.Summary.TotalRevenue, 1e-6)
	assert.InDelta(t, totalCosts, result.Summary.TotalCosts, 1e-6)
	assert.InDelta(t, totalProfit, result.Summary.TotalProfit, 1e-6)
	assert.InDelta(t, totalRevenue-totalCosts, result.Summary.TotalProfit, 1e-6)

	last := result.Months[len(result.Months)-1]
	assert.InDelta(t, last.Revenue, result.Summary.FinalRevenue, 1e-9)
	assert.InDelta(t, last.Profit, result.Summary.FinalProfit, 1e-9)
	assert.InDelta(t, last.Profit/last.Revenue*100, result.Summary.FinalMargin, 1e-9)
}

func TestComputeScenario_Deterministico(t *testing.T) {
	input := baseProjecao()

	a := ComputeScenario(input, entities.ScenarioOptimistic, 5, 15)
	b := ComputeScenario(input, entities.ScenarioOptimistic, 5, 15)

	assert.Equal(t, a, b)
}

func TestCompareScenarios_OrdemEPremissas(t *testing.T) {
	results := CompareScenarios(baseProjecao())

	require.Len(t, results, 3)
	assert.Equal(t, entities.ScenarioOptimistic, results[0].Scenario)
	assert.Equal(t, entities.ScenarioRealistic, results[1].Scenario)
	assert.Equal(t, entities.ScenarioPessimistic, results[2].Scenario)

	assert.InDelta(t, 5, results[0].GrowthRate, 1e-9)
	assert.InDelta(t, 15, results[0].OperatingExpenseRate, 1e-9)
	assert.InDelta(t, 2, results[1].GrowthRate, 1e-9)
	assert.InDelta(t, 20, results[1].OperatingExpenseRate, 1e-9)
	assert.InDelta(t, -1, results[2].GrowthRate, 1e-9)
	assert.InDelta(t, 25, results[2].OperatingExpenseRate, 1e-9)
}

func TestCompareScenarios_OtimistaDominaPessimista(t *testing.T) {
	results := CompareScenarios(baseProjecao())

	optimistic := results[0].Summary
	realistic := results[1].Summary
	pessimistic := results[2].Summary

	assert.Greater(t, optimistic.FinalProfit, realistic.FinalProfit)
	assert.Greater(t, realistic.FinalProfit, pessimistic.FinalProfit)
	assert.Greater(t, optimistic.TotalRevenue, pessimistic.TotalRevenue)
}
