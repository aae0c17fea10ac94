package usecases

import (
	"fmt"
	"math"
	"time"

	"github.com/AgroVista/agro-vista-api/internal/domain/entities"
	"github.com/AgroVista/agro-vista-api/internal/domain/repositories"
	"github.com/AgroVista/agro-vista-api/internal/utils"
)

// scenarioAssumption define as premissas fixas de um cenário de projeção
type scenarioAssumption struct {
	scenario             string
	growthRate           float64 // % de crescimento mensal do volume
	operatingExpenseRate float64 // % de despesas operacionais sobre a receita
}

// Premissas fixas, na ordem de exibição
var scenarioAssumptions = []scenarioAssumption{
	{entities.ScenarioOptimistic, 5, 15},
	{entities.ScenarioRealistic, 2, 20},
	{entities.ScenarioPessimistic, -1, 25},
}

// ProjectionInput representa os parâmetros base de uma projeção financeira
type ProjectionInput struct {
	BaseRevenue         float64 `json:"base_revenue" validate:"gt=0"`
	BaseVolume          int     `json:"base_volume" validate:"gt=0"`
	FixedCosts          float64 `json:"fixed_costs" validate:"gte=0"`
	VariableCostPerUnit float64 `json:"variable_cost_per_unit" validate:"gte=0"`
	Months              int     `json:"months" validate:"gte=1,lte=60"`
}

// MonthlyProjection representa um mês da série projetada
type MonthlyProjection struct {
	Month            int     `json:"month"`
	Volume           float64 `json:"volume"`
	Revenue          float64 `json:"revenue"`
	VariableCost     float64 `json:"variable_cost"`
	OperatingExpense float64 `json:"operating_expense"`
	Profit           float64 `json:"profit"`
}

// ScenarioSummary representa o resumo acumulado de um cenário
type ScenarioSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalCosts   float64 `json:"total_costs"`
	TotalProfit  float64 `json:"total_profit"`
	FinalRevenue float64 `json:"final_revenue"`
	FinalProfit  float64 `json:"final_profit"`
	FinalMargin  float64 `json:"final_margin"`
}

// ScenarioResult representa a projeção completa de um cenário
type ScenarioResult struct {
	Scenario             string              `json:"scenario"`
	GrowthRate           float64             `json:"growth_rate"`
	OperatingExpenseRate float64             `json:"operating_expense_rate"`
	Months               []MonthlyProjection `json:"months"`
	Summary              ScenarioSummary     `json:"summary"`
}

// SaveProjectionInput representa o pedido de persistência de um cenário
type SaveProjectionInput struct {
	FarmID      int    `json:"farm_id" validate:"required,gt=0"`
	Scenario    string `json:"scenario" validate:"required,oneof=optimistic realistic pessimistic"`
	Name        string `json:"name" validate:"omitempty,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	ProjectionInput
}

// ComputeScenario projeta a série mensal de um cenário. Função pura: o
// crescimento compõe mês a mês e nenhum valor é arredondado no meio da série.
func ComputeScenario(input ProjectionInput, scenario string, growthRate, operatingExpenseRate float64) ScenarioResult {
	result := ScenarioResult{
		Scenario:             scenario,
		GrowthRate:           growthRate,
		OperatingExpenseRate: operatingExpenseRate,
		Months:               make([]MonthlyProjection, 0, input.Months),
	}

	averagePrice := 0.0
	if input.BaseVolume > 0 {
		averagePrice = input.BaseRevenue / float64(input.BaseVolume)
	}

	growth := 1 + growthRate/100
	expenseRate := operatingExpenseRate / 100

	for m := 1; m <= input.Months; m++ {
		volume := float64(input.BaseVolume) * math.Pow(growth, float64(m-1))
		revenue := volume * averagePrice
		variableCost := volume * input.VariableCostPerUnit
		operatingExpense := revenue * expenseRate
		profit := revenue - input.FixedCosts - variableCost - operatingExpense

		result.Months = append(result.Months, MonthlyProjection{
			Month:            m,
			Volume:           volume,
			Revenue:          revenue,
			VariableCost:     variableCost,
			OperatingExpense: operatingExpense,
			Profit:           profit,
		})

		result.Summary.TotalRevenue += revenue
		result.Summary.TotalCosts += input.FixedCosts + variableCost + operatingExpense
		result.Summary.TotalProfit += profit
	}

	if last := len(result.Months); last > 0 {
		final := result.Months[last-1]
		result.Summary.FinalRevenue = final.Revenue
		result.Summary.FinalProfit = final.Profit
		if final.Revenue != 0 {
			result.Summary.FinalMargin = final.Profit / final.Revenue * 100
		}
	}

	return result
}

// CompareScenarios projeta os três cenários fixos para os mesmos parâmetros base
func CompareScenarios(input ProjectionInput) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(scenarioAssumptions))
	for _, a := range scenarioAssumptions {
		results = append(results, ComputeScenario(input, a.scenario, a.growthRate, a.operatingExpenseRate))
	}
	return results
}

// ProjectionUseCase implementa os casos de uso de projeção financeira
type ProjectionUseCase struct {
	projectionRepo repositories.IProjectionRepository
}

// NewProjectionUseCase cria uma nova instância de ProjectionUseCase
func NewProjectionUseCase(projectionRepo repositories.IProjectionRepository) *ProjectionUseCase {
	return &ProjectionUseCase{
		projectionRepo: projectionRepo,
	}
}

// Compare retorna os três cenários projetados para os parâmetros informados
func (u *ProjectionUseCase) Compare(input ProjectionInput) []ScenarioResult {
	return CompareScenarios(input)
}

// Save recalcula o cenário escolhido e persiste apenas o snapshot do resumo.
// A série mês a mês é regenerada sob demanda a partir das premissas salvas.
func (u *ProjectionUseCase) Save(input SaveProjectionInput) (*entities.FinancialProjection, error) {
	assumption, err := assumptionFor(input.Scenario)
	if err != nil {
		return nil, err
	}

	result := ComputeScenario(input.ProjectionInput, assumption.scenario, assumption.growthRate, assumption.operatingExpenseRate)

	now := time.Now().In(utils.GetBrasilLocation())
	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endDate := startDate.AddDate(0, input.Months, 0)

	name := input.Name
	if name == "" {
		name = fmt.Sprintf("%s - %s", scenarioDisplayName(input.Scenario), utils.FormatDateBR(now))
	}

	description := input.Description
	if description == "" {
		description = fmt.Sprintf("Projeção de %d meses", input.Months)
	}

	averagePrice := 0.0
	if input.BaseVolume > 0 {
		averagePrice = input.BaseRevenue / float64(input.BaseVolume)
	}

	projection := &entities.FinancialProjection{
		FarmID:               input.FarmID,
		Name:                 name,
		Description:          description,
		StartDate:            startDate,
		EndDate:              endDate,
		Scenario:             input.Scenario,
		RevenueGrowthRate:    assumption.growthRate,
		AveragePrice:         averagePrice,
		ExpectedVolume:       input.BaseVolume,
		FixedCosts:           input.FixedCosts,
		VariableCostPerUnit:  input.VariableCostPerUnit,
		OperatingExpenseRate: assumption.operatingExpenseRate,
		ProjectedRevenue:     result.Summary.FinalRevenue,
		ProjectedCosts:       result.Summary.TotalCosts,
		ProjectedProfit:      result.Summary.FinalProfit,
		ProfitMargin:         result.Summary.FinalMargin,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := u.projectionRepo.Create(projection); err != nil {
		return nil, err
	}

	return projection, nil
}

// List retorna as projeções salvas de uma fazenda
func (u *ProjectionUseCase) List(farmID int) ([]entities.FinancialProjection, error) {
	return u.projectionRepo.GetByFarm(farmID)
}

// Delete remove uma projeção salva da fazenda
func (u *ProjectionUseCase) Delete(id, farmID int) error {
	return u.projectionRepo.Delete(id, farmID)
}

func assumptionFor(scenario string) (scenarioAssumption, error) {
	for _, a := range scenarioAssumptions {
		if a.scenario == scenario {
			return a, nil
		}
	}
	return scenarioAssumption{}, fmt.Errorf("cenário desconhecido: %s", scenario)
}

func scenarioDisplayName(scenario string) string {
	switch scenario {
	case entities.ScenarioOptimistic:
		return "Cenário Otimista"
	case entities.ScenarioRealistic:
		return "Cenário Realista"
	case entities.ScenarioPessimistic:
		return "Cenário Pessimista"
	default:
		return scenario
	}
}
