package usecases

import (
	"errors"
	"strconv"
)

// ErrBreakEvenInviavel indica que o preço unitário não cobre o custo variável:
// a margem de contribuição é menor ou igual a zero e não existe ponto de
// equilíbrio finito.
var ErrBreakEvenInviavel = errors.New("ponto de equilíbrio inviável: margem de contribuição menor ou igual a zero")

// BreakEvenInput representa os parâmetros da análise de ponto de equilíbrio
type BreakEvenInput struct {
	FixedCosts          float64 `json:"fixed_costs" validate:"gte=0"`
	VariableCostPerUnit float64 `json:"variable_cost_per_unit" validate:"gte=0"`
	UnitPrice           float64 `json:"unit_price" validate:"gt=0"`
	CurrentUnits        int     `json:"current_units" validate:"gte=0"`
}

// BreakEvenBase representa o resultado base da análise
type BreakEvenBase struct {
	FixedCosts               float64 `json:"fixed_costs"`
	VariableCostPerUnit      float64 `json:"variable_cost_per_unit"`
	UnitPrice                float64 `json:"unit_price"`
	CurrentUnits             int     `json:"current_units"`
	ContributionMargin       float64 `json:"contribution_margin"`
	ContributionMarginRatio  float64 `json:"contribution_margin_ratio"`
	BreakEvenUnits           float64 `json:"break_even_units"`
	BreakEvenRevenue         float64 `json:"break_even_revenue"`
	CurrentProfit            float64 `json:"current_profit"`
	MarginOfSafety           float64 `json:"margin_of_safety"`
	MarginOfSafetyRevenue    float64 `json:"margin_of_safety_revenue"`
	MarginOfSafetyPercentage float64 `json:"margin_of_safety_percentage"`
}

// VolumeScenario representa um ponto da análise de sensibilidade de volume
type VolumeScenario struct {
	VolumePercentage int     `json:"volume_percentage"`
	Units            float64 `json:"units"`
	Profit           float64 `json:"profit"`
}

// SweepResult representa o ponto de equilíbrio recalculado em um cenário de
// variação de preço ou de custo variável
type SweepResult struct {
	Feasible       bool    `json:"feasible"`
	BreakEvenUnits float64 `json:"break_even_units"`
}

// PriceScenario representa um cenário de variação de preço
type PriceScenario struct {
	Label     string      `json:"label"`
	UnitPrice float64     `json:"unit_price"`
	Analysis  SweepResult `json:"analysis"`
}

// CostScenario representa um cenário de variação de custo variável
type CostScenario struct {
	Label               string      `json:"label"`
	VariableCostPerUnit float64     `json:"variable_cost_per_unit"`
	Analysis            SweepResult `json:"analysis"`
}

// BreakEvenAnalysis representa a análise completa: base + tabelas de sensibilidade
type BreakEvenAnalysis struct {
	BaseAnalysis    BreakEvenBase    `json:"base_analysis"`
	VolumeScenarios []VolumeScenario `json:"volume_scenarios"`
	PriceAnalysis   []PriceScenario  `json:"price_analysis"`
	CostAnalysis    []CostScenario   `json:"cost_analysis"`
}

// Offsets percentuais das tabelas de sensibilidade
var (
	volumeOffsets = []int{-50, -40, -30, -20, -10, 0, 10, 20, 30, 40, 50}
	sweepOffsets  = []int{-20, -10, 0, 10, 20}
)

// BreakEvenUseCase implementa a análise de ponto de equilíbrio. Função pura
// sobre os parâmetros da requisição: nada é persistido.
type BreakEvenUseCase struct{}

// NewBreakEvenUseCase cria uma nova instância de BreakEvenUseCase
func NewBreakEvenUseCase() *BreakEvenUseCase {
	return &BreakEvenUseCase{}
}

// Analyze calcula a análise completa de ponto de equilíbrio. Retorna
// ErrBreakEvenInviavel quando a margem de contribuição é menor ou igual a zero,
// em vez de produzir Inf/NaN.
func (u *BreakEvenUseCase) Analyze(input BreakEvenInput) (*BreakEvenAnalysis, error) {
	cm := input.UnitPrice - input.VariableCostPerUnit
	if cm <= 0 {
		return nil, ErrBreakEvenInviavel
	}

	// cm > 0 garante preço positivo
	cmRatio := cm / input.UnitPrice * 100

	breakEvenUnits := input.FixedCosts / cm
	currentUnits := float64(input.CurrentUnits)
	marginOfSafety := currentUnits - breakEvenUnits

	marginOfSafetyPct := 0.0
	if breakEvenUnits > 0 {
		marginOfSafetyPct = marginOfSafety / breakEvenUnits * 100
	}

	base := BreakEvenBase{
		FixedCosts:               input.FixedCosts,
		VariableCostPerUnit:      input.VariableCostPerUnit,
		UnitPrice:                input.UnitPrice,
		CurrentUnits:             input.CurrentUnits,
		ContributionMargin:       cm,
		ContributionMarginRatio:  cmRatio,
		BreakEvenUnits:           breakEvenUnits,
		BreakEvenRevenue:         breakEvenUnits * input.UnitPrice,
		CurrentProfit:            currentUnits*cm - input.FixedCosts,
		MarginOfSafety:           marginOfSafety,
		MarginOfSafetyRevenue:    marginOfSafety * input.UnitPrice,
		MarginOfSafetyPercentage: marginOfSafetyPct,
	}

	return &BreakEvenAnalysis{
		BaseAnalysis:    base,
		VolumeScenarios: u.volumeSensitivity(input, cm),
		PriceAnalysis:   u.priceSensitivity(input),
		CostAnalysis:    u.costSensitivity(input),
	}, nil
}

// volumeSensitivity recalcula o lucro variando o volume atual, com margem de
// contribuição e custos fixos constantes. Saída ordenada pelo offset.
func (u *BreakEvenUseCase) volumeSensitivity(input BreakEvenInput, cm float64) []VolumeScenario {
	scenarios := make([]VolumeScenario, 0, len(volumeOffsets))
	for _, offset := range volumeOffsets {
		units := float64(input.CurrentUnits) * (1 + float64(offset)/100)
		scenarios = append(scenarios, VolumeScenario{
			VolumePercentage: 100 + offset,
			Units:            units,
			Profit:           units*cm - input.FixedCosts,
		})
	}
	return scenarios
}

// priceSensitivity recalcula o ponto de equilíbrio variando o preço unitário
func (u *BreakEvenUseCase) priceSensitivity(input BreakEvenInput) []PriceScenario {
	scenarios := make([]PriceScenario, 0, len(sweepOffsets))
	for _, offset := range sweepOffsets {
		price := input.UnitPrice * (1 + float64(offset)/100)
		scenarios = append(scenarios, PriceScenario{
			Label:     sweepLabel(offset),
			UnitPrice: price,
			Analysis:  sweepBreakEven(input.FixedCosts, price-input.VariableCostPerUnit),
		})
	}
	return scenarios
}

// costSensitivity recalcula o ponto de equilíbrio variando o custo variável
func (u *BreakEvenUseCase) costSensitivity(input BreakEvenInput) []CostScenario {
	scenarios := make([]CostScenario, 0, len(sweepOffsets))
	for _, offset := range sweepOffsets {
		cost := input.VariableCostPerUnit * (1 + float64(offset)/100)
		scenarios = append(scenarios, CostScenario{
			Label:               sweepLabel(offset),
			VariableCostPerUnit: cost,
			Analysis:            sweepBreakEven(input.FixedCosts, input.UnitPrice-cost),
		})
	}
	return scenarios
}

// sweepBreakEven recalcula o ponto de equilíbrio para uma margem de contribuição
// já variada. Pontos inviáveis são sinalizados, nunca Inf.
func sweepBreakEven(fixedCosts, cm float64) SweepResult {
	if cm <= 0 {
		return SweepResult{Feasible: false}
	}
	return SweepResult{
		Feasible:       true,
		BreakEvenUnits: fixedCosts / cm,
	}
}

func sweepLabel(offset int) string {
	switch {
	case offset == 0:
		return "Atual"
	case offset > 0:
		return "+" + strconv.Itoa(offset) + "%"
	default:
		return strconv.Itoa(offset) + "%"
	}
}
