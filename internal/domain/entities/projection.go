package entities

import "time"

// Cenários de projeção financeira
const (
	ScenarioOptimistic  = "optimistic"
	ScenarioRealistic   = "realistic"
	ScenarioPessimistic = "pessimistic"
)

// FinancialProjection representa o snapshot salvo de um cenário de projeção.
// A série mês a mês não é persistida: é regenerada sob demanda a partir das
// premissas armazenadas.
type FinancialProjection struct {
	ID          int       `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	FarmID      int       `json:"farm_id" gorm:"column:farmId"`
	Name        string    `json:"name" gorm:"column:name"`
	Description string    `json:"description" gorm:"column:description"`
	StartDate   time.Time `json:"start_date" gorm:"column:startDate;type:date"`
	EndDate     time.Time `json:"end_date" gorm:"column:endDate;type:date"`
	Scenario    string    `json:"scenario" gorm:"column:scenario"`

	// Premissas de receita
	RevenueGrowthRate float64 `json:"revenue_growth_rate" gorm:"column:revenueGrowthRate"`
	AveragePrice      float64 `json:"average_price" gorm:"column:averagePrice"`
	ExpectedVolume    int     `json:"expected_volume" gorm:"column:expectedVolume"`

	// Premissas de custo
	FixedCosts           float64 `json:"fixed_costs" gorm:"column:fixedCosts"`
	VariableCostPerUnit  float64 `json:"variable_cost_per_unit" gorm:"column:variableCostPerUnit"`
	OperatingExpenseRate float64 `json:"operating_expense_rate" gorm:"column:operatingExpenseRate"`

	// Resultados calculados
	ProjectedRevenue float64 `json:"projected_revenue" gorm:"column:projectedRevenue"`
	ProjectedCosts   float64 `json:"projected_costs" gorm:"column:projectedCosts"`
	ProjectedProfit  float64 `json:"projected_profit" gorm:"column:projectedProfit"`
	ProfitMargin     float64 `json:"profit_margin" gorm:"column:profitMargin"`

	CreatedAt time.Time `json:"created_at" gorm:"column:createdAt"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updatedAt"`
}

func (FinancialProjection) TableName() string {
	return "financial_projections"
}
