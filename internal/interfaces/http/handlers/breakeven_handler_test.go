package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AgroVista/agro-vista-api/internal/application/usecases"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBreakEvenApp() *fiber.App {
	app := fiber.New()
	handler := NewBreakEvenHandler(usecases.NewBreakEvenUseCase())
	app.Post("/breakeven/analyze", handler.Analyze)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestBreakEvenHandler_Analyze(t *testing.T) {
	app := setupBreakEvenApp()

	resp := postJSON(t, app, "/breakeven/analyze", fiber.Map{
		"farm_id":                1,
		"fixed_costs":            25000,
		"variable_cost_per_unit": 150,
		"unit_price":             500,
		"current_units":          100,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var analysis usecases.BreakEvenAnalysis
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&analysis))

	assert.InDelta(t, 350, analysis.BaseAnalysis.ContributionMargin, 1e-9)
	assert.InDelta(t, 10000, analysis.BaseAnalysis.CurrentProfit, 1e-9)
	assert.Len(t, analysis.VolumeScenarios, 11)
	assert.Len(t, analysis.PriceAnalysis, 5)
	assert.Len(t, analysis.CostAnalysis, 5)
}

func TestBreakEvenHandler_Analyze_Inviavel(t *testing.T) {
	app := setupBreakEvenApp()

	resp := postJSON(t, app, "/breakeven/analyze", fiber.Map{
		"farm_id":                1,
		"fixed_costs":            25000,
		"variable_cost_per_unit": 500,
		"unit_price":             500,
		"current_units":          100,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "margem_contribuicao_nao_positiva", body["reason"])
}

func TestBreakEvenHandler_Analyze_ParametrosInvalidos(t *testing.T) {
	app := setupBreakEvenApp()

	// Preço unitário ausente viola gt=0
	resp := postJSON(t, app, "/breakeven/analyze", fiber.Map{
		"farm_id":       1,
		"fixed_costs":   25000,
		"current_units": 100,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
