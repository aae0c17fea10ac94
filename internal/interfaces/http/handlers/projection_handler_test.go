package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/AgroVista/agro-vista-api/internal/application/usecases"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProjectionApp() *fiber.App {
	app := fiber.New()
	handler := NewProjectionHandler(usecases.NewProjectionUseCase(nil))
	app.Post("/projections/compare", handler.Compare)
	return app
}

func TestProjectionHandler_Compare(t *testing.T) {
	app := setupProjectionApp()

	resp := postJSON(t, app, "/projections/compare", fiber.Map{
		"base_revenue":           100000,
		"base_volume":            200,
		"fixed_costs":            20000,
		"variable_cost_per_unit": 150,
		"months":                 12,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []usecases.ScenarioResult `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body.Data, 3)
	assert.Equal(t, "optimistic", body.Data[0].Scenario)
	assert.Equal(t, "realistic", body.Data[1].Scenario)
	assert.Equal(t, "pessimistic", body.Data[2].Scenario)
	assert.Len(t, body.Data[0].Months, 12)
	assert.Greater(t, body.Data[0].Summary.FinalProfit, body.Data[2].Summary.FinalProfit)
}

func TestProjectionHandler_Compare_MesesForaDoLimite(t *testing.T) {
	app := setupProjectionApp()

	resp := postJSON(t, app, "/projections/compare", fiber.Map{
		"base_revenue":           100000,
		"base_volume":            200,
		"fixed_costs":            20000,
		"variable_cost_per_unit": 150,
		"months":                 120,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
