package handlers

import (
	"errors"
	"strconv"

	"github.com/AgroVista/agro-vista-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler lida com requisições do painel da fazenda
type DashboardHandler struct {
	dashboardUseCase *usecases.DashboardUseCase
}

// NewDashboardHandler cria uma nova instância de DashboardHandler
func NewDashboardHandler(dashboardUseCase *usecases.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

// GetFarmDashboard retorna o snapshot de indicadores da fazenda
// @Summary Retorna o painel da fazenda
// @Description Score ESG, selo atual, rebanho ativo e avanço nos desafios
// @Tags dashboard
// @Produce json
// @Param farm_id path int true "ID da fazenda"
// @Success 200 {object} usecases.DashboardResult "Indicadores"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 404 {object} map[string]interface{} "Fazenda não encontrada"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /dashboard/farms/{farm_id} [get]
func (h *DashboardHandler) GetFarmDashboard(c *fiber.Ctx) error {
	farmID, err := strconv.Atoi(c.Params("farm_id"))
	if err != nil || farmID < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'farm_id' inválido"})
	}

	dashboard, err := h.dashboardUseCase.GetFarmDashboard(farmID)
	if err != nil {
		if errors.Is(err, usecases.ErrFazendaNaoEncontrada) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao montar painel: " + err.Error()})
	}

	return c.JSON(dashboard)
}
