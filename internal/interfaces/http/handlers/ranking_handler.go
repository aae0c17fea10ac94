package handlers

import (
	"strconv"

	"github.com/AgroVista/agro-vista-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// RankingHandler lida com requisições do ranking global de fazendas
type RankingHandler struct {
	rankingUseCase *usecases.RankingUseCase
}

// NewRankingHandler cria uma nova instância de RankingHandler
func NewRankingHandler(rankingUseCase *usecases.RankingUseCase) *RankingHandler {
	return &RankingHandler{
		rankingUseCase: rankingUseCase,
	}
}

// GetGlobalRanking retorna o ranking por pontuação total
// @Summary Retorna o ranking global
// @Description Ranking por score ESG + pontos de desafios, com filtro opcional de região
// @Tags ranking
// @Produce json
// @Param region query string false "Filtrar por região"
// @Param limit query int false "Limite de posições" default(10)
// @Success 200 {object} map[string]interface{} "Ranking ordenado"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /ranking [get]
func (h *RankingHandler) GetGlobalRanking(c *fiber.Ctx) error {
	region := c.Query("region", "")

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'limit' inválido"})
	}

	ranking, err := h.rankingUseCase.GetGlobalRanking(region, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao montar ranking: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  ranking,
		"total": len(ranking),
	})
}
