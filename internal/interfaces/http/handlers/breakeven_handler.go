package handlers

import (
	"errors"

	"github.com/AgroVista/agro-vista-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// BreakEvenHandler lida com requisições de análise de ponto de equilíbrio
type BreakEvenHandler struct {
	breakEvenUseCase *usecases.BreakEvenUseCase
}

// NewBreakEvenHandler cria uma nova instância de BreakEvenHandler
func NewBreakEvenHandler(breakEvenUseCase *usecases.BreakEvenUseCase) *BreakEvenHandler {
	return &BreakEvenHandler{
		breakEvenUseCase: breakEvenUseCase,
	}
}

// analyzeRequest inclui o farm_id apenas para rastreio: a análise é efêmera e
// derivada somente dos parâmetros enviados
type analyzeRequest struct {
	FarmID int `json:"farm_id" validate:"required,gt=0"`
	usecases.BreakEvenInput
}

// Analyze calcula a análise completa de break-even com tabelas de sensibilidade
// @Summary Calcula o ponto de equilíbrio
// @Description Análise base + sensibilidade de volume, preço e custo variável. Nada é persistido.
// @Tags breakeven
// @Accept json
// @Produce json
// @Param body body analyzeRequest true "Parâmetros da operação"
// @Success 200 {object} usecases.BreakEvenAnalysis "Análise completa"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 422 {object} map[string]interface{} "Ponto de equilíbrio inviável"
// @Router /breakeven/analyze [post]
func (h *BreakEvenHandler) Analyze(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	analysis, err := h.breakEvenUseCase.Analyze(req.BreakEvenInput)
	if err != nil {
		if errors.Is(err, usecases.ErrBreakEvenInviavel) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":  err.Error(),
				"reason": "margem_contribuicao_nao_positiva",
			})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao calcular análise: " + err.Error()})
	}

	return c.JSON(analysis)
}
