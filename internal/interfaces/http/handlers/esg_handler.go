package handlers

import (
	"errors"
	"strconv"

	"github.com/AgroVista/agro-vista-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// ESGHandler lida com requisições do módulo ESG (checklist, score e selos)
type ESGHandler struct {
	esgUseCase *usecases.ESGUseCase
}

// NewESGHandler cria uma nova instância de ESGHandler
func NewESGHandler(esgUseCase *usecases.ESGUseCase) *ESGHandler {
	return &ESGHandler{
		esgUseCase: esgUseCase,
	}
}

// GetChecklists retorna o catálogo ativo de perguntas ESG
// @Summary Retorna o catálogo ESG
// @Description Retorna as perguntas ativas do checklist, agrupadas por pilar
// @Tags esg
// @Produce json
// @Success 200 {object} map[string]interface{} "Catálogo de perguntas"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /esg/checklists [get]
func (h *ESGHandler) GetChecklists(c *fiber.Ctx) error {
	checklists, err := h.esgUseCase.GetChecklists()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar checklists: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  checklists,
		"total": len(checklists),
	})
}

// AnswerQuestion grava a resposta da fazenda e retorna o score recalculado
// @Summary Responde uma pergunta do checklist
// @Description Grava (ou sobrescreve) a resposta da fazenda, recalcula o score e concede selo quando o nível muda
// @Tags esg
// @Accept json
// @Produce json
// @Param body body usecases.AnswerQuestionInput true "Resposta"
// @Success 200 {object} map[string]interface{} "ID da resposta e score atualizado"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 404 {object} map[string]interface{} "Pergunta não encontrada"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /esg/responses [post]
func (h *ESGHandler) AnswerQuestion(c *fiber.Ctx) error {
	var input usecases.AnswerQuestionInput
	if err := parseAndValidate(c, &input); err != nil {
		return err
	}

	responseID, score, err := h.esgUseCase.AnswerQuestion(input)
	if err != nil {
		if errors.Is(err, usecases.ErrChecklistNaoEncontrado) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao salvar resposta: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"response_id": responseID,
		"score":       score,
	})
}

// GetScore retorna o score ESG atual da fazenda
// @Summary Retorna o score ESG
// @Tags esg
// @Produce json
// @Param farm_id path int true "ID da fazenda"
// @Success 200 {object} usecases.ESGScore "Score com detalhamento por pilar"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /esg/farms/{farm_id}/score [get]
func (h *ESGHandler) GetScore(c *fiber.Ctx) error {
	farmID, err := strconv.Atoi(c.Params("farm_id"))
	if err != nil || farmID < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'farm_id' inválido"})
	}

	score, err := h.esgUseCase.CalculateScore(farmID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao calcular score: " + err.Error()})
	}

	return c.JSON(score)
}

// GetResponses retorna as respostas atuais da fazenda
// @Summary Retorna as respostas da fazenda
// @Tags esg
// @Produce json
// @Param farm_id path int true "ID da fazenda"
// @Success 200 {object} map[string]interface{} "Respostas"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /esg/farms/{farm_id}/responses [get]
func (h *ESGHandler) GetResponses(c *fiber.Ctx) error {
	farmID, err := strconv.Atoi(c.Params("farm_id"))
	if err != nil || farmID < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'farm_id' inválido"})
	}

	responses, err := h.esgUseCase.GetResponses(farmID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar respostas: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  responses,
		"total": len(responses),
	})
}

// GetBadge retorna o selo atual da fazenda (linha mais recente do histórico)
// @Summary Retorna o selo atual
// @Tags esg
// @Produce json
// @Param farm_id path int true "ID da fazenda"
// @Success 200 {object} map[string]interface{} "Selo atual ou null"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /esg/farms/{farm_id}/badge [get]
func (h *ESGHandler) GetBadge(c *fiber.Ctx) error {
	farmID, err := strconv.Atoi(c.Params("farm_id"))
	if err != nil || farmID < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'farm_id' inválido"})
	}

	badge, err := h.esgUseCase.GetBadge(farmID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar selo: " + err.Error()})
	}

	return c.JSON(fiber.Map{"badge": badge})
}

// GetBadgeHistory retorna o histórico completo de selos da fazenda
// @Summary Retorna o histórico de selos
// @Tags esg
// @Produce json
// @Param farm_id path int true "ID da fazenda"
// @Success 200 {object} map[string]interface{} "Histórico de selos"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /esg/farms/{farm_id}/badges [get]
func (h *ESGHandler) GetBadgeHistory(c *fiber.Ctx) error {
	farmID, err := strconv.Atoi(c.Params("farm_id"))
	if err != nil || farmID < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'farm_id' inválido"})
	}

	badges, err := h.esgUseCase.GetBadgeHistory(farmID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar histórico de selos: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  badges,
		"total": len(badges),
	})
}
