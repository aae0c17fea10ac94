package handlers

import (
	"errors"
	"strconv"

	"github.com/AgroVista/agro-vista-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ChallengeHandler lida com requisições de desafios gamificados
type ChallengeHandler struct {
	challengeUseCase *usecases.ChallengeUseCase
}

// NewChallengeHandler cria uma nova instância de ChallengeHandler
func NewChallengeHandler(challengeUseCase *usecases.ChallengeUseCase) *ChallengeHandler {
	return &ChallengeHandler{
		challengeUseCase: challengeUseCase,
	}
}

// GetActive retorna os desafios com janela vigente
// @Summary Lista desafios ativos
// @Tags challenges
// @Produce json
// @Success 200 {object} map[string]interface{} "Desafios ativos"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /challenges/active [get]
func (h *ChallengeHandler) GetActive(c *fiber.Ctx) error {
	challenges, err := h.challengeUseCase.GetActive()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar desafios: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  challenges,
		"total": len(challenges),
	})
}

// GetAll retorna todos os desafios cadastrados
// @Summary Lista todos os desafios
// @Tags challenges
// @Produce json
// @Success 200 {object} map[string]interface{} "Desafios"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /challenges [get]
func (h *ChallengeHandler) GetAll(c *fiber.Ctx) error {
	challenges, err := h.challengeUseCase.GetAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar desafios: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  challenges,
		"total": len(challenges),
	})
}

// GetProgress retorna o progresso da fazenda em todos os desafios
// @Summary Retorna o progresso da fazenda
// @Tags challenges
// @Produce json
// @Param farm_id path int true "ID da fazenda"
// @Success 200 {object} map[string]interface{} "Progresso por desafio"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /challenges/farms/{farm_id}/progress [get]
func (h *ChallengeHandler) GetProgress(c *fiber.Ctx) error {
	farmID, err := strconv.Atoi(c.Params("farm_id"))
	if err != nil || farmID < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'farm_id' inválido"})
	}

	progress, err := h.challengeUseCase.GetProgress(farmID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar progresso: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  progress,
		"total": len(progress),
	})
}

// UpdateProgress atualiza o progresso de um registro de desafio
// @Summary Atualiza progresso em um desafio
// @Tags challenges
// @Accept json
// @Produce json
// @Param id path int true "ID do registro de progresso"
// @Param body body usecases.UpdateProgressInput true "Novo progresso"
// @Success 200 {object} map[string]interface{} "Confirmação"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 404 {object} map[string]interface{} "Registro não encontrado"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /challenges/progress/{id} [put]
func (h *ChallengeHandler) UpdateProgress(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'id' inválido"})
	}

	var input usecases.UpdateProgressInput
	if err := parseAndValidate(c, &input); err != nil {
		return err
	}

	if err := h.challengeUseCase.UpdateProgress(id, input); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Registro de progresso não encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao atualizar progresso: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true})
}

// Create cadastra um novo desafio
// @Summary Cria um desafio
// @Tags challenges
// @Accept json
// @Produce json
// @Param body body usecases.CreateChallengeInput true "Dados do desafio"
// @Success 201 {object} map[string]interface{} "Desafio criado"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /challenges [post]
func (h *ChallengeHandler) Create(c *fiber.Ctx) error {
	var input usecases.CreateChallengeInput
	if err := parseAndValidate(c, &input); err != nil {
		return err
	}

	challenge, err := h.challengeUseCase.Create(input)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao criar desafio: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(challenge)
}
