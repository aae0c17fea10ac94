package handlers

import (
	"errors"
	"strconv"

	"github.com/AgroVista/agro-vista-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProjectionHandler lida com requisições de projeção financeira
type ProjectionHandler struct {
	projectionUseCase *usecases.ProjectionUseCase
}

// NewProjectionHandler cria uma nova instância de ProjectionHandler
func NewProjectionHandler(projectionUseCase *usecases.ProjectionUseCase) *ProjectionHandler {
	return &ProjectionHandler{
		projectionUseCase: projectionUseCase,
	}
}

// Compare projeta os três cenários fixos para os parâmetros base informados
// @Summary Compara cenários de projeção
// @Description Gera as séries mensais dos cenários otimista, realista e pessimista
// @Tags projections
// @Accept json
// @Produce json
// @Param body body usecases.ProjectionInput true "Parâmetros base"
// @Success 200 {object} map[string]interface{} "Um resultado por cenário"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Router /projections/compare [post]
func (h *ProjectionHandler) Compare(c *fiber.Ctx) error {
	var input usecases.ProjectionInput
	if err := parseAndValidate(c, &input); err != nil {
		return err
	}

	results := h.projectionUseCase.Compare(input)

	return c.JSON(fiber.Map{
		"data": results,
	})
}

// Create recalcula o cenário escolhido e persiste o snapshot do resumo
// @Summary Salva uma projeção
// @Tags projections
// @Accept json
// @Produce json
// @Param body body usecases.SaveProjectionInput true "Cenário e parâmetros base"
// @Success 201 {object} map[string]interface{} "Projeção salva"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /projections [post]
func (h *ProjectionHandler) Create(c *fiber.Ctx) error {
	var input usecases.SaveProjectionInput
	if err := parseAndValidate(c, &input); err != nil {
		return err
	}

	projection, err := h.projectionUseCase.Save(input)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao salvar projeção: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(projection)
}

// List retorna as projeções salvas da fazenda
// @Summary Lista projeções salvas
// @Tags projections
// @Produce json
// @Param farm_id path int true "ID da fazenda"
// @Success 200 {object} map[string]interface{} "Projeções salvas"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /projections/farms/{farm_id} [get]
func (h *ProjectionHandler) List(c *fiber.Ctx) error {
	farmID, err := strconv.Atoi(c.Params("farm_id"))
	if err != nil || farmID < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'farm_id' inválido"})
	}

	projections, err := h.projectionUseCase.List(farmID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar projeções: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  projections,
		"total": len(projections),
	})
}

// Delete remove uma projeção salva da fazenda
// @Summary Remove uma projeção
// @Tags projections
// @Produce json
// @Param id path int true "ID da projeção"
// @Param farm_id query int true "ID da fazenda"
// @Success 200 {object} map[string]interface{} "Confirmação"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 404 {object} map[string]interface{} "Projeção não encontrada"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /projections/{id} [delete]
func (h *ProjectionHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'id' inválido"})
	}

	farmID, err := strconv.Atoi(c.Query("farm_id", "0"))
	if err != nil || farmID < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'farm_id' inválido"})
	}

	if err := h.projectionUseCase.Delete(id, farmID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Projeção não encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao remover projeção: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true})
}
