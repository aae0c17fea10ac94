package handlers

import (
	"errors"
	"strconv"

	"github.com/AgroVista/agro-vista-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// AnimalHandler lida com requisições do registro animal e pesagens
type AnimalHandler struct {
	animalUseCase *usecases.AnimalUseCase
}

// NewAnimalHandler cria uma nova instância de AnimalHandler
func NewAnimalHandler(animalUseCase *usecases.AnimalUseCase) *AnimalHandler {
	return &AnimalHandler{
		animalUseCase: animalUseCase,
	}
}

// GetAnimals retorna os animais da fazenda
// @Summary Lista os animais da fazenda
// @Tags animals
// @Produce json
// @Param farm_id path int true "ID da fazenda"
// @Param status query string false "Filtrar por status (active, sold, deceased, quarantine)"
// @Success 200 {object} map[string]interface{} "Animais"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /animals/farms/{farm_id} [get]
func (h *AnimalHandler) GetAnimals(c *fiber.Ctx) error {
	farmID, err := strconv.Atoi(c.Params("farm_id"))
	if err != nil || farmID < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'farm_id' inválido"})
	}

	status := c.Query("status", "")

	animals, err := h.animalUseCase.GetAnimals(farmID, status)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar animais: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  animals,
		"total": len(animals),
	})
}

// RegisterWeighing registra uma pesagem e retorna o GMD contra a anterior
// @Summary Registra uma pesagem
// @Description Grava a pesagem, atualiza o peso atual do animal e calcula o GMD (kg/dia)
// @Tags animals
// @Accept json
// @Produce json
// @Param animal_id path int true "ID do animal"
// @Param body body usecases.RegisterWeighingInput true "Dados da pesagem"
// @Success 201 {object} usecases.WeighingResult "Pesagem registrada com GMD"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 404 {object} map[string]interface{} "Animal não encontrado"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /animals/{animal_id}/weighings [post]
func (h *AnimalHandler) RegisterWeighing(c *fiber.Ctx) error {
	animalID, err := strconv.Atoi(c.Params("animal_id"))
	if err != nil || animalID < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'animal_id' inválido"})
	}

	var input usecases.RegisterWeighingInput
	if err := parseAndValidate(c, &input); err != nil {
		return err
	}

	result, err := h.animalUseCase.RegisterWeighing(animalID, input)
	if err != nil {
		if errors.Is(err, usecases.ErrAnimalNaoEncontrado) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao registrar pesagem: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetWeighings retorna o histórico de pesagens do animal
// @Summary Lista as pesagens do animal
// @Tags animals
// @Produce json
// @Param animal_id path int true "ID do animal"
// @Success 200 {object} map[string]interface{} "Pesagens"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /animals/{animal_id}/weighings [get]
func (h *AnimalHandler) GetWeighings(c *fiber.Ctx) error {
	animalID, err := strconv.Atoi(c.Params("animal_id"))
	if err != nil || animalID < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'animal_id' inválido"})
	}

	weighings, err := h.animalUseCase.GetWeighings(animalID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar pesagens: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  weighings,
		"total": len(weighings),
	})
}
