package handlers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validate é a instância compartilhada de validação dos DTOs de entrada
var validate = validator.New()

// parseAndValidate faz o bind do corpo JSON e valida as tags do DTO.
// Retorna uma resposta 400 já montada em caso de falha.
func parseAndValidate(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido: " + err.Error(),
		})
	}

	if err := validate.Struct(out); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Parâmetros inválidos",
			"fields": validationMessages(err),
		})
	}

	return nil
}

// validationMessages converte os erros do validator em mensagens por campo
func validationMessages(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s é obrigatório", field))
		case "gt":
			messages = append(messages, fmt.Sprintf("%s deve ser maior que %s", field, fe.Param()))
		case "gte":
			messages = append(messages, fmt.Sprintf("%s deve ser maior ou igual a %s", field, fe.Param()))
		case "lte":
			messages = append(messages, fmt.Sprintf("%s deve ser menor ou igual a %s", field, fe.Param()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s deve ser um de: %s", field, fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s inválido (%s)", field, fe.Tag()))
		}
	}
	return messages
}
