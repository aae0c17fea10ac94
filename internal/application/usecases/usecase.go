package usecases

import (
	"errors"
	"time"

	"github.com/AgroVista/agro-vista-api/internal/utils"
)

// Erros de registro não encontrado, mapeados para 404 na camada HTTP
var (
	ErrChecklistNaoEncontrado = errors.New("pergunta não encontrada no catálogo ativo")
	ErrAnimalNaoEncontrado    = errors.New("animal não encontrado")
	ErrFazendaNaoEncontrada   = errors.New("fazenda não encontrada")
)

// todayInBrasil retorna a data atual no fuso de Brasília, truncada para o início do dia
func todayInBrasil() time.Time {
	now := time.Now().In(utils.GetBrasilLocation())
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// parseDate converte uma string de data para time.Time, aceitando os formatos
// enviados pelos clientes da API
func parseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}

	// Tentar formato ISO8601 com timezone
	t, err := time.Parse(time.RFC3339, dateStr)
	if err == nil {
		return t, nil
	}

	// Tentar formato de data simples
	t, err = time.Parse("2006-01-02", dateStr)
	if err == nil {
		// Definir hora para início do dia (00:00:00)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
	}

	// Tentar formato de data e hora sem timezone
	t, err = time.Parse("2006-01-02T15:04:05", dateStr)
	if err == nil {
		return t, nil
	}

	return time.Time{}, err
}
