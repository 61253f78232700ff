package lembrete

import (
	"context"
	"time"

	"github.com/PetCareServices/petcare-api/internal/models"
)

const (
	TipoConfirmacao = "confirmacao"
	TipoLembrete    = "lembrete"
)

const (
	StatusPendente = "pendente"
	StatusEnviado  = "enviado"
	StatusErro     = "erro"
)

const formatoData = "2006-01-02"

// DeveEnviar decide se um lembrete pendente sai nesta passada.
// Confirmações saem sempre; lembretes de consulta só saem quando o
// agendamento é exatamente amanhã (ano/mês/dia) em relação a agora.
func DeveEnviar(tipo string, dataAgendamento string, agora time.Time) bool {
	if tipo == TipoConfirmacao {
		return true
	}
	if tipo != TipoLembrete {
		return false
	}

	data, err := time.ParseInLocation(formatoData, dataAgendamento, agora.Location())
	if err != nil {
		return false
	}

	amanha := agora.AddDate(0, 0, 1)
	return data.Year() == amanha.Year() &&
		data.Month() == amanha.Month() &&
		data.Day() == amanha.Day()
}

type Repository interface {
	// ListPendentes devolve os lembretes com status pendente e sem data de
	// envio, com agendamento e cliente carregados.
	ListPendentes(ctx context.Context) ([]models.LembreteEmail, error)

	MarcarEnviado(ctx context.Context, id uint, quando time.Time) error
	MarcarErro(ctx context.Context, id uint, motivo string) error
}
