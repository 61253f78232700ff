package lembrete

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var agora = time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)

func TestDeveEnviarConfirmacao(t *testing.T) {
	// Confirmações saem em qualquer passada, independente da data.
	assert.True(t, DeveEnviar(TipoConfirmacao, "2026-08-31", agora))
	assert.True(t, DeveEnviar(TipoConfirmacao, "2026-12-25", agora))
	assert.True(t, DeveEnviar(TipoConfirmacao, "data-invalida", agora))
}

func TestDeveEnviarLembreteSomenteVespera(t *testing.T) {
	assert.True(t, DeveEnviar(TipoLembrete, "2026-09-01", agora))

	assert.False(t, DeveEnviar(TipoLembrete, "2026-08-31", agora)) // hoje
	assert.False(t, DeveEnviar(TipoLembrete, "2026-09-02", agora)) // depois de amanhã
	assert.False(t, DeveEnviar(TipoLembrete, "2026-08-30", agora)) // passado
}

func TestDeveEnviarLembreteViradaDeMes(t *testing.T) {
	fimDeMes := time.Date(2026, 1, 31, 8, 0, 0, 0, time.UTC)
	assert.True(t, DeveEnviar(TipoLembrete, "2026-02-01", fimDeMes))
}

func TestDeveEnviarEntradasInvalidas(t *testing.T) {
	assert.False(t, DeveEnviar(TipoLembrete, "01/09/2026", agora))
	assert.False(t, DeveEnviar(TipoLembrete, "", agora))
	assert.False(t, DeveEnviar("outro_tipo", "2026-09-01", agora))
}
