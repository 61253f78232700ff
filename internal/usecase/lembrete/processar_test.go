package lembrete

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	domain "github.com/PetCareServices/petcare-api/internal/domain/lembrete"
	"github.com/PetCareServices/petcare-api/internal/mailer"
	"github.com/PetCareServices/petcare-api/internal/models"
)

var agora = time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)

// --------- mocks ---------

type lembreteRepoMock struct {
	pendentes []models.LembreteEmail

	enviados map[uint]time.Time
	erros    map[uint]string

	listErr error

	// falhaEnviadoPara simula gravação perdida ao marcar este lembrete.
	falhaEnviadoPara uint
}

func novoLembreteRepoMock(pendentes ...models.LembreteEmail) *lembreteRepoMock {
	return &lembreteRepoMock{
		pendentes: pendentes,
		enviados:  make(map[uint]time.Time),
		erros:     make(map[uint]string),
	}
}

func (m *lembreteRepoMock) ListPendentes(context.Context) ([]models.LembreteEmail, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.pendentes, nil
}

func (m *lembreteRepoMock) MarcarEnviado(_ context.Context, id uint, quando time.Time) error {
	if m.falhaEnviadoPara != 0 && id == m.falhaEnviadoPara {
		return errors.New("conexão perdida")
	}
	m.enviados[id] = quando
	return nil
}

func (m *lembreteRepoMock) MarcarErro(_ context.Context, id uint, motivo string) error {
	m.erros[id] = motivo
	return nil
}

var _ domain.Repository = (*lembreteRepoMock)(nil)

type enviadorMock struct {
	mensagens []mailer.Mensagem

	// falhaPara devolve erro no envio destinado a este endereço.
	falhaPara string
}

func (e *enviadorMock) Enviar(_ context.Context, m mailer.Mensagem) error {
	if e.falhaPara != "" && m.Para == e.falhaPara {
		return errors.New("smtp indisponível")
	}
	e.mensagens = append(e.mensagens, m)
	return nil
}

func pendente(id uint, tipo, dataAgendamento, email string) models.LembreteEmail {
	return models.LembreteEmail{
		ID:            id,
		AgendamentoID: 100 + id,
		Tipo:          tipo,
		Status:        domain.StatusPendente,
		Agendamento: models.Agendamento{
			ID:          100 + id,
			Data:        dataAgendamento,
			Hora:        "09:00",
			ClienteNome: "Maria Souza",
			PetNome:     "Rex",
			ServicoNome: "Banho e Tosa",
			Cliente:     models.Cliente{ID: 1, Email: email, Telefone: "+5511999990000"},
		},
	}
}

// --------- tests ---------

func TestProcessarEnviaConfirmacaoELembreteDaVespera(t *testing.T) {
	repo := novoLembreteRepoMock(
		pendente(1, domain.TipoConfirmacao, "2026-09-10", "maria@example.com"),
		pendente(2, domain.TipoLembrete, "2026-09-01", "maria@example.com"),
	)
	env := &enviadorMock{}

	uc := NewProcessar(repo, env, zerolog.Nop())

	enviados, err := uc.Execute(context.Background(), agora)
	assert.NoError(t, err)
	assert.Equal(t, 2, enviados)

	assert.Len(t, env.mensagens, 2)
	assert.Equal(t, "Confirmação de Agendamento", env.mensagens[0].Assunto)
	assert.Equal(t, "Lembrete de Consulta", env.mensagens[1].Assunto)
	assert.Contains(t, env.mensagens[0].Corpo, "Maria Souza")
	assert.Contains(t, env.mensagens[1].Corpo, "Rex")
	assert.NotEmpty(t, env.mensagens[0].ID)

	assert.Contains(t, repo.enviados, uint(1))
	assert.Contains(t, repo.enviados, uint(2))
	assert.Empty(t, repo.erros)
}

func TestProcessarSeguraLembreteForaDaVespera(t *testing.T) {
	repo := novoLembreteRepoMock(
		pendente(1, domain.TipoLembrete, "2026-09-15", "maria@example.com"),
	)
	env := &enviadorMock{}

	uc := NewProcessar(repo, env, zerolog.Nop())

	enviados, err := uc.Execute(context.Background(), agora)
	assert.NoError(t, err)
	assert.Equal(t, 0, enviados)

	// Fica pendente para uma passada futura, sem marca de erro.
	assert.Empty(t, env.mensagens)
	assert.Empty(t, repo.enviados)
	assert.Empty(t, repo.erros)
}

func TestProcessarFalhaDeEnvioNaoInterrompeAPassada(t *testing.T) {
	repo := novoLembreteRepoMock(
		pendente(1, domain.TipoConfirmacao, "2026-09-10", "quebrado@example.com"),
		pendente(2, domain.TipoConfirmacao, "2026-09-10", "maria@example.com"),
	)
	env := &enviadorMock{falhaPara: "quebrado@example.com"}

	uc := NewProcessar(repo, env, zerolog.Nop())

	enviados, err := uc.Execute(context.Background(), agora)
	assert.NoError(t, err)
	assert.Equal(t, 1, enviados)

	assert.Equal(t, "smtp indisponível", repo.erros[1])
	assert.Contains(t, repo.enviados, uint(2))
	assert.NotContains(t, repo.enviados, uint(1))
}

func TestProcessarFalhaAoMarcarEnviadoNaoInterrompeAPassada(t *testing.T) {
	repo := novoLembreteRepoMock(
		pendente(1, domain.TipoConfirmacao, "2026-09-10", "maria@example.com"),
		pendente(2, domain.TipoConfirmacao, "2026-09-10", "joana@example.com"),
	)
	repo.falhaEnviadoPara = 1
	env := &enviadorMock{}

	uc := NewProcessar(repo, env, zerolog.Nop())

	enviados, err := uc.Execute(context.Background(), agora)
	assert.NoError(t, err)
	assert.Equal(t, 1, enviados)

	// As duas mensagens saíram; a gravação perdida vira marca de erro no
	// primeiro lembrete para ele não ser reenviado na próxima passada.
	assert.Len(t, env.mensagens, 2)
	assert.Contains(t, repo.erros[1], "conexão perdida")
	assert.Contains(t, repo.enviados, uint(2))
	assert.NotContains(t, repo.enviados, uint(1))
}

func TestProcessarMarcaErroEmLembreteOrfao(t *testing.T) {
	orfao := models.LembreteEmail{
		ID:            1,
		AgendamentoID: 999,
		Tipo:          domain.TipoConfirmacao,
		Status:        domain.StatusPendente,
	}
	repo := novoLembreteRepoMock(
		orfao,
		pendente(2, domain.TipoConfirmacao, "2026-09-10", "maria@example.com"),
	)
	env := &enviadorMock{}

	uc := NewProcessar(repo, env, zerolog.Nop())

	enviados, err := uc.Execute(context.Background(), agora)
	assert.NoError(t, err)
	assert.Equal(t, 1, enviados)

	// Nada sai para o lembrete sem agendamento; só o íntegro é enviado.
	assert.Len(t, env.mensagens, 1)
	assert.Equal(t, "maria@example.com", env.mensagens[0].Para)
	assert.Contains(t, repo.erros[1], "nao encontrado")
	assert.NotContains(t, repo.enviados, uint(1))
}

func TestProcessarIgnoraTipoDesconhecido(t *testing.T) {
	repo := novoLembreteRepoMock(
		pendente(1, "aniversario", "2026-09-10", "maria@example.com"),
	)
	env := &enviadorMock{}

	uc := NewProcessar(repo, env, zerolog.Nop())

	enviados, err := uc.Execute(context.Background(), agora)
	assert.NoError(t, err)
	assert.Equal(t, 0, enviados)
	assert.Empty(t, env.mensagens)
	assert.Empty(t, repo.enviados)
}

func TestProcessarFalhaAoListar(t *testing.T) {
	repo := novoLembreteRepoMock()
	repo.listErr = errors.New("banco fora do ar")

	uc := NewProcessar(repo, &enviadorMock{}, zerolog.Nop())

	_, err := uc.Execute(context.Background(), agora)
	assert.Error(t, err)
}
