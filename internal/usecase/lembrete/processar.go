package lembrete

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domain "github.com/PetCareServices/petcare-api/internal/domain/lembrete"
	"github.com/PetCareServices/petcare-api/internal/mailer"
	"github.com/PetCareServices/petcare-api/internal/models"
)

// Processar percorre os lembretes pendentes e dispara os que estão no
// prazo. Falha em um lembrete não interrompe a passada: o registro é
// marcado com erro e os demais seguem.
type Processar struct {
	repo     domain.Repository
	enviador mailer.Enviador
	log      zerolog.Logger
}

func NewProcessar(
	repo domain.Repository,
	enviador mailer.Enviador,
	log zerolog.Logger,
) *Processar {
	return &Processar{
		repo:     repo,
		enviador: enviador,
		log:      log,
	}
}

// Execute devolve quantos lembretes foram enviados nesta passada.
func (uc *Processar) Execute(ctx context.Context, agora time.Time) (int, error) {
	pendentes, err := uc.repo.ListPendentes(ctx)
	if err != nil {
		return 0, err
	}

	enviados := 0
	for i := range pendentes {
		l := &pendentes[i]

		// Lembrete órfão (agendamento ou cliente sumiu do preload) não
		// tem destinatário: vira erro e a passada segue.
		if l.Agendamento.ID == 0 || l.Agendamento.Cliente.ID == 0 {
			uc.log.Error().
				Uint("lembrete_id", l.ID).
				Uint("agendamento_id", l.AgendamentoID).
				Msg("lembrete sem agendamento ou cliente vinculado")
			uc.marcarErro(ctx, l.ID, "agendamento ou cliente do lembrete nao encontrado")
			continue
		}

		if !domain.DeveEnviar(l.Tipo, l.Agendamento.Data, agora) {
			continue
		}

		if err := uc.enviar(ctx, l, agora); err != nil {
			uc.log.Error().
				Err(err).
				Uint("lembrete_id", l.ID).
				Str("tipo", l.Tipo).
				Msg("falha ao enviar lembrete")

			uc.marcarErro(ctx, l.ID, err.Error())
			continue
		}

		// A mensagem já saiu; falha ao gravar o envio não pode travar a
		// fila. Marca erro para o registro não ser reenviado na próxima
		// passada.
		if err := uc.repo.MarcarEnviado(ctx, l.ID, agora); err != nil {
			uc.log.Error().
				Err(err).
				Uint("lembrete_id", l.ID).
				Msg("falha ao registrar envio do lembrete")
			uc.marcarErro(ctx, l.ID, "enviado, mas sem registro: "+err.Error())
			continue
		}
		enviados++
	}

	return enviados, nil
}

func (uc *Processar) marcarErro(ctx context.Context, id uint, motivo string) {
	if err := uc.repo.MarcarErro(ctx, id, motivo); err != nil {
		uc.log.Error().
			Err(err).
			Uint("lembrete_id", id).
			Msg("falha ao registrar erro do lembrete")
	}
}

func (uc *Processar) enviar(ctx context.Context, l *models.LembreteEmail, agora time.Time) error {
	assunto, corpo, err := mailer.Montar(l.Tipo, mailer.DadosAgendamento{
		ClienteNome: l.Agendamento.ClienteNome,
		PetNome:     l.Agendamento.PetNome,
		ServicoNome: l.Agendamento.ServicoNome,
		Data:        l.Agendamento.Data,
		Hora:        l.Agendamento.Hora,
	})
	if err != nil {
		return err
	}

	return uc.enviador.Enviar(ctx, mailer.Mensagem{
		ID:       uuid.NewString(),
		Para:     l.Agendamento.Cliente.Email,
		Telefone: l.Agendamento.Cliente.Telefone,
		Assunto:  assunto,
		Corpo:    corpo,
	})
}
