package agendamento

import (
	"context"

	"github.com/PetCareServices/petcare-api/internal/audit"
	"github.com/PetCareServices/petcare-api/internal/cache"
	"github.com/PetCareServices/petcare-api/internal/domain/agenda"
	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AtualizarAgendamentoInput struct {
	ClienteID *uint
	PetID     *uint
	ServicoID *uint

	// Novo horário. agenda.HorarioAtualID significa "manter o slot atual";
	// nil significa que o campo não foi enviado.
	HorarioID *uint

	Status      *string
	Observacoes *string

	FuncionarioAutor uint
}

// ======================================================
// USE CASE
// ======================================================

type AtualizarAgendamento struct {
	repo   agenda.Repository
	indice *agenda.IndicePorDia
	cache  *cache.HorariosCache
	audit  *audit.Dispatcher
}

func NewAtualizarAgendamento(
	repo agenda.Repository,
	indice *agenda.IndicePorDia,
	horarios *cache.HorariosCache,
	audit *audit.Dispatcher,
) *AtualizarAgendamento {
	return &AtualizarAgendamento{
		repo:   repo,
		indice: indice,
		cache:  horarios,
		audit:  audit,
	}
}

func (uc *AtualizarAgendamento) Execute(
	ctx context.Context,
	id uint,
	in AtualizarAgendamentoInput,
) (*models.Agendamento, error) {

	ag, err := uc.repo.GetAgendamento(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_nao_encontrado")
	}

	// Mudança de referência sempre renova o nome denormalizado.
	if in.ClienteID != nil && *in.ClienteID != ag.ClienteID {
		cliente, err := uc.repo.GetCliente(ctx, *in.ClienteID)
		if err != nil {
			return nil, httperr.ErrBusiness("cliente_nao_encontrado")
		}
		ag.ClienteID = cliente.ID
		ag.ClienteNome = cliente.Nome
	}

	if in.PetID != nil && *in.PetID != ag.PetID {
		pet, err := uc.repo.GetPet(ctx, *in.PetID)
		if err != nil {
			return nil, httperr.ErrBusiness("pet_nao_encontrado")
		}
		ag.PetID = pet.ID
		ag.PetNome = pet.Nome
	}

	if in.ServicoID != nil && *in.ServicoID != ag.ServicoID {
		servico, err := uc.repo.GetServico(ctx, *in.ServicoID)
		if err != nil {
			return nil, httperr.ErrBusiness("servico_nao_encontrado")
		}
		ag.ServicoID = servico.ID
		ag.ServicoNome = servico.Nome
		ag.ServicoPreco = servico.Preco
	}

	if in.Status != nil {
		if !agenda.StatusValido(*in.Status) {
			return nil, httperr.ErrBusiness("status_invalido")
		}
		ag.Status = *in.Status
	}

	if in.Observacoes != nil {
		ag.Observacoes = *in.Observacoes
	}

	dataAntiga := ag.Data

	var troca *agenda.TrocaHorario
	if in.HorarioID != nil && *in.HorarioID != agenda.HorarioAtualID {
		horario, err := uc.repo.GetHorario(ctx, *in.HorarioID)
		if err != nil {
			return nil, httperr.ErrBusiness("horario_nao_encontrado")
		}
		if !horario.Disponivel {
			return nil, httperr.ErrBusiness("horario_indisponivel")
		}

		funcionario, err := uc.repo.GetFuncionario(ctx, horario.FuncionarioID)
		if err != nil {
			return nil, httperr.ErrBusiness("funcionario_nao_encontrado")
		}

		troca = &agenda.TrocaHorario{
			Data:          ag.Data,
			Hora:          ag.Hora,
			FuncionarioID: ag.FuncionarioID,
		}

		ag.Data = horario.Data
		ag.Hora = horario.Hora
		ag.FuncionarioID = funcionario.ID
		ag.FuncionarioNome = funcionario.Nome
	}

	if err := uc.repo.AtualizarAgendamento(ctx, ag, troca); err != nil {
		return nil, err
	}

	if dataAntiga != ag.Data {
		uc.indice.Mover(dataAntiga, ag.Data, ag.ID)
	}
	if troca != nil {
		uc.cache.Invalidar(ctx, troca.Data)
		uc.cache.Invalidar(ctx, ag.Data)
	}

	uc.audit.Dispatch(audit.Event{
		FuncionarioID: &in.FuncionarioAutor,
		Acao:          "agendamento_atualizado",
		Entidade:      "agendamento",
		EntidadeID:    &ag.ID,
	})

	return ag, nil
}
