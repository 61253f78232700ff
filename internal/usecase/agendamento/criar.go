package agendamento

import (
	"context"

	"github.com/google/uuid"

	"github.com/PetCareServices/petcare-api/internal/audit"
	"github.com/PetCareServices/petcare-api/internal/cache"
	"github.com/PetCareServices/petcare-api/internal/domain/agenda"
	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CriarAgendamentoInput struct {
	ClienteID uint
	PetID     uint
	ServicoID uint

	// Horário escolhido na listagem de disponibilidade; dele saem data,
	// hora e funcionário.
	HorarioID uint

	Observacoes string

	FuncionarioAutor uint
}

// ======================================================
// USE CASE
// ======================================================

type CriarAgendamento struct {
	repo   agenda.Repository
	indice *agenda.IndicePorDia
	cache  *cache.HorariosCache
	audit  *audit.Dispatcher
}

func NewCriarAgendamento(
	repo agenda.Repository,
	indice *agenda.IndicePorDia,
	horarios *cache.HorariosCache,
	audit *audit.Dispatcher,
) *CriarAgendamento {
	return &CriarAgendamento{
		repo:   repo,
		indice: indice,
		cache:  horarios,
		audit:  audit,
	}
}

func (uc *CriarAgendamento) Execute(
	ctx context.Context,
	in CriarAgendamentoInput,
) (*models.Agendamento, error) {

	if in.HorarioID == 0 || in.HorarioID == agenda.HorarioAtualID {
		return nil, httperr.ErrBusiness("selecione_um_horario")
	}

	horario, err := uc.repo.GetHorario(ctx, in.HorarioID)
	if err != nil {
		return nil, httperr.ErrBusiness("horario_nao_encontrado")
	}
	if !horario.Disponivel {
		return nil, httperr.ErrBusiness("horario_indisponivel")
	}

	// Referências resolvidas antes de qualquer escrita.
	cliente, err := uc.repo.GetCliente(ctx, in.ClienteID)
	if err != nil {
		return nil, httperr.ErrBusiness("cliente_nao_encontrado")
	}

	pet, err := uc.repo.GetPet(ctx, in.PetID)
	if err != nil {
		return nil, httperr.ErrBusiness("pet_nao_encontrado")
	}

	servico, err := uc.repo.GetServico(ctx, in.ServicoID)
	if err != nil {
		return nil, httperr.ErrBusiness("servico_nao_encontrado")
	}

	funcionario, err := uc.repo.GetFuncionario(ctx, horario.FuncionarioID)
	if err != nil {
		return nil, httperr.ErrBusiness("funcionario_nao_encontrado")
	}

	ag := &models.Agendamento{
		Codigo: uuid.NewString(),

		Data:   horario.Data,
		Hora:   horario.Hora,
		Status: string(agenda.StatusInicial()),

		ClienteID:     cliente.ID,
		PetID:         pet.ID,
		ServicoID:     servico.ID,
		FuncionarioID: funcionario.ID,

		ClienteNome:     cliente.Nome,
		PetNome:         pet.Nome,
		ServicoNome:     servico.Nome,
		FuncionarioNome: funcionario.Nome,
		ServicoPreco:    servico.Preco,

		Observacoes: in.Observacoes,
	}

	// A reserva do horário e a criação saem na mesma transação; uma
	// corrida pelo mesmo slot volta como horario_indisponivel.
	if err := uc.repo.CriarAgendamento(ctx, ag); err != nil {
		return nil, err
	}

	uc.indice.Adicionar(ag.Data, ag.ID)
	uc.cache.Invalidar(ctx, ag.Data)

	uc.audit.Dispatch(audit.Event{
		FuncionarioID: &in.FuncionarioAutor,
		Acao:          "agendamento_criado",
		Entidade:      "agendamento",
		EntidadeID:    &ag.ID,
	})

	return ag, nil
}
