package agendamento

import (
	"context"

	"github.com/PetCareServices/petcare-api/internal/audit"
	"github.com/PetCareServices/petcare-api/internal/cache"
	"github.com/PetCareServices/petcare-api/internal/domain/agenda"
	"github.com/PetCareServices/petcare-api/internal/httperr"
)

type ExcluirAgendamento struct {
	repo   agenda.Repository
	indice *agenda.IndicePorDia
	cache  *cache.HorariosCache
	audit  *audit.Dispatcher
}

func NewExcluirAgendamento(
	repo agenda.Repository,
	indice *agenda.IndicePorDia,
	horarios *cache.HorariosCache,
	audit *audit.Dispatcher,
) *ExcluirAgendamento {
	return &ExcluirAgendamento{
		repo:   repo,
		indice: indice,
		cache:  horarios,
		audit:  audit,
	}
}

func (uc *ExcluirAgendamento) Execute(
	ctx context.Context,
	id uint,
	funcionarioAutor uint,
) error {

	ag, err := uc.repo.GetAgendamento(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("agendamento_nao_encontrado")
	}

	// Exclusão libera o slot na mesma transação.
	if err := uc.repo.ExcluirAgendamento(ctx, ag); err != nil {
		return err
	}

	uc.indice.Remover(ag.Data, ag.ID)
	uc.cache.Invalidar(ctx, ag.Data)

	uc.audit.Dispatch(audit.Event{
		FuncionarioID: &funcionarioAutor,
		Acao:          "agendamento_excluido",
		Entidade:      "agendamento",
		EntidadeID:    &ag.ID,
	})

	return nil
}
