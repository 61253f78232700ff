package atendimento

import (
	"context"

	"github.com/PetCareServices/petcare-api/internal/audit"
	domain "github.com/PetCareServices/petcare-api/internal/domain/atendimento"
	"github.com/PetCareServices/petcare-api/internal/httperr"
)

type ExcluirAtendimento struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewExcluirAtendimento(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ExcluirAtendimento {
	return &ExcluirAtendimento{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ExcluirAtendimento) Execute(
	ctx context.Context,
	id uint,
	funcionarioAutor uint,
) error {

	at, err := uc.repo.GetAtendimento(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("atendimento_nao_encontrado")
	}

	if err := uc.repo.ExcluirAtendimento(ctx, at.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		FuncionarioID: &funcionarioAutor,
		Acao:          "atendimento_excluido",
		Entidade:      "atendimento",
		EntidadeID:    &at.ID,
	})

	return nil
}
