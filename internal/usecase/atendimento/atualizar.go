package atendimento

import (
	"context"
	"time"

	"github.com/PetCareServices/petcare-api/internal/audit"
	"github.com/PetCareServices/petcare-api/internal/domain/agenda"
	domain "github.com/PetCareServices/petcare-api/internal/domain/atendimento"
	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/models"
)

type AtualizarAtendimentoInput struct {
	Data          *time.Time
	ClienteID     *uint
	PetID         *uint
	FuncionarioID *uint
	Status        *string
	Observacoes   *string

	FuncionarioAutor uint
}

type AtualizarAtendimento struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAtualizarAtendimento(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AtualizarAtendimento {
	return &AtualizarAtendimento{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AtualizarAtendimento) Execute(
	ctx context.Context,
	id uint,
	in AtualizarAtendimentoInput,
) (*models.Atendimento, error) {

	at, err := uc.repo.GetAtendimento(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("atendimento_nao_encontrado")
	}

	if in.Data != nil {
		at.Data = *in.Data
	}

	if in.ClienteID != nil && *in.ClienteID != at.ClienteID {
		cliente, err := uc.repo.GetCliente(ctx, *in.ClienteID)
		if err != nil {
			return nil, httperr.ErrBusiness("cliente_nao_encontrado")
		}
		at.ClienteID = cliente.ID
		at.ClienteNome = cliente.Nome
	}

	if in.PetID != nil && *in.PetID != at.PetID {
		pet, err := uc.repo.GetPet(ctx, *in.PetID)
		if err != nil {
			return nil, httperr.ErrBusiness("pet_nao_encontrado")
		}
		at.PetID = pet.ID
		at.PetNome = pet.Nome
	}

	if in.FuncionarioID != nil && *in.FuncionarioID != at.FuncionarioID {
		funcionario, err := uc.repo.GetFuncionario(ctx, *in.FuncionarioID)
		if err != nil {
			return nil, httperr.ErrBusiness("funcionario_nao_encontrado")
		}
		at.FuncionarioID = funcionario.ID
		at.FuncionarioNome = funcionario.Nome
	}

	if in.Status != nil {
		if !agenda.StatusValido(*in.Status) {
			return nil, httperr.ErrBusiness("status_invalido")
		}
		at.Status = *in.Status
	}

	if in.Observacoes != nil {
		at.Observacoes = *in.Observacoes
	}

	if err := uc.repo.SalvarAtendimento(ctx, at); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		FuncionarioID: &in.FuncionarioAutor,
		Acao:          "atendimento_atualizado",
		Entidade:      "atendimento",
		EntidadeID:    &at.ID,
	})

	return at, nil
}
