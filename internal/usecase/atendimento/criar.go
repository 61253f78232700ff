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

// ======================================================
// INPUT
// ======================================================

type CriarAtendimentoInput struct {
	Data          time.Time
	ClienteID     uint
	PetID         uint
	FuncionarioID uint
	Status        string
	Observacoes   string

	FuncionarioAutor uint
}

// ======================================================
// USE CASE
// ======================================================

type CriarAtendimento struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCriarAtendimento(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CriarAtendimento {
	return &CriarAtendimento{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CriarAtendimento) Execute(
	ctx context.Context,
	in CriarAtendimentoInput,
) (*models.Atendimento, error) {

	status := in.Status
	if status == "" {
		status = string(agenda.StatusInicial())
	}
	if !agenda.StatusValido(status) {
		return nil, httperr.ErrBusiness("status_invalido")
	}

	cliente, err := uc.repo.GetCliente(ctx, in.ClienteID)
	if err != nil {
		return nil, httperr.ErrBusiness("cliente_nao_encontrado")
	}

	pet, err := uc.repo.GetPet(ctx, in.PetID)
	if err != nil {
		return nil, httperr.ErrBusiness("pet_nao_encontrado")
	}

	funcionario, err := uc.repo.GetFuncionario(ctx, in.FuncionarioID)
	if err != nil {
		return nil, httperr.ErrBusiness("funcionario_nao_encontrado")
	}

	at := &models.Atendimento{
		Data:   in.Data,
		Status: status,

		ClienteID:     cliente.ID,
		PetID:         pet.ID,
		FuncionarioID: funcionario.ID,

		ClienteNome:     cliente.Nome,
		PetNome:         pet.Nome,
		FuncionarioNome: funcionario.Nome,

		Observacoes: in.Observacoes,

		// Atendimento nasce sem itens; o total acompanha.
		ValorTotal: 0,
	}

	if err := uc.repo.CriarAtendimento(ctx, at); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		FuncionarioID: &in.FuncionarioAutor,
		Acao:          "atendimento_criado",
		Entidade:      "atendimento",
		EntidadeID:    &at.ID,
	})

	return at, nil
}
