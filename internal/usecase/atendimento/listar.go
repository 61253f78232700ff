package atendimento

import (
	"context"

	domain "github.com/PetCareServices/petcare-api/internal/domain/atendimento"
	"github.com/PetCareServices/petcare-api/internal/models"
)

type ListarAtendimentos struct {
	repo domain.Repository
}

func NewListarAtendimentos(repo domain.Repository) *ListarAtendimentos {
	return &ListarAtendimentos{repo: repo}
}

func (uc *ListarAtendimentos) Execute(ctx context.Context) ([]models.Atendimento, error) {
	return uc.repo.ListAtendimentos(ctx)
}

func (uc *ListarAtendimentos) Get(ctx context.Context, id uint) (*models.Atendimento, error) {
	return uc.repo.GetAtendimento(ctx, id)
}
