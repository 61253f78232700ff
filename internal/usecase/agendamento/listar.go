package agendamento

import (
	"context"

	"github.com/PetCareServices/petcare-api/internal/domain/agenda"
	"github.com/PetCareServices/petcare-api/internal/models"
)

type ListarAgendamentos struct {
	repo   agenda.Repository
	indice *agenda.IndicePorDia
}

func NewListarAgendamentos(
	repo agenda.Repository,
	indice *agenda.IndicePorDia,
) *ListarAgendamentos {
	return &ListarAgendamentos{
		repo:   repo,
		indice: indice,
	}
}

func (uc *ListarAgendamentos) Execute(ctx context.Context) ([]models.Agendamento, error) {
	return uc.repo.ListAgendamentos(ctx)
}

func (uc *ListarAgendamentos) Get(ctx context.Context, id uint) (*models.Agendamento, error) {
	return uc.repo.GetAgendamento(ctx, id)
}

func (uc *ListarAgendamentos) PorCliente(
	ctx context.Context,
	clienteID uint,
) ([]models.Agendamento, error) {
	return uc.repo.ListAgendamentosCliente(ctx, clienteID)
}

// Calendario devolve o índice por dia (data → ids de agendamento), usado
// pelas visões de calendário.
func (uc *ListarAgendamentos) Calendario() map[string][]uint {
	return uc.indice.Dias()
}

// ReconstruirIndice recarrega o índice por dia a partir do banco. Roda na
// subida do processo.
func ReconstruirIndice(
	ctx context.Context,
	repo agenda.Repository,
	indice *agenda.IndicePorDia,
) error {

	ags, err := repo.ListAgendamentos(ctx)
	if err != nil {
		return err
	}
	for _, ag := range ags {
		indice.Adicionar(ag.Data, ag.ID)
	}
	return nil
}
