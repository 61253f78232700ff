package agendamento

import (
	"context"

	"github.com/PetCareServices/petcare-api/internal/cache"
	"github.com/PetCareServices/petcare-api/internal/domain/agenda"
	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/models"
)

// ListarHorarios devolve os candidatos a slot para uma data, passando
// pelo cache quando ele está ligado. Quando um agendamento está em
// edição, o slot que ele já ocupa entra na lista como pseudo-horário.
type ListarHorarios struct {
	repo  agenda.Repository
	cache *cache.HorariosCache
}

func NewListarHorarios(
	repo agenda.Repository,
	horarios *cache.HorariosCache,
) *ListarHorarios {
	return &ListarHorarios{
		repo:  repo,
		cache: horarios,
	}
}

func (uc *ListarHorarios) Execute(
	ctx context.Context,
	data string,
	funcionarioID uint,
	editandoID uint,
) ([]models.HorarioDisponivel, error) {

	horarios, ok := uc.cache.Get(ctx, data, funcionarioID)
	if !ok {
		var err error
		horarios, err = uc.repo.ListHorarios(ctx, data, funcionarioID)
		if err != nil {
			return nil, err
		}
		uc.cache.Set(ctx, data, funcionarioID, horarios)
	}

	if editandoID != 0 {
		ag, err := uc.repo.GetAgendamento(ctx, editandoID)
		if err != nil {
			return nil, httperr.ErrBusiness("agendamento_nao_encontrado")
		}
		horarios = agenda.InjetarHorarioAtual(horarios, ag, data)
	}

	return horarios, nil
}
