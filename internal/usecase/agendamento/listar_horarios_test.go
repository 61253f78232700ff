package agendamento

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PetCareServices/petcare-api/internal/domain/agenda"
	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/models"
)

func TestListarHorarios(t *testing.T) {
	repo := &agendaRepoMock{
		listHorarios: func(data string, funcionarioID uint) ([]models.HorarioDisponivel, error) {
			assert.Equal(t, "2026-09-01", data)
			assert.Equal(t, uint(0), funcionarioID)
			return []models.HorarioDisponivel{
				{ID: 1, Data: data, Hora: "09:00", FuncionarioID: 3},
			}, nil
		},
	}

	uc := NewListarHorarios(repo, nil)

	horarios, err := uc.Execute(context.Background(), "2026-09-01", 0, 0)
	assert.NoError(t, err)
	assert.Len(t, horarios, 1)
}

func TestListarHorariosEmEdicaoInjetaSlotAtual(t *testing.T) {
	repo := &agendaRepoMock{
		listHorarios: func(string, uint) ([]models.HorarioDisponivel, error) {
			return []models.HorarioDisponivel{
				{ID: 1, Data: "2026-09-01", Hora: "10:00", FuncionarioID: 3},
			}, nil
		},
		getAgendamento: func(id uint) (*models.Agendamento, error) {
			return &models.Agendamento{
				ID:            id,
				Data:          "2026-09-01",
				Hora:          "09:00",
				FuncionarioID: 3,
			}, nil
		},
	}

	uc := NewListarHorarios(repo, nil)

	horarios, err := uc.Execute(context.Background(), "2026-09-01", 0, 42)
	assert.NoError(t, err)
	assert.Len(t, horarios, 2)
	assert.Equal(t, agenda.HorarioAtualID, horarios[1].ID)
	assert.Equal(t, "09:00", horarios[1].Hora)
}

func TestListarHorariosEmEdicaoAgendamentoInexistente(t *testing.T) {
	uc := NewListarHorarios(&agendaRepoMock{}, nil)

	_, err := uc.Execute(context.Background(), "2026-09-01", 0, 404)
	assert.True(t, httperr.IsBusiness(err, "agendamento_nao_encontrado"))
}
