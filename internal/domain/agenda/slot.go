package agenda

import "github.com/PetCareServices/petcare-api/internal/models"

// HorarioAtualID é o id sintético do pseudo-horário que representa o slot
// já ocupado pelo agendamento em edição. Nunca colide com um id real do
// banco (ids reais começam em 1).
const HorarioAtualID uint = 0

// InjetarHorarioAtual acrescenta à lista de candidatos o horário ocupado
// pelo próprio agendamento em edição, para que a edição não acuse conflito
// consigo mesma. O pseudo-horário só entra quando a data selecionada é a
// mesma do agendamento e nenhum horário real equivalente já está na lista.
func InjetarHorarioAtual(
	horarios []models.HorarioDisponivel,
	ag *models.Agendamento,
	data string,
) []models.HorarioDisponivel {

	if ag == nil || ag.Data != data {
		return horarios
	}

	for _, h := range horarios {
		if h.Hora == ag.Hora && h.FuncionarioID == ag.FuncionarioID {
			return horarios
		}
	}

	return append(horarios, models.HorarioDisponivel{
		ID:              HorarioAtualID,
		Data:            ag.Data,
		Hora:            ag.Hora,
		FuncionarioID:   ag.FuncionarioID,
		FuncionarioNome: ag.FuncionarioNome,
		Disponivel:      true,
	})
}
