package agenda

import (
	"context"

	"github.com/PetCareServices/petcare-api/internal/models"
)

// TrocaHorario descreve o slot que um agendamento ocupava antes de ser
// movido, para que a troca libere o antigo e reserve o novo na mesma
// transação.
type TrocaHorario struct {
	Data          string
	Hora          string
	FuncionarioID uint
}

type Repository interface {
	// -------- Referências --------
	GetCliente(ctx context.Context, id uint) (*models.Cliente, error)
	GetPet(ctx context.Context, id uint) (*models.Pet, error)
	GetServico(ctx context.Context, id uint) (*models.Servico, error)
	GetFuncionario(ctx context.Context, id uint) (*models.Funcionario, error)

	// -------- Horários --------
	GetHorario(ctx context.Context, id uint) (*models.HorarioDisponivel, error)

	// ListHorarios devolve os horários disponíveis da data, ordenados por
	// hora. funcionarioID zero significa todos os funcionários.
	ListHorarios(
		ctx context.Context,
		data string,
		funcionarioID uint,
	) ([]models.HorarioDisponivel, error)

	// -------- Agendamentos --------
	GetAgendamento(ctx context.Context, id uint) (*models.Agendamento, error)

	// CriarAgendamento reserva o horário escolhido e insere o agendamento
	// com seus lembretes de e-mail em uma única transação. Horário já
	// tomado resulta em erro de negócio "horario_indisponivel".
	CriarAgendamento(ctx context.Context, ag *models.Agendamento) error

	// AtualizarAgendamento persiste o agendamento; quando troca não é nil,
	// libera o horário antigo e reserva o novo na mesma transação.
	AtualizarAgendamento(
		ctx context.Context,
		ag *models.Agendamento,
		troca *TrocaHorario,
	) error

	// ExcluirAgendamento remove o agendamento e libera o horário que ele
	// ocupava em uma única transação.
	ExcluirAgendamento(ctx context.Context, ag *models.Agendamento) error

	ListAgendamentos(ctx context.Context) ([]models.Agendamento, error)
	ListAgendamentosCliente(ctx context.Context, clienteID uint) ([]models.Agendamento, error)
}
