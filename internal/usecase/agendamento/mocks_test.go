package agendamento

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/PetCareServices/petcare-api/internal/audit"
	"github.com/PetCareServices/petcare-api/internal/domain/agenda"
	"github.com/PetCareServices/petcare-api/internal/models"
)

var errNaoEncontrado = errors.New("registro não encontrado")

// agendaRepoMock implementa agenda.Repository com funções plugáveis.
// Métodos sem função configurada devolvem "não encontrado".
type agendaRepoMock struct {
	getCliente     func(id uint) (*models.Cliente, error)
	getPet         func(id uint) (*models.Pet, error)
	getServico     func(id uint) (*models.Servico, error)
	getFuncionario func(id uint) (*models.Funcionario, error)

	getHorario   func(id uint) (*models.HorarioDisponivel, error)
	listHorarios func(data string, funcionarioID uint) ([]models.HorarioDisponivel, error)

	getAgendamento       func(id uint) (*models.Agendamento, error)
	criarAgendamento     func(ag *models.Agendamento) error
	atualizarAgendamento func(ag *models.Agendamento, troca *agenda.TrocaHorario) error
	excluirAgendamento   func(ag *models.Agendamento) error
	listAgendamentos     func() ([]models.Agendamento, error)
	listCliente          func(clienteID uint) ([]models.Agendamento, error)
}

func (m *agendaRepoMock) GetCliente(_ context.Context, id uint) (*models.Cliente, error) {
	if m.getCliente == nil {
		return nil, errNaoEncontrado
	}
	return m.getCliente(id)
}

func (m *agendaRepoMock) GetPet(_ context.Context, id uint) (*models.Pet, error) {
	if m.getPet == nil {
		return nil, errNaoEncontrado
	}
	return m.getPet(id)
}

func (m *agendaRepoMock) GetServico(_ context.Context, id uint) (*models.Servico, error) {
	if m.getServico == nil {
		return nil, errNaoEncontrado
	}
	return m.getServico(id)
}

func (m *agendaRepoMock) GetFuncionario(_ context.Context, id uint) (*models.Funcionario, error) {
	if m.getFuncionario == nil {
		return nil, errNaoEncontrado
	}
	return m.getFuncionario(id)
}

func (m *agendaRepoMock) GetHorario(_ context.Context, id uint) (*models.HorarioDisponivel, error) {
	if m.getHorario == nil {
		return nil, errNaoEncontrado
	}
	return m.getHorario(id)
}

func (m *agendaRepoMock) ListHorarios(
	_ context.Context,
	data string,
	funcionarioID uint,
) ([]models.HorarioDisponivel, error) {
	if m.listHorarios == nil {
		return nil, nil
	}
	return m.listHorarios(data, funcionarioID)
}

func (m *agendaRepoMock) GetAgendamento(_ context.Context, id uint) (*models.Agendamento, error) {
	if m.getAgendamento == nil {
		return nil, errNaoEncontrado
	}
	return m.getAgendamento(id)
}

func (m *agendaRepoMock) CriarAgendamento(_ context.Context, ag *models.Agendamento) error {
	if m.criarAgendamento == nil {
		return nil
	}
	return m.criarAgendamento(ag)
}

func (m *agendaRepoMock) AtualizarAgendamento(
	_ context.Context,
	ag *models.Agendamento,
	troca *agenda.TrocaHorario,
) error {
	if m.atualizarAgendamento == nil {
		return nil
	}
	return m.atualizarAgendamento(ag, troca)
}

func (m *agendaRepoMock) ExcluirAgendamento(_ context.Context, ag *models.Agendamento) error {
	if m.excluirAgendamento == nil {
		return nil
	}
	return m.excluirAgendamento(ag)
}

func (m *agendaRepoMock) ListAgendamentos(_ context.Context) ([]models.Agendamento, error) {
	if m.listAgendamentos == nil {
		return nil, nil
	}
	return m.listAgendamentos()
}

func (m *agendaRepoMock) ListAgendamentosCliente(
	_ context.Context,
	clienteID uint,
) ([]models.Agendamento, error) {
	if m.listCliente == nil {
		return nil, nil
	}
	return m.listCliente(clienteID)
}

var _ agenda.Repository = (*agendaRepoMock)(nil)

func auditNop() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zerolog.Nop())
}

// repoComReferencias devolve um mock com cliente, pet, serviço,
// funcionário e um horário livre pré-configurados.
func repoComReferencias() *agendaRepoMock {
	return &agendaRepoMock{
		getCliente: func(id uint) (*models.Cliente, error) {
			return &models.Cliente{ID: id, Nome: "Maria Souza"}, nil
		},
		getPet: func(id uint) (*models.Pet, error) {
			return &models.Pet{ID: id, Nome: "Rex"}, nil
		},
		getServico: func(id uint) (*models.Servico, error) {
			return &models.Servico{ID: id, Nome: "Banho e Tosa", Preco: 70}, nil
		},
		getFuncionario: func(id uint) (*models.Funcionario, error) {
			return &models.Funcionario{ID: id, Nome: "Carla"}, nil
		},
		getHorario: func(id uint) (*models.HorarioDisponivel, error) {
			return &models.HorarioDisponivel{
				ID:            id,
				Data:          "2026-09-01",
				Hora:          "09:00",
				FuncionarioID: 3,
				Disponivel:    true,
			}, nil
		},
	}
}
