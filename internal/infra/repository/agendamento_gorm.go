package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/PetCareServices/petcare-api/internal/domain/agenda"
	"github.com/PetCareServices/petcare-api/internal/domain/lembrete"
	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/models"
)

type AgendamentoGormRepository struct {
	db *gorm.DB
}

func NewAgendamentoGormRepository(db *gorm.DB) *AgendamentoGormRepository {
	return &AgendamentoGormRepository{db: db}
}

// --------------------------------------------------
// Referências
// --------------------------------------------------

func (r *AgendamentoGormRepository) GetCliente(
	ctx context.Context,
	id uint,
) (*models.Cliente, error) {

	var cliente models.Cliente
	if err := r.db.WithContext(ctx).First(&cliente, id).Error; err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *AgendamentoGormRepository) GetPet(
	ctx context.Context,
	id uint,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, id).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *AgendamentoGormRepository) GetServico(
	ctx context.Context,
	id uint,
) (*models.Servico, error) {

	var servico models.Servico
	if err := r.db.WithContext(ctx).First(&servico, id).Error; err != nil {
		return nil, err
	}
	return &servico, nil
}

func (r *AgendamentoGormRepository) GetFuncionario(
	ctx context.Context,
	id uint,
) (*models.Funcionario, error) {

	var funcionario models.Funcionario
	if err := r.db.WithContext(ctx).First(&funcionario, id).Error; err != nil {
		return nil, err
	}
	return &funcionario, nil
}

// --------------------------------------------------
// Horários
// --------------------------------------------------

func (r *AgendamentoGormRepository) GetHorario(
	ctx context.Context,
	id uint,
) (*models.HorarioDisponivel, error) {

	var horario models.HorarioDisponivel
	if err := r.db.WithContext(ctx).First(&horario, id).Error; err != nil {
		return nil, err
	}
	return &horario, nil
}

func (r *AgendamentoGormRepository) ListHorarios(
	ctx context.Context,
	data string,
	funcionarioID uint,
) ([]models.HorarioDisponivel, error) {

	q := r.db.WithContext(ctx).
		Where("data = ? AND disponivel = ?", data, true)

	if funcionarioID != 0 {
		q = q.Where("funcionario_id = ?", funcionarioID)
	}

	var horarios []models.HorarioDisponivel
	if err := q.Order("hora ASC").Find(&horarios).Error; err != nil {
		return nil, err
	}
	return horarios, nil
}

// reservarHorario marca o slot como indisponível apenas se ele ainda
// estiver livre. Zero linhas afetadas significa que outro agendamento
// chegou primeiro.
func reservarHorario(tx *gorm.DB, data, hora string, funcionarioID uint) error {
	res := tx.Model(&models.HorarioDisponivel{}).
		Where(
			"data = ? AND hora = ? AND funcionario_id = ? AND disponivel = ?",
			data, hora, funcionarioID, true,
		).
		Update("disponivel", false)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("horario_indisponivel")
	}
	return nil
}

// liberarHorario devolve o slot ao estado disponível. Melhor esforço: o
// slot pode ter sido excluído pelo administrador nesse meio tempo.
func liberarHorario(tx *gorm.DB, data, hora string, funcionarioID uint) error {
	return tx.Model(&models.HorarioDisponivel{}).
		Where(
			"data = ? AND hora = ? AND funcionario_id = ? AND disponivel = ?",
			data, hora, funcionarioID, false,
		).
		Update("disponivel", true).Error
}

// --------------------------------------------------
// Agendamentos
// --------------------------------------------------

func (r *AgendamentoGormRepository) GetAgendamento(
	ctx context.Context,
	id uint,
) (*models.Agendamento, error) {

	var ag models.Agendamento
	if err := r.db.WithContext(ctx).First(&ag, id).Error; err != nil {
		return nil, err
	}
	return &ag, nil
}

func (r *AgendamentoGormRepository) CriarAgendamento(
	ctx context.Context,
	ag *models.Agendamento,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := reservarHorario(tx, ag.Data, ag.Hora, ag.FuncionarioID); err != nil {
			return err
		}

		if err := tx.Create(ag).Error; err != nil {
			return err
		}

		// Os lembretes nascem pendentes junto com o agendamento; o
		// despacho acontece depois, nas passadas do processador.
		lembretes := []models.LembreteEmail{
			{AgendamentoID: ag.ID, Tipo: lembrete.TipoConfirmacao, Status: lembrete.StatusPendente},
			{AgendamentoID: ag.ID, Tipo: lembrete.TipoLembrete, Status: lembrete.StatusPendente},
		}
		return tx.Create(&lembretes).Error
	})
}

func (r *AgendamentoGormRepository) AtualizarAgendamento(
	ctx context.Context,
	ag *models.Agendamento,
	troca *agenda.TrocaHorario,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if troca != nil {
			if err := liberarHorario(tx, troca.Data, troca.Hora, troca.FuncionarioID); err != nil {
				return err
			}
			if err := reservarHorario(tx, ag.Data, ag.Hora, ag.FuncionarioID); err != nil {
				return err
			}
		}
		return tx.Save(ag).Error
	})
}

func (r *AgendamentoGormRepository) ExcluirAgendamento(
	ctx context.Context,
	ag *models.Agendamento,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := liberarHorario(tx, ag.Data, ag.Hora, ag.FuncionarioID); err != nil {
			return err
		}

		if err := tx.Where("agendamento_id = ?", ag.ID).
			Delete(&models.LembreteEmail{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Agendamento{}, ag.ID).Error
	})
}

func (r *AgendamentoGormRepository) ListAgendamentos(
	ctx context.Context,
) ([]models.Agendamento, error) {

	var ags []models.Agendamento
	if err := r.db.WithContext(ctx).
		Order("data ASC").
		Order("hora ASC").
		Find(&ags).Error; err != nil {
		return nil, err
	}
	return ags, nil
}

func (r *AgendamentoGormRepository) ListAgendamentosCliente(
	ctx context.Context,
	clienteID uint,
) ([]models.Agendamento, error) {

	var ags []models.Agendamento
	if err := r.db.WithContext(ctx).
		Where("cliente_id = ?", clienteID).
		Order("data DESC").
		Order("hora ASC").
		Find(&ags).Error; err != nil {
		return nil, err
	}
	return ags, nil
}

// Compile-time check
var _ agenda.Repository = (*AgendamentoGormRepository)(nil)
