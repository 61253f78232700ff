package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/PetCareServices/petcare-api/internal/domain/atendimento"
	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/models"
)

type AtendimentoGormRepository struct {
	db *gorm.DB
}

func NewAtendimentoGormRepository(db *gorm.DB) *AtendimentoGormRepository {
	return &AtendimentoGormRepository{db: db}
}

// --------------------------------------------------
// Referências
// --------------------------------------------------

func (r *AtendimentoGormRepository) GetCliente(
	ctx context.Context,
	id uint,
) (*models.Cliente, error) {

	var cliente models.Cliente
	if err := r.db.WithContext(ctx).First(&cliente, id).Error; err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *AtendimentoGormRepository) GetPet(
	ctx context.Context,
	id uint,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, id).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *AtendimentoGormRepository) GetFuncionario(
	ctx context.Context,
	id uint,
) (*models.Funcionario, error) {

	var funcionario models.Funcionario
	if err := r.db.WithContext(ctx).First(&funcionario, id).Error; err != nil {
		return nil, err
	}
	return &funcionario, nil
}

func (r *AtendimentoGormRepository) GetProduto(
	ctx context.Context,
	id uint,
) (*models.Produto, error) {

	var produto models.Produto
	if err := r.db.WithContext(ctx).First(&produto, id).Error; err != nil {
		return nil, err
	}
	return &produto, nil
}

func (r *AtendimentoGormRepository) GetServico(
	ctx context.Context,
	id uint,
) (*models.Servico, error) {

	var servico models.Servico
	if err := r.db.WithContext(ctx).First(&servico, id).Error; err != nil {
		return nil, err
	}
	return &servico, nil
}

// --------------------------------------------------
// Atendimentos
// --------------------------------------------------

func (r *AtendimentoGormRepository) GetAtendimento(
	ctx context.Context,
	id uint,
) (*models.Atendimento, error) {

	var at models.Atendimento
	if err := r.db.WithContext(ctx).
		Preload("Itens").
		First(&at, id).Error; err != nil {
		return nil, err
	}
	return &at, nil
}

func (r *AtendimentoGormRepository) CriarAtendimento(
	ctx context.Context,
	at *models.Atendimento,
) error {
	return r.db.WithContext(ctx).Create(at).Error
}

func (r *AtendimentoGormRepository) SalvarAtendimento(
	ctx context.Context,
	at *models.Atendimento,
) error {
	return r.db.WithContext(ctx).Omit("Itens").Save(at).Error
}

func (r *AtendimentoGormRepository) ExcluirAtendimento(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("atendimento_id = ?", id).
			Delete(&models.ItemAtendimento{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Atendimento{}, id).Error
	})
}

func (r *AtendimentoGormRepository) ListAtendimentos(
	ctx context.Context,
) ([]models.Atendimento, error) {

	var ats []models.Atendimento
	if err := r.db.WithContext(ctx).
		Preload("Itens").
		Order("data DESC").
		Find(&ats).Error; err != nil {
		return nil, err
	}
	return ats, nil
}

// --------------------------------------------------
// Itens (transacionais)
// --------------------------------------------------

func (r *AtendimentoGormRepository) AdicionarItem(
	ctx context.Context,
	atendimentoID uint,
	item *models.ItemAtendimento,
) (*models.Atendimento, error) {

	var out *models.Atendimento

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if item.Tipo == domain.TipoProduto {
			// Lock no produto para a checagem de estoque valer até o commit.
			var produto models.Produto
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&produto, item.ItemID).Error; err != nil {
				return httperr.ErrBusiness("produto_nao_encontrado")
			}

			if produto.Estoque < item.Quantidade {
				return httperr.ErrBusiness("estoque_insuficiente")
			}

			if err := tx.Model(&models.Produto{}).
				Where("id = ?", produto.ID).
				UpdateColumn("estoque", gorm.Expr("estoque - ?", item.Quantidade)).
				Error; err != nil {
				return err
			}
		}

		item.AtendimentoID = atendimentoID
		if err := tx.Create(item).Error; err != nil {
			return err
		}

		at, err := regravarTotal(tx, atendimentoID)
		if err != nil {
			return err
		}
		out = at
		return nil
	})

	return out, err
}

func (r *AtendimentoGormRepository) RemoverItem(
	ctx context.Context,
	atendimentoID uint,
	itemID uint,
) (*models.Atendimento, error) {

	var out *models.Atendimento

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.ItemAtendimento
		if err := tx.
			Where("id = ? AND atendimento_id = ?", itemID, atendimentoID).
			First(&item).Error; err != nil {
			return httperr.ErrBusiness("item_nao_encontrado")
		}

		if item.Tipo == domain.TipoProduto {
			if err := tx.Model(&models.Produto{}).
				Where("id = ?", item.ItemID).
				UpdateColumn("estoque", gorm.Expr("estoque + ?", item.Quantidade)).
				Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&models.ItemAtendimento{}, item.ID).Error; err != nil {
			return err
		}

		at, err := regravarTotal(tx, atendimentoID)
		if err != nil {
			return err
		}
		out = at
		return nil
	})

	return out, err
}

// regravarTotal recalcula o valor_total a partir do conjunto completo de
// itens e o persiste, dentro da transação corrente.
func regravarTotal(tx *gorm.DB, atendimentoID uint) (*models.Atendimento, error) {
	var itens []models.ItemAtendimento
	if err := tx.Where("atendimento_id = ?", atendimentoID).
		Find(&itens).Error; err != nil {
		return nil, err
	}

	total := domain.CalcularValorTotal(itens)

	if err := tx.Model(&models.Atendimento{}).
		Where("id = ?", atendimentoID).
		UpdateColumn("valor_total", total).Error; err != nil {
		return nil, err
	}

	var at models.Atendimento
	if err := tx.Preload("Itens").First(&at, atendimentoID).Error; err != nil {
		return nil, err
	}
	return &at, nil
}

// Compile-time check
var _ domain.Repository = (*AtendimentoGormRepository)(nil)
