package atendimento

import (
	"context"

	"github.com/PetCareServices/petcare-api/internal/models"
)

type Repository interface {
	// -------- Referências --------
	GetCliente(ctx context.Context, id uint) (*models.Cliente, error)
	GetPet(ctx context.Context, id uint) (*models.Pet, error)
	GetFuncionario(ctx context.Context, id uint) (*models.Funcionario, error)
	GetProduto(ctx context.Context, id uint) (*models.Produto, error)
	GetServico(ctx context.Context, id uint) (*models.Servico, error)

	// -------- Atendimentos --------
	GetAtendimento(ctx context.Context, id uint) (*models.Atendimento, error)
	CriarAtendimento(ctx context.Context, at *models.Atendimento) error
	SalvarAtendimento(ctx context.Context, at *models.Atendimento) error
	ExcluirAtendimento(ctx context.Context, id uint) error
	ListAtendimentos(ctx context.Context) ([]models.Atendimento, error)

	// -------- Itens --------

	// AdicionarItem insere o item, baixa o estoque do produto (quando o
	// tipo é produto) e regrava o valor_total recalculado do conjunto
	// completo de itens, tudo em uma transação. Estoque insuficiente no
	// momento da escrita resulta em erro de negócio
	// "estoque_insuficiente".
	AdicionarItem(
		ctx context.Context,
		atendimentoID uint,
		item *models.ItemAtendimento,
	) (*models.Atendimento, error)

	// RemoverItem exclui o item, devolve o estoque e regrava o
	// valor_total recalculado, em uma transação.
	RemoverItem(
		ctx context.Context,
		atendimentoID uint,
		itemID uint,
	) (*models.Atendimento, error)
}
