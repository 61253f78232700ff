package atendimento

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/PetCareServices/petcare-api/internal/audit"
	domain "github.com/PetCareServices/petcare-api/internal/domain/atendimento"
	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/models"
)

var errNaoEncontrado = errors.New("registro não encontrado")

func auditNop() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zerolog.Nop())
}

// atendimentoRepoFake guarda tudo em memória e reproduz as regras do
// repositório real: baixa e devolução de estoque, preço congelado e
// valor_total sempre recalculado do conjunto completo de itens.
type atendimentoRepoFake struct {
	clientes     map[uint]*models.Cliente
	pets         map[uint]*models.Pet
	funcionarios map[uint]*models.Funcionario
	produtos     map[uint]*models.Produto
	servicos     map[uint]*models.Servico

	atendimentos map[uint]*models.Atendimento
	proximoID    uint
	proximoItem  uint
}

func novoRepoFake() *atendimentoRepoFake {
	return &atendimentoRepoFake{
		clientes: map[uint]*models.Cliente{
			1: {ID: 1, Nome: "Maria Souza"},
		},
		pets: map[uint]*models.Pet{
			2: {ID: 2, Nome: "Rex"},
		},
		funcionarios: map[uint]*models.Funcionario{
			3: {ID: 3, Nome: "Carla"},
		},
		produtos: map[uint]*models.Produto{
			30: {ID: 30, Nome: "Shampoo Antipulgas", Preco: 60, Estoque: 50},
		},
		servicos: map[uint]*models.Servico{
			20: {ID: 20, Nome: "Banho e Tosa", Preco: 70},
		},

		atendimentos: make(map[uint]*models.Atendimento),
		proximoID:    1,
		proximoItem:  1,
	}
}

func (f *atendimentoRepoFake) GetCliente(_ context.Context, id uint) (*models.Cliente, error) {
	if c, ok := f.clientes[id]; ok {
		return c, nil
	}
	return nil, errNaoEncontrado
}

func (f *atendimentoRepoFake) GetPet(_ context.Context, id uint) (*models.Pet, error) {
	if p, ok := f.pets[id]; ok {
		return p, nil
	}
	return nil, errNaoEncontrado
}

func (f *atendimentoRepoFake) GetFuncionario(_ context.Context, id uint) (*models.Funcionario, error) {
	if fu, ok := f.funcionarios[id]; ok {
		return fu, nil
	}
	return nil, errNaoEncontrado
}

func (f *atendimentoRepoFake) GetProduto(_ context.Context, id uint) (*models.Produto, error) {
	if p, ok := f.produtos[id]; ok {
		return p, nil
	}
	return nil, errNaoEncontrado
}

func (f *atendimentoRepoFake) GetServico(_ context.Context, id uint) (*models.Servico, error) {
	if s, ok := f.servicos[id]; ok {
		return s, nil
	}
	return nil, errNaoEncontrado
}

func (f *atendimentoRepoFake) GetAtendimento(_ context.Context, id uint) (*models.Atendimento, error) {
	if at, ok := f.atendimentos[id]; ok {
		cp := *at
		return &cp, nil
	}
	return nil, errNaoEncontrado
}

func (f *atendimentoRepoFake) CriarAtendimento(_ context.Context, at *models.Atendimento) error {
	at.ID = f.proximoID
	f.proximoID++
	cp := *at
	f.atendimentos[at.ID] = &cp
	return nil
}

func (f *atendimentoRepoFake) SalvarAtendimento(_ context.Context, at *models.Atendimento) error {
	if _, ok := f.atendimentos[at.ID]; !ok {
		return errNaoEncontrado
	}
	cp := *at
	cp.Itens = f.atendimentos[at.ID].Itens
	f.atendimentos[at.ID] = &cp
	return nil
}

func (f *atendimentoRepoFake) ExcluirAtendimento(_ context.Context, id uint) error {
	if _, ok := f.atendimentos[id]; !ok {
		return errNaoEncontrado
	}
	delete(f.atendimentos, id)
	return nil
}

func (f *atendimentoRepoFake) ListAtendimentos(_ context.Context) ([]models.Atendimento, error) {
	out := make([]models.Atendimento, 0, len(f.atendimentos))
	for _, at := range f.atendimentos {
		out = append(out, *at)
	}
	return out, nil
}

func (f *atendimentoRepoFake) AdicionarItem(
	_ context.Context,
	atendimentoID uint,
	item *models.ItemAtendimento,
) (*models.Atendimento, error) {

	at, ok := f.atendimentos[atendimentoID]
	if !ok {
		return nil, errNaoEncontrado
	}

	if item.Tipo == domain.TipoProduto {
		produto, ok := f.produtos[item.ItemID]
		if !ok {
			return nil, errNaoEncontrado
		}
		if produto.Estoque < item.Quantidade {
			return nil, httperr.ErrBusiness("estoque_insuficiente")
		}
		produto.Estoque -= item.Quantidade
	}

	item.ID = f.proximoItem
	f.proximoItem++
	item.AtendimentoID = atendimentoID

	at.Itens = append(at.Itens, *item)
	at.ValorTotal = domain.CalcularValorTotal(at.Itens)

	cp := *at
	return &cp, nil
}

func (f *atendimentoRepoFake) RemoverItem(
	_ context.Context,
	atendimentoID uint,
	itemID uint,
) (*models.Atendimento, error) {

	at, ok := f.atendimentos[atendimentoID]
	if !ok {
		return nil, errNaoEncontrado
	}

	for idx, item := range at.Itens {
		if item.ID != itemID {
			continue
		}

		if item.Tipo == domain.TipoProduto {
			if produto, ok := f.produtos[item.ItemID]; ok {
				produto.Estoque += item.Quantidade
			}
		}

		at.Itens = append(at.Itens[:idx], at.Itens[idx+1:]...)
		at.ValorTotal = domain.CalcularValorTotal(at.Itens)

		cp := *at
		return &cp, nil
	}

	return nil, httperr.ErrBusiness("item_nao_encontrado")
}

var _ domain.Repository = (*atendimentoRepoFake)(nil)
