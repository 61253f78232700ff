package atendimento

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/PetCareServices/petcare-api/internal/domain/atendimento"
	"github.com/PetCareServices/petcare-api/internal/httperr"
)

func novoAtendimento(t *testing.T, repo *atendimentoRepoFake) uint {
	t.Helper()

	uc := NewCriarAtendimento(repo, auditNop())
	at, err := uc.Execute(context.Background(), CriarAtendimentoInput{
		Data:          time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		ClienteID:     1,
		PetID:         2,
		FuncionarioID: 3,
	})
	assert.NoError(t, err)
	return at.ID
}

func TestAdicionarEremoverItensRecalculaTotalEEstoque(t *testing.T) {
	repo := novoRepoFake()
	id := novoAtendimento(t, repo)

	uc := NewGerenciarItens(repo, auditNop())
	ctx := context.Background()

	// Serviço: não mexe em estoque, congela o preço.
	at, err := uc.Adicionar(ctx, id, AdicionarItemInput{
		Tipo: domain.TipoServico, ItemID: 20, Quantidade: 1,
	})
	assert.NoError(t, err)
	assert.Equal(t, 70.0, at.ValorTotal)
	assert.Equal(t, "Banho e Tosa", at.Itens[0].Nome)
	assert.Equal(t, 70.0, at.Itens[0].ValorUnitario)

	// Produto: baixa o estoque e soma ao total.
	at, err = uc.Adicionar(ctx, id, AdicionarItemInput{
		Tipo: domain.TipoProduto, ItemID: 30, Quantidade: 2,
	})
	assert.NoError(t, err)
	assert.Equal(t, 190.0, at.ValorTotal)
	assert.Equal(t, 48, repo.produtos[30].Estoque)

	// Remover o produto devolve o estoque e refaz o total.
	itemProduto := at.Itens[1]
	at, err = uc.Remover(ctx, id, itemProduto.ID, 9)
	assert.NoError(t, err)
	assert.Equal(t, 70.0, at.ValorTotal)
	assert.Equal(t, 50, repo.produtos[30].Estoque)
	assert.Len(t, at.Itens, 1)
}

func TestAdicionarItemPrecoCongelado(t *testing.T) {
	repo := novoRepoFake()
	id := novoAtendimento(t, repo)

	uc := NewGerenciarItens(repo, auditNop())

	at, err := uc.Adicionar(context.Background(), id, AdicionarItemInput{
		Tipo: domain.TipoProduto, ItemID: 30, Quantidade: 1,
	})
	assert.NoError(t, err)

	// O preço de tabela muda depois; o item mantém o valor da época.
	repo.produtos[30].Preco = 99

	assert.Equal(t, 60.0, at.Itens[0].ValorUnitario)
	recarregado, err := repo.GetAtendimento(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, 60.0, recarregado.ValorTotal)
}

func TestAdicionarItemEstoqueInsuficiente(t *testing.T) {
	repo := novoRepoFake()
	repo.produtos[30].Estoque = 1
	id := novoAtendimento(t, repo)

	uc := NewGerenciarItens(repo, auditNop())

	_, err := uc.Adicionar(context.Background(), id, AdicionarItemInput{
		Tipo: domain.TipoProduto, ItemID: 30, Quantidade: 2,
	})

	assert.True(t, httperr.IsBusiness(err, "estoque_insuficiente"))

	// Nada foi gravado nem baixado.
	assert.Equal(t, 1, repo.produtos[30].Estoque)
	at, _ := repo.GetAtendimento(context.Background(), id)
	assert.Empty(t, at.Itens)
	assert.Equal(t, 0.0, at.ValorTotal)
}

func TestAdicionarItemValidacoes(t *testing.T) {
	repo := novoRepoFake()
	id := novoAtendimento(t, repo)

	uc := NewGerenciarItens(repo, auditNop())
	ctx := context.Background()

	_, err := uc.Adicionar(ctx, id, AdicionarItemInput{
		Tipo: domain.TipoProduto, ItemID: 30, Quantidade: 0,
	})
	assert.True(t, httperr.IsBusiness(err, "quantidade_invalida"))

	_, err = uc.Adicionar(ctx, id, AdicionarItemInput{
		Tipo: "assinatura", ItemID: 30, Quantidade: 1,
	})
	assert.True(t, httperr.IsBusiness(err, "tipo_invalido"))

	_, err = uc.Adicionar(ctx, 404, AdicionarItemInput{
		Tipo: domain.TipoProduto, ItemID: 30, Quantidade: 1,
	})
	assert.True(t, httperr.IsBusiness(err, "atendimento_nao_encontrado"))

	_, err = uc.Adicionar(ctx, id, AdicionarItemInput{
		Tipo: domain.TipoProduto, ItemID: 999, Quantidade: 1,
	})
	assert.True(t, httperr.IsBusiness(err, "produto_nao_encontrado"))

	_, err = uc.Adicionar(ctx, id, AdicionarItemInput{
		Tipo: domain.TipoServico, ItemID: 999, Quantidade: 1,
	})
	assert.True(t, httperr.IsBusiness(err, "servico_nao_encontrado"))
}

func TestRemoverItemInexistente(t *testing.T) {
	repo := novoRepoFake()
	id := novoAtendimento(t, repo)

	uc := NewGerenciarItens(repo, auditNop())

	_, err := uc.Remover(context.Background(), id, 999, 9)
	assert.True(t, httperr.IsBusiness(err, "item_nao_encontrado"))
}
