package atendimento

import (
	"context"

	"github.com/PetCareServices/petcare-api/internal/audit"
	domain "github.com/PetCareServices/petcare-api/internal/domain/atendimento"
	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AdicionarItemInput struct {
	Tipo       string
	ItemID     uint
	Quantidade int

	FuncionarioAutor uint
}

// ======================================================
// USE CASES — itens do atendimento
// ======================================================

type GerenciarItens struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewGerenciarItens(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *GerenciarItens {
	return &GerenciarItens{
		repo:  repo,
		audit: audit,
	}
}

// Adicionar congela o preço unitário vigente, baixa o estoque quando o
// item é produto e regrava o total recalculado. O repositório persiste
// tudo em uma única transação.
func (uc *GerenciarItens) Adicionar(
	ctx context.Context,
	atendimentoID uint,
	in AdicionarItemInput,
) (*models.Atendimento, error) {

	if in.Quantidade < 1 {
		return nil, httperr.ErrBusiness("quantidade_invalida")
	}
	if !domain.TipoValido(in.Tipo) {
		return nil, httperr.ErrBusiness("tipo_invalido")
	}

	if _, err := uc.repo.GetAtendimento(ctx, atendimentoID); err != nil {
		return nil, httperr.ErrBusiness("atendimento_nao_encontrado")
	}

	var (
		nome  string
		preco float64
	)

	switch in.Tipo {
	case domain.TipoProduto:
		produto, err := uc.repo.GetProduto(ctx, in.ItemID)
		if err != nil {
			return nil, httperr.ErrBusiness("produto_nao_encontrado")
		}
		if produto.Estoque < in.Quantidade {
			return nil, httperr.ErrBusiness("estoque_insuficiente")
		}
		nome = produto.Nome
		preco = produto.Preco

	case domain.TipoServico:
		servico, err := uc.repo.GetServico(ctx, in.ItemID)
		if err != nil {
			return nil, httperr.ErrBusiness("servico_nao_encontrado")
		}
		nome = servico.Nome
		preco = servico.Preco
	}

	item := &models.ItemAtendimento{
		Tipo:          in.Tipo,
		ItemID:        in.ItemID,
		Quantidade:    in.Quantidade,
		ValorUnitario: preco,
		Nome:          nome,
	}

	at, err := uc.repo.AdicionarItem(ctx, atendimentoID, item)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		FuncionarioID: &in.FuncionarioAutor,
		Acao:          "item_adicionado",
		Entidade:      "atendimento",
		EntidadeID:    &at.ID,
	})

	return at, nil
}

// Remover devolve o estoque de itens do tipo produto e regrava o total
// recalculado na mesma transação.
func (uc *GerenciarItens) Remover(
	ctx context.Context,
	atendimentoID uint,
	itemID uint,
	funcionarioAutor uint,
) (*models.Atendimento, error) {

	if _, err := uc.repo.GetAtendimento(ctx, atendimentoID); err != nil {
		return nil, httperr.ErrBusiness("atendimento_nao_encontrado")
	}

	at, err := uc.repo.RemoverItem(ctx, atendimentoID, itemID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		FuncionarioID: &funcionarioAutor,
		Acao:          "item_removido",
		Entidade:      "atendimento",
		EntidadeID:    &at.ID,
	})

	return at, nil
}
