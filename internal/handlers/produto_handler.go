package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PetCareServices/petcare-api/internal/audit"
	domain "github.com/PetCareServices/petcare-api/internal/domain/atendimento"
	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/httpresp"
	"github.com/PetCareServices/petcare-api/internal/models"
)

type ProdutoHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProdutoHandler(db *gorm.DB, audit *audit.Dispatcher) *ProdutoHandler {
	return &ProdutoHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateProdutoRequest struct {
	Nome      string  `json:"nome" binding:"required"`
	Descricao string  `json:"descricao"`
	Preco     float64 `json:"preco"`
	Estoque   int     `json:"estoque"`
	Categoria string  `json:"categoria"`
}

type UpdateProdutoRequest struct {
	Nome      *string  `json:"nome"`
	Descricao *string  `json:"descricao"`
	Preco     *float64 `json:"preco"`
	Estoque   *int     `json:"estoque"`
	Categoria *string  `json:"categoria"`
}

// ======================================================
// CRUD
// ======================================================

func (h *ProdutoHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Produto{})

	if categoria := c.Query("categoria"); categoria != "" {
		q = q.Where("categoria = ?", categoria)
	}

	var produtos []models.Produto
	if err := q.Order("nome ASC").Find(&produtos).Error; err != nil {
		httperr.Internal(c, "failed_to_list_produtos", "Erro ao listar produtos.")
		return
	}
	httpresp.List(c, produtos)
}

func (h *ProdutoHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var produto models.Produto
	if err := h.db.First(&produto, id).Error; err != nil {
		httperr.NotFound(c, "produto_nao_encontrado", "Produto não encontrado.")
		return
	}
	httpresp.OK(c, produto)
}

func (h *ProdutoHandler) Create(c *gin.Context) {
	var req CreateProdutoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Preco < 0 {
		httperr.BadRequest(c, "preco_invalido", "O preço não pode ser negativo.")
		return
	}
	if req.Estoque < 0 {
		httperr.BadRequest(c, "estoque_invalido", "O estoque não pode ser negativo.")
		return
	}

	produto := models.Produto{
		Nome:      strings.TrimSpace(req.Nome),
		Descricao: strings.TrimSpace(req.Descricao),
		Preco:     req.Preco,
		Estoque:   req.Estoque,
		Categoria: strings.TrimSpace(req.Categoria),
	}

	if err := h.db.Create(&produto).Error; err != nil {
		httperr.Internal(c, "failed_to_create_produto", "Erro ao criar produto.")
		return
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "produto_criado",
		Entidade:      "produto",
		EntidadeID:    &produto.ID,
	})

	httpresp.Created(c, produto)
}

func (h *ProdutoHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var produto models.Produto
	if err := h.db.First(&produto, id).Error; err != nil {
		httperr.NotFound(c, "produto_nao_encontrado", "Produto não encontrado.")
		return
	}

	var req UpdateProdutoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Nome != nil {
		produto.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.Descricao != nil {
		produto.Descricao = strings.TrimSpace(*req.Descricao)
	}
	if req.Preco != nil {
		if *req.Preco < 0 {
			httperr.BadRequest(c, "preco_invalido", "O preço não pode ser negativo.")
			return
		}
		produto.Preco = *req.Preco
	}
	if req.Estoque != nil {
		if *req.Estoque < 0 {
			httperr.BadRequest(c, "estoque_invalido", "O estoque não pode ser negativo.")
			return
		}
		produto.Estoque = *req.Estoque
	}
	if req.Categoria != nil {
		produto.Categoria = strings.TrimSpace(*req.Categoria)
	}

	if err := h.db.Save(&produto).Error; err != nil {
		httperr.Internal(c, "failed_to_update_produto", "Erro ao atualizar produto.")
		return
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "produto_atualizado",
		Entidade:      "produto",
		EntidadeID:    &produto.ID,
	})

	httpresp.OK(c, produto)
}

func (h *ProdutoHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var produto models.Produto
	if err := h.db.First(&produto, id).Error; err != nil {
		httperr.NotFound(c, "produto_nao_encontrado", "Produto não encontrado.")
		return
	}

	var count int64
	if err := h.db.Model(&models.ItemAtendimento{}).
		Where("tipo = ? AND item_id = ?", domain.TipoProduto, produto.ID).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_produto", "Erro ao excluir produto.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "produto_em_uso", "Não é possível excluir: o produto aparece em atendimentos.")
		return
	}

	if err := h.db.Delete(&produto).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_produto", "Erro ao excluir produto.")
		return
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "produto_excluido",
		Entidade:      "produto",
		EntidadeID:    &produto.ID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
