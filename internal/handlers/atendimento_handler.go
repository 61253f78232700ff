package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/httpresp"
	ucatendimento "github.com/PetCareServices/petcare-api/internal/usecase/atendimento"
)

type AtendimentoHandler struct {
	criar     *ucatendimento.CriarAtendimento
	atualizar *ucatendimento.AtualizarAtendimento
	excluir   *ucatendimento.ExcluirAtendimento
	itens     *ucatendimento.GerenciarItens
	listar    *ucatendimento.ListarAtendimentos
}

func NewAtendimentoHandler(
	criar *ucatendimento.CriarAtendimento,
	atualizar *ucatendimento.AtualizarAtendimento,
	excluir *ucatendimento.ExcluirAtendimento,
	itens *ucatendimento.GerenciarItens,
	listar *ucatendimento.ListarAtendimentos,
) *AtendimentoHandler {
	return &AtendimentoHandler{
		criar:     criar,
		atualizar: atualizar,
		excluir:   excluir,
		itens:     itens,
		listar:    listar,
	}
}

// --------- Requests ---------

type CreateAtendimentoRequest struct {
	Data          time.Time `json:"data" binding:"required"`
	ClienteID     uint      `json:"cliente_id" binding:"required"`
	PetID         uint      `json:"pet_id" binding:"required"`
	FuncionarioID uint      `json:"funcionario_id" binding:"required"`

	Status      string `json:"status"`
	Observacoes string `json:"observacoes"`
}

type UpdateAtendimentoRequest struct {
	Data          *time.Time `json:"data"`
	ClienteID     *uint      `json:"cliente_id"`
	PetID         *uint      `json:"pet_id"`
	FuncionarioID *uint      `json:"funcionario_id"`

	Status      *string `json:"status"`
	Observacoes *string `json:"observacoes"`
}

type AddItemRequest struct {
	Tipo       string `json:"tipo" binding:"required"`
	ItemID     uint   `json:"item_id" binding:"required"`
	Quantidade int    `json:"quantidade" binding:"required"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AtendimentoHandler) List(c *gin.Context) {
	ats, err := h.listar.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_atendimentos", "Erro ao listar atendimentos.")
		return
	}
	httpresp.List(c, ats)
}

func (h *AtendimentoHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	at, err := h.listar.Get(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "atendimento_nao_encontrado", "Atendimento não encontrado.")
		return
	}
	httpresp.OK(c, at)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *AtendimentoHandler) Create(c *gin.Context) {
	var req CreateAtendimentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	at, err := h.criar.Execute(c.Request.Context(), ucatendimento.CriarAtendimentoInput{
		Data:          req.Data,
		ClienteID:     req.ClienteID,
		PetID:         req.PetID,
		FuncionarioID: req.FuncionarioID,
		Status:        req.Status,
		Observacoes:   req.Observacoes,

		FuncionarioAutor: funcionarioAutor(c),
	})
	if err != nil {
		writeBusiness(c, err, "failed_to_create_atendimento")
		return
	}

	httpresp.Created(c, at)
}

func (h *AtendimentoHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateAtendimentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	at, err := h.atualizar.Execute(c.Request.Context(), id, ucatendimento.AtualizarAtendimentoInput{
		Data:          req.Data,
		ClienteID:     req.ClienteID,
		PetID:         req.PetID,
		FuncionarioID: req.FuncionarioID,
		Status:        req.Status,
		Observacoes:   req.Observacoes,

		FuncionarioAutor: funcionarioAutor(c),
	})
	if err != nil {
		writeBusiness(c, err, "failed_to_update_atendimento")
		return
	}

	httpresp.OK(c, at)
}

func (h *AtendimentoHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.excluir.Execute(c.Request.Context(), id, funcionarioAutor(c)); err != nil {
		writeBusiness(c, err, "failed_to_delete_atendimento")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}

// ======================================================
// ITENS
// ======================================================

func (h *AtendimentoHandler) AddItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	at, err := h.itens.Adicionar(c.Request.Context(), id, ucatendimento.AdicionarItemInput{
		Tipo:       req.Tipo,
		ItemID:     req.ItemID,
		Quantidade: req.Quantidade,

		FuncionarioAutor: funcionarioAutor(c),
	})
	if err != nil {
		writeBusiness(c, err, "failed_to_add_item")
		return
	}

	httpresp.Created(c, at)
}

func (h *AtendimentoHandler) RemoveItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}

	at, err := h.itens.Remover(c.Request.Context(), id, itemID, funcionarioAutor(c))
	if err != nil {
		writeBusiness(c, err, "failed_to_remove_item")
		return
	}

	httpresp.OK(c, at)
}
