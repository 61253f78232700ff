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

type ServicoHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServicoHandler(db *gorm.DB, audit *audit.Dispatcher) *ServicoHandler {
	return &ServicoHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateServicoRequest struct {
	Nome       string  `json:"nome" binding:"required"`
	Descricao  string  `json:"descricao"`
	DuracaoMin int     `json:"duracao_min"`
	Preco      float64 `json:"preco"`
}

type UpdateServicoRequest struct {
	Nome       *string  `json:"nome"`
	Descricao  *string  `json:"descricao"`
	DuracaoMin *int     `json:"duracao_min"`
	Preco      *float64 `json:"preco"`
}

// ======================================================
// CRUD
// ======================================================

func (h *ServicoHandler) List(c *gin.Context) {
	var servicos []models.Servico
	if err := h.db.Order("nome ASC").Find(&servicos).Error; err != nil {
		httperr.Internal(c, "failed_to_list_servicos", "Erro ao listar serviços.")
		return
	}
	httpresp.List(c, servicos)
}

func (h *ServicoHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var servico models.Servico
	if err := h.db.First(&servico, id).Error; err != nil {
		httperr.NotFound(c, "servico_nao_encontrado", "Serviço não encontrado.")
		return
	}
	httpresp.OK(c, servico)
}

func (h *ServicoHandler) Create(c *gin.Context) {
	var req CreateServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Preco < 0 {
		httperr.BadRequest(c, "preco_invalido", "O preço não pode ser negativo.")
		return
	}

	servico := models.Servico{
		Nome:       strings.TrimSpace(req.Nome),
		Descricao:  strings.TrimSpace(req.Descricao),
		DuracaoMin: req.DuracaoMin,
		Preco:      req.Preco,
	}

	if err := h.db.Create(&servico).Error; err != nil {
		httperr.Internal(c, "failed_to_create_servico", "Erro ao criar serviço.")
		return
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "servico_criado",
		Entidade:      "servico",
		EntidadeID:    &servico.ID,
	})

	httpresp.Created(c, servico)
}

func (h *ServicoHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var servico models.Servico
	if err := h.db.First(&servico, id).Error; err != nil {
		httperr.NotFound(c, "servico_nao_encontrado", "Serviço não encontrado.")
		return
	}

	var req UpdateServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Nome != nil {
		servico.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.Descricao != nil {
		servico.Descricao = strings.TrimSpace(*req.Descricao)
	}
	if req.DuracaoMin != nil {
		servico.DuracaoMin = *req.DuracaoMin
	}
	if req.Preco != nil {
		if *req.Preco < 0 {
			httperr.BadRequest(c, "preco_invalido", "O preço não pode ser negativo.")
			return
		}
		servico.Preco = *req.Preco
	}

	if err := h.db.Save(&servico).Error; err != nil {
		httperr.Internal(c, "failed_to_update_servico", "Erro ao atualizar serviço.")
		return
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "servico_atualizado",
		Entidade:      "servico",
		EntidadeID:    &servico.ID,
	})

	httpresp.OK(c, servico)
}

// Delete recusa excluir um serviço já usado em itens de atendimento ou
// em agendamentos. Itens antigos guardam o preço congelado; apagar a
// referência deixaria o histórico órfão.
func (h *ServicoHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var servico models.Servico
	if err := h.db.First(&servico, id).Error; err != nil {
		httperr.NotFound(c, "servico_nao_encontrado", "Serviço não encontrado.")
		return
	}

	var count int64
	if err := h.db.Model(&models.ItemAtendimento{}).
		Where("tipo = ? AND item_id = ?", domain.TipoServico, servico.ID).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_servico", "Erro ao excluir serviço.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "servico_em_uso", "Não é possível excluir: o serviço aparece em atendimentos.")
		return
	}

	if err := h.db.Model(&models.Agendamento{}).
		Where("servico_id = ?", servico.ID).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_servico", "Erro ao excluir serviço.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "servico_em_uso", "Não é possível excluir: o serviço aparece em agendamentos.")
		return
	}

	if err := h.db.Delete(&servico).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_servico", "Erro ao excluir serviço.")
		return
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "servico_excluido",
		Entidade:      "servico",
		EntidadeID:    &servico.ID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
