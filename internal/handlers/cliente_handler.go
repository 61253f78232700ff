package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PetCareServices/petcare-api/internal/audit"
	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/httpresp"
	"github.com/PetCareServices/petcare-api/internal/models"
	"github.com/PetCareServices/petcare-api/internal/validators"
)

type ClienteHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClienteHandler(db *gorm.DB, audit *audit.Dispatcher) *ClienteHandler {
	return &ClienteHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateClienteRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`
	CPF      string `json:"cpf"`
}

type UpdateClienteRequest struct {
	Nome     *string `json:"nome"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
	Endereco *string `json:"endereco"`
	CPF      *string `json:"cpf"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ClienteHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Cliente{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(nome) LIKE ? OR telefone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clientes []models.Cliente
	if err := q.Order("nome ASC").Find(&clientes).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clientes", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clientes)
}

func (h *ClienteHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, id).Error; err != nil {
		httperr.NotFound(c, "cliente_nao_encontrado", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, cliente)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *ClienteHandler) Create(c *gin.Context) {
	var req CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	cpf := strings.TrimSpace(req.CPF)
	if cpf != "" {
		if !validators.IsCPFValid(cpf) {
			httperr.BadRequest(c, "cpf_invalido", "CPF inválido.")
			return
		}
		cpf = validators.FormatCPF(cpf)
	}

	cliente := models.Cliente{
		Nome:     strings.TrimSpace(req.Nome),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Telefone: strings.TrimSpace(req.Telefone),
		Endereco: strings.TrimSpace(req.Endereco),
		CPF:      cpf,
	}

	if err := h.db.Create(&cliente).Error; err != nil {
		httperr.Internal(c, "failed_to_create_cliente", "Erro ao criar cliente.")
		return
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "cliente_criado",
		Entidade:      "cliente",
		EntidadeID:    &cliente.ID,
	})

	httpresp.Created(c, cliente)
}

func (h *ClienteHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, id).Error; err != nil {
		httperr.NotFound(c, "cliente_nao_encontrado", "Cliente não encontrado.")
		return
	}

	var req UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Nome != nil {
		cliente.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.Email != nil {
		cliente.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Telefone != nil {
		cliente.Telefone = strings.TrimSpace(*req.Telefone)
	}
	if req.Endereco != nil {
		cliente.Endereco = strings.TrimSpace(*req.Endereco)
	}
	if req.CPF != nil {
		cpf := strings.TrimSpace(*req.CPF)
		if cpf != "" {
			if !validators.IsCPFValid(cpf) {
				httperr.BadRequest(c, "cpf_invalido", "CPF inválido.")
				return
			}
			cpf = validators.FormatCPF(cpf)
		}
		cliente.CPF = cpf
	}

	if err := h.db.Save(&cliente).Error; err != nil {
		httperr.Internal(c, "failed_to_update_cliente", "Erro ao atualizar cliente.")
		return
	}

	// O nome denormalizado em pets acompanha a edição.
	if req.Nome != nil {
		h.db.Model(&models.Pet{}).
			Where("cliente_id = ?", cliente.ID).
			Update("cliente_nome", cliente.Nome)
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "cliente_atualizado",
		Entidade:      "cliente",
		EntidadeID:    &cliente.ID,
	})

	httpresp.OK(c, cliente)
}

// ======================================================
// DELETE
// ======================================================

// Delete recusa a exclusão enquanto o cliente tiver pets, atendimentos
// ou agendamentos apontando para ele.
func (h *ClienteHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, id).Error; err != nil {
		httperr.NotFound(c, "cliente_nao_encontrado", "Cliente não encontrado.")
		return
	}

	guards := []struct {
		model any
		code  string
		msg   string
	}{
		{&models.Pet{}, "cliente_possui_pets", "Não é possível excluir: o cliente possui pets cadastrados."},
		{&models.Atendimento{}, "cliente_possui_atendimentos", "Não é possível excluir: o cliente possui atendimentos."},
		{&models.Agendamento{}, "cliente_possui_agendamentos", "Não é possível excluir: o cliente possui agendamentos."},
	}

	for _, g := range guards {
		var count int64
		if err := h.db.Model(g.model).Where("cliente_id = ?", cliente.ID).Count(&count).Error; err != nil {
			httperr.Internal(c, "failed_to_delete_cliente", "Erro ao excluir cliente.")
			return
		}
		if count > 0 {
			httperr.BadRequest(c, g.code, g.msg)
			return
		}
	}

	if err := h.db.Delete(&cliente).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_cliente", "Erro ao excluir cliente.")
		return
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "cliente_excluido",
		Entidade:      "cliente",
		EntidadeID:    &cliente.ID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
