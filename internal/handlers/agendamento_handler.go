package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/httpresp"
	ucagendamento "github.com/PetCareServices/petcare-api/internal/usecase/agendamento"
)

type AgendamentoHandler struct {
	criar     *ucagendamento.CriarAgendamento
	atualizar *ucagendamento.AtualizarAgendamento
	excluir   *ucagendamento.ExcluirAgendamento
	listar    *ucagendamento.ListarAgendamentos
}

func NewAgendamentoHandler(
	criar *ucagendamento.CriarAgendamento,
	atualizar *ucagendamento.AtualizarAgendamento,
	excluir *ucagendamento.ExcluirAgendamento,
	listar *ucagendamento.ListarAgendamentos,
) *AgendamentoHandler {
	return &AgendamentoHandler{
		criar:     criar,
		atualizar: atualizar,
		excluir:   excluir,
		listar:    listar,
	}
}

// --------- Requests ---------

type CreateAgendamentoRequest struct {
	ClienteID uint `json:"cliente_id" binding:"required"`
	PetID     uint `json:"pet_id" binding:"required"`
	ServicoID uint `json:"servico_id" binding:"required"`
	HorarioID uint `json:"horario_id" binding:"required"`

	Observacoes string `json:"observacoes"`
}

type UpdateAgendamentoRequest struct {
	ClienteID *uint `json:"cliente_id"`
	PetID     *uint `json:"pet_id"`
	ServicoID *uint `json:"servico_id"`

	// 0 mantém o horário atual do agendamento.
	HorarioID *uint `json:"horario_id"`

	Status      *string `json:"status"`
	Observacoes *string `json:"observacoes"`
}

// ======================================================
// LIST
// ======================================================

func (h *AgendamentoHandler) List(c *gin.Context) {
	ags, err := h.listar.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_agendamentos", "Erro ao listar agendamentos.")
		return
	}
	httpresp.List(c, ags)
}

func (h *AgendamentoHandler) ListByCliente(c *gin.Context) {
	clienteID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ags, err := h.listar.PorCliente(c.Request.Context(), clienteID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_agendamentos", "Erro ao listar agendamentos.")
		return
	}
	httpresp.List(c, ags)
}

func (h *AgendamentoHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ag, err := h.listar.Get(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "agendamento_nao_encontrado", "Agendamento não encontrado.")
		return
	}
	httpresp.OK(c, ag)
}

// Calendario devolve o mapa data → ids, a base das visões mensais.
func (h *AgendamentoHandler) Calendario(c *gin.Context) {
	httpresp.OK(c, h.listar.Calendario())
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *AgendamentoHandler) Create(c *gin.Context) {
	var req CreateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ag, err := h.criar.Execute(c.Request.Context(), ucagendamento.CriarAgendamentoInput{
		ClienteID:   req.ClienteID,
		PetID:       req.PetID,
		ServicoID:   req.ServicoID,
		HorarioID:   req.HorarioID,
		Observacoes: req.Observacoes,

		FuncionarioAutor: funcionarioAutor(c),
	})
	if err != nil {
		writeBusiness(c, err, "failed_to_create_agendamento")
		return
	}

	httpresp.Created(c, ag)
}

func (h *AgendamentoHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ag, err := h.atualizar.Execute(c.Request.Context(), id, ucagendamento.AtualizarAgendamentoInput{
		ClienteID:   req.ClienteID,
		PetID:       req.PetID,
		ServicoID:   req.ServicoID,
		HorarioID:   req.HorarioID,
		Status:      req.Status,
		Observacoes: req.Observacoes,

		FuncionarioAutor: funcionarioAutor(c),
	})
	if err != nil {
		writeBusiness(c, err, "failed_to_update_agendamento")
		return
	}

	httpresp.OK(c, ag)
}

func (h *AgendamentoHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.excluir.Execute(c.Request.Context(), id, funcionarioAutor(c)); err != nil {
		writeBusiness(c, err, "failed_to_delete_agendamento")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
