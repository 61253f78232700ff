package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PetCareServices/petcare-api/internal/audit"
	"github.com/PetCareServices/petcare-api/internal/cache"
	"github.com/PetCareServices/petcare-api/internal/domain/agenda"
	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/httpresp"
	"github.com/PetCareServices/petcare-api/internal/models"
	ucagendamento "github.com/PetCareServices/petcare-api/internal/usecase/agendamento"
)

type HorarioHandler struct {
	db       *gorm.DB
	listar   *ucagendamento.ListarHorarios
	horarios *cache.HorariosCache
	audit    *audit.Dispatcher
}

func NewHorarioHandler(
	db *gorm.DB,
	listar *ucagendamento.ListarHorarios,
	horarios *cache.HorariosCache,
	audit *audit.Dispatcher,
) *HorarioHandler {
	return &HorarioHandler{
		db:       db,
		listar:   listar,
		horarios: horarios,
		audit:    audit,
	}
}

// --------- Requests ---------

type CreateHorarioRequest struct {
	Data          string `json:"data" binding:"required"`
	Hora          string `json:"hora" binding:"required"`
	FuncionarioID uint   `json:"funcionario_id" binding:"required"`
}

type GerarHorariosRequest struct {
	Data          string `json:"data" binding:"required"`
	FuncionarioID uint   `json:"funcionario_id" binding:"required"`

	HoraInicio   string `json:"hora_inicio" binding:"required"`
	HoraFim      string `json:"hora_fim" binding:"required"`
	IntervaloMin int    `json:"intervalo_min" binding:"required"`

	// Quando true, só devolve a grade sem gravar nada.
	Previa bool `json:"previa"`
}

func validaDataHora(data, hora string) bool {
	if _, err := time.Parse("2006-01-02", data); err != nil {
		return false
	}
	_, err := time.Parse("15:04", hora)
	return err == nil
}

// ======================================================
// LIST
// ======================================================

// List devolve os slots de uma data. `editando` injeta o pseudo-slot do
// agendamento em edição, que representa o horário que ele já ocupa.
func (h *HorarioHandler) List(c *gin.Context) {
	data := c.Query("data")
	if data == "" {
		httperr.BadRequest(c, "data_obrigatoria", "Informe a data (AAAA-MM-DD).")
		return
	}

	var funcionarioID uint
	if raw := c.Query("funcionario_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "funcionario_invalido", "Funcionário inválido.")
			return
		}
		funcionarioID = uint(v)
	}

	var editandoID uint
	if raw := c.Query("editando"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "agendamento_invalido", "Agendamento inválido.")
			return
		}
		editandoID = uint(v)
	}

	horarios, err := h.listar.Execute(c.Request.Context(), data, funcionarioID, editandoID)
	if err != nil {
		writeBusiness(c, err, "failed_to_list_horarios")
		return
	}

	httpresp.List(c, horarios)
}

// ======================================================
// CREATE
// ======================================================

func (h *HorarioHandler) Create(c *gin.Context) {
	var req CreateHorarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validaDataHora(req.Data, req.Hora) {
		httperr.BadRequest(c, "data_hora_invalida", "Use data AAAA-MM-DD e hora HH:MM.")
		return
	}

	var funcionario models.Funcionario
	if err := h.db.First(&funcionario, req.FuncionarioID).Error; err != nil {
		httperr.NotFound(c, "funcionario_nao_encontrado", "Funcionário não encontrado.")
		return
	}

	horario := models.HorarioDisponivel{
		Data:            req.Data,
		Hora:            req.Hora,
		FuncionarioID:   funcionario.ID,
		FuncionarioNome: funcionario.Nome,
		Disponivel:      true,
	}

	if err := h.db.Create(&horario).Error; err != nil {
		// O índice único cobre a trinca data/hora/funcionário.
		httperr.BadRequest(c, "horario_duplicado", "Já existe um horário nesta data e hora para o funcionário.")
		return
	}

	h.horarios.Invalidar(c.Request.Context(), horario.Data)

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "horario_criado",
		Entidade:      "horario_disponivel",
		EntidadeID:    &horario.ID,
	})

	httpresp.Created(c, horario)
}

// Gerar materializa uma grade de slots entre hora_inicio e hora_fim.
// Horas já cadastradas para o funcionário na data são puladas, então a
// operação pode ser repetida sem duplicar nada.
func (h *HorarioHandler) Gerar(c *gin.Context) {
	var req GerarHorariosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validaDataHora(req.Data, req.HoraInicio) || !validaDataHora(req.Data, req.HoraFim) {
		httperr.BadRequest(c, "data_hora_invalida", "Use data AAAA-MM-DD e horas HH:MM.")
		return
	}
	if req.IntervaloMin <= 0 {
		httperr.BadRequest(c, "intervalo_invalido", "O intervalo deve ser maior que zero.")
		return
	}

	var funcionario models.Funcionario
	if err := h.db.First(&funcionario, req.FuncionarioID).Error; err != nil {
		httperr.NotFound(c, "funcionario_nao_encontrado", "Funcionário não encontrado.")
		return
	}

	horas := agenda.GerarHoras(req.HoraInicio, req.HoraFim, req.IntervaloMin)

	if req.Previa {
		httpresp.OK(c, gin.H{"data": req.Data, "horas": horas})
		return
	}

	var existentes []models.HorarioDisponivel
	if err := h.db.
		Where("data = ? AND funcionario_id = ?", req.Data, funcionario.ID).
		Find(&existentes).Error; err != nil {
		httperr.Internal(c, "failed_to_generate_horarios", "Erro ao gerar horários.")
		return
	}

	ocupadas := make(map[string]bool, len(existentes))
	for _, e := range existentes {
		ocupadas[e.Hora] = true
	}

	var novos []models.HorarioDisponivel
	for _, hora := range horas {
		if ocupadas[hora] {
			continue
		}
		novos = append(novos, models.HorarioDisponivel{
			Data:            req.Data,
			Hora:            hora,
			FuncionarioID:   funcionario.ID,
			FuncionarioNome: funcionario.Nome,
			Disponivel:      true,
		})
	}

	if len(novos) > 0 {
		if err := h.db.Create(&novos).Error; err != nil {
			httperr.Internal(c, "failed_to_generate_horarios", "Erro ao gerar horários.")
			return
		}
		h.horarios.Invalidar(c.Request.Context(), req.Data)
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "horarios_gerados",
		Entidade:      "horario_disponivel",
		Metadata: map[string]any{
			"data":           req.Data,
			"funcionario_id": funcionario.ID,
			"criados":        len(novos),
			"pulados":        len(horas) - len(novos),
		},
	})

	httpresp.Created(c, gin.H{
		"criados": len(novos),
		"pulados": len(horas) - len(novos),
		"slots":   novos,
	})
}

// ======================================================
// DELETE
// ======================================================

// Delete só remove slots ainda livres. Um slot ocupado pertence ao
// agendamento que o reservou.
func (h *HorarioHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var horario models.HorarioDisponivel
	if err := h.db.First(&horario, id).Error; err != nil {
		httperr.NotFound(c, "horario_nao_encontrado", "Horário não encontrado.")
		return
	}

	if !horario.Disponivel {
		httperr.BadRequest(c, "horario_ocupado", "Não é possível excluir um horário reservado.")
		return
	}

	if err := h.db.Delete(&horario).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_horario", "Erro ao excluir horário.")
		return
	}

	h.horarios.Invalidar(c.Request.Context(), horario.Data)

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "horario_excluido",
		Entidade:      "horario_disponivel",
		EntidadeID:    &horario.ID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
