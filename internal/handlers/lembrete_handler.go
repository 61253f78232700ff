package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/httpresp"
	"github.com/PetCareServices/petcare-api/internal/models"
	"github.com/PetCareServices/petcare-api/internal/timezone"
	uclembrete "github.com/PetCareServices/petcare-api/internal/usecase/lembrete"
)

type LembreteHandler struct {
	db        *gorm.DB
	processar *uclembrete.Processar
}

func NewLembreteHandler(db *gorm.DB, processar *uclembrete.Processar) *LembreteHandler {
	return &LembreteHandler{db: db, processar: processar}
}

func (h *LembreteHandler) List(c *gin.Context) {
	q := h.db.Model(&models.LembreteEmail{})

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if agendamentoID := c.Query("agendamento_id"); agendamentoID != "" {
		q = q.Where("agendamento_id = ?", agendamentoID)
	}

	var lembretes []models.LembreteEmail
	if err := q.Order("created_at DESC").Find(&lembretes).Error; err != nil {
		httperr.Internal(c, "failed_to_list_lembretes", "Erro ao listar lembretes.")
		return
	}

	httpresp.List(c, lembretes)
}

// Processar dispara manualmente a mesma passada que o agendador roda
// todo dia.
func (h *LembreteHandler) Processar(c *gin.Context) {
	enviados, err := h.processar.Execute(c.Request.Context(), timezone.Now())
	if err != nil {
		httperr.Internal(c, "failed_to_process_lembretes", "Erro ao processar lembretes.")
		return
	}

	httpresp.OK(c, gin.H{"enviados": enviados})
}
