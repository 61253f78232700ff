package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/httpresp"
	"github.com/PetCareServices/petcare-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	funcionarioID := funcionarioAutor(c)

	var f models.Funcionario
	if err := h.db.First(&f, funcionarioID).Error; err != nil {
		httperr.Unauthorized(c, "funcionario_nao_encontrado", "Funcionário não encontrado.")
		return
	}

	httpresp.OK(c, f)
}
