package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/httpresp"
	"github.com/PetCareServices/petcare-api/internal/models"
	"github.com/PetCareServices/petcare-api/internal/timezone"
)

// Produtos com menos unidades que isso entram na lista de reposição.
const estoqueBaixo = 10

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

type DashboardResumo struct {
	Clientes     int64 `json:"clientes"`
	Pets         int64 `json:"pets"`
	Funcionarios int64 `json:"funcionarios"`

	// Atendimentos dos últimos 30 dias.
	AtendimentosRecentes int64 `json:"atendimentos_recentes"`

	ValorTotalAtendimentos float64 `json:"valor_total_atendimentos"`
	ValorMedioAtendimentos float64 `json:"valor_medio_atendimentos"`

	ProdutosBaixoEstoque []models.Produto `json:"produtos_baixo_estoque"`
}

// Resumo agrega os números da tela inicial em uma leitura só.
func (h *DashboardHandler) Resumo(c *gin.Context) {
	var resumo DashboardResumo

	contagens := []struct {
		model any
		dest  *int64
	}{
		{&models.Cliente{}, &resumo.Clientes},
		{&models.Pet{}, &resumo.Pets},
		{&models.Funcionario{}, &resumo.Funcionarios},
	}
	for _, ct := range contagens {
		if err := h.db.Model(ct.model).Count(ct.dest).Error; err != nil {
			httperr.Internal(c, "failed_to_load_dashboard", "Erro ao montar o dashboard.")
			return
		}
	}

	corte := timezone.Now().AddDate(0, 0, -30)
	if err := h.db.Model(&models.Atendimento{}).
		Where("data > ?", corte).
		Count(&resumo.AtendimentosRecentes).Error; err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro ao montar o dashboard.")
		return
	}

	var faturamento struct {
		Total float64
		Qtde  int64
	}
	if err := h.db.Model(&models.Atendimento{}).
		Select("COALESCE(SUM(valor_total), 0) AS total, COUNT(*) AS qtde").
		Scan(&faturamento).Error; err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro ao montar o dashboard.")
		return
	}
	resumo.ValorTotalAtendimentos = faturamento.Total
	if faturamento.Qtde > 0 {
		resumo.ValorMedioAtendimentos = faturamento.Total / float64(faturamento.Qtde)
	}

	if err := h.db.
		Where("estoque < ?", estoqueBaixo).
		Order("estoque ASC").
		Find(&resumo.ProdutosBaixoEstoque).Error; err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro ao montar o dashboard.")
		return
	}

	httpresp.OK(c, resumo)
}
