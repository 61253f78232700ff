package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/PetCareServices/petcare-api/internal/audit"
	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/httpresp"
	"github.com/PetCareServices/petcare-api/internal/pagamento"
	ucatendimento "github.com/PetCareServices/petcare-api/internal/usecase/atendimento"
)

type PagamentoHandler struct {
	mp     *pagamento.Client
	listar *ucatendimento.ListarAtendimentos
	audit  *audit.Dispatcher
}

func NewPagamentoHandler(
	mp *pagamento.Client,
	listar *ucatendimento.ListarAtendimentos,
	audit *audit.Dispatcher,
) *PagamentoHandler {
	return &PagamentoHandler{mp: mp, listar: listar, audit: audit}
}

// CriarCobranca gera a preferência de checkout do atendimento, com um
// item por linha do consumo.
func (h *PagamentoHandler) CriarCobranca(c *gin.Context) {
	if !h.mp.Habilitado() {
		httperr.BadRequest(c, "pagamento_desabilitado", "A integração de pagamento não está configurada.")
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	at, err := h.listar.Get(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "atendimento_nao_encontrado", "Atendimento não encontrado.")
		return
	}

	cobranca, err := h.mp.CriarCobranca(c.Request.Context(), at)
	if err != nil {
		writeBusiness(c, err, "failed_to_create_cobranca")
		return
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "cobranca_criada",
		Entidade:      "atendimento",
		EntidadeID:    &at.ID,
		Metadata: map[string]any{
			"preferencia_id": cobranca.PreferenciaID,
			"valor_total":    at.ValorTotal,
		},
	})

	httpresp.Created(c, cobranca)
}
