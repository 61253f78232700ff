package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/middleware"
)

// paramID lê um :id numérico da rota. Devolve false (com resposta já
// escrita) quando o valor não é um inteiro positivo.
func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func funcionarioAutor(c *gin.Context) uint {
	return c.MustGet(middleware.ContextFuncionarioID).(uint)
}

// Mensagens amigáveis por código de negócio. Códigos fora da tabela
// voltam com texto genérico, mas sempre com o código exato.
var mensagens = map[string]string{
	"selecione_um_horario":       "Selecione um horário disponível.",
	"horario_nao_encontrado":     "Horário não encontrado.",
	"horario_indisponivel":       "Este horário não está mais disponível.",
	"estoque_insuficiente":       "Estoque insuficiente para o produto.",
	"cliente_nao_encontrado":     "Cliente não encontrado.",
	"pet_nao_encontrado":         "Pet não encontrado.",
	"servico_nao_encontrado":     "Serviço não encontrado.",
	"produto_nao_encontrado":     "Produto não encontrado.",
	"funcionario_nao_encontrado": "Funcionário não encontrado.",
	"agendamento_nao_encontrado": "Agendamento não encontrado.",
	"atendimento_nao_encontrado": "Atendimento não encontrado.",
	"item_nao_encontrado":        "Item não encontrado.",
	"status_invalido":            "Status inválido.",
	"tipo_invalido":              "Tipo de item inválido.",
	"quantidade_invalida":        "Quantidade deve ser maior que zero.",
	"atendimento_sem_valor":      "O atendimento não tem valor a cobrar.",
}

func mensagem(code string) string {
	if m, ok := mensagens[code]; ok {
		return m
	}
	return "Operação não permitida."
}

// writeBusiness converte erros de negócio em 4xx; qualquer outra coisa
// vira 500. Conflitos de concorrência têm código próprio.
func writeBusiness(c *gin.Context, err error, fallbackCode string) {
	if be, ok := httperr.AsBusiness(err); ok {
		switch be.Code {
		case "horario_indisponivel", "estoque_insuficiente":
			httperr.Conflict(c, be.Code, mensagem(be.Code))
		case "cliente_nao_encontrado", "pet_nao_encontrado",
			"servico_nao_encontrado", "produto_nao_encontrado",
			"funcionario_nao_encontrado", "horario_nao_encontrado",
			"agendamento_nao_encontrado", "atendimento_nao_encontrado",
			"item_nao_encontrado":
			httperr.NotFound(c, be.Code, mensagem(be.Code))
		default:
			httperr.BadRequest(c, be.Code, mensagem(be.Code))
		}
		return
	}
	httperr.Internal(c, fallbackCode, "Erro interno.")
}
