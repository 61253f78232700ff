package atendimento

import "github.com/PetCareServices/petcare-api/internal/models"

// ===============================
// Tipos de item
// ===============================

const (
	TipoProduto = "produto"
	TipoServico = "servico"
)

func TipoValido(tipo string) bool {
	return tipo == TipoProduto || tipo == TipoServico
}

// CalcularValorTotal recalcula o total a partir do conjunto completo de
// itens. O total nunca é ajustado incrementalmente, para não acumular
// desvio em falhas parciais.
func CalcularValorTotal(itens []models.ItemAtendimento) float64 {
	var total float64
	for _, item := range itens {
		total += float64(item.Quantidade) * item.ValorUnitario
	}
	return total
}
