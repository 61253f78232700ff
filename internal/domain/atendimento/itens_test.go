package atendimento

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PetCareServices/petcare-api/internal/models"
)

func TestCalcularValorTotal(t *testing.T) {
	itens := []models.ItemAtendimento{
		{Tipo: TipoServico, Quantidade: 1, ValorUnitario: 70},
		{Tipo: TipoProduto, Quantidade: 2, ValorUnitario: 60},
	}

	assert.Equal(t, 190.0, CalcularValorTotal(itens))
	assert.Equal(t, 0.0, CalcularValorTotal(nil))
}

func TestTipoValido(t *testing.T) {
	assert.True(t, TipoValido(TipoProduto))
	assert.True(t, TipoValido(TipoServico))
	assert.False(t, TipoValido("assinatura"))
	assert.False(t, TipoValido(""))
}
