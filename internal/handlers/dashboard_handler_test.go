package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/PetCareServices/petcare-api/internal/models"
	"github.com/PetCareServices/petcare-api/internal/timezone"
)

func TestDashboardResumo(t *testing.T) {
	db := bancoDeTeste(t)
	h := NewDashboardHandler(db)

	cliente := criaCliente(t, db)
	outro := models.Cliente{Nome: "Joana Lima"}
	assert.NoError(t, db.Create(&outro).Error)

	funcionario := criaFuncionario(t, db)

	pet := models.Pet{ClienteID: cliente.ID, Nome: "Rex", ClienteNome: cliente.Nome}
	assert.NoError(t, db.Create(&pet).Error)

	agora := timezone.Now()
	recente := models.Atendimento{
		Data:          agora,
		ClienteID:     cliente.ID,
		PetID:         pet.ID,
		FuncionarioID: funcionario.ID,
		ValorTotal:    100,
	}
	antigo := models.Atendimento{
		Data:          agora.AddDate(0, 0, -60),
		ClienteID:     cliente.ID,
		PetID:         pet.ID,
		FuncionarioID: funcionario.ID,
		ValorTotal:    50,
	}
	assert.NoError(t, db.Create(&recente).Error)
	assert.NoError(t, db.Create(&antigo).Error)

	acabando := models.Produto{Nome: "Shampoo Antipulgas", Preco: 60, Estoque: 3}
	sobrando := models.Produto{Nome: "Ração Premium", Preco: 120, Estoque: 50}
	assert.NoError(t, db.Create(&acabando).Error)
	assert.NoError(t, db.Create(&sobrando).Error)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.Resumo(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resumo DashboardResumo
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resumo))

	assert.EqualValues(t, 2, resumo.Clientes)
	assert.EqualValues(t, 1, resumo.Pets)
	assert.EqualValues(t, 1, resumo.Funcionarios)

	// Só o atendimento dos últimos 30 dias conta como recente, mas o
	// faturamento soma o histórico inteiro.
	assert.EqualValues(t, 1, resumo.AtendimentosRecentes)
	assert.InDelta(t, 150, resumo.ValorTotalAtendimentos, 0.001)
	assert.InDelta(t, 75, resumo.ValorMedioAtendimentos, 0.001)

	if assert.Len(t, resumo.ProdutosBaixoEstoque, 1) {
		assert.Equal(t, "Shampoo Antipulgas", resumo.ProdutosBaixoEstoque[0].Nome)
	}
}

func TestDashboardResumoVazio(t *testing.T) {
	db := bancoDeTeste(t)
	h := NewDashboardHandler(db)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.Resumo(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resumo DashboardResumo
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resumo))
	assert.Zero(t, resumo.Clientes)
	assert.Zero(t, resumo.ValorMedioAtendimentos)
	assert.Empty(t, resumo.ProdutosBaixoEstoque)
}
