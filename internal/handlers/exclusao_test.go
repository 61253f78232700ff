package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/PetCareServices/petcare-api/internal/audit"
	domain "github.com/PetCareServices/petcare-api/internal/domain/atendimento"
	"github.com/PetCareServices/petcare-api/internal/middleware"
	"github.com/PetCareServices/petcare-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func bancoDeTeste(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("abrindo banco em memória: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Cliente{},
		&models.Pet{},
		&models.Funcionario{},
		&models.Servico{},
		&models.Produto{},
		&models.Agendamento{},
		&models.Atendimento{},
		&models.ItemAtendimento{},
	); err != nil {
		t.Fatalf("migrando modelos: %v", err)
	}
	return db
}

func auditNop() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zerolog.Nop())
}

// requisicaoDelete monta um contexto autenticado com :id na rota.
func requisicaoDelete(id uint) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: strconv.FormatUint(uint64(id), 10)}}
	c.Set(middleware.ContextFuncionarioID, uint(1))
	return c, w
}

func criaCliente(t *testing.T, db *gorm.DB) models.Cliente {
	t.Helper()
	cliente := models.Cliente{Nome: "Maria Souza", Email: "maria@gmail.com"}
	assert.NoError(t, db.Create(&cliente).Error)
	return cliente
}

func criaFuncionario(t *testing.T, db *gorm.DB) models.Funcionario {
	t.Helper()
	f := models.Funcionario{
		Nome:       "Carla",
		EmailLogin: "carla@petcare.com",
		SenhaHash:  "x",
	}
	assert.NoError(t, db.Create(&f).Error)
	return f
}

// --------- clientes ---------

func TestDeleteClienteComPetEhRecusado(t *testing.T) {
	db := bancoDeTeste(t)
	h := NewClienteHandler(db, auditNop())

	cliente := criaCliente(t, db)
	pet := models.Pet{ClienteID: cliente.ID, Nome: "Rex", ClienteNome: cliente.Nome}
	assert.NoError(t, db.Create(&pet).Error)

	c, w := requisicaoDelete(cliente.ID)
	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cliente_possui_pets")

	// A recusa não pode apagar nada.
	var total int64
	db.Model(&models.Cliente{}).Count(&total)
	assert.EqualValues(t, 1, total)

	// Sem o pet, a exclusão passa.
	assert.NoError(t, db.Delete(&pet).Error)

	c, w = requisicaoDelete(cliente.ID)
	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	db.Model(&models.Cliente{}).Count(&total)
	assert.EqualValues(t, 0, total)
}

func TestDeleteClienteComAgendamentoEhRecusado(t *testing.T) {
	db := bancoDeTeste(t)
	h := NewClienteHandler(db, auditNop())

	cliente := criaCliente(t, db)
	ag := models.Agendamento{
		Codigo:    "ag-1",
		Data:      "2026-09-01",
		Hora:      "09:00",
		ClienteID: cliente.ID,
	}
	assert.NoError(t, db.Create(&ag).Error)

	c, w := requisicaoDelete(cliente.ID)
	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cliente_possui_agendamentos")
}

// --------- catálogo ---------

func TestDeleteServicoUsadoEmAtendimentoEhRecusado(t *testing.T) {
	db := bancoDeTeste(t)
	h := NewServicoHandler(db, auditNop())

	cliente := criaCliente(t, db)
	funcionario := criaFuncionario(t, db)

	servico := models.Servico{Nome: "Banho e Tosa", Preco: 70}
	assert.NoError(t, db.Create(&servico).Error)

	at := models.Atendimento{
		ClienteID:     cliente.ID,
		FuncionarioID: funcionario.ID,
	}
	assert.NoError(t, db.Create(&at).Error)

	item := models.ItemAtendimento{
		AtendimentoID: at.ID,
		Tipo:          domain.TipoServico,
		ItemID:        servico.ID,
		Quantidade:    1,
		ValorUnitario: 70,
		Nome:          servico.Nome,
	}
	assert.NoError(t, db.Create(&item).Error)

	c, w := requisicaoDelete(servico.ID)
	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "servico_em_uso")

	var total int64
	db.Model(&models.Servico{}).Count(&total)
	assert.EqualValues(t, 1, total)

	// Removido o item que congelou o preço, a exclusão é liberada.
	assert.NoError(t, db.Delete(&item).Error)

	c, w = requisicaoDelete(servico.ID)
	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	db.Model(&models.Servico{}).Count(&total)
	assert.EqualValues(t, 0, total)
}

func TestDeleteServicoComAgendamentoEhRecusado(t *testing.T) {
	db := bancoDeTeste(t)
	h := NewServicoHandler(db, auditNop())

	servico := models.Servico{Nome: "Consulta Veterinária", Preco: 150}
	assert.NoError(t, db.Create(&servico).Error)

	ag := models.Agendamento{
		Codigo:    "ag-2",
		Data:      "2026-09-01",
		Hora:      "10:00",
		ServicoID: servico.ID,
	}
	assert.NoError(t, db.Create(&ag).Error)

	c, w := requisicaoDelete(servico.ID)
	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "servico_em_uso")
}

func TestDeleteProdutoUsadoEmAtendimentoEhRecusado(t *testing.T) {
	db := bancoDeTeste(t)
	h := NewProdutoHandler(db, auditNop())

	cliente := criaCliente(t, db)
	funcionario := criaFuncionario(t, db)

	produto := models.Produto{Nome: "Shampoo Antipulgas", Preco: 60, Estoque: 50}
	assert.NoError(t, db.Create(&produto).Error)

	at := models.Atendimento{
		ClienteID:     cliente.ID,
		FuncionarioID: funcionario.ID,
	}
	assert.NoError(t, db.Create(&at).Error)

	item := models.ItemAtendimento{
		AtendimentoID: at.ID,
		Tipo:          domain.TipoProduto,
		ItemID:        produto.ID,
		Quantidade:    2,
		ValorUnitario: 60,
		Nome:          produto.Nome,
	}
	assert.NoError(t, db.Create(&item).Error)

	c, w := requisicaoDelete(produto.ID)
	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "produto_em_uso")

	var total int64
	db.Model(&models.Produto{}).Count(&total)
	assert.EqualValues(t, 1, total)

	assert.NoError(t, db.Delete(&item).Error)

	c, w = requisicaoDelete(produto.ID)
	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	db.Model(&models.Produto{}).Count(&total)
	assert.EqualValues(t, 0, total)
}
