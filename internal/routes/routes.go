package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/PetCareServices/petcare-api/internal/audit"
	"github.com/PetCareServices/petcare-api/internal/cache"
	"github.com/PetCareServices/petcare-api/internal/config"
	"github.com/PetCareServices/petcare-api/internal/domain/agenda"
	"github.com/PetCareServices/petcare-api/internal/domain/perfil"
	"github.com/PetCareServices/petcare-api/internal/handlers"
	infraRepo "github.com/PetCareServices/petcare-api/internal/infra/repository"
	"github.com/PetCareServices/petcare-api/internal/mailer"
	"github.com/PetCareServices/petcare-api/internal/middleware"
	"github.com/PetCareServices/petcare-api/internal/pagamento"
	"github.com/PetCareServices/petcare-api/internal/storage"
	ucAgendamento "github.com/PetCareServices/petcare-api/internal/usecase/agendamento"
	ucAtendimento "github.com/PetCareServices/petcare-api/internal/usecase/atendimento"
	ucLembrete "github.com/PetCareServices/petcare-api/internal/usecase/lembrete"
)

// Deps são os singletons que o main monta e as rotas consomem.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    zerolog.Logger

	Indice   *agenda.IndicePorDia
	Horarios *cache.HorariosCache
	Fotos    *storage.FotoStorage
	MP       *pagamento.Client
	Enviador mailer.Enviador
}

// RegisterRoutes liga handlers, use cases e repositórios. Devolve o
// processador de lembretes para o agendador reaproveitar.
func RegisterRoutes(r *gin.Engine, d Deps) *ucLembrete.Processar {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	agendamentoRepo := infraRepo.NewAgendamentoGormRepository(d.DB)
	atendimentoRepo := infraRepo.NewAtendimentoGormRepository(d.DB)
	lembreteRepo := infraRepo.NewLembreteGormRepository(d.DB)

	auditLogger := audit.New(d.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, d.Log)

	// ======================================================
	// 🧠 USE CASES — AGENDAMENTOS
	// ======================================================
	criarAgendamentoUC := ucAgendamento.NewCriarAgendamento(
		agendamentoRepo,
		d.Indice,
		d.Horarios,
		auditDispatcher,
	)

	atualizarAgendamentoUC := ucAgendamento.NewAtualizarAgendamento(
		agendamentoRepo,
		d.Indice,
		d.Horarios,
		auditDispatcher,
	)

	excluirAgendamentoUC := ucAgendamento.NewExcluirAgendamento(
		agendamentoRepo,
		d.Indice,
		d.Horarios,
		auditDispatcher,
	)

	listarAgendamentosUC := ucAgendamento.NewListarAgendamentos(
		agendamentoRepo,
		d.Indice,
	)

	listarHorariosUC := ucAgendamento.NewListarHorarios(
		agendamentoRepo,
		d.Horarios,
	)

	// ======================================================
	// 🧠 USE CASES — ATENDIMENTOS
	// ======================================================
	criarAtendimentoUC := ucAtendimento.NewCriarAtendimento(
		atendimentoRepo,
		auditDispatcher,
	)

	atualizarAtendimentoUC := ucAtendimento.NewAtualizarAtendimento(
		atendimentoRepo,
		auditDispatcher,
	)

	excluirAtendimentoUC := ucAtendimento.NewExcluirAtendimento(
		atendimentoRepo,
		auditDispatcher,
	)

	gerenciarItensUC := ucAtendimento.NewGerenciarItens(
		atendimentoRepo,
		auditDispatcher,
	)

	listarAtendimentosUC := ucAtendimento.NewListarAtendimentos(atendimentoRepo)

	// ======================================================
	// 🧠 USE CASES — LEMBRETES
	// ======================================================
	processarLembretesUC := ucLembrete.NewProcessar(
		lembreteRepo,
		d.Enviador,
		d.Log,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config, auditDispatcher)
	meHandler := handlers.NewMeHandler(d.DB)

	clienteHandler := handlers.NewClienteHandler(d.DB, auditDispatcher)
	petHandler := handlers.NewPetHandler(d.DB, d.Fotos, auditDispatcher)
	funcionarioHandler := handlers.NewFuncionarioHandler(d.DB, auditDispatcher)
	servicoHandler := handlers.NewServicoHandler(d.DB, auditDispatcher)
	produtoHandler := handlers.NewProdutoHandler(d.DB, auditDispatcher)

	horarioHandler := handlers.NewHorarioHandler(
		d.DB,
		listarHorariosUC,
		d.Horarios,
		auditDispatcher,
	)

	agendamentoHandler := handlers.NewAgendamentoHandler(
		criarAgendamentoUC,
		atualizarAgendamentoUC,
		excluirAgendamentoUC,
		listarAgendamentosUC,
	)

	atendimentoHandler := handlers.NewAtendimentoHandler(
		criarAtendimentoUC,
		atualizarAtendimentoUC,
		excluirAtendimentoUC,
		gerenciarItensUC,
		listarAtendimentosUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(d.DB)
	lembreteHandler := handlers.NewLembreteHandler(d.DB, processarLembretesUC)
	pagamentoHandler := handlers.NewPagamentoHandler(d.MP, listarAtendimentosUC, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/setup", authHandler.Setup)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/dashboard", dashboardHandler.Resumo)

			// ------------------------------
			// CLIENTES E PETS
			// ------------------------------
			secured.GET("/clientes", clienteHandler.List)
			secured.GET("/clientes/:id", clienteHandler.Get)
			secured.POST("/clientes", clienteHandler.Create)
			secured.PATCH("/clientes/:id", clienteHandler.Update)
			secured.DELETE("/clientes/:id", clienteHandler.Delete)
			secured.GET("/clientes/:id/agendamentos", agendamentoHandler.ListByCliente)

			secured.GET("/pets", petHandler.List)
			secured.GET("/pets/:id", petHandler.Get)
			secured.POST("/pets", petHandler.Create)
			secured.PATCH("/pets/:id", petHandler.Update)
			secured.DELETE("/pets/:id", petHandler.Delete)
			secured.POST("/pets/:id/foto", petHandler.UploadFoto)

			// ------------------------------
			// CATÁLOGO
			// ------------------------------
			secured.GET("/servicos", servicoHandler.List)
			secured.GET("/servicos/:id", servicoHandler.Get)
			secured.GET("/produtos", produtoHandler.List)
			secured.GET("/produtos/:id", produtoHandler.Get)

			// Escritas de catálogo pedem gerente.
			catalogo := secured.Group("/")
			catalogo.Use(middleware.RequirePerfil(perfil.Gerente))
			{
				catalogo.POST("/servicos", servicoHandler.Create)
				catalogo.PATCH("/servicos/:id", servicoHandler.Update)
				catalogo.DELETE("/servicos/:id", servicoHandler.Delete)

				catalogo.POST("/produtos", produtoHandler.Create)
				catalogo.PATCH("/produtos/:id", produtoHandler.Update)
				catalogo.DELETE("/produtos/:id", produtoHandler.Delete)
			}

			// ------------------------------
			// AGENDA
			// ------------------------------
			secured.GET("/horarios", horarioHandler.List)

			secured.GET("/agendamentos", agendamentoHandler.List)
			secured.GET("/agendamentos/calendario", agendamentoHandler.Calendario)
			secured.GET("/agendamentos/:id", agendamentoHandler.Get)
			secured.POST("/agendamentos", agendamentoHandler.Create)
			secured.PATCH("/agendamentos/:id", agendamentoHandler.Update)
			secured.DELETE("/agendamentos/:id", agendamentoHandler.Delete)

			// ------------------------------
			// ATENDIMENTOS
			// ------------------------------
			secured.GET("/atendimentos", atendimentoHandler.List)
			secured.GET("/atendimentos/:id", atendimentoHandler.Get)
			secured.POST("/atendimentos", atendimentoHandler.Create)
			secured.PATCH("/atendimentos/:id", atendimentoHandler.Update)
			secured.DELETE("/atendimentos/:id", atendimentoHandler.Delete)

			secured.POST("/atendimentos/:id/itens", atendimentoHandler.AddItem)
			secured.DELETE("/atendimentos/:id/itens/:itemId", atendimentoHandler.RemoveItem)

			secured.POST("/atendimentos/:id/pagamento", pagamentoHandler.CriarCobranca)

			// ------------------------------
			// LEMBRETES
			// ------------------------------
			secured.GET("/lembretes", lembreteHandler.List)
			secured.POST("/lembretes/processar", lembreteHandler.Processar)

			// ------------------------------
			// ADMINISTRAÇÃO
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequirePerfil(perfil.Admin))
			{
				admin.GET("/funcionarios", funcionarioHandler.List)
				admin.GET("/funcionarios/:id", funcionarioHandler.Get)
				admin.POST("/funcionarios", funcionarioHandler.Create)
				admin.PATCH("/funcionarios/:id", funcionarioHandler.Update)
				admin.DELETE("/funcionarios/:id", funcionarioHandler.Delete)

				admin.POST("/horarios", horarioHandler.Create)
				admin.POST("/horarios/gerar", horarioHandler.Gerar)
				admin.DELETE("/horarios/:id", horarioHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}

	return processarLembretesUC
}
