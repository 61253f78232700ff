package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/PetCareServices/petcare-api/internal/cache"
	"github.com/PetCareServices/petcare-api/internal/config"
	dbpkg "github.com/PetCareServices/petcare-api/internal/db"
	"github.com/PetCareServices/petcare-api/internal/domain/agenda"
	infraRepo "github.com/PetCareServices/petcare-api/internal/infra/repository"
	"github.com/PetCareServices/petcare-api/internal/mailer"
	"github.com/PetCareServices/petcare-api/internal/pagamento"
	"github.com/PetCareServices/petcare-api/internal/routes"
	"github.com/PetCareServices/petcare-api/internal/scheduler"
	"github.com/PetCareServices/petcare-api/internal/storage"
	ucAgendamento "github.com/PetCareServices/petcare-api/internal/usecase/agendamento"
)

func main() {

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// ------------------------------
	// Infra opcional
	// ------------------------------
	horarios := cache.NewHorariosCache(cfg.RedisURL, log)

	fotos := storage.NewFotoStorage(storage.FotoConfig{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		BaseURL:   cfg.S3BaseURL,
	})

	mp, err := pagamento.New(cfg.MercadoPagoToken)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao configurar mercado pago")
	}

	var enviador mailer.Enviador = mailer.NewLogEnviador(log)
	if cfg.TwilioAccountSID != "" {
		enviador = mailer.MultiEnviador{
			enviador,
			mailer.NewTwilioEnviador(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom),
		}
	}

	// ------------------------------
	// Índice por dia
	// ------------------------------
	indice := agenda.NewIndicePorDia()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	repo := infraRepo.NewAgendamentoGormRepository(db)
	if err := ucAgendamento.ReconstruirIndice(ctx, repo, indice); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("falha ao reconstruir o índice de agendamentos")
	}
	cancel()

	// ------------------------------
	// HTTP
	// ------------------------------
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	processar := routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Config: cfg,
		Log:    log,

		Indice:   indice,
		Horarios: horarios,
		Fotos:    fotos,
		MP:       mp,
		Enviador: enviador,
	})

	// ------------------------------
	// Lembretes diários
	// ------------------------------
	sched, err := scheduler.New(cfg.LembreteCron, processar, log)
	if err != nil {
		log.Fatal().Err(err).Msg("expressão cron inválida")
	}
	sched.Start()
	defer sched.Stop()

	log.Info().Str("addr", cfg.Addr()).Msg("servidor no ar")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("falha ao subir o servidor")
	}
}
