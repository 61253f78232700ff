package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/PetCareServices/petcare-api/internal/timezone"
	uclembrete "github.com/PetCareServices/petcare-api/internal/usecase/lembrete"
)

// Scheduler roda a passada diária de lembretes. O horário vem da
// expressão cron configurada (LEMBRETE_CRON), avaliada no fuso do
// estabelecimento.
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

func New(spec string, processar *uclembrete.Processar, log zerolog.Logger) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(timezone.Location()))

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		enviados, err := processar.Execute(ctx, timezone.Now())
		if err != nil {
			log.Error().Err(err).Msg("passada de lembretes falhou")
			return
		}
		log.Info().Int("enviados", enviados).Msg("passada de lembretes concluída")
	})
	if err != nil {
		return nil, err
	}

	return &Scheduler{cron: c, log: log}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("agendador de lembretes iniciado")
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
