package sweeper

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// Expirer é o job de limpeza que o sweeper dispara em intervalo fixo.
type Expirer interface {
	Execute(ctx context.Context) (int, error)
}

const DefaultInterval = time.Minute

// Sweeper agenda a expiração de reservas vencidas. A leitura já filtra
// holds por idade, então o sweep atrasado não muda o que o cliente vê —
// aqui só materializamos o status terminal no banco.
type Sweeper struct {
	scheduler gocron.Scheduler
	expirer   Expirer
	interval  time.Duration
}

func New(expirer Expirer, interval time.Duration) (*Sweeper, error) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Sweeper{
		scheduler: scheduler,
		expirer:   expirer,
		interval:  interval,
	}, nil
}

// Start registra o job e põe o scheduler para rodar. O primeiro sweep
// acontece imediatamente, não só após o primeiro intervalo.
func (s *Sweeper) Start(ctx context.Context) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			s.sweep(ctx)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()
	log.Info().Dur("interval", s.interval).Msg("reservation sweeper started")
	return nil
}

func (s *Sweeper) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Sweeper) sweep(ctx context.Context) {
	expired, err := s.expirer.Execute(ctx)
	if err != nil {
		// erro de um sweep não derruba o agendador
		log.Error().Err(err).Msg("reservation sweep failed")
		return
	}
	if expired > 0 {
		log.Info().Int("expired", expired).Msg("stale reservations expired")
	}
}
