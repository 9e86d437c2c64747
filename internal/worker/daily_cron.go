package worker

// daily_cron.go
// Background job that pre-materializes every sector's checklist shortly
// after local midnight, so the first operator of the day opens a ready list.
// Materialization is idempotent (a day already generated is frozen), so a
// restart re-running the job is harmless.

import (
	"context"

	"cantina/internal/repository"
	"cantina/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// DailyMaterializer owns the cron schedule and the dependencies it needs.
type DailyMaterializer struct {
	Sectors    repository.SectorRepository
	Checklists service.ChecklistService
	Spec       string // cron spec, e.g. "5 0 * * *"

	c *cron.Cron
}

// Start registers the schedule and launches the cron runner. It returns an
// error only for an invalid spec; job failures are logged per sector and do
// not stop the schedule.
func (m *DailyMaterializer) Start(ctx context.Context) error {
	m.c = cron.New()
	if _, err := m.c.AddFunc(m.Spec, func() { m.run(ctx) }); err != nil {
		return err
	}
	m.c.Start()
	log.Info().Str("spec", m.Spec).Msg("daily_cron: started")

	go func() {
		<-ctx.Done()
		m.c.Stop()
		log.Info().Msg("daily_cron: shutting down")
	}()
	return nil
}

func (m *DailyMaterializer) run(ctx context.Context) {
	sectors, err := m.Sectors.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("daily_cron: list sectors")
		return
	}
	for _, sec := range sectors {
		items, err := m.Checklists.GenerateDaily(ctx, sec.ID)
		if err != nil {
			log.Error().Err(err).Str("sector_id", sec.ID).Msg("daily_cron: materialize")
			continue
		}
		log.Debug().Str("sector_id", sec.ID).Int("items", len(items)).Msg("daily_cron: sector ready")
	}
}
