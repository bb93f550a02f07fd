package catalog

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Refresher reloads the catalog on a cron schedule.
type Refresher struct {
	cron     *cron.Cron
	store    *Store
	logger   *zap.Logger
	schedule string
}

// NewRefresher accepts standard five-field specs and descriptors such as "@every 30m".
func NewRefresher(schedule string, store *Store, logger *zap.Logger) *Refresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Refresher{
		cron:     cron.New(),
		store:    store,
		logger:   logger,
		schedule: schedule,
	}
}

// Start registers the reload job and starts the scheduler.
func (r *Refresher) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc(r.schedule, func() {
		if ctx.Err() != nil {
			return
		}
		r.logger.Debug("scheduled catalog refresh")
		r.store.Reload(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule catalog refresh %q: %w", r.schedule, err)
	}
	r.cron.Start()
	r.logger.Info("catalog refresh scheduled", zap.String("schedule", r.schedule))
	return nil
}

// Stop halts the scheduler and waits for a running reload to finish.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
}
