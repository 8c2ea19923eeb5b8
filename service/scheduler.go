package service

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/arrebolmedia/video-editor/pkg/logger"
)

// Scheduler runs the CRM sync on a cron expression when one is configured.
type Scheduler struct {
	cron   *cron.Cron
	syncer *Syncer
}

func NewScheduler(syncer *Syncer) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		syncer: syncer,
	}
}

// Start registers the sync job and starts the cron loop. An empty expression
// disables scheduling entirely.
func (s *Scheduler) Start(expr string) error {
	if expr == "" {
		return nil
	}
	_, err := s.cron.AddFunc(expr, func() {
		ctx := context.Background()
		res, err := s.syncer.SyncUpcoming(ctx)
		if err != nil {
			logger.Error(ctx, "scheduled sync failed", "error", err)
			return
		}
		logger.Info(ctx, "scheduled sync finished",
			"synced", res.Synced, "skipped", res.Skipped, "total", res.Total)
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	logger.Info(context.Background(), "sync scheduler started", "cron", expr)
	return nil
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
