package jobs

import (
	"context"

	"gesbanque-backend/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the maintenance sweeps on their cron schedules. It expects a
// single active instance; concurrent schedulers are a deployment concern.
type Scheduler struct {
	cron *cron.Cron
	jobs *Jobs
}

func NewScheduler(jobs *Jobs) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		jobs: jobs,
	}
}

// Start registers both sweeps and starts the cron loop in the background.
func (s *Scheduler) Start(cfg *config.Config) error {
	if _, err := s.cron.AddFunc(cfg.ArchiveJobSchedule, s.jobs.ArchiveExpiredBlockedAccounts); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(cfg.UnblockJobSchedule, s.jobs.UnblockExpiredAccounts); err != nil {
		return err
	}

	s.cron.Start()
	zap.L().Info("maintenance scheduler started",
		zap.String("archive_schedule", cfg.ArchiveJobSchedule),
		zap.String("unblock_schedule", cfg.UnblockJobSchedule))
	return nil
}

// Stop stops the scheduler and returns a context that is done once running
// jobs have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
