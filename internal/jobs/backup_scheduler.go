package jobs

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/opsdeck/ams-backend/internal/pkg/logger"
	"github.com/opsdeck/ams-backend/internal/services"
)

// BackupScheduler drives the periodic database dump. It shares nothing
// with request handlers beyond the backup service itself; overlapping
// manual and scheduled runs are not mutually excluded.
type BackupScheduler struct {
	log    *logger.Logger
	cron   *cron.Cron
	backup services.BackupService
	spec   string
}

func NewBackupScheduler(baseLog *logger.Logger, backup services.BackupService, spec string) *BackupScheduler {
	schedulerLog := baseLog.With("job", "BackupScheduler")
	return &BackupScheduler{
		log:    schedulerLog,
		cron:   cron.New(),
		backup: backup,
		spec:   spec,
	}
}

func (s *BackupScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.run); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("Backup scheduler started", "spec", s.spec)
	return nil
}

func (s *BackupScheduler) Stop() {
	s.cron.Stop()
	s.log.Info("Backup scheduler stopped")
}

// run is fire-and-forget: a failed dump is logged and never retried.
func (s *BackupScheduler) run() {
	path, err := s.backup.Dump(context.Background())
	if err != nil {
		s.log.Error("Scheduled backup failed", "error", err)
		return
	}
	s.log.Info("Scheduled backup completed", "path", path)
}
