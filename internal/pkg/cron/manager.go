package cron

import (
	log "log/slog"

	"github.com/robfig/cron/v3"

	"github.com/Ilia-Pringless/YaTube/internal/job"
)

type Manager struct {
	engine      *cron.Cron
	feedWarmJob *job.FeedWarmJob
}

func NewCronManager(feedWarmJob *job.FeedWarmJob) *Manager {
	return &Manager{
		engine:      cron.New(cron.WithSeconds()),
		feedWarmJob: feedWarmJob,
	}
}

// RegisterJobs registers the scheduled jobs.
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@every 15s", s.feedWarmJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
