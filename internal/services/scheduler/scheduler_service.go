package scheduler

import (
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gymscout/internal/common"
)

// Service runs the periodic gym rediscovery on a cron schedule.
type Service struct {
	cron   *cron.Cron
	logger arbor.ILogger

	mu      sync.Mutex
	running bool
}

// NewService creates a scheduler service.
func NewService(logger arbor.ILogger) *Service {
	return &Service{
		cron:   cron.New(),
		logger: logger,
	}
}

// Start registers the refresh task on the given cron expression and starts
// the scheduler. The task runs with panic recovery so a single bad refresh
// cannot take the scheduler down.
func (s *Service) Start(cronExpr string, task func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}
	if cronExpr == "" {
		cronExpr = "*/15 * * * *"
	}

	_, err := s.cron.AddFunc(cronExpr, func() {
		common.SafeGo(s.logger, "scheduled-refresh", task)
	})
	if err != nil {
		return fmt.Errorf("failed to add refresh schedule: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info().Str("cron_expr", cronExpr).Msg("Refresh scheduler started")
	return nil
}

// Stop halts the scheduler. Pending task runs finish; no new runs start.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false

	s.logger.Info().Msg("Refresh scheduler stopped")
}
