// Package scheduler agenda as execuções periódicas do pipeline com gocron e
// permite dispará-las manualmente pela API.
package scheduler

import (
	"context"
	"sync"
	"time"
)

// syncState controla a execução única de uma tarefa agendada e guarda o
// histórico exposto em GetStatus
type syncState struct {
	mu                  sync.Mutex
	running             bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           string
	ctx                 context.Context
}

// begin marca a tarefa como em execução. Retorna false se já houver uma rodando.
func (s *syncState) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return false
	}
	s.running = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *syncState) end(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.lastSyncCompletedAt = time.Now()
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

func (s *syncState) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *syncState) context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil {
		return context.Background()
	}
	return s.ctx
}

func (s *syncState) setContext(ctx context.Context) {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()
}

func (s *syncState) status(cron string, enabled bool) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"sync_running":           s.running,
		"sync_cron":              cron,
		"sync_enabled":           enabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_error":             s.lastError,
	}
}
