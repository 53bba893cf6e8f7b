// Package playground orchestrates sandboxed runs for the code editor:
// one run at a time per session, with an in-memory history of recent
// results kept purely for display.
package playground

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jsrefhub/backend/internal/logging"
	"github.com/jsrefhub/backend/internal/monitoring"
	"github.com/jsrefhub/backend/internal/sandbox"
)

// RunRequest carries one "Run" interaction from the editor.
type RunRequest struct {
	PageID    string `json:"page_id,omitempty"`
	Code      string `json:"code"`
	TimeoutMs int    `json:"timeout_ms,omitempty"`
}

// RunRecord is the displayable outcome of one run.
type RunRecord struct {
	ID        string          `json:"id"`
	PageID    string          `json:"page_id,omitempty"`
	Result    *sandbox.Result `json:"result"`
	StartedAt time.Time       `json:"started_at"`
}

// Service executes run requests against the sandbox pool.
type Service struct {
	pool    *sandbox.Pool
	history *History
	metrics *monitoring.Metrics
	log     *logging.Logger
}

// NewService creates a playground service.
func NewService(pool *sandbox.Pool, historySize int, metrics *monitoring.Metrics, log *logging.Logger) *Service {
	return &Service{
		pool:    pool,
		history: NewHistory(historySize),
		metrics: metrics,
		log:     log,
	}
}

// Run executes one request. The returned error covers host-side
// problems only; snippet outcomes live in the record's Result.
func (s *Service) Run(ctx context.Context, req RunRequest) (*RunRecord, error) {
	record := &RunRecord{
		ID:        uuid.NewString(),
		PageID:    req.PageID,
		StartedAt: time.Now(),
	}

	result, err := s.pool.Execute(ctx, sandbox.Request{
		Code:    req.Code,
		Timeout: time.Duration(req.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		s.log.Warn("run rejected", zap.String("run_id", record.ID), zap.Error(err))
		return nil, err
	}

	record.Result = result
	s.history.Add(record)

	outcome := "success"
	if !result.Success {
		outcome = string(result.Kind)
	}
	if s.metrics != nil {
		s.metrics.RecordExecution(outcome, result.Duration)
	}
	s.log.Info("run finished",
		zap.String("run_id", record.ID),
		zap.String("page_id", req.PageID),
		zap.String("outcome", outcome),
		zap.Duration("duration", result.Duration))

	return record, nil
}

// Recent returns the most recent runs, newest first.
func (s *Service) Recent() []*RunRecord {
	return s.history.Recent()
}

// NewSession creates an independent session over this service.
func (s *Service) NewSession() *Session {
	return &Session{svc: s, state: StateIdle}
}
