package playground

import (
	"context"
	"errors"
	"sync"
)

// ErrBusy is returned when a session already has a run in flight.
var ErrBusy = errors.New("a run is already in progress")

// State tracks a session's run lifecycle.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Session serializes runs for one editor connection. Overlapping
// Run calls are rejected with ErrBusy; any terminal state acts as
// idle for the next invocation.
type Session struct {
	svc   *Service
	state State
	mu    sync.Mutex
}

// Run executes one request if the session is not already running.
func (s *Session) Run(ctx context.Context, req RunRequest) (*RunRecord, error) {
	s.mu.Lock()
	if s.state == StateRunning {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.state = StateRunning
	s.mu.Unlock()

	record, err := s.svc.Run(ctx, req)

	s.mu.Lock()
	switch {
	case err != nil, record == nil, !record.Result.Success:
		s.state = StateFailed
	default:
		s.state = StateSucceeded
	}
	s.mu.Unlock()

	return record, err
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
