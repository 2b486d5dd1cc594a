package suggest

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNoRole is returned when a suggestion is requested for an experience
// record without a role to match against.
var ErrNoRole = errors.New("suggest: role is required")

// Manager runs suggestion requests in the background. Each experience record
// has at most one live request; a newer request supersedes any older one for
// the same record, and superseded results are discarded instead of applied.
type Manager struct {
	service *Service
	latency time.Duration

	mu     sync.Mutex
	latest map[string]string

	wg sync.WaitGroup
}

// NewManager returns a Manager that delays each request by latency before
// producing suggestions.
func NewManager(service *Service, latency time.Duration) *Manager {
	return &Manager{
		service: service,
		latency: latency,
		latest:  make(map[string]string),
	}
}

// Request schedules suggestion generation for the record and returns the
// request id immediately. When the request is still the latest for its record
// after the latency elapses, apply is called with the suggestions; otherwise
// the result is dropped. Cancelling ctx drops the result too.
func (m *Manager) Request(ctx context.Context, recordID, role string, apply func(suggestions []string)) (string, error) {
	if role == "" {
		return "", ErrNoRole
	}

	requestID := uuid.NewString()
	m.mu.Lock()
	m.latest[recordID] = requestID
	m.mu.Unlock()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		timer := time.NewTimer(m.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		suggestions := m.service.Suggest(role)

		m.mu.Lock()
		current := m.latest[recordID]
		if current == requestID {
			delete(m.latest, recordID)
		}
		m.mu.Unlock()
		if current != requestID {
			return
		}

		apply(suggestions)
	}()

	return requestID, nil
}

// Wait blocks until all in-flight requests have finished or been discarded.
func (m *Manager) Wait() {
	m.wg.Wait()
}
