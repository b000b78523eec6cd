package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/events"
)

// FetchStatus mirrors the latest refresh outcome for the status route.
type FetchStatus struct {
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	LastCount int    `json:"last_count"`
	Source    string `json:"source"`
	Running   bool   `json:"running"`
}

// Snapshot holds the most recent full job list. The background refresher
// is the degradation point: when the provider fails it silently swaps in
// the mock dataset, while the request path surfaces errors instead.
type Snapshot struct {
	mu     sync.RWMutex
	jobs   []domain.Job
	status FetchStatus

	svc *Service
	hub *events.Hub
	log zerolog.Logger
}

func NewSnapshot(svc *Service, hub *events.Hub, log zerolog.Logger) *Snapshot {
	return &Snapshot{svc: svc, hub: hub, log: log}
}

// Refresh pulls the full unfiltered list and replaces the snapshot.
func (s *Snapshot) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.status.Running = true
	s.status.LastRunAt = time.Now().UTC().Format(time.RFC3339)
	s.mu.Unlock()

	list, err := s.svc.List(ctx, ListQuery{})
	source := "upstream"
	if err != nil {
		s.log.Warn().Err(err).Msg("refresh failed, serving mock dataset")
		list = Mock()
		source = "mock"
	}

	s.mu.Lock()
	s.jobs = list
	s.status.Running = false
	s.status.LastCount = len(list)
	s.status.Source = source
	if err != nil {
		s.status.LastError = err.Error()
	} else {
		s.status.LastError = ""
		s.status.LastOkAt = time.Now().UTC().Format(time.RFC3339)
	}
	s.mu.Unlock()

	if s.hub != nil {
		s.hub.Publish(events.Make("", events.TypeJobsRefreshed, 1, map[string]any{
			"count":  len(list),
			"source": source,
		}))
	}
	return err
}

// Jobs returns the current snapshot, filtered.
func (s *Snapshot) Jobs(q ListQuery) []domain.Job {
	s.mu.RLock()
	jobs := s.jobs
	s.mu.RUnlock()
	return Filter(jobs, q)
}

func (s *Snapshot) Status() FetchStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}
