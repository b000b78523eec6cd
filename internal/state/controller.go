// Package state holds the client-facing filter selection and the job list
// it resolves to. Filter edits are debounced: only the most recent settled
// filter state triggers a fetch.
package state

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/jobs"
)

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseErrored Phase = "errored"
)

// Fetcher resolves a settled filter state to a job list.
type Fetcher func(ctx context.Context, q jobs.ListQuery) ([]domain.Job, error)

// View is an atomic read of the controller's state.
type View struct {
	Phase   Phase              `json:"phase"`
	Filters domain.FilterState `json:"filters"`
	Jobs    []domain.Job       `json:"jobs"`
	Error   string             `json:"error,omitempty"`
}

type Controller struct {
	mu       sync.Mutex
	filters  domain.FilterState
	jobs     []domain.Job
	phase    Phase
	errMsg   string
	timer    *time.Timer
	debounce time.Duration
	fetch    Fetcher
	log      zerolog.Logger

	// fires after each completed fetch; tests hook it
	onSettle func()
}

func NewController(fetch Fetcher, debounce time.Duration, log zerolog.Logger) *Controller {
	return &Controller{
		filters:  domain.DefaultFilterState(),
		phase:    PhaseIdle,
		debounce: debounce,
		fetch:    fetch,
		log:      log,
	}
}

func (c *Controller) SetSearchQuery(q string) {
	c.update(func(f *domain.FilterState) { f.SearchQuery = q })
}

func (c *Controller) SetCategory(v string) {
	c.update(func(f *domain.FilterState) { f.Category = v })
}

func (c *Controller) SetLocation(v string) {
	c.update(func(f *domain.FilterState) { f.Location = v })
}

func (c *Controller) SetExperienceLevel(v string) {
	c.update(func(f *domain.FilterState) { f.ExperienceLevel = v })
}

func (c *Controller) SetJobType(v string) {
	c.update(func(f *domain.FilterState) { f.JobType = v })
}

func (c *Controller) SetRemoteOnly(v bool) {
	c.update(func(f *domain.FilterState) { f.RemoteOnly = v })
}

// Reset restores the default filter state and schedules a fetch like any
// other mutation.
func (c *Controller) Reset() {
	c.update(func(f *domain.FilterState) { *f = domain.DefaultFilterState() })
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View{Phase: c.phase, Filters: c.filters, Jobs: c.jobs, Error: c.errMsg}
}

// update mutates the filter state and re-arms the debounce timer. A newer
// mutation before the quiet window elapses cancels the pending fetch; an
// already-started fetch is not cancelled, so a late response can still
// overwrite state.
func (c *Controller) update(mutate func(*domain.FilterState)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mutate(&c.filters)
	c.phase = PhaseLoading
	c.errMsg = ""

	if c.timer != nil {
		c.timer.Stop()
	}
	settled := c.filters
	c.timer = time.AfterFunc(c.debounce, func() {
		c.runFetch(settled)
	})
}

func (c *Controller) runFetch(settled domain.FilterState) {
	list, err := c.fetch(context.Background(), jobs.QueryFromFilterState(settled))

	c.mu.Lock()
	if err != nil {
		c.phase = PhaseErrored
		c.jobs = []domain.Job{}
		c.errMsg = "Failed to load jobs. Please try again."
		c.log.Error().Err(err).Msg("filtered fetch failed")
	} else {
		c.phase = PhaseReady
		c.jobs = list
		c.errMsg = ""
	}
	hook := c.onSettle
	c.mu.Unlock()

	if hook != nil {
		hook()
	}
}
