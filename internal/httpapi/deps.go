// Package httpapi is the HTTP surface of the engine: job listings,
// application intake, polls, config, status, and the SSE event stream.
package httpapi

import (
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"jobboard-engine/internal/apply"
	"jobboard-engine/internal/config"
	"jobboard-engine/internal/events"
	"jobboard-engine/internal/jobs"
	"jobboard-engine/internal/polls"
)

type Deps struct {
	Jobs     *jobs.Service
	Snapshot *jobs.Snapshot
	Apps     *apply.Store
	Polls    *polls.Store // nil when the subsystem is disabled
	Hub      *events.Hub

	// CfgVal stores config.Config; handlers read the live value.
	CfgVal      *atomic.Value
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	Validate *validator.Validate
	Log      zerolog.Logger
}

func (d Deps) cfg() config.Config {
	return d.CfgVal.Load().(config.Config)
}
