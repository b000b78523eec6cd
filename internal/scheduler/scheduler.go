// Package scheduler runs periodic background tasks.
package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type Task func(ctx context.Context) error

// Every runs task immediately and then on every tick until ctx is done.
// Task errors are logged, not fatal; the next tick retries.
func Every(ctx context.Context, interval time.Duration, name string, log zerolog.Logger, task Task) {
	t := time.NewTicker(interval)
	defer t.Stop()

	run := func() {
		if err := task(ctx); err != nil {
			log.Warn().Err(err).Str("task", name).Msg("scheduled task failed")
		}
	}

	run()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			run()
		}
	}
}
