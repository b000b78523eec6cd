// Package jobs transforms raw provider records into the internal Job shape
// and filters them in-process.
package jobs

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/upstream"
)

// ListingsFetcher is the outbound edge the service depends on.
type ListingsFetcher interface {
	Listings(ctx context.Context) ([]upstream.Record, error)
}

type Service struct {
	fetcher ListingsFetcher
	group   singleflight.Group
	log     zerolog.Logger
}

func NewService(fetcher ListingsFetcher, log zerolog.Logger) *Service {
	return &Service{fetcher: fetcher, log: log}
}

// List fetches, transforms and filters. Errors are returned to the caller
// rather than swallowed; the snapshot refresher is the one place that
// substitutes the mock dataset.
func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Job, error) {
	v, err, shared := s.group.Do("listings", func() (any, error) {
		return s.fetcher.Listings(ctx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.log.Debug().Msg("listings fetch collapsed into in-flight call")
	}
	records := v.([]upstream.Record)

	// The first array element is metadata, never a job, whatever its shape.
	if len(records) > 0 {
		records = records[1:]
	}

	jobs := make([]domain.Job, 0, len(records))
	for _, rec := range records {
		if rec.ID.String() == "" {
			continue
		}
		jobs = append(jobs, FromUpstream(rec))
	}

	filtered := Filter(jobs, q)
	s.log.Debug().
		Int("fetched", len(jobs)).
		Int("returned", len(filtered)).
		Str("query", q.Query).
		Msg("listings served")
	return filtered, nil
}
