package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-engine/internal/events"
	"jobboard-engine/internal/upstream"
)

type fakeFetcher struct {
	records []upstream.Record
	err     error
	calls   int
}

func (f *fakeFetcher) Listings(ctx context.Context) ([]upstream.Record, error) {
	f.calls++
	return f.records, f.err
}

func metadataAnd(recs ...upstream.Record) []upstream.Record {
	// the provider's first element is a legal/metadata blob with no id
	return append([]upstream.Record{{Position: "terms of service"}}, recs...)
}

func upstreamRec(id, position string) upstream.Record {
	return upstream.Record{
		ID:          upstream.FlexString(id),
		Position:    position,
		Company:     "Acme",
		Description: "Do the work. Ship the thing. Keep it running smoothly.",
	}
}

func TestListDropsMetadataElement(t *testing.T) {
	f := &fakeFetcher{records: metadataAnd(
		upstreamRec("1", "Backend Engineer"),
		upstreamRec("2", "Data Analyst"),
	)}
	svc := NewService(f, zerolog.Nop())

	got, err := svc.List(context.Background(), ListQuery{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, j := range got {
		assert.NotEqual(t, "terms of service", j.Title)
	}
}

func TestListDropsRecordsWithoutID(t *testing.T) {
	f := &fakeFetcher{records: metadataAnd(
		upstreamRec("1", "Backend Engineer"),
		upstreamRec("", "Ghost Listing"),
	)}
	svc := NewService(f, zerolog.Nop())

	got, err := svc.List(context.Background(), ListQuery{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Backend Engineer", got[0].Title)
}

func TestListEmptyUpstream(t *testing.T) {
	f := &fakeFetcher{records: nil}
	svc := NewService(f, zerolog.Nop())

	got, err := svc.List(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListPropagatesUpstreamError(t *testing.T) {
	wantErr := &upstream.UpstreamError{Status: 503, URL: "https://example.com/api"}
	f := &fakeFetcher{err: wantErr}
	svc := NewService(f, zerolog.Nop())

	_, err := svc.List(context.Background(), ListQuery{})
	require.Error(t, err)

	var ue *upstream.UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, 503, ue.Status)
}

func TestListAppliesFilters(t *testing.T) {
	f := &fakeFetcher{records: metadataAnd(
		upstreamRec("1", "Senior Backend Engineer"),
		upstreamRec("2", "Junior Designer"),
	)}
	svc := NewService(f, zerolog.Nop())

	got, err := svc.List(context.Background(), ListQuery{Query: "designer"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Junior Designer", got[0].Title)
}

func TestSnapshotRefreshSuccess(t *testing.T) {
	f := &fakeFetcher{records: metadataAnd(upstreamRec("1", "Backend Engineer"))}
	svc := NewService(f, zerolog.Nop())
	hub := events.NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	snap := NewSnapshot(svc, hub, zerolog.Nop())
	require.NoError(t, snap.Refresh(context.Background()))

	assert.Len(t, snap.Jobs(ListQuery{}), 1)
	st := snap.Status()
	assert.Equal(t, "upstream", st.Source)
	assert.Empty(t, st.LastError)
	assert.NotEmpty(t, st.LastOkAt)
	assert.False(t, st.Running)

	select {
	case evt := <-sub:
		assert.Contains(t, evt, events.TypeJobsRefreshed)
	default:
		t.Fatal("expected a jobs_refreshed event")
	}
}

func TestSnapshotFallsBackToMock(t *testing.T) {
	f := &fakeFetcher{err: &upstream.UpstreamError{Status: 500}}
	svc := NewService(f, zerolog.Nop())
	snap := NewSnapshot(svc, nil, zerolog.Nop())

	err := snap.Refresh(context.Background())
	require.Error(t, err, "refresh reports the failure")

	got := snap.Jobs(ListQuery{})
	assert.NotEmpty(t, got, "mock dataset substitutes silently")
	assert.Equal(t, Mock()[0].ID, got[0].ID)

	st := snap.Status()
	assert.Equal(t, "mock", st.Source)
	assert.NotEmpty(t, st.LastError)
}

func TestMockDatasetShape(t *testing.T) {
	for _, j := range Mock() {
		assert.NotEmpty(t, j.ID)
		assert.NotEmpty(t, j.Requirements)
		assert.True(t, j.Remote)
	}
	// at least one mock job has no salary, matching upstream reality
	withNil := false
	for _, j := range Mock() {
		if j.Salary == nil {
			withNil = true
		}
	}
	assert.True(t, withNil)
}
