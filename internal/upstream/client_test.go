package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	return New(Config{
		BaseURL:    url,
		ClientID:   "jobboard-engine/test",
		RatePerSec: 1000,
		Burst:      1000,
	}, zerolog.Nop())
}

func TestListings(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"legal": "API terms apply"},
			{"id": 123, "position": "Backend Engineer", "company": "Acme", "salary_min": 0},
			{"id": "abc-1", "position": "Designer", "company": "Beta"},
		})
	}))
	defer srv.Close()

	recs, err := testClient(srv.URL).Listings(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "jobboard-engine/test", gotUA)
	// numeric and string ids both decode
	assert.Equal(t, "123", recs[1].ID.String())
	assert.Equal(t, "abc-1", recs[2].ID.String())
	// metadata element has no id
	assert.Empty(t, recs[0].ID.String())
}

func TestListingsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Listings(context.Background())
	require.Error(t, err)

	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, http.StatusServiceUnavailable, ue.Status)
}

func TestListingsBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Listings(context.Background())
	require.Error(t, err)
	var ue *UpstreamError
	assert.False(t, errors.As(err, &ue), "decode failure is not an UpstreamError")
}
