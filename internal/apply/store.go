package apply

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"jobboard-engine/internal/domain"
)

// Store is the append-only in-memory application list. Records live for
// the process lifetime and are never deleted. The mutex matters: unlike
// the original single-threaded runtime, Go serves requests concurrently.
type Store struct {
	mu      sync.Mutex
	records []domain.ApplicationRecord
}

func NewStore() *Store {
	return &Store{}
}

// Append normalizes and stores an already-validated submission, assigning
// the record id and timestamp. No duplicate detection exists.
func (s *Store) Append(app domain.JobApplication) domain.ApplicationRecord {
	rec := domain.ApplicationRecord{
		JobApplication: normalize(app),
		ID:             newID(),
		SubmittedAt:    time.Now().UTC(),
	}

	s.mu.Lock()
	s.records = append(s.records, rec)
	s.mu.Unlock()
	return rec
}

// ByJob returns every record for one job id, oldest first.
func (s *Store) ByJob(jobID string) []domain.ApplicationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.ApplicationRecord
	for _, r := range s.records {
		if r.JobID == jobID {
			out = append(out, r)
		}
	}
	return out
}

// Recent returns the last n records, newest first.
func (s *Store) Recent(n int) []domain.ApplicationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n > len(s.records) {
		n = len(s.records)
	}
	out := make([]domain.ApplicationRecord, 0, n)
	for i := len(s.records) - 1; i >= len(s.records)-n; i-- {
		out = append(out, s.records[i])
	}
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func normalize(app domain.JobApplication) domain.JobApplication {
	app.JobID = strings.TrimSpace(app.JobID)
	app.ApplicantName = strings.TrimSpace(app.ApplicantName)
	app.Email = strings.ToLower(strings.TrimSpace(app.Email))
	app.Phone = strings.TrimSpace(app.Phone)
	app.CoverLetter = strings.TrimSpace(app.CoverLetter)
	app.LinkedIn = strings.TrimSpace(app.LinkedIn)
	app.Portfolio = strings.TrimSpace(app.Portfolio)
	return app
}

// newID yields "app-<millis>-<suffix>"; the suffix is random hex.
func newID() string {
	var b [4]byte
	_, _ = rand.Read(b[:])
	return fmt.Sprintf("app-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(b[:]))
}
