package polls

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

func (s *Store) CreatePoll(ctx context.Context, req CreatePollRequest) (Poll, error) {
	if _, err := s.GetUser(ctx, req.CreatedBy); err != nil {
		return Poll{}, err
	}

	now := time.Now().UTC()
	p := Poll{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Question:    strings.TrimSpace(req.Question),
		Description: strings.TrimSpace(req.Description),
		CreatedBy:   req.CreatedBy,
		CreatedAt:   now,
		ExpiresAt:   req.ExpiresAt,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Poll{}, err
	}
	defer tx.Rollback()

	var expires any
	if p.ExpiresAt != nil {
		expires = fmtTime(*p.ExpiresAt)
	}
	_, err = tx.ExecContext(ctx, `
INSERT INTO polls(poll_id, title, question, description, created_by, created_at, expires_at)
VALUES(?,?,?,?,?,?,?);`,
		p.ID, p.Title, p.Question, p.Description, p.CreatedBy, fmtTime(p.CreatedAt), expires)
	if err != nil {
		return Poll{}, err
	}

	for _, text := range req.Options {
		opt := Option{
			ID:        uuid.NewString(),
			PollID:    p.ID,
			Text:      strings.TrimSpace(text),
			CreatedAt: now,
		}
		_, err = tx.ExecContext(ctx, `
INSERT INTO options(option_id, poll_id, option_text, created_at)
VALUES(?,?,?,?);`, opt.ID, opt.PollID, opt.Text, fmtTime(opt.CreatedAt))
		if err != nil {
			if isUniqueViolation(err) {
				return Poll{}, ErrDuplicateOption
			}
			return Poll{}, err
		}
		p.Options = append(p.Options, opt)
	}

	if err := tx.Commit(); err != nil {
		return Poll{}, err
	}
	p.Active = p.active(now)
	return p, nil
}

func (s *Store) GetPoll(ctx context.Context, id string) (Poll, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT poll_id, title, question, description, created_by, created_at, expires_at
FROM polls WHERE poll_id = ?;`, id)

	p, err := scanPoll(row)
	if err != nil {
		return Poll{}, err
	}
	if err := s.attachOptions(ctx, &p); err != nil {
		return Poll{}, err
	}
	return p, nil
}

// ListPolls returns every poll newest-first, options and counts attached.
func (s *Store) ListPolls(ctx context.Context) ([]Poll, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT poll_id, title, question, description, created_by, created_at, expires_at
FROM polls ORDER BY created_at DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Poll
	for rows.Next() {
		p, err := scanPoll(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if err := s.attachOptions(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// DeletePoll removes a poll and, via cascade, its options and votes. Only
// the creator may delete.
func (s *Store) DeletePoll(ctx context.Context, pollID, requesterID string) error {
	p, err := s.GetPoll(ctx, pollID)
	if err != nil {
		return err
	}
	if p.CreatedBy != requesterID {
		return ErrNotOwner
	}
	_, err = s.db.ExecContext(ctx, `DELETE FROM polls WHERE poll_id = ?;`, pollID)
	return err
}

func (s *Store) AddOption(ctx context.Context, pollID string, req AddOptionRequest) (Option, error) {
	if _, err := s.GetPoll(ctx, pollID); err != nil {
		return Option{}, err
	}

	opt := Option{
		ID:        uuid.NewString(),
		PollID:    pollID,
		Text:      strings.TrimSpace(req.Text),
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO options(option_id, poll_id, option_text, created_at)
VALUES(?,?,?,?);`, opt.ID, opt.PollID, opt.Text, fmtTime(opt.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return Option{}, ErrDuplicateOption
		}
		return Option{}, err
	}
	return opt, nil
}

// Results tallies a poll's votes with percentages over the total.
func (s *Store) Results(ctx context.Context, pollID string) (Results, error) {
	p, err := s.GetPoll(ctx, pollID)
	if err != nil {
		return Results{}, err
	}

	res := Results{PollID: p.ID, Title: p.Title, TotalVotes: p.TotalVotes}
	for _, opt := range p.Options {
		or := OptionResult{OptionID: opt.ID, Text: opt.Text, Votes: opt.VoteCount}
		if p.TotalVotes > 0 {
			or.Percentage = float64(opt.VoteCount) * 100 / float64(p.TotalVotes)
		}
		res.Options = append(res.Options, or)
	}
	return res, nil
}

func scanPoll(row rowScanner) (Poll, error) {
	var p Poll
	var created string
	var expires sql.NullString
	err := row.Scan(&p.ID, &p.Title, &p.Question, &p.Description, &p.CreatedBy, &created, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return Poll{}, ErrNotFound
	}
	if err != nil {
		return Poll{}, err
	}
	p.CreatedAt = parseTime(created)
	if expires.Valid {
		t := parseTime(expires.String)
		p.ExpiresAt = &t
	}
	p.Active = p.active(time.Now().UTC())
	return p, nil
}

func (s *Store) attachOptions(ctx context.Context, p *Poll) error {
	rows, err := s.db.QueryContext(ctx, `
SELECT o.option_id, o.option_text, o.created_at, COUNT(v.vote_id)
FROM options o
LEFT JOIN votes v ON v.option_id = o.option_id
WHERE o.poll_id = ?
GROUP BY o.option_id
ORDER BY o.created_at, o.option_id;`, p.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	p.Options = nil
	p.TotalVotes = 0
	for rows.Next() {
		var opt Option
		var created string
		if err := rows.Scan(&opt.ID, &opt.Text, &created, &opt.VoteCount); err != nil {
			return err
		}
		opt.PollID = p.ID
		opt.CreatedAt = parseTime(created)
		p.Options = append(p.Options, opt)
		p.TotalVotes += opt.VoteCount
	}
	return rows.Err()
}
