package polls

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CastVote records one vote. The poll must be active, the option must
// belong to the poll, and a user votes at most once per poll.
func (s *Store) CastVote(ctx context.Context, pollID string, req CastVoteRequest) (Vote, error) {
	p, err := s.GetPoll(ctx, pollID)
	if err != nil {
		return Vote{}, err
	}
	if !p.active(time.Now().UTC()) {
		return Vote{}, ErrPollClosed
	}

	belongs := false
	for _, opt := range p.Options {
		if opt.ID == req.OptionID {
			belongs = true
			break
		}
	}
	if !belongs {
		return Vote{}, ErrOptionMismatch
	}

	if _, err := s.GetUser(ctx, req.UserID); err != nil {
		return Vote{}, err
	}

	v := Vote{
		ID:       uuid.NewString(),
		PollID:   pollID,
		OptionID: req.OptionID,
		UserID:   req.UserID,
		CastAt:   time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO votes(vote_id, poll_id, option_id, user_id, cast_at)
VALUES(?,?,?,?,?);`, v.ID, v.PollID, v.OptionID, v.UserID, fmtTime(v.CastAt))
	if err != nil {
		if isUniqueViolation(err) {
			return Vote{}, ErrDuplicateVote
		}
		return Vote{}, err
	}
	return v, nil
}

// VotesByUser lists a user's votes, newest first.
func (s *Store) VotesByUser(ctx context.Context, userID string) ([]Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT vote_id, poll_id, option_id, user_id, cast_at
FROM votes WHERE user_id = ? ORDER BY cast_at DESC;`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Vote
	for rows.Next() {
		var v Vote
		var cast string
		if err := rows.Scan(&v.ID, &v.PollID, &v.OptionID, &v.UserID, &cast); err != nil {
			return nil, err
		}
		v.CastAt = parseTime(cast)
		out = append(out, v)
	}
	return out, rows.Err()
}
