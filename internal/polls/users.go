package polls

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

func (s *Store) CreateUser(ctx context.Context, req CreateUserRequest) (User, error) {
	u := User{
		ID:        uuid.NewString(),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Username:  strings.TrimSpace(req.Username),
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO users(user_id, first_name, last_name, email, username, created_at)
VALUES(?,?,?,?,?,?);`,
		u.ID, u.FirstName, u.LastName, u.Email, u.Username, fmtTime(u.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrUserExists
		}
		return User{}, err
	}
	return u, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (User, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT user_id, first_name, last_name, email, username, created_at
FROM users WHERE user_id = ?;`, id)
	return scanUser(row)
}

func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT user_id, first_name, last_name, email, username, created_at
FROM users ORDER BY created_at DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (User, error) {
	var u User
	var created string
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Username, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	u.CreatedAt = parseTime(created)
	return u, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}
