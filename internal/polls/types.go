package polls

import "time"

type User struct {
	ID        string    `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"date_joined"`
}

func (u User) FullName() string { return u.FirstName + " " + u.LastName }

type Option struct {
	ID        string    `json:"option_id"`
	PollID    string    `json:"-"`
	Text      string    `json:"option_text"`
	VoteCount int       `json:"vote_count"`
	CreatedAt time.Time `json:"created_at"`
}

type Poll struct {
	ID          string     `json:"poll_id"`
	Title       string     `json:"title"`
	Question    string     `json:"question"`
	Description string     `json:"description,omitempty"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Options     []Option   `json:"options"`
	TotalVotes  int        `json:"total_votes"`
	Active      bool       `json:"is_active"`
}

func (p Poll) active(now time.Time) bool {
	return p.ExpiresAt == nil || now.Before(*p.ExpiresAt)
}

type Vote struct {
	ID       string    `json:"vote_id"`
	PollID   string    `json:"poll_id"`
	OptionID string    `json:"option_id"`
	UserID   string    `json:"user_id"`
	CastAt   time.Time `json:"timestamp"`
}

type OptionResult struct {
	OptionID   string  `json:"option_id"`
	Text       string  `json:"option_text"`
	Votes      int     `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type Results struct {
	PollID     string         `json:"poll_id"`
	Title      string         `json:"title"`
	TotalVotes int            `json:"total_votes"`
	Options    []OptionResult `json:"options"`
}

// Request payloads, validated with struct tags at the HTTP edge.

type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=30"`
	LastName  string `json:"last_name" validate:"required,max=30"`
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,min=3,max=50"`
}

type CreatePollRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Question    string     `json:"question" validate:"required"`
	Description string     `json:"description"`
	CreatedBy   string     `json:"created_by" validate:"required,uuid4"`
	ExpiresAt   *time.Time `json:"expires_at"`
	Options     []string   `json:"options" validate:"required,min=2,dive,required,max=200"`
}

type AddOptionRequest struct {
	Text string `json:"option_text" validate:"required,max=200"`
}

type CastVoteRequest struct {
	OptionID string `json:"option_id" validate:"required,uuid4"`
	UserID   string `json:"user_id" validate:"required,uuid4"`
}
