// Package events carries server-sent events to connected UI clients.
package events

import (
	"encoding/json"
	"time"
)

const (
	TypeJobsRefreshed       = "jobs_refreshed"
	TypeApplicationReceived = "application_received"
	TypePollCreated         = "poll_created"
	TypeVoteCast            = "vote_cast"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func Make(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
