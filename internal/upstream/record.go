package upstream

import (
	"bytes"
	"encoding/json"
)

// FlexString tolerates upstream fields that arrive as either a JSON string
// or a JSON number. The provider is not consistent about id types.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// Record is one element of the provider's listings array. The first element
// of every response is a metadata/legal notice, not a job; callers drop it.
type Record struct {
	ID          FlexString `json:"id"`
	Slug        string     `json:"slug"`
	Position    string     `json:"position"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Tags        []string   `json:"tags"`
	Description string     `json:"description"`
	SalaryMin   int        `json:"salary_min"`
	SalaryMax   int        `json:"salary_max"`
	Epoch       int64      `json:"epoch"`
}
