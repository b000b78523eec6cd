package apply

import (
	"bytes"
	"encoding/json"
	"io"

	"jobboard-engine/internal/domain"
)

// submission defers yearsOfExperience to validation: the raw value
// shadows the embedded field so a non-numeric entry fails a rule, not
// the decode.
type submission struct {
	domain.JobApplication
	YearsOfExperience json.RawMessage `json:"yearsOfExperience"`
}

// ParseAndValidate decodes one application body and runs every rule.
// Unknown fields are ignored; only a body that is not valid JSON at all
// is a decode error.
func ParseAndValidate(body io.Reader) (domain.JobApplication, Validation, error) {
	var sub submission
	if err := json.NewDecoder(body).Decode(&sub); err != nil {
		return domain.JobApplication{}, Validation{}, err
	}

	app := sub.JobApplication
	yearsInvalid := false
	if raw := bytes.TrimSpace(sub.YearsOfExperience); len(raw) > 0 && string(raw) != "null" {
		var yrs float64
		if err := json.Unmarshal(raw, &yrs); err != nil {
			yearsInvalid = true
		} else {
			app.YearsOfExperience = &yrs
		}
	}

	v := Validate(app)
	if yearsInvalid {
		v.Valid = false
		v.Errors = append(v.Errors, "yearsOfExperience must be a non-negative number")
	}
	return app, v, nil
}
