// Package classify maps free-text job fields onto the closed category and
// experience-level sets via keyword heuristics. All matching is
// case-insensitive substring scanning over the lowered input.
package classify

import (
	"strings"

	"jobboard-engine/internal/domain"
)

// Category buckets tags and/or a title into the closed category set.
// Parts are joined with spaces before matching, so callers can pass a tag
// slice, a bare title, or both.
func Category(parts ...string) string {
	text := strings.ToLower(strings.Join(parts, " "))
	for _, g := range categoryGroups {
		for _, w := range g.any {
			if strings.Contains(text, w) {
				return g.label
			}
		}
	}
	return domain.CategoryDevelopment
}

// ExperienceLevel buckets a title into the closed level set. Senior wins
// over Lead when a title carries indicators for both.
func ExperienceLevel(title string) string {
	t := strings.ToLower(title)
	for _, w := range seniorWords {
		if strings.Contains(t, w) {
			return domain.LevelSenior
		}
	}
	for _, w := range leadWords {
		if strings.Contains(t, w) {
			return domain.LevelLead
		}
	}
	for _, w := range entryWords {
		if strings.Contains(t, w) {
			return domain.LevelEntry
		}
	}
	return domain.LevelMid
}

// Requirements extracts up to three requirement strings from a free-text
// description: sentences longer than 10 characters after trimming, in
// original order. An empty yield returns the generic three-entry fallback.
func Requirements(description string) []string {
	frags := strings.FieldsFunc(description, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var out []string
	for _, f := range frags {
		f = strings.TrimSpace(f)
		if len(f) > 10 {
			out = append(out, f)
		}
		if len(out) == 3 {
			break
		}
	}
	if len(out) == 0 {
		out = append(out, fallbackRequirements...)
	}
	return out
}
