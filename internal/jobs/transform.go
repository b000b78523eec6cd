package jobs

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobboard-engine/internal/classify"
	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/upstream"
)

const defaultDescription = "No description provided. Visit the listing for details."

// FromUpstream maps one provider record onto the internal Job shape.
// The provider is remote-only and carries no employment-type field, so
// Remote is always true and Type is always full-time.
func FromUpstream(rec upstream.Record) domain.Job {
	id := strings.TrimSpace(rec.ID.String())
	if id == "" {
		id = strings.TrimSpace(rec.Slug)
	}
	if id == "" {
		id = fmt.Sprintf("job-%d", time.Now().UnixNano())
	}

	location := strings.TrimSpace(rec.Location)
	if location == "" {
		location = "Remote"
	}

	title := strings.TrimSpace(rec.Position)

	// Requirements come from the real description; a placeholder must not
	// masquerade as extractable sentences.
	desc := cleanText(stripHTML(rec.Description))
	requirements := classify.Requirements(desc)
	if desc == "" {
		desc = defaultDescription
	}

	var salary *domain.Salary
	if rec.SalaryMin > 0 && rec.SalaryMax > 0 {
		salary = &domain.Salary{Min: rec.SalaryMin, Max: rec.SalaryMax, Currency: "USD"}
	}

	posted := time.Now().UTC()
	if rec.Epoch > 0 {
		posted = time.Unix(rec.Epoch, 0).UTC()
	}

	category := classify.Category(append(append([]string{}, rec.Tags...), title)...)

	return domain.Job{
		ID:               id,
		Title:            title,
		Company:          strings.TrimSpace(rec.Company),
		Location:         location,
		Category:         category,
		ExperienceLevel:  classify.ExperienceLevel(title),
		Type:             domain.TypeFullTime,
		Salary:           salary,
		Description:      desc,
		Requirements:     requirements,
		Responsibilities: []string{},
		PostedDate:       posted,
		Remote:           true,
	}
}

// stripHTML flattens provider descriptions, which arrive as HTML fragments.
func stripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return doc.Text()
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}
