package jobs

import (
	"time"

	"jobboard-engine/internal/domain"
)

// Mock returns the static fallback dataset served when the provider is
// unreachable. Kept small but spanning categories and levels so the UI
// stays exercisable offline.
func Mock() []domain.Job {
	posted := time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC)
	return []domain.Job{
		{
			ID:              "mock-1",
			Title:           "Senior Backend Engineer",
			Company:         "Northwind Labs",
			Location:        "Remote",
			Category:        domain.CategoryDevelopment,
			ExperienceLevel: domain.LevelSenior,
			Type:            domain.TypeFullTime,
			Salary:          &domain.Salary{Min: 120000, Max: 160000, Currency: "USD"},
			Description:     "Design and operate Go services behind our public API. Own reliability end to end.",
			Requirements: []string{
				"5+ years building backend services",
				"Production experience with Go or a similar language",
				"Comfort owning services in production",
			},
			Responsibilities: []string{},
			PostedDate:       posted,
			Remote:           true,
		},
		{
			ID:              "mock-2",
			Title:           "Data Analyst",
			Company:         "Brightside",
			Location:        "Remote",
			Category:        domain.CategoryData,
			ExperienceLevel: domain.LevelMid,
			Type:            domain.TypeFullTime,
			Description:     "Turn product telemetry into decisions. SQL all day, dashboards when needed.",
			Requirements: []string{
				"Strong SQL and data modeling",
				"Experience with BI tooling",
				"Clear written communication",
			},
			Responsibilities: []string{},
			PostedDate:       posted,
			Remote:           true,
		},
		{
			ID:              "mock-3",
			Title:           "Junior Product Designer",
			Company:         "Canopy",
			Location:        "Remote",
			Category:        domain.CategoryDesign,
			ExperienceLevel: domain.LevelEntry,
			Type:            domain.TypeFullTime,
			Description:     "Work with senior designers on our mobile app. Figma, prototypes, user tests.",
			Requirements: []string{
				"Portfolio of shipped or student work",
				"Working knowledge of Figma",
				"Appetite for user research",
			},
			Responsibilities: []string{},
			PostedDate:       posted,
			Remote:           true,
		},
		{
			ID:              "mock-4",
			Title:           "Lead DevOps Engineer",
			Company:         "Ferrous",
			Location:        "Remote",
			Category:        domain.CategoryDevOps,
			ExperienceLevel: domain.LevelLead,
			Type:            domain.TypeFullTime,
			Salary:          &domain.Salary{Min: 140000, Max: 180000, Currency: "USD"},
			Description:     "Run the platform team. Kubernetes, Terraform, and a healthy on-call rotation.",
			Requirements: []string{
				"Kubernetes in production at scale",
				"Infrastructure-as-code fluency",
				"Experience leading a small team",
			},
			Responsibilities: []string{},
			PostedDate:       posted,
			Remote:           true,
		},
		{
			ID:              "mock-5",
			Title:           "Customer Support Specialist",
			Company:         "Harbor",
			Location:        "Remote",
			Category:        domain.CategorySupport,
			ExperienceLevel: domain.LevelMid,
			Type:            domain.TypeFullTime,
			Description:     "Front line for our B2B customers across EU timezones.",
			Requirements: []string{
				"2+ years in customer-facing roles",
				"Excellent written English",
				"Patience with technical escalations",
			},
			Responsibilities: []string{},
			PostedDate:       posted,
			Remote:           true,
		},
		{
			ID:              "mock-6",
			Title:           "Marketing Manager",
			Company:         "Seedling",
			Location:        "Remote",
			Category:        domain.CategoryMarketing,
			ExperienceLevel: domain.LevelMid,
			Type:            domain.TypeFullTime,
			Description:     "Own the content calendar and paid channels for a dev-tools startup.",
			Requirements: []string{
				"Track record with B2B SaaS funnels",
				"Hands-on SEO experience",
				"Comfort with analytics tooling",
			},
			Responsibilities: []string{},
			PostedDate:       posted,
			Remote:           true,
		},
	}
}
