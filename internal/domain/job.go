package domain

import "time"

// Closed category set. The classifier only ever emits one of these.
const (
	CategoryDevelopment = "Software Development"
	CategoryData        = "Data Science"
	CategoryDesign      = "Design"
	CategoryMarketing   = "Marketing"
	CategoryProduct     = "Product"
	CategorySales       = "Sales"
	CategorySupport     = "Customer Support"
	CategoryHR          = "Human Resources"
	CategoryFinance     = "Finance"
	CategoryDevOps      = "DevOps"
	CategoryQA          = "Quality Assurance"
	CategorySecurity    = "Security"
)

// Closed experience-level set.
const (
	LevelEntry  = "Entry-Level"
	LevelMid    = "Mid-Level"
	LevelSenior = "Senior"
	LevelLead   = "Lead"
)

// Job types. The upstream provider carries no type field, so transforms
// default to full-time.
const (
	TypeFullTime   = "Full-time"
	TypePartTime   = "Part-time"
	TypeContract   = "Contract"
	TypeInternship = "Internship"
)

var Categories = []string{
	CategoryDevelopment,
	CategoryData,
	CategoryDesign,
	CategoryMarketing,
	CategoryProduct,
	CategorySales,
	CategorySupport,
	CategoryHR,
	CategoryFinance,
	CategoryDevOps,
	CategoryQA,
	CategorySecurity,
}

type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Job is produced fresh per fetch and never persisted.
type Job struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Location         string    `json:"location"`
	Category         string    `json:"category"`
	ExperienceLevel  string    `json:"experienceLevel"`
	Type             string    `json:"type"`
	Salary           *Salary   `json:"salary,omitempty"`
	Description      string    `json:"description"`
	Requirements     []string  `json:"requirements"`
	Responsibilities []string  `json:"responsibilities"`
	PostedDate       time.Time `json:"postedDate"`
	Remote           bool      `json:"remote"`
}
