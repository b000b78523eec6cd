package domain

// Sentinel values meaning "filter inactive". Distinct from empty/absent:
// the UI sends these literals when a dropdown sits on its default entry.
const (
	AllCategories = "All Categories"
	AllLevels     = "All Levels"
	AllTypes      = "All Types"
)

// FilterState is the current filter selection owned by the state controller.
type FilterState struct {
	Category        string `json:"category"`
	Location        string `json:"location"`
	ExperienceLevel string `json:"experienceLevel"`
	JobType         string `json:"jobType"`
	SearchQuery     string `json:"searchQuery"`
	RemoteOnly      bool   `json:"remoteOnly"`
}

func DefaultFilterState() FilterState {
	return FilterState{
		Category:        AllCategories,
		ExperienceLevel: AllLevels,
		JobType:         AllTypes,
	}
}
