package response_models

// Canonical plan shape. This is the stable contract between the generation
// pipeline and its callers, and the shape persisted in Schedule.PlanJSON.

type ScheduleItem struct {
	Time      string   `json:"time"`
	Place     string   `json:"place"`
	PlaceID   string   `json:"placeId"`
	AiComment string   `json:"aiComment,omitempty"`
	PlaceType string   `json:"placeType,omitempty"` // set during reconciliation, from the catalog
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type DayPlan struct {
	Day      int            `json:"day"`
	Schedule []ScheduleItem `json:"schedule"`
}

type PlanResponse struct {
	AiEmpathy string    `json:"aiEmpathy"`
	Tags      []string  `json:"tags"`
	Plans     []DayPlan `json:"plans"`
}
