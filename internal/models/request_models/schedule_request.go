package request_models

// ScheduleCreateRequest carries everything needed for one AI schedule generation.
type ScheduleCreateRequest struct {
	StartCity   string   `json:"startCity" binding:"required"`
	EndCity     string   `json:"endCity" binding:"required"`
	StartDate   string   `json:"startDate" binding:"required"` // "2006-01-02"
	EndDate     string   `json:"endDate" binding:"required"`
	Emotions    []string `json:"emotions"`
	Companions  []string `json:"companions"`
	PeopleCount int      `json:"peopleCount"`
}

type ScheduleUpdateRequest struct {
	StartCity  *string                `json:"startCity"`
	EndCity    *string                `json:"endCity"`
	StartDate  *string                `json:"startDate"`
	EndDate    *string                `json:"endDate"`
	Emotions   []string               `json:"emotions"`
	Companions []string               `json:"companions"`
	Plan       map[string]interface{} `json:"plan"`
}
