package response_models

type ScheduleSummary struct {
	ID          string   `json:"id"`
	StartCity   string   `json:"startCity"`
	EndCity     string   `json:"endCity"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Emotions    []string `json:"emotions"`
	Companions  []string `json:"companions"`
	PeopleCount int      `json:"peopleCount"`
}

type ScheduleDetail struct {
	ScheduleSummary
	Plan PlanResponse `json:"plan"`
}
