package request_models

type QuickBudgetRequest struct {
	StartCity   string `json:"startCity" binding:"required"`
	EndCity     string `json:"endCity" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	PeopleCount int    `json:"peopleCount" binding:"required,min=1"`
}
