package db_models

import "github.com/google/uuid"

type Budget struct {
	BaseModel
	ScheduleID        uuid.UUID `gorm:"type:uuid;index"`
	FoodCost          int
	EntryFees         int
	TransportCost     int
	AccommodationCost int
	TotalBudget       int
	Comment           string
}

// QuickBudget rows record LLM-only estimates made before any schedule exists.
type QuickBudget struct {
	BaseModel
	StartCity     string
	EndCity       string
	StartDate     string
	EndDate       string
	PeopleCount   int
	FoodCost      int
	EntryFees     int
	TransportCost int
	TotalBudget   int
	Comment       string
}
