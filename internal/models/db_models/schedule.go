package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Schedule struct {
	BaseModel
	UserID      *uuid.UUID `gorm:"type:uuid"` // nil for anonymous trips
	StartCity   string
	EndCity     string
	StartDate   string // ISO calendar date
	EndDate     string
	Emotions    pq.StringArray `gorm:"type:text[]"`
	Companions  pq.StringArray `gorm:"type:text[]"`
	PeopleCount int            `gorm:"default:1"`
	PlanJSON    string         `gorm:"type:text"` // canonical reconciled plan blob

	Budgets []Budget `gorm:"foreignKey:ScheduleID"`
}
