package db_models

type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string

	Schedules []Schedule
}
