package db_models

import "github.com/google/uuid"

// Catalog entities are read-only to this service; ingestion owns them.
// PlaceID is the external mapping-provider key and is unique per table.

const (
	PlaceTypeSights        = "sights"
	PlaceTypeMeal          = "meal"
	PlaceTypeAccommodation = "accommodation"
)

// Place is the normalized read model spanning the three catalog tables.
type Place struct {
	PlaceID      string
	Name         string
	Type         string // sights | meal | accommodation
	Area         string
	Rating       float64
	ReviewCount  int
	PriceLevel   *int // 0-4 tier, nil when unknown
	NightlyPrice int  // accommodations only
	Latitude     *float64
	Longitude    *float64
}

type Destination struct {
	BaseModel
	Name         string
	Area         string
	Rating       float64
	ReviewCount  int
	PriceLevel   *int `gorm:"type:int"` // 0-4 tier, nil when unknown
	PhoneNumber  string
	OpeningHours string
	ImageURL     string

	StyleActivity    bool
	StyleHotplace    bool
	StyleNature      bool
	StyleLandmark    bool
	StyleHealing     bool
	StyleCulture     bool
	StylePhoto       bool
	StyleShopping    bool
	StyleExotic      bool
	StyleDate        bool
	StyleQuiet       bool
	StyleTraditional bool
	StyleView        bool

	PlaceID   string `gorm:"uniqueIndex"`
	Latitude  *float64
	Longitude *float64

	Reviews []Review `gorm:"foreignKey:DestinationID"`
}

type Meal struct {
	BaseModel
	Name         string
	FoodType     string
	Area         string
	PriceLevel   *int `gorm:"type:int"`
	Rating       float64
	ReviewCount  int
	PhoneNumber  string
	OpeningHours string
	ImageURL     string

	PlaceID   string `gorm:"uniqueIndex"`
	Latitude  *float64
	Longitude *float64

	Reviews []Review `gorm:"foreignKey:MealID"`
}

type Accommodation struct {
	BaseModel
	Name        string
	Area        string
	Price       int // nightly, KRW
	Rating      float64
	ReviewCount int
	PhoneNumber string
	ImageURL    string
	Category    string

	PlaceID   string `gorm:"uniqueIndex"`
	Latitude  *float64
	Longitude *float64

	Reviews []Review `gorm:"foreignKey:AccommodationID"`
}

type Review struct {
	BaseModel
	Comment         string
	DestinationID   *uuid.UUID `gorm:"type:uuid"`
	MealID          *uuid.UUID `gorm:"type:uuid"`
	AccommodationID *uuid.UUID `gorm:"type:uuid"`
}
