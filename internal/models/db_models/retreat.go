package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Retreat struct {
	BaseModel
	Title       string
	Description string
	Location    string
	Categories  pq.StringArray `gorm:"type:text[]"`
	ImageURL    string
	PriceMinor  int64 // minor units (USD cents)
	Currency    string
	Capacity    int
	StartDate   int64 // unix seconds
	EndDate     int64
	HostID      uuid.UUID
	IsPublished bool

	Bookings []Booking `gorm:"foreignKey:RetreatID"`
}
