package db_models

import "github.com/google/uuid"

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	BaseModel
	RetreatID uuid.UUID
	UserID    uuid.UUID
	Guests    int
	Status    string
	Notes     string

	Retreat *Retreat `gorm:"foreignKey:RetreatID"`
}
