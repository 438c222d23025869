package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserPreference is one row per user, overwritten field-by-field on merge.
// Array fields replace wholesale (last write wins), matching the client-side
// storage behavior this replaces.
type UserPreference struct {
	BaseModel
	UserID              uuid.UUID      `gorm:"uniqueIndex"`
	Interests           pq.StringArray `gorm:"type:text[]"`
	Budget              string         // "low", "medium", "high"
	Location            string
	Duration            string // "weekend", "week", "extended"
	Experience          string // "beginner", "intermediate", "advanced"
	PreviousSearches    pq.StringArray `gorm:"type:text[]"`
	ConversationContext string
}
