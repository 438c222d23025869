package db_models

import "github.com/google/uuid"

// JournalEntry is immutable once written; there is no update or delete path.
type JournalEntry struct {
	BaseModel
	UserID  uuid.UUID
	Content string
	Prompt  string // the writing prompt shown when the entry was written, if any
}
