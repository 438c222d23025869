package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrRetreatNotFound = errors.New("retreat not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRetreatFull     = errors.New("retreat is fully booked")

	ErrJournalEntryTooShort = errors.New("journal entry too short")
	ErrJournalTextTooShort  = errors.New("journal text too short to analyze")
	ErrJournalEntryNotFound = errors.New("journal entry not found")
	ErrConversationNotFound = errors.New("conversation session not found")
	ErrForumSpaceNotFound   = errors.New("forum space not found")
	ErrForumPostNotFound    = errors.New("forum post not found")

	ErrInvalidPage            = errors.New("invalid page parameter")
	ErrInvalidPageSize        = errors.New("invalid page size parameter")
	ErrInvalidInput           = errors.New("invalid input")
	ErrDatabaseError          = errors.New("database error")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI service")
)
