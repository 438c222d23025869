package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"retreatly/internal/models/db_models"
	"retreatly/internal/models/response_models"
	"retreatly/internal/repositories"
	"retreatly/pkg/utils"
)

type JournalService interface {
	SaveEntry(ctx context.Context, userId uuid.UUID, content, prompt string) (*response_models.JournalEntryResponse, error)
	ListEntries(ctx context.Context, userId uuid.UUID, page, pageSize int) ([]response_models.JournalEntryResponse, int64, error)
}

type journalService struct {
	repo repositories.JournalRepository
}

func NewJournalService(repo repositories.JournalRepository) JournalService {
	return &journalService{repo: repo}
}

// SaveEntry persists a journal entry. Entries shorter than 10 characters
// after trimming are rejected; saved entries are immutable.
func (j *journalService) SaveEntry(ctx context.Context, userId uuid.UUID, content, prompt string) (*response_models.JournalEntryResponse, error) {
	trimmed := strings.TrimSpace(content)
	if len(trimmed) < 10 {
		return nil, utils.ErrJournalEntryTooShort
	}

	entry := &db_models.JournalEntry{
		UserID:  userId,
		Content: trimmed,
		Prompt:  prompt,
	}

	if err := j.repo.Insert(ctx, entry); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toJournalEntryResponse(*entry)
	return &resp, nil
}

// ListEntries returns the user's entries newest first.
func (j *journalService) ListEntries(ctx context.Context, userId uuid.UUID, page, pageSize int) ([]response_models.JournalEntryResponse, int64, error) {
	if page < 1 {
		return nil, 0, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, 0, utils.ErrInvalidPageSize
	}

	entries, err := j.repo.ListByUserId(ctx, userId.String(), page, pageSize)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}

	total, err := j.repo.CountByUserId(ctx, userId.String())
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}

	responses := make([]response_models.JournalEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toJournalEntryResponse(entry))
	}
	return responses, total, nil
}

func toJournalEntryResponse(entry db_models.JournalEntry) response_models.JournalEntryResponse {
	return response_models.JournalEntryResponse{
		ID:        entry.ID.String(),
		Content:   entry.Content,
		Prompt:    entry.Prompt,
		CreatedAt: utils.FormatRFC3339PT(utils.FromUnixSecondsPT(entry.CreatedAt)),
	}
}
