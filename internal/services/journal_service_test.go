package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retreatly/internal/models/db_models"
	"retreatly/pkg/utils"
)

type fakeJournalRepo struct {
	entries   []db_models.JournalEntry
	insertErr error
}

func (f *fakeJournalRepo) Insert(ctx context.Context, entry *db_models.JournalEntry) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now().Unix()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeJournalRepo) ListByUserId(ctx context.Context, userId string, page, pageSize int) ([]db_models.JournalEntry, error) {
	var out []db_models.JournalEntry
	for _, e := range f.entries {
		if e.UserID.String() == userId {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeJournalRepo) CountByUserId(ctx context.Context, userId string) (int64, error) {
	var count int64
	for _, e := range f.entries {
		if e.UserID.String() == userId {
			count++
		}
	}
	return count, nil
}

func TestJournalService_SaveEntry(t *testing.T) {
	userId := uuid.New()

	t.Run("rejects entries under ten characters", func(t *testing.T) {
		svc := NewJournalService(&fakeJournalRepo{})

		_, err := svc.SaveEntry(context.Background(), userId, "short", "")

		assert.ErrorIs(t, err, utils.ErrJournalEntryTooShort)
	})

	t.Run("surrounding whitespace does not count", func(t *testing.T) {
		svc := NewJournalService(&fakeJournalRepo{})

		_, err := svc.SaveEntry(context.Background(), userId, "      tiny      ", "")

		assert.ErrorIs(t, err, utils.ErrJournalEntryTooShort)
	})

	t.Run("stores the trimmed content and prompt", func(t *testing.T) {
		repo := &fakeJournalRepo{}
		svc := NewJournalService(repo)

		resp, err := svc.SaveEntry(context.Background(), userId, "  today was a good day  ", "How was your day?")

		require.NoError(t, err)
		assert.Equal(t, "today was a good day", resp.Content)
		assert.Equal(t, "How was your day?", resp.Prompt)
		assert.NotEmpty(t, resp.ID)
		_, parseErr := time.Parse(time.RFC3339, resp.CreatedAt)
		assert.NoError(t, parseErr)
		require.Len(t, repo.entries, 1)
		assert.Equal(t, userId, repo.entries[0].UserID)
	})

	t.Run("repository failure maps to a database error", func(t *testing.T) {
		svc := NewJournalService(&fakeJournalRepo{insertErr: assert.AnError})

		_, err := svc.SaveEntry(context.Background(), userId, "a perfectly fine entry", "")

		assert.ErrorIs(t, err, utils.ErrDatabaseError)
	})
}

func TestJournalService_ListEntries(t *testing.T) {
	userId := uuid.New()

	t.Run("validates pagination", func(t *testing.T) {
		svc := NewJournalService(&fakeJournalRepo{})

		_, _, err := svc.ListEntries(context.Background(), userId, 0, 10)
		assert.ErrorIs(t, err, utils.ErrInvalidPage)

		_, _, err = svc.ListEntries(context.Background(), userId, 1, 0)
		assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

		_, _, err = svc.ListEntries(context.Background(), userId, 1, 101)
		assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
	})

	t.Run("returns only the user's entries with a total", func(t *testing.T) {
		repo := &fakeJournalRepo{}
		svc := NewJournalService(repo)

		_, err := svc.SaveEntry(context.Background(), userId, "first entry of the week", "")
		require.NoError(t, err)
		_, err = svc.SaveEntry(context.Background(), uuid.New(), "someone else's entry here", "")
		require.NoError(t, err)

		entries, total, err := svc.ListEntries(context.Background(), userId, 1, 10)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "first entry of the week", entries[0].Content)
	})
}
