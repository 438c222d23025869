package repositories

import (
	"context"

	"gorm.io/gorm"
	"retreatly/internal/models/db_models"
)

type JournalRepository interface {
	Insert(ctx context.Context, entry *db_models.JournalEntry) error
	ListByUserId(ctx context.Context, userId string, page, pageSize int) ([]db_models.JournalEntry, error)
	CountByUserId(ctx context.Context, userId string) (int64, error)
}

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (j *journalRepository) Insert(ctx context.Context, entry *db_models.JournalEntry) error {
	return j.db.WithContext(ctx).Create(entry).Error
}

// ListByUserId returns entries newest first.
func (j *journalRepository) ListByUserId(ctx context.Context, userId string, page, pageSize int) ([]db_models.JournalEntry, error) {
	var entries []db_models.JournalEntry
	err := j.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (j *journalRepository) CountByUserId(ctx context.Context, userId string) (int64, error) {
	var count int64
	err := j.db.WithContext(ctx).
		Model(&db_models.JournalEntry{}).
		Where("user_id = ?", userId).
		Count(&count).Error
	return count, err
}
