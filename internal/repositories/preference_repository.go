package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"retreatly/internal/models/db_models"
)

type PreferenceRepository interface {
	GetByUserId(ctx context.Context, userId string) (*db_models.UserPreference, error)
	Upsert(ctx context.Context, pref *db_models.UserPreference) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (p *preferenceRepository) GetByUserId(ctx context.Context, userId string) (*db_models.UserPreference, error) {
	var pref db_models.UserPreference
	err := p.db.WithContext(ctx).First(&pref, "user_id = ?", userId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

// Upsert writes the whole row; last write wins, no row-level conflict
// resolution beyond that.
func (p *preferenceRepository) Upsert(ctx context.Context, pref *db_models.UserPreference) error {
	return p.db.Transaction(func(tx *gorm.DB) error {
		var existing db_models.UserPreference
		err := tx.WithContext(ctx).First(&existing, "user_id = ?", pref.UserID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.WithContext(ctx).Create(pref).Error
			}
			return err
		}

		pref.ID = existing.ID
		pref.CreatedAt = existing.CreatedAt
		return tx.WithContext(ctx).Save(pref).Error
	})
}
