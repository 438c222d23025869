package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"retreatly/internal/models/db_models"
)

type RetreatRepository interface {
	Create(ctx context.Context, retreat *db_models.Retreat) error
	GetByID(ctx context.Context, id string) (*db_models.Retreat, error)
	ListPublished(ctx context.Context, page, pageSize int) ([]db_models.Retreat, error)
	ListByCategory(ctx context.Context, category string, page, pageSize int) ([]db_models.Retreat, error)
	ListByIDs(ctx context.Context, ids []string) ([]db_models.Retreat, error)
	CountConfirmedGuests(ctx context.Context, retreatID string) (int64, error)
}

type retreatRepository struct {
	db *gorm.DB
}

func NewRetreatRepository(db *gorm.DB) RetreatRepository {
	return &retreatRepository{db: db}
}

func (r *retreatRepository) Create(ctx context.Context, retreat *db_models.Retreat) error {
	return r.db.WithContext(ctx).Create(retreat).Error
}

func (r *retreatRepository) GetByID(ctx context.Context, id string) (*db_models.Retreat, error) {
	var retreat db_models.Retreat
	err := r.db.WithContext(ctx).First(&retreat, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &retreat, nil
}

func (r *retreatRepository) ListPublished(ctx context.Context, page, pageSize int) ([]db_models.Retreat, error) {
	var retreats []db_models.Retreat
	err := r.db.WithContext(ctx).
		Where("is_published = TRUE").
		Order("start_date ASC").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Find(&retreats).Error
	if err != nil {
		return nil, err
	}
	return retreats, nil
}

func (r *retreatRepository) ListByCategory(ctx context.Context, category string, page, pageSize int) ([]db_models.Retreat, error) {
	var retreats []db_models.Retreat
	err := r.db.WithContext(ctx).
		Where("is_published = TRUE AND ? = ANY(categories)", category).
		Order("start_date ASC").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Find(&retreats).Error
	if err != nil {
		return nil, err
	}
	return retreats, nil
}

func (r *retreatRepository) ListByIDs(ctx context.Context, ids []string) ([]db_models.Retreat, error) {
	var retreats []db_models.Retreat
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&retreats).Error
	if err != nil {
		return nil, err
	}
	return retreats, nil
}

func (r *retreatRepository) CountConfirmedGuests(ctx context.Context, retreatID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Select("COALESCE(SUM(guests), 0)").
		Where("retreat_id = ? AND status = ?", retreatID, db_models.BookingStatusConfirmed).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
