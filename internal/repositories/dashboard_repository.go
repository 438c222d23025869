package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "retreatly/internal/models/db_models"
)

type DashboardRepository interface {
	CountTotalAccounts(ctx context.Context) (int64, error)
	CountTotalRetreats(ctx context.Context) (int64, error)
	CountTotalBookings(ctx context.Context) (int64, error)
	CountBookingsByStatus(ctx context.Context, status string) (int64, error)
	CountJournalEntries(ctx context.Context) (int64, error)
	CountForumPosts(ctx context.Context) (int64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (d *dashboardRepository) count(ctx context.Context, model interface{}) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).Model(model).Count(&n).Error
	return n, err
}

func (d *dashboardRepository) CountTotalAccounts(ctx context.Context) (int64, error) {
	return d.count(ctx, &dbm.Account{})
}

func (d *dashboardRepository) CountTotalRetreats(ctx context.Context) (int64, error) {
	return d.count(ctx, &dbm.Retreat{})
}

func (d *dashboardRepository) CountTotalBookings(ctx context.Context) (int64, error) {
	return d.count(ctx, &dbm.Booking{})
}

func (d *dashboardRepository) CountBookingsByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).
		Model(&dbm.Booking{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (d *dashboardRepository) CountJournalEntries(ctx context.Context) (int64, error) {
	return d.count(ctx, &dbm.JournalEntry{})
}

func (d *dashboardRepository) CountForumPosts(ctx context.Context) (int64, error) {
	return d.count(ctx, &dbm.ForumPost{})
}
