package services

import (
	"context"

	"retreatly/internal/models/db_models"
	"retreatly/internal/models/response_models"
	"retreatly/internal/repositories"
	"retreatly/pkg/utils"
)

type DashboardServiceInterface interface {
	GetOverview(ctx context.Context) (*response_models.DashboardResponse, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardServiceInterface {
	return &dashboardService{repo: repo}
}

func (d *dashboardService) GetOverview(ctx context.Context) (*response_models.DashboardResponse, error) {
	accounts, err := d.repo.CountTotalAccounts(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	retreats, err := d.repo.CountTotalRetreats(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	bookings, err := d.repo.CountTotalBookings(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	confirmed, err := d.repo.CountBookingsByStatus(ctx, db_models.BookingStatusConfirmed)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	journalEntries, err := d.repo.CountJournalEntries(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	forumPosts, err := d.repo.CountForumPosts(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.DashboardResponse{
		TotalAccounts:     accounts,
		TotalRetreats:     retreats,
		TotalBookings:     bookings,
		ConfirmedBookings: confirmed,
		JournalEntries:    journalEntries,
		ForumPosts:        forumPosts,
	}, nil
}
