package services

import (
	"context"

	"github.com/google/uuid"

	"retreatly/internal/models/db_models"
	"retreatly/internal/models/request_models"
	"retreatly/internal/models/response_models"
	"retreatly/internal/repositories"
	"retreatly/pkg/utils"
)

type PreferenceService interface {
	GetPreferences(ctx context.Context, userId uuid.UUID) (*response_models.UserPreferences, error)
	UpdatePreferences(ctx context.Context, userId uuid.UUID, update request_models.PreferenceUpdate) (*response_models.UserPreferences, error)
}

type preferenceService struct {
	repo repositories.PreferenceRepository
}

func NewPreferenceService(repo repositories.PreferenceRepository) PreferenceService {
	return &preferenceService{repo: repo}
}

// GetPreferences returns the stored preferences, or an empty set for a user
// who has never saved any. Missing preferences are not an error.
func (p *preferenceService) GetPreferences(ctx context.Context, userId uuid.UUID) (*response_models.UserPreferences, error) {
	pref, err := p.repo.GetByUserId(ctx, userId.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if pref == nil {
		return &response_models.UserPreferences{Interests: []string{}}, nil
	}

	view := toPreferencesView(pref)
	return &view, nil
}

// UpdatePreferences applies a shallow field-level merge: each present field
// in the update replaces the stored value wholesale, arrays included. Nil
// fields keep whatever was there before.
func (p *preferenceService) UpdatePreferences(ctx context.Context, userId uuid.UUID, update request_models.PreferenceUpdate) (*response_models.UserPreferences, error) {
	pref, err := p.repo.GetByUserId(ctx, userId.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if pref == nil {
		pref = &db_models.UserPreference{UserID: userId}
	}

	applyPreferenceUpdate(pref, update)

	if err := p.repo.Upsert(ctx, pref); err != nil {
		return nil, utils.ErrDatabaseError
	}

	view := toPreferencesView(pref)
	return &view, nil
}

func applyPreferenceUpdate(pref *db_models.UserPreference, update request_models.PreferenceUpdate) {
	if update.Interests != nil {
		pref.Interests = *update.Interests
	}
	if update.Budget != nil {
		pref.Budget = *update.Budget
	}
	if update.Location != nil {
		pref.Location = *update.Location
	}
	if update.Duration != nil {
		pref.Duration = *update.Duration
	}
	if update.Experience != nil {
		pref.Experience = *update.Experience
	}
	if update.PreviousSearches != nil {
		pref.PreviousSearches = *update.PreviousSearches
	}
	if update.ConversationContext != nil {
		pref.ConversationContext = *update.ConversationContext
	}
}

func toPreferencesView(pref *db_models.UserPreference) response_models.UserPreferences {
	interests := []string(pref.Interests)
	if interests == nil {
		interests = []string{}
	}
	return response_models.UserPreferences{
		Interests:           interests,
		Budget:              pref.Budget,
		Location:            pref.Location,
		Duration:            pref.Duration,
		Experience:          pref.Experience,
		PreviousSearches:    pref.PreviousSearches,
		ConversationContext: pref.ConversationContext,
	}
}
