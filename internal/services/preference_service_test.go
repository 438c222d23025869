package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retreatly/internal/models/db_models"
	"retreatly/internal/models/request_models"
	"retreatly/pkg/utils"
)

type fakePreferenceRepo struct {
	rows   map[string]*db_models.UserPreference
	getErr error
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{rows: make(map[string]*db_models.UserPreference)}
}

func (f *fakePreferenceRepo) GetByUserId(ctx context.Context, userId string) (*db_models.UserPreference, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	row, ok := f.rows[userId]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (f *fakePreferenceRepo) Upsert(ctx context.Context, pref *db_models.UserPreference) error {
	copied := *pref
	f.rows[pref.UserID.String()] = &copied
	return nil
}

func strPtr(s string) *string { return &s }

func TestPreferenceService_GetPreferences(t *testing.T) {
	userId := uuid.New()

	t.Run("new user gets an empty set, not an error", func(t *testing.T) {
		svc := NewPreferenceService(newFakePreferenceRepo())

		prefs, err := svc.GetPreferences(context.Background(), userId)

		require.NoError(t, err)
		assert.NotNil(t, prefs.Interests)
		assert.Empty(t, prefs.Interests)
		assert.Empty(t, prefs.Budget)
	})

	t.Run("repository failure maps to a database error", func(t *testing.T) {
		repo := newFakePreferenceRepo()
		repo.getErr = assert.AnError
		svc := NewPreferenceService(repo)

		_, err := svc.GetPreferences(context.Background(), userId)

		assert.ErrorIs(t, err, utils.ErrDatabaseError)
	})
}

func TestPreferenceService_UpdatePreferences(t *testing.T) {
	userId := uuid.New()

	t.Run("first update creates the row", func(t *testing.T) {
		repo := newFakePreferenceRepo()
		svc := NewPreferenceService(repo)

		interests := []string{"yoga", "hiking"}
		prefs, err := svc.UpdatePreferences(context.Background(), userId, request_models.PreferenceUpdate{
			Interests: &interests,
			Budget:    strPtr("medium"),
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"yoga", "hiking"}, prefs.Interests)
		assert.Equal(t, "medium", prefs.Budget)
	})

	t.Run("nil fields keep their stored values", func(t *testing.T) {
		repo := newFakePreferenceRepo()
		svc := NewPreferenceService(repo)

		interests := []string{"meditation"}
		_, err := svc.UpdatePreferences(context.Background(), userId, request_models.PreferenceUpdate{
			Interests: &interests,
			Budget:    strPtr("high"),
			Location:  strPtr("Portland, OR"),
		})
		require.NoError(t, err)

		prefs, err := svc.UpdatePreferences(context.Background(), userId, request_models.PreferenceUpdate{
			Budget: strPtr("low"),
		})

		require.NoError(t, err)
		assert.Equal(t, "low", prefs.Budget)
		assert.Equal(t, []string{"meditation"}, prefs.Interests)
		assert.Equal(t, "Portland, OR", prefs.Location)
	})

	t.Run("arrays replace wholesale, never append", func(t *testing.T) {
		repo := newFakePreferenceRepo()
		svc := NewPreferenceService(repo)

		first := []string{"yoga", "surfing", "meditation"}
		_, err := svc.UpdatePreferences(context.Background(), userId, request_models.PreferenceUpdate{Interests: &first})
		require.NoError(t, err)

		second := []string{"hiking"}
		prefs, err := svc.UpdatePreferences(context.Background(), userId, request_models.PreferenceUpdate{Interests: &second})

		require.NoError(t, err)
		assert.Equal(t, []string{"hiking"}, prefs.Interests)
	})

	t.Run("empty array present in the update clears the stored one", func(t *testing.T) {
		repo := newFakePreferenceRepo()
		svc := NewPreferenceService(repo)

		first := []string{"yoga"}
		_, err := svc.UpdatePreferences(context.Background(), userId, request_models.PreferenceUpdate{Interests: &first})
		require.NoError(t, err)

		cleared := []string{}
		prefs, err := svc.UpdatePreferences(context.Background(), userId, request_models.PreferenceUpdate{Interests: &cleared})

		require.NoError(t, err)
		assert.Empty(t, prefs.Interests)
	})
}
