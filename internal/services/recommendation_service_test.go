package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retreatly/internal/models/response_models"
	"retreatly/pkg/utils"
)

type stubGateway struct {
	calls        int
	lastLocation string
	lastKeywords []string
	result       []response_models.RetreatRecommendation
	err          error
}

func (s *stubGateway) FetchRecommendations(ctx context.Context, location string, interests []string, start time.Time, end *time.Time) ([]response_models.RetreatRecommendation, error) {
	s.calls++
	s.lastLocation = location
	s.lastKeywords = interests
	return s.result, s.err
}

func TestRecommendationService_AnalyzeJournal(t *testing.T) {
	longEntry := "I have been feeling stress and anxiety and want more peace"

	t.Run("rejects text under the minimum length", func(t *testing.T) {
		svc := NewRecommendationService(&stubGateway{}, NewFallbackRecommender())

		_, err := svc.AnalyzeJournal(context.Background(), "too short", "")

		assert.ErrorIs(t, err, utils.ErrJournalTextTooShort)
	})

	t.Run("whitespace does not count toward the minimum", func(t *testing.T) {
		svc := NewRecommendationService(&stubGateway{}, NewFallbackRecommender())

		_, err := svc.AnalyzeJournal(context.Background(), "   tiny      entry   ", "")

		assert.ErrorIs(t, err, utils.ErrJournalTextTooShort)
	})

	t.Run("remote results pass through untouched", func(t *testing.T) {
		gateway := &stubGateway{
			result: []response_models.RetreatRecommendation{
				{RetreatID: "r-1", Title: "Forest Stay", MatchScore: 0.9, Reason: "close match"},
			},
		}
		svc := NewRecommendationService(gateway, NewFallbackRecommender())

		analysis, err := svc.AnalyzeJournal(context.Background(), longEntry, "Seattle, WA")

		require.NoError(t, err)
		assert.Equal(t, response_models.RecommendationSourceRemote, analysis.Source)
		require.Len(t, analysis.Recommendations, 1)
		assert.Equal(t, "r-1", analysis.Recommendations[0].RetreatID)
		assert.Equal(t, "Seattle, WA", gateway.lastLocation)
		assert.Equal(t, []string{"stress", "anxiety", "peace"}, analysis.Keywords)
	})

	t.Run("gateway failure falls back exactly once", func(t *testing.T) {
		gateway := &stubGateway{err: &RemoteError{Message: "down"}}
		svc := NewRecommendationService(gateway, NewFallbackRecommender())

		analysis, err := svc.AnalyzeJournal(context.Background(), longEntry, "")

		require.NoError(t, err)
		assert.Equal(t, 1, gateway.calls)
		assert.Equal(t, response_models.RecommendationSourceFallback, analysis.Source)
		assert.NotEmpty(t, analysis.Recommendations)
	})

	t.Run("empty remote result also falls back", func(t *testing.T) {
		gateway := &stubGateway{result: []response_models.RetreatRecommendation{}}
		svc := NewRecommendationService(gateway, NewFallbackRecommender())

		analysis, err := svc.AnalyzeJournal(context.Background(), longEntry, "")

		require.NoError(t, err)
		assert.Equal(t, response_models.RecommendationSourceFallback, analysis.Source)
		assert.NotEmpty(t, analysis.Recommendations)
	})

	t.Run("non-remote errors still resolve through the fallback", func(t *testing.T) {
		gateway := &stubGateway{err: errors.New("dial tcp: timeout")}
		svc := NewRecommendationService(gateway, NewFallbackRecommender())

		analysis, err := svc.AnalyzeJournal(context.Background(), longEntry, "")

		require.NoError(t, err)
		assert.Equal(t, response_models.RecommendationSourceFallback, analysis.Source)
	})

	t.Run("missing location defaults", func(t *testing.T) {
		gateway := &stubGateway{result: []response_models.RetreatRecommendation{{RetreatID: "r-1"}}}
		svc := NewRecommendationService(gateway, NewFallbackRecommender())

		_, err := svc.AnalyzeJournal(context.Background(), longEntry, "")

		require.NoError(t, err)
		assert.Equal(t, defaultAnalysisLocation, gateway.lastLocation)
	})

	t.Run("keywords are reported even on the fallback path", func(t *testing.T) {
		gateway := &stubGateway{err: &RemoteError{Message: "down"}}
		svc := NewRecommendationService(gateway, NewFallbackRecommender())

		analysis, err := svc.AnalyzeJournal(context.Background(), "yoga and meditation keep me grounded", "")

		require.NoError(t, err)
		assert.Equal(t, []string{"yoga", "meditation"}, analysis.Keywords)
		assert.Equal(t, []string{"yoga", "meditation"}, gateway.lastKeywords)
	})
}
