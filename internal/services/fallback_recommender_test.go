package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMockRecommendations(t *testing.T) {
	recommender := NewFallbackRecommender()

	t.Run("always returns the full candidate set", func(t *testing.T) {
		recs := recommender.GenerateMockRecommendations("nothing relevant here")

		require.Len(t, recs, 4)
		for _, rec := range recs {
			assert.NotEmpty(t, rec.RetreatID)
			assert.NotEmpty(t, rec.Title)
			assert.NotEmpty(t, rec.Reason)
		}
	})

	t.Run("scores stay within bounds", func(t *testing.T) {
		// Text hitting every keyword of one theme pushes past the cap.
		text := "meditation mindfulness stress anxiety calm breathing quiet"

		recs := recommender.GenerateMockRecommendations(text)

		for _, rec := range recs {
			assert.GreaterOrEqual(t, rec.MatchScore, 0.5)
			assert.LessOrEqual(t, rec.MatchScore, 0.95)
		}
	})

	t.Run("sorted by score descending", func(t *testing.T) {
		recs := recommender.GenerateMockRecommendations("stress anxiety and burnout, need peace")

		for i := 1; i < len(recs); i++ {
			assert.GreaterOrEqual(t, recs[i-1].MatchScore, recs[i].MatchScore)
		}
	})

	t.Run("stress themed entry surfaces the stress retreat first", func(t *testing.T) {
		recs := recommender.GenerateMockRecommendations(
			"I feel a lot of stress and anxiety lately and want to find peace")

		require.NotEmpty(t, recs)
		assert.Equal(t, "ret-4", recs[0].RetreatID)
		assert.GreaterOrEqual(t, recs[0].MatchScore, 0.7)
	})

	t.Run("no keyword overlap gives the base score", func(t *testing.T) {
		recs := recommender.GenerateMockRecommendations("went to the office")

		for _, rec := range recs {
			assert.Equal(t, 0.5, rec.MatchScore)
		}
	})

	t.Run("reason reacts to trigger words", func(t *testing.T) {
		recs := recommender.GenerateMockRecommendations("so much anxiety these days")

		var ret1Reason string
		for _, rec := range recs {
			if rec.RetreatID == "ret-1" {
				ret1Reason = rec.Reason
			}
		}
		assert.Contains(t, ret1Reason, "stressed")
	})

	t.Run("schedule filler is plausible", func(t *testing.T) {
		recs := recommender.GenerateMockRecommendations("meditation")

		for _, rec := range recs {
			assert.NotEmpty(t, rec.Location)

			date, err := time.Parse("2006-01-02", rec.Date)
			require.NoError(t, err)
			assert.True(t, date.After(time.Now().Add(-24*time.Hour)))

			_, err = time.Parse("15:04", rec.Time)
			require.NoError(t, err)
		}
	})
}
