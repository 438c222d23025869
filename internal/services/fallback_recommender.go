package services

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"retreatly/internal/models/response_models"
)

// Keyword groups per fallback candidate theme.
var (
	meditationKeywords = []string{"meditation", "mindfulness", "stress", "anxiety", "calm", "breathing", "quiet"}
	healingKeywords    = []string{"healing", "therapy", "trauma", "recovery", "mental health", "grief", "wellness"}
	natureKeywords     = []string{"nature", "outdoors", "hiking", "forest", "mountain", "fresh air", "trail"}
	stressKeywords     = []string{"stress", "anxiety", "overwhelmed", "burnout", "pressure", "peace", "balance"}
)

type fallbackCandidate struct {
	retreatID   string
	title       string
	description string
	keywords    []string
}

// The candidate set is fixed: at most these four retreats come back from the
// fallback path, matching the catalog entries the detail pages know about.
var fallbackCandidates = []fallbackCandidate{
	{
		retreatID:   "ret-1",
		title:       "Stillwater Meditation Retreat",
		description: "A silent weekend of guided meditation and breathwork.",
		keywords:    meditationKeywords,
	},
	{
		retreatID:   "ret-2",
		title:       "Inner Light Healing Retreat",
		description: "Somatic therapy, group healing circles and restorative rest.",
		keywords:    healingKeywords,
	},
	{
		retreatID:   "ret-3",
		title:       "Wildwood Nature Immersion",
		description: "Forest bathing, trail walks and outdoor mindfulness.",
		keywords:    natureKeywords,
	},
	{
		retreatID:   "ret-4",
		title:       "Unwind Stress Relief Retreat",
		description: "Evidence-based stress reduction with yoga and rest.",
		keywords:    stressKeywords,
	},
}

// Cities used for the cosmetic display location. These are presentation
// filler, not a real schedule.
var fallbackCities = []string{
	"Sedona, AZ",
	"Big Sur, CA",
	"Asheville, NC",
	"Ojai, CA",
	"Taos, NM",
	"Santa Cruz, CA",
}

const (
	fallbackBaseScore = 0.5
	fallbackStepScore = 0.1
	fallbackMaxScore  = 0.95
)

type FallbackRecommender struct {
	rng *rand.Rand
}

func NewFallbackRecommender() *FallbackRecommender {
	return &FallbackRecommender{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateMockRecommendations scores the fixed candidate set against the
// journal text by keyword-overlap counting. It cannot fail; it is the
// designated fallback when the hosted recommender errors or comes back empty.
// Scores always land in [0.5, 0.95] and the result is sorted descending.
func (f *FallbackRecommender) GenerateMockRecommendations(journalText string) []response_models.RetreatRecommendation {
	lower := strings.ToLower(journalText)

	recommendations := make([]response_models.RetreatRecommendation, 0, len(fallbackCandidates))
	for _, candidate := range fallbackCandidates {
		matchCount := 0
		for _, keyword := range candidate.keywords {
			if strings.Contains(lower, keyword) {
				matchCount++
			}
		}

		score := fallbackBaseScore + fallbackStepScore*float64(matchCount)
		if score > fallbackMaxScore {
			score = fallbackMaxScore
		}

		recommendations = append(recommendations, response_models.RetreatRecommendation{
			RetreatID:   candidate.retreatID,
			Title:       candidate.title,
			Description: candidate.description,
			MatchScore:  score,
			Reason:      f.reasonFor(candidate.retreatID, lower),
			Location:    f.randomCity(),
			Date:        f.randomFutureDate(),
			Time:        f.randomTime(),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})

	return recommendations
}

// reasonFor picks between two canned justifications per retreat depending on
// which trigger words showed up in the entry.
func (f *FallbackRecommender) reasonFor(retreatID, lowerText string) string {
	switch retreatID {
	case "ret-1":
		if strings.Contains(lowerText, "anxiety") || strings.Contains(lowerText, "stress") {
			return "Your entry mentions feeling stressed — a silent meditation weekend can help you reset."
		}
		return "You seem drawn to quiet reflection, and this retreat is built around it."
	case "ret-2":
		if strings.Contains(lowerText, "healing") || strings.Contains(lowerText, "therapy") {
			return "You wrote about healing — this retreat pairs somatic work with guided group circles."
		}
		return "A gentle, supportive setting for working through what you've been carrying."
	case "ret-3":
		if strings.Contains(lowerText, "nature") || strings.Contains(lowerText, "outdoors") {
			return "Time outdoors keeps coming up in your writing — this immersion puts you in the forest all day."
		}
		return "Getting out of your routine and into nature can shift your perspective."
	case "ret-4":
		if strings.Contains(lowerText, "overwhelmed") || strings.Contains(lowerText, "burnout") {
			return "You sound close to burnout — this program is designed specifically for recovery from it."
		}
		return "A structured way to let go of day-to-day pressure and find your balance again."
	default:
		return "This retreat matches themes from your journal."
	}
}

func (f *FallbackRecommender) randomCity() string {
	return fallbackCities[f.rng.Intn(len(fallbackCities))]
}

// randomFutureDate picks a date within the next 30 days.
func (f *FallbackRecommender) randomFutureDate() string {
	days := f.rng.Intn(30) + 1
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// randomTime picks a daytime slot at 30-minute granularity.
func (f *FallbackRecommender) randomTime() string {
	hour := 7 + f.rng.Intn(12) // 07:00 .. 18:30
	minute := 30 * f.rng.Intn(2)
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
