package services

import (
	"context"
	"log"
	"strings"
	"time"

	"retreatly/internal/models/response_models"
	"retreatly/pkg/utils"
)

const defaultAnalysisLocation = "San Francisco, CA"

type RecommendationService interface {
	AnalyzeJournal(ctx context.Context, content string, location string) (*response_models.JournalAnalysisResponse, error)
}

type recommendationService struct {
	gateway  RecommendationGateway
	fallback *FallbackRecommender
}

func NewRecommendationService(gateway RecommendationGateway, fallback *FallbackRecommender) RecommendationService {
	return &recommendationService{
		gateway:  gateway,
		fallback: fallback,
	}
}

// AnalyzeJournal extracts keywords from the entry and asks the hosted
// recommender for matches. If the remote call fails or returns nothing, the
// local fallback scorer answers instead; either way the caller always gets a
// non-empty recommendation list. The fallback fires at most once per call.
func (r *recommendationService) AnalyzeJournal(ctx context.Context, content string, location string) (*response_models.JournalAnalysisResponse, error) {
	trimmed := strings.TrimSpace(content)
	if len(trimmed) < 20 {
		return nil, utils.ErrJournalTextTooShort
	}

	keywords := ExtractKeywords(trimmed)

	if location == "" {
		location = defaultAnalysisLocation
	}

	recommendations, err := r.gateway.FetchRecommendations(ctx, location, keywords, time.Now(), nil)
	source := response_models.RecommendationSourceRemote

	if err != nil || len(recommendations) == 0 {
		if err != nil {
			log.Printf("recommendation function unavailable, using fallback: %v", err)
		}
		recommendations = r.fallback.GenerateMockRecommendations(trimmed)
		source = response_models.RecommendationSourceFallback
	}

	return &response_models.JournalAnalysisResponse{
		Keywords:        keywords,
		Recommendations: recommendations,
		Source:          source,
	}, nil
}
