package recommend_fx

import (
	"go.uber.org/fx"

	"retreatly/internal/services"
)

var Module = fx.Provide(
	provideGateway, provideFallback, provideRecommendationService)

func provideGateway() services.RecommendationGateway {
	return services.NewHostedRecommendationGateway()
}

func provideFallback() *services.FallbackRecommender {
	return services.NewFallbackRecommender()
}

func provideRecommendationService(
	gateway services.RecommendationGateway,
	fallback *services.FallbackRecommender,
) services.RecommendationService {
	return services.NewRecommendationService(gateway, fallback)
}
