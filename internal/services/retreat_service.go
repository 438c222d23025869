package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"retreatly/internal/models/db_models"
	"retreatly/internal/models/request_models"
	"retreatly/internal/models/response_models"
	"retreatly/internal/repositories"
	"retreatly/pkg/utils"
)

type RetreatServiceInterface interface {
	CreateRetreat(ctx context.Context, hostId uuid.UUID, request request_models.CreateRetreatRequest) (*response_models.RetreatResponse, error)
	GetRetreatDetail(ctx context.Context, id string) (*response_models.RetreatResponse, error)
	ListRetreats(ctx context.Context, category string, page, pageSize int) ([]response_models.RetreatResponse, error)
	SearchRetreats(ctx context.Context, query string, limit int) ([]response_models.RetreatSearchResult, error)
}

type RetreatService struct {
	retreatRepo   repositories.RetreatRepository
	embeddingRepo repositories.IRetreatEmbeddingRepository
	ai            utils.AIClientInterface
}

func NewRetreatService(
	retreatRepo repositories.RetreatRepository,
	embeddingRepo repositories.IRetreatEmbeddingRepository,
	ai utils.AIClientInterface,
) RetreatServiceInterface {
	return &RetreatService{
		retreatRepo:   retreatRepo,
		embeddingRepo: embeddingRepo,
		ai:            ai,
	}
}

func (r *RetreatService) CreateRetreat(ctx context.Context, hostId uuid.UUID, request request_models.CreateRetreatRequest) (*response_models.RetreatResponse, error) {
	startDate, err := time.Parse(time.RFC3339, request.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	endDate, err := time.Parse(time.RFC3339, request.EndDate)
	if err != nil || endDate.Before(startDate) {
		return nil, utils.ErrInvalidInput
	}

	currency := strings.ToUpper(request.Currency)
	if currency == "" {
		currency = "USD"
	}

	retreat := &db_models.Retreat{
		Title:       request.Title,
		Description: request.Description,
		Location:    request.Location,
		Categories:  request.Categories,
		ImageURL:    request.ImageURL,
		PriceMinor:  request.PriceMinor,
		Currency:    currency,
		Capacity:    request.Capacity,
		StartDate:   startDate.Unix(),
		EndDate:     endDate.Unix(),
		HostID:      hostId,
		IsPublished: true,
	}

	if err := r.retreatRepo.Create(ctx, retreat); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Index for semantic search. Failure here must not fail the create; the
	// retreat just won't show up in search until reindexed.
	if err := r.indexRetreat(ctx, retreat); err != nil {
		log.Printf("indexing retreat %s: %v", retreat.ID, err)
	}

	resp := r.toRetreatResponse(*retreat, retreat.Capacity)
	return &resp, nil
}

func (r *RetreatService) indexRetreat(ctx context.Context, retreat *db_models.Retreat) error {
	text := fmt.Sprintf("%s. %s. Location: %s. Categories: %s",
		retreat.Title, retreat.Description, retreat.Location, strings.Join(retreat.Categories, ", "))

	vector, err := r.ai.GetEmbedding(ctx, text)
	if err != nil {
		return err
	}

	return r.embeddingRepo.CreateRetreatEmbedding(db_models.RetreatEmbedding{
		RetreatID:   retreat.ID.String(),
		Title:       retreat.Title,
		Description: retreat.Description,
		Location:    retreat.Location,
		Categories:  retreat.Categories,
		Embedding:   vector,
	})
}

func (r *RetreatService) GetRetreatDetail(ctx context.Context, id string) (*response_models.RetreatResponse, error) {
	retreat, err := r.retreatRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if retreat == nil {
		return nil, utils.ErrRetreatNotFound
	}

	spotsLeft, err := r.spotsLeft(ctx, retreat)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := r.toRetreatResponse(*retreat, spotsLeft)
	return &resp, nil
}

func (r *RetreatService) ListRetreats(ctx context.Context, category string, page, pageSize int) ([]response_models.RetreatResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	var (
		retreats []db_models.Retreat
		err      error
	)
	if category != "" {
		retreats, err = r.retreatRepo.ListByCategory(ctx, category, page, pageSize)
	} else {
		retreats, err = r.retreatRepo.ListPublished(ctx, page, pageSize)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.RetreatResponse, 0, len(retreats))
	for _, retreat := range retreats {
		spotsLeft, err := r.spotsLeft(ctx, &retreat)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		responses = append(responses, r.toRetreatResponse(retreat, spotsLeft))
	}
	return responses, nil
}

// SearchRetreats embeds the free-text query and returns retreats whose
// indexed embedding sits above the similarity floor, best match first.
func (r *RetreatService) SearchRetreats(ctx context.Context, query string, limit int) ([]response_models.RetreatSearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, utils.ErrInvalidInput
	}

	vector, err := r.ai.GetEmbedding(ctx, query)
	if err != nil {
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	matches, err := r.embeddingRepo.GetListOfRetreatEmbeddingsByVector(vector, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(matches) == 0 {
		return []response_models.RetreatSearchResult{}, nil
	}

	ids := make([]string, 0, len(matches))
	similarityByID := make(map[string]float64, len(matches))
	for _, match := range matches {
		ids = append(ids, match.RetreatID)
		similarityByID[match.RetreatID] = match.Similarity
	}

	retreats, err := r.retreatRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	byID := make(map[string]db_models.Retreat, len(retreats))
	for _, retreat := range retreats {
		byID[retreat.ID.String()] = retreat
	}

	// Preserve the similarity ordering from the vector query.
	results := make([]response_models.RetreatSearchResult, 0, len(ids))
	for _, id := range ids {
		retreat, ok := byID[id]
		if !ok || !retreat.IsPublished {
			continue
		}
		spotsLeft, err := r.spotsLeft(ctx, &retreat)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		results = append(results, response_models.RetreatSearchResult{
			Retreat:    r.toRetreatResponse(retreat, spotsLeft),
			Similarity: similarityByID[id],
		})
	}
	return results, nil
}

func (r *RetreatService) spotsLeft(ctx context.Context, retreat *db_models.Retreat) (int, error) {
	confirmed, err := r.retreatRepo.CountConfirmedGuests(ctx, retreat.ID.String())
	if err != nil {
		return 0, err
	}
	spots := retreat.Capacity - int(confirmed)
	if spots < 0 {
		spots = 0
	}
	return spots, nil
}

func (r *RetreatService) toRetreatResponse(retreat db_models.Retreat, spotsLeft int) response_models.RetreatResponse {
	return response_models.RetreatResponse{
		ID:          retreat.ID.String(),
		Title:       retreat.Title,
		Description: retreat.Description,
		Location:    retreat.Location,
		Categories:  retreat.Categories,
		ImageURL:    retreat.ImageURL,
		PriceMinor:  retreat.PriceMinor,
		Currency:    retreat.Currency,
		Capacity:    retreat.Capacity,
		SpotsLeft:   spotsLeft,
		StartDate:   utils.FormatRFC3339PT(utils.FromUnixSecondsPT(retreat.StartDate)),
		EndDate:     utils.FormatRFC3339PT(utils.FromUnixSecondsPT(retreat.EndDate)),
		HostID:      retreat.HostID.String(),
	}
}
