package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"retreatly/internal/models/db_models"
)

type IRetreatEmbeddingRepository interface {
	GetListOfRetreatEmbeddingsByVector(vector pgvector.Vector, limit int) ([]db_models.RetreatEmbedding, error)
	CreateRetreatEmbedding(embedding db_models.RetreatEmbedding) error
}

type RetreatEmbeddingRepository struct {
	db *gorm.DB
}

func NewRetreatEmbeddingRepository(db *gorm.DB) IRetreatEmbeddingRepository {
	return &RetreatEmbeddingRepository{
		db: db,
	}
}

func (r *RetreatEmbeddingRepository) GetListOfRetreatEmbeddingsByVector(vector pgvector.Vector, limit int) ([]db_models.RetreatEmbedding, error) {
	var results []db_models.RetreatEmbedding

	if limit <= 0 || limit > 15 {
		limit = 15
	}

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM retreat_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7  -- Only return results with >70% similarity
        ORDER BY embedding <=> $1  -- Cosine distance (closer to 0 is better)
        LIMIT $2
    `

	err := r.db.Raw(query, vecStr, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *RetreatEmbeddingRepository) CreateRetreatEmbedding(embedding db_models.RetreatEmbedding) error {
	return r.db.Create(&embedding).Error
}
