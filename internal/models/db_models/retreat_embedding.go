package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type RetreatEmbedding struct {
	RetreatID   string `gorm:"primaryKey;column:retreat_id"`
	Title       string
	Description string
	Location    string
	Categories  pq.StringArray  `gorm:"type:text[]"`
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`

	// Populated by the similarity query only, never stored.
	Similarity float64 `gorm:"->;-:migration"`
}
