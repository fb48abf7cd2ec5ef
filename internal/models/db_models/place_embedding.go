package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type PlaceEmbedding struct {
	PlaceID   string `gorm:"primaryKey;column:place_id"`
	City      string
	Name      string
	Area      string
	Tags      pq.StringArray  `gorm:"type:text[]"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}

func (PlaceEmbedding) TableName() string {
	return "place_embeddings"
}
