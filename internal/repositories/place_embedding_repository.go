package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"vibeplan/internal/models/db_models"
)

type IPlaceEmbeddingRepository interface {
	SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.PlaceEmbedding, error)
	CreatePlaceEmbedding(ctx context.Context, embedding db_models.PlaceEmbedding) error
}

type PlaceEmbeddingRepository struct {
	db *gorm.DB
}

func NewPlaceEmbeddingRepository(db *gorm.DB) IPlaceEmbeddingRepository {
	return &PlaceEmbeddingRepository{db: db}
}

func (p *PlaceEmbeddingRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.PlaceEmbedding, error) {
	if limit <= 0 {
		limit = 15
	}

	var results []db_models.PlaceEmbedding

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM place_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7  -- Only return results with >70% similarity
        ORDER BY embedding <=> $1  -- Cosine distance (closer to 0 is better)
        LIMIT $2
    `

	err := p.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (p *PlaceEmbeddingRepository) CreatePlaceEmbedding(ctx context.Context, embedding db_models.PlaceEmbedding) error {
	return p.db.WithContext(ctx).Create(&embedding).Error
}
