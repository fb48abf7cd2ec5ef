package services

import (
	"context"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vibeplan/internal/models/db_models"
	"vibeplan/pkg/utils"
)

type mockEmbeddingRepo struct {
	mock.Mock
}

func (m *mockEmbeddingRepo) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.PlaceEmbedding, error) {
	args := m.Called(ctx, vector, limit)
	if rows := args.Get(0); rows != nil {
		return rows.([]db_models.PlaceEmbedding), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEmbeddingRepo) CreatePlaceEmbedding(ctx context.Context, embedding db_models.PlaceEmbedding) error {
	args := m.Called(ctx, embedding)
	return args.Error(0)
}

func TestSearchPlacesEmptyQueryRejected(t *testing.T) {
	svc := NewSearchService(&mockAIClient{}, &mockEmbeddingRepo{})

	_, err := svc.SearchPlaces(context.Background(), "   ", 5)

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestSearchPlacesEmbeddingFailure(t *testing.T) {
	ai := &mockAIClient{}
	ai.On("GetEmbedding", mock.Anything, "quán cà phê yên tĩnh").Return(pgvector.Vector{}, assert.AnError)

	svc := NewSearchService(ai, &mockEmbeddingRepo{})
	_, err := svc.SearchPlaces(context.Background(), "quán cà phê yên tĩnh", 5)

	assert.ErrorIs(t, err, utils.ErrAIUnavailable)
}

func TestSearchPlacesMapsMatches(t *testing.T) {
	vector := pgvector.NewVector(make([]float32, 4))
	ai := &mockAIClient{}
	ai.On("GetEmbedding", mock.Anything, mock.Anything).Return(vector, nil)

	repo := &mockEmbeddingRepo{}
	repo.On("SearchByVector", mock.Anything, vector, 5).Return([]db_models.PlaceEmbedding{
		{PlaceID: "p1", City: "Đà Lạt", Name: "Hồ Xuân Hương", Area: "Trung tâm", Tags: []string{"Nature"}},
	}, nil)

	svc := NewSearchService(ai, repo)
	places, err := svc.SearchPlaces(context.Background(), "hồ đẹp", 5)

	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "p1", places[0].ID)
	assert.Equal(t, "Hồ Xuân Hương", places[0].Name)
	assert.Equal(t, []string{"Nature"}, places[0].Tags)
}

func TestSearchPlacesNoMatches(t *testing.T) {
	ai := &mockAIClient{}
	ai.On("GetEmbedding", mock.Anything, mock.Anything).Return(pgvector.NewVector(make([]float32, 4)), nil)

	repo := &mockEmbeddingRepo{}
	repo.On("SearchByVector", mock.Anything, mock.Anything, mock.Anything).Return([]db_models.PlaceEmbedding{}, nil)

	svc := NewSearchService(ai, repo)
	places, err := svc.SearchPlaces(context.Background(), "xyz", 3)

	assert.ErrorIs(t, err, utils.ErrPlaceNotFound)
	assert.Empty(t, places)
}
