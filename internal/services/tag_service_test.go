package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vibeplan/pkg/utils"
)

type mockTagRepo struct {
	mock.Mock
}

func (m *mockTagRepo) ListVibes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if values := args.Get(0); values != nil {
		return values.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTagRepo) ListInterests(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if values := args.Get(0); values != nil {
		return values.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListTagOptions(t *testing.T) {
	repo := &mockTagRepo{}
	repo.On("ListVibes", mock.Anything).Return([]string{"Active", "Chill"}, nil)
	repo.On("ListInterests", mock.Anything).Return([]string{"Coffee", "Nature"}, nil)

	svc := NewTagService(repo)
	options, err := svc.ListTagOptions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Active", "Chill"}, options.Vibes)
	assert.Equal(t, []string{"Coffee", "Nature"}, options.Interests)
}

func TestListTagOptionsEmptyTableGivesEmptySlices(t *testing.T) {
	repo := &mockTagRepo{}
	repo.On("ListVibes", mock.Anything).Return(nil, nil)
	repo.On("ListInterests", mock.Anything).Return(nil, nil)

	svc := NewTagService(repo)
	options, err := svc.ListTagOptions(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, options.Vibes)
	assert.NotNil(t, options.Interests)
}

func TestListTagOptionsDatabaseError(t *testing.T) {
	repo := &mockTagRepo{}
	repo.On("ListVibes", mock.Anything).Return(nil, assert.AnError)

	svc := NewTagService(repo)
	_, err := svc.ListTagOptions(context.Background())

	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
