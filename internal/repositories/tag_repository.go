package repositories

import (
	"context"

	"gorm.io/gorm"
)

// TagRepositoryInterface lists the distinct vibe and interest values present
// in the locations table, for the client's form pickers.
type TagRepositoryInterface interface {
	ListVibes(ctx context.Context) ([]string, error)
	ListInterests(ctx context.Context) ([]string, error)
}

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepositoryInterface {
	return &TagRepository{db: db}
}

func (t *TagRepository) ListVibes(ctx context.Context) ([]string, error) {
	return t.distinctListValues(ctx, "vibes")
}

func (t *TagRepository) ListInterests(ctx context.Context) ([]string, error) {
	return t.distinctListValues(ctx, "tags")
}

// distinctListValues unnests a semicolon-joined column into its distinct
// trimmed values. column is always one of our own identifiers, never user
// input.
func (t *TagRepository) distinctListValues(ctx context.Context, column string) ([]string, error) {
	query := `
        SELECT DISTINCT trim(v) AS value
        FROM locations, unnest(string_to_array(` + column + `, ';')) AS v
        WHERE trim(v) <> ''
        ORDER BY value
    `

	var values []string
	if err := t.db.WithContext(ctx).Raw(query).Scan(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}
