package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"vibeplan/internal/models/db_models"
)

// PlaceRepository is the PlaceStore capability: it returns every known place
// for a city with the sheet's list fields already split. Scoring happens in
// the service layer, not here.
type PlaceRepository interface {
	FetchByCity(ctx context.Context, city string) ([]db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

// FetchByCity matches the city column case-insensitively as a substring, so
// "ho chi minh" also finds "Ho Chi Minh City".
func (r *placeRepository) FetchByCity(ctx context.Context, city string) ([]db_models.Place, error) {
	var rows []db_models.Location
	err := r.db.WithContext(ctx).
		Where("city ILIKE ?", "%"+city+"%").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	places := make([]db_models.Place, 0, len(rows))
	for _, row := range rows {
		places = append(places, db_models.Place{
			ID:      row.ID.String(),
			City:    row.City,
			Name:    row.Name,
			Address: row.Address,
			Area:    row.Area,
			Type:    row.Type,
			Vibes:   splitListField(row.Vibes),
			Budget:  row.Budget,
			Tags:    splitListField(row.Tags),
			Source:  row.Source,
		})
	}
	return places, nil
}

// splitListField turns a semicolon-joined sheet cell into a clean slice,
// dropping entries that trim to nothing.
func splitListField(field string) []string {
	if field == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(field, ";") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
