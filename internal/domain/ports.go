package domain

import "context"

type PlaceRepository interface {
	// Write paths
	CreatePlace(ctx context.Context, p Place) (Place, error)
	CreateTranslation(ctx context.Context, t PlaceI18n) error

	// Read paths
	GetPlace(ctx context.Context, kind Kind, name, lang string) (PlaceView, error)
	ListPlaces(ctx context.Context, q PlacesQuery) (PlacesPage, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
	DelMatch(ctx context.Context, pattern string) error
}

// Read models & queries
type PlaceView struct {
	ID       int64  `json:"id"`
	Kind     Kind   `json:"kind"`
	Name     string `json:"name"`
	Denonym  string `json:"denonym"`
	Language string `json:"language"`
	// Translated lists the fields served from a translation rather than the base record.
	Translated []string `json:"translated,omitempty"`
}

type PlacesQuery struct {
	Kind  Kind
	Lang  string
	Limit int
}

type PlacesPage struct {
	Items []PlaceView `json:"items"`
}
