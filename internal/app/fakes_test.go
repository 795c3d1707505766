package app_test

import (
	"context"
	"path"

	"geo_i18n/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	nextID       int64
	places       []domain.Place
	translations []domain.PlaceI18n

	pv    domain.PlaceView
	page  domain.PlacesPage
	reads int
	err   error
}

func (f *fakeRepo) CreatePlace(ctx context.Context, p domain.Place) (domain.Place, error) {
	if f.err != nil {
		return domain.Place{}, f.err
	}
	f.nextID++
	p.ID = f.nextID
	f.places = append(f.places, p)
	return p, nil
}

func (f *fakeRepo) CreateTranslation(ctx context.Context, t domain.PlaceI18n) error {
	f.translations = append(f.translations, t)
	return nil
}

func (f *fakeRepo) GetPlace(ctx context.Context, kind domain.Kind, name, lang string) (domain.PlaceView, error) {
	f.reads++
	if f.err != nil {
		return domain.PlaceView{}, f.err
	}
	return f.pv, nil
}

func (f *fakeRepo) ListPlaces(ctx context.Context, q domain.PlacesQuery) (domain.PlacesPage, error) {
	f.reads++
	return f.page, f.err
}

type fakeCache struct {
	store   map[string]any
	deleted []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.PlaceView:
		*d = v.(domain.PlaceView)
	case *domain.PlacesPage:
		*d = v.(domain.PlacesPage)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.deleted = append(c.deleted, key)
	delete(c.store, key)
	return nil
}

func (c *fakeCache) DelMatch(ctx context.Context, pattern string) error {
	for k := range c.store {
		if ok, _ := path.Match(pattern, k); ok {
			c.deleted = append(c.deleted, k)
			delete(c.store, k)
		}
	}
	return nil
}
