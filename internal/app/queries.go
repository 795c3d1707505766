package app

import (
	"context"
	"time"

	"geo_i18n/internal/domain"
)

type QueryService struct {
	repo     domain.PlaceRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.PlaceRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) GetPlace(ctx context.Context, kind domain.Kind, name, lang string) (domain.PlaceView, error) {
	key := placeKey(kind, name, lang)
	var pv domain.PlaceView
	if ok, _ := s.cache.Get(ctx, key, &pv); ok {
		return pv, nil
	}
	p, err := s.repo.GetPlace(ctx, kind, name, lang)
	if err != nil {
		return domain.PlaceView{}, err
	}
	_ = s.cache.Set(ctx, key, p, int(s.cacheTTL.Seconds()))
	return p, nil
}

func (s *QueryService) ListPlaces(ctx context.Context, q domain.PlacesQuery) (domain.PlacesPage, error) {
	key := placesKey(q)
	var out domain.PlacesPage
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	page, err := s.repo.ListPlaces(ctx, q)
	if err != nil {
		return domain.PlacesPage{}, err
	}

	// copy so later repo mutations cannot leak into the cached value
	cp := domain.PlacesPage{}
	if n := len(page.Items); n > 0 {
		cp.Items = make([]domain.PlaceView, n)
		copy(cp.Items, page.Items)
	}
	_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	return cp, nil
}
