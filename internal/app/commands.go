package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"geo_i18n/internal/adapters/observability"
	"geo_i18n/internal/domain"
	"geo_i18n/internal/fixtures"
)

type SeedService struct {
	repo  domain.PlaceRepository
	cache domain.Cache
}

func NewSeedService(r domain.PlaceRepository, cache domain.Cache) *SeedService {
	return &SeedService{repo: r, cache: cache}
}

// SeedPlace persists the fixture record called name, with the overrides the
// filter permits, and evicts cached views of it.
func (s *SeedService) SeedPlace(ctx context.Context, kind domain.Kind, name string, fields, langs fixtures.Set) (domain.Place, error) {
	list := fixtures.List(kind)
	if list == nil {
		return domain.Place{}, fmt.Errorf("unknown kind %q", kind)
	}

	p, err := fixtures.Create(ctx, recorder{Creator: s.repo, kind: kind}, kind, list, name, fields, langs)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		observability.ObserveSeed(string(kind), "not_found")
		return domain.Place{}, err
	case err != nil:
		observability.ObserveSeed(string(kind), "error")
		return p, err
	}
	observability.ObserveSeed(string(kind), "ok")

	if s.cache != nil {
		s.invalidatePlace(ctx, kind, p.Name)
	}
	return p, nil
}

// SeedAll seeds every record of kind in list order and stops at the first error.
func (s *SeedService) SeedAll(ctx context.Context, kind domain.Kind, fields, langs fixtures.Set) ([]domain.Place, error) {
	list := fixtures.List(kind)
	out := make([]domain.Place, 0, len(list))
	for _, rec := range list {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		p, err := s.SeedPlace(ctx, kind, rec.Name, fields, langs)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	log.Info().Str("kind", string(kind)).Int("places", len(out)).Msg("seeded fixture list")
	return out, nil
}

// invalidatePlace drops the place's views in every language, including ones
// outside the seed filter that fall back to base fields, and all list pages
// of the kind.
func (s *SeedService) invalidatePlace(ctx context.Context, kind domain.Kind, name string) {
	if err := s.cache.DelMatch(ctx, placePattern(kind, name)); err != nil {
		log.Warn().Err(err).Str("kind", string(kind)).Str("name", name).Msg("place cache eviction failed")
	}
	if err := s.cache.DelMatch(ctx, placesPattern(kind)); err != nil {
		log.Warn().Err(err).Str("kind", string(kind)).Msg("list cache eviction failed")
	}
}

// recorder counts persisted translations per kind and language.
type recorder struct {
	fixtures.Creator
	kind domain.Kind
}

func (r recorder) CreateTranslation(ctx context.Context, t domain.PlaceI18n) error {
	if err := r.Creator.CreateTranslation(ctx, t); err != nil {
		return err
	}
	observability.ObserveSeedTranslation(string(r.kind), t.Lang)
	return nil
}
