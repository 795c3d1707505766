package fixtures

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"geo_i18n/internal/domain"
)

// Creator is the slice of domain.PlaceRepository that seeding needs.
type Creator interface {
	CreatePlace(ctx context.Context, p domain.Place) (domain.Place, error)
	CreateTranslation(ctx context.Context, t domain.PlaceI18n) error
}

// Set is a membership set of field names or language codes.
type Set map[string]struct{}

func NewSet(vals ...string) Set {
	s := make(Set, len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Find returns the first record in list whose Name equals name.
func Find(list []Record, name string) (Record, bool) {
	for _, r := range list {
		if r.Name == name {
			return r, true
		}
	}
	return Record{}, false
}

// Create persists the record called name from list as a place of the given
// kind, then persists the record's overrides whose field is in fields and
// whose language is in langs. Overrides are written in record order.
func Create(ctx context.Context, repo Creator, kind domain.Kind, list []Record, name string, fields, langs Set) (domain.Place, error) {
	rec, ok := Find(list, name)
	if !ok {
		return domain.Place{}, fmt.Errorf("fixtures: %s %q: %w", kind, name, domain.ErrNotFound)
	}

	p, err := repo.CreatePlace(ctx, domain.Place{Kind: kind, Name: rec.Name, Denonym: rec.Denonym})
	if err != nil {
		return domain.Place{}, fmt.Errorf("create %s %q: %w", kind, name, err)
	}

	n := 0
	for _, tr := range rec.Translations {
		if !fields.Has(tr.Field) || !langs.Has(tr.Lang) {
			continue
		}
		if err := repo.CreateTranslation(ctx, domain.PlaceI18n{
			PlaceID: p.ID,
			Field:   tr.Field,
			Lang:    tr.Lang,
			Text:    tr.Text,
		}); err != nil {
			return p, fmt.Errorf("create %s %q translation %s/%s: %w", kind, name, tr.Field, tr.Lang, err)
		}
		n++
	}

	log.Debug().
		Str("kind", string(kind)).
		Str("name", rec.Name).
		Int64("id", p.ID).
		Int("translations", n).
		Msg("fixture created")
	return p, nil
}
