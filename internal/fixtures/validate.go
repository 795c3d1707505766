package fixtures

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"geo_i18n/internal/domain"
)

// Validate checks a fixture list: non-empty unique names, overrides that
// target an existing field, and well-formed language codes. All problems
// are reported together.
func Validate(list []Record) error {
	var errs []error
	seen := make(map[string]struct{}, len(list))
	for i, r := range list {
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("record %d: empty name", i))
		} else if _, dup := seen[r.Name]; dup {
			errs = append(errs, fmt.Errorf("record %d: duplicate name %q", i, r.Name))
		}
		seen[r.Name] = struct{}{}

		for _, tr := range r.Translations {
			switch tr.Field {
			case domain.FieldName, domain.FieldDenonym:
			default:
				errs = append(errs, fmt.Errorf("%q: unknown field %q", r.Name, tr.Field))
			}
			if _, err := language.Parse(tr.Lang); err != nil {
				errs = append(errs, fmt.Errorf("%q: language %q: %w", r.Name, tr.Lang, err))
			}
		}
	}
	return errors.Join(errs...)
}
