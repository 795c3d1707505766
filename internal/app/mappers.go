package app

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"geo_i18n/internal/domain"
	"geo_i18n/internal/fixtures"
)

/********** filters **********/

// NewFilter turns configured field names and language codes into the
// membership sets fixtures.Create expects. Language codes are canonicalised
// ("DE" -> "de"); codes that do not parse are dropped with a warning.
func NewFilter(fields, langs []string) (fixtures.Set, fixtures.Set) {
	fs := fixtures.NewSet()
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		switch f {
		case "":
			continue
		case domain.FieldName, domain.FieldDenonym:
		default:
			log.Warn().Str("field", f).Msg("filter field is not translatable; it will match nothing")
		}
		fs[f] = struct{}{}
	}

	ls := fixtures.NewSet()
	for _, l := range langs {
		code, ok := canonicalLang(l)
		if !ok {
			log.Warn().Str("lang", l).Msg("dropping unparseable language code")
			continue
		}
		ls[code] = struct{}{}
	}
	return fs, ls
}

func canonicalLang(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	return tag.String(), true
}

/********** cache keys **********/

func placeKey(kind domain.Kind, name, lang string) string {
	return fmt.Sprintf("place:%s:%s:%s", kind, name, strings.ToLower(lang))
}

// placePattern matches placeKey for every language. Glob metacharacters in
// the name are escaped so only that place matches.
func placePattern(kind domain.Kind, name string) string {
	return fmt.Sprintf("place:%s:%s:*", kind, globEscaper.Replace(name))
}

var globEscaper = strings.NewReplacer(`\`, `\\`, "*", `\*`, "?", `\?`, "[", `\[`, "]", `\]`)

func placesKey(q domain.PlacesQuery) string {
	return fmt.Sprintf("places:%s:%s:%d", q.Kind, strings.ToLower(q.Lang), q.Limit)
}

func placesPattern(kind domain.Kind) string {
	return fmt.Sprintf("places:%s:*", kind)
}
