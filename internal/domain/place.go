package domain

import "errors"

var ErrNotFound = errors.New("not found")

type Kind string

const (
	KindRegion  Kind = "region"
	KindCountry Kind = "country"
	KindCity    Kind = "city"
)

// Kinds lists every kind in seeding order.
var Kinds = []Kind{KindRegion, KindCountry, KindCity}

// ParseKind accepts both the singular kind and its plural route segment.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "region", "regions":
		return KindRegion, true
	case "country", "countries":
		return KindCountry, true
	case "city", "cities":
		return KindCity, true
	}
	return "", false
}

// Translatable field names.
const (
	FieldName    = "name"
	FieldDenonym = "denonym"
)

type Place struct {
	ID      int64
	Kind    Kind
	Name    string
	Denonym string
}

type PlaceI18n struct {
	PlaceID int64
	Field   string // name|denonym
	Lang    string
	Text    string
}
