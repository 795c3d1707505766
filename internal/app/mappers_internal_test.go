package app

import (
	"path"
	"testing"
)

func TestPlacePattern_EscapesGlob(t *testing.T) {
	cases := []struct {
		name, key string
		want      bool
	}{
		{"Europe", "place:region:Europe:en", true},
		{"Europe", "place:region:Europe:pt-BR", true},
		{"Europe", "place:region:Europe Minor:en", false},
		{"A*b", "place:region:A*b:en", true},
		{"A*b", "place:region:Axxb:en", false},
		{"[x]", "place:region:[x]:de", true},
		{"[x]", "place:region:x:de", false},
	}
	for _, tc := range cases {
		got, err := path.Match(placePattern("region", tc.name), tc.key)
		if err != nil {
			t.Fatalf("%q: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("placePattern(%q) vs %q = %v, want %v", tc.name, tc.key, got, tc.want)
		}
	}
}
