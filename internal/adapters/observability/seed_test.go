package observability_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"geo_i18n/internal/adapters/observability"
)

func TestSeedTotals(t *testing.T) {
	before, beforeTr, err := observability.SeedTotals(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("SeedTotals: %v", err)
	}

	observability.ObserveSeed("city", "ok")
	observability.ObserveSeed("region", "ok")
	observability.ObserveSeed("region", "not_found")
	observability.ObserveSeedTranslation("city", "de")
	observability.ObserveSeedTranslation("city", "fr")

	after, afterTr, err := observability.SeedTotals(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("SeedTotals: %v", err)
	}
	if got := after["ok"] - before["ok"]; got != 2 {
		t.Fatalf("ok delta = %v, want 2", got)
	}
	if got := after["not_found"] - before["not_found"]; got != 1 {
		t.Fatalf("not_found delta = %v, want 1", got)
	}
	if got := afterTr - beforeTr; got != 2 {
		t.Fatalf("translations delta = %v, want 2", got)
	}
}

func TestPushSeed(t *testing.T) {
	var method, path, body string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	observability.ObserveSeed("country", "ok")
	if err := observability.PushSeed(context.Background(), ts.URL, "geo_seeder"); err != nil {
		t.Fatalf("PushSeed: %v", err)
	}
	if method != http.MethodPut || path != "/metrics/job/geo_seeder" {
		t.Fatalf("unexpected request %s %s", method, path)
	}
	if !strings.Contains(body, "geo_seed_places_total") {
		t.Fatalf("pushed body lacks seed counter")
	}
}

func TestPushSeed_GatewayError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	if err := observability.PushSeed(context.Background(), ts.URL, "geo_seeder"); err == nil {
		t.Fatalf("expected error from failing gateway")
	}
}
