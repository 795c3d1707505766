package shared_test

import (
	"reflect"
	"testing"
	"time"

	"geo_i18n/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SEED_FIELDS", "SEED_LANGS", "SEED_WORKERS", "CACHE_TTL_SECONDS", "METRICS_ADDR", "PUSHGATEWAY_URL"} {
		t.Setenv(k, "")
	}
	c := shared.Load()
	if !reflect.DeepEqual(c.SeedFields, []string{"name", "denonym"}) {
		t.Fatalf("fields: %v", c.SeedFields)
	}
	if !reflect.DeepEqual(c.SeedLangs, []string{"de", "fr", "nl", "es"}) {
		t.Fatalf("langs: %v", c.SeedLangs)
	}
	if c.MetricsAddr != ":9100" || c.Pushgateway != "" {
		t.Fatalf("metrics defaults: %+v", c)
	}
	if c.SeedWorkers != 4 || c.CacheTTL != 15*time.Minute {
		t.Fatalf("unexpected config: %+v", c)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SEED_FIELDS", " name , ")
	t.Setenv("SEED_LANGS", "-")
	t.Setenv("SEED_WORKERS", "not-a-number")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("METRICS_ADDR", "127.0.0.1:9200")
	t.Setenv("PUSHGATEWAY_URL", "http://pushgateway:9091")

	c := shared.Load()
	if !reflect.DeepEqual(c.SeedFields, []string{"name"}) {
		t.Fatalf("fields: %v", c.SeedFields)
	}
	if len(c.SeedLangs) != 0 {
		t.Fatalf("langs should be empty: %v", c.SeedLangs)
	}
	if c.MetricsAddr != "127.0.0.1:9200" || c.Pushgateway != "http://pushgateway:9091" {
		t.Fatalf("metrics config not read: %+v", c)
	}
	if c.SeedWorkers != 4 || c.RedisDB != 3 {
		t.Fatalf("unexpected config: %+v", c)
	}
}
