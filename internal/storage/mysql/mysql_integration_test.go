//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"geo_i18n/internal/domain"
	"geo_i18n/internal/fixtures"
	mysqlrepo "geo_i18n/internal/storage/mysql"
)

// migrationsDir honours MIGRATIONS_DIR and falls back to the repo's own migrations.
func migrationsDir(t *testing.T) string {
	t.Helper()
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return filepath.Join("..", "..", "..", "migrations")
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir(t)

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir %s: %v", dir, err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("dockertest: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=geo",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Skipf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/geo?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

func TestRepo_MySQL_SeedAndQuery(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	p, err := fixtures.Create(ctx, repo, domain.KindRegion, fixtures.Regions, "Europe",
		fixtures.NewSet("name"), fixtures.NewSet("de"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("expected row id, got %+v", p)
	}

	// Seeding twice keeps the same row.
	again, err := fixtures.Create(ctx, repo, domain.KindRegion, fixtures.Regions, "Europe",
		fixtures.NewSet("name"), fixtures.NewSet("de"))
	if err != nil {
		t.Fatalf("Create again: %v", err)
	}
	if again.ID != p.ID {
		t.Fatalf("re-seed changed id: %d -> %d", p.ID, again.ID)
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM place_i18n WHERE place_id = ?", p.ID).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("want 1 translation row, got %d", n)
	}

	de, err := repo.GetPlace(ctx, domain.KindRegion, "Europe", "de")
	if err != nil {
		t.Fatalf("GetPlace de: %v", err)
	}
	if de.Name != "Europa" || de.Denonym != "European" || de.Language != "de" {
		t.Fatalf("unexpected de view: %+v", de)
	}

	fr, err := repo.GetPlace(ctx, domain.KindRegion, "Europe", "fr")
	if err != nil {
		t.Fatalf("GetPlace fr: %v", err)
	}
	if fr.Name != "Europe" || len(fr.Translated) != 0 {
		t.Fatalf("fr should fall back to base: %+v", fr)
	}

	if _, err := repo.GetPlace(ctx, domain.KindRegion, "Atlantis", "de"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestRepo_MySQL_ListPlaces(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	all := fixtures.NewSet(domain.FieldName, domain.FieldDenonym)
	for _, name := range []string{"Germany", "France", "Japan"} {
		if _, err := fixtures.Create(ctx, repo, domain.KindCountry, fixtures.Countries, name, all, fixtures.NewSet("de")); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	page, err := repo.ListPlaces(ctx, domain.PlacesQuery{Kind: domain.KindCountry, Lang: "de", Limit: 10})
	if err != nil {
		t.Fatalf("ListPlaces: %v", err)
	}
	if len(page.Items) != 3 {
		t.Fatalf("want 3 items, got %+v", page.Items)
	}
	// ordered by base name: France, Germany, Japan
	want := []string{"Frankreich", "Deutschland", "Japan"}
	for i, w := range want {
		if page.Items[i].Name != w {
			t.Fatalf("item %d = %q, want %q", i, page.Items[i].Name, w)
		}
	}
	if page.Items[1].Denonym != "Deutsch" {
		t.Fatalf("want translated denonym, got %+v", page.Items[1])
	}
}
