//go:build integration

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/AnthonyM972321/LuxuryBot/internal/domain"
	mysqlrepo "github.com/AnthonyM972321/LuxuryBot/internal/storage/mysql"
)

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=luxurybot",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/luxurybot?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC", hostPort)

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

	if _, err := db.Exec(mysqlrepo.Schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

func TestRepo_MySQL_CreateListAndGuideUpsert(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	p := domain.Property{
		Name: "Loft A", Type: domain.TypeApartment, Address: "Nice, France",
		Bedrooms: 1, Bathrooms: 1, Capacity: 2, Status: domain.StatusAvailable,
		CreatedAt: "2026-08-29T10:00:00Z",
	}
	id, err := repo.CreateProperty(ctx, "uid-1", p)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" || strings.ContainsAny(id, "abcdefghijklmnopqrstuvwxyz-") {
		t.Fatalf("expected numeric string id, got %q", id)
	}

	got, err := repo.ListProperties(ctx, "uid-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != id || got[0].Name != "Loft A" || got[0].CreatedAt != p.CreatedAt {
		t.Fatalf("unexpected listing: %+v", got)
	}

	// upsert same (property, lang) twice: second write replaces the first
	g := domain.Guide{PropertyID: id, Language: "fr", Content: domain.GuideContent{Welcome: "v1"}}
	if err := repo.CreateOrReplaceGuide(ctx, "uid-1", g); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	g.Content.Welcome = "v2"
	if err := repo.CreateOrReplaceGuide(ctx, "uid-1", g); err != nil {
		t.Fatalf("upsert again: %v", err)
	}
	if err := repo.CreateOrReplaceGuide(ctx, "uid-1", domain.Guide{
		PropertyID: id, Language: "en", Content: domain.GuideContent{Welcome: "hello"},
	}); err != nil {
		t.Fatalf("upsert en: %v", err)
	}

	guides, err := repo.ListGuides(ctx, "uid-1")
	if err != nil {
		t.Fatalf("list guides: %v", err)
	}
	if len(guides) != 2 {
		t.Fatalf("expected 2 guide rows, got %d", len(guides))
	}
	byLang := map[string]domain.Guide{}
	for _, g := range guides {
		byLang[g.Language] = g
	}
	if byLang["fr"].Content.Welcome != "v2" || byLang["en"].Content.Welcome != "hello" {
		t.Fatalf("unexpected guides: %+v", byLang)
	}
	if byLang["fr"].UpdatedAt == "" {
		t.Fatalf("expected server timestamp")
	}
}
