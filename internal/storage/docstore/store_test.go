package docstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"

	"github.com/AnthonyM972321/LuxuryBot/internal/domain"
	"github.com/AnthonyM972321/LuxuryBot/internal/storage/docstore"
)

func newStore(t *testing.T) (*docstore.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return docstore.New(mr.Addr(), "", 0, zerolog.Nop()), mr
}

func TestCreateAndListProperties(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	p := domain.Property{
		Name: "Loft A", Type: domain.TypeApartment, Address: "Nice, France",
		Bedrooms: 1, Bathrooms: 1, Capacity: 2, Status: domain.StatusAvailable,
		CreatedAt: "2026-08-29T10:00:00Z",
	}
	id, err := s.CreateProperty(ctx, "uid-1", p)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" {
		t.Fatalf("expected server-assigned id")
	}

	id2, err := s.CreateProperty(ctx, "uid-1", p)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id2 == id {
		t.Fatalf("ids must be unique, got %s twice", id)
	}

	got, err := s.ListProperties(ctx, "uid-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(got))
	}
	for _, g := range got {
		if g.Name != "Loft A" || (g.ID != id && g.ID != id2) {
			t.Fatalf("unexpected record %+v", g)
		}
	}

	// collections are per-user
	other, err := s.ListProperties(ctx, "uid-2")
	if err != nil {
		t.Fatalf("list other user: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("uid-2 should have no properties, got %d", len(other))
	}
}

func TestGuideUpsertReplacesSameKey(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	g := domain.Guide{
		PropertyID: "p1", Language: "fr",
		Content: domain.GuideContent{Welcome: "v1"},
	}
	if err := s.CreateOrReplaceGuide(ctx, "uid-1", g); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	g.Content.Welcome = "v2"
	if err := s.CreateOrReplaceGuide(ctx, "uid-1", g); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	// a second language is a distinct record
	en := domain.Guide{PropertyID: "p1", Language: "en", Content: domain.GuideContent{Welcome: "hello"}}
	if err := s.CreateOrReplaceGuide(ctx, "uid-1", en); err != nil {
		t.Fatalf("upsert en: %v", err)
	}

	got, err := s.ListGuides(ctx, "uid-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 guides, got %d", len(got))
	}
	byLang := map[string]domain.Guide{}
	for _, g := range got {
		byLang[g.Language] = g
	}
	if byLang["fr"].Content.Welcome != "v2" {
		t.Fatalf("fr guide not replaced: %+v", byLang["fr"])
	}
	if byLang["en"].Content.Welcome != "hello" {
		t.Fatalf("en guide wrong: %+v", byLang["en"])
	}
	if byLang["fr"].UpdatedAt == "" {
		t.Fatalf("expected server timestamp on guide")
	}
}

func TestBackendDownIsRemoteUnavailable(t *testing.T) {
	s, mr := newStore(t)
	mr.Close()

	_, err := s.CreateProperty(context.Background(), "uid-1", domain.Property{Name: "x"})
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Fatalf("expected ErrRemoteUnavailable, got %v", err)
	}
	_, err = s.ListProperties(context.Background(), "uid-1")
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Fatalf("expected ErrRemoteUnavailable, got %v", err)
	}
}
