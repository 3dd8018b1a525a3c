package localcache_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/AnthonyM972321/LuxuryBot/internal/adapters/localcache"
	"github.com/AnthonyM972321/LuxuryBot/internal/domain"
)

func openStore(t *testing.T) *localcache.Store {
	t.Helper()
	s, err := localcache.Open(filepath.Join(t.TempDir(), "cache.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openStore(t)

	st := domain.NewState()
	st.Properties = append(st.Properties, domain.Property{
		ID: "1751000000000", Name: "Loft A", Type: domain.TypeApartment,
		Address: "Nice, France", Bedrooms: 1, Bathrooms: 1, Capacity: 2,
		Status: domain.StatusAvailable, CreatedAt: "2026-08-29T10:00:00Z",
	})
	st.SetGuide("1751000000000", "fr", domain.GuideContent{Welcome: "Bienvenue", Checkout: "11h00"})
	st.AIGeneratedCount = 3
	st.CurrentLanguage = "en"

	s.Save(st)

	got, ok := s.Load()
	if !ok {
		t.Fatalf("expected snapshot to load")
	}
	if !reflect.DeepEqual(got, st) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, st)
	}
}

func TestLoadAbsent(t *testing.T) {
	s := openStore(t)
	if st, ok := s.Load(); ok || st != nil {
		t.Fatalf("expected absent snapshot, got %+v", st)
	}
}

func TestLoadCorruptSnapshotSwallowed(t *testing.T) {
	s := openStore(t)
	if err := s.Set(localcache.SnapshotKey, "{not json"); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}
	if st, ok := s.Load(); ok || st != nil {
		t.Fatalf("corrupt snapshot must read as absent, got %+v", st)
	}
}

func TestSaveOverwritesPreviousSnapshot(t *testing.T) {
	s := openStore(t)

	first := domain.NewState()
	first.AIGeneratedCount = 1
	s.Save(first)

	second := domain.NewState()
	second.AIGeneratedCount = 2
	s.Save(second)

	got, ok := s.Load()
	if !ok || got.AIGeneratedCount != 2 {
		t.Fatalf("expected latest snapshot, got %+v", got)
	}
}

func TestFlags(t *testing.T) {
	s := openStore(t)

	if _, ok := s.Get(localcache.ThemeKey); ok {
		t.Fatalf("theme should be unset")
	}
	if err := s.Set(localcache.ThemeKey, "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok := s.Get(localcache.ThemeKey); !ok || v != "dark" {
		t.Fatalf("got %q %v", v, ok)
	}
	// credential blobs share the same namespace, separate keys
	if err := s.Set("twilio_config", `{"accountSid":"AC1","authToken":"t","phoneNumber":"+33600000000"}`); err != nil {
		t.Fatalf("set blob: %v", err)
	}
	if v, ok := s.Get("twilio_config"); !ok || v == "" {
		t.Fatalf("blob not stored: %q %v", v, ok)
	}
	if err := s.Del(localcache.ThemeKey); err != nil {
		t.Fatalf("del: %v", err)
	}
	if _, ok := s.Get(localcache.ThemeKey); ok {
		t.Fatalf("theme should be deleted")
	}
}
