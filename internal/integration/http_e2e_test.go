//go:build integration || !unit

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"

	server "github.com/AnthonyM972321/LuxuryBot/internal/adapters/http_server"
	"github.com/AnthonyM972321/LuxuryBot/internal/adapters/localcache"
	"github.com/AnthonyM972321/LuxuryBot/internal/app"
	"github.com/AnthonyM972321/LuxuryBot/internal/domain"
	"github.com/AnthonyM972321/LuxuryBot/internal/storage/docstore"
)

// scriptedAuth delivers one fixed identity to its subscriber, standing in for
// the external auth service.
type scriptedAuth struct {
	id domain.Identity
	fn func(*domain.Identity)
}

func (a *scriptedAuth) SignIn(context.Context, string, string) (domain.Identity, error) {
	return a.id, nil
}

func (a *scriptedAuth) SignUp(context.Context, string, string, string) (domain.Identity, error) {
	return a.id, nil
}

func (a *scriptedAuth) SignOut(context.Context) error { return nil }

func (a *scriptedAuth) SendPasswordReset(context.Context, string) error { return nil }

func (a *scriptedAuth) UpdateProfile(context.Context, domain.ProfileUpdate) error { return nil }

func (a *scriptedAuth) UpdatePassword(context.Context, string) error { return nil }

func (a *scriptedAuth) Subscribe(onChange func(*domain.Identity)) func() {
	a.fn = onChange
	return func() { a.fn = nil }
}

func (a *scriptedAuth) signIn() { a.fn(&a.id) }

// TestHTTP_EndToEnd_DocstoreBackend runs the whole stack: HTTP surface,
// reconciler, document-store backend and the on-disk cache, then restarts
// from the cache alone to check the snapshot survives.
func TestHTTP_EndToEnd_DocstoreBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	remote := docstore.New(mr.Addr(), "", 0, zerolog.Nop())

	cachePath := filepath.Join(t.TempDir(), "luxurybot.db")
	cache, err := localcache.Open(cachePath, zerolog.Nop())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	auth := &scriptedAuth{id: domain.Identity{UID: "host-1", Email: "host@luxurybot.fr"}}
	rec := app.New(app.Options{
		Remote: remote,
		Cache:  cache,
		Auth:   auth,
		Log:    zerolog.Nop(),
	})
	rec.Start(context.Background())
	auth.signIn()

	srv := server.New()
	srv.MountHandlers(&server.Handlers{R: rec, Auth: auth, Flags: cache})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	// create a property through the API; online, so the id comes from the store
	res, err := http.Post(ts.URL+"/v1/properties", "application/json",
		strings.NewReader(`{"name":"Villa Azur","type":"villa","bedrooms":4}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	var created struct {
		Property domain.Property `json:"property"`
	}
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusCreated || created.Property.ID == "" {
		t.Fatalf("status %d, property %+v", res.StatusCode, created.Property)
	}

	// the record must be in the remote store, not only in memory
	stored, err := remote.ListProperties(context.Background(), "host-1")
	if err != nil {
		t.Fatalf("ListProperties: %v", err)
	}
	if len(stored) != 1 || stored[0].Name != "Villa Azur" {
		t.Fatalf("remote store: %+v", stored)
	}

	// save a guide and read it back through the API
	req, _ := http.NewRequest(http.MethodPut,
		ts.URL+"/v1/properties/"+created.Property.ID+"/guides/fr",
		strings.NewReader(`{"welcome":"Bienvenue !","access":"code 1234"}`))
	req.Header.Set("Content-Type", "application/json")
	if res, err = http.DefaultClient.Do(req); err != nil {
		t.Fatalf("PUT guide: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("save guide status %d", res.StatusCode)
	}

	res, err = http.Get(ts.URL + "/v1/properties/" + created.Property.ID + "/guides/fr")
	if err != nil {
		t.Fatalf("GET guide: %v", err)
	}
	var guide struct {
		Content domain.GuideContent `json:"content"`
	}
	if err := json.NewDecoder(res.Body).Decode(&guide); err != nil {
		t.Fatalf("decode guide: %v", err)
	}
	res.Body.Close()
	if guide.Content.Welcome != "Bienvenue !" {
		t.Fatalf("guide content: %+v", guide.Content)
	}

	// restart from the cache file alone: the snapshot must carry everything
	rec.Close()
	if err := cache.Close(); err != nil {
		t.Fatalf("close cache: %v", err)
	}

	cache2, err := localcache.Open(cachePath, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen cache: %v", err)
	}
	defer cache2.Close()

	rec2 := app.New(app.Options{Cache: cache2, Log: zerolog.Nop()})
	rec2.Start(context.Background())
	defer rec2.Close()

	props := rec2.Properties()
	if len(props) != 1 || props[0].ID != created.Property.ID {
		t.Fatalf("restarted state: %+v", props)
	}
	c, err := rec2.GuideFor(created.Property.ID, "fr")
	if err != nil {
		t.Fatalf("GuideFor: %v", err)
	}
	if c.Welcome != "Bienvenue !" {
		t.Fatalf("restarted guide: %+v", c)
	}
}
