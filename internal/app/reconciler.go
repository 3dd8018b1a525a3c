// Package app owns the canonical in-memory application state and keeps it
// consistent across the remote store, the local snapshot cache, and the HTTP
// surface.
package app

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/AnthonyM972321/LuxuryBot/internal/adapters/observability"
	"github.com/AnthonyM972321/LuxuryBot/internal/domain"
)

// Phase is the reconciler's lifecycle state.
type Phase string

const (
	PhaseUnauthenticated Phase = "unauthenticated"
	PhaseLoadingRemote   Phase = "loading_remote"
	PhaseReadyOnline     Phase = "ready_online"
	PhaseReadyDegraded   Phase = "ready_degraded"
)

type Options struct {
	Remote domain.RemoteStore // nil when no remote backend is configured
	Cache  domain.SnapshotStore
	Auth   domain.AuthService // nil disables session tracking (tests)

	GenerationDelay time.Duration
	ImportStepDelay time.Duration
	Log             zerolog.Logger
}

// Reconciler arbitrates precedence between cache and remote, assigns entity
// identifiers, and fans every mutation out to both stores. All mutations are
// serialized under one mutex: the remote identifier is always obtained (or the
// local fallback synthesized) before the in-memory update, and the full
// snapshot is persisted before the next mutation can start, so concurrent
// callers cannot interleave identifier assignment or race the cache writes.
type Reconciler struct {
	remote      domain.RemoteStore
	cache       domain.SnapshotStore
	auth        domain.AuthService
	gen         *Generator
	importDelay time.Duration
	log         zerolog.Logger

	mu          sync.Mutex
	phase       Phase
	identity    *domain.Identity
	state       *domain.AppState
	lastLocalID int64
	closed      bool
	unsub       func()
}

func New(o Options) *Reconciler {
	return &Reconciler{
		remote:      o.Remote,
		cache:       o.Cache,
		auth:        o.Auth,
		gen:         NewGenerator(o.GenerationDelay),
		importDelay: o.ImportStepDelay,
		log:         o.Log,
		phase:       PhaseUnauthenticated,
		state:       domain.NewState(),
	}
}

// Start loads the cached snapshot synchronously, then begins following
// session changes from the auth collaborator.
func (r *Reconciler) Start(ctx context.Context) {
	r.mu.Lock()
	if st, ok := r.cache.Load(); ok {
		st.RemoteConnected = false
		r.state = st
		r.log.Info().Int("properties", len(st.Properties)).Msg("cached state loaded")
	}
	r.mu.Unlock()

	if r.auth != nil {
		r.unsub = r.auth.Subscribe(func(id *domain.Identity) {
			r.onSessionChange(ctx, id)
		})
	}
}

// Close tears the session down. In-flight remote calls and generations may
// still finish on the wire, but none of them writes to state afterwards.
func (r *Reconciler) Close() {
	if r.unsub != nil {
		r.unsub()
	}
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
}

func (r *Reconciler) onSessionChange(ctx context.Context, id *domain.Identity) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	if id == nil {
		r.identity = nil
		r.phase = PhaseUnauthenticated
		r.state.RemoteConnected = false
		r.mu.Unlock()
		r.log.Info().Msg("session ended")
		return
	}
	r.identity = id
	if r.remote == nil {
		r.phase = PhaseReadyDegraded
		r.state.RemoteConnected = false
		r.mu.Unlock()
		r.log.Info().Str("uid", id.UID).Msg("no remote backend, serving cached state")
		return
	}
	r.phase = PhaseLoadingRemote
	r.mu.Unlock()
	r.loadRemote(ctx, id.UID)
}

// loadRemote fetches both collections and, on success, replaces the
// cache-derived property list and guide map wholesale. Remote is
// authoritative over cache; a failure leaves cache state in place.
func (r *Reconciler) loadRemote(ctx context.Context, uid string) {
	var (
		props  []domain.Property
		guides []domain.Guide
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		props, err = r.remote.ListProperties(gctx, uid)
		return err
	})
	g.Go(func() error {
		var err error
		guides, err = r.remote.ListGuides(gctx, uid)
		return err
	})
	err := g.Wait()

	r.mu.Lock()
	defer r.mu.Unlock()
	// session may have been torn down or switched mid-flight
	if r.closed || r.identity == nil || r.identity.UID != uid {
		return
	}
	if err != nil {
		r.phase = PhaseReadyDegraded
		r.state.RemoteConnected = false
		r.log.Warn().Err(err).Msg("remote load failed, serving cached state")
		return
	}
	if props == nil {
		props = []domain.Property{}
	}
	r.state.Properties = props
	r.state.Guides = map[string]map[string]domain.GuideContent{}
	for _, gd := range guides {
		r.state.SetGuide(gd.PropertyID, gd.Language, gd.Content)
	}
	r.state.RemoteConnected = true
	r.phase = PhaseReadyOnline
	r.persistLocked()
	r.log.Info().Int("properties", len(props)).Int("guides", len(guides)).Msg("remote state loaded")
}

// Refresh retries the remote load. A success flips degraded back to online.
func (r *Reconciler) Refresh(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return domain.ErrSessionClosed
	}
	if r.identity == nil || r.remote == nil {
		r.mu.Unlock()
		return domain.ErrRemoteUnavailable
	}
	uid := r.identity.UID
	r.phase = PhaseLoadingRemote
	r.mu.Unlock()

	r.loadRemote(ctx, uid)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != PhaseReadyOnline {
		return domain.ErrRemoteUnavailable
	}
	return nil
}

// CreateProperty validates and defaults the record, obtains an identifier
// (remote when online, synthesized otherwise), applies the mutation in memory
// and persists the snapshot. A remote failure degrades the session but never
// fails the create.
func (r *Reconciler) CreateProperty(ctx context.Context, p domain.Property) (domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createLocked(ctx, p)
}

func (r *Reconciler) createLocked(ctx context.Context, p domain.Property) (domain.Property, error) {
	if r.closed {
		return domain.Property{}, domain.ErrSessionClosed
	}
	if err := p.Normalize(time.Now()); err != nil {
		return domain.Property{}, err
	}
	if r.phase == PhaseReadyOnline {
		id, err := r.remote.CreateProperty(ctx, r.identity.UID, p)
		if err != nil {
			r.degradeLocked("create property", err)
			p.ID = r.nextLocalIDLocked()
		} else {
			p.ID = id
		}
	} else {
		p.ID = r.nextLocalIDLocked()
	}
	r.state.Properties = append(r.state.Properties, p)
	r.persistLocked()
	r.log.Info().Str("id", p.ID).Str("name", p.Name).Msg("property added")
	return p, nil
}

// SaveGuide overwrites the whole record for one (property, language) pair.
func (r *Reconciler) SaveGuide(ctx context.Context, propertyID, lang string, c domain.GuideContent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return domain.ErrSessionClosed
	}
	if !domain.KnownLanguage(lang) {
		return &domain.ValidationError{Field: "language", Reason: fmt.Sprintf("unsupported language %q", lang)}
	}
	if _, ok := r.state.Property(propertyID); !ok {
		return fmt.Errorf("property %s: %w", propertyID, domain.ErrNotFound)
	}
	if r.phase == PhaseReadyOnline {
		g := domain.Guide{PropertyID: propertyID, Language: lang, Content: c}
		if err := r.remote.CreateOrReplaceGuide(ctx, r.identity.UID, g); err != nil {
			r.degradeLocked("save guide", err)
		}
	}
	r.state.SetGuide(propertyID, lang, c)
	r.persistLocked()
	return nil
}

// GuideFor returns the stored guide for a (property, language) pair, or the
// language's default template with the property name substituted when nothing
// has been saved yet. It also moves the editor selection, like opening the
// guide editor does.
func (r *Reconciler) GuideFor(propertyID, lang string) (domain.GuideContent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return domain.GuideContent{}, domain.ErrSessionClosed
	}
	if !domain.KnownLanguage(lang) {
		return domain.GuideContent{}, &domain.ValidationError{Field: "language", Reason: fmt.Sprintf("unsupported language %q", lang)}
	}
	p, ok := r.state.Property(propertyID)
	if !ok {
		return domain.GuideContent{}, fmt.Errorf("property %s: %w", propertyID, domain.ErrNotFound)
	}
	r.state.CurrentProperty = propertyID
	r.state.CurrentLanguage = lang
	if c, ok := r.state.Guide(propertyID, lang); ok {
		return c, nil
	}
	return domain.DefaultGuide(lang, p.Name), nil
}

// SwitchLanguage changes the active editing language. Stored guide content for
// other languages is never touched.
func (r *Reconciler) SwitchLanguage(lang string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return domain.ErrSessionClosed
	}
	if !domain.KnownLanguage(lang) {
		return &domain.ValidationError{Field: "language", Reason: fmt.Sprintf("unsupported language %q", lang)}
	}
	r.state.CurrentLanguage = lang
	return nil
}

func (r *Reconciler) SelectProperty(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return domain.ErrSessionClosed
	}
	if _, ok := r.state.Property(id); !ok {
		return fmt.Errorf("property %s: %w", id, domain.ErrNotFound)
	}
	r.state.CurrentProperty = id
	return nil
}

// Generate produces the simulated AI content for one guide section after the
// configured delay. The result is returned for the editor, not stored; only
// an explicit save persists guide content.
func (r *Reconciler) Generate(ctx context.Context, propertyID, lang, section string) (string, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return "", domain.ErrSessionClosed
	}
	if propertyID == "" {
		r.mu.Unlock()
		return "", domain.ErrNoPropertySelected
	}
	p, ok := r.state.Property(propertyID)
	if !ok {
		r.mu.Unlock()
		return "", fmt.Errorf("property %s: %w", propertyID, domain.ErrNotFound)
	}
	if !domain.KnownLanguage(lang) {
		r.mu.Unlock()
		return "", &domain.ValidationError{Field: "language", Reason: fmt.Sprintf("unsupported language %q", lang)}
	}
	r.state.CurrentProperty = propertyID
	r.state.CurrentLanguage = lang
	r.mu.Unlock()

	// the simulated delay runs outside the mutation lock
	text, err := r.gen.Generate(ctx, section, p, lang)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return "", domain.ErrSessionClosed
	}
	r.state.AIGeneratedCount++
	observability.ObserveGeneration(section)
	r.persistLocked()
	return text, nil
}

// Properties returns a copy of the property list.
func (r *Reconciler) Properties() []domain.Property {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Property, len(r.state.Properties))
	copy(out, r.state.Properties)
	return out
}

// Snapshot returns a detached copy of the full application state.
func (r *Reconciler) Snapshot() domain.AppState {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := *r.state
	out.Properties = make([]domain.Property, len(r.state.Properties))
	copy(out.Properties, r.state.Properties)
	out.Guides = make(map[string]map[string]domain.GuideContent, len(r.state.Guides))
	for pid, byLang := range r.state.Guides {
		inner := make(map[string]domain.GuideContent, len(byLang))
		for lang, c := range byLang {
			inner[lang] = c
		}
		out.Guides[pid] = inner
	}
	return out
}

// DashboardStats are the counters shown on the dashboard. TotalGuides counts
// properties with at least one guide; UpcomingCheckins is a fixed placeholder.
type DashboardStats struct {
	TotalProperties  int   `json:"totalProperties"`
	TotalGuides      int   `json:"totalGuides"`
	AIGenerated      int   `json:"aiGenerated"`
	UpcomingCheckins int   `json:"upcomingCheckins"`
	RemoteConnected  bool  `json:"remoteConnected"`
	Phase            Phase `json:"phase"`
}

func (r *Reconciler) Dashboard() DashboardStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return DashboardStats{
		TotalProperties:  len(r.state.Properties),
		TotalGuides:      len(r.state.Guides),
		AIGenerated:      r.state.AIGeneratedCount,
		UpcomingCheckins: 3,
		RemoteConnected:  r.state.RemoteConnected,
		Phase:            r.phase,
	}
}

// CurrentPhase reports the current lifecycle state.
func (r *Reconciler) CurrentPhase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// degradeLocked flips online to degraded after a failed remote write. The
// in-memory mutation still proceeds; only synchronization stops until a later
// successful remote call flips connectivity back.
func (r *Reconciler) degradeLocked(op string, err error) {
	r.phase = PhaseReadyDegraded
	r.state.RemoteConnected = false
	r.log.Warn().Str("op", op).Err(err).Msg("remote write failed, continuing degraded")
}

func (r *Reconciler) persistLocked() {
	r.cache.Save(r.state)
}

// nextLocalIDLocked synthesizes a clock-derived identifier, strictly
// increasing within the session even when the clock does not move.
func (r *Reconciler) nextLocalIDLocked() string {
	now := time.Now().UnixMilli()
	if now <= r.lastLocalID {
		now = r.lastLocalID + 1
	}
	r.lastLocalID = now
	return strconv.FormatInt(now, 10)
}
