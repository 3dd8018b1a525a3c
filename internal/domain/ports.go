package domain

import "context"

// Identity is the authenticated user as reported by the auth collaborator.
type Identity struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// RemoteStore is the backend-agnostic surface over the two remote variants
// (document collections, relational shim). Selected once at startup, never
// switched at runtime. Any backend failure surfaces as ErrRemoteUnavailable.
type RemoteStore interface {
	// CreateProperty persists the record and returns the server-assigned ID.
	CreateProperty(ctx context.Context, uid string, p Property) (string, error)
	ListProperties(ctx context.Context, uid string) ([]Property, error)
	// CreateOrReplaceGuide upserts the whole record keyed by (property, language).
	CreateOrReplaceGuide(ctx context.Context, uid string, g Guide) error
	ListGuides(ctx context.Context, uid string) ([]Guide, error)
}

// SnapshotStore is the single-slot persistent cache for the full AppState.
// Load reports absent (not an error) for missing or unreadable snapshots;
// Save is best-effort and must never block or fail the caller.
type SnapshotStore interface {
	Load() (*AppState, bool)
	Save(s *AppState)
}

// FlagStore holds the independent single-value keys that live beside the
// snapshot: theme, first-visit marker, remember-me marker, and the opaque
// per-integration credential blobs.
type FlagStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Del(key string) error
}

type ProfileUpdate struct {
	DisplayName string `json:"displayName,omitempty"`
}

// AuthService is the external auth collaborator. The reconciler only consumes
// the identity and the subscription; everything else is passthrough for the
// HTTP surface. Failures are *AuthError values.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (Identity, error)
	SignUp(ctx context.Context, name, email, password string) (Identity, error)
	SignOut(ctx context.Context) error
	SendPasswordReset(ctx context.Context, email string) error
	UpdateProfile(ctx context.Context, u ProfileUpdate) error
	UpdatePassword(ctx context.Context, newPassword string) error
	// Subscribe registers a session-change callback (nil identity on sign-out)
	// and returns the matching unsubscribe.
	Subscribe(onChange func(*Identity)) (unsubscribe func())
}
