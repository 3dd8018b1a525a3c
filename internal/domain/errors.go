package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRemoteUnavailable marks any backend failure of the remote store.
	// Callers treat it as "operate degraded", never as fatal.
	ErrRemoteUnavailable = errors.New("remote store unavailable")

	// ErrCacheCorrupt marks an unreadable local snapshot. It is logged and
	// swallowed; the app proceeds with a blank state.
	ErrCacheCorrupt = errors.New("cache snapshot corrupt")

	ErrNotFound      = errors.New("not found")
	ErrSessionClosed = errors.New("session closed")

	// ErrNoPropertySelected is returned by operations that require an active
	// property (guide editing, content generation).
	ErrNoPropertySelected = errors.New("no property selected")
)

// ValidationError reports bad form input. It never reaches storage; the
// offending value is corrected or rejected locally.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AuthCategory is the coarse classification of auth service failures.
type AuthCategory string

const (
	AuthInvalidEmail     AuthCategory = "invalid-email"
	AuthWrongCredentials AuthCategory = "wrong-credentials"
	AuthUserNotFound     AuthCategory = "user-not-found"
	AuthEmailInUse       AuthCategory = "email-in-use"
	AuthWeakPassword     AuthCategory = "weak-password"
	AuthNetworkFailure   AuthCategory = "network-failure"
	AuthRateLimited      AuthCategory = "rate-limited"
)

// authMessages are the fixed user-facing messages, one per category.
var authMessages = map[AuthCategory]string{
	AuthInvalidEmail:     "Email invalide",
	AuthWrongCredentials: "Mot de passe incorrect",
	AuthUserNotFound:     "Utilisateur non trouvé",
	AuthEmailInUse:       "Cet email est déjà utilisé",
	AuthWeakPassword:     "Mot de passe trop faible",
	AuthNetworkFailure:   "Erreur réseau - Vérifiez votre connexion",
	AuthRateLimited:      "Trop de tentatives - Réessayez plus tard",
}

// AuthError is a categorized auth service failure, shown to the user as-is.
type AuthError struct {
	Category AuthCategory
	Message  string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth %s: %s", e.Category, e.Message)
}

func NewAuthError(cat AuthCategory) *AuthError {
	msg, ok := authMessages[cat]
	if !ok {
		msg = "Erreur de connexion"
	}
	return &AuthError{Category: cat, Message: msg}
}
