package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/AnthonyM972321/LuxuryBot/internal/adapters/localcache"
	"github.com/AnthonyM972321/LuxuryBot/internal/app"
	"github.com/AnthonyM972321/LuxuryBot/internal/domain"
)

type Handlers struct {
	R     *app.Reconciler
	Auth  domain.AuthService
	Flags domain.FlagStore
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// integrationFlags maps the public integration name to its credential key.
// Anything outside this list is rejected.
var integrationFlags = map[string]string{
	"openai":   "openai_api_key",
	"twilio":   "twilio_config",
	"vapi":     "vapi_api_key",
	"sendgrid": "sendgrid_api_key",
	"stripe":   "stripe_api_key",
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.mux.Post("/v1/auth/login", h.login)
	s.mux.Post("/v1/auth/register", h.register)
	s.mux.Post("/v1/auth/logout", h.logout)
	s.mux.Post("/v1/auth/reset", h.resetPassword)
	s.mux.Put("/v1/auth/profile", h.updateProfile)
	s.mux.Put("/v1/auth/password", h.updatePassword)

	s.mux.Get("/v1/properties", h.listProperties)
	s.mux.Post("/v1/properties", h.createProperty)
	s.mux.Post("/v1/properties/import", h.importProperty)
	s.mux.Get("/v1/properties/{id}/guides/{lang}", h.getGuide)
	s.mux.Put("/v1/properties/{id}/guides/{lang}", h.saveGuide)
	s.mux.Post("/v1/properties/{id}/guides/{lang}/generate/{section}", h.generate)

	s.mux.Get("/v1/dashboard", h.dashboard)
	s.mux.Get("/v1/state", h.state)
	s.mux.Post("/v1/state/refresh", h.refresh)

	s.mux.Get("/v1/settings/onboarding", h.onboarding)
	s.mux.Get("/v1/settings/theme", h.getTheme)
	s.mux.Put("/v1/settings/theme", h.setTheme)
	s.mux.Get("/v1/settings/integrations/{name}", h.getIntegration)
	s.mux.Put("/v1/settings/integrations/{name}", h.setIntegration)
	s.mux.Delete("/v1/settings/integrations/{name}", h.delIntegration)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "request body must be valid JSON")
		return false
	}
	return true
}

// writeDomainError maps store and validation failures onto HTTP statuses. Auth
// failures carry their own user-facing message unchanged.
func writeDomainError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	var aerr *domain.AuthError
	switch {
	case errors.As(err, &aerr):
		writeProblem(w, authStatus(aerr.Category), "Erreur", aerr.Message)
	case errors.As(err, &verr):
		writeProblem(w, http.StatusBadRequest, "Invalid input", verr.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrNoPropertySelected):
		writeProblem(w, http.StatusBadRequest, "Erreur", "Veuillez sélectionner un logement")
	case errors.Is(err, domain.ErrSessionClosed):
		writeProblem(w, http.StatusServiceUnavailable, "Shutting down", "session closed")
	case errors.Is(err, domain.ErrRemoteUnavailable):
		writeProblem(w, http.StatusServiceUnavailable, "Remote unavailable", "remote store unavailable")
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal error", "")
	}
}

func authStatus(cat domain.AuthCategory) int {
	switch cat {
	case domain.AuthInvalidEmail:
		return http.StatusBadRequest
	case domain.AuthWrongCredentials:
		return http.StatusUnauthorized
	case domain.AuthUserNotFound:
		return http.StatusNotFound
	case domain.AuthEmailInUse:
		return http.StatusConflict
	case domain.AuthWeakPassword:
		return http.StatusUnprocessableEntity
	case domain.AuthRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}

// ---- auth ----

type credentials struct {
	Name            string `json:"name,omitempty"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
	Remember        bool   `json:"remember,omitempty"`
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if !decode(w, r, &c) {
		return
	}
	id, err := h.Auth.SignIn(r.Context(), c.Email, c.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if c.Remember {
		if err := h.Flags.Set(localcache.RememberKey, "true"); err != nil {
			log.Warn().Err(err).Msg("persist remember flag failed")
		}
	} else if err := h.Flags.Del(localcache.RememberKey); err != nil {
		log.Warn().Err(err).Msg("clear remember flag failed")
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user":    id,
		"message": "Bienvenue " + id.Email,
	})
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if !decode(w, r, &c) {
		return
	}
	if c.Password != c.ConfirmPassword {
		writeProblem(w, http.StatusBadRequest, "Erreur", "Les mots de passe ne correspondent pas")
		return
	}
	if len(c.Password) < 6 {
		writeProblem(w, http.StatusBadRequest, "Erreur", "Le mot de passe doit contenir au moins 6 caractères")
		return
	}
	id, err := h.Auth.SignUp(r.Context(), c.Name, c.Email, c.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"user":    id,
		"message": "Votre compte a été créé avec succès",
	})
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.SignOut(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "À bientôt !"})
}

func (h *Handlers) resetPassword(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if !decode(w, r, &c) {
		return
	}
	if err := h.Auth.SendPasswordReset(r.Context(), c.Email); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Vérifiez votre boîte mail pour réinitialiser votre mot de passe",
	})
}

func (h *Handlers) updateProfile(w http.ResponseWriter, r *http.Request) {
	var u domain.ProfileUpdate
	if !decode(w, r, &u) {
		return
	}
	if err := h.Auth.UpdateProfile(r.Context(), u); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Vos informations ont été sauvegardées"})
}

func (h *Handlers) updatePassword(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if !decode(w, r, &c) {
		return
	}
	if err := h.Auth.UpdatePassword(r.Context(), c.Password); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Vos informations ont été sauvegardées"})
}

// ---- properties ----

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"properties": h.R.Properties()})
}

func (h *Handlers) createProperty(w http.ResponseWriter, r *http.Request) {
	var p domain.Property
	if !decode(w, r, &p) {
		return
	}
	created, err := h.R.CreateProperty(r.Context(), p)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"property": created,
		"message":  "Logement ajouté avec succès",
	})
}

func (h *Handlers) importProperty(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URL string `json:"url"`
	}
	if !decode(w, r, &body) {
		return
	}
	p, err := h.R.ImportProperty(r.Context(), body.URL)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"property": p,
		"message":  "Votre logement a été importé avec succès depuis Airbnb",
	})
}

// ---- guides ----

func (h *Handlers) getGuide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	lang := strings.ToLower(chi.URLParam(r, "lang"))
	c, err := h.R.GuideFor(id, lang)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"propertyId": id,
		"language":   lang,
		"content":    c,
	})
}

func (h *Handlers) saveGuide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	lang := strings.ToLower(chi.URLParam(r, "lang"))
	var c domain.GuideContent
	if !decode(w, r, &c) {
		return
	}
	if err := h.R.SaveGuide(r.Context(), id, lang, c); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Le guide a été sauvegardé avec succès"})
}

func (h *Handlers) generate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	lang := strings.ToLower(chi.URLParam(r, "lang"))
	section := chi.URLParam(r, "section")
	text, err := h.R.Generate(r.Context(), id, lang, section)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"section": section,
		"content": text,
		"message": "Le contenu a été généré avec succès par l'IA",
	})
}

// ---- dashboard / state ----

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.R.Dashboard())
}

// state exposes the full application state for client hydration, mirroring
// what the snapshot cache persists.
func (h *Handlers) state(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.R.Snapshot())
}

func (h *Handlers) refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.R.Refresh(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.R.Dashboard())
}

// ---- settings ----

// onboarding reports whether this is the first visit, then marks it seen, so
// the client shows the welcome tour exactly once.
func (h *Handlers) onboarding(w http.ResponseWriter, r *http.Request) {
	_, seen := h.Flags.Get(localcache.FirstVisitKey)
	if !seen {
		if err := h.Flags.Set(localcache.FirstVisitKey, "seen"); err != nil {
			log.Warn().Err(err).Msg("persist first-visit marker failed")
		}
	}
	writeJSON(w, http.StatusOK, map[string]bool{"firstVisit": !seen})
}

func (h *Handlers) getTheme(w http.ResponseWriter, r *http.Request) {
	theme, ok := h.Flags.Get(localcache.ThemeKey)
	if !ok {
		theme = "light"
	}
	writeJSON(w, http.StatusOK, map[string]string{"theme": theme})
}

func (h *Handlers) setTheme(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Theme string `json:"theme"`
	}
	if !decode(w, r, &body) {
		return
	}
	if body.Theme != "light" && body.Theme != "dark" {
		writeProblem(w, http.StatusBadRequest, "Invalid theme", `theme must be "light" or "dark"`)
		return
	}
	if err := h.Flags.Set(localcache.ThemeKey, body.Theme); err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal error", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"theme": body.Theme})
}

func (h *Handlers) getIntegration(w http.ResponseWriter, r *http.Request) {
	key, ok := integrationFlags[chi.URLParam(r, "name")]
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown integration")
		return
	}
	_, configured := h.Flags.Get(key)
	// the stored credential is never echoed back
	writeJSON(w, http.StatusOK, map[string]bool{"configured": configured})
}

func (h *Handlers) setIntegration(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	key, ok := integrationFlags[name]
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown integration")
		return
	}
	var body struct {
		Value string `json:"value"`
	}
	if !decode(w, r, &body) {
		return
	}
	if body.Value == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid value", "value is required")
		return
	}
	if err := h.Flags.Set(key, body.Value); err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal error", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Votre clé API a été enregistrée"})
}

func (h *Handlers) delIntegration(w http.ResponseWriter, r *http.Request) {
	key, ok := integrationFlags[chi.URLParam(r, "name")]
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown integration")
		return
	}
	if err := h.Flags.Del(key); err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal error", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
