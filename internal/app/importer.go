package app

import (
	"context"
	"time"

	"github.com/AnthonyM972321/LuxuryBot/internal/domain"
)

// importStatuses are the staged progress messages reported while importing.
var importStatuses = []string{
	"Connexion à la plateforme...",
	"Extraction des données...",
	"Analyse des photos...",
	"Génération des descriptions...",
	"Finalisation...",
}

// importedListing is the canned listing the import stub always produces,
// regardless of the URL. Real platform scraping would replace this.
func importedListing(now time.Time) domain.Property {
	return domain.Property{
		Name:      "Appartement Vue Mer - Côte d'Azur",
		Type:      domain.TypeApartment,
		Address:   "Nice, France",
		Bedrooms:  2,
		Bathrooms: 1,
		Capacity:  4,
		Status:    domain.StatusAvailable,
		Imported:  true,
		Platform:  "Airbnb",
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
}

// ImportProperty runs the staged import simulation for url and then creates
// the canned listing through the regular create path, so it gets the same
// identifier and persistence treatment as a manual create. The import counts
// toward the AI-generated total.
func (r *Reconciler) ImportProperty(ctx context.Context, url string) (domain.Property, error) {
	if url == "" {
		return domain.Property{}, &domain.ValidationError{Field: "url", Reason: "required"}
	}
	for _, status := range importStatuses {
		r.log.Info().Str("url", url).Str("status", status).Msg("import progress")
		if err := wait(ctx, r.importDelay); err != nil {
			return domain.Property{}, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	p, err := r.createLocked(ctx, importedListing(time.Now()))
	if err != nil {
		return domain.Property{}, err
	}
	r.state.AIGeneratedCount++
	r.persistLocked()
	return p, nil
}
