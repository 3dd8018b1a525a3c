package domain

import (
	"fmt"
	"time"
)

type PropertyType string

const (
	TypeApartment PropertyType = "apartment"
	TypeHouse     PropertyType = "house"
	TypeStudio    PropertyType = "studio"
	TypeVilla     PropertyType = "villa"
	TypeLoft      PropertyType = "loft"
	TypeRoom      PropertyType = "room"
)

type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "available"
	StatusOccupied  PropertyStatus = "occupied"
)

// Property is one managed rental listing. The ID is always a string at this
// boundary: the document backend assigns opaque UUIDs, the relational backend's
// integer keys are formatted to strings, and offline creates get a
// timestamp-derived string. Once assigned it never changes.
type Property struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Type      PropertyType   `json:"type"`
	Address   string         `json:"address"`
	Bedrooms  int            `json:"bedrooms"`
	Bathrooms int            `json:"bathrooms"`
	Capacity  int            `json:"capacity"`
	Status    PropertyStatus `json:"status"`
	Imported  bool           `json:"imported,omitempty"`
	Platform  string         `json:"platform,omitempty"`
	CreatedAt string         `json:"createdAt"`
}

var validTypes = map[PropertyType]bool{
	TypeApartment: true, TypeHouse: true, TypeStudio: true,
	TypeVilla: true, TypeLoft: true, TypeRoom: true,
}

// Normalize applies the create-form defaults and rejects values no form could
// produce. Counts left at zero get their defaults; negatives are user error.
func (p *Property) Normalize(now time.Time) error {
	if p.Name == "" {
		p.Name = "Sans nom"
	}
	if p.Address == "" {
		p.Address = "Non spécifié"
	}
	if p.Type == "" {
		p.Type = TypeApartment
	} else if !validTypes[p.Type] {
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown property type %q", p.Type)}
	}
	if p.Bedrooms < 0 {
		return &ValidationError{Field: "bedrooms", Reason: "must not be negative"}
	}
	if p.Bedrooms == 0 {
		p.Bedrooms = 1
	}
	if p.Bathrooms < 0 {
		return &ValidationError{Field: "bathrooms", Reason: "must not be negative"}
	}
	if p.Bathrooms == 0 {
		p.Bathrooms = 1
	}
	if p.Capacity < 0 {
		return &ValidationError{Field: "capacity", Reason: "must not be negative"}
	}
	if p.Capacity == 0 {
		p.Capacity = 2
	}
	switch p.Status {
	case "":
		p.Status = StatusAvailable
	case StatusAvailable, StatusOccupied:
	default:
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", p.Status)}
	}
	if p.CreatedAt == "" {
		p.CreatedAt = now.UTC().Format(time.RFC3339)
	}
	return nil
}
