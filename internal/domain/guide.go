package domain

// GuideContent is the six free-text sections of one guest guidebook. A save
// always overwrites all six fields; there are no partial updates.
type GuideContent struct {
	Welcome      string `json:"welcome"`
	Access       string `json:"access"`
	Equipment    string `json:"equipment"`
	Neighborhood string `json:"neighborhood"`
	Checkout     string `json:"checkout"`
	Emergency    string `json:"emergency"`
}

// Guide is the stored record for one (property, language) pair.
type Guide struct {
	PropertyID string       `json:"propertyId"`
	Language   string       `json:"language"`
	Content    GuideContent `json:"content"`
	UpdatedAt  string       `json:"updatedAt,omitempty"`
}

// GuideKey builds the composite document key for a (property, language) pair.
func GuideKey(propertyID, language string) string {
	return propertyID + "_" + language
}
