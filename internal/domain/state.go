package domain

// AppState is the full application state: what the reconciler owns in memory
// and what the cache adapter serializes as a single snapshot.
type AppState struct {
	Properties []Property `json:"properties"`
	// Guides maps property ID -> language -> content.
	Guides           map[string]map[string]GuideContent `json:"guides"`
	CurrentProperty  string                             `json:"currentProperty,omitempty"`
	CurrentLanguage  string                             `json:"currentLanguage"`
	AIGeneratedCount int                                `json:"aiGeneratedCount"`
	RemoteConnected  bool                               `json:"remoteConnected"`
}

func NewState() *AppState {
	return &AppState{
		Properties:      []Property{},
		Guides:          map[string]map[string]GuideContent{},
		CurrentLanguage: "fr",
	}
}

// SetGuide stores content for a (property, language) pair, allocating the
// inner map on first use.
func (s *AppState) SetGuide(propertyID, language string, c GuideContent) {
	if s.Guides == nil {
		s.Guides = map[string]map[string]GuideContent{}
	}
	if s.Guides[propertyID] == nil {
		s.Guides[propertyID] = map[string]GuideContent{}
	}
	s.Guides[propertyID][language] = c
}

func (s *AppState) Guide(propertyID, language string) (GuideContent, bool) {
	c, ok := s.Guides[propertyID][language]
	return c, ok
}

func (s *AppState) Property(id string) (Property, bool) {
	for _, p := range s.Properties {
		if p.ID == id {
			return p, true
		}
	}
	return Property{}, false
}
