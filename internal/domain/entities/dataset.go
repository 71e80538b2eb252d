package entities

import "financement/internal/domain"

// MissingTitle is displayed when a votation has neither the requested
// locale nor a French title.
const MissingTitle = "N/A"

// CampaignDataset is the document published by the collector and read by
// every panel. Votations are ordered by display priority.
type CampaignDataset struct {
	NextVoteDate string     `json:"nextVoteDate"`
	LastUpdate   string     `json:"lastUpdate"`
	Votations    []Votation `json:"votations"`
}

// HasVotations reports whether d is present and lists at least one votation.
func (d *CampaignDataset) HasVotations() bool {
	return d != nil && len(d.Votations) > 0
}

// Votation is one ballot measure and the money declared for and against it.
// Only Title and the two totals are read by panels; the other fields are
// filled by the collector.
type Votation struct {
	ID              string        `json:"id,omitempty"`
	Date            string        `json:"date,omitempty"`
	Title           LocalizedText `json:"title"`
	SupportersTotal float64       `json:"supporters_total"`
	OpponentsTotal  float64       `json:"opponents_total"`
	SupportersCount int           `json:"supporters_count,omitempty"`
	OpponentsCount  int           `json:"opponents_count,omitempty"`
	Actors          []Actor       `json:"actors,omitempty"`
}

// Actor is an organisation that declared a campaign budget.
type Actor struct {
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	Total      float64 `json:"total"`
	CampaignID string  `json:"campaign_id"`
}

// Actor positions.
const (
	PositionSupporter = "supporter"
	PositionOpponent  = "opponent"
	PositionUnknown   = "unknown"
)

// LocalizedText maps a locale code to a text.
type LocalizedText map[string]string

// In returns the text for locale, then the French text, then MissingTitle.
func (t LocalizedText) In(locale domain.Locale) string {
	if s := t[string(locale)]; s != "" {
		return s
	}
	if s := t[string(domain.LocaleFR)]; s != "" {
		return s
	}
	return MissingTitle
}
