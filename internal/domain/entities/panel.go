package entities

import "financement/internal/domain"

// Panel is the display-ready content of one widget size. Empty strings mean
// "nothing to show" for that slot.
type Panel struct {
	Size       domain.Size   `json:"size"`
	Locale     domain.Locale `json:"locale"`
	Title      string        `json:"title"`
	DateLine   string        `json:"date_line,omitempty"`
	Rows       []PanelRow    `json:"rows"`
	NoData     string        `json:"no_data,omitempty"`
	UpdateLine string        `json:"update_line,omitempty"`
	Source     *SourceLink   `json:"source,omitempty"`
}

// PanelRow is one votation line.
type PanelRow struct {
	Title      string `json:"title"`
	Supporters string `json:"supporters"`
	Opponents  string `json:"opponents"`
	Share      string `json:"share,omitempty"` // large panels only
}

// SourceLink credits the data provider.
type SourceLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// LabelSet holds the fixed labels of one locale.
type LabelSet struct {
	Title      string `json:"title"`
	DateLabel  string `json:"date_label"`
	Supporters string `json:"supporters"`
	Opponents  string `json:"opponents"`
	Update     string `json:"update"`
	NoData     string `json:"no_data"`
}
