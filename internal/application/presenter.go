package application

import (
	"financement/internal/domain"
	"financement/internal/domain/entities"
	"financement/pkg/format"
)

const (
	titleIcon     = "💰 "
	supporterMark = "✓"
	opponentMark  = "✗"

	SourceURL = "https://politikfinanzierung.efk.admin.ch"
)

// layout holds what differs between panel sizes.
type layout struct {
	maxRows     int // 0 = all votations
	titleLength int // 0 = no shortening
	amount      func(labels entities.LabelSet, v entities.Votation) (sup, opp string)
	share       bool
	source      bool
}

var layouts = map[domain.Size]layout{
	domain.SizeSmall: {
		maxRows:     2,
		titleLength: 25,
		amount: func(_ entities.LabelSet, v entities.Votation) (string, string) {
			return supporterMark + format.FormatCHFFloat(v.SupportersTotal),
				opponentMark + format.FormatCHFFloat(v.OpponentsTotal)
		},
	},
	domain.SizeMedium: {
		maxRows:     4,
		titleLength: 30,
		amount: func(l entities.LabelSet, v entities.Votation) (string, string) {
			return l.Supporters + ": " + format.FormatCHFFloat(v.SupportersTotal),
				l.Opponents + ": " + format.FormatCHFFloat(v.OpponentsTotal)
		},
	},
	domain.SizeLarge: {
		amount: func(l entities.LabelSet, v entities.Votation) (string, string) {
			return l.Supporters + ": CHF " + format.FormatCHFFloat(v.SupportersTotal),
				l.Opponents + ": CHF " + format.FormatCHFFloat(v.OpponentsTotal)
		},
		share:  true,
		source: true,
	},
}

// Present turns a dataset into the panel of one size. dataset may be nil;
// the result then carries the no-data label and no date or update lines.
func Present(dataset *entities.CampaignDataset, locale domain.Locale, size domain.Size, labels entities.LabelSet) *entities.Panel {
	lay, ok := layouts[size]
	if !ok {
		size = domain.SizeMedium
		lay = layouts[size]
	}

	panel := &entities.Panel{
		Size:   size,
		Locale: locale,
		Title:  titleIcon + labels.Title,
		Rows:   []entities.PanelRow{},
	}

	if dataset != nil && dataset.NextVoteDate != "" {
		panel.DateLine = labels.DateLabel + " " + dataset.NextVoteDate
	}

	if dataset.HasVotations() {
		votations := dataset.Votations
		if lay.maxRows > 0 && len(votations) > lay.maxRows {
			votations = votations[:lay.maxRows]
		}
		for _, v := range votations {
			panel.Rows = append(panel.Rows, presentRow(v, locale, labels, lay))
		}
	} else {
		panel.NoData = labels.NoData
	}

	if dataset != nil && dataset.LastUpdate != "" {
		panel.UpdateLine = labels.Update + ": " + format.FormatUpdateDate(dataset.LastUpdate)
	}

	if lay.source {
		panel.Source = sourceLink(locale)
	}
	return panel
}

func presentRow(v entities.Votation, locale domain.Locale, labels entities.LabelSet, lay layout) entities.PanelRow {
	title := format.ShortTitle(v.Title.In(locale))
	if lay.titleLength > 0 {
		title = format.ShortenTitle(title, lay.titleLength)
	}
	sup, opp := lay.amount(labels, v)
	row := entities.PanelRow{
		Title:      title,
		Supporters: sup,
		Opponents:  opp,
	}
	if lay.share {
		row.Share, _ = format.SupportShare(v.SupportersTotal, v.OpponentsTotal)
	}
	return row
}

// sourceLink names the audit office by its German (EFK) or French/Italian
// (CDF) acronym.
func sourceLink(locale domain.Locale) *entities.SourceLink {
	name := "CDF"
	if locale == domain.LocaleDE {
		name = "EFK"
	}
	return &entities.SourceLink{Text: "Source: " + name, URL: SourceURL}
}
