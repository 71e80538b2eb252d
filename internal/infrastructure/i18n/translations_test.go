package i18n

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"financement/internal/domain"
	"financement/internal/domain/entities"
)

func newTestTranslator() *Translator {
	return NewTranslator(domain.LocaleFR, log.New(io.Discard))
}

func TestLabels(t *testing.T) {
	tr := newTestTranslator()

	tests := []struct {
		locale domain.Locale
		want   entities.LabelSet
	}{
		{domain.LocaleFR, entities.LabelSet{
			Title: "Financement des campagnes", DateLabel: "Votation du", Supporters: "Pour",
			Opponents: "Contre", Update: "Mise à jour", NoData: "Pas de données",
		}},
		{domain.LocaleDE, entities.LabelSet{
			Title: "Kampagnenfinanzierung", DateLabel: "Abstimmung vom", Supporters: "Ja",
			Opponents: "Nein", Update: "Aktualisierung", NoData: "Keine Daten",
		}},
		{domain.LocaleIT, entities.LabelSet{
			Title: "Finanziamento campagne", DateLabel: "Votazione del", Supporters: "Sì",
			Opponents: "No", Update: "Aggiornamento", NoData: "Nessun dato",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.locale.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Labels(tt.locale))
		})
	}
}

func TestLabelsUnsupportedLocaleUsesDefault(t *testing.T) {
	tr := newTestTranslator()
	assert.Equal(t, tr.Labels(domain.LocaleFR), tr.Labels(domain.Locale("es")))
}

func TestT(t *testing.T) {
	tr := newTestTranslator()

	assert.Equal(t, "Keine Daten", tr.T("de", KeyNoData, nil))
	assert.Equal(t, "Pas de données", tr.T("rm", KeyNoData, nil), "unknown locale falls back to default")
	assert.Equal(t, "unknown.key", tr.T("de", "unknown.key", nil))
	assert.Equal(t, "", tr.T("de", "", nil))
}
