package i18n

import (
	"embed"

	"github.com/charmbracelet/log"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"financement/internal/domain"
	"financement/internal/domain/entities"
	"financement/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Label message IDs, one per LabelSet field.
const (
	KeyTitle      = "title"
	KeyDateLabel  = "date_label"
	KeySupporters = "supporters"
	KeyOpponents  = "opponents"
	KeyUpdate     = "update"
	KeyNoData     = "no_data"
)

var _ output.Labels = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer. Label sets
// for every supported locale are resolved once at construction and never
// change afterwards.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	labels          map[domain.Locale]entities.LabelSet
	logger          *log.Logger
}

// NewTranslator builds a Translator from the embedded active.*.toml files,
// falling back to defaultLocale (e.g. "fr") for missing messages.
func NewTranslator(defaultLocale domain.Locale, logger *log.Logger) *Translator {
	tag, err := language.Parse(defaultLocale.String())
	if err != nil {
		tag = language.French
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, l := range domain.SupportedLocales {
		file := "active." + l.String() + ".toml"
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Error("i18n: chargement impossible", "file", file, "err", err)
		}
	}

	t := &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		logger:          logger,
	}
	t.labels = make(map[domain.Locale]entities.LabelSet, len(domain.SupportedLocales))
	for _, l := range domain.SupportedLocales {
		t.labels[l] = t.labelSet(l)
	}
	return t
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Warn("i18n: localize failed", "key", key, "locales", languages, "err", err)
		return key
	}
	return msg
}

// Labels returns the label set of locale. Unsupported locales get the
// default locale's labels.
func (t *Translator) Labels(locale domain.Locale) entities.LabelSet {
	if ls, ok := t.labels[locale]; ok {
		return ls
	}
	return t.labels[domain.DefaultLocale]
}

func (t *Translator) labelSet(l domain.Locale) entities.LabelSet {
	loc := l.String()
	return entities.LabelSet{
		Title:      t.T(loc, KeyTitle, nil),
		DateLabel:  t.T(loc, KeyDateLabel, nil),
		Supporters: t.T(loc, KeySupporters, nil),
		Opponents:  t.T(loc, KeyOpponents, nil),
		Update:     t.T(loc, KeyUpdate, nil),
		NoData:     t.T(loc, KeyNoData, nil),
	}
}
