package i18n

import (
	"embed"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"eventreg/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.Translator = (*Translator)(nil)

// Translator renders catalog messages in the language negotiated from an
// Accept-Language header.
type Translator struct {
	bundle     *i18n.Bundle
	supported  []language.Tag
	matcher    language.Matcher
	localizers []*i18n.Localizer
	logger     zerolog.Logger
}

// NewTranslator loads every embedded active.*.toml catalog. defaultLocale
// (e.g. "en") is served when a request asks for nothing the catalogs offer;
// an unparsable value means English.
func NewTranslator(defaultLocale string, logger zerolog.Logger) *Translator {
	logger = logger.With().Str("component", "i18n").Logger()

	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		logger.Warn().Str("locale", defaultLocale).Msg("invalid default locale, using en")
		fallback = language.English
	}
	bundle := i18n.NewBundle(fallback)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, _ := fs.Glob(localeFS, "active.*.toml")
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Error().Err(err).Str("file", file).Msg("failed to load message file")
		}
	}

	// The matcher falls back to its first tag.
	supported := []language.Tag{fallback}
	for _, tag := range bundle.LanguageTags() {
		if tag != fallback {
			supported = append(supported, tag)
		}
	}
	localizers := make([]*i18n.Localizer, len(supported))
	for i, tag := range supported {
		localizers[i] = i18n.NewLocalizer(bundle, tag.String(), fallback.String())
	}

	return &Translator{
		bundle:     bundle,
		supported:  supported,
		matcher:    language.NewMatcher(supported),
		localizers: localizers,
		logger:     logger,
	}
}

// Negotiate picks the catalog language for an Accept-Language value such as
// "fr-CA,fr;q=0.9,en;q=0.8". Empty or malformed headers get the default.
func (t *Translator) Negotiate(acceptLanguage string) language.Tag {
	return t.supported[t.match(acceptLanguage)]
}

func (t *Translator) match(acceptLanguage string) int {
	if acceptLanguage == "" {
		return 0
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return 0
	}
	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return 0
	}
	return index
}

// T renders key for the negotiated language. Keys missing from that catalog
// come from the default one; unknown keys are returned unchanged.
func (t *Translator) T(acceptLanguage, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.localizers[t.match(acceptLanguage)].Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Debug().Err(err).Str("key", key).Str("accept_language", acceptLanguage).Msg("localize failed")
		return key
	}
	return msg
}
