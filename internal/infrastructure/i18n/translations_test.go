package i18n

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestTranslatorLocalizes(t *testing.T) {
	tr := NewTranslator("en", zerolog.Nop())

	assert.Equal(t, "Event is full.", tr.T("", "errors.event_full", nil))
	assert.Equal(t, "L'événement est complet.", tr.T("fr", "errors.event_full", nil))
	assert.Equal(t, "L'événement est complet.", tr.T("fr-CA,fr;q=0.9,en;q=0.8", "errors.event_full", nil))
}

func TestTranslatorTemplates(t *testing.T) {
	tr := NewTranslator("en", zerolog.Nop())

	got := tr.T("en", "errors.invalid_timezone", map[string]any{"Timezone": "Mars/Base"})
	assert.Equal(t, `Invalid timezone provided: "Mars/Base".`, got)
}

func TestTranslatorFallsBack(t *testing.T) {
	tr := NewTranslator("en", zerolog.Nop())

	assert.Equal(t, "Event not found.", tr.T("de", "errors.event_not_found", nil))
	assert.Equal(t, "errors.unknown_code", tr.T("en", "errors.unknown_code", nil))
	assert.Equal(t, "", tr.T("en", "", nil))
}

func TestTranslatorBadDefaultLocale(t *testing.T) {
	tr := NewTranslator("not a locale!!", zerolog.Nop())

	assert.Equal(t, "Event is full.", tr.T("", "errors.event_full", nil))
}

func TestTranslatorNegotiate(t *testing.T) {
	tr := NewTranslator("en", zerolog.Nop())

	tests := []struct {
		header string
		want   language.Tag
	}{
		{header: "", want: language.English},
		{header: "fr", want: language.French},
		{header: "de-DE,fr;q=0.7,en;q=0.5", want: language.French},
		{header: "en-GB,fr;q=0.9", want: language.English},
		{header: "de", want: language.English},
		{header: ";;q=bogus", want: language.English},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Negotiate(tt.header))
		})
	}
}

func TestTranslatorFrenchDefault(t *testing.T) {
	tr := NewTranslator("fr", zerolog.Nop())

	assert.Equal(t, language.French, tr.Negotiate("de"))
	assert.Equal(t, "L'événement est complet.", tr.T("", "errors.event_full", nil))
	assert.Equal(t, "Event is full.", tr.T("en-US", "errors.event_full", nil))
}
