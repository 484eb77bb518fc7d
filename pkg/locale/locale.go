// Package locale provides display-string lookup for report labels. The
// report renderers treat it as an opaque formatter; no localization logic
// leaks into them.
package locale

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FallbackLocale is used for keys missing from the selected locale.
const FallbackLocale = "en"

//go:embed translations.yaml
var translationsYAML []byte

// Translator resolves translation keys for a single locale, falling back to
// English and finally to the key itself. The zero value is unusable; build
// one with NewTranslator.
type Translator struct {
	locale string
	table  map[string]map[string]string
}

// NewTranslator loads the embedded translation table and binds it to the
// given locale code. Unknown locales are served entirely from the fallback.
func NewTranslator(localeCode string) (*Translator, error) {
	table := make(map[string]map[string]string)

	err := yaml.Unmarshal(translationsYAML, &table)
	if err != nil {
		return nil, fmt.Errorf("parse embedded translations: %w", err)
	}

	if localeCode == "" {
		localeCode = FallbackLocale
	}

	return &Translator{locale: localeCode, table: table}, nil
}

// Locale returns the bound locale code.
func (t *Translator) Locale() string {
	return t.locale
}

// T returns the display string for a key.
func (t *Translator) T(key string) string {
	if value, ok := t.table[t.locale][key]; ok {
		return value
	}

	if value, ok := t.table[FallbackLocale][key]; ok {
		return value
	}

	return key
}

// Tf resolves a key holding a format template and applies args to it.
func (t *Translator) Tf(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}
