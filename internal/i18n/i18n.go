// package i18n provides translated UI strings loaded from embedded TOML catalogs.
package i18n

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed translations/*.toml
var catalogFS embed.FS

// DefaultLanguage is the fallback language for missing catalogs and keys.
const DefaultLanguage = "en"

// Translator resolves message keys against a language catalog, falling back
// to English and finally to the key itself so the UI never renders blanks.
type Translator struct {
	lang     string
	catalog  map[string]string
	fallback map[string]string
}

// NewTranslator loads the catalog for lang. An unknown language yields a
// translator that serves the English catalog.
func NewTranslator(lang string) (*Translator, error) {
	fallback, err := loadCatalog(DefaultLanguage)
	if err != nil {
		return nil, err
	}

	catalog := fallback
	if lang != DefaultLanguage {
		if c, err := loadCatalog(lang); err == nil {
			catalog = c
		} else {
			lang = DefaultLanguage
		}
	}

	return &Translator{lang: lang, catalog: catalog, fallback: fallback}, nil
}

// Language returns the language the translator resolved to.
func (t *Translator) Language() string {
	return t.lang
}

// Lookup returns the translation for key, falling back to English and then
// to the key itself.
func (t *Translator) Lookup(key string) string {
	if value, ok := t.catalog[key]; ok {
		return value
	}
	if value, ok := t.fallback[key]; ok {
		return value
	}
	return key
}

// Languages lists the languages with an embedded catalog.
func Languages() []string {
	return []string{"en", "es"}
}

func loadCatalog(lang string) (map[string]string, error) {
	data, err := catalogFS.ReadFile(fmt.Sprintf("translations/%s.toml", lang))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s catalog: %w", lang, err)
	}

	catalog := make(map[string]string)
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse %s catalog: %w", lang, err)
	}

	return catalog, nil
}
