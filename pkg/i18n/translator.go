package i18n

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed locales/en.json
var defaultCatalog []byte

// DefaultLanguage is used when no language option is given.
const DefaultLanguage = "en"

// Translator resolves dot-separated keys against per-language nested maps.
// The catalog is immutable after construction, so lookups need no locking.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used by Translate.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithoutKeyFallback makes missing keys resolve to "" instead of the key
// itself.
func WithoutKeyFallback() Option {
	return func(t *Translator) {
		t.fallbackToKey = false
	}
}

// NewTranslator creates a translator over the given catalog, keyed by
// language code.
func NewTranslator(translations map[string]map[string]any, opts ...Option) (*Translator, error) {
	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}
	for lang, catalog := range translations {
		if lang == "" || catalog == nil {
			return nil, ErrInvalidCatalog
		}
	}

	t := &Translator{
		translations:  translations,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Default returns a translator over the embedded English catalog, which
// covers every auth.* key this module emits.
func Default(opts ...Option) (*Translator, error) {
	catalog, err := ParseJSON(defaultCatalog)
	if err != nil {
		return nil, err
	}
	return NewTranslator(catalog, opts...)
}

// Translate resolves key in the default language. Params are interpolated
// into {name} placeholders; a missing key falls back per configuration.
func (t *Translator) Translate(key string, params map[string]any) string {
	return t.TranslateLang(t.defaultLang, key, params)
}

// TranslateLang resolves key in the given language, falling back to the
// default language before the key-fallback applies.
func (t *Translator) TranslateLang(lang, key string, params map[string]any) string {
	if msg, ok := t.lookup(lang, key); ok {
		return interpolate(msg, params)
	}
	if lang != t.defaultLang {
		if msg, ok := t.lookup(t.defaultLang, key); ok {
			return interpolate(msg, params)
		}
	}
	if t.fallbackToKey {
		return key
	}
	return ""
}

// HasLanguage reports whether the catalog contains lang.
func (t *Translator) HasLanguage(lang string) bool {
	_, ok := t.translations[lang]
	return ok
}

// lookup walks the nested map by dot-separated key segments.
func (t *Translator) lookup(lang, key string) (string, bool) {
	catalog, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	current := catalog
	for i, part := range parts {
		value, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			msg, ok := value.(string)
			return msg, ok
		}
		next, ok := value.(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

// interpolate replaces {name} placeholders with param values. Placeholders
// without a matching param are left intact so missing data stays visible.
func interpolate(msg string, params map[string]any) string {
	if len(params) == 0 {
		return msg
	}
	for name, value := range params {
		msg = strings.ReplaceAll(msg, "{"+name+"}", fmt.Sprint(value))
	}
	return msg
}
