package i18n

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseJSON decodes a JSON translation catalog: an object keyed by language
// code, each value a nested object of messages.
func ParseJSON(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	return toCatalog(data)
}

// ParseYAML decodes a YAML translation catalog with the same shape as
// ParseJSON.
func ParseYAML(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	return toCatalog(normalizeValue(data).(map[string]any))
}

func toCatalog(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, value := range data {
		catalog, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q is %T, expected object", ErrInvalidCatalog, lang, value)
		}
		result[lang] = catalog
	}
	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}

// normalizeValue rewrites yaml's map[any]any nodes into map[string]any so
// both parsers produce the same catalog shape.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = normalizeValue(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[fmt.Sprint(key)] = normalizeValue(val)
		}
		return out
	default:
		return value
	}
}
