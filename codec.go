package voxnova

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Catalog documents mark message entries with $template so construction
// produces the tagged Message/Catalog tree without shape guessing:
//
//	home:
//	  title: Welcome
//	  messages:
//	    $template: "You have {count:plural}"
//	    $params:
//	      plural:
//	        count:
//	          categories: {one: "1 message", other: "{?} messages"}
//
// A bare string value is a Message with no parameter options; any other
// mapping is a nested Catalog.
const (
	templateKey = "$template"
	paramsKey   = "$params"
)

// DecodeCatalogYAML decodes one locale's catalog from a YAML document.
func DecodeCatalogYAML(data []byte) (Catalog, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("voxnova: decode yaml catalog: %w", err)
	}
	return catalogFromRaw("", raw)
}

// DecodeCatalogJSON decodes one locale's catalog from a JSON document.
func DecodeCatalogJSON(data []byte) (Catalog, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("voxnova: decode json catalog: %w", err)
	}
	return catalogFromRaw("", raw)
}

// DecodeTranslationsYAML decodes a YAML document keyed by locale tag into
// per-locale catalogs.
func DecodeTranslationsYAML(data []byte) (Translations, error) {
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("voxnova: decode yaml translations: %w", err)
	}
	return translationsFromRaw(raw)
}

// DecodeTranslationsJSON decodes a JSON document keyed by locale tag into
// per-locale catalogs.
func DecodeTranslationsJSON(data []byte) (Translations, error) {
	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("voxnova: decode json translations: %w", err)
	}
	return translationsFromRaw(raw)
}

func translationsFromRaw(raw map[string]map[string]any) (Translations, error) {
	out := make(Translations, len(raw))
	for locale, tree := range raw {
		if locale == "" {
			return nil, fmt.Errorf("voxnova: empty locale tag in translations document")
		}
		catalog, err := catalogFromRaw("", tree)
		if err != nil {
			return nil, fmt.Errorf("voxnova: locale %s: %w", locale, err)
		}
		out[locale] = catalog
	}
	return out, nil
}

func catalogFromRaw(prefix string, raw map[string]any) (Catalog, error) {
	catalog := make(Catalog, len(raw))

	for key, value := range raw {
		if key == "" {
			return nil, fmt.Errorf("empty key under %q", prefix)
		}
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			catalog[key] = Msg(v)
		case map[string]any:
			if _, ok := v[templateKey]; ok {
				msg, err := messageFromRaw(path, v)
				if err != nil {
					return nil, err
				}
				catalog[key] = msg
				continue
			}
			nested, err := catalogFromRaw(path, v)
			if err != nil {
				return nil, err
			}
			catalog[key] = nested
		default:
			return nil, fmt.Errorf("key %q: unsupported value type %T", path, value)
		}
	}

	return catalog, nil
}

func messageFromRaw(path string, raw map[string]any) (Message, error) {
	template, ok := raw[templateKey].(string)
	if !ok {
		return Message{}, fmt.Errorf("key %q: %s must be a string", path, templateKey)
	}

	msg := Message{Template: template}

	if rawParams, ok := raw[paramsKey]; ok && rawParams != nil {
		params, err := paramsFromRaw(rawParams)
		if err != nil {
			return Message{}, fmt.Errorf("key %q: %s: %w", path, paramsKey, err)
		}
		msg.Params = params
	}

	for key := range raw {
		if key != templateKey && key != paramsKey {
			return Message{}, fmt.Errorf("key %q: unexpected field %q in message entry", path, key)
		}
	}

	return msg, nil
}

// paramsFromRaw round-trips the raw subtree through YAML to reuse the
// struct tags on ParamOptions, regardless of the source encoding.
func paramsFromRaw(raw any) (*ParamOptions, error) {
	encoded, err := yaml.Marshal(raw)
	if err != nil {
		return nil, err
	}

	params := &ParamOptions{}
	if err := yaml.Unmarshal(encoded, params); err != nil {
		return nil, err
	}
	return params, nil
}
