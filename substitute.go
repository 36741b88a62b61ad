package voxnova

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// countMarker inside a plural category text is replaced with the
// formatted count.
const countMarker = "{?}"

// substitute replaces every placeholder in the template with its
// locale-formatted argument value. Arguments without a matching
// placeholder are ignored; replacement is global per placeholder.
func substitute(template string, params *ParamOptions, locale string, args Args) (string, error) {
	if len(args) == 0 {
		return template, nil
	}

	// deterministic substitution order
	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)

	out := template
	for _, name := range names {
		placeholder, ptype, ok := findPlaceholder(out, name)
		if !ok {
			continue
		}

		replacement, err := formatArgument(locale, name, ptype, args[name], params)
		if err != nil {
			return "", err
		}
		out = strings.ReplaceAll(out, placeholder, replacement)
	}

	return out, nil
}

// findPlaceholder locates the placeholder for a parameter in the current
// string, preferring the typed form {name:type} over the bare {name}.
func findPlaceholder(s, name string) (placeholder, ptype string, ok bool) {
	prefix := "{" + name + ":"
	if start := strings.Index(s, prefix); start >= 0 {
		if end := strings.IndexByte(s[start:], '}'); end >= 0 {
			placeholder = s[start : start+end+1]
			return placeholder, placeholder[len(prefix) : len(placeholder)-1], true
		}
	}

	bare := "{" + name + "}"
	if strings.Contains(s, bare) {
		return bare, "", true
	}
	return "", "", false
}

func formatArgument(locale, name, ptype string, value any, params *ParamOptions) (string, error) {
	switch ptype {
	case "plural":
		return formatPluralArgument(locale, name, value, params)
	case "number":
		n, ok := toNumber(value)
		if !ok {
			return "", &TypeMismatchError{Param: name, Expected: "number", Actual: typeName(value)}
		}
		var opts NumberOptions
		if params != nil {
			opts = params.Number[name]
		}
		return formatNumber(locale, n, opts), nil
	case "date":
		t, ok := toTime(value)
		if !ok {
			return "", &TypeMismatchError{Param: name, Expected: "date", Actual: typeName(value)}
		}
		var opts DateOptions
		if params != nil {
			opts = params.Date[name]
		}
		return formatDate(locale, t, opts), nil
	case "list":
		items, ok := toStringSlice(value)
		if !ok {
			return "", &TypeMismatchError{Param: name, Expected: "list of strings", Actual: typeName(value)}
		}
		var opts ListOptions
		if params != nil {
			opts = params.List[name]
		}
		return formatList(locale, items, opts), nil
	case "enum":
		raw := stringify(value)
		var opts EnumOptions
		if params != nil {
			opts = params.Enum[name]
		}
		if display, ok := opts.Values[raw]; ok {
			return display, nil
		}
		if opts.Other != "" {
			return opts.Other, nil
		}
		return raw, nil
	default:
		// untyped and unrecognized types substitute verbatim
		return stringify(value), nil
	}
}

func formatPluralArgument(locale, name string, value any, params *ParamOptions) (string, error) {
	var opts PluralOptions
	declared := false
	if params != nil {
		opts, declared = params.Plural[name]
	}
	if !declared {
		return "", &MissingOptionsError{Param: name}
	}

	n, ok := toNumber(value)
	if !ok {
		return "", &TypeMismatchError{Param: name, Expected: "number", Actual: typeName(value)}
	}

	category := selectPluralCategory(locale, opts.Mode, n, opts.Number)
	text, ok := opts.Categories[category]
	if !ok {
		text = opts.Categories[PluralOther]
	}

	if strings.Contains(text, countMarker) {
		text = strings.ReplaceAll(text, countMarker, formatNumber(locale, n, opts.Number))
	}
	return text, nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	default:
		return time.Time{}, false
	}
}

func toStringSlice(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = stringify(item)
		}
		return items, true
	default:
		return nil, false
	}
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}
