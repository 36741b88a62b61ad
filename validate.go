package voxnova

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/currency"
)

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)(?::([a-z]+))?\}`)

// ValidateTranslations runs the construction-time schema check over every
// catalog: plural rule sets must declare the other category, declared
// parameter options must reference a placeholder present in the template,
// and styles and currency codes must be recognized.
func ValidateTranslations(data Translations) error {
	locales := make([]string, 0, len(data))
	for locale := range data {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		if err := validateCatalog(locale, "", data[locale]); err != nil {
			return err
		}
	}
	return nil
}

func validateCatalog(locale, prefix string, catalog Catalog) error {
	keys := make([]string, 0, len(catalog))
	for key := range catalog {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		switch node := catalog[key].(type) {
		case Catalog:
			if err := validateCatalog(locale, path, node); err != nil {
				return err
			}
		case Message:
			if err := validateMessage(locale, path, node); err != nil {
				return err
			}
		default:
			return &CatalogError{Locale: locale, Key: path, Reason: fmt.Sprintf("unsupported node type %T", node)}
		}
	}
	return nil
}

func validateMessage(locale, key string, msg Message) error {
	if msg.Params == nil {
		return nil
	}

	names := placeholderNames(msg.Template)
	fail := func(reason string) error {
		return &CatalogError{Locale: locale, Key: key, Reason: reason}
	}

	for name, opts := range msg.Params.Plural {
		if _, ok := names[name]; !ok {
			return fail(fmt.Sprintf("plural options for %q without a matching placeholder", name))
		}
		if opts.Mode != "" && opts.Mode != PluralCardinal && opts.Mode != PluralOrdinal {
			return fail(fmt.Sprintf("unknown plural mode %q for %q", opts.Mode, name))
		}
		if _, ok := opts.Categories[PluralOther]; !ok {
			return fail(fmt.Sprintf("plural options for %q missing the other category", name))
		}
		if err := validateNumberOptions(opts.Number); err != nil {
			return fail(fmt.Sprintf("plural options for %q: %v", name, err))
		}
	}

	for name, opts := range msg.Params.Number {
		if _, ok := names[name]; !ok {
			return fail(fmt.Sprintf("number options for %q without a matching placeholder", name))
		}
		if err := validateNumberOptions(opts); err != nil {
			return fail(fmt.Sprintf("number options for %q: %v", name, err))
		}
	}

	for name, opts := range msg.Params.Date {
		if _, ok := names[name]; !ok {
			return fail(fmt.Sprintf("date options for %q without a matching placeholder", name))
		}
		if !validDateStyle(opts.DateStyle) || !validDateStyle(opts.TimeStyle) {
			return fail(fmt.Sprintf("unknown date style for %q", name))
		}
	}

	for name, opts := range msg.Params.List {
		if _, ok := names[name]; !ok {
			return fail(fmt.Sprintf("list options for %q without a matching placeholder", name))
		}
		if opts.Style != "" && opts.Style != ListConjunction && opts.Style != ListDisjunction {
			return fail(fmt.Sprintf("unknown list style %q for %q", opts.Style, name))
		}
	}

	for name := range msg.Params.Enum {
		if _, ok := names[name]; !ok {
			return fail(fmt.Sprintf("enum options for %q without a matching placeholder", name))
		}
	}

	return nil
}

func validateNumberOptions(opts NumberOptions) error {
	switch opts.Style {
	case "", StyleDecimal, StylePercent:
	case StyleCurrency:
		code := strings.ToUpper(strings.TrimSpace(opts.Currency))
		if code == "" {
			return fmt.Errorf("currency style without a currency code")
		}
		if _, err := currency.ParseISO(code); err != nil {
			return fmt.Errorf("unknown currency code %q", opts.Currency)
		}
	default:
		return fmt.Errorf("unknown number style %q", opts.Style)
	}

	if opts.MinFraction != nil && *opts.MinFraction < 0 {
		return fmt.Errorf("negative min_fraction")
	}
	if opts.MaxFraction != nil && *opts.MaxFraction < 0 {
		return fmt.Errorf("negative max_fraction")
	}
	if opts.MinFraction != nil && opts.MaxFraction != nil && *opts.MinFraction > *opts.MaxFraction {
		return fmt.Errorf("min_fraction exceeds max_fraction")
	}
	return nil
}

func validDateStyle(style DateStyle) bool {
	switch style {
	case "", DateShort, DateMedium, DateLong, DateFull:
		return true
	default:
		return false
	}
}

// placeholderNames extracts the parameter names referenced by a template.
func placeholderNames(template string) map[string]struct{} {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make(map[string]struct{}, len(matches))
	for _, match := range matches {
		names[match[1]] = struct{}{}
	}
	return names
}
