package voxnova

import "sort"

// snapshotTranslations builds an immutable copy of the supplied
// translations with normalized locale tags. The engine reads only the
// snapshot, so callers may keep mutating their own catalogs afterwards.
func snapshotTranslations(data Translations) Translations {
	if len(data) == 0 {
		return make(Translations)
	}

	out := make(Translations, len(data))
	for locale, catalog := range data {
		tag := normalizeLocale(locale)
		if tag == "" || catalog == nil {
			continue
		}
		out[tag] = catalog.Clone()
	}
	return out
}

// Locales returns the sorted locale tags present in the translations.
func (t Translations) Locales() []string {
	if len(t) == 0 {
		return nil
	}
	out := make([]string, 0, len(t))
	for locale := range t {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Merge overlays other onto t, replacing whole catalogs per locale.
func (t Translations) Merge(other Translations) Translations {
	if t == nil {
		t = make(Translations, len(other))
	}
	for locale, catalog := range other {
		t[locale] = catalog
	}
	return t
}
