package voxnova

import "strings"

// normalizeLocale normalizes a locale identifier by trimming whitespace,
// replacing underscores with hyphens, and lowercasing.
func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

// expandLocale returns the normalized tag followed by its parents, derived
// by stripping the trailing -subtag component until nothing remains.
// "pt-BR-x" expands to ["pt-br-x", "pt-br", "pt"].
func expandLocale(locale string) []string {
	tag := normalizeLocale(locale)
	if tag == "" {
		return nil
	}

	var out []string
	for tag != "" {
		out = append(out, tag)
		idx := strings.LastIndex(tag, "-")
		if idx <= 0 {
			break
		}
		tag = tag[:idx]
	}
	return out
}
