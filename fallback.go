package voxnova

// FallbackResolver resolves a primary locale plus fallbacks into the
// ordered chain of candidate locale tags tried during lookup.
type FallbackResolver interface {
	Resolve(locale string, fallbacks ...string) []string
}

// ChainResolver expands every tag into itself plus its parent tags and
// concatenates the expansions, primary first, deduplicating while keeping
// first-occurrence order.
type ChainResolver struct{}

func (ChainResolver) Resolve(locale string, fallbacks ...string) []string {
	return BuildChain(locale, fallbacks...)
}

// BuildChain constructs the locale fallback chain for a primary locale and
// zero or more fallback locales. Each tag contributes itself followed by
// successive parents obtained by stripping the trailing -subtag component;
// the primary locale's expansion always precedes the fallbacks', and no
// tag appears twice. Any input is accepted; empty tags contribute nothing.
func BuildChain(primary string, fallbacks ...string) []string {
	seen := make(map[string]struct{}, 2+len(fallbacks)*2)
	var chain []string

	add := func(locale string) {
		for _, tag := range expandLocale(locale) {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			chain = append(chain, tag)
		}
	}

	add(primary)
	for _, fallback := range fallbacks {
		add(fallback)
	}

	return chain
}
