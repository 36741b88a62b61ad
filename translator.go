package voxnova

import "errors"

// Translator resolves a message key plus arguments into a localized,
// formatted string.
type Translator interface {
	// Translate returns the formatted translation for key, or the key
	// itself when no catalog in the fallback chain resolves it.
	// Substitution failures (type mismatches, missing plural options)
	// are returned as errors.
	Translate(key string, args ...Args) (string, error)
	// T is the convenience form of Translate: substitution failures
	// degrade to returning the key.
	T(key string, args ...Args) string
}

// Config captures translator setup. The three recognized knobs are the
// primary locale, the per-locale translations, and the fallback locales.
type Config struct {
	Locale       string
	Fallback     []string
	Translations Translations
	Resolver     FallbackResolver
	Hooks        []Hook

	skipValidation bool
}

// Option mutates Config during construction.
type Option func(*Config) error

// WithLocale sets the primary locale.
func WithLocale(locale string) Option {
	return func(c *Config) error {
		c.Locale = locale
		return nil
	}
}

// WithFallback appends fallback locales, tried in the order given.
func WithFallback(locales ...string) Option {
	return func(c *Config) error {
		c.Fallback = append(c.Fallback, locales...)
		return nil
	}
}

// WithTranslations merges per-locale catalogs into the configuration.
func WithTranslations(translations Translations) Option {
	return func(c *Config) error {
		c.Translations = c.Translations.Merge(translations)
		return nil
	}
}

// WithCatalog registers one locale's catalog.
func WithCatalog(locale string, catalog Catalog) Option {
	return func(c *Config) error {
		if c.Translations == nil {
			c.Translations = make(Translations)
		}
		c.Translations[locale] = catalog
		return nil
	}
}

// WithFallbackResolver overrides how the locale chain is built.
func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithHooks registers translation hooks invoked around every call.
func WithHooks(hooks ...Hook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

// WithoutValidation skips the construction-time catalog schema check.
func WithoutValidation() Option {
	return func(c *Config) error {
		c.skipValidation = true
		return nil
	}
}

// New builds a Translator from the supplied options. The locale chain is
// computed once here and reused for every call; catalogs are cloned into
// an immutable snapshot, so the translator is safe for concurrent use.
func New(opts ...Option) (Translator, error) {
	cfg := &Config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Locale == "" {
		return nil, errors.New("voxnova: no primary locale configured")
	}
	if cfg.Resolver == nil {
		cfg.Resolver = ChainResolver{}
	}

	translations := snapshotTranslations(cfg.Translations)
	if !cfg.skipValidation {
		if err := ValidateTranslations(translations); err != nil {
			return nil, err
		}
	}

	base := &ChainTranslator{
		locale:       normalizeLocale(cfg.Locale),
		chain:        cfg.Resolver.Resolve(cfg.Locale, cfg.Fallback...),
		translations: translations,
	}

	if len(cfg.Hooks) > 0 {
		return WrapWithHooks(base, cfg.Hooks...), nil
	}
	return base, nil
}

// ChainTranslator walks a precomputed locale chain, resolving keys against
// each locale's catalog and substituting placeholders with the locale of
// the first hit.
type ChainTranslator struct {
	locale       string
	chain        []string
	translations Translations
}

var _ Translator = &ChainTranslator{}

// Translate implements Translator.
func (t *ChainTranslator) Translate(key string, args ...Args) (string, error) {
	result, _, err := t.translateStatus(key, mergeArgs(args))
	return result, err
}

// T implements Translator.
func (t *ChainTranslator) T(key string, args ...Args) string {
	result, err := t.Translate(key, args...)
	if err != nil {
		return key
	}
	return result
}

// Resolve returns the message and the locale it was found under, or
// ErrMissingTranslation when the chain is exhausted.
func (t *ChainTranslator) Resolve(key string) (Message, string, error) {
	if t != nil {
		for _, locale := range t.chain {
			catalog, ok := t.translations[locale]
			if !ok {
				continue
			}
			if msg, ok := catalog.Lookup(key); ok {
				return msg, locale, nil
			}
		}
	}
	return Message{}, "", ErrMissingTranslation
}

// Locale returns the primary locale.
func (t *ChainTranslator) Locale() string {
	return t.locale
}

// Chain returns a copy of the locale chain.
func (t *ChainTranslator) Chain() []string {
	out := make([]string, len(t.chain))
	copy(out, t.chain)
	return out
}

// translateStatus reports whether the key resolved, so decorators can
// observe missing translations without changing the degraded result.
func (t *ChainTranslator) translateStatus(key string, args Args) (string, bool, error) {
	msg, locale, err := t.Resolve(key)
	if err != nil {
		// missing translations degrade to the visible key
		return key, false, nil
	}

	result, err := substitute(msg.Template, msg.Params, locale, args)
	if err != nil {
		return "", true, err
	}
	return result, true, nil
}

func mergeArgs(args []Args) Args {
	switch len(args) {
	case 0:
		return nil
	case 1:
		return args[0]
	}

	merged := make(Args)
	for _, m := range args {
		for name, value := range m {
			merged[name] = value
		}
	}
	return merged
}
