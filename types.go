package voxnova

// Node is one entry in a Catalog: either a Message or a nested Catalog.
// The variant is fixed at construction time so lookup never has to guess
// a node's kind from its runtime shape.
type Node interface {
	node()
}

// Catalog is one locale's translation tree, mapping keys to messages or
// nested catalogs. Keys are unique within one nesting level.
type Catalog map[string]Node

func (Catalog) node() {}

// Message is a single translation entry: a template with zero or more
// {name} or {name:type} placeholders, plus optional per-parameter
// formatting metadata.
type Message struct {
	Template string        `json:"template" yaml:"template"`
	Params   *ParamOptions `json:"params,omitempty" yaml:"params,omitempty"`
}

func (Message) node() {}

// Msg wraps a bare template string as a Message with no parameter options.
func Msg(template string) Message {
	return Message{Template: template}
}

// Translations maps locale tags to their catalogs.
type Translations map[string]Catalog

// Args carries caller-supplied placeholder values, keyed by parameter name.
type Args map[string]any

// ParamOptions declares formatting metadata for a message's placeholders,
// keyed first by placeholder type and then by parameter name.
type ParamOptions struct {
	Plural map[string]PluralOptions `json:"plural,omitempty" yaml:"plural,omitempty"`
	Number map[string]NumberOptions `json:"number,omitempty" yaml:"number,omitempty"`
	Date   map[string]DateOptions   `json:"date,omitempty" yaml:"date,omitempty"`
	List   map[string]ListOptions   `json:"list,omitempty" yaml:"list,omitempty"`
	Enum   map[string]EnumOptions   `json:"enum,omitempty" yaml:"enum,omitempty"`
}

// PluralCategory is a CLDR grammatical plural class.
type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// PluralMode selects cardinal or ordinal CLDR rule selection.
type PluralMode string

const (
	PluralCardinal PluralMode = "cardinal"
	PluralOrdinal  PluralMode = "ordinal"
)

// PluralOptions holds the per-category texts for one plural parameter.
// Categories must include PluralOther; it is the fallback when the
// selected category has no text. A {?} marker inside a category text is
// replaced with the formatted count.
type PluralOptions struct {
	// Mode defaults to cardinal when empty.
	Mode       PluralMode                `json:"mode,omitempty" yaml:"mode,omitempty"`
	Categories map[PluralCategory]string `json:"categories" yaml:"categories"`
	// Number formats the count injected at the {?} marker.
	Number NumberOptions `json:"number,omitempty" yaml:"number,omitempty"`
}

// NumberStyle selects how a numeric value is rendered.
type NumberStyle string

const (
	StyleDecimal  NumberStyle = "decimal"
	StyleCurrency NumberStyle = "currency"
	StylePercent  NumberStyle = "percent"
)

// NumberOptions configures locale-aware number formatting.
type NumberOptions struct {
	// Style defaults to decimal when empty.
	Style NumberStyle `json:"style,omitempty" yaml:"style,omitempty"`
	// Currency is the ISO 4217 code, used by the currency style.
	Currency string `json:"currency,omitempty" yaml:"currency,omitempty"`
	// MinFraction and MaxFraction bound the rendered fraction digits.
	// Nil means the style default: the currency's own fraction-digit
	// convention for currency, 0 for percent, and no constraint for
	// decimal.
	MinFraction *int `json:"min_fraction,omitempty" yaml:"min_fraction,omitempty"`
	MaxFraction *int `json:"max_fraction,omitempty" yaml:"max_fraction,omitempty"`
}

// DateStyle is a named date or time rendering width.
type DateStyle string

const (
	DateShort  DateStyle = "short"
	DateMedium DateStyle = "medium"
	DateLong   DateStyle = "long"
	DateFull   DateStyle = "full"
)

// DateOptions configures locale-aware date/time formatting.
type DateOptions struct {
	// DateStyle defaults to medium when empty.
	DateStyle DateStyle `json:"date_style,omitempty" yaml:"date_style,omitempty"`
	// TimeStyle appends a time rendering when set.
	TimeStyle DateStyle `json:"time_style,omitempty" yaml:"time_style,omitempty"`
}

// ListStyle selects the joining word for list formatting.
type ListStyle string

const (
	ListConjunction ListStyle = "conjunction"
	ListDisjunction ListStyle = "disjunction"
)

// ListOptions configures locale-aware list formatting.
type ListOptions struct {
	// Style defaults to conjunction when empty.
	Style ListStyle `json:"style,omitempty" yaml:"style,omitempty"`
}

// EnumOptions maps raw argument values to display texts.
type EnumOptions struct {
	Values map[string]string `json:"values,omitempty" yaml:"values,omitempty"`
	// Other is the display text for unmapped values. When empty the raw
	// value is substituted as-is.
	Other string `json:"other,omitempty" yaml:"other,omitempty"`
}

// Clone returns a deep copy of the catalog.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	for key, node := range c {
		switch v := node.(type) {
		case Catalog:
			out[key] = v.Clone()
		case Message:
			out[key] = v.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the message.
func (m Message) Clone() Message {
	out := Message{Template: m.Template}
	if m.Params != nil {
		out.Params = m.Params.clone()
	}
	return out
}

func (p *ParamOptions) clone() *ParamOptions {
	if p == nil {
		return nil
	}
	out := &ParamOptions{}
	if len(p.Plural) > 0 {
		out.Plural = make(map[string]PluralOptions, len(p.Plural))
		for name, opts := range p.Plural {
			copied := opts
			if len(opts.Categories) > 0 {
				copied.Categories = make(map[PluralCategory]string, len(opts.Categories))
				for category, text := range opts.Categories {
					copied.Categories[category] = text
				}
			}
			copied.Number = opts.Number.clone()
			out.Plural[name] = copied
		}
	}
	if len(p.Number) > 0 {
		out.Number = make(map[string]NumberOptions, len(p.Number))
		for name, opts := range p.Number {
			out.Number[name] = opts.clone()
		}
	}
	if len(p.Date) > 0 {
		out.Date = make(map[string]DateOptions, len(p.Date))
		for name, opts := range p.Date {
			out.Date[name] = opts
		}
	}
	if len(p.List) > 0 {
		out.List = make(map[string]ListOptions, len(p.List))
		for name, opts := range p.List {
			out.List[name] = opts
		}
	}
	if len(p.Enum) > 0 {
		out.Enum = make(map[string]EnumOptions, len(p.Enum))
		for name, opts := range p.Enum {
			copied := opts
			if len(opts.Values) > 0 {
				copied.Values = make(map[string]string, len(opts.Values))
				for raw, display := range opts.Values {
					copied.Values[raw] = display
				}
			}
			out.Enum[name] = copied
		}
	}
	return out
}

func (o NumberOptions) clone() NumberOptions {
	out := o
	if o.MinFraction != nil {
		v := *o.MinFraction
		out.MinFraction = &v
	}
	if o.MaxFraction != nil {
		v := *o.MaxFraction
		out.MaxFraction = &v
	}
	return out
}
