package voxnova

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateTranslationsOK(t *testing.T) {
	data := Translations{
		"en": Catalog{
			"plain": Msg("no placeholders"),
			"plural": Message{
				Template: "{n:plural}",
				Params: &ParamOptions{
					Plural: map[string]PluralOptions{
						"n": {Categories: map[PluralCategory]string{PluralOther: "{?}"}},
					},
				},
			},
			"nested": Catalog{
				"price": Message{
					Template: "{price:number}",
					Params: &ParamOptions{
						Number: map[string]NumberOptions{
							"price": {Style: StyleCurrency, Currency: "EUR"},
						},
					},
				},
			},
		},
	}

	if err := ValidateTranslations(data); err != nil {
		t.Fatalf("ValidateTranslations: %v", err)
	}
}

func TestValidateTranslationsFailures(t *testing.T) {
	two := 2
	zero := 0
	negative := -1

	tests := []struct {
		name    string
		msg     Message
		wantSub string
	}{
		{
			name: "plural missing other",
			msg: Message{
				Template: "{n:plural}",
				Params: &ParamOptions{
					Plural: map[string]PluralOptions{
						"n": {Categories: map[PluralCategory]string{PluralOne: "one"}},
					},
				},
			},
			wantSub: "missing the other category",
		},
		{
			name: "plural unknown mode",
			msg: Message{
				Template: "{n:plural}",
				Params: &ParamOptions{
					Plural: map[string]PluralOptions{
						"n": {Mode: "approximate", Categories: map[PluralCategory]string{PluralOther: "x"}},
					},
				},
			},
			wantSub: "unknown plural mode",
		},
		{
			name: "options without placeholder",
			msg: Message{
				Template: "static text",
				Params: &ParamOptions{
					Number: map[string]NumberOptions{"n": {}},
				},
			},
			wantSub: "without a matching placeholder",
		},
		{
			name: "unknown number style",
			msg: Message{
				Template: "{n:number}",
				Params: &ParamOptions{
					Number: map[string]NumberOptions{"n": {Style: "scientific"}},
				},
			},
			wantSub: "unknown number style",
		},
		{
			name: "currency style without code",
			msg: Message{
				Template: "{n:number}",
				Params: &ParamOptions{
					Number: map[string]NumberOptions{"n": {Style: StyleCurrency}},
				},
			},
			wantSub: "without a currency code",
		},
		{
			name: "bad currency code",
			msg: Message{
				Template: "{n:number}",
				Params: &ParamOptions{
					Number: map[string]NumberOptions{"n": {Style: StyleCurrency, Currency: "DOLLARS"}},
				},
			},
			wantSub: "unknown currency code",
		},
		{
			name: "fraction bounds inverted",
			msg: Message{
				Template: "{n:number}",
				Params: &ParamOptions{
					Number: map[string]NumberOptions{"n": {MinFraction: &two, MaxFraction: &zero}},
				},
			},
			wantSub: "min_fraction exceeds max_fraction",
		},
		{
			name: "negative fraction digits",
			msg: Message{
				Template: "{n:number}",
				Params: &ParamOptions{
					Number: map[string]NumberOptions{"n": {MinFraction: &negative}},
				},
			},
			wantSub: "negative min_fraction",
		},
		{
			name: "unknown date style",
			msg: Message{
				Template: "{d:date}",
				Params: &ParamOptions{
					Date: map[string]DateOptions{"d": {DateStyle: "relative"}},
				},
			},
			wantSub: "unknown date style",
		},
		{
			name: "unknown list style",
			msg: Message{
				Template: "{l:list}",
				Params: &ParamOptions{
					List: map[string]ListOptions{"l": {Style: "unit"}},
				},
			},
			wantSub: "unknown list style",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTranslations(Translations{"en": Catalog{"key": tc.msg}})

			var catalogErr *CatalogError
			if !errors.As(err, &catalogErr) {
				t.Fatalf("expected CatalogError, got %v", err)
			}
			if !strings.Contains(catalogErr.Reason, tc.wantSub) {
				t.Fatalf("reason %q does not contain %q", catalogErr.Reason, tc.wantSub)
			}
			if catalogErr.Locale != "en" || catalogErr.Key != "key" {
				t.Fatalf("error location = %s/%s", catalogErr.Locale, catalogErr.Key)
			}
		})
	}
}

func TestValidateNestedKeyPath(t *testing.T) {
	data := Translations{
		"en": Catalog{
			"account": Catalog{
				"inbox": Message{
					Template: "{n:plural}",
					Params: &ParamOptions{
						Plural: map[string]PluralOptions{
							"n": {Categories: map[PluralCategory]string{PluralOne: "one"}},
						},
					},
				},
			},
		},
	}

	err := ValidateTranslations(data)
	var catalogErr *CatalogError
	if !errors.As(err, &catalogErr) {
		t.Fatalf("expected CatalogError, got %v", err)
	}
	if catalogErr.Key != "account.inbox" {
		t.Fatalf("error key = %q want account.inbox", catalogErr.Key)
	}
}
