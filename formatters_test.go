package voxnova

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		value  float64
		opts   NumberOptions
		want   string
	}{
		{
			name:   "plain decimal",
			locale: "en",
			value:  42,
			want:   "42",
		},
		{
			name:   "grouped decimal",
			locale: "en",
			value:  1234.5,
			want:   "1,234.5",
		},
		{
			name:   "spanish separators",
			locale: "es",
			value:  1234.5,
			want:   "1.234,5",
		},
		{
			name:   "currency rounds to cents",
			locale: "en",
			value:  12.129,
			opts:   NumberOptions{Style: StyleCurrency, Currency: "USD"},
			want:   "$12.13",
		},
		{
			name:   "currency symbol after amount in spanish",
			locale: "es",
			value:  10,
			opts:   NumberOptions{Style: StyleCurrency, Currency: "EUR"},
			want:   "10,00 €",
		},
		{
			name:   "unknown currency code keeps the code",
			locale: "en",
			value:  5,
			opts:   NumberOptions{Style: StyleCurrency, Currency: "XTS"},
			want:   "XTS 5.00",
		},
		{
			name:   "unparseable currency code keeps the code",
			locale: "en",
			value:  5,
			opts:   NumberOptions{Style: StyleCurrency, Currency: "DOLLARS"},
			want:   "DOLLARS 5.00",
		},
		{
			name:   "zero-decimal currency drops the fraction",
			locale: "en",
			value:  9.99,
			opts:   NumberOptions{Style: StyleCurrency, Currency: "VND"},
			want:   "₫10",
		},
		{
			name:   "yen groups without decimals",
			locale: "en",
			value:  1234,
			opts:   NumberOptions{Style: StyleCurrency, Currency: "JPY"},
			want:   "¥1,234",
		},
		{
			name:   "declared fractions override the currency convention",
			locale: "en",
			value:  1234,
			opts:   NumberOptions{Style: StyleCurrency, Currency: "JPY", MinFraction: intRef(2), MaxFraction: intRef(2)},
			want:   "¥1,234.00",
		},
		{
			name:   "percent",
			locale: "en",
			value:  0.5,
			opts:   NumberOptions{Style: StylePercent},
			want:   "50%",
		},
		{
			name:   "explicit fraction digits",
			locale: "en",
			value:  3,
			opts:   NumberOptions{MinFraction: intRef(2), MaxFraction: intRef(2)},
			want:   "3.00",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatNumber(tc.locale, tc.value, tc.opts)
			if got != tc.want {
				t.Fatalf("FormatNumber(%s, %v) = %q want %q", tc.locale, tc.value, got, tc.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	when := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		locale string
		style  DateStyle
		want   string
	}{
		{name: "english short", locale: "en", style: DateShort, want: "1/1/2000"},
		{name: "english medium", locale: "en", style: DateMedium, want: "Jan 1, 2000"},
		{name: "english long", locale: "en", style: DateLong, want: "January 1, 2000"},
		{name: "english full", locale: "en", style: DateFull, want: "Saturday, January 1, 2000"},
		{name: "spanish medium", locale: "es", style: DateMedium, want: "1 ene 2000"},
		{name: "spanish long", locale: "es", style: DateLong, want: "1 de enero de 2000"},
		{name: "german medium", locale: "de", style: DateMedium, want: "1. Jan. 2000"},
		{name: "regional tag falls back to parent", locale: "es-MX", style: DateLong, want: "1 de enero de 2000"},
		{name: "unknown locale falls back to english", locale: "tlh", style: DateMedium, want: "Jan 1, 2000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatDate(tc.locale, when, tc.style)
			if got != tc.want {
				t.Fatalf("FormatDate(%s, %s) = %q want %q", tc.locale, tc.style, got, tc.want)
			}
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	when := time.Date(2000, time.January, 1, 14, 30, 0, 0, time.UTC)

	if got := FormatDateTime("en", when, DateShort); got != "1/1/2000 2:30 PM" {
		t.Fatalf("FormatDateTime(en) = %q", got)
	}
	if got := FormatDateTime("es", when, DateShort); got != "1/1/2000 14:30" {
		t.Fatalf("FormatDateTime(es) = %q", got)
	}
}

func TestFormatList(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		items  []string
		want   string
	}{
		{name: "empty", locale: "en", want: ""},
		{name: "single", locale: "en", items: []string{"tea"}, want: "tea"},
		{name: "pair", locale: "en", items: []string{"tea", "coffee"}, want: "tea and coffee"},
		{name: "oxford comma", locale: "en", items: []string{"a", "b", "c"}, want: "a, b, and c"},
		{name: "spanish pair", locale: "es", items: []string{"pan", "vino"}, want: "pan y vino"},
		{name: "spanish three", locale: "es", items: []string{"a", "b", "c"}, want: "a, b y c"},
		{name: "german pair", locale: "de", items: []string{"Brot", "Wein"}, want: "Brot und Wein"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatList(tc.locale, tc.items)
			if got != tc.want {
				t.Fatalf("FormatList(%s, %v) = %q want %q", tc.locale, tc.items, got, tc.want)
			}
		})
	}
}

func TestFormatCurrencyHelper(t *testing.T) {
	if got := FormatCurrency("en", 99.9, "usd"); got != "$99.90" {
		t.Fatalf("FormatCurrency = %q", got)
	}
}

func TestFormatPercentHelper(t *testing.T) {
	if got := FormatPercent("en", 0.25); got != "25%" {
		t.Fatalf("FormatPercent = %q", got)
	}
}
