package voxnova

import (
	"strings"
	"testing"
)

const sampleCatalogYAML = `
simple: Simple message
home:
  title: Welcome
  nav:
    about: About us
plural:
  $template: "You have {messages:plural}"
  $params:
    plural:
      messages:
        categories:
          one: "1 message"
          other: "{?} messages"
number:
  $template: "The cost of this is {price:number}"
  $params:
    number:
      price:
        style: currency
        currency: USD
`

func TestDecodeCatalogYAML(t *testing.T) {
	catalog, err := DecodeCatalogYAML([]byte(sampleCatalogYAML))
	if err != nil {
		t.Fatalf("DecodeCatalogYAML: %v", err)
	}

	if msg, ok := catalog.Lookup("simple"); !ok || msg.Template != "Simple message" {
		t.Fatalf("simple = %+v ok=%v", msg, ok)
	}
	if msg, ok := catalog.Lookup("home.nav.about"); !ok || msg.Template != "About us" {
		t.Fatalf("home.nav.about = %+v ok=%v", msg, ok)
	}

	msg, ok := catalog.Lookup("plural")
	if !ok || msg.Params == nil {
		t.Fatalf("plural entry missing params: %+v", msg)
	}
	opts, ok := msg.Params.Plural["messages"]
	if !ok {
		t.Fatalf("plural options missing: %+v", msg.Params)
	}
	if opts.Categories[PluralOther] != "{?} messages" {
		t.Fatalf("other category = %q", opts.Categories[PluralOther])
	}

	msg, ok = catalog.Lookup("number")
	if !ok || msg.Params == nil {
		t.Fatalf("number entry missing params: %+v", msg)
	}
	numberOpts := msg.Params.Number["price"]
	if numberOpts.Style != StyleCurrency || numberOpts.Currency != "USD" {
		t.Fatalf("number options = %+v", numberOpts)
	}
}

func TestDecodeCatalogYAMLEndToEnd(t *testing.T) {
	catalog, err := DecodeCatalogYAML([]byte(sampleCatalogYAML))
	if err != nil {
		t.Fatalf("DecodeCatalogYAML: %v", err)
	}

	translator, err := New(WithLocale("en"), WithCatalog("en", catalog))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := translator.T("plural", Args{"messages": 2}); got != "You have 2 messages" {
		t.Fatalf("T(plural) = %q", got)
	}
	if got := translator.T("number", Args{"price": 12.129}); got != "The cost of this is $12.13" {
		t.Fatalf("T(number) = %q", got)
	}
}

func TestDecodeCatalogJSON(t *testing.T) {
	data := []byte(`{
		"simple": "Simple message",
		"status": {
			"$template": "Feature is {state:enum}",
			"$params": {
				"enum": {
					"state": {"values": {"on": "enabled"}, "other": "unknown"}
				}
			}
		}
	}`)

	catalog, err := DecodeCatalogJSON(data)
	if err != nil {
		t.Fatalf("DecodeCatalogJSON: %v", err)
	}

	msg, ok := catalog.Lookup("status")
	if !ok || msg.Params == nil {
		t.Fatalf("status entry = %+v ok=%v", msg, ok)
	}
	if msg.Params.Enum["state"].Other != "unknown" {
		t.Fatalf("enum options = %+v", msg.Params.Enum["state"])
	}
}

func TestDecodeTranslationsYAML(t *testing.T) {
	data := []byte(`
en:
  simple: Simple message
es:
  simple: Mensaje simple
`)

	translations, err := DecodeTranslationsYAML(data)
	if err != nil {
		t.Fatalf("DecodeTranslationsYAML: %v", err)
	}

	if got := translations.Locales(); len(got) != 2 || got[0] != "en" || got[1] != "es" {
		t.Fatalf("Locales() = %v", got)
	}
	if msg, ok := translations["es"].Lookup("simple"); !ok || msg.Template != "Mensaje simple" {
		t.Fatalf("es.simple = %+v ok=%v", msg, ok)
	}
}

func TestDecodeCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantSub string
	}{
		{
			name:    "non string template",
			yaml:    "bad:\n  $template: 42\n",
			wantSub: "$template must be a string",
		},
		{
			name:    "unexpected field in message entry",
			yaml:    "bad:\n  $template: ok\n  extra: nope\n",
			wantSub: "unexpected field",
		},
		{
			name:    "unsupported value type",
			yaml:    "bad: 42\n",
			wantSub: "unsupported value type",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeCatalogYAML([]byte(tc.yaml))
			if err == nil || !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("expected error containing %q, got %v", tc.wantSub, err)
			}
		})
	}
}
