package numfmt

import (
	"errors"
	"testing"
)

func TestRegistryLookup(t *testing.T) {
	registry := DefaultRegistry()

	tests := []struct {
		code string
		want Locale
	}{
		{"en", USLocale},
		{"en-US", USLocale},
		{"es", SpanishLocale},
		{"es-MX", SpanishLocale}, // parent chain
		{"fr-CA", FrenchLocale},  // parent chain
		{"en-IN", IndianLocale},
		{"hi-IN", IndianLocale}, // parent chain
		{"de", USLocale},        // registry default
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := registry.Lookup(tt.code)
			if !ok {
				t.Fatalf("Lookup(%q) found nothing", tt.code)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %+v; want %+v", tt.code, got, tt.want)
			}
		})
	}
}

func TestRegistryLookupMiss(t *testing.T) {
	registry := NewRegistry(WithLocale("en", USLocale))

	if _, ok := registry.Lookup("zz"); ok {
		t.Error("Lookup without default resolved an unregistered code")
	}
	if _, err := registry.Format("zz", 1); !errors.Is(err, ErrUnknownLocale) {
		t.Errorf("Format error = %v; want ErrUnknownLocale", err)
	}
	if _, err := registry.Parse("zz", "1"); !errors.Is(err, ErrUnknownLocale) {
		t.Errorf("Parse error = %v; want ErrUnknownLocale", err)
	}
}

func TestRegistryResolverChain(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("pt", "es")

	registry := NewRegistry(
		WithResolver(resolver),
		WithLocale("es", SpanishLocale),
	)

	got, ok := registry.Lookup("pt")
	if !ok {
		t.Fatal("Lookup(pt) found nothing")
	}
	if got != SpanishLocale {
		t.Errorf("Lookup(pt) = %+v; want SpanishLocale", got)
	}
}

func TestRegistryRegisterInvalidatesCache(t *testing.T) {
	registry := DefaultRegistry()

	// Prime the cache through the default fallback.
	if got, ok := registry.Lookup("de"); !ok || got != USLocale {
		t.Fatalf("Lookup(de) = %+v, %v; want default USLocale", got, ok)
	}

	registry.Register("de", SpanishLocale)

	if got, ok := registry.Lookup("de"); !ok || got != SpanishLocale {
		t.Errorf("Lookup(de) after Register = %+v, %v; want SpanishLocale", got, ok)
	}
}

func TestRegistryFormatByCode(t *testing.T) {
	registry := DefaultRegistry()

	got, err := registry.Format("en-IN", 12345678.9)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if got != "1,23,45,678.90" {
		t.Errorf("Format(en-IN) = %q; want %q", got, "1,23,45,678.90")
	}

	value, err := registry.Parse("es", "1.234.567,891")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if value != 1234567.891 {
		t.Errorf("Parse(es) = %v; want %v", value, 1234567.891)
	}
}

func TestLocaleParentChain(t *testing.T) {
	tests := []struct {
		code string
		want string // expected member of the chain
	}{
		{"es-MX", "es"},
		{"en-AU", "en"},
		{"hi-IN", "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			chain := localeParentChain(tt.code)
			for _, candidate := range chain {
				if candidate == tt.want {
					return
				}
			}
			t.Errorf("localeParentChain(%q) = %v; want it to contain %q", tt.code, chain, tt.want)
		})
	}
}
