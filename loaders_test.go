package numfmt

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const localesYAML = `
de-CH:
  decimals: "exact:2"
  thousand_separator: "'"
  decimal_separator: "."
  negative_prefix: "−"
ta-IN:
  decimals: "exact:2"
  thousand_separator: ","
  decimal_separator: "."
  system: indian
`

const localesJSON = `{
  "fr-CA": {
    "decimals": "max:3",
    "thousand_separator": " ",
    "decimal_separator": ","
  }
}`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileLoaderYAMLAndJSON(t *testing.T) {
	loader := NewFileLoader(
		writeTempFile(t, "extra.yaml", localesYAML),
		writeTempFile(t, "extra.json", localesJSON),
	)

	locales, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(locales) != 3 {
		t.Fatalf("expected 3 locales, got %d", len(locales))
	}

	swiss := locales["de-CH"]
	if swiss.ThousandSeparator != "'" || swiss.Decimals != Exact(2) || swiss.NegativePrefix != "−" {
		t.Errorf("unexpected de-CH locale: %+v", swiss)
	}
	if locales["ta-IN"].System != Indian {
		t.Errorf("ta-IN system = %q; want indian", locales["ta-IN"].System)
	}
	if canadian := locales["fr-CA"]; canadian.Decimals != Max(3) || canadian.DecimalSeparator != "," {
		t.Errorf("unexpected fr-CA locale: %+v", canadian)
	}
}

func TestFileLoaderFormatsLoadedLocale(t *testing.T) {
	loader := NewFileLoader(writeTempFile(t, "extra.yaml", localesYAML))

	locales, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got, err := Format(locales["de-CH"], 1234567.89)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "1'234'567.89" {
		t.Errorf("Format = %q; want %q", got, "1'234'567.89")
	}
}

func TestFileLoaderLoadInto(t *testing.T) {
	registry := DefaultRegistry()
	loader := NewFileLoader(writeTempFile(t, "extra.yaml", localesYAML))

	if err := loader.LoadInto(registry); err != nil {
		t.Fatalf("LoadInto: %v", err)
	}

	got, err := registry.Format("de-CH", 1234.5)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "1'234.50" {
		t.Errorf("Format(de-CH) = %q; want %q", got, "1'234.50")
	}
}

func TestFileLoaderUnsupportedExtension(t *testing.T) {
	loader := NewFileLoader(writeTempFile(t, "locales.txt", localesYAML))

	if _, err := loader.Load(); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestFileLoaderNoPaths(t *testing.T) {
	if _, err := NewFileLoader().Load(); err == nil {
		t.Fatal("expected error for empty loader")
	}
}

func TestParseLocalesErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad decimals mode", "en:\n  decimals: \"exactly:2\"\n"},
		{"bad decimals count", "en:\n  decimals: \"min:x\"\n"},
		{"negative decimals count", "en:\n  decimals: \"max:-1\"\n"},
		{"bad system", "en:\n  system: mayan\n"},
		{"empty document", ""},
		{"not yaml", "[unbalanced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLocalesYAML([]byte(tt.yaml)); err == nil {
				t.Errorf("ParseLocalesYAML(%q) succeeded; want error", tt.yaml)
			}
		})
	}
}

func TestParseDecimalsSpec(t *testing.T) {
	tests := []struct {
		spec string
		want Decimals
	}{
		{"min:0", Min(0)},
		{"min:2", Min(2)},
		{"max:3", Max(3)},
		{"exact:2", Exact(2)},
		{"EXACT:2", Exact(2)},
		{"", Min(0)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := parseDecimalsSpec(tt.spec)
			if err != nil {
				t.Fatalf("parseDecimalsSpec(%q) error: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("parseDecimalsSpec(%q) = %+v; want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseLocalesJSONBadPayload(t *testing.T) {
	if _, err := ParseLocalesJSON([]byte("{")); err == nil {
		t.Fatal("expected error for malformed json")
	}
	if _, err := ParseLocalesJSON([]byte("{}")); err == nil {
		t.Fatal("expected error for empty json document")
	}
}

func TestFileLoaderMissingFile(t *testing.T) {
	loader := NewFileLoader(filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := loader.Load()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v; want wrapped os.ErrNotExist", err)
	}
}
