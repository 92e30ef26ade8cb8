package numfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileLoader reads locale definitions from YAML or JSON files.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

// Load reads every configured file and merges the locale definitions, later
// files overriding earlier ones.
func (l *FileLoader) Load() (map[string]Locale, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("numfmt: no loader paths configured")
	}

	merged := make(map[string]Locale)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("numfmt: read %s: %w", path, err)
		}

		locales, err := decodeLocaleFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("numfmt: decode %s: %w", path, err)
		}
		for code, locale := range locales {
			merged[code] = locale
		}
	}

	return merged, nil
}

// LoadInto registers every loaded locale on the registry.
func (l *FileLoader) LoadInto(registry *Registry) error {
	locales, err := l.Load()
	if err != nil {
		return err
	}
	for code, locale := range locales {
		registry.Register(code, locale)
	}
	return nil
}

func decodeLocaleFile(path string, data []byte) (map[string]Locale, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return ParseLocalesJSON(data)
	case ".yaml", ".yml":
		return ParseLocalesYAML(data)
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

// localeSpec is the on-disk shape of a locale definition. Decimals are
// encoded as "min:N", "max:N", or "exact:N"; the numbering system as
// "western" or "indian".
type localeSpec struct {
	Decimals          string `json:"decimals" yaml:"decimals"`
	ThousandSeparator string `json:"thousand_separator" yaml:"thousand_separator"`
	DecimalSeparator  string `json:"decimal_separator" yaml:"decimal_separator"`
	NegativePrefix    string `json:"negative_prefix" yaml:"negative_prefix"`
	NegativeSuffix    string `json:"negative_suffix" yaml:"negative_suffix"`
	PositivePrefix    string `json:"positive_prefix" yaml:"positive_prefix"`
	PositiveSuffix    string `json:"positive_suffix" yaml:"positive_suffix"`
	ZeroPrefix        string `json:"zero_prefix" yaml:"zero_prefix"`
	ZeroSuffix        string `json:"zero_suffix" yaml:"zero_suffix"`
	System            string `json:"system" yaml:"system"`
}

// ParseLocalesYAML decodes a map of locale code to definition from YAML.
func ParseLocalesYAML(data []byte) (map[string]Locale, error) {
	var raw map[string]localeSpec
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("empty locales yaml")
	}
	return buildLocales(raw)
}

// ParseLocalesJSON decodes a map of locale code to definition from JSON.
func ParseLocalesJSON(data []byte) (map[string]Locale, error) {
	var raw map[string]localeSpec
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("json parse error: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("empty locales json")
	}
	return buildLocales(raw)
}

func buildLocales(raw map[string]localeSpec) (map[string]Locale, error) {
	locales := make(map[string]Locale, len(raw))
	for code, spec := range raw {
		if code == "" {
			return nil, errors.New("empty locale code")
		}
		locale, err := spec.locale()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", code, err)
		}
		locales[code] = locale
	}
	return locales, nil
}

func (s localeSpec) locale() (Locale, error) {
	decimals, err := parseDecimalsSpec(s.Decimals)
	if err != nil {
		return Locale{}, err
	}

	system := Western
	switch strings.ToLower(s.System) {
	case "", "western":
	case "indian":
		system = Indian
	default:
		return Locale{}, fmt.Errorf("unknown numbering system %q", s.System)
	}

	return Locale{
		Decimals:          decimals,
		ThousandSeparator: s.ThousandSeparator,
		DecimalSeparator:  s.DecimalSeparator,
		NegativePrefix:    s.NegativePrefix,
		NegativeSuffix:    s.NegativeSuffix,
		PositivePrefix:    s.PositivePrefix,
		PositiveSuffix:    s.PositiveSuffix,
		ZeroPrefix:        s.ZeroPrefix,
		ZeroSuffix:        s.ZeroSuffix,
		System:            system,
	}, nil
}

// parseDecimalsSpec reads "min:2", "max:3", or "exact:2". An empty spec
// means Min(0), showing whatever digits the value carries.
func parseDecimalsSpec(s string) (Decimals, error) {
	if strings.TrimSpace(s) == "" {
		return Min(0), nil
	}

	mode, countText, ok := strings.Cut(s, ":")
	if !ok {
		return Decimals{}, fmt.Errorf("malformed decimals %q", s)
	}

	count, err := strconv.Atoi(strings.TrimSpace(countText))
	if err != nil || count < 0 {
		return Decimals{}, fmt.Errorf("malformed decimals count %q", s)
	}

	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "min":
		return Min(count), nil
	case "max":
		return Max(count), nil
	case "exact":
		return Exact(count), nil
	default:
		return Decimals{}, fmt.Errorf("unknown decimals mode %q", s)
	}
}
