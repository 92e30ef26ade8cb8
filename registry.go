package numfmt

import (
	"fmt"
	"sync"
)

// Registry maps locale codes ("en", "es-MX", "en-IN") to Locale
// configurations so callers can format by code without carrying Locale
// values around. Lookup walks the exact code, the configured resolver chain,
// the BCP 47 parent chain, and finally the registry default.
type Registry struct {
	mu       sync.RWMutex
	locales  map[string]Locale
	cache    map[string]Locale
	resolver FallbackResolver
	fallback string
}

type registryConfig struct {
	resolver FallbackResolver
	locales  map[string]Locale
	fallback string
}

type RegistryOption func(*registryConfig)

// WithResolver installs a fallback resolver consulted before the parent
// chain.
func WithResolver(resolver FallbackResolver) RegistryOption {
	return func(rc *registryConfig) {
		rc.resolver = resolver
	}
}

// WithLocale registers a locale configuration under code.
func WithLocale(code string, locale Locale) RegistryOption {
	return func(rc *registryConfig) {
		if code == "" {
			return
		}
		if rc.locales == nil {
			rc.locales = make(map[string]Locale)
		}
		rc.locales[code] = locale
	}
}

// WithDefault names the code every failed lookup falls back to.
func WithDefault(code string) RegistryOption {
	return func(rc *registryConfig) {
		rc.fallback = code
	}
}

// NewRegistry builds a registry from the given options.
func NewRegistry(opts ...RegistryOption) *Registry {
	cfg := registryConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	registry := &Registry{
		locales:  make(map[string]Locale),
		resolver: cfg.resolver,
		fallback: cfg.fallback,
	}
	for code, locale := range cfg.locales {
		registry.locales[code] = locale
	}
	return registry
}

// DefaultRegistry returns a registry seeded with the preset locales under
// their usual codes.
func DefaultRegistry() *Registry {
	return NewRegistry(
		WithDefault("en"),
		WithLocale("en", USLocale),
		WithLocale("en-US", USLocale),
		WithLocale("fr", FrenchLocale),
		WithLocale("es", SpanishLocale),
		WithLocale("en-IN", IndianLocale),
		WithLocale("hi", IndianLocale),
	)
}

// Register sets or replaces the configuration for code.
func (r *Registry) Register(code string, locale Locale) {
	if r == nil || code == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.locales == nil {
		r.locales = make(map[string]Locale)
	}
	r.locales[code] = locale
	r.cache = nil
}

// Lookup resolves code to a Locale, reporting whether any candidate in the
// fallback walk matched.
func (r *Registry) Lookup(code string) (Locale, bool) {
	if r == nil {
		return Locale{}, false
	}

	r.mu.RLock()
	if r.cache != nil {
		if locale, ok := r.cache[code]; ok {
			r.mu.RUnlock()
			return locale, true
		}
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if locale, ok := r.cache[code]; ok {
		return locale, true
	}

	for _, candidate := range r.candidateCodes(code) {
		if locale, ok := r.locales[candidate]; ok {
			if r.cache == nil {
				r.cache = make(map[string]Locale)
			}
			r.cache[code] = locale
			return locale, true
		}
	}

	return Locale{}, false
}

// Format renders value under the locale registered for code.
func (r *Registry) Format(code string, value float64) (string, error) {
	locale, ok := r.Lookup(code)
	if !ok {
		return "", fmt.Errorf("format %q: %w", code, ErrUnknownLocale)
	}
	return Format(locale, value)
}

// Parse reads text under the locale registered for code.
func (r *Registry) Parse(code, text string) (float64, error) {
	locale, ok := r.Lookup(code)
	if !ok {
		return 0, fmt.Errorf("parse %q: %w", code, ErrUnknownLocale)
	}
	return Parse(locale, text)
}

// candidateCodes orders the codes to try: the code itself, the resolver
// chain, the parent chain, then the registry default.
func (r *Registry) candidateCodes(code string) []string {
	candidates := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)

	push := func(candidate string) {
		if candidate == "" {
			return
		}
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		candidates = append(candidates, candidate)
	}

	push(code)
	if r.resolver != nil {
		for _, parent := range r.resolver.Resolve(code) {
			push(parent)
		}
	}
	for _, parent := range localeParentChain(code) {
		push(parent)
	}
	push(r.fallback)

	return candidates
}
