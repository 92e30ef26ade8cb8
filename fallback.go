package numfmt

import (
	"strings"

	"golang.org/x/text/language"
)

// FallbackResolver resolves fallback chains for locale codes.
type FallbackResolver interface {
	Resolve(code string) []string
}

// StaticFallbackResolver maps locale codes to explicit fallback chains.
type StaticFallbackResolver struct {
	chains map[string][]string
}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

func (r *StaticFallbackResolver) Set(code string, parents ...string) {
	if r == nil || code == "" {
		return
	}
	if r.chains == nil {
		r.chains = make(map[string][]string)
	}
	r.chains[code] = append([]string(nil), parents...)
}

func (r *StaticFallbackResolver) Resolve(code string) []string {
	if r == nil || r.chains == nil {
		return nil
	}
	return r.chains[code]
}

// localeParentChain walks a code up its BCP 47 parent tags, so "es-MX"
// yields ["es"]. Codes x/text cannot parse fall back to trimming dashed
// segments from the right.
func localeParentChain(code string) []string {
	if code == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(code); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			value := parent.String()
			if value == "" || value == "und" {
				break
			}
			if _, ok := seen[value]; ok {
				break
			}
			seen[value] = struct{}{}
			chain = append(chain, value)
		}
	}

	current := code
	for {
		idx := strings.LastIndex(current, "-")
		if idx <= 0 {
			break
		}
		current = current[:idx]
		if _, ok := seen[current]; ok {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}
