package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/labelsort/backend/internal/domain"
)

// Default pattern tables, mirroring the dispatch floor's standing
// configuration. Order matters everywhere: couriers are both match
// precedence and output order, sizes are both match order and sort
// order, and earlier style groups shadow later ones.
var (
	defaultCourierPriority = []string{"Shadowfax", "Xpress Bees", "Delhivery", "Valmo"}

	defaultSizeOrder = []string{"XS", "S", "M", "L", "XL", "XXL"}

	defaultStyleGroups = []StyleGroup{
		{Name: "Crop Hoodie", Keywords: []string{"crop", "@crop"}},
		{Name: "Tape Pant", Keywords: []string{"strip", "tape", "-tape", "-s-", "of"}},
		{Name: "Jumpsuit", Keywords: []string{"pc", "pcs", "zeme-01"}},
		{Name: "Fruit Print", Keywords: []string{"fruit"}},
	}
)

// StyleGroup maps a set of raw keywords to one canonical style name.
// Keyword sets across groups need not be disjoint; the first group whose
// keyword matches wins, so callers order groups most-specific first.
type StyleGroup struct {
	Name     string
	Keywords []string
}

// RegistryConfig holds the three pattern tables. Empty tables fall back
// to the defaults above.
type RegistryConfig struct {
	CourierPriority []string
	SizeOrder       []string
	StyleGroups     []StyleGroup
}

type compiledGroup struct {
	name     string
	patterns []*regexp.Regexp
}

// Registry is the static, immutable pattern configuration consumed by the
// classifier. All patterns are compiled once at construction.
type Registry struct {
	couriers      []string
	couriersLower []string
	sizes         []string
	sizePatterns  []*regexp.Regexp
	groups        []compiledGroup
}

// NewRegistry builds a registry from config, applying defaults for any
// table left empty.
func NewRegistry(cfg RegistryConfig) *Registry {
	couriers := cfg.CourierPriority
	if len(couriers) == 0 {
		couriers = defaultCourierPriority
	}
	sizes := cfg.SizeOrder
	if len(sizes) == 0 {
		sizes = defaultSizeOrder
	}
	groups := cfg.StyleGroups
	if len(groups) == 0 {
		groups = defaultStyleGroups
	}

	r := &Registry{
		couriers: append([]string(nil), couriers...),
		sizes:    append([]string(nil), sizes...),
	}
	for _, c := range r.couriers {
		r.couriersLower = append(r.couriersLower, strings.ToLower(c))
	}
	for _, s := range r.sizes {
		r.sizePatterns = append(r.sizePatterns, compileTokenPattern(s))
	}
	for _, g := range groups {
		cg := compiledGroup{name: g.Name}
		for _, kw := range g.Keywords {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue
			}
			cg.patterns = append(cg.patterns, compileWordPattern(kw))
		}
		if cg.name != "" && len(cg.patterns) > 0 {
			r.groups = append(r.groups, cg)
		}
	}
	return r
}

// DefaultRegistry returns a registry with the standing pattern tables.
func DefaultRegistry() *Registry {
	return NewRegistry(RegistryConfig{})
}

// compileTokenPattern builds a case-insensitive whole-token matcher: the
// token must not touch an alphanumeric character on either side. Go's
// regexp has no lookbehind, so the boundary is an explicit alternation.
func compileTokenPattern(token string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?i)(?:^|[^0-9a-z])%s(?:[^0-9a-z]|$)`, regexp.QuoteMeta(token)))
}

// compileWordPattern builds a case-insensitive whole-word/phrase matcher
// bounded by non-word characters (word = alphanumeric or underscore).
func compileWordPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?i)(?:^|[^0-9a-z_])%s(?:[^0-9a-z_]|$)`, regexp.QuoteMeta(keyword)))
}

// Couriers returns the courier priority list.
func (r *Registry) Couriers() []string {
	return append([]string(nil), r.couriers...)
}

// Sizes returns the size token order, smallest first.
func (r *Registry) Sizes() []string {
	return append([]string(nil), r.sizes...)
}

// SizeOrderWithNA returns the size order followed by the NA sentinel,
// which always sorts last within a bundle.
func (r *Registry) SizeOrderWithNA() []string {
	return append(r.Sizes(), domain.SizeNA)
}

// StyleNames returns the canonical style names in group order.
func (r *Registry) StyleNames() []string {
	names := make([]string, 0, len(r.groups))
	for _, g := range r.groups {
		names = append(names, g.name)
	}
	return names
}
