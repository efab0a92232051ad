package usecase

import (
	"strings"

	"github.com/labelsort/backend/internal/domain"
)

// Classifier maps one page's extracted text to a (courier, style, size)
// triple using the registry's pattern tables. All detection is pure and
// total: any input, including the empty string, yields a valid triple.
//
// The three axes are detected independently from the same text and may
// contradict real-world expectations on ambiguous labels; that is
// accepted behavior, not something to reconcile here.
type Classifier struct {
	registry *Registry
}

// NewClassifier creates a classifier over the given registry.
func NewClassifier(registry *Registry) *Classifier {
	return &Classifier{registry: registry}
}

// DetectCourier returns the first courier from the priority list found as
// a case-insensitive substring of text, or UNKNOWN. Substring, not whole
// word: courier names rarely collide inside other words, and this matches
// how the labels have always been scanned.
func (c *Classifier) DetectCourier(text string) string {
	lower := strings.ToLower(text)
	for i, courier := range c.registry.couriers {
		if strings.Contains(lower, c.registry.couriersLower[i]) {
			return courier
		}
	}
	return domain.CourierUnknown
}

// DetectStyle returns the canonical name of the first style group with a
// keyword occurring as a whole word/phrase in text, or Other. Groups are
// scanned in registry order, keywords in list order; the earliest group
// wins regardless of keyword length, so short generic keywords in early
// groups shadow longer ones in later groups.
func (c *Classifier) DetectStyle(text string) string {
	for _, g := range c.registry.groups {
		for _, p := range g.patterns {
			if p.MatchString(text) {
				return g.name
			}
		}
	}
	return domain.StyleOther
}

// DetectSize returns the first size token occurring as a whole token in
// text (not touching an alphanumeric character on either side), or NA.
// The token boundary keeps a size letter from matching inside a SKU code.
func (c *Classifier) DetectSize(text string) string {
	for i, size := range c.registry.sizes {
		if c.registry.sizePatterns[i].MatchString(text) {
			return size
		}
	}
	return domain.SizeNA
}

// Classify computes the full triple for one page's text.
func (c *Classifier) Classify(text string) domain.Classification {
	return domain.Classification{
		Courier: c.DetectCourier(text),
		Style:   c.DetectStyle(text),
		Size:    c.DetectSize(text),
	}
}
