package usecase

import "github.com/labelsort/backend/internal/domain"

// Hierarchy is the courier → style → size → positions index built from
// one pass over the classified pages. The style dimension preserves
// first-seen order (Go maps are unordered, so the order is kept in an
// explicit slice per courier). Read-only after construction.
type Hierarchy struct {
	buckets map[string]*courierBucket
}

type courierBucket struct {
	styleOrder []string
	styles     map[string]map[string][]int // style -> size -> positions
}

func newHierarchy() *Hierarchy {
	return &Hierarchy{buckets: make(map[string]*courierBucket)}
}

// add appends pos to the leaf at [courier][style][size], creating empty
// buckets on first access.
func (h *Hierarchy) add(courier, style, size string, pos int) {
	cb, ok := h.buckets[courier]
	if !ok {
		cb = &courierBucket{styles: make(map[string]map[string][]int)}
		h.buckets[courier] = cb
	}
	sizes, ok := cb.styles[style]
	if !ok {
		sizes = make(map[string][]int)
		cb.styles[style] = sizes
		cb.styleOrder = append(cb.styleOrder, style)
	}
	sizes[size] = append(sizes[size], pos)
}

// StylesInOrder returns the styles recorded under courier, in the order
// they were first encountered during construction.
func (h *Hierarchy) StylesInOrder(courier string) []string {
	cb, ok := h.buckets[courier]
	if !ok {
		return nil
	}
	return append([]string(nil), cb.styleOrder...)
}

// Positions returns the scan-ordered positions at one leaf.
func (h *Hierarchy) Positions(courier, style, size string) []int {
	cb, ok := h.buckets[courier]
	if !ok {
		return nil
	}
	return cb.styles[style][size]
}

// Couriers returns every courier that has at least one page, including
// UNKNOWN. Order is unspecified; output ordering always comes from the
// registry's priority list, never from here.
func (h *Hierarchy) Couriers() []string {
	couriers := make([]string, 0, len(h.buckets))
	for c := range h.buckets {
		couriers = append(couriers, c)
	}
	return couriers
}

// TotalPositions returns the number of positions across all leaves.
func (h *Hierarchy) TotalPositions() int {
	n := 0
	for _, cb := range h.buckets {
		for _, sizes := range cb.styles {
			for _, positions := range sizes {
				n += len(positions)
			}
		}
	}
	return n
}

// BuildHierarchy classifies every page in ascending position order and
// indexes its position under its (courier, style, size) triple. Pages
// matching nothing on any axis are additionally reported as unparsed.
// No page is ever dropped: every input position lands in exactly one
// leaf. Total over any page sequence, including the empty one.
func BuildHierarchy(pages []domain.PageRecord, classifier *Classifier) (*Hierarchy, []int) {
	h := newHierarchy()
	var unparsed []int
	for _, page := range pages {
		cls := classifier.Classify(page.RawText)
		h.add(cls.Courier, cls.Style, cls.Size, page.Position)
		if cls.Unparsed() {
			unparsed = append(unparsed, page.Position)
		}
	}
	return h, unparsed
}
