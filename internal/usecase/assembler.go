package usecase

import "github.com/labelsort/backend/internal/domain"

// AssembleBundles derives the output bundles from a hierarchy.
//
// Couriers are emitted in the registry's fixed priority order — never in
// hierarchy insertion order — and UNKNOWN is never emitted. Styles under
// each courier follow first-seen order from hierarchy construction.
// Within a bundle, positions are concatenated per size token in registry
// order with NA last; each size leaf is already in ascending original
// position, so the result is stable within a size.
//
// A per-bundle seen set drops duplicate positions. Upstream, one page has
// exactly one classification, so duplicates cannot occur today; the guard
// holds the no-duplicates invariant even if the classifier ever changes.
// Bundles with no pages are suppressed.
func AssembleBundles(h *Hierarchy, registry *Registry) []domain.Bundle {
	sizeOrder := registry.SizeOrderWithNA()

	var bundles []domain.Bundle
	for _, courier := range registry.Couriers() {
		for _, style := range h.StylesInOrder(courier) {
			seen := make(map[int]bool)
			var positions []int
			for _, size := range sizeOrder {
				for _, pos := range h.Positions(courier, style, size) {
					if seen[pos] {
						continue
					}
					seen[pos] = true
					positions = append(positions, pos)
				}
			}
			if len(positions) == 0 {
				continue
			}
			bundles = append(bundles, domain.Bundle{
				Courier:   courier,
				Style:     style,
				Positions: positions,
			})
		}
	}
	return bundles
}
