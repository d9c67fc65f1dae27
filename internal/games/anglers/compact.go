package anglers

// compact removes every element for which dead reports true, in place.
// Survivors keep their relative order and the backing array is reused, so a
// tick never allocates to drop entities.
func compact[T any](items []T, dead func(*T) bool) []T {
	kept := items[:0]
	for i := range items {
		if !dead(&items[i]) {
			kept = append(kept, items[i])
		}
	}
	// Zero the tail so dropped entities do not pin memory through the array.
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}
