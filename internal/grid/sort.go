package grid

import "sort"

// sortIndices orders idx by the values of column col in the given direction.
// The sort is stable, so rows comparing equal keep their filtered order.
// DirNone or an unknown column leaves idx untouched (the comparator never
// reports less, and stability preserves order).
func sortIndices(idx []int, rows []Row, col string, dir Direction) {
	if col == "" || dir == DirNone {
		return
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if dir == DirDescending {
			a, b = b, a
		}
		return lessValue(rows[idx[a]][col], rows[idx[b]][col])
	})
}

// lessValue is a raw comparison with no type coercion: numbers compare
// numerically, strings lexicographically. Mixed or absent values never
// compare less, which makes the ordering for such columns a stable no-op.
func lessValue(a, b any) bool {
	an, aok := asNumber(a)
	bn, bok := asNumber(b)
	if aok && bok {
		return an < bn
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return as < bs
	}
	return false
}

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}
	return 0, false
}

// nextSort implements the header-click protocol: clicking a new column
// starts ascending; clicking the active column flips direction. Repeated
// clicks cycle ascending/descending and never reach an unsorted state.
func nextSort(current string, dir Direction, clicked string) (string, Direction) {
	if clicked != current {
		return clicked, DirAscending
	}
	if dir == DirAscending {
		return current, DirDescending
	}
	return current, DirAscending
}
