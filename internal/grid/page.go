package grid

// totalPages is max(1, ceil(n/size)). An empty result set still has one
// (empty) page so Page stays in a valid range.
func totalPages(n, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (n + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// clampPage forces page into [1, totalPages(n, size)].
func clampPage(page, n, size int) int {
	if page < 1 {
		return 1
	}
	if max := totalPages(n, size); page > max {
		return max
	}
	return page
}

// pageWindow returns the [lo, hi) slice bounds of the given page within a
// sequence of n rows. The final page may be short.
func pageWindow(n, page, size int) (int, int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	page = clampPage(page, n, size)
	lo := (page - 1) * size
	if lo > n {
		lo = n
	}
	hi := lo + size
	if hi > n {
		hi = n
	}
	return lo, hi
}

// CanPrev reports whether first/previous navigation would change the page.
// Hosts use it to disable the corresponding affordances on page 1.
func (s State) CanPrev() bool { return s.Page > 1 }

// CanNext reports whether next/last navigation would change the page.
func (s State) CanNext() bool { return s.Page < s.TotalPages() }
