package state

// TotalPages returns ceil(n/size). It is 0 when there is nothing to show or
// the size is not positive.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Page returns the 1-based page of view holding elements
// [(index-1)*size, index*size), clipped to the view. Out of range pages are
// nil. The returned slice shares memory with view but has no spare capacity,
// so appending to it never writes into view.
func Page[T any](view []T, index, size int) []T {
	if index < 1 || size <= 0 {
		return nil
	}
	start := (index - 1) * size
	if start >= len(view) {
		return nil
	}
	end := min(start+size, len(view))
	return view[start:end:end]
}
