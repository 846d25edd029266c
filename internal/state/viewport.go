package state

// ComputeOffset returns the index of the first visible row so that the
// selection is always on screen. Scrolling only begins once the selection
// would leave the first page; after that the selection rides the bottom row.
// Pure function of its inputs, recomputed on every redraw.
func ComputeOffset(total, selected, visibleRows int) int {
	if total <= visibleRows {
		return 0
	}
	if selected < visibleRows {
		return 0
	}
	offset := selected - (visibleRows - 1)
	if offset > total-visibleRows {
		offset = total - visibleRows
	}
	return offset
}

// ClampOffset is the pager variant: no row is required visible, the offset
// is only clamped to the scrollable range.
func ClampOffset(offset, total, visibleRows int) int {
	if visibleRows < 1 {
		visibleRows = 1
	}
	maxOffset := total - visibleRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset < 0 {
		return 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}
