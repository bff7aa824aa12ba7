package tui

const (
	cellWidth  = 10
	cellHeight = 5
	gapX       = 2
	gapY       = 1

	gridWidth  = 3*cellWidth + 2*gapX
	gridHeight = 3*cellHeight + 2*gapY

	// status and help lines under the grid
	footerHeight = 2
)

// layout - maps terminal coordinates to board cells. The grid is centred in the area above the footer.
type layout struct {
	left int
	top  int
}

func newLayout(width, height int) layout {
	return layout{
		left: max((width-gridWidth)/2, 0),
		top:  max((height-footerHeight-gridHeight)/2, 0),
	}
}

// cellAt - returns the cell under x, y; false for the gaps and everything outside the grid.
func (that layout) cellAt(x, y int) (int, bool) {
	x -= that.left
	y -= that.top

	if x < 0 || y < 0 || x >= gridWidth || y >= gridHeight {
		return 0, false
	}

	if x%(cellWidth+gapX) >= cellWidth || y%(cellHeight+gapY) >= cellHeight {
		return 0, false
	}

	return (y/(cellHeight+gapY))*3 + x/(cellWidth+gapX), true
}
