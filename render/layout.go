package render

// Viewport is the drawable terminal area in cells
type Viewport struct {
	Width  int
	Height int
}

// Region is a rectangle within the viewport, X/Y absolute from the top-left cell
type Region struct {
	X, Y int
	W, H int
}

// ComputeRegion centers a nominal footprint within the viewport
// Padding on an axis saturates to zero when the viewport is smaller than the footprint,
// in which case the region spans that whole axis. Pure: the viewport must be re-read by the caller each frame
func ComputeRegion(vp Viewport, nominalHeight, nominalWidth int) Region {
	vw := max(0, vp.Width)
	vh := max(0, vp.Height)

	padV := max(0, vh-max(0, nominalHeight)) / 2
	padH := max(0, vw-max(0, nominalWidth)) / 2

	return Region{
		X: padH,
		Y: padV,
		W: vw - 2*padH,
		H: vh - 2*padV,
	}
}

// Padding returns the vertical and horizontal padding in front of the region
func (r Region) Padding() (vertical, horizontal int) {
	return r.Y, r.X
}

// Empty reports whether the region has no drawable cells
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether an absolute cell lies inside the region
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// CenterLine returns the absolute origin of a row of given cell width, horizontally centered in the region
// Rows wider than the region start at the region's left edge and are clipped by the caller via Contains
func (r Region) CenterLine(row, width int) (x, y int, visible bool) {
	if row < 0 || row >= r.H || r.Empty() {
		return 0, 0, false
	}
	return r.X + max(0, r.W-width)/2, r.Y + row, true
}
