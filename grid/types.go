// Package grid defines the occupancy grid that is the entry point of the
// topology extraction pipeline: a binary Vacant/Occupied raster decoded
// from an image, with a forced-Occupied border.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrImageNotFound indicates the image path could not be opened.
	ErrImageNotFound = errors.New("grid: image file not found")
	// ErrImageDecodeFailed indicates the opened file could not be decoded
	// as a supported raster format.
	ErrImageDecodeFailed = errors.New("grid: image decode failed")
	// ErrEmptyImage indicates the decoded image has zero width or height.
	ErrEmptyImage = errors.New("grid: decoded image has no pixels")
)

// State is a cell's occupancy.
type State int

const (
	// Vacant cells are free space the skeletonizer may thin.
	Vacant State = iota
	// Occupied cells are obstacles; never thinned, never traversed.
	Occupied
)

// String renders the state for logs and test failure messages.
func (s State) String() string {
	if s == Occupied {
		return "Occupied"
	}

	return "Vacant"
}

// OccupiedColor selects which end of the grayscale range counts as
// occupied: Black treats pixel values below the threshold as occupied,
// White treats values above the threshold as occupied.
type OccupiedColor int

const (
	// Black pixels below the threshold are occupied.
	Black OccupiedColor = iota
	// White pixels above the threshold are occupied.
	White
)

// Grid is a row-major binary occupancy raster. It is immutable once built;
// the outermost ring of cells is always Occupied regardless of the source
// image, so callers and the skeletonizer never need a bounds check before
// reading a cell's 8 neighbors.
type Grid struct {
	h, w     int
	cells    []State
	cellSize float64
}

func (g *Grid) index(r, c int) int {
	return r*g.w + c
}

// Dims returns the grid's row and column counts.
func (g *Grid) Dims() (h, w int) {
	return g.h, g.w
}

// CellSize returns the edge length, in planar units, of one grid cell.
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// At returns the state of the cell at (row, col). Out-of-range coordinates
// are reported as Occupied, consistent with the forced border.
func (g *Grid) At(r, c int) State {
	if r < 0 || r >= g.h || c < 0 || c >= g.w {
		return Occupied
	}

	return g.cells[g.index(r, c)]
}

func (g *Grid) set(r, c int, s State) {
	g.cells[g.index(r, c)] = s
}
