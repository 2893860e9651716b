package render

import "github.com/nox-robotics/topograph/geom"

// Options controls how a topology graph is projected onto a raster image.
type Options struct {
	// PixelSize is the number of graph-position units one output pixel
	// covers. Must be > 0.
	PixelSize float64
	// MarginPx pads the rendered bounding box on every side.
	MarginPx int
	// DrawWaypoints selects the rendering mode: false draws each edge as
	// a straight line between its endpoints; true draws every retained
	// waypoint as an individual white pixel.
	DrawWaypoints bool
	// RoI overrides the bounding box Render would otherwise compute from
	// the graph's own node positions (and waypoints, in waypoint mode).
	// Nil means auto-compute. An explicit RoI is needed to render a
	// planar-converted graph (coord.ImageToPlanar) against the same
	// bottom-left-origin box used to produce it, per spec.md §6, rather
	// than a box re-derived from whatever subset of nodes this call
	// happens to draw.
	RoI *RoI
}

// RoI is the axis-aligned bounding box of a set of positions, in
// graph-position units (not yet scaled to pixels), grounded on
// `topology_map_exporter.rs`'s `get_roi`.
type RoI struct {
	Left, Right, Top, Bottom float64
}

func (r *RoI) include(p geom.Vector2) {
	if p.X < r.Left {
		r.Left = p.X
	}
	if p.X > r.Right {
		r.Right = p.X
	}
	if p.Y < r.Bottom {
		r.Bottom = p.Y
	}
	if p.Y > r.Top {
		r.Top = p.Y
	}
}

func newRoI(first geom.Vector2) RoI {
	return RoI{Left: first.X, Right: first.X, Top: first.Y, Bottom: first.Y}
}
