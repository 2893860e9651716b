package pipeline

import (
	"time"

	"github.com/nox-robotics/topograph/grid"
	"github.com/nox-robotics/topograph/render"
)

// RenderConfig, when set on Config, makes Run export the final graph as a
// PNG at OutPath after vectorization (and, if requested, planar
// conversion).
type RenderConfig struct {
	OutPath string
	Options render.Options
}

// Config parameterizes a full grid-to-graph run.
type Config struct {
	// ImagePath is the raster file decoded into the occupancy grid.
	ImagePath string
	// OccupiedColor and Threshold classify grid cells; see grid.NewGridFromImage.
	OccupiedColor grid.OccupiedColor
	Threshold     uint8
	// CellSize is the physical edge length of one grid cell, used by the
	// grid and, if ConvertToPlanar is set, by the coordinate conversion.
	CellSize float64
	// ConvertToPlanar rebuilds the vectorized graph in planar (meters,
	// bottom-left-origin) coordinates before returning and, if set,
	// rendering.
	ConvertToPlanar bool
	// Render, if non-nil, writes a PNG of the final graph.
	Render *RenderConfig
}

// StageTiming records the wall-clock cost of one pipeline stage.
type StageTiming struct {
	Name     string
	Duration time.Duration
}

// Report summarizes a completed Run: per-stage timings and the final
// graph's size, for a caller to log however it wants.
type Report struct {
	Stages    []StageTiming
	NodeCount int
	EdgeCount int
}
