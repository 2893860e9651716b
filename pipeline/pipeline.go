package pipeline

import (
	"time"

	"github.com/nox-robotics/topograph/coord"
	"github.com/nox-robotics/topograph/extractor"
	"github.com/nox-robotics/topograph/grid"
	"github.com/nox-robotics/topograph/render"
	"github.com/nox-robotics/topograph/skeleton"
	"github.com/nox-robotics/topograph/topo"
	"github.com/nox-robotics/topograph/vectorize"
)

// Run decodes cfg.ImagePath into an occupancy grid, thins it to a
// skeleton, extracts a raw topology graph, vectorizes it, optionally
// converts it to planar coordinates, and optionally renders it to PNG. It
// returns the final graph, the vectorizer's per-edge node groups
// flattened in edge-ID order, a Report of per-stage timings and final
// size, and the first error encountered.
//
// On error, the returned graph and node-group slice are nil, but Report
// still lists every stage that ran, including the one that failed.
func Run(cfg Config) (*topo.Graph, []topo.NodeID, *Report, error) {
	report := &Report{}

	var (
		g       *grid.Grid
		sk      *skeleton.Skeleton
		raw     *topo.Graph
		final   *topo.Graph
		groups  [][]topo.NodeID
		stageErr error
	)

	stageErr = timeStage(report, "grid", func() error {
		var err error
		g, err = grid.NewGridFromImage(cfg.ImagePath, cfg.OccupiedColor, cfg.Threshold, cfg.CellSize)
		return err
	})
	if stageErr != nil {
		return nil, nil, report, stageErr
	}

	_ = timeStage(report, "skeleton", func() error {
		sk = skeleton.Thin(g)
		return nil
	})

	_ = timeStage(report, "extract", func() error {
		raw = extractor.Extract(sk)
		return nil
	})

	_ = timeStage(report, "vectorize", func() error {
		final, groups = vectorize.Vectorize(raw)
		return nil
	})

	if cfg.ConvertToPlanar {
		h, _ := g.Dims()
		_ = timeStage(report, "coord", func() error {
			final = coord.ImageToPlanar(final, g.CellSize(), h)
			return nil
		})
	}

	if cfg.Render != nil {
		stageErr = timeStage(report, "render", func() error {
			return render.RenderToFile(cfg.Render.OutPath, final, cfg.Render.Options)
		})
		if stageErr != nil {
			return nil, nil, report, stageErr
		}
	}

	report.NodeCount = final.NodeCount()
	report.EdgeCount = final.EdgeCount()

	return final, flattenGroups(groups), report, nil
}

func timeStage(report *Report, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	report.Stages = append(report.Stages, StageTiming{Name: name, Duration: time.Since(start)})
	return err
}

func flattenGroups(groups [][]topo.NodeID) []topo.NodeID {
	total := 0
	for _, group := range groups {
		total += len(group)
	}

	flat := make([]topo.NodeID, 0, total)
	for _, group := range groups {
		flat = append(flat, group...)
	}

	return flat
}
