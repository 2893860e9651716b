package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nox-robotics/topograph/grid"
	"github.com/nox-robotics/topograph/pipeline"
	"github.com/nox-robotics/topograph/render"
)

func newRenderCmd() *cobra.Command {
	var (
		occupiedColor string
		threshold     uint8
		cellSize      float64
		out           string
		pixelSize     float64
		margin        int
		drawWaypoints bool
	)

	cmd := &cobra.Command{
		Use:   "render <image>",
		Short: "Extract a topology graph from an occupancy-grid image and render it as a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			occupied, err := parseOccupiedColor(occupiedColor)
			if err != nil {
				return err
			}

			_, _, report, err := pipeline.Run(pipeline.Config{
				ImagePath:     args[0],
				OccupiedColor: occupied,
				Threshold:     threshold,
				CellSize:      cellSize,
				Render: &pipeline.RenderConfig{
					OutPath: out,
					Options: render.Options{
						PixelSize:     pixelSize,
						MarginPx:      margin,
						DrawWaypoints: drawWaypoints,
					},
				},
			})
			if err != nil {
				return err
			}

			cmd.Printf("nodes=%d edges=%d -> %s\n", report.NodeCount, report.EdgeCount, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&occupiedColor, "occupied-color", "black", "which grayscale range counts as occupied: black or white")
	cmd.Flags().Uint8Var(&threshold, "threshold", 128, "grayscale threshold separating vacant from occupied")
	cmd.Flags().Float64Var(&cellSize, "cell-size", 0.05, "physical edge length of one grid cell")
	cmd.Flags().StringVar(&out, "out", "topology.png", "output path for the rendered PNG")
	cmd.Flags().Float64Var(&pixelSize, "pixel-size", 1, "graph-position units covered by one rendered pixel")
	cmd.Flags().IntVar(&margin, "margin", 2, "padding, in pixels, around the rendered bounding box")
	cmd.Flags().BoolVar(&drawWaypoints, "draw-waypoints", false, "draw every retained waypoint instead of straight edge segments")

	return cmd
}

func parseOccupiedColor(s string) (grid.OccupiedColor, error) {
	switch s {
	case "black":
		return grid.Black, nil
	case "white":
		return grid.White, nil
	default:
		return 0, fmt.Errorf("invalid --occupied-color %q: must be \"black\" or \"white\"", s)
	}
}
