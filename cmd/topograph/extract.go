package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nox-robotics/topograph/pipeline"
)

func newExtractCmd() *cobra.Command {
	var (
		occupiedColor string
		threshold     uint8
		cellSize      float64
		planar        bool
		out           string
	)

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract a vectorized topology graph from an occupancy-grid image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			occupied, err := parseOccupiedColor(occupiedColor)
			if err != nil {
				return err
			}

			g, _, report, err := pipeline.Run(pipeline.Config{
				ImagePath:       args[0],
				OccupiedColor:   occupied,
				Threshold:       threshold,
				CellSize:        cellSize,
				ConvertToPlanar: planar,
			})
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := g.EncodeJSON(f); err != nil {
				return err
			}

			cmd.Printf("nodes=%d edges=%d\n", report.NodeCount, report.EdgeCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&occupiedColor, "occupied-color", "black", "which grayscale range counts as occupied: black or white")
	cmd.Flags().Uint8Var(&threshold, "threshold", 128, "grayscale threshold separating vacant from occupied")
	cmd.Flags().Float64Var(&cellSize, "cell-size", 0.05, "physical edge length of one grid cell")
	cmd.Flags().BoolVar(&planar, "planar", false, "convert node and waypoint positions to planar (meters, bottom-left-origin) coordinates")
	cmd.Flags().StringVar(&out, "out", "topology.json", "output path for the extracted graph")

	return cmd
}
