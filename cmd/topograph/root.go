package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "topograph",
		Short: "Extract and render vectorized topology graphs from occupancy-grid images",
	}

	root.AddCommand(newExtractCmd())
	root.AddCommand(newRenderCmd())

	return root
}
