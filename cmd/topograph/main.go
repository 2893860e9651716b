// Command topograph converts occupancy-grid images into vectorized
// topology graphs and renders them back to PNG.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
