package pipeline_test

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nox-robotics/topograph/grid"
	"github.com/nox-robotics/topograph/pipeline"
)

// ExampleRun demonstrates the full image-to-graph conversion in one call.
func ExampleRun() {
	dir, err := os.MkdirTemp("", "topograph-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	imgPath := filepath.Join(dir, "corridor.png")
	img := image.NewGray(image.Rect(0, 0, 14, 14))
	for y := 6; y <= 8; y++ {
		for x := 1; x < 13; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	f, err := os.Create(imgPath)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := png.Encode(f, img); err != nil {
		fmt.Println("error:", err)
		return
	}
	f.Close()

	g, _, report, err := pipeline.Run(pipeline.Config{
		ImagePath:     imgPath,
		OccupiedColor: grid.Black,
		Threshold:     128,
		CellSize:      1.0,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.NodeCount() > 0)
	fmt.Println(report.NodeCount == g.NodeCount())
	// Output:
	// true
	// true
}
