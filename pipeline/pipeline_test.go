package pipeline_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nox-robotics/topograph/grid"
	"github.com/nox-robotics/topograph/pipeline"
	"github.com/nox-robotics/topograph/render"
)

// writeTestImage builds a 14x14 grayscale PNG: black (occupied) everywhere
// except a three-row-thick white (vacant) horizontal band, giving the
// skeletonizer a single free-space corridor to thin to a line.
func writeTestImage(t *testing.T, path string) {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, 14, 14))
	for y := 0; y < 14; y++ {
		for x := 0; x < 14; x++ {
			img.SetGray(x, y, color.Gray{Y: 0})
		}
	}
	for y := 6; y <= 8; y++ {
		for x := 1; x < 13; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, img))
}

func TestRunProducesGraphAndReport(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "corridor.png")
	writeTestImage(t, imgPath)

	cfg := pipeline.Config{
		ImagePath:     imgPath,
		OccupiedColor: grid.Black,
		Threshold:     128,
		CellSize:      1.0,
	}

	g, groups, report, err := pipeline.Run(cfg)
	require.NoError(t, err)
	require.NotNil(t, g)

	assert.GreaterOrEqual(t, g.NodeCount(), 2)
	assert.GreaterOrEqual(t, g.EdgeCount(), 1)
	assert.Equal(t, g.NodeCount(), report.NodeCount)
	assert.Equal(t, g.EdgeCount(), report.EdgeCount)
	assert.NotEmpty(t, groups)

	stageNames := make([]string, len(report.Stages))
	for i, s := range report.Stages {
		stageNames[i] = s.Name
	}
	assert.Equal(t, []string{"grid", "skeleton", "extract", "vectorize"}, stageNames)
}

func TestRunWithRenderWritesFile(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "corridor.png")
	writeTestImage(t, imgPath)
	outPath := filepath.Join(dir, "topology.png")

	cfg := pipeline.Config{
		ImagePath:     imgPath,
		OccupiedColor: grid.Black,
		Threshold:     128,
		CellSize:      1.0,
		Render: &pipeline.RenderConfig{
			OutPath: outPath,
			Options: render.Options{PixelSize: 1, MarginPx: 1},
		},
	}

	_, _, report, err := pipeline.Run(cfg)
	require.NoError(t, err)

	_, statErr := os.Stat(outPath)
	assert.NoError(t, statErr)

	last := report.Stages[len(report.Stages)-1]
	assert.Equal(t, "render", last.Name)
}

func TestRunPropagatesGridError(t *testing.T) {
	cfg := pipeline.Config{
		ImagePath:     "/no/such/image.png",
		OccupiedColor: grid.Black,
		Threshold:     128,
		CellSize:      1.0,
	}

	g, groups, report, err := pipeline.Run(cfg)
	assert.Error(t, err)
	assert.Nil(t, g)
	assert.Nil(t, groups)
	require.Len(t, report.Stages, 1)
	assert.Equal(t, "grid", report.Stages[0].Name)
}
