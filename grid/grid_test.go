package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nox-robotics/topograph/grid"
)

func TestNewFromStatesForcesBorderOccupied(t *testing.T) {
	states := make([]grid.State, 5*5)
	for i := range states {
		states[i] = grid.Vacant
	}

	g, err := grid.NewFromStates(5, 5, states, 0.05)
	require.NoError(t, err)

	for c := 0; c < 5; c++ {
		assert.Equal(t, grid.Occupied, g.At(0, c))
		assert.Equal(t, grid.Occupied, g.At(4, c))
	}
	for r := 0; r < 5; r++ {
		assert.Equal(t, grid.Occupied, g.At(r, 0))
		assert.Equal(t, grid.Occupied, g.At(r, 4))
	}
	assert.Equal(t, grid.Vacant, g.At(2, 2))
}

func TestAtOutOfRangeIsOccupied(t *testing.T) {
	g, err := grid.NewFromStates(3, 3, make([]grid.State, 9), 1)
	require.NoError(t, err)

	assert.Equal(t, grid.Occupied, g.At(-1, 0))
	assert.Equal(t, grid.Occupied, g.At(0, -1))
	assert.Equal(t, grid.Occupied, g.At(3, 0))
	assert.Equal(t, grid.Occupied, g.At(0, 3))
}

func TestDimsAndCellSize(t *testing.T) {
	g, err := grid.NewFromStates(4, 7, make([]grid.State, 28), 0.1)
	require.NoError(t, err)

	h, w := g.Dims()
	assert.Equal(t, 4, h)
	assert.Equal(t, 7, w)
	assert.InDelta(t, 0.1, g.CellSize(), 1e-12)
}

func TestNewFromStatesRejectsEmpty(t *testing.T) {
	_, err := grid.NewFromStates(0, 5, nil, 1)
	assert.ErrorIs(t, err, grid.ErrEmptyImage)
}

func TestNewGridFromImageMissingFile(t *testing.T) {
	_, err := grid.NewGridFromImage("/nonexistent/path/does-not-exist.png", grid.Black, 128, 0.05)
	assert.ErrorIs(t, err, grid.ErrImageNotFound)
}
