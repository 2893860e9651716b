package skeleton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nox-robotics/topograph/grid"
	"github.com/nox-robotics/topograph/skeleton"
)

func gridFromRows(t *testing.T, rows []string) *grid.Grid {
	t.Helper()
	h := len(rows)
	w := len(rows[0])
	states := make([]grid.State, h*w)
	for r, row := range rows {
		require.Len(t, row, w, "ragged test grid")
		for c, ch := range row {
			if ch == '#' {
				states[r*w+c] = grid.Occupied
			} else {
				states[r*w+c] = grid.Vacant
			}
		}
	}
	g, err := grid.NewFromStates(h, w, states, 1)
	require.NoError(t, err)

	return g
}

func TestThinIsIdempotent(t *testing.T) {
	g := gridFromRows(t, []string{
		"###########",
		"#.........#",
		"#.........#",
		"#.........#",
		"###########",
	})
	sk := skeleton.Thin(g)

	again := thinSkeleton(sk)
	assert.Equal(t, bitsOf(sk), bitsOf(again))
}

// thinSkeleton re-runs Thin on a Skeleton's own output by round-tripping
// through a Grid built from its foreground pixels.
func thinSkeleton(sk *skeleton.Skeleton) *skeleton.Skeleton {
	states := make([]grid.State, sk.H*sk.W)
	for r := 0; r < sk.H; r++ {
		for c := 0; c < sk.W; c++ {
			if sk.At(r, c) {
				states[r*sk.W+c] = grid.Vacant
			} else {
				states[r*sk.W+c] = grid.Occupied
			}
		}
	}
	g, _ := grid.NewFromStates(sk.H, sk.W, states, 1)

	return skeleton.Thin(g)
}

func bitsOf(sk *skeleton.Skeleton) []bool {
	out := make([]bool, 0, sk.H*sk.W)
	for r := 0; r < sk.H; r++ {
		for c := 0; c < sk.W; c++ {
			out = append(out, sk.At(r, c))
		}
	}

	return out
}

func TestThinNoFull2x2Block(t *testing.T) {
	g := gridFromRows(t, []string{
		"#############",
		"#...........#",
		"#...........#",
		"#...........#",
		"#...........#",
		"#...........#",
		"#############",
	})
	sk := skeleton.Thin(g)

	for r := 0; r < sk.H-1; r++ {
		for c := 0; c < sk.W-1; c++ {
			full := sk.At(r, c) && sk.At(r+1, c) && sk.At(r, c+1) && sk.At(r+1, c+1)
			assert.False(t, full, "2x2 all-foreground block at (%d,%d)", r, c)
		}
	}
}

func TestThinPreservesStraightLine(t *testing.T) {
	rows := make([]string, 5)
	rows[0] = "#########"
	rows[1] = "#.......#"
	rows[2] = "#.......#"
	rows[3] = "#.......#"
	rows[4] = "#########"
	g := gridFromRows(t, rows)

	sk := skeleton.Thin(g)
	// The 3-row-thick vacant band thins down to the single middle row;
	// Zhang-Suen also erodes the line's ends, leaving columns 2..5.
	for c := 1; c < 8; c++ {
		assert.Equal(t, c >= 2 && c <= 5, sk.At(2, c), "column %d", c)
	}
}
