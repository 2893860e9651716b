package skeleton

import "github.com/nox-robotics/topograph/grid"

// Thin reduces the Vacant region of g to a 1-pixel-wide skeleton via
// Zhang-Suen thinning, preserving connectivity. Border cells are always
// Occupied (grid.NewGridFromImage's invariant) and are therefore never
// foreground, so the 8-neighbor reads below never need a bounds check.
//
// Complexity: O(H*W) per outer iteration, terminating in at most O(H*W)
// iterations since pruning is monotonic.
func Thin(g *grid.Grid) *Skeleton {
	h, w := g.Dims()
	s := &Skeleton{H: h, W: w, bits: make([]bool, h*w)}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			s.set(r, c, g.At(r, c) == grid.Vacant)
		}
	}

	marked := make([]bool, h*w)
	for {
		pruned := subPass(s, marked, subPass1)
		pruned += subPass(s, marked, subPass2)
		if pruned == 0 {
			break
		}
	}

	return s
}

// subPass runs one Zhang-Suen sub-iteration: mark every interior
// foreground pixel satisfying cond, then sweep all marked pixels to
// background, returning the number pruned. The two phases never overlap
// so no pixel's removal influences another pixel's candidacy within the
// same sub-pass.
func subPass(s *Skeleton, marked []bool, cond func(s *Skeleton, r, c int) bool) int {
	for i := range marked {
		marked[i] = false
	}

	for r := 1; r < s.H-1; r++ {
		for c := 1; c < s.W-1; c++ {
			if !s.At(r, c) {
				continue
			}
			if cond(s, r, c) {
				marked[s.index(r, c)] = true
			}
		}
	}

	pruned := 0
	for r := 1; r < s.H-1; r++ {
		for c := 1; c < s.W-1; c++ {
			if marked[s.index(r, c)] {
				s.set(r, c, false)
				pruned++
			}
		}
	}

	return pruned
}

func neighbor(s *Skeleton, r, c, k int) bool {
	o := offsets[k%8]
	return s.At(r+o[1], c+o[0])
}

func conditionB(s *Skeleton, r, c int) int {
	n := 0
	for k := 0; k < 8; k++ {
		if neighbor(s, r, c, k) {
			n++
		}
	}

	return n
}

func conditionA(s *Skeleton, r, c int) int {
	transitions := 0
	for k := 0; k < 8; k++ {
		if !neighbor(s, r, c, k) && neighbor(s, r, c, k+1) {
			transitions++
		}
	}

	return transitions
}

// anyVacant reports whether any of the three ring positions (0-indexed
// into offsets, i.e. P(idx+2)) is background.
func anyVacant(s *Skeleton, r, c int, idx1, idx2, idx3 int) bool {
	return !neighbor(s, r, c, idx1) || !neighbor(s, r, c, idx2) || !neighbor(s, r, c, idx3)
}

func subPass1(s *Skeleton, r, c int) bool {
	b := conditionB(s, r, c)
	if b < 2 || b > 6 {
		return false
	}
	if conditionA(s, r, c) != 1 {
		return false
	}
	// P2,P4,P6 at ring indices 0,2,4; P4,P6,P8 at ring indices 2,4,6.
	return anyVacant(s, r, c, 0, 2, 4) && anyVacant(s, r, c, 2, 4, 6)
}

func subPass2(s *Skeleton, r, c int) bool {
	b := conditionB(s, r, c)
	if b < 2 || b > 6 {
		return false
	}
	if conditionA(s, r, c) != 1 {
		return false
	}
	// P2,P4,P8 at ring indices 0,2,6; P2,P6,P8 at ring indices 0,4,6.
	return anyVacant(s, r, c, 0, 2, 6) && anyVacant(s, r, c, 0, 4, 6)
}
