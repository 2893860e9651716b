package simplify

import "github.com/nox-robotics/topograph/geom"

// degenerateTolerance is the numerical tolerance below which a segment's
// two endpoints are treated as coincident, matching geometry_solver's
// point-to-line degenerate-segment check.
const degenerateTolerance = 1e-9

// Simplify reduces points to the subsequence needed to approximate the
// original polyline within perpendicular distance epsilon, always
// retaining the first and last points. Fewer than 3 points are returned
// unchanged.
func Simplify(points []geom.Vector2, epsilon float64) []geom.Vector2 {
	if len(points) < 3 {
		out := make([]geom.Vector2, len(points))
		copy(out, points)

		return out
	}

	kept := make([]bool, len(points))
	kept[0] = true
	kept[len(points)-1] = true

	simplifyRange(points, kept, 0, len(points)-1, epsilon)

	out := make([]geom.Vector2, 0, len(points))
	for i, k := range kept {
		if k {
			out = append(out, points[i])
		}
	}

	return out
}

// simplifyRange recursively splits [start, end] at the point of maximum
// deviation from the chord start->end, marking it kept and recursing on
// both halves, until no interior point exceeds epsilon. The recursion
// range for the interior scan is (start+1)..(end-1) inclusive: the
// off-by-one variant that scans as far as (end+1) is a known defect this
// port does not reproduce.
func simplifyRange(points []geom.Vector2, kept []bool, start, end int, epsilon float64) {
	if end-start < 2 {
		return
	}

	idx, ok := findMaxDeviation(points, start, end, epsilon)
	if !ok {
		return
	}

	simplifyRange(points, kept, start, idx, epsilon)
	simplifyRange(points, kept, idx, end, epsilon)
	kept[idx] = true
}

func findMaxDeviation(points []geom.Vector2, start, end int, epsilon float64) (int, bool) {
	a, b := points[start], points[end]

	maxDist := 0.0
	maxIdx := -1
	for i := start + 1; i <= end-1; i++ {
		p := points[i]

		var dist float64
		if a.Sub(b).Length() < degenerateTolerance {
			dist = p.Sub(a).Length()
		} else {
			dist = geom.PointToSegmentDistance(p, a, b)
		}

		if dist > maxDist && dist > epsilon {
			maxDist = dist
			maxIdx = i
		}
	}

	if maxIdx < 0 {
		return 0, false
	}

	return maxIdx, true
}
