package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nox-robotics/topograph/geom"
)

func TestVector2Arithmetic(t *testing.T) {
	a := geom.Vector2{X: 3, Y: 4}
	b := geom.Vector2{X: 1, Y: 2}

	assert.Equal(t, geom.Vector2{X: 4, Y: 6}, a.Add(b))
	assert.Equal(t, geom.Vector2{X: 2, Y: 2}, a.Sub(b))
	assert.Equal(t, float64(5), a.Length())
	assert.Equal(t, float64(11), a.Dot(b))
}

func TestVector2UnitOfZeroIsZero(t *testing.T) {
	assert.Equal(t, geom.Vector2{}, geom.Vector2{}.Unit())
}

func TestPolylineLength(t *testing.T) {
	pts := []geom.Vector2{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}}
	assert.Equal(t, float64(7), geom.PolylineLength(pts))
}

func TestPointToSegmentDistance(t *testing.T) {
	a := geom.Vector2{X: 0, Y: 0}
	b := geom.Vector2{X: 10, Y: 0}

	assert.InDelta(t, 1.0, geom.PointToSegmentDistance(geom.Vector2{X: 5, Y: 1}, a, b), 1e-9)
	assert.InDelta(t, 5.0, geom.PointToSegmentDistance(geom.Vector2{X: -5, Y: 0}, a, b), 1e-9)
	assert.InDelta(t, 5.0, geom.PointToSegmentDistance(geom.Vector2{X: 15, Y: 0}, a, b), 1e-9)
	assert.InDelta(t, 5.0, geom.PointToSegmentDistance(geom.Vector2{X: 3, Y: 4}, a, a), 1e-9)
}
