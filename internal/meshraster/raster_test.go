package meshraster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleTriangle() (func(i int) [3]float32, func(t, k int) int) {
	positions := [][3]float32{
		{-1, -1, 0},
		{1, -1, 0},
		{0, 1, 0},
	}
	posAt := func(i int) [3]float32 { return positions[i] }
	indexAt := func(t, k int) int { return k }
	return posAt, indexAt
}

func TestRasterizeSingleTriangleCoversSomePixels(t *testing.T) {
	posAt, indexAt := singleTriangle()
	view := CanonicalViews[4] // +Z, looking down the axis the triangle lies flat on.
	proj := NewProjector(view, posAt, 3, 64)

	result := Rasterize(proj, 1, indexAt, posAt)
	require.Greater(t, result.Covered, uint32(0))
	assert.Equal(t, result.Covered, result.Shaded)
}

func TestRasterizeDegenerateTriangleCoversNothing(t *testing.T) {
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	posAt := func(i int) [3]float32 { return positions[i] }
	indexAt := func(t, k int) int { return k }

	view := CanonicalViews[4]
	proj := NewProjector(view, posAt, 3, 64)

	result := Rasterize(proj, 1, indexAt, posAt)
	assert.Equal(t, uint32(0), result.Covered)
	assert.Equal(t, uint32(0), result.Shaded)
}

func TestRasterizeCoplanarOverlapDoublesShading(t *testing.T) {
	// Two identical triangles at the same depth, viewed head-on: every
	// covered pixel must be shaded by both, since ties re-shade under the
	// rasterizer's <= depth test.
	positions := [][3]float32{
		{-1, -1, 0},
		{1, -1, 0},
		{0, 1, 0},
	}
	posAt := func(i int) [3]float32 { return positions[i] }
	indexAt := func(t, k int) int { return k % 3 }

	view := CanonicalViews[4]
	proj := NewProjector(view, posAt, 3, 64)

	result := Rasterize(proj, 2, indexAt, posAt)
	require.Greater(t, result.Covered, uint32(0))
	assert.GreaterOrEqual(t, result.Shaded, 2*result.Covered)
}

func TestScreenAxes(t *testing.T) {
	u, w := View{Axis: 0}.ScreenAxes()
	assert.Equal(t, 1, u)
	assert.Equal(t, 2, w)

	u, w = View{Axis: 1}.ScreenAxes()
	assert.Equal(t, 0, u)
	assert.Equal(t, 2, w)

	u, w = View{Axis: 2}.ScreenAxes()
	assert.Equal(t, 0, u)
	assert.Equal(t, 1, w)
}
