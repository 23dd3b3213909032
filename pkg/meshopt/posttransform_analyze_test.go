package meshopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeVertexCacheSingleTriangle(t *testing.T) {
	indices := []uint32{0, 1, 2}
	stats := AnalyzeVertexCache(indices, 3)

	assert.EqualValues(t, 3, stats.VerticesTransformed)
	assert.InDelta(t, 3.0, stats.ACMR, 1e-6)
	assert.InDelta(t, 1.0, stats.ATVR, 1e-6)
}

func TestAnalyzeVertexCacheQuad(t *testing.T) {
	// Two triangles sharing the 0-2 edge: ABC and ACD.
	indices := []uint32{0, 1, 2, 0, 2, 3}
	stats := AnalyzeVertexCache(indices, 4)

	assert.EqualValues(t, 4, stats.VerticesTransformed)
	assert.InDelta(t, 2.0, stats.ACMR, 1e-6)
}

func TestAnalyzeVertexCacheEmpty(t *testing.T) {
	stats := AnalyzeVertexCache([]uint32{}, 0)
	assert.Equal(t, PostTransformStats{}, stats)
}

func TestAnalyzeVertexCacheTriangleStripConverges(t *testing.T) {
	// A long strip reusing two of the previous triangle's vertices every
	// step should approach an ACMR of ~1.0 as the cache holds easily more
	// than the working set.
	const n = 64
	indices := make([]uint32, 0, (n-2)*3)
	for i := 0; i < n-2; i++ {
		var a, b, c uint32
		if i%2 == 0 {
			a, b, c = uint32(i), uint32(i+1), uint32(i+2)
		} else {
			a, b, c = uint32(i+1), uint32(i), uint32(i+2)
		}
		indices = append(indices, a, b, c)
	}

	stats := AnalyzeVertexCache(indices, n)
	assert.Less(t, stats.ACMR, 1.2)
}

func TestAnalyzeVertexCacheSizedSmallCacheThrashes(t *testing.T) {
	// With a cache of size 1, every vertex reference (other than immediate
	// repeats) is a miss.
	indices := []uint32{0, 1, 2, 3, 4, 5}
	stats := AnalyzeVertexCacheSized(indices, 6, 1)
	assert.EqualValues(t, 6, stats.VerticesTransformed)
}
