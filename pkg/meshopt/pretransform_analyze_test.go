package meshopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeVertexFetchEmpty(t *testing.T) {
	stats := AnalyzeVertexFetch([]uint32{}, 0, 32)
	assert.Equal(t, FetchStats{}, stats)
}

func TestAnalyzeVertexFetchSequentialIsCheap(t *testing.T) {
	// Small, sequentially-accessed vertices all fit in a single cache line.
	indices := []uint32{0, 1, 2, 0, 1, 2}
	stats := AnalyzeVertexFetch(indices, 3, 4)

	assert.EqualValues(t, 64, stats.BytesFetched)
}

func TestAnalyzeVertexFetchScatteredIsExpensive(t *testing.T) {
	// Large vertex records span two cache lines each, so even two distinct
	// vertices cost more than a single line to fetch.
	const vertexSize = 128
	indices := []uint32{0, 10, 0, 10, 0, 10}
	stats := AnalyzeVertexFetch(indices, 11, vertexSize)

	assert.Greater(t, stats.BytesFetched, uint32(64))
}

func TestOptimizeVertexFetchReducesOverfetch(t *testing.T) {
	const vertexSize = 64 // one vertex occupies exactly one cache line.
	const vertexCount = 17

	vertices := make([]byte, vertexCount*vertexSize)
	for i := 0; i < vertexCount; i++ {
		vertices[i*vertexSize] = byte(i)
	}

	// Vertices 0 and 16 land on the same direct-mapped cache slot (line
	// number mod 16), so alternating between them evicts on every access.
	indices := []uint32{0, 16, 0, 16, 0, 16, 0, 16}
	before := AnalyzeVertexFetch(indices, vertexCount, vertexSize)

	dst := make([]byte, len(vertices))
	OptimizeVertexFetch(dst, indices, vertices, vertexCount, vertexSize)
	// OptimizeVertexFetch rewrites indices in place to the new, reference-
	// order numbering (0 and 1), which no longer collide.
	after := AnalyzeVertexFetch(indices, vertexCount, vertexSize)

	assert.Less(t, after.Overfetch, before.Overfetch)
}
