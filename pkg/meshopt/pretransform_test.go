package meshopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeVertexFetchReordersByFirstReference(t *testing.T) {
	const vertexSize = 4
	vertices := make([]byte, 5*vertexSize)
	for i := 0; i < 5; i++ {
		vertices[i*vertexSize] = byte('A' + i)
	}

	// References vertices in reverse order: 4, 3, 2.
	indices := []uint32{4, 3, 2, 4, 2, 3}
	dst := make([]byte, len(vertices))

	referenced := OptimizeVertexFetch(dst, indices, vertices, 5, vertexSize)

	require.Equal(t, 3, referenced)
	// First reference order was 4,3,2 -> new indices 0,1,2.
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 1}, indices)
	assert.Equal(t, byte('E'), dst[0*vertexSize]) // original vertex 4
	assert.Equal(t, byte('D'), dst[1*vertexSize]) // original vertex 3
	assert.Equal(t, byte('C'), dst[2*vertexSize]) // original vertex 2
}

func TestOptimizeVertexFetchAppendsUnreferencedVertices(t *testing.T) {
	const vertexSize = 4
	vertices := make([]byte, 4*vertexSize)
	for i := 0; i < 4; i++ {
		vertices[i*vertexSize] = byte('A' + i)
	}

	// Vertex 1 and 3 are never referenced.
	indices := []uint32{0, 2, 0}
	dst := make([]byte, len(vertices))

	referenced := OptimizeVertexFetch(dst, indices, vertices, 4, vertexSize)

	require.Equal(t, 2, referenced)
	assert.Equal(t, byte('A'), dst[0*vertexSize])
	assert.Equal(t, byte('C'), dst[1*vertexSize])
	// Unreferenced vertices 1 ('B') and 3 ('D') appended in original order.
	assert.Equal(t, byte('B'), dst[2*vertexSize])
	assert.Equal(t, byte('D'), dst[3*vertexSize])
}

func TestOptimizeVertexFetchIdentityWhenAlreadyOrdered(t *testing.T) {
	const vertexSize = 4
	vertices := make([]byte, 3*vertexSize)
	for i := 0; i < 3; i++ {
		vertices[i*vertexSize] = byte('A' + i)
	}

	indices := []uint32{0, 1, 2}
	dst := make([]byte, len(vertices))
	OptimizeVertexFetch(dst, indices, vertices, 3, vertexSize)

	assert.Equal(t, vertices, dst)
	assert.Equal(t, []uint32{0, 1, 2}, indices)
}
