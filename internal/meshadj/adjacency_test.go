package meshadj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSingleTriangle(t *testing.T) {
	indices := []uint32{0, 1, 2}
	table := Build(indices, 3)

	require.Len(t, table.Offsets, 4)
	for v := uint32(0); v < 3; v++ {
		assert.Equal(t, []uint32{0}, table.Triangles(v))
		assert.EqualValues(t, 1, table.Counts[v])
	}
}

func TestBuildSharedVertex(t *testing.T) {
	// Two triangles sharing vertex 2.
	indices := []uint32{0, 1, 2, 2, 3, 4}
	table := Build(indices, 5)

	assert.Equal(t, []uint32{0}, table.Triangles(0))
	assert.Equal(t, []uint32{0, 1}, table.Triangles(2))
	assert.EqualValues(t, 2, table.Counts[2])
	assert.EqualValues(t, 1, table.Counts[4])
}

func TestBuildDisconnected(t *testing.T) {
	indices := []uint32{0, 1, 2, 3, 4, 5}
	table := Build(indices, 6)

	assert.Equal(t, []uint32{0}, table.Triangles(0))
	assert.Equal(t, []uint32{1}, table.Triangles(3))
}
