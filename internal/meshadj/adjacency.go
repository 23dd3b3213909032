// Package meshadj builds vertex-to-triangle adjacency tables for an index
// buffer. The adjacency is represented as two parallel arrays (offsets and
// entries) addressed by vertex index rather than as a pointer graph, so it
// cannot contain cycles by construction.
package meshadj

// Table is a vertex-to-triangle adjacency list in CSR form: triangles
// touching vertex v are Entries[Offsets[v]:Offsets[v+1]].
type Table struct {
	Offsets []uint32 // length vertexCount+1
	Entries []uint32 // length = 3*triangleCount, triangle indices
	Counts  []uint32 // per-vertex degree, a separate copy from Offsets
}

// Build constructs the adjacency table for vertexCount vertices referenced
// by indices, which must hold 3*triangleCount entries.
func Build[I ~uint16 | ~uint32](indices []I, vertexCount int) *Table {
	triangleCount := len(indices) / 3

	degree := make([]uint32, vertexCount)
	for _, idx := range indices {
		degree[idx]++
	}

	offsets := make([]uint32, vertexCount+1)
	for v := 0; v < vertexCount; v++ {
		offsets[v+1] = offsets[v] + degree[v]
	}

	entries := make([]uint32, 3*triangleCount)
	cursor := make([]uint32, vertexCount)
	copy(cursor, offsets[:vertexCount])

	for t := 0; t < triangleCount; t++ {
		for k := 0; k < 3; k++ {
			v := indices[t*3+k]
			entries[cursor[v]] = uint32(t)
			cursor[v]++
		}
	}

	counts := make([]uint32, vertexCount)
	copy(counts, degree)

	return &Table{Offsets: offsets, Entries: entries, Counts: counts}
}

// Triangles returns the triangle indices incident to vertex v.
func (t *Table) Triangles(v uint32) []uint32 {
	return t.Entries[t.Offsets[v]:t.Offsets[v+1]]
}
