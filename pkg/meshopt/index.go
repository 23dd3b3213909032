package meshopt

import (
	"bytes"

	"github.com/spaolacci/murmur3"
)

// hashTable is an open-addressed table mapping a vertex record's raw bytes
// to the unique index assigned to it. Collisions are resolved by bytewise
// comparison of the stored record, walking a linear probe sequence.
type hashTable struct {
	vertices   []byte
	vertexSize int
	slots      []int32 // -1 means empty; otherwise the stream index of the record that claimed the slot.
	mask       uint32
}

func newHashTable(vertices []byte, vertexSize, vertexCount int) *hashTable {
	capacity := uint32(1)
	for capacity < uint32(vertexCount)*2 {
		capacity <<= 1
	}
	if capacity < 16 {
		capacity = 16
	}

	slots := make([]int32, capacity)
	for i := range slots {
		slots[i] = -1
	}

	return &hashTable{
		vertices:   vertices,
		vertexSize: vertexSize,
		slots:      slots,
		mask:       capacity - 1,
	}
}

func (h *hashTable) record(i int) []byte {
	o := i * h.vertexSize
	return h.vertices[o : o+h.vertexSize]
}

func (h *hashTable) hash(rec []byte) uint32 {
	return murmur3.Sum32(rec)
}

// findOrInsert returns the slot for the record at vertex index i, claiming
// an empty slot for it if no equal record is already present.
// inserted reports whether this call performed the insertion.
func (h *hashTable) findOrInsert(i int) (slot uint32, inserted bool) {
	rec := h.record(i)
	slot = h.hash(rec) & h.mask

	for {
		existing := h.slots[slot]
		if existing == -1 {
			h.slots[slot] = int32(i)
			return slot, true
		}
		if bytes.Equal(h.record(int(existing)), rec) {
			return slot, false
		}
		slot = (slot + 1) & h.mask
	}
}

// GenerateIndexBuffer deduplicates an unindexed vertex stream into dst, a
// caller-sized buffer of vertexCount indices, and returns the number of
// unique vertices U (equal to the highest index emitted, plus one). Unique
// vertices are numbered in order of first appearance in vertices.
func GenerateIndexBuffer[I Index](dst []I, vertices []byte, vertexCount, vertexSize int) int {
	table := newHashTable(vertices, vertexSize, vertexCount)

	// remap[slot] holds the unique index assigned to whichever vertex first
	// claimed that hash slot.
	remap := make([]int32, len(table.slots))

	next := int32(0)
	for i := 0; i < vertexCount; i++ {
		slot, inserted := table.findOrInsert(i)
		if inserted {
			remap[slot] = next
			dst[i] = I(next)
			next++
		} else {
			dst[i] = I(remap[slot])
		}
	}

	return int(next)
}

// GenerateVertexBuffer materializes the inverse mapping established by
// GenerateIndexBuffer: for each unique index referenced by indices, it
// writes the first source record that produced that index into dst. dst
// must hold U*vertexSize bytes, where U is GenerateIndexBuffer's return
// value.
func GenerateVertexBuffer[I Index](dst []byte, indices []I, vertices []byte, vertexCount, vertexSize int) {
	seen := make([]bool, len(dst)/vertexSize)

	for i := 0; i < vertexCount; i++ {
		u := indices[i]
		if seen[u] {
			continue
		}
		seen[u] = true

		src := vertices[i*vertexSize : i*vertexSize+vertexSize]
		do := int(u) * vertexSize
		copy(dst[do:do+vertexSize], src)
	}
}
