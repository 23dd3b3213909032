package meshopt

// OptimizeVertexFetch reorders vertices into dst so that the order in which
// they are first referenced by indices (which must already be
// post-transform optimized) matches the order they appear in dst, then
// rewrites indices in place to refer to the new ordering. Vertices never
// referenced by indices are appended at the end in their original relative
// order. dst must hold vertexCount*vertexSize bytes. Returns the number of
// vertices that were actually referenced by indices.
func OptimizeVertexFetch[I Index](dst []byte, indices []I, vertices []byte, vertexCount, vertexSize int) int {
	remap := make([]int32, vertexCount)
	for i := range remap {
		remap[i] = -1
	}

	next := int32(0)
	for i, idx := range indices {
		v := int(idx)
		if remap[v] == -1 {
			remap[v] = next
			copyVertex(dst, vertices, int(next), v, vertexSize)
			next++
		}
		indices[i] = I(remap[v])
	}
	referenced := int(next)

	for v := 0; v < vertexCount; v++ {
		if remap[v] == -1 {
			copyVertex(dst, vertices, int(next), v, vertexSize)
			next++
		}
	}

	return referenced
}

func copyVertex(dst, src []byte, dstIndex, srcIndex, vertexSize int) {
	do := dstIndex * vertexSize
	so := srcIndex * vertexSize
	copy(dst[do:do+vertexSize], src[so:so+vertexSize])
}
