package meshopt

// DefaultAnalyzerCacheSize is the FIFO cache size AnalyzeVertexCache
// assumes when no explicit size is given.
const DefaultAnalyzerCacheSize = 32

// AnalyzeVertexCache simulates a FIFO vertex cache of DefaultAnalyzerCacheSize
// entries over indices and reports the resulting cache-miss statistics.
func AnalyzeVertexCache[I Index](indices []I, vertexCount int) PostTransformStats {
	return AnalyzeVertexCacheSized(indices, vertexCount, DefaultAnalyzerCacheSize)
}

// AnalyzeVertexCacheSized is AnalyzeVertexCache with an explicit cache size.
func AnalyzeVertexCacheSized[I Index](indices []I, vertexCount, cacheSize int) PostTransformStats {
	if len(indices) == 0 {
		return PostTransformStats{}
	}

	// fifo holds the vertices currently resident in the cache, oldest first.
	fifo := make([]I, 0, cacheSize)
	resident := make(map[I]bool, cacheSize)

	var transformed uint32
	for _, v := range indices {
		if resident[v] {
			continue
		}

		if len(fifo) == cacheSize {
			oldest := fifo[0]
			fifo = fifo[1:]
			delete(resident, oldest)
		}
		fifo = append(fifo, v)
		resident[v] = true
		transformed++
	}

	triangles := float32(len(indices) / 3)
	acmr := float32(transformed) / triangles

	var atvr float32
	if vertexCount > 0 {
		atvr = float32(transformed) / float32(vertexCount)
	}

	return PostTransformStats{
		VerticesTransformed: transformed,
		ACMR:                acmr,
		ATVR:                atvr,
	}
}
