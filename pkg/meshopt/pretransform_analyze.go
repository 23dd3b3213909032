package meshopt

// fetchCacheLineSize and fetchCacheLineCount model a direct-mapped vertex
// fetch cache: a fixed number of fixed-size lines indexed by
// (lineAddress / lineSize) mod lineCount.
const (
	fetchCacheLineSize  = 64
	fetchCacheLineCount = 16
)

// AnalyzeVertexFetch simulates a direct-mapped fetch cache of
// fetchCacheLineCount lines of fetchCacheLineSize bytes each over indices
// and reports the resulting bytes-fetched statistics.
func AnalyzeVertexFetch[I Index](indices []I, vertexCount, vertexSize int) FetchStats {
	if len(indices) == 0 || vertexSize == 0 {
		return FetchStats{}
	}

	tag := make([]int64, fetchCacheLineCount)
	for i := range tag {
		tag[i] = -1
	}

	var bytesFetched uint32
	for _, idx := range indices {
		byteStart := int64(idx) * int64(vertexSize)
		byteEnd := byteStart + int64(vertexSize)

		firstLine := byteStart / fetchCacheLineSize
		lastLine := (byteEnd - 1) / fetchCacheLineSize

		for line := firstLine; line <= lastLine; line++ {
			slot := line % fetchCacheLineCount
			if tag[slot] != line {
				tag[slot] = line
				bytesFetched += fetchCacheLineSize
			}
		}
	}

	denom := float32(vertexCount) * float32(vertexSize)
	var overfetch float32
	if denom > 0 {
		overfetch = float32(bytesFetched) / denom
	}

	return FetchStats{BytesFetched: bytesFetched, Overfetch: overfetch}
}
