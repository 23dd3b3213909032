package meshopt

import "github.com/leterax/go-meshopt/internal/meshadj"

// DefaultOptimizerCacheSize is the FIFO vertex cache size OptimizeVertexCache
// assumes when no explicit size is given.
const DefaultOptimizerCacheSize = 16

// tipsifyLookahead is the constant k from the Tipsify heuristic: it accounts
// for the three vertices of the triangle just emitted when estimating
// whether a vertex is still resident in the FIFO cache.
const tipsifyLookahead = 3

// OptimizeVertexCache reorders indices into dst so that successive triangles
// tend to reuse vertices already resident in a FIFO vertex cache of
// DefaultOptimizerCacheSize entries, using the Tipsify greedy walk. dst may
// alias indices.
func OptimizeVertexCache[I Index](dst, indices []I, vertexCount int) {
	optimizeVertexCache(dst, indices, vertexCount, DefaultOptimizerCacheSize, false)
}

// OptimizeVertexCacheClusters behaves like OptimizeVertexCache but also
// returns the cluster partition: a strictly increasing sequence of triangle
// offsets, starting at 0, marking every point where Tipsify restarted its
// walk from an uncached vertex.
func OptimizeVertexCacheClusters[I Index](dst, indices []I, vertexCount int) []uint32 {
	return optimizeVertexCache(dst, indices, vertexCount, DefaultOptimizerCacheSize, true)
}

// OptimizeVertexCacheSized is OptimizeVertexCacheClusters with an explicit
// cache size, for callers modeling hardware other than the default.
func OptimizeVertexCacheSized[I Index](dst, indices []I, vertexCount, cacheSize int, collectClusters bool) []uint32 {
	return optimizeVertexCache(dst, indices, vertexCount, cacheSize, collectClusters)
}

func optimizeVertexCache[I Index](dst, indices []I, vertexCount, cacheSize int, collectClusters bool) []uint32 {
	triangleCount := len(indices) / 3
	if triangleCount == 0 {
		return nil
	}

	// dst may alias indices; work from an independent copy of the input.
	src := make([]I, len(indices))
	copy(src, indices)

	adj := meshadj.Build(src, vertexCount)
	live := make([]int32, vertexCount)
	for v := 0; v < vertexCount; v++ {
		live[v] = int32(adj.Counts[v])
	}

	const noTimestamp = int32(-1)
	timestamp := make([]int32, vertexCount)
	for v := range timestamp {
		timestamp[v] = noTimestamp
	}

	dead := make([]bool, triangleCount)
	out := make([]I, 0, len(indices))

	var clusters []uint32
	if collectClusters {
		clusters = []uint32{0}
	}

	time := int32(0)
	cursor := 0

	emitTriangle := func(t uint32) {
		dead[t] = true
		base := int(t) * 3
		v0, v1, v2 := src[base], src[base+1], src[base+2]
		out = append(out, v0, v1, v2)

		live[v0]--
		live[v1]--
		live[v2]--

		timestamp[v0] = time
		timestamp[v1] = time
		timestamp[v2] = time
		time++
	}

	fan := func(f uint32) {
		for _, t := range adj.Triangles(f) {
			if !dead[t] {
				emitTriangle(t)
			}
		}
	}

	inCache := func(v uint32) bool {
		if timestamp[v] == noTimestamp {
			return false
		}
		return int(time-timestamp[v])+tipsifyLookahead < cacheSize
	}

	priority := func(v uint32) int32 {
		cachePos := int32(cacheSize) - (time - timestamp[v] + tipsifyLookahead)
		return cachePos - 2*live[v]
	}

	nextCandidate := func() (uint32, bool) {
		best := int32(0)
		bestV := uint32(0)
		found := false
		for v := 0; v < vertexCount; v++ {
			uv := uint32(v)
			if live[uv] == 0 || !inCache(uv) {
				continue
			}
			p := priority(uv)
			if !found || p > best {
				found = true
				best = p
				bestV = uv
			}
		}
		return bestV, found
	}

	// Seed the walk at vertex 0, per the Design Notes' "arbitrary seed"
	// allowance; priority ties resolve to the lowest index in nextCandidate
	// and restarts take the lowest live vertex via the cursor below, so the
	// whole walk is deterministic.
	f := uint32(0)
	for live[f] == 0 && int(f) < vertexCount-1 {
		f++
	}

	for len(out) < len(indices) {
		fan(f)

		next, ok := nextCandidate()
		if !ok {
			for cursor < vertexCount && live[cursor] == 0 {
				cursor++
			}
			if cursor >= vertexCount {
				break
			}
			next = uint32(cursor)
			if collectClusters && len(out) < len(indices) {
				clusters = append(clusters, uint32(len(out)/3))
			}
		}
		f = next
	}

	copy(dst, out)
	return clusters
}
