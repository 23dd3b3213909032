package meshopt

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-meshopt/internal/meshraster"
)

// DefaultOverdrawThreshold bounds the acceptable ACMR regression
// OptimizeOverdraw is allowed to introduce while chasing lower overdraw.
const DefaultOverdrawThreshold = 1.0

type clusterInfo struct {
	start, end int // triangle range [start, end)
	centroid   mgl32.Vec3
	normal     mgl32.Vec3
}

// OptimizeOverdraw reorders whole clusters (as produced by
// OptimizeVertexCacheClusters) to reduce overdraw, guided by a
// projected-centroid/normal heuristic averaged over six canonical view
// directions. Each step appends the lowest-penalty cluster that keeps the
// cumulative ACMR of the reordered sequence within threshold times the
// input's ACMR; when no remaining cluster does, the one with the lowest
// cumulative ACMR is appended, so the limit can then be exceeded. indices
// must already be post-transform optimized and clusters must be its cluster
// partition.
func OptimizeOverdraw[I Index](dst, indices []I, positions PositionView, vertexCount int, clusters []uint32, threshold float32) {
	triangleCount := len(indices) / 3
	if triangleCount == 0 {
		return
	}
	if len(clusters) <= 1 {
		copy(dst, indices)
		return
	}

	infos := buildClusterInfo(indices, positions, clusters, triangleCount)

	acmrInput := AnalyzeVertexCacheSized(indices, vertexCount, DefaultAnalyzerCacheSize).ACMR
	limit := threshold * acmrInput

	order := greedyClusterOrder(infos, indices, vertexCount, limit)

	out := make([]I, 0, len(indices))
	for _, ci := range order {
		out = append(out, indices[infos[ci].start*3:infos[ci].end*3]...)
	}
	copy(dst, out)
}

func buildClusterInfo[I Index](indices []I, positions PositionView, clusters []uint32, triangleCount int) []clusterInfo {
	infos := make([]clusterInfo, len(clusters))

	for c := range clusters {
		start := int(clusters[c])
		end := triangleCount
		if c+1 < len(clusters) {
			end = int(clusters[c+1])
		}

		var centroidSum, normalSum mgl32.Vec3
		count := 0

		for t := start; t < end; t++ {
			i0 := int(indices[t*3+0])
			i1 := int(indices[t*3+1])
			i2 := int(indices[t*3+2])

			p0 := positions.At(i0)
			p1 := positions.At(i1)
			p2 := positions.At(i2)

			centroidSum = centroidSum.Add(p0).Add(p1).Add(p2)
			count += 3

			e1 := p1.Sub(p0)
			e2 := p2.Sub(p0)
			n := e1.Cross(e2)
			if n.Len() > 0 {
				n = n.Normalize()
			}
			normalSum = normalSum.Add(n)
		}

		centroid := mgl32.Vec3{}
		if count > 0 {
			centroid = centroidSum.Mul(1 / float32(count))
		}

		normal := mgl32.Vec3{0, 0, 1}
		if normalSum.Len() > 0 {
			normal = normalSum.Normalize()
		}

		infos[c] = clusterInfo{start: start, end: end, centroid: centroid, normal: normal}
	}

	return infos
}

// overdrawPenalty sums max(0, dot(view, normal)) over the six canonical
// view directions. Because the views come in opposite pairs, this equals
// |x|+|y|+|z| of the unit normal: 1 for an axis-aligned normal, rising to
// about 1.73 for one pointing along a diagonal.
func overdrawPenalty(normal mgl32.Vec3) float32 {
	var penalty float32
	for _, v := range meshraster.CanonicalViews {
		dir := mgl32.Vec3{}
		dir[v.Axis] = v.Sign
		d := dir.Dot(normal)
		if d > 0 {
			penalty += d
		}
	}
	return penalty
}

func dominantAxis(infos []clusterInfo) int {
	var lo, hi mgl32.Vec3
	for i := 0; i < 3; i++ {
		lo[i] = infos[0].centroid[i]
		hi[i] = infos[0].centroid[i]
	}
	for _, ci := range infos[1:] {
		for i := 0; i < 3; i++ {
			if ci.centroid[i] < lo[i] {
				lo[i] = ci.centroid[i]
			}
			if ci.centroid[i] > hi[i] {
				hi[i] = ci.centroid[i]
			}
		}
	}

	axis := 0
	best := hi[0] - lo[0]
	for i := 1; i < 3; i++ {
		span := hi[i] - lo[i]
		if span > best {
			best = span
			axis = i
		}
	}
	return axis
}

func greedyClusterOrder[I Index](infos []clusterInfo, indices []I, vertexCount int, limit float32) []int {
	n := len(infos)
	axis := dominantAxis(infos)

	start := 0
	for i := 1; i < n; i++ {
		if infos[i].centroid[axis] < infos[start].centroid[axis] {
			start = i
		}
	}

	used := make([]bool, n)
	order := make([]int, 0, n)
	order = append(order, start)
	used[start] = true

	prefix := make([]I, 0, len(indices))
	prefix = append(prefix, indices[infos[start].start*3:infos[start].end*3]...)

	for len(order) < n {
		type candidate struct {
			idx     int
			penalty float32
		}
		var cands []candidate
		for i, ci := range infos {
			if used[i] {
				continue
			}
			cands = append(cands, candidate{idx: i, penalty: overdrawPenalty(ci.normal)})
		}

		// Ascending penalty, ties broken by lowest original cluster index.
		for a := 0; a < len(cands); a++ {
			for b := a + 1; b < len(cands); b++ {
				if cands[b].penalty < cands[a].penalty ||
					(cands[b].penalty == cands[a].penalty && cands[b].idx < cands[a].idx) {
					cands[a], cands[b] = cands[b], cands[a]
				}
			}
		}

		chosen := -1
		fallback := -1
		fallbackACMR := float32(0)
		for _, cand := range cands {
			ci := infos[cand.idx]
			trial := append(append([]I{}, prefix...), indices[ci.start*3:ci.end*3]...)
			acmr := AnalyzeVertexCacheSized(trial, vertexCount, DefaultAnalyzerCacheSize).ACMR

			if acmr <= limit {
				chosen = cand.idx
				prefix = trial
				break
			}
			if fallback == -1 || acmr < fallbackACMR {
				fallback = cand.idx
				fallbackACMR = acmr
			}
		}

		if chosen == -1 {
			chosen = fallback
			ci := infos[chosen]
			prefix = append(prefix, indices[ci.start*3:ci.end*3]...)
		}

		order = append(order, chosen)
		used[chosen] = true
	}

	return order
}
