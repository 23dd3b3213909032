package meshopt

import "github.com/leterax/go-meshopt/internal/meshraster"

// DefaultOverdrawResolution is the screen size (per axis, in pixels) the
// overdraw analyzer's software rasterizer uses for each canonical view.
const DefaultOverdrawResolution = meshraster.DefaultResolution

// AnalyzeOverdraw rasterizes indices against positions from all six
// canonical view directions with a deterministic software rasterizer and
// reports the aggregate overdraw ratio.
func AnalyzeOverdraw[I Index](indices []I, positions PositionView, vertexCount int) OverdrawStats {
	triangleCount := len(indices) / 3
	if triangleCount == 0 {
		return OverdrawStats{Overdraw: 1}
	}

	posAt := func(i int) [3]float32 {
		v := positions.At(i)
		return [3]float32{v.X(), v.Y(), v.Z()}
	}
	indexAt := func(t, k int) int {
		return int(indices[t*3+k])
	}

	var covered, shaded uint32
	for _, view := range meshraster.CanonicalViews {
		proj := meshraster.NewProjector(view, posAt, vertexCount, DefaultOverdrawResolution)
		r := meshraster.Rasterize(proj, triangleCount, indexAt, posAt)
		covered += r.Covered
		shaded += r.Shaded
	}

	stats := OverdrawStats{PixelsCovered: covered, PixelsShaded: shaded}
	if covered > 0 {
		stats.Overdraw = float32(shaded) / float32(covered)
	} else {
		stats.Overdraw = 1
	}
	return stats
}
