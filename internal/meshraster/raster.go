// Package meshraster implements the small deterministic software rasterizer
// used by the overdraw analyzer. It is a correctness oracle, not a
// performance proxy: results must be reproducible regardless of host
// floating-point rounding, so projection uses a 16.16 fixed-point grid and
// a fixed top-left fill rule.
package meshraster

import "github.com/chewxy/math32"

// DefaultResolution is the default screen size (in pixels, per axis) the
// rasterizer projects onto.
const DefaultResolution = 256

// fixedScale is the 16.16 fixed-point scale factor used to snap projected
// screen coordinates to a reproducible grid before rasterizing.
const fixedScale = 65536.0

// View describes one of the six canonical axis-aligned view directions: it
// looks along Axis (0=x, 1=y, 2=z), with Sign selecting the positive or
// negative direction. The two screen axes are the remaining coordinates, in
// increasing index order.
type View struct {
	Axis int
	Sign float32
}

// CanonicalViews are the six axis-aligned views the overdraw analyzer and
// optimizer both average over.
var CanonicalViews = [6]View{
	{Axis: 0, Sign: 1}, {Axis: 0, Sign: -1},
	{Axis: 1, Sign: 1}, {Axis: 1, Sign: -1},
	{Axis: 2, Sign: 1}, {Axis: 2, Sign: -1},
}

// ScreenAxes returns the two position components a view projects onto, in
// increasing index order.
func (v View) ScreenAxes() (u, w int) {
	switch v.Axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// Projector maps 3D positions to fixed 2D screen coordinates plus a depth
// value for a single view, fit tightly to an AABB.
type Projector struct {
	view       View
	resolution int
	minU, minW float32
	scaleU     float32
	scaleW     float32
}

// NewProjector builds a projector for view, fitting positions' bounding box
// (restricted to the view's two screen axes) to resolution x resolution.
func NewProjector(view View, positions func(i int) [3]float32, count, resolution int) Projector {
	u, w := view.ScreenAxes()

	minU, minW := math32.Inf(1), math32.Inf(1)
	maxU, maxW := math32.Inf(-1), math32.Inf(-1)

	for i := 0; i < count; i++ {
		p := positions(i)
		minU, maxU = math32.Min(minU, p[u]), math32.Max(maxU, p[u])
		minW, maxW = math32.Min(minW, p[w]), math32.Max(maxW, p[w])
	}

	spanU := maxU - minU
	spanW := maxW - minW
	if spanU <= 0 {
		spanU = 1
	}
	if spanW <= 0 {
		spanW = 1
	}

	return Projector{
		view:       view,
		resolution: resolution,
		minU:       minU,
		minW:       minW,
		scaleU:     float32(resolution) / spanU,
		scaleW:     float32(resolution) / spanW,
	}
}

// Project returns the screen-space (x, y) in pixel units and the view-space
// depth (smaller is closer) of a 3D position.
func (p Projector) Project(pos [3]float32) (x, y, depth float32) {
	u, w := p.view.ScreenAxes()

	x = snapToGrid((pos[u] - p.minU) * p.scaleU)
	y = snapToGrid((pos[w] - p.minW) * p.scaleW)
	depth = p.view.Sign * pos[p.view.Axis]
	return
}

func snapToGrid(v float32) float32 {
	return math32.Round(v*fixedScale) / fixedScale
}

// Result holds the covered/shaded pixel counters for a single view.
type Result struct {
	Covered uint32
	Shaded  uint32
}

// Rasterize draws triangleCount triangles (triangle t references vertices
// via the index(t, k) callback, k in [0,3)) against view, accumulating
// covered/shaded counts into a fresh depth buffer.
func Rasterize(proj Projector, triangleCount int, index func(t, k int) int, positions func(i int) [3]float32) Result {
	res := proj.resolution
	depth := make([]float32, res*res)
	touched := make([]bool, res*res)

	var result Result

	for t := 0; t < triangleCount; t++ {
		var sx, sy, sd [3]float32
		for k := 0; k < 3; k++ {
			x, y, d := proj.Project(positions(index(t, k)))
			sx[k], sy[k], sd[k] = x, y, d
		}

		minX := clampInt(int(math32.Floor(minOf3(sx))), 0, res)
		maxX := clampInt(int(math32.Ceil(maxOf3(sx))), 0, res)
		minY := clampInt(int(math32.Floor(minOf3(sy))), 0, res)
		maxY := clampInt(int(math32.Ceil(maxOf3(sy))), 0, res)

		area := edge(sx[0], sy[0], sx[1], sy[1], sx[2], sy[2])
		if area == 0 {
			continue // degenerate triangle in this projection
		}

		bias0 := fillBias(sx[1], sy[1], sx[2], sy[2], area)
		bias1 := fillBias(sx[2], sy[2], sx[0], sy[0], area)
		bias2 := fillBias(sx[0], sy[0], sx[1], sy[1], area)

		for py := minY; py < maxY; py++ {
			cy := float32(py) + 0.5
			for px := minX; px < maxX; px++ {
				cx := float32(px) + 0.5

				w0 := edge(sx[1], sy[1], sx[2], sy[2], cx, cy)
				w1 := edge(sx[2], sy[2], sx[0], sy[0], cx, cy)
				w2 := edge(sx[0], sy[0], sx[1], sy[1], cx, cy)

				if !insideTriangle(w0, w1, w2, area, bias0, bias1, bias2) {
					continue
				}

				b0, b1, b2 := w0/area, w1/area, w2/area
				d := b0*sd[0] + b1*sd[1] + b2*sd[2]

				idx := py*res + px
				if !touched[idx] {
					touched[idx] = true
					depth[idx] = d
					result.Covered++
					result.Shaded++
				} else if d <= depth[idx] {
					depth[idx] = d
					result.Shaded++
				}
			}
		}
	}

	return result
}

// edge evaluates the 2D edge function for the directed edge a->b at point p.
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// fillBias returns 0 for a top-or-left edge (included when exactly on the
// pixel center) or a small inward nudge otherwise (excluded on exact
// equality), implementing the top-left fill convention. ay,by etc. are
// passed via the edge's two endpoints.
func fillBias(ax, ay, bx, by, area float32) float32 {
	isTopOrLeft := (ay == by && bx > ax) || by < ay
	if area < 0 {
		isTopOrLeft = (ay == by && bx < ax) || by > ay
	}
	if isTopOrLeft {
		return 0
	}
	if area < 0 {
		return 1e-6
	}
	return -1e-6
}

// insideTriangle applies the top-left fill rule via per-edge bias: a point
// belongs to the triangle if every edge function, after its bias, agrees
// in sign with the triangle's winding (area).
func insideTriangle(w0, w1, w2, area, bias0, bias1, bias2 float32) bool {
	if area > 0 {
		return w0+bias0 >= 0 && w1+bias1 >= 0 && w2+bias2 >= 0
	}
	return w0+bias0 <= 0 && w1+bias1 <= 0 && w2+bias2 <= 0
}

func minOf3(v [3]float32) float32 {
	return math32.Min(v[0], math32.Min(v[1], v[2]))
}

func maxOf3(v [3]float32) float32 {
	return math32.Max(v[0], math32.Max(v[1], v[2]))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
