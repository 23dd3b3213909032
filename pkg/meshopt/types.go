// Package meshopt implements mesh-optimization primitives for triangular
// geometry destined for GPU rendering pipelines: post-transform vertex
// cache optimization, overdraw reduction, and pre-transform vertex fetch
// optimization, plus the analyzers that quantify each metric and the small
// helpers used to build indexed buffers and quantize vertex attributes.
//
// Every routine here is a pure function over caller-owned buffers: nothing
// in this package retains state across calls, allocates global resources,
// or performs I/O.
package meshopt

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Index is the constraint satisfied by the two index widths the library
// supports. Algorithms are implemented once against this constraint instead
// of being duplicated per width.
type Index interface {
	~uint16 | ~uint32
}

// PostTransformStats reports the result of simulating a FIFO post-transform
// vertex cache over an index buffer.
type PostTransformStats struct {
	VerticesTransformed uint32
	ACMR                float32
	ATVR                float32
}

// OverdrawStats reports the result of the software-rasterizer overdraw
// analyzer, aggregated across all canonical view directions.
type OverdrawStats struct {
	PixelsCovered uint32
	PixelsShaded  uint32
	Overdraw      float32
}

// FetchStats reports the result of simulating a direct-mapped vertex fetch
// cache over an index buffer.
type FetchStats struct {
	BytesFetched uint32
	Overfetch    float32
}

// PositionView borrows a strided vertex stream and interprets the first 12
// bytes of every stride-sized record as three little-endian IEEE-754
// floats: x, y, z. Stride must be at least 12.
type PositionView struct {
	Data   []byte
	Stride int
}

// At returns the position of the i-th vertex.
func (p PositionView) At(i int) mgl32.Vec3 {
	o := i * p.Stride
	return mgl32.Vec3{
		decodeFloat32(p.Data[o : o+4]),
		decodeFloat32(p.Data[o+4 : o+8]),
		decodeFloat32(p.Data[o+8 : o+12]),
	}
}

func decodeFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
