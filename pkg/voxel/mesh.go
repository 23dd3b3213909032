package voxel

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction represents a cardinal direction
type Direction int

const (
	North Direction = iota // -Z
	South                  // +Z
	East                   // +X
	West                   // -X
	Up                     // +Y
	Down                   // -Y
)

// DirectionVector returns the unit vector for a direction
func (d Direction) DirectionVector() mgl32.Vec3 {
	switch d {
	case North:
		return mgl32.Vec3{0, 0, -1}
	case South:
		return mgl32.Vec3{0, 0, 1}
	case East:
		return mgl32.Vec3{1, 0, 0}
	case West:
		return mgl32.Vec3{-1, 0, 0}
	case Up:
		return mgl32.Vec3{0, 1, 0}
	case Down:
		return mgl32.Vec3{0, -1, 0}
	default:
		return mgl32.Vec3{0, 0, 0}
	}
}

// Vertex represents a vertex in a mesh
type Vertex struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	TexCoords mgl32.Vec2
}

// Face represents a face consisting of two triangles
type Face struct {
	Vertices  [4]Vertex // Counter-clockwise winding order
	BlockType BlockType
}

// Mesh represents a mesh of triangles
type Mesh struct {
	Faces    []Face
	Vertices []Vertex
	Indices  []uint32
}

// NewMesh creates a new empty mesh
func NewMesh() *Mesh {
	return &Mesh{
		Faces:    make([]Face, 0),
		Vertices: make([]Vertex, 0),
		Indices:  make([]uint32, 0),
	}
}

// AddFace adds a face to the mesh
func (m *Mesh) AddFace(face Face) {
	m.Faces = append(m.Faces, face)

	// Adding quad as two triangles
	baseIndex := uint32(len(m.Vertices))

	// Add four vertices
	for _, v := range face.Vertices {
		m.Vertices = append(m.Vertices, v)
	}

	// Add indices for two triangles (CCW winding)
	m.Indices = append(m.Indices, baseIndex, baseIndex+1, baseIndex+2)
	m.Indices = append(m.Indices, baseIndex, baseIndex+2, baseIndex+3)
}

// vertexRecordSize is the byte size of a single PositionStream record:
// position (3 float32), normal (3 float32), texture coordinates (2 float32).
const vertexRecordSize = 32

// VertexRecordSize returns the byte size of a single PositionStream record.
func (m *Mesh) VertexRecordSize() int {
	return vertexRecordSize
}

// PositionStream expands the mesh's indexed triangles into an unindexed
// vertex stream, one fixed-size record per triangle corner, suitable as
// input to meshopt.GenerateIndexBuffer: the first 12 bytes of every record
// are the vertex position as three little-endian float32s, satisfying the
// position-view contract those routines expect. The stream deliberately
// repeats a vertex's bytes every time it is referenced, since that is the
// unindexed shape the optimizer package is built to deduplicate.
func (m *Mesh) PositionStream() []byte {
	stream := make([]byte, len(m.Indices)*vertexRecordSize)
	for i, idx := range m.Indices {
		encodeVertex(stream[i*vertexRecordSize:(i+1)*vertexRecordSize], m.Vertices[idx])
	}
	return stream
}

func encodeVertex(dst []byte, v Vertex) {
	putFloat32(dst[0:4], v.Position.X())
	putFloat32(dst[4:8], v.Position.Y())
	putFloat32(dst[8:12], v.Position.Z())
	putFloat32(dst[12:16], v.Normal.X())
	putFloat32(dst[16:20], v.Normal.Y())
	putFloat32(dst[20:24], v.Normal.Z())
	putFloat32(dst[24:28], v.TexCoords.X())
	putFloat32(dst[28:32], v.TexCoords.Y())
}

func putFloat32(dst []byte, v float32) {
	bits := math.Float32bits(v)
	binary.LittleEndian.PutUint32(dst, bits)
}

// GreedyMeshChunk performs greedy meshing on a chunk of voxels. It takes a
// 3D array of voxel occupancy and generates a mesh, four vertices of its own
// per face, by merging adjacent coplanar faces into the largest rectangle
// that shares a block type, one sweep direction at a time. PositionStream
// gives its unindexed form.
func GreedyMeshChunk(voxels [][][]BlockType, chunkPos mgl32.Vec3) *Mesh {
	mesh := NewMesh()

	sizeX := len(voxels)
	if sizeX == 0 {
		return mesh
	}
	sizeY := len(voxels[0])
	if sizeY == 0 {
		return mesh
	}
	sizeZ := len(voxels[0][0])
	if sizeZ == 0 {
		return mesh
	}

	visited := make([][][]bool, sizeX)
	for x := 0; x < sizeX; x++ {
		visited[x] = make([][]bool, sizeY)
		for y := 0; y < sizeY; y++ {
			visited[x][y] = make([]bool, sizeZ)
		}
	}

	for dim := 0; dim < 6; dim++ {
		dir := Direction(dim)

		for x := 0; x < sizeX; x++ {
			for y := 0; y < sizeY; y++ {
				for z := 0; z < sizeZ; z++ {
					visited[x][y][z] = false
				}
			}
		}

		// Determine the axis based on direction
		var u, v, w int
		var maskSize [3]int

		switch dir {
		case North, South: // Z axis
			u, v, w = 0, 1, 2
			maskSize = [3]int{sizeX, sizeY, sizeZ}
		case East, West: // X axis
			u, v, w = 2, 1, 0
			maskSize = [3]int{sizeZ, sizeY, sizeX}
		case Up, Down: // Y axis
			u, v, w = 0, 2, 1
			maskSize = [3]int{sizeX, sizeZ, sizeY}
		}

		wStart, wEnd, wStep := 0, maskSize[w], 1
		if dir == South || dir == East || dir == Up {
			wStart, wEnd = maskSize[w]-1, -1
			wStep = -1
		}

		for w0 := wStart; w0 != wEnd; w0 += wStep {
			mask := make([][]BlockType, maskSize[u])
			for i := 0; i < maskSize[u]; i++ {
				mask[i] = make([]BlockType, maskSize[v])
			}

			// Build the mask of faces visible from this direction at this slice.
			for v0 := 0; v0 < maskSize[v]; v0++ {
				for u0 := 0; u0 < maskSize[u]; u0++ {
					x, y, z := sliceCoord(dir, u0, v0, w0)

					blockType := voxels[x][y][z]
					if blockType == Air {
						continue
					}

					nx, ny, nz := x, y, z
					switch dir {
					case North:
						nz--
					case South:
						nz++
					case East:
						nx++
					case West:
						nx--
					case Up:
						ny++
					case Down:
						ny--
					}

					isVisible := nx < 0 || nx >= sizeX || ny < 0 || ny >= sizeY || nz < 0 || nz >= sizeZ ||
						voxels[nx][ny][nz] != blockType
					if isVisible {
						mask[u0][v0] = blockType
					}
				}
			}

			// Greedily merge the mask into rectangles.
			for v0 := 0; v0 < maskSize[v]; v0++ {
				for u0 := 0; u0 < maskSize[u]; u0++ {
					blockType := mask[u0][v0]
					if blockType == Air {
						continue
					}
					x, y, z := sliceCoord(dir, u0, v0, w0)
					if visited[x][y][z] {
						continue
					}

					width := 1
					for u1 := u0 + 1; u1 < maskSize[u]; u1++ {
						nx, ny, nz := sliceCoord(dir, u1, v0, w0)
						if mask[u1][v0] != blockType || visited[nx][ny][nz] {
							break
						}
						width++
					}

					height := 1
					canExtend := true
					for v1 := v0 + 1; v1 < maskSize[v] && canExtend; v1++ {
						for u1 := u0; u1 < u0+width; u1++ {
							nx, ny, nz := sliceCoord(dir, u1, v1, w0)
							if mask[u1][v1] != blockType || visited[nx][ny][nz] {
								canExtend = false
								break
							}
						}
						if canExtend {
							height++
						}
					}

					for v1 := v0; v1 < v0+height; v1++ {
						for u1 := u0; u1 < u0+width; u1++ {
							vx, vy, vz := sliceCoord(dir, u1, v1, w0)
							visited[vx][vy][vz] = true
						}
					}

					mesh.AddFace(rectFace(dir, blockType, u0, v0, w0, width, height, chunkPos))
				}
			}
		}
	}

	return mesh
}

// sliceCoord maps mask-local (u0, v0, w0) coordinates back to voxel-grid
// (x, y, z) coordinates for the given sweep direction.
func sliceCoord(dir Direction, u0, v0, w0 int) (x, y, z int) {
	switch dir {
	case North, South:
		return u0, v0, w0
	case East, West:
		return w0, v0, u0
	default: // Up, Down
		return u0, w0, v0
	}
}

// rectFace builds the quad face for a merged width x height rectangle at
// mask position (u0, v0, w0) on the given direction's sweep plane, in world
// space offset by chunkPos.
func rectFace(dir Direction, blockType BlockType, u0, v0, w0, width, height int, chunkPos mgl32.Vec3) Face {
	var p0, p1, p2, p3 mgl32.Vec3

	switch dir {
	case North: // Facing -Z
		p0 = mgl32.Vec3{float32(u0), float32(v0), float32(w0)}
		p1 = mgl32.Vec3{float32(u0 + width), float32(v0), float32(w0)}
		p2 = mgl32.Vec3{float32(u0 + width), float32(v0 + height), float32(w0)}
		p3 = mgl32.Vec3{float32(u0), float32(v0 + height), float32(w0)}
	case South: // Facing +Z
		p0 = mgl32.Vec3{float32(u0 + width), float32(v0), float32(w0 + 1)}
		p1 = mgl32.Vec3{float32(u0), float32(v0), float32(w0 + 1)}
		p2 = mgl32.Vec3{float32(u0), float32(v0 + height), float32(w0 + 1)}
		p3 = mgl32.Vec3{float32(u0 + width), float32(v0 + height), float32(w0 + 1)}
	case East: // Facing +X
		p0 = mgl32.Vec3{float32(w0 + 1), float32(v0), float32(u0 + width)}
		p1 = mgl32.Vec3{float32(w0 + 1), float32(v0), float32(u0)}
		p2 = mgl32.Vec3{float32(w0 + 1), float32(v0 + height), float32(u0)}
		p3 = mgl32.Vec3{float32(w0 + 1), float32(v0 + height), float32(u0 + width)}
	case West: // Facing -X
		p0 = mgl32.Vec3{float32(w0), float32(v0), float32(u0)}
		p1 = mgl32.Vec3{float32(w0), float32(v0), float32(u0 + width)}
		p2 = mgl32.Vec3{float32(w0), float32(v0 + height), float32(u0 + width)}
		p3 = mgl32.Vec3{float32(w0), float32(v0 + height), float32(u0)}
	case Up: // Facing +Y
		p0 = mgl32.Vec3{float32(u0), float32(w0 + 1), float32(v0 + height)}
		p1 = mgl32.Vec3{float32(u0 + width), float32(w0 + 1), float32(v0 + height)}
		p2 = mgl32.Vec3{float32(u0 + width), float32(w0 + 1), float32(v0)}
		p3 = mgl32.Vec3{float32(u0), float32(w0 + 1), float32(v0)}
	case Down: // Facing -Y
		p0 = mgl32.Vec3{float32(u0), float32(w0), float32(v0)}
		p1 = mgl32.Vec3{float32(u0 + width), float32(w0), float32(v0)}
		p2 = mgl32.Vec3{float32(u0 + width), float32(w0), float32(v0 + height)}
		p3 = mgl32.Vec3{float32(u0), float32(w0), float32(v0 + height)}
	}

	p0, p1, p2, p3 = p0.Add(chunkPos), p1.Add(chunkPos), p2.Add(chunkPos), p3.Add(chunkPos)

	normal := dir.DirectionVector()
	t0 := mgl32.Vec2{0, 0}
	t1 := mgl32.Vec2{float32(width), 0}
	t2 := mgl32.Vec2{float32(width), float32(height)}
	t3 := mgl32.Vec2{0, float32(height)}

	return Face{
		BlockType: blockType,
		Vertices: [4]Vertex{
			{Position: p0, Normal: normal, TexCoords: t0},
			{Position: p1, Normal: normal, TexCoords: t1},
			{Position: p2, Normal: normal, TexCoords: t2},
			{Position: p3, Normal: normal, TexCoords: t3},
		},
	}
}

// GreedyMesh processes a flat array of block types and returns a mesh
func GreedyMesh(flatBlocks []BlockType, chunkX, chunkY, chunkZ int32, chunkSize int) *Mesh {
	chunkPos := mgl32.Vec3{float32(chunkX * int32(chunkSize)), float32(chunkY * int32(chunkSize)), float32(chunkZ * int32(chunkSize))}
	blocks := ConvertTo3DArray(flatBlocks, chunkSize, chunkSize, chunkSize)
	return GreedyMeshChunk(blocks, chunkPos)
}
