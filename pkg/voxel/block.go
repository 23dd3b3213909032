package voxel

// BlockType is the per-cell occupancy state the greedy mesher tests for face
// visibility. The mesher does not care about material, only whether a cell
// is empty or occupied, so this intentionally carries no texture/material
// taxonomy beyond that.
type BlockType uint8

const (
	Air BlockType = iota
	Solid
)

// IsSolid reports whether the block type occupies its cell.
func (b BlockType) IsSolid() bool {
	return b != Air
}
