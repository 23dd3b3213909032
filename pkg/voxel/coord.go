package voxel

// ConvertTo3DArray converts a flat 1D array of BlockType, laid out
// X->Y->Z, into a 3D array indexable as blocks[x][y][z].
func ConvertTo3DArray(flatBlocks []BlockType, sizeX, sizeY, sizeZ int) [][][]BlockType {
	blocks := make([][][]BlockType, sizeX)
	for x := range sizeX {
		blocks[x] = make([][]BlockType, sizeY)
		for y := range sizeY {
			blocks[x][y] = make([]BlockType, sizeZ)
		}
	}

	for x := range sizeX {
		for y := range sizeY {
			for z := range sizeZ {
				index := x*sizeY*sizeZ + y*sizeZ + z
				if index < len(flatBlocks) {
					blocks[x][y][z] = flatBlocks[index]
				} else {
					blocks[x][y][z] = Air
				}
			}
		}
	}
	return blocks
}
