// Command meshopt-demo builds a voxel chunk mesh and runs it through the
// full mesh-optimization pipeline, logging before/after statistics for each
// stage.
package main

import (
	"log"

	"github.com/leterax/go-meshopt/pkg/meshopt"
	"github.com/leterax/go-meshopt/pkg/voxel"
)

func main() {
	const chunkSize = 8

	blocks := make([]voxel.BlockType, chunkSize*chunkSize*chunkSize)
	for i := range blocks {
		// A checkerboard of solid blocks gives the greedy mesher plenty of
		// disjoint faces to work with instead of one fully-merged cube.
		if (i/chunkSize+i%chunkSize)%2 == 0 {
			blocks[i] = voxel.Solid
		} else {
			blocks[i] = voxel.Air
		}
	}

	mesh := voxel.GreedyMesh(blocks, 0, 0, 0, chunkSize)
	log.Printf("voxel mesh: %d faces, %d indices (unindexed)", len(mesh.Faces), len(mesh.Indices))

	stream := mesh.PositionStream()
	recordSize := mesh.VertexRecordSize()
	unindexedCount := len(stream) / recordSize

	indices := make([]uint32, unindexedCount)
	unique := meshopt.GenerateIndexBuffer(indices, stream, unindexedCount, recordSize)

	vertices := make([]byte, unique*recordSize)
	meshopt.GenerateVertexBuffer(vertices, indices, stream, unindexedCount, recordSize)
	log.Printf("indexed: %d unique vertices, %d indices", unique, len(indices))

	before := meshopt.AnalyzeVertexCache(indices, unique)
	log.Printf("post-transform before: acmr=%.4f atvr=%.4f", before.ACMR, before.ATVR)

	cacheOptimized := make([]uint32, len(indices))
	clusters := meshopt.OptimizeVertexCacheClusters(cacheOptimized, indices, unique)
	after := meshopt.AnalyzeVertexCache(cacheOptimized, unique)
	log.Printf("post-transform after: acmr=%.4f atvr=%.4f clusters=%d", after.ACMR, after.ATVR, len(clusters))

	positions := meshopt.PositionView{Data: vertices, Stride: recordSize}

	overdrawBefore := meshopt.AnalyzeOverdraw(cacheOptimized, positions, unique)
	log.Printf("overdraw before: covered=%d shaded=%d overdraw=%.4f",
		overdrawBefore.PixelsCovered, overdrawBefore.PixelsShaded, overdrawBefore.Overdraw)

	overdrawOptimized := make([]uint32, len(cacheOptimized))
	meshopt.OptimizeOverdraw(overdrawOptimized, cacheOptimized, positions, unique, clusters, meshopt.DefaultOverdrawThreshold)
	overdrawAfter := meshopt.AnalyzeOverdraw(overdrawOptimized, positions, unique)
	log.Printf("overdraw after: covered=%d shaded=%d overdraw=%.4f",
		overdrawAfter.PixelsCovered, overdrawAfter.PixelsShaded, overdrawAfter.Overdraw)

	fetchBefore := meshopt.AnalyzeVertexFetch(overdrawOptimized, unique, recordSize)
	log.Printf("fetch before: bytes=%d overfetch=%.4f", fetchBefore.BytesFetched, fetchBefore.Overfetch)

	fetchVertices := make([]byte, len(vertices))
	meshopt.OptimizeVertexFetch(fetchVertices, overdrawOptimized, vertices, unique, recordSize)
	fetchAfter := meshopt.AnalyzeVertexFetch(overdrawOptimized, unique, recordSize)
	log.Printf("fetch after: bytes=%d overfetch=%.4f", fetchAfter.BytesFetched, fetchAfter.Overfetch)
}
