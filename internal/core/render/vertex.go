package render

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the interleaved vertex layout the runtime emits:
// position, normal, texture coordinates.
type Vertex struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	TexCoords mgl32.Vec2
}

// vertexFloats is the number of float32 components per vertex.
const vertexFloats = 3 + 3 + 2

// VertexBytes encodes vertices as little-endian float32 for buffer upload.
func VertexBytes(vertices []Vertex) []byte {
	out := make([]byte, 0, len(vertices)*vertexFloats*4)
	for _, v := range vertices {
		for _, f := range [vertexFloats]float32{
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Normal.X(), v.Normal.Y(), v.Normal.Z(),
			v.TexCoords.X(), v.TexCoords.Y(),
		} {
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(f))
		}
	}
	return out
}

// IndexBytes encodes indices as little-endian uint32 for buffer upload.
func IndexBytes(indices []uint32) []byte {
	out := make([]byte, 0, len(indices)*4)
	for _, idx := range indices {
		out = binary.LittleEndian.AppendUint32(out, idx)
	}
	return out
}
