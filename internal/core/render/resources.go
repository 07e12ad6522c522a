package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxforge/voxforge/internal/core/engine"
)

// MaterialPolicy tells the resource manager how to treat materials baked
// into an asset.
type MaterialPolicy uint8

const (
	// MaterialKeep uses whatever material the asset carries.
	MaterialKeep MaterialPolicy = iota
	// MaterialReplace swaps the asset material for an engine-provided one.
	MaterialReplace
	// MaterialIgnore strips materials entirely.
	MaterialIgnore
)

// ResourceManager turns an asset path plus a material policy into a mesh
// with baked instance data. Disk formats and texture decoding live behind
// this boundary, outside the runtime core.
type ResourceManager interface {
	InstancedMeshFromPath(device engine.Device, path string, instances []Instance, policy MaterialPolicy) (Mesh, error)
}

// ProceduralResources is a ResourceManager that synthesizes geometry instead
// of touching disk. Any path resolves to a unit cube; it exists so the
// runtime can run headless (tests, demo driver, CI).
type ProceduralResources struct{}

// NewProceduralResources returns a disk-free resource manager.
func NewProceduralResources() *ProceduralResources { return &ProceduralResources{} }

func (p *ProceduralResources) InstancedMeshFromPath(_ engine.Device, path string, instances []Instance, _ MaterialPolicy) (Mesh, error) {
	if path == "" {
		return nil, engine.NewResourceError(path, engine.ErrResourceNotFound)
	}
	vertices, indices := UnitCube()
	return NewStandardMesh(path, vertices, indices, instances), nil
}

// UnitCube returns the geometry of an axis-aligned cube spanning
// [-0.5, 0.5] on each axis, four vertices per face, two triangles per face.
func UnitCube() ([]Vertex, []uint32) {
	faces := []struct {
		normal mgl32.Vec3
		corner [4]mgl32.Vec3
	}{
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}, {0.5, -0.5, 0.5}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}, {-0.5, -0.5, -0.5}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-0.5, 0.5, -0.5}, {-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-0.5, -0.5, 0.5}, {-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}}},
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}},
	}
	uv := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]Vertex, 0, len(faces)*4)
	indices := make([]uint32, 0, len(faces)*6)
	for f, face := range faces {
		base := uint32(f * 4)
		for c := 0; c < 4; c++ {
			vertices = append(vertices, Vertex{
				Position:  face.corner[c],
				Normal:    face.normal,
				TexCoords: uv[c],
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}
