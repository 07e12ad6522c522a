// Package entities holds the concrete entities the demo application runs:
// procedural scenes that generate voxel geometry and the instanced cube
// that renders it.
package entities

import (
	"github.com/voxforge/voxforge/internal/core/engine"
	"github.com/voxforge/voxforge/internal/core/entity"
	"github.com/voxforge/voxforge/internal/core/render"
)

// CubeTag is the default tag for cube entities spawned by scenes.
const CubeTag = "Cube"

const cubeAsset = "cube.glb"

// Cube renders a shared base cube mesh once per baked instance. It never
// updates; geometry changes arrive by replacing the whole entity.
type Cube struct {
	tag       string
	resources render.ResourceManager
	instances []render.Instance
	mesh      render.Mesh
}

var _ entity.Renderable = (*Cube)(nil)

// NewCube builds a cube entity with the given per-draw instances.
func NewCube(tag string, instances []render.Instance, resources render.ResourceManager) *Cube {
	return &Cube{
		tag:       tag,
		resources: resources,
		instances: instances,
	}
}

func (c *Cube) Configuration() entity.Configuration {
	return entity.NewConfiguration(c.tag, entity.FrequencyNone, true)
}

// PrepareRender loads the base mesh with the instances baked in.
func (c *Cube) PrepareRender(device engine.Device) error {
	mesh, err := c.resources.InstancedMeshFromPath(device, cubeAsset, c.instances, render.MaterialReplace)
	if err != nil {
		return err
	}
	c.mesh = mesh
	return nil
}

func (c *Cube) DoRender() bool { return c.mesh != nil }

func (c *Cube) Vertices() []render.Vertex {
	if c.mesh == nil {
		return nil
	}
	return c.mesh.Vertices()
}

func (c *Cube) Indices() []uint32 {
	if c.mesh == nil {
		return nil
	}
	return c.mesh.Indices()
}

// Instances exposes the baked per-draw transforms.
func (c *Cube) Instances() []render.Instance { return c.instances }
