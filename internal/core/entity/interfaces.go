package entity

import (
	"github.com/voxforge/voxforge/internal/core/engine"
	"github.com/voxforge/voxforge/internal/core/render"
)

// Entity is a unit of simulation identified by the tag in its configuration.
// Tags are unique by convention, not enforced. An entity implements zero or
// more of Updateable and Renderable; Object is the union of both.
type Entity interface {
	Configuration() Configuration
}

// Updateable is the simulation half of an entity. Update is called per the
// configured cadence and must return synchronously within the frame budget:
// no blocking, no background work. The returned actions are applied by the
// world as a batch after the full pass, never mid-iteration.
type Updateable interface {
	Entity
	Update(deltaTime float64, input InputHandler) []Action
}

// Renderable is the drawing half of an entity.
type Renderable interface {
	Entity

	// PrepareRender loads meshes/materials through the device. Called once
	// before the entity's geometry is first needed; a failure is fatal at
	// application start.
	PrepareRender(device engine.Device) error

	// DoRender reports whether the entity has geometry to draw this frame.
	DoRender() bool

	Vertices() []render.Vertex
	Indices() []uint32
}

// Object is the union contract: an entity that both updates and renders.
type Object interface {
	Updateable
	Renderable
}

// InputHandler is the per-frame input surface handed to updates. The runtime
// never owns input; the platform layer supplies an implementation.
type InputHandler interface {
	IsPressed(key string) bool
	CursorDelta() (dx, dy float64)
}

// NopInput is an InputHandler with no input attached.
type NopInput struct{}

func (NopInput) IsPressed(string) bool { return false }

func (NopInput) CursorDelta() (float64, float64) { return 0, 0 }
