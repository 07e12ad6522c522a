package entities

import (
	"github.com/voxforge/voxforge/internal/core/engine"
	"github.com/voxforge/voxforge/internal/core/entity"
	"github.com/voxforge/voxforge/internal/core/render"
)

// ClearScreenTag identifies the clear-screen entity.
const ClearScreenTag = "ClearScreen"

// ClearScreen is a renderable with no geometry. Its presence tells the
// backend a frame should be presented even when nothing else draws.
type ClearScreen struct{}

var _ entity.Renderable = (*ClearScreen)(nil)

func (ClearScreen) Configuration() entity.Configuration {
	return entity.NewConfiguration(ClearScreenTag, entity.FrequencyNone, true)
}

func (ClearScreen) PrepareRender(engine.Device) error { return nil }

func (ClearScreen) DoRender() bool { return false }

func (ClearScreen) Vertices() []render.Vertex { return nil }

func (ClearScreen) Indices() []uint32 { return nil }
