package world

import (
	"fmt"

	"github.com/voxforge/voxforge/internal/core/engine"
	"github.com/voxforge/voxforge/internal/core/entity"
	"github.com/voxforge/voxforge/internal/core/events"
	"github.com/voxforge/voxforge/internal/core/observability/log"
	"github.com/voxforge/voxforge/internal/core/render"
)

// renderState is the per-renderable draw cache. The explicit dirty flag
// replaces two fragile behaviors of the original aggregation: the global
// "skip everything once a vertex buffer exists" guard, which starved any
// renderable added after the first frame, and the "last buffer wins" drop
// of all but one buffer pair per frame.
type renderState struct {
	prepared bool
	dirty    bool
	buffers  *engine.MeshBuffers
}

// Render aggregates every renderable entity into GPU buffers and submits
// the full batch set to the engine.
//
// For each renderable that reports DoRender: unprepared entities get their
// one-time PrepareRender call (a failure is returned as fatal), dirty
// entities get a fresh vertex+index buffer pair, clean entities reuse their
// cached pair. No geometry at all this frame is not an error; submission is
// simply skipped.
func (w *World) Render(eng engine.Engine) error {
	device := eng.Device()

	batches := make([]engine.MeshBuffers, 0, len(w.renderStates))
	for _, r := range w.renderCandidates() {
		state := w.renderStates[r]
		if state == nil {
			// Renderable without state means Spawn was bypassed; recover.
			state = &renderState{dirty: true}
			w.renderStates[r] = state
		}

		if !state.prepared {
			if err := r.PrepareRender(device); err != nil {
				return fmt.Errorf("world: preparing %q: %w", r.Configuration().Tag, err)
			}
			state.prepared = true
		}

		if !r.DoRender() {
			continue
		}

		if state.dirty || state.buffers == nil {
			buffers, err := w.buildBuffers(device, r)
			if err != nil {
				return err
			}
			state.buffers = buffers
			state.dirty = false
		}
		if state.buffers != nil {
			batches = append(batches, *state.buffers)
		}
	}

	if len(batches) == 0 {
		return nil
	}

	eng.SubmitMeshes(batches)
	// Keep the single-mesh bindings pointing at the first batch for
	// backends that only consume one pair.
	eng.SetVertexBuffer(batches[0].Vertex)
	eng.SetIndexBuffer(batches[0].Index, batches[0].IndexCount)

	_ = w.bus.Publish(events.Event{
		Type:   events.TypeBuffersBuilt,
		Source: "world",
		Data:   events.BuffersBuilt{Meshes: len(batches)},
	})
	return nil
}

// renderCandidates lists render-only entities plus objects flagged for
// rendering, in registration order.
func (w *World) renderCandidates() []entity.Renderable {
	out := make([]entity.Renderable, 0, len(w.onlyRenderable)+len(w.objects))
	out = append(out, w.onlyRenderable...)
	for _, o := range w.objects {
		if o.Configuration().WantsRender {
			out = append(out, o)
		}
	}
	return out
}

// buildBuffers encodes the renderable's geometry and creates one vertex and
// one index buffer through the facade device. Empty geometry yields no
// buffers and no error.
func (w *World) buildBuffers(device engine.Device, r entity.Renderable) (*engine.MeshBuffers, error) {
	vertices := r.Vertices()
	indices := r.Indices()
	if len(vertices) == 0 || len(indices) == 0 {
		return nil, nil
	}

	tag := r.Configuration().Tag
	vertexBuf, err := device.CreateBuffer(tag+"/vertex", render.VertexBytes(vertices), engine.UsageVertex)
	if err != nil {
		return nil, fmt.Errorf("world: vertex buffer for %q: %w", tag, err)
	}
	indexBuf, err := device.CreateBuffer(tag+"/index", render.IndexBytes(indices), engine.UsageIndex)
	if err != nil {
		return nil, fmt.Errorf("world: index buffer for %q: %w", tag, err)
	}

	w.logger.Debug("buffers built",
		log.String("tag", tag),
		log.Int("vertices", len(vertices)),
		log.Int("indices", len(indices)))

	return &engine.MeshBuffers{
		Vertex:     vertexBuf,
		Index:      indexBuf,
		IndexCount: uint32(len(indices)),
	}, nil
}
