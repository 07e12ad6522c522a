// Package world owns the entity registry and drives the multi-rate update
// scheduler. The world runs entirely on the frame goroutine: updates enqueue
// intents, a separate apply phase commits them, so entities can spawn and
// remove entities while the world is mid-iteration without invalidating the
// pass.
package world

import (
	"github.com/voxforge/voxforge/internal/core/entity"
	"github.com/voxforge/voxforge/internal/core/events"
	"github.com/voxforge/voxforge/internal/core/observability/log"
	"github.com/voxforge/voxforge/pkg/generic"
	"github.com/voxforge/voxforge/pkg/sequence"
)

// World holds all entities partitioned by capability. Each entity value is
// owned exactly once, by the partition matching its capability set: Objects
// live in objects, update-only entities in onlyUpdateable, render-only
// entities in onlyRenderable.
type World struct {
	logger log.Log
	bus    *events.Bus

	objects        []entity.Object
	onlyUpdateable []entity.Updateable
	onlyRenderable []entity.Renderable

	// Per-renderable draw state (buffer cache + dirty flag), keyed by the
	// entity value. Entries live exactly as long as their entity.
	renderStates map[entity.Renderable]*renderState

	actionPool *generic.Pool[[]entity.Action]
}

// New creates an empty world. A nil bus gets a private one.
func New(logger log.Log, bus *events.Bus) *World {
	if bus == nil {
		bus = events.NewBus()
	}
	return &World{
		logger:       logger,
		bus:          bus,
		renderStates: make(map[entity.Renderable]*renderState),
		actionPool: generic.NewPool(func() []entity.Action {
			return make([]entity.Action, 0, 16)
		}),
	}
}

// Bus exposes the lifecycle event bus for application hooks.
func (w *World) Bus() *events.Bus { return w.bus }

// Spawn registers an entity into the partition matching its capabilities.
// Entities spawned mid-frame via actions become eligible for updates on the
// next pass; direct calls before the first frame behave identically.
func (w *World) Spawn(e entity.Entity) {
	cfg := e.Configuration()
	switch v := e.(type) {
	case entity.Object:
		w.objects = append(w.objects, v)
		w.renderStates[v] = &renderState{dirty: true}
	case entity.Updateable:
		w.onlyUpdateable = append(w.onlyUpdateable, v)
	case entity.Renderable:
		w.onlyRenderable = append(w.onlyRenderable, v)
		w.renderStates[v] = &renderState{dirty: true}
	default:
		w.logger.Warn("spawning entity with no capabilities",
			log.String("tag", cfg.Tag))
		return
	}

	w.logger.Debug("entity spawned",
		log.String("tag", cfg.Tag),
		log.String("frequency", cfg.Frequency.String()),
		log.Bool("wants_render", cfg.WantsRender))
	_ = w.bus.Publish(events.Event{
		Type:   events.TypeEntitySpawned,
		Source: "world",
		Data:   events.EntitySpawned{Tag: cfg.Tag},
	})
}

// UpdateFast runs the per-frame cadence pass and applies its actions.
func (w *World) UpdateFast(deltaTime float64, input entity.InputHandler) {
	w.runPass(entity.FrequencyFast, deltaTime, input)
}

// UpdateOnSecond runs the once-per-second cadence pass and applies its
// actions. The caller owns the accumulated-time threshold; the world holds
// no clock.
func (w *World) UpdateOnSecond(deltaTime float64, input entity.InputHandler) {
	w.runPass(entity.FrequencyOnSecond, deltaTime, input)
}

// UpdateOnCycle runs the per-cycle cadence pass and applies its actions.
func (w *World) UpdateOnCycle(deltaTime float64, input entity.InputHandler) {
	w.runPass(entity.FrequencyOnCycle, deltaTime, input)
}

// runPass updates every entity of the given cadence, collects the returned
// actions, and applies them as one batch after iteration finishes. Entities
// spawned by the batch are not visited by this pass.
func (w *World) runPass(freq entity.UpdateFrequency, deltaTime float64, input entity.InputHandler) {
	actions := w.actionPool.Get()[:0]

	matches := func(u entity.Updateable) bool {
		return u.Configuration().Frequency == freq
	}
	collect := func(u entity.Updateable) {
		actions = append(actions, u.Update(deltaTime, input)...)
	}

	sequence.From(w.onlyUpdateable).Filter(matches).Each(collect).Count()
	sequence.From(updateablesOf(w.objects)).Filter(matches).Each(collect).Count()

	w.apply(actions)
	w.actionPool.Put(actions[:0])
}

func updateablesOf(objects []entity.Object) []entity.Updateable {
	out := make([]entity.Updateable, len(objects))
	for i, o := range objects {
		out[i] = o
	}
	return out
}

// apply commits an action batch: all removals first, then all spawns in
// order. The ordering guarantees Remove(X)+Spawn(X') never transiently
// yields zero or two entities with the tag.
func (w *World) apply(actions []entity.Action) {
	if len(actions) == 0 {
		return
	}

	var tags []string
	var spawns []entity.Entity
	for _, a := range actions {
		switch v := a.(type) {
		case entity.Remove:
			tags = append(tags, v.Tags...)
		case entity.Spawn:
			spawns = append(spawns, v.Entities...)
		}
	}

	for _, tag := range tags {
		w.removeTag(tag)
	}
	for _, e := range spawns {
		w.Spawn(e)
	}
}

// removeTag deletes every entity whose tag matches, across all partitions.
// An unknown tag is a silent no-op. O(n) in entity count.
func (w *World) removeTag(tag string) {
	removed := 0

	objects := w.objects[:0]
	for _, o := range w.objects {
		if o.Configuration().Tag == tag {
			delete(w.renderStates, o)
			removed++
			continue
		}
		objects = append(objects, o)
	}
	w.objects = objects

	updateables := w.onlyUpdateable[:0]
	for _, u := range w.onlyUpdateable {
		if u.Configuration().Tag == tag {
			removed++
			continue
		}
		updateables = append(updateables, u)
	}
	w.onlyUpdateable = updateables

	renderables := w.onlyRenderable[:0]
	for _, r := range w.onlyRenderable {
		if r.Configuration().Tag == tag {
			delete(w.renderStates, r)
			removed++
			continue
		}
		renderables = append(renderables, r)
	}
	w.onlyRenderable = renderables

	if removed == 0 {
		return
	}
	w.logger.Debug("entity removed", log.String("tag", tag), log.Int("count", removed))
	_ = w.bus.Publish(events.Event{
		Type:   events.TypeEntityRemoved,
		Source: "world",
		Data:   events.EntityRemoved{Tag: tag},
	})
}

// MarkDirty flags the renderable with the given tag for a buffer rebuild on
// the next aggregation pass.
func (w *World) MarkDirty(tag string) {
	for r, state := range w.renderStates {
		if r.Configuration().Tag == tag {
			state.dirty = true
		}
	}
}

// CountObjects returns the number of entities in the object partition.
func (w *World) CountObjects() int { return len(w.objects) }

// CountUpdateables returns the number of update-only entities.
func (w *World) CountUpdateables() int { return len(w.onlyUpdateable) }

// CountRenderables returns the number of render-only entities.
func (w *World) CountRenderables() int { return len(w.onlyRenderable) }
