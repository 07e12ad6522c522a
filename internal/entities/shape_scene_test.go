package entities

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxforge/voxforge/internal/core/engine"
	"github.com/voxforge/voxforge/internal/core/entity"
	"github.com/voxforge/voxforge/internal/core/observability/log"
	"github.com/voxforge/voxforge/internal/core/render"
	"github.com/voxforge/voxforge/internal/core/voxel"
)

func sceneBounds() (voxel.Position, voxel.Position) {
	return voxel.Position{X: -50, Y: -50, Z: -50}, voxel.Position{X: 50, Y: 50, Z: 50}
}

func TestNewShapeSceneRejectsBadInput(t *testing.T) {
	min, max := sceneBounds()
	rng := rand.New(rand.NewSource(1))
	res := render.NewProceduralResources()

	_, err := NewShapeScene(rng, log.NewNop(), res, max, min, 5)
	assert.Error(t, err, "inverted bounds")

	_, err = NewShapeScene(rng, log.NewNop(), res, min, max, -1)
	assert.Error(t, err, "negative sphere count")
}

func TestShapeSceneReplacesItselfWithCube(t *testing.T) {
	min, max := sceneBounds()
	scene, err := NewShapeScene(rand.New(rand.NewSource(1)), log.NewNop(),
		render.NewProceduralResources(), min, max, 15)
	require.NoError(t, err)

	actions := scene.Update(0.016, entity.NopInput{})
	require.Len(t, actions, 2)

	remove, ok := actions[0].(entity.Remove)
	require.True(t, ok, "removal must precede the spawn")
	assert.Equal(t, []string{ShapeSceneTag}, remove.Tags)

	spawn, ok := actions[1].(entity.Spawn)
	require.True(t, ok)
	require.Len(t, spawn.Entities, 1)
	cube, ok := spawn.Entities[0].(*Cube)
	require.True(t, ok)
	assert.Equal(t, CubeTag, cube.Configuration().Tag)
	assert.NotEmpty(t, cube.Instances())
}

func TestShapeSceneCarvesUpperHalf(t *testing.T) {
	min, max := sceneBounds()
	scene, err := NewShapeScene(rand.New(rand.NewSource(7)), log.NewNop(),
		render.NewProceduralResources(), min, max, 15)
	require.NoError(t, err)

	actions := scene.Update(0.016, entity.NopInput{})
	cube := actions[1].(entity.Spawn).Entities[0].(*Cube)

	for _, inst := range cube.Instances() {
		assert.Less(t, inst.Position.Y(), float32(0),
			"everything at or above the horizon is carved away")
	}
}

func TestShapeSceneIsDeterministicPerSeed(t *testing.T) {
	min, max := sceneBounds()
	res := render.NewProceduralResources()

	build := func(seed int64) []render.Instance {
		scene, err := NewShapeScene(rand.New(rand.NewSource(seed)), log.NewNop(), res, min, max, 10)
		require.NoError(t, err)
		actions := scene.Update(0.016, entity.NopInput{})
		return actions[1].(entity.Spawn).Entities[0].(*Cube).Instances()
	}

	assert.Equal(t, build(42), build(42))
}

func TestCubeLifecycle(t *testing.T) {
	instances := []render.Instance{{}}
	cube := NewCube(CubeTag, instances, render.NewProceduralResources())

	assert.False(t, cube.DoRender(), "not renderable before prepare")
	assert.Empty(t, cube.Vertices())

	eng := engine.NewHeadless()
	require.NoError(t, cube.PrepareRender(eng.Device()))

	assert.True(t, cube.DoRender())
	assert.Len(t, cube.Vertices(), 24)
	assert.Len(t, cube.Indices(), 36)

	cfg := cube.Configuration()
	assert.Equal(t, entity.FrequencyNone, cfg.Frequency)
	assert.True(t, cfg.WantsRender)
}

func TestTerrainSceneReplacesItself(t *testing.T) {
	scene := NewTerrainScene(1337, 32, log.NewNop(), render.NewProceduralResources())

	actions := scene.Update(0.016, entity.NopInput{})
	require.Len(t, actions, 2)
	assert.Equal(t, entity.Remove{Tags: []string{TerrainSceneTag}}, actions[0])

	spawn := actions[1].(entity.Spawn)
	cube := spawn.Entities[0].(*Cube)
	assert.Equal(t, TerrainTag, cube.Configuration().Tag)
}

func TestTerrainSceneRemovesItselfOnBadSize(t *testing.T) {
	scene := NewTerrainScene(1, 0, log.NewNop(), render.NewProceduralResources())

	actions := scene.Update(0.016, entity.NopInput{})
	require.Len(t, actions, 1)
	assert.Equal(t, entity.Remove{Tags: []string{TerrainSceneTag}}, actions[0])
}

func TestClearScreenNeverDraws(t *testing.T) {
	cs := ClearScreen{}
	require.NoError(t, cs.PrepareRender(nil))
	assert.False(t, cs.DoRender())
	assert.Empty(t, cs.Vertices())
	assert.Empty(t, cs.Indices())
}
