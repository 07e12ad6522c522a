package entities

import (
	"github.com/voxforge/voxforge/internal/core/entity"
	"github.com/voxforge/voxforge/internal/core/observability/log"
	"github.com/voxforge/voxforge/internal/core/render"
	"github.com/voxforge/voxforge/internal/core/terrain"
)

// TerrainSceneTag identifies the terrain scene entity.
const TerrainSceneTag = "TerrainScene"

// TerrainTag is the tag of the cube entity the terrain scene spawns.
const TerrainTag = "Terrain"

// TerrainScene generates noise terrain once and replaces itself with a cube
// entity carrying the culled instances.
type TerrainScene struct {
	seed      uint32
	size      int
	logger    log.Log
	resources render.ResourceManager
}

var _ entity.Updateable = (*TerrainScene)(nil)

// NewTerrainScene builds a terrain scene for a fixed seed.
func NewTerrainScene(seed uint32, size int, logger log.Log, resources render.ResourceManager) *TerrainScene {
	return &TerrainScene{
		seed:      seed,
		size:      size,
		logger:    logger,
		resources: resources,
	}
}

func (t *TerrainScene) Configuration() entity.Configuration {
	return entity.NewConfiguration(TerrainSceneTag, entity.FrequencyFast, false)
}

func (t *TerrainScene) Update(_ float64, _ entity.InputHandler) []entity.Action {
	gen, err := terrain.FromSeed(t.seed, t.size)
	if err != nil {
		t.logger.Error("terrain generation failed",
			log.Uint32("seed", t.seed),
			log.Int("size", t.size),
			log.Error(err))
		return []entity.Action{entity.Remove{Tags: []string{TerrainSceneTag}}}
	}

	instances := gen.Instances()
	t.logger.Info("terrain generated",
		log.Uint32("seed", gen.Seed()),
		log.Int("voxels", gen.Count()),
		log.Int("instances", len(instances)))

	cube := NewCube(TerrainTag, instances, t.resources)
	return []entity.Action{
		entity.Remove{Tags: []string{TerrainSceneTag}},
		entity.Spawn{Entities: []entity.Entity{cube}},
	}
}
