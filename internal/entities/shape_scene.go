package entities

import (
	"fmt"
	"math/rand"

	"github.com/voxforge/voxforge/internal/core/entity"
	"github.com/voxforge/voxforge/internal/core/observability/log"
	"github.com/voxforge/voxforge/internal/core/render"
	"github.com/voxforge/voxforge/internal/core/voxel"
)

// ShapeSceneTag identifies the CSG scene entity.
const ShapeSceneTag = "ShapeScene"

// ShapeScene composes a blobby solid out of spheres, carves away everything
// above the horizon, and replaces itself with a cube entity carrying the
// culled instances. It runs exactly once: its first update returns the
// remove-self + spawn-cube batch.
type ShapeScene struct {
	rng       *rand.Rand
	logger    log.Log
	resources render.ResourceManager

	min, max     voxel.Position
	anchorRadius float64
	sphereCount  int
	minRadius    float64
	maxRadius    float64
}

var _ entity.Updateable = (*ShapeScene)(nil)

// NewShapeScene validates the lattice bounds and builds the scene. The rand
// source is injected so sphere placement stays reproducible.
func NewShapeScene(rng *rand.Rand, logger log.Log, resources render.ResourceManager, min, max voxel.Position, sphereCount int) (*ShapeScene, error) {
	// Probe the bounds now so a bad configuration fails at startup, not
	// mid-frame.
	if _, err := voxel.NewShape(min, max); err != nil {
		return nil, fmt.Errorf("entities: shape scene: %w", err)
	}
	if sphereCount < 0 {
		return nil, fmt.Errorf("entities: shape scene: sphere count must not be negative, got %d", sphereCount)
	}
	return &ShapeScene{
		rng:          rng,
		logger:       logger,
		resources:    resources,
		min:          min,
		max:          max,
		anchorRadius: 15,
		sphereCount:  sphereCount,
		minRadius:    5,
		maxRadius:    10,
	}, nil
}

func (s *ShapeScene) Configuration() entity.Configuration {
	return entity.NewConfiguration(ShapeSceneTag, entity.FrequencyFast, false)
}

func (s *ShapeScene) Update(_ float64, _ entity.InputHandler) []entity.Action {
	shape, err := voxel.NewShape(s.min, s.max)
	if err != nil {
		// Bounds were validated at construction; reaching this means the
		// scene was built by hand. Produce nothing rather than panic the
		// frame loop.
		s.logger.Error("shape scene bounds rejected", log.Error(err))
		return nil
	}

	shape.Process(voxel.Additive, voxel.NewSphere(voxel.Position{}, s.anchorRadius))

	for i := 0; i < s.sphereCount; i++ {
		radius := s.minRadius + s.rng.Float64()*(s.maxRadius-s.minRadius)
		margin := int(radius)
		center := voxel.Position{
			X: s.randBetween(s.min.X+margin, s.max.X-margin),
			Y: s.randBetween(s.min.Y+margin, s.max.Y-margin),
			Z: s.randBetween(s.min.Z+margin, s.max.Z-margin),
		}
		shape.Process(voxel.Additive, voxel.NewSphere(center, radius))
	}

	// Carve everything above the horizon plane, leaving the lower
	// hemisphere of the composition.
	shape.Process(voxel.Subtractive, voxel.CubeAtPoint(
		voxel.Position{X: s.min.X, Y: 0, Z: s.min.Z},
		s.max.X-s.min.X,
		s.max.Y-s.min.Y,
		s.max.Z-s.min.Z,
	))

	instances := shape.Instances()
	s.logger.Info("shape scene generated",
		log.Int("voxels", shape.Count()),
		log.Int("instances", len(instances)))

	cube := NewCube(CubeTag, instances, s.resources)
	return []entity.Action{
		entity.Remove{Tags: []string{ShapeSceneTag}},
		entity.Spawn{Entities: []entity.Entity{cube}},
	}
}

// randBetween draws an int in [lo, hi]. A degenerate range collapses to lo.
func (s *ShapeScene) randBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
