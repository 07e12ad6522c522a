package terrain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxforge/voxforge/internal/core/voxel"
)

func TestFromSeedRejectsNonPositiveSize(t *testing.T) {
	_, err := FromSeed(1, 0)
	assert.Error(t, err)

	_, err = FromSeed(1, -8)
	assert.Error(t, err)
}

func TestFromSeedIsDeterministic(t *testing.T) {
	a, err := FromSeed(0xDEADBEEF, 32)
	require.NoError(t, err)
	b, err := FromSeed(0xDEADBEEF, 32)
	require.NoError(t, err)

	assert.Equal(t, a.Count(), b.Count())
	assert.Equal(t, a.Instances(), b.Instances(), "identical (seed, size) must reproduce identical voxel sets")
}

func TestDifferentSeedsDiverge(t *testing.T) {
	counts := make(map[int]bool)
	for seed := uint32(1); seed <= 8; seed++ {
		g, err := FromSeed(seed, 32)
		require.NoError(t, err)
		counts[g.Count()] = true
	}
	assert.Greater(t, len(counts), 1, "different seeds must not all collapse to the same terrain")
}

func TestFromRandomSeedIsReproducibleViaReportedSeed(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	a, err := FromRandomSeed(rng, 24)
	require.NoError(t, err)

	b, err := FromSeed(a.Seed(), 24)
	require.NoError(t, err)
	assert.Equal(t, a.Instances(), b.Instances())
}

func TestColumnsStayInsideCircularFootprint(t *testing.T) {
	const size = 48
	g, err := FromSeed(7, size)
	require.NoError(t, err)

	radius := size / 2
	for _, inst := range g.Instances() {
		x := int(inst.Position.X())
		y := int(inst.Position.Y())
		z := int(inst.Position.Z())

		assert.LessOrEqual(t, x*x+z*z, radius*radius, "columns outside the circle must be empty")
		assert.LessOrEqual(t, y, 0, "terrain extends downward from y=0")

		_, ok := g.VoxelAt(voxel.Position{X: x, Y: y, Z: z})
		assert.True(t, ok)
	}
}

func TestNonPositiveNoiseProducesNoColumn(t *testing.T) {
	// Sweep a few seeds; with a zero-mean noise field the surface coverage
	// across seeds stays strictly below the full footprint. A full disc on
	// every seed would mean the <=0 cutoff is broken.
	radius := 16
	footprint := 0
	for x := -radius; x <= radius; x++ {
		for z := -radius; z <= radius; z++ {
			if x*x+z*z <= radius*radius {
				footprint++
			}
		}
	}

	fullDiscs := 0
	for seed := uint32(0); seed < 8; seed++ {
		g, err := FromSeed(seed, 32)
		require.NoError(t, err)

		surface := 0
		for x := -radius; x <= radius; x++ {
			for z := -radius; z <= radius; z++ {
				if _, ok := g.VoxelAt(voxel.Position{X: x, Y: 0, Z: z}); ok {
					surface++
				}
			}
		}
		if surface == footprint {
			fullDiscs++
		}
	}
	assert.Zero(t, fullDiscs, "no seed should fill the entire footprint")
}
