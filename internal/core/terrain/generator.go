// Package terrain synthesizes a centered, circular column of voxel terrain
// from layered coherent noise. A generator is a pure construction step:
// built once from a seed, immutable thereafter.
package terrain

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"runtime"

	"github.com/cespare/xxhash/v2"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/voxforge/voxforge/internal/core/render"
	"github.com/voxforge/voxforge/internal/core/voxel"
	"github.com/voxforge/voxforge/pkg/concurrent"
	"github.com/voxforge/voxforge/pkg/sequence"
)

const (
	// baseFrequency scales lattice coordinates into the base noise field.
	baseFrequency = 1.0 / 16.0
	// warpFrequency scales coordinates into the nested warp octave.
	warpFrequency = 1.0 / 6.0
	// depthScale converts a positive noise sample into column depth.
	depthScale = 2.0
)

// Generator holds the voxel map produced for one (seed, size) pair.
// Identical inputs reproduce an identical map for a fixed noise
// implementation; determinism across noise-library versions is not
// guaranteed.
type Generator struct {
	seed  uint32
	size  int
	cells map[voxel.Position]voxel.Voxel
}

// FromSeed builds terrain deterministically from a 32-bit seed. The lattice
// footprint is a circle of radius size/2 re-centered on the origin.
func FromSeed(seed uint32, size int) (*Generator, error) {
	if size <= 0 {
		return nil, fmt.Errorf("terrain: size must be positive, got %d", size)
	}

	g := &Generator{
		seed:  seed,
		size:  size,
		cells: make(map[voxel.Position]voxel.Voxel),
	}
	if err := g.generate(); err != nil {
		return nil, err
	}
	return g, nil
}

// FromRandomSeed draws a seed uniformly from the full 32-bit range using the
// supplied source and builds terrain from it. Callers needing determinism
// must capture the seed via Seed and reuse it with FromSeed.
func FromRandomSeed(rng *rand.Rand, size int) (*Generator, error) {
	return FromSeed(rng.Uint32(), size)
}

// Seed reports the seed the terrain was built from.
func (g *Generator) Seed() uint32 { return g.seed }

// Size reports the lattice size the terrain was built with.
func (g *Generator) Size() int { return g.size }

// Count returns the number of occupied cells.
func (g *Generator) Count() int { return len(g.cells) }

// VoxelAt reports the voxel at p, if occupied.
func (g *Generator) VoxelAt(p voxel.Position) (voxel.Voxel, bool) {
	v, ok := g.cells[p]
	return v, ok
}

// Instances runs the face-exposure cull over the generated map.
func (g *Generator) Instances() []render.Instance {
	return voxel.InstancesFromCells(g.cells)
}

// column is one (x, z) sampling task; produced voxels are merged in task
// order so parallel sampling stays deterministic.
type column struct {
	index int
	x, z  int
}

func (g *Generator) generate() error {
	base := opensimplex.New(octaveSeed(g.seed, "base"))
	warp := opensimplex.New(octaveSeed(g.seed, "warp"))

	radius := g.size / 2
	columns := make([]column, 0, g.size*g.size)
	for x := -radius; x <= radius; x++ {
		for z := -radius; z <= radius; z++ {
			if x*x+z*z > radius*radius {
				continue
			}
			columns = append(columns, column{index: len(columns), x: x, z: z})
		}
	}

	// Columns are independent; each task writes only its own result slot.
	// Column counts grow with size², so cap the workers at the CPU count.
	results := make([][]voxel.Position, len(columns))
	err := concurrent.ConcurrentLimit(sequence.From(columns), runtime.GOMAXPROCS(0), func(c column) error {
		fx, fz := float64(c.x), float64(c.z)
		w := warp.Eval2(fx*warpFrequency, fz*warpFrequency)
		n := base.Eval2((fx+w)*baseFrequency, (fz+w)*baseFrequency)
		if n <= 0 {
			return nil
		}
		depth := int(math.Floor(n * depthScale))
		cells := make([]voxel.Position, 0, depth)
		for d := 0; d < depth; d++ {
			cells = append(cells, voxel.Position{X: c.x, Y: -d, Z: c.z})
		}
		results[c.index] = cells
		return nil
	})
	if err != nil {
		return err
	}

	for _, cells := range results {
		for _, p := range cells {
			g.cells[p] = voxel.Voxel{Position: p}
		}
	}
	return nil
}

// octaveSeed derives a stable per-octave noise seed from the world seed and
// an octave label, so octaves are decorrelated but reproducible.
func octaveSeed(seed uint32, label string) int64 {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], seed)
	d := xxhash.New()
	_, _ = d.WriteString(label)
	_, _ = d.Write(buf[:])
	return int64(d.Sum64())
}
