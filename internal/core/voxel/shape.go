package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxforge/voxforge/internal/core/render"
)

// Shape is a bounded axis-aligned region [Min, Max) on each axis with a
// sparse map of occupied cells. Every key in the map lies inside the
// bounding region: mutation only ever happens through Process, which only
// visits in-region coordinates.
type Shape struct {
	min, max Position
	cells    map[Position]Voxel
}

// NewShape builds an empty shape over [min, max). Inverted or empty bounds
// are rejected: silently iterating an inverted range would produce an empty
// but confusingly "successful" result.
func NewShape(min, max Position) (*Shape, error) {
	if min.X >= max.X || min.Y >= max.Y || min.Z >= max.Z {
		return nil, fmt.Errorf("voxel: invalid shape bounds min=%v max=%v: every max component must exceed min", min, max)
	}
	return &Shape{
		min:   min,
		max:   max,
		cells: make(map[Position]Voxel),
	}, nil
}

// Bounds returns the half-open bounding region.
func (s *Shape) Bounds() (min, max Position) { return s.min, s.max }

// Count returns the number of occupied cells.
func (s *Shape) Count() int { return len(s.cells) }

// VoxelAt reports the voxel at p, if occupied.
func (s *Shape) VoxelAt(p Position) (Voxel, bool) {
	v, ok := s.cells[p]
	return v, ok
}

// Process scans every coordinate in the bounding region once, asks the
// shapable what the effective action is there, and applies it to the sparse
// map. Returns the receiver so composition pipelines can chain calls; later
// calls can undo earlier ones.
//
// Cost is O(volume) per call.
func (s *Shape) Process(action Action, shapable Shapable) *Shape {
	for x := s.min.X; x < s.max.X; x++ {
		for y := s.min.Y; y < s.max.Y; y++ {
			for z := s.min.Z; z < s.max.Z; z++ {
				p := Position{X: x, Y: y, Z: z}
				switch shapable.Effective(action, p) {
				case Additive:
					s.cells[p] = Voxel{Position: p}
				case Subtractive:
					delete(s.cells, p)
				case NoChange:
				}
			}
		}
	}
	return s
}

// Instances runs the face-exposure cull: one render instance per occupied
// cell that has at least one of its six face neighbors free. A fully
// enclosed cell contributes no visible surface and is skipped, bounding the
// draw set to the visible shell.
//
// The pass is not incrementally maintained; re-run it after the map changes.
func (s *Shape) Instances() []render.Instance {
	instances := make([]render.Instance, 0, len(s.cells))
	for x := s.min.X; x < s.max.X; x++ {
		for y := s.min.Y; y < s.max.Y; y++ {
			for z := s.min.Z; z < s.max.Z; z++ {
				p := Position{X: x, Y: y, Z: z}
				if _, ok := s.cells[p]; !ok {
					continue
				}
				if s.occupiedNeighbors(p) == len(faceNeighbors) {
					continue
				}
				instances = append(instances, cellInstance(p))
			}
		}
	}
	return instances
}

func (s *Shape) occupiedNeighbors(p Position) int {
	return occupiedIn(s.cells, p)
}

// cellInstance places an instance at the cell position with an identity
// rotation. Voxel cells carry no orientation of their own.
func cellInstance(p Position) render.Instance {
	return render.NewInstance(
		mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)},
		mgl32.QuatIdent(),
	)
}
