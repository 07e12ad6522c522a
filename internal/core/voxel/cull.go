package voxel

import (
	"sort"

	"github.com/voxforge/voxforge/internal/core/render"
)

// InstancesFromCells runs the face-exposure cull over an unbounded sparse
// cell map: one instance per cell with at least one free face neighbor.
// Output order is deterministic (ascending X, then Y, then Z) so identical
// maps always produce identical instance lists.
func InstancesFromCells(cells map[Position]Voxel) []render.Instance {
	positions := make([]Position, 0, len(cells))
	for p := range cells {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool {
		a, b := positions[i], positions[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})

	instances := make([]render.Instance, 0, len(positions))
	for _, p := range positions {
		if occupiedIn(cells, p) == len(faceNeighbors) {
			continue
		}
		instances = append(instances, cellInstance(p))
	}
	return instances
}

func occupiedIn(cells map[Position]Voxel, p Position) int {
	count := 0
	for _, n := range faceNeighbors {
		if _, ok := cells[p.Offset(n[0], n[1], n[2])]; ok {
			count++
		}
	}
	return count
}
