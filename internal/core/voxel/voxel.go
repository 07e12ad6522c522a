// Package voxel implements sparse CSG composition of parametric solids over
// a bounded integer lattice, plus the face-exposure culling pass that turns
// occupied cells into per-draw instances.
package voxel

// Position is a cell coordinate on the integer lattice.
type Position struct {
	X, Y, Z int
}

// Offset returns the position translated by (dx, dy, dz).
func (p Position) Offset(dx, dy, dz int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// faceNeighbors are the six axis-aligned neighbor offsets.
var faceNeighbors = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Voxel is an occupied lattice cell. It exists only inside a sparse map
// keyed by its position.
type Voxel struct {
	Position Position
}
