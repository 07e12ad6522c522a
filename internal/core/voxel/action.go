package voxel

// Action is the decision a parametric predicate makes for a lattice cell.
type Action uint8

const (
	// NoChange leaves the cell untouched.
	NoChange Action = iota
	// Additive inserts (or overwrites) a voxel at the cell.
	Additive
	// Subtractive removes any voxel at the cell. Subtraction after addition
	// is the documented way to carve.
	Subtractive
)

func (a Action) String() string {
	switch a {
	case Additive:
		return "Additive"
	case Subtractive:
		return "Subtractive"
	case NoChange:
		return "NoChange"
	default:
		return "Unknown"
	}
}
