package voxel

// Shapable is a pure predicate over the lattice: given the requested action
// and a coordinate, it returns the effective action there. Coordinates
// outside the predicate's footprint downgrade to NoChange. Shapables carry
// no mutable state.
type Shapable interface {
	Effective(action Action, p Position) Action
}

// Sphere selects every cell whose squared distance from the center is at
// most the radius parameter. The radius is compared against the squared
// distance directly: radius 1.5 selects the origin and its six face
// neighbors, not the diagonal cells at squared distance 2.
type Sphere struct {
	center Position
	radius float64
}

// NewSphere builds a sphere predicate around center.
func NewSphere(center Position, radius float64) Sphere {
	return Sphere{center: center, radius: radius}
}

func (s Sphere) Effective(action Action, p Position) Action {
	dx := float64(p.X - s.center.X)
	dy := float64(p.Y - s.center.Y)
	dz := float64(p.Z - s.center.Z)
	if dx*dx+dy*dy+dz*dz <= s.radius {
		return action
	}
	return NoChange
}

// UniformCube selects a symmetric box of half-width diameter-1 around the
// center on each axis.
type UniformCube struct {
	center   Position
	diameter int
}

// NewUniformCube builds a uniform cube predicate around center.
func NewUniformCube(center Position, diameter int) UniformCube {
	return UniformCube{center: center, diameter: diameter}
}

func (c UniformCube) Effective(action Action, p Position) Action {
	half := c.diameter - 1
	if p.X >= c.center.X-half && p.X <= c.center.X+half &&
		p.Y >= c.center.Y-half && p.Y <= c.center.Y+half &&
		p.Z >= c.center.Z-half && p.Z <= c.center.Z+half {
		return action
	}
	return NoChange
}

// VariableCube selects an axis-aligned box of the given dimensions. The
// stored position is always the minimum corner.
type VariableCube struct {
	origin               Position
	width, height, depth int
}

// CubeAtPoint anchors the box at its minimum corner.
func CubeAtPoint(origin Position, width, height, depth int) VariableCube {
	return VariableCube{origin: origin, width: width, height: height, depth: depth}
}

// CubeAtCenter anchors the box at its centroid. The centroid is computed
// with integer division, so odd dimensions bias toward the minimum corner.
func CubeAtCenter(center Position, width, height, depth int) VariableCube {
	return VariableCube{
		origin: Position{
			X: center.X - width/2,
			Y: center.Y - height/2,
			Z: center.Z - depth/2,
		},
		width:  width,
		height: height,
		depth:  depth,
	}
}

func (c VariableCube) Effective(action Action, p Position) Action {
	if p.X >= c.origin.X && p.X <= c.origin.X+c.width-1 &&
		p.Y >= c.origin.Y && p.Y <= c.origin.Y+c.height-1 &&
		p.Z >= c.origin.Z && p.Z <= c.origin.Z+c.depth-1 {
		return action
	}
	return NoChange
}
