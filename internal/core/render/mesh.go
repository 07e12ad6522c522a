package render

// Mesh is geometry with baked per-draw instances. The runtime produces the
// data; materials and buffer upload mechanics belong to the backend.
type Mesh interface {
	Name() string
	Vertices() []Vertex
	Indices() []uint32
	Instances() []Instance
	SetInstances(instances []Instance)
}

// StandardMesh is the plain in-memory Mesh implementation.
type StandardMesh struct {
	name      string
	vertices  []Vertex
	indices   []uint32
	instances []Instance
}

// NewStandardMesh assembles a mesh from raw geometry and instances.
func NewStandardMesh(name string, vertices []Vertex, indices []uint32, instances []Instance) *StandardMesh {
	return &StandardMesh{
		name:      name,
		vertices:  vertices,
		indices:   indices,
		instances: instances,
	}
}

func (m *StandardMesh) Name() string          { return m.name }
func (m *StandardMesh) Vertices() []Vertex    { return m.vertices }
func (m *StandardMesh) Indices() []uint32     { return m.indices }
func (m *StandardMesh) Instances() []Instance { return m.instances }

func (m *StandardMesh) SetInstances(instances []Instance) { m.instances = instances }
