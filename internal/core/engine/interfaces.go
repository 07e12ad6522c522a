package engine

// The engine facade is the boundary between the world runtime and the
// graphics backend. The orchestrator only ever materializes GPU buffers
// through these interfaces; it never touches a graphics API directly.

// BufferUsage tells the device what a buffer will be bound as.
type BufferUsage uint8

const (
	UsageVertex BufferUsage = iota
	UsageIndex
)

func (u BufferUsage) String() string {
	switch u {
	case UsageVertex:
		return "VERTEX"
	case UsageIndex:
		return "INDEX"
	default:
		return "UNKNOWN"
	}
}

// Buffer is an opaque handle to a GPU buffer owned by the backend.
// The orchestrator never reads a buffer back; it only hands handles around.
type Buffer interface {
	// Size returns the byte length the buffer was created with.
	Size() int
	// Usage returns the usage flag the buffer was created with.
	Usage() BufferUsage
}

// Device creates GPU buffers from raw byte contents.
//
// Implementations are not required to be safe for concurrent use; the world
// runtime is single-threaded and calls the device from the frame goroutine
// only.
type Device interface {
	// CreateBuffer uploads contents as a new buffer with the given usage.
	// The label is a debug annotation and may be ignored by the backend.
	CreateBuffer(label string, contents []byte, usage BufferUsage) (Buffer, error)
}

// MeshBuffers is one drawable unit: a vertex buffer paired with an index
// buffer and its index count.
type MeshBuffers struct {
	Vertex     Buffer
	Index      Buffer
	IndexCount uint32
}

// Engine is the minimal surface the world orchestrator drives.
//
// SetVertexBuffer/SetIndexBuffer bind a single mesh and exist for the
// one-mesh path; SubmitMeshes is the multi-draw path and replaces the old
// behavior where only the last constructed buffer pair survived a frame.
type Engine interface {
	// Device returns the handle used to create buffers.
	Device() Device

	// HasVertexBuffer reports whether a vertex buffer is currently bound.
	HasVertexBuffer() bool
	// SetVertexBuffer binds a single vertex buffer.
	SetVertexBuffer(b Buffer)
	// SetIndexBuffer binds a single index buffer with its index count.
	SetIndexBuffer(b Buffer, indexCount uint32)

	// SubmitMeshes hands the full set of per-renderable buffer pairs for this
	// frame to the backend. An empty slice is valid and clears nothing.
	SubmitMeshes(batches []MeshBuffers)
}
