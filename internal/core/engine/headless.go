package engine

// Headless is an Engine implementation with no graphics backend. Buffers
// retain their byte contents so tests and the demo driver can observe
// exactly what the orchestrator would have uploaded.
type Headless struct {
	device *headlessDevice

	vertex     Buffer
	index      Buffer
	indexCount uint32

	batches []MeshBuffers
}

// NewHeadless returns a ready-to-use headless engine.
func NewHeadless() *Headless {
	return &Headless{device: &headlessDevice{}}
}

func (h *Headless) Device() Device { return h.device }

func (h *Headless) HasVertexBuffer() bool { return h.vertex != nil }

func (h *Headless) SetVertexBuffer(b Buffer) { h.vertex = b }

func (h *Headless) SetIndexBuffer(b Buffer, indexCount uint32) {
	h.index = b
	h.indexCount = indexCount
}

func (h *Headless) SubmitMeshes(batches []MeshBuffers) {
	h.batches = batches
}

// Batches returns the mesh batches submitted for the most recent frame.
func (h *Headless) Batches() []MeshBuffers { return h.batches }

// BoundIndexCount returns the index count of the single bound index buffer.
func (h *Headless) BoundIndexCount() uint32 { return h.indexCount }

// CreatedBuffers reports how many buffers the device has created in total.
func (h *Headless) CreatedBuffers() int { return h.device.created }

type headlessDevice struct {
	created int
}

func (d *headlessDevice) CreateBuffer(label string, contents []byte, usage BufferUsage) (Buffer, error) {
	if len(contents) == 0 {
		return nil, ErrEmptyBuffer
	}
	d.created++
	buf := &headlessBuffer{
		label:    label,
		usage:    usage,
		contents: make([]byte, len(contents)),
	}
	copy(buf.contents, contents)
	return buf, nil
}

type headlessBuffer struct {
	label    string
	usage    BufferUsage
	contents []byte
}

func (b *headlessBuffer) Size() int          { return len(b.contents) }
func (b *headlessBuffer) Usage() BufferUsage { return b.usage }

// Contents exposes the retained bytes for assertions.
func (b *headlessBuffer) Contents() []byte { return b.contents }

// Label exposes the debug label for assertions.
func (b *headlessBuffer) Label() string { return b.label }
