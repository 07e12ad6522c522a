package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBufferRetainsContents(t *testing.T) {
	h := NewHeadless()

	payload := []byte{1, 2, 3, 4}
	buf, err := h.Device().CreateBuffer("test/vertex", payload, UsageVertex)
	require.NoError(t, err)

	hb := buf.(*headlessBuffer)
	assert.Equal(t, payload, hb.Contents())
	assert.Equal(t, "test/vertex", hb.Label())
	assert.Equal(t, 4, buf.Size())
	assert.Equal(t, UsageVertex, buf.Usage())

	// Mutating the source must not reach the buffer copy.
	payload[0] = 99
	assert.Equal(t, byte(1), hb.Contents()[0])
}

func TestCreateBufferRejectsEmptyContents(t *testing.T) {
	h := NewHeadless()

	_, err := h.Device().CreateBuffer("empty", nil, UsageIndex)
	assert.ErrorIs(t, err, ErrEmptyBuffer)
	assert.Zero(t, h.CreatedBuffers())
}

func TestBufferBindingState(t *testing.T) {
	h := NewHeadless()
	require.False(t, h.HasVertexBuffer())

	vbuf, err := h.Device().CreateBuffer("v", []byte{0}, UsageVertex)
	require.NoError(t, err)
	ibuf, err := h.Device().CreateBuffer("i", []byte{0, 0, 0, 0}, UsageIndex)
	require.NoError(t, err)

	h.SetVertexBuffer(vbuf)
	h.SetIndexBuffer(ibuf, 6)

	assert.True(t, h.HasVertexBuffer())
	assert.Equal(t, uint32(6), h.BoundIndexCount())
	assert.Equal(t, 2, h.CreatedBuffers())
}

func TestBufferUsageString(t *testing.T) {
	assert.Equal(t, "VERTEX", UsageVertex.String())
	assert.Equal(t, "INDEX", UsageIndex.String())
}
