package concurrent

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxforge/voxforge/pkg/sequence"
)

func TestConcurrentVisitsEveryElement(t *testing.T) {
	var sum atomic.Int64

	err := Concurrent(sequence.From([]int{1, 2, 3, 4, 5}), func(v int) error {
		sum.Add(int64(v))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(15), sum.Load())
}

func TestConcurrentReturnsActionError(t *testing.T) {
	errBad := errors.New("bad element")

	err := Concurrent(sequence.From([]int{1, 2, 3}), func(v int) error {
		if v == 2 {
			return errBad
		}
		return nil
	})

	assert.ErrorIs(t, err, errBad)
}

func TestConcurrentLimitCapsParallelism(t *testing.T) {
	var active, peak atomic.Int64

	err := ConcurrentLimit(sequence.From(make([]int, 64)), 4, func(int) error {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		active.Add(-1)
		return nil
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int64(4))
}
