package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingQueueFIFO(t *testing.T) {
	q := NewRingQueue(3)
	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))

	v, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = q.Dequeue()
	assert.False(t, ok)
}

func TestRingQueueFull(t *testing.T) {
	q := NewRingQueue(2)
	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	assert.Error(t, q.Enqueue("c"))
	assert.Equal(t, 2, q.Len())
}

func TestRingQueueWraps(t *testing.T) {
	q := NewRingQueue(2)
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue("x"))
		v, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, "x", v)
	}
	assert.True(t, q.IsEmpty())
}
