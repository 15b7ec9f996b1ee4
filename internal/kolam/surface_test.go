package kolam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfacePool_AcquireSizes(t *testing.T) {
	pool := NewSurfacePool()

	for _, size := range []int{1, 64, 300} {
		s, err := pool.Acquire(size)
		require.NoError(t, err)
		assert.Equal(t, size, s.Size())
		assert.Equal(t, size, s.Width())
		pool.Release(s)
	}
}

func TestSurfacePool_RejectsBadSize(t *testing.T) {
	pool := NewSurfacePool()

	for _, size := range []int{0, -1, MaxImageSize + 1} {
		s, err := pool.Acquire(size)
		require.Error(t, err)
		assert.Nil(t, s)
		assert.True(t, IsKind(err, KindResource))
	}
}

func TestSurfacePool_ReleaseNil(t *testing.T) {
	assert.NotPanics(t, func() { NewSurfacePool().Release(nil) })
}
