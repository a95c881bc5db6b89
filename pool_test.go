package escline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_AcquireReleaseReusesBucket(t *testing.T) {
	p := NewPool()
	buf := p.Acquire(100)
	require.Len(t, buf, 100)
	for i := range buf {
		buf[i] = 0xFF
	}
	p.Release(buf)

	stats := p.Stats()
	assert.Equal(t, 1, stats[nextPowerOfTwo(100)])

	reused := p.Acquire(90)
	for _, b := range reused {
		assert.Equal(t, byte(0), b, "released buffers are zeroed before reuse")
	}
}

func TestPool_OversizedBuffersBypassPool(t *testing.T) {
	p := NewPool()
	buf := p.Acquire(maxPooledSize + 1)
	require.Len(t, buf, maxPooledSize+1)
	p.Release(buf)
	assert.Empty(t, p.Stats())
}

func TestPool_BucketDepthCapped(t *testing.T) {
	p := NewPool()
	for i := 0; i < maxBucketDepth+5; i++ {
		p.Release(make([]byte, 64))
	}
	assert.Equal(t, maxBucketDepth, p.Stats()[nextPowerOfTwo(64)])
}

func TestPool_Clear(t *testing.T) {
	p := NewPool()
	p.Release(make([]byte, 64))
	require.NotEmpty(t, p.Stats())
	p.Clear()
	assert.Empty(t, p.Stats())
}

func TestNextPowerOfTwo(t *testing.T) {
	assert.Equal(t, 1, nextPowerOfTwo(0))
	assert.Equal(t, 1, nextPowerOfTwo(1))
	assert.Equal(t, 4, nextPowerOfTwo(3))
	assert.Equal(t, 128, nextPowerOfTwo(100))
}
