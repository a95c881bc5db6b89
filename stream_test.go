package escline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkIterator_ExhaustionReturnsFalse(t *testing.T) {
	e, err := New("generic-escpos-80")
	require.NoError(t, err)
	e.Raw([]byte{1, 2, 3})

	it, err := e.EncodeChunks(2)
	require.NoError(t, err)

	var total int
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		total += len(c.Bytes)
	}
	assert.Equal(t, 4, total) // 3 raw bytes plus the model's "\n" line terminator

	_, ok := it.Next()
	assert.False(t, ok, "iterator must stay exhausted once drained")
}

func TestEncodeChunks_NonPositiveSizeFallsBackToConfiguredDefault(t *testing.T) {
	e, err := New("generic-escpos-80", WithChunkSize(7))
	require.NoError(t, err)
	e.Raw(make([]byte, 20))

	it, err := e.EncodeChunks(0)
	require.NoError(t, err)

	c, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 7, len(c.Bytes))
}

func TestEncodeChunks_InvalidConfiguredDefaultIsConfigurationError(t *testing.T) {
	e, err := New("generic-escpos-80", WithChunkSize(-1))
	require.Error(t, err)
	assert.Nil(t, e)
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

type recordingSender struct {
	sent [][]byte
}

func (s *recordingSender) Send(b []byte) error {
	cp := append([]byte(nil), b...)
	s.sent = append(s.sent, cp)
	return nil
}

func TestChunkIterator_StreamSendsAllChunksAndInvokesCallback(t *testing.T) {
	e, err := New("generic-escpos-80")
	require.NoError(t, err)
	e.Raw(make([]byte, 10))

	it, err := e.EncodeChunks(4)
	require.NoError(t, err)

	sender := &recordingSender{}
	var callbacks []ChunkResult
	err = it.Stream(context.Background(), sender, func(c ChunkResult) { callbacks = append(callbacks, c) })
	require.NoError(t, err)

	assert.Len(t, sender.sent, 3)
	assert.Len(t, callbacks, 3)
	assert.True(t, callbacks[len(callbacks)-1].IsLast)
}

func TestChunkIterator_StreamStopsOnContextCancellation(t *testing.T) {
	e, err := New("generic-escpos-80")
	require.NoError(t, err)
	e.Raw(make([]byte, 100))

	it, err := e.EncodeChunks(4)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sender := &recordingSender{}
	err = it.Stream(ctx, sender, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, sender.sent, "no chunks should be sent once the context is already canceled")
}

type erroringSender struct{ err error }

func (s erroringSender) Send([]byte) error { return s.err }

func TestChunkIterator_StreamPropagatesSenderError(t *testing.T) {
	e, err := New("generic-escpos-80")
	require.NoError(t, err)
	e.Raw(make([]byte, 10))

	it, err := e.EncodeChunks(4)
	require.NoError(t, err)

	cause := errors.New("link down")
	err = it.Stream(context.Background(), erroringSender{err: cause}, nil)
	require.Error(t, err)
	assert.Equal(t, cause, err)
}
