package blobx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpoolCreateAndRelease(t *testing.T) {
	s, err := NewSpool(t.TempDir())
	require.NoError(t, err)

	h, err := s.Create("scan.png", []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Live())
	assert.Equal(t, int64(7), h.Size())

	data, err := os.ReadFile(h.Path())
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	path := h.Path()
	require.NoError(t, h.Release())
	assert.Equal(t, 0, s.Live())
	assert.True(t, h.Released())
	assert.Empty(t, h.Path())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestReleaseIdempotent(t *testing.T) {
	s, err := NewSpool(t.TempDir())
	require.NoError(t, err)

	h, err := s.Create("a.pdf", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, h.Release())
	require.NoError(t, h.Release())
	require.NoError(t, h.Release())
	assert.Equal(t, 0, s.Live())
}

func TestRepeatedOpenCloseLeavesNoLiveHandles(t *testing.T) {
	s, err := NewSpool(t.TempDir())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		h, err := s.Create("doc.pdf", []byte("content"))
		require.NoError(t, err)
		require.NoError(t, h.Release())
	}
	assert.Equal(t, 0, s.Live())
}

func TestDistinctHandlesDoNotCollide(t *testing.T) {
	s, err := NewSpool(t.TempDir())
	require.NoError(t, err)

	h1, err := s.Create("same.txt", []byte("one"))
	require.NoError(t, err)
	h2, err := s.Create("same.txt", []byte("two"))
	require.NoError(t, err)

	assert.NotEqual(t, h1.Path(), h2.Path())
	assert.Equal(t, 2, s.Live())

	require.NoError(t, h1.Release())
	require.NoError(t, h2.Release())
}
