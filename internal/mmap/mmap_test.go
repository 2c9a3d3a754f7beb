package mmap

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenReadClose(t *testing.T) {
	content := []byte("key0\nkey1\nthe needle\n")
	path := filepath.Join(t.TempDir(), "fixture.txt")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	m, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, len(content), m.Size())
	assert.Equal(t, content, m.Data)

	buf := make([]byte, 6)
	n, err := m.ReadAt(buf, 14) // "needle"
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "needle", string(buf))

	// Out of bounds
	n, err = m.ReadAt(buf, 100)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)

	// Partial read at the tail
	buf2 := make([]byte, 32)
	n, err = m.ReadAt(buf2, 10)
	assert.Equal(t, len(content)-10, n)
	assert.Equal(t, io.EOF, err)

	require.NoError(t, m.Close())
	assert.Nil(t, m.Data)

	// Close is safe to call twice
	require.NoError(t, m.Close())
}

func TestOpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	m, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, 0, m.Size())
	assert.Nil(t, m.Data)

	buf := make([]byte, 4)
	_, err = m.ReadAt(buf, 0)
	assert.Equal(t, io.EOF, err)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
