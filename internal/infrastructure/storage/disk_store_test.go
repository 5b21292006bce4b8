package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStore(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	path, err := s.Save(context.Background(), "bill 01.pdf", strings.NewReader("contenido"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/"))
	assert.True(t, strings.HasSuffix(path, "-bill_01.pdf"))

	data, err := os.ReadFile(filepath.Join(s.Dir(), strings.TrimPrefix(path, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "contenido", string(data))
}

func TestDiskStore_NombresUnicos(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	a, err := s.Save(context.Background(), "x.png", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := s.Save(context.Background(), "x.png", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "passwd", sanitize("../../etc/passwd"))
	assert.Equal(t, "evil.exe", sanitize(`C:\temp\evil.exe`))
	assert.Equal(t, "file", sanitize(""))
}
