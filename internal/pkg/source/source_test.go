package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRead(t *testing.T) {
	path := writeFile(t, "ahishers")

	in, err := Read(path, 0)
	require.NoError(t, err)
	assert.Equal(t, path, in.Name)
	assert.Equal(t, "ahishers", string(in.Data))
}

func TestRead_ExactLimit(t *testing.T) {
	path := writeFile(t, "12345678")

	in, err := Read(path, 8)
	require.NoError(t, err)
	assert.Len(t, in.Data, 8)
}

func TestRead_TooLarge(t *testing.T) {
	path := writeFile(t, "123456789")

	_, err := Read(path, 8)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestRead_NotFound(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing"), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "file not found")
}

func TestRead_Directory(t *testing.T) {
	_, err := Read(t.TempDir(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestReadFrom(t *testing.T) {
	in, err := ReadFrom("buf", strings.NewReader("abc"), 3)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(in.Data))

	_, err = ReadFrom("buf", strings.NewReader("abcd"), 3)
	assert.ErrorIs(t, err, ErrTooLarge)

	in, err = ReadFrom("buf", strings.NewReader(""), 3)
	require.NoError(t, err)
	assert.Empty(t, in.Data)
}
