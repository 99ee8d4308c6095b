package service

import (
	"encoding/base64"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useScratchDir redirects file output to a per-test directory so concurrent
// test binaries never touch the shared uploads tree.
func useScratchDir(t *testing.T) {
	t.Helper()

	old := baseDir
	baseDir = t.TempDir()
	t.Cleanup(func() { baseDir = old })
}

func TestSaveBase64Image(t *testing.T) {
	useScratchDir(t)

	payload := []byte{0x89, 'P', 'N', 'G'}
	encoded := base64.StdEncoding.EncodeToString(payload)

	path, err := SaveBase64Image(encoded, "attendance")
	require.NoError(t, err)
	require.NotEmpty(t, path)

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, stored)
}

func TestSaveBase64ImageDataURL(t *testing.T) {
	useScratchDir(t)

	payload := []byte("fake image bytes")
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	path, err := SaveBase64Image(encoded, "attendance")
	require.NoError(t, err)

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, stored)
}

func TestSaveBase64ImageRejectsGarbage(t *testing.T) {
	useScratchDir(t)

	_, err := SaveBase64Image("not base64 at all!!!", "attendance")
	assert.Error(t, err)
}

func TestSaveBase64ImageEmpty(t *testing.T) {
	path, err := SaveBase64Image("", "attendance")
	require.NoError(t, err)
	assert.Empty(t, path)
}
