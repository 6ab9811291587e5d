package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCommand_Args(t *testing.T) {
	newBackend(t)

	output, err := runCommand(t, "batch", "a.com", "b.xyz")
	require.NoError(t, err)
	assert.Contains(t, output, "SAFE")
	assert.Contains(t, output, "a.com")
	assert.Contains(t, output, "b.xyz")
}

func TestBatchCommand_File(t *testing.T) {
	newBackend(t)

	file := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(file, []byte("a.com\n\nnot a url\nb.xyz\n"), 0o644))

	output, err := runCommand(t, "batch", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, output, "Skipped 1 invalid entries: not a url")
	assert.Contains(t, output, "a.com")
	assert.Contains(t, output, "b.xyz")
}

func TestBatchCommand_JSON(t *testing.T) {
	newBackend(t)

	output, err := runCommand(t, "batch", "a.com", "--json")
	require.NoError(t, err)
	assert.Contains(t, output, `"Results"`)
	assert.Contains(t, output, "https://a.com")
}

func TestBatchCommand_NoInput(t *testing.T) {
	newBackend(t)

	_, err := runCommand(t, "batch")
	assert.Error(t, err)
}

func TestBatchCommand_AllInvalid(t *testing.T) {
	newBackend(t)

	_, err := runCommand(t, "batch", "not a url")
	assert.Error(t, err)
}
