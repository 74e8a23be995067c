package videos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogue(t *testing.T) {
	entries, err := Default()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.True(t, entries[0].Featured)
	assert.Equal(t, "https://youtu.be/4FupxAmYjjs?si=6Rt6pyDGmVcMN2kj", entries[0].SourceURL)
	assert.False(t, entries[1].Featured)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videos.yaml")
	data := []byte("videos:\n  - url: not a url\n    title: Broken\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "not a url", entries[0].SourceURL)
	assert.Equal(t, "Broken", entries[0].Title)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("videos: [\n"))
	assert.Error(t, err)
}
