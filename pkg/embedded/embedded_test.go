package embedded

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileNotInitialized(t *testing.T) {
	initialized = false
	t.Cleanup(func() { initialized = false })

	assert.False(t, IsInitialized())
	_, err := ReadFile(DefaultConfigPath)
	assert.ErrorContains(t, err, "not initialized")
}

func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/paradise.yaml": {Data: []byte("grid: {side: 8}\n")},
	})
	t.Cleanup(func() { initialized = false })

	require.True(t, IsInitialized())

	data, err := ReadFile("./data/paradise.yaml")
	require.NoError(t, err)
	assert.Equal(t, "grid: {side: 8}\n", string(data))
	assert.True(t, Exists(DefaultConfigPath))

	assert.False(t, Exists("data/missing.yaml"))

	_, err = ReadFile("assets/icon.png")
	assert.ErrorContains(t, err, "unknown resource path prefix")
}
