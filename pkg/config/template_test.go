package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTemplateCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	created, err := WriteTemplate(path)
	require.NoError(t, err)
	assert.True(t, created)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteTemplateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	created, err := WriteTemplate(path)
	require.NoError(t, err)
	require.True(t, created)

	// Simulate an operator edit, then run again.
	edited := []byte("API_KEY=operator-secret\n")
	require.NoError(t, os.WriteFile(path, edited, 0o600))

	created, err = WriteTemplate(path)
	require.NoError(t, err)
	assert.False(t, created, "second run must not recreate the file")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, edited, content, "second run must not overwrite the file")
}

func TestTemplateContainsExactlyDocumentedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	created, err := WriteTemplate(path)
	require.NoError(t, err)
	require.True(t, created)

	values, err := godotenv.Read(path)
	require.NoError(t, err)

	require.Len(t, values, len(Keys()))
	for _, key := range Keys() {
		assert.Contains(t, values, key)
		assert.NotEmpty(t, values[key], "key %s should have a placeholder value", key)
	}
}
