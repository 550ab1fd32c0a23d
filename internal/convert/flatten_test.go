package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tpcarrow/pkg/logger"
)

func TestFlattenPartsNumbersSequentially(t *testing.T) {
	tempDir := t.TempDir()
	finalDir := t.TempDir()

	writeFile(t, filepath.Join(tempDir, "part-0.parquet"), "alpha")
	writeFile(t, filepath.Join(tempDir, "part-1.parquet"), "beta")

	next, err := flattenParts(tempDir, finalDir, "parquet", 3, logger.Get())
	require.NoError(t, err)
	assert.Equal(t, 5, next, "counter should advance by the number of parts")

	a, err := os.ReadFile(filepath.Join(finalDir, "part-3.parquet"))
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(a))

	b, err := os.ReadFile(filepath.Join(finalDir, "part-4.parquet"))
	require.NoError(t, err)
	assert.Equal(t, "beta", string(b))

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp area should be drained")
}

func TestFlattenPartsEmptyTempDir(t *testing.T) {
	tempDir := t.TempDir()
	finalDir := t.TempDir()

	next, err := flattenParts(tempDir, finalDir, "parquet", 7, logger.Get())
	require.NoError(t, err)
	assert.Equal(t, 7, next)

	entries, err := os.ReadDir(finalDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFlattenPartsMissingTempDir(t *testing.T) {
	_, err := flattenParts(filepath.Join(t.TempDir(), "absent"), t.TempDir(), "parquet", 0, logger.Get())
	require.Error(t, err)
}
