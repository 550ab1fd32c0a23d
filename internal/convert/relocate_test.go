package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tpcarrow/pkg/converrors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRelocateSameDevice(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.parquet")
	dest := filepath.Join(dir, "part-0.parquet")
	writeFile(t, src, "payload")

	require.NoError(t, relocate(src, dest))

	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err), "source should be gone after relocation")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestRelocateCopyFallback(t *testing.T) {
	orig := sameDevice
	sameDevice = func(string, string) (bool, error) { return false, nil }
	defer func() { sameDevice = orig }()

	dir := t.TempDir()
	src := filepath.Join(dir, "src.parquet")
	dest := filepath.Join(dir, "part-0.parquet")
	writeFile(t, src, "payload")

	require.NoError(t, relocate(src, dest))

	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err), "source should be deleted after a confirmed copy")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestRelocateAmbiguousDeviceCheckFallsBackToCopy(t *testing.T) {
	orig := sameDevice
	sameDevice = func(string, string) (bool, error) { return false, os.ErrPermission }
	defer func() { sameDevice = orig }()

	dir := t.TempDir()
	src := filepath.Join(dir, "src.parquet")
	dest := filepath.Join(dir, "part-0.parquet")
	writeFile(t, src, "payload")

	require.NoError(t, relocate(src, dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestRelocateCopyFailureKeepsSource(t *testing.T) {
	orig := sameDevice
	sameDevice = func(string, string) (bool, error) { return false, nil }
	defer func() { sameDevice = orig }()

	dir := t.TempDir()
	src := filepath.Join(dir, "src.parquet")
	dest := filepath.Join(dir, "missing-dir", "part-0.parquet")
	writeFile(t, src, "payload")

	err := relocate(src, dest)
	require.Error(t, err)
	assert.True(t, converrors.IsType(err, converrors.ErrorTypeIO))

	data, readErr := os.ReadFile(src)
	require.NoError(t, readErr, "source must survive a failed copy")
	assert.Equal(t, "payload", string(data))

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "no destination may exist after a failed copy")
}

func TestRelocateMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := relocate(filepath.Join(dir, "absent"), filepath.Join(dir, "dest"))
	require.Error(t, err)
	assert.True(t, converrors.IsType(err, converrors.ErrorTypeIO))
}
