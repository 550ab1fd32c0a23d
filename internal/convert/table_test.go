package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tpcarrow/pkg/converrors"
	"github.com/ajitpratap0/tpcarrow/pkg/engine"
)

// fakeWriter emits a fixed number of dummy parts per input file, standing in
// for the columnar engine.
type fakeWriter struct {
	partsPerFile int
	err          error
	requests     []engine.FileRequest
}

func (f *fakeWriter) ConvertFile(_ context.Context, req engine.FileRequest) error {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return f.err
	}
	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return err
	}
	for i := 0; i < f.partsPerFile; i++ {
		name := filepath.Join(req.OutputDir, fmt.Sprintf("part-%d.parquet", i))
		if err := os.WriteFile(name, []byte(fmt.Sprintf("%s:%d", req.InputPath, i)), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func testSpec(name, ext string) TableSpec {
	return TableSpec{
		Name: name,
		Ext:  ext,
		Schema: arrow.NewSchema([]arrow.Field{
			{Name: "id", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
			{Name: "value", Type: arrow.BinaryTypes.String, Nullable: true},
		}, nil),
		TerminatedRecords: true,
	}
}

func makeInputDir(t *testing.T, root, table, ext string, files int) {
	t.Helper()
	dir := filepath.Join(root, table+"."+ext)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for i := 0; i < files; i++ {
		name := filepath.Join(dir, fmt.Sprintf("%s.%s.%d", table, ext, i+1))
		require.NoError(t, os.WriteFile(name, []byte("1|x|\n"), 0o644))
	}
}

func TestConvertTableNumbersPartsAcrossFiles(t *testing.T) {
	inputRoot := t.TempDir()
	outputRoot := t.TempDir()
	makeInputDir(t, inputRoot, "lineitem", "tbl", 4)

	writer := &fakeWriter{partsPerFile: 2}
	conv := NewTableConverter(writer, engine.DefaultOptions())

	err := conv.ConvertTable(context.Background(), testSpec("lineitem", "tbl"), inputRoot, outputRoot)
	require.NoError(t, err)

	outputDir := filepath.Join(outputRoot, "lineitem.parquet")
	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		assert.False(t, e.IsDir(), "no temp directories may remain: %s", e.Name())
		names = append(names, e.Name())
	}
	sort.Strings(names)

	want := []string{
		"part-0.parquet", "part-1.parquet", "part-2.parquet", "part-3.parquet",
		"part-4.parquet", "part-5.parquet", "part-6.parquet", "part-7.parquet",
	}
	assert.Equal(t, want, names)
}

func TestConvertTableSingleFileSinglePart(t *testing.T) {
	inputRoot := t.TempDir()
	outputRoot := t.TempDir()
	makeInputDir(t, inputRoot, "nation", "tbl", 1)

	writer := &fakeWriter{partsPerFile: 1}
	conv := NewTableConverter(writer, engine.DefaultOptions())

	err := conv.ConvertTable(context.Background(), testSpec("nation", "tbl"), inputRoot, outputRoot)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outputRoot, "nation.parquet", "part-0.parquet"))
	assert.NoError(t, err)

	// The writer must receive the read schema with the trailing placeholder
	// and a projection that drops it.
	require.Len(t, writer.requests, 1)
	req := writer.requests[0]
	assert.Equal(t, 3, req.ReadSchema.NumFields())
	assert.Equal(t, placeholderColumn, req.ReadSchema.Field(2).Name)
	assert.Equal(t, []int{0, 1}, req.Projection)
}

func TestConvertTableMissingInputDir(t *testing.T) {
	err := NewTableConverter(&fakeWriter{partsPerFile: 1}, engine.DefaultOptions()).
		ConvertTable(context.Background(), testSpec("nation", "tbl"), t.TempDir(), t.TempDir())
	require.Error(t, err)
	assert.True(t, converrors.IsType(err, converrors.ErrorTypePrecondition))
}

func TestConvertTableExistingOutputDirUntouched(t *testing.T) {
	inputRoot := t.TempDir()
	outputRoot := t.TempDir()
	makeInputDir(t, inputRoot, "nation", "tbl", 1)

	existing := filepath.Join(outputRoot, "nation.parquet")
	require.NoError(t, os.Mkdir(existing, 0o755))
	marker := filepath.Join(existing, "part-0.parquet")
	require.NoError(t, os.WriteFile(marker, []byte("old"), 0o644))

	writer := &fakeWriter{partsPerFile: 1}
	err := NewTableConverter(writer, engine.DefaultOptions()).
		ConvertTable(context.Background(), testSpec("nation", "tbl"), inputRoot, outputRoot)
	require.Error(t, err)
	assert.True(t, converrors.IsType(err, converrors.ErrorTypePrecondition))
	assert.Empty(t, writer.requests, "no file may be written before the precondition check")

	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data), "pre-existing output must not be modified")

	entries, err := os.ReadDir(existing)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestConvertTableWriterErrorPropagates(t *testing.T) {
	inputRoot := t.TempDir()
	outputRoot := t.TempDir()
	makeInputDir(t, inputRoot, "nation", "tbl", 1)

	writer := &fakeWriter{err: converrors.New(converrors.ErrorTypeEngine, "decode failed")}
	err := NewTableConverter(writer, engine.DefaultOptions()).
		ConvertTable(context.Background(), testSpec("nation", "tbl"), inputRoot, outputRoot)
	require.Error(t, err)
	assert.True(t, converrors.IsType(err, converrors.ErrorTypeEngine))
}

func TestBuildReadSchema(t *testing.T) {
	spec := testSpec("nation", "tbl")

	read, projection := buildReadSchema(spec)
	assert.Equal(t, 3, read.NumFields())
	assert.Equal(t, placeholderColumn, read.Field(2).Name)
	assert.True(t, read.Field(2).Nullable)
	assert.Equal(t, []int{0, 1}, projection)

	spec.TerminatedRecords = false
	read, projection = buildReadSchema(spec)
	assert.Same(t, spec.Schema, read)
	assert.Nil(t, projection)
}
