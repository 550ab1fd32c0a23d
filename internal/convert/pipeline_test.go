package convert

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tpcarrow/pkg/converrors"
	"github.com/ajitpratap0/tpcarrow/pkg/engine"
)

// testBenchmark is a two-table catalog for pipeline tests.
type testBenchmark struct {
	tables []string
}

func (b *testBenchmark) Name() string            { return "testbench" }
func (b *testBenchmark) TableNames() []string    { return b.tables }
func (b *testBenchmark) TableExt() string        { return "tbl" }
func (b *testBenchmark) TerminatedRecords() bool { return true }

func (b *testBenchmark) Schema(table string) (*arrow.Schema, error) {
	return arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	}, nil), nil
}

func TestPipelineRunConvertsAllTables(t *testing.T) {
	inputRoot := t.TempDir()
	outputRoot := t.TempDir()
	makeInputDir(t, inputRoot, "alpha", "tbl", 1)
	makeInputDir(t, inputRoot, "beta", "tbl", 2)

	bench := &testBenchmark{tables: []string{"alpha", "beta"}}
	p := NewPipeline(bench, NewTableConverter(&fakeWriter{partsPerFile: 1}, engine.DefaultOptions()))

	require.NoError(t, p.Run(context.Background(), inputRoot, outputRoot))

	_, err := os.Stat(filepath.Join(outputRoot, "alpha.parquet", "part-0.parquet"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outputRoot, "beta.parquet", "part-1.parquet"))
	assert.NoError(t, err)
}

func TestPipelineRunMissingInputRoot(t *testing.T) {
	bench := &testBenchmark{tables: []string{"alpha"}}
	p := NewPipeline(bench, NewTableConverter(&fakeWriter{partsPerFile: 1}, engine.DefaultOptions()))

	err := p.Run(context.Background(), filepath.Join(t.TempDir(), "absent"), t.TempDir())
	require.Error(t, err)
	assert.True(t, converrors.IsType(err, converrors.ErrorTypePrecondition))
}

func TestPipelineRunStopsAtFirstFailure(t *testing.T) {
	inputRoot := t.TempDir()
	outputRoot := t.TempDir()
	// alpha's dump exists, beta's does not: the run converts alpha then
	// stops at beta with a precondition error.
	makeInputDir(t, inputRoot, "alpha", "tbl", 1)

	bench := &testBenchmark{tables: []string{"alpha", "beta", "gamma"}}
	p := NewPipeline(bench, NewTableConverter(&fakeWriter{partsPerFile: 1}, engine.DefaultOptions()))

	err := p.Run(context.Background(), inputRoot, outputRoot)
	require.Error(t, err)
	assert.True(t, converrors.IsType(err, converrors.ErrorTypePrecondition))

	_, statErr := os.Stat(filepath.Join(outputRoot, "alpha.parquet"))
	assert.NoError(t, statErr, "tables before the failure stay converted")
	_, statErr = os.Stat(filepath.Join(outputRoot, "gamma.parquet"))
	assert.True(t, os.IsNotExist(statErr), "tables after the failure are not started")

	var cerr *converrors.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "beta", cerr.Details["table"])
}

func TestPipelineRunCreatesOutputRoot(t *testing.T) {
	inputRoot := t.TempDir()
	outputRoot := filepath.Join(t.TempDir(), "nested", "out")
	makeInputDir(t, inputRoot, "alpha", "tbl", 1)

	bench := &testBenchmark{tables: []string{"alpha"}}
	p := NewPipeline(bench, NewTableConverter(&fakeWriter{partsPerFile: 1}, engine.DefaultOptions()))

	require.NoError(t, p.Run(context.Background(), inputRoot, outputRoot))

	fi, err := os.Stat(outputRoot)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}
