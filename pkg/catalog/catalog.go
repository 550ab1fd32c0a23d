// Package catalog defines the benchmark table catalogs consumed by the
// conversion pipeline. A Benchmark exposes its tables in a fixed order,
// the read schema for each table, and the file extension its raw dumps
// use. Schemas are arrow schemas so they can be handed directly to the
// columnar engine.
package catalog

import (
	"strings"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/ajitpratap0/tpcarrow/pkg/converrors"
)

// Benchmark is a table catalog for one benchmark suite.
type Benchmark interface {
	// Name returns the benchmark selector, e.g. "tpch".
	Name() string

	// TableNames returns all table names in conversion order. The order is
	// fixed per benchmark and determines the order tables are processed.
	TableNames() []string

	// Schema returns the declared read schema for the given table.
	Schema(table string) (*arrow.Schema, error)

	// TableExt returns the file extension (without dot) used by the
	// benchmark's raw dump files, e.g. "tbl".
	TableExt() string

	// TerminatedRecords reports whether the raw dump terminates every
	// record with a trailing field delimiter. When true, readers must
	// append a placeholder column to absorb the resulting empty field.
	TerminatedRecords() bool
}

// Lookup resolves a benchmark by its selector string.
func Lookup(name string) (Benchmark, error) {
	switch strings.ToLower(name) {
	case "tpch", "tpc-h":
		return NewTPCH(), nil
	case "tpcds", "tpc-ds":
		return NewTPCDS(), nil
	default:
		return nil, converrors.Newf(converrors.ErrorTypeConfig, "unknown benchmark %q (expected tpch or tpcds)", name)
	}
}

// schemaFor is the shared table lookup used by the concrete benchmarks.
func schemaFor(benchmark string, schemas map[string]*arrow.Schema, table string) (*arrow.Schema, error) {
	s, ok := schemas[table]
	if !ok {
		return nil, converrors.Newf(converrors.ErrorTypeConfig, "benchmark %s has no table %q", benchmark, table)
	}
	return s, nil
}

// Shared arrow type aliases used by the schema declarations.
var (
	typeUtf8   = arrow.BinaryTypes.String
	typeInt32  = arrow.PrimitiveTypes.Int32
	typeInt64  = arrow.PrimitiveTypes.Int64
	typeFloat  = arrow.PrimitiveTypes.Float64
	typeDate32 = arrow.FixedWidthTypes.Date32
)

func col(name string, t arrow.DataType) arrow.Field {
	return arrow.Field{Name: name, Type: t, Nullable: true}
}

func schema(cols ...arrow.Field) *arrow.Schema {
	return arrow.NewSchema(cols, nil)
}
