// Package engine adapts the arrow columnar engine for the conversion
// pipeline. It reads schema-driven delimited text with arrow's csv reader,
// applies a write-time column projection, and emits one or more part files
// per input file in parquet or delimited-text format.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/csv"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"go.uber.org/zap"

	"github.com/ajitpratap0/tpcarrow/pkg/converrors"
	"github.com/ajitpratap0/tpcarrow/pkg/logger"
)

// FileRequest describes the conversion of a single delimited input file
// into part files under OutputDir.
type FileRequest struct {
	// InputPath is the delimited text file to read.
	InputPath string
	// OutputDir receives the emitted part files. Created if absent.
	OutputDir string
	// ReadSchema is the full schema the raw text is decoded against,
	// including any trailing placeholder column.
	ReadSchema *arrow.Schema
	// Projection lists the ReadSchema column indices to persist, in output
	// order. Nil keeps every column.
	Projection []int
	// Options controls format, codec, batching, and part rolling.
	Options Options
}

// Engine converts delimited text files to columnar part files.
type Engine struct {
	alloc memory.Allocator
	log   *zap.Logger
}

// New returns an Engine backed by the Go allocator.
func New() *Engine {
	return &Engine{
		alloc: memory.NewGoAllocator(),
		log:   logger.With(zap.String("component", "engine")),
	}
}

// ConvertFile reads req.InputPath and writes its columnar parts under
// req.OutputDir, named part-0, part-1, ... in emission order. Every input
// file yields at least one part, even when it contains no rows.
func (e *Engine) ConvertFile(ctx context.Context, req FileRequest) error {
	start := time.Now()

	f, err := os.Open(req.InputPath)
	if err != nil {
		return converrors.Wrap(err, converrors.ErrorTypeIO, "failed to open input file")
	}
	defer f.Close()

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return converrors.Wrap(err, converrors.ErrorTypeIO, "failed to create part directory")
	}

	opts := req.Options
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = '|'
	}
	if opts.Format == "" {
		opts.Format = FormatParquet
	}

	writeSchema := projectSchema(req.ReadSchema, req.Projection)

	rdr := csv.NewReader(f, req.ReadSchema,
		csv.WithComma(opts.Delimiter),
		csv.WithHeader(false),
		csv.WithChunk(opts.BatchSize),
		csv.WithNullReader(true, ""),
		csv.WithAllocator(e.alloc),
	)
	defer rdr.Release()

	var (
		w          partWriter
		partIndex  int
		rowsInPart int64
		totalRows  int64
	)

	closePart := func() error {
		if w == nil {
			return nil
		}
		err := w.close()
		w = nil
		rowsInPart = 0
		return err
	}

	for rdr.Next() {
		if err := ctx.Err(); err != nil {
			_ = closePart()
			return converrors.Wrap(err, converrors.ErrorTypeEngine, "conversion canceled")
		}

		rec := rdr.Record()
		out := projectRecord(writeSchema, rec, req.Projection)

		if w == nil {
			w, err = e.newPartWriter(req.OutputDir, partIndex, writeSchema, opts)
			if err != nil {
				out.Release()
				return err
			}
			partIndex++
		}

		err = w.write(out)
		out.Release()
		if err != nil {
			_ = closePart()
			return converrors.Wrap(err, converrors.ErrorTypeEngine, "failed to write record batch")
		}

		rowsInPart += rec.NumRows()
		totalRows += rec.NumRows()

		if opts.RowsPerFile > 0 && rowsInPart >= opts.RowsPerFile {
			if err := closePart(); err != nil {
				return converrors.Wrap(err, converrors.ErrorTypeEngine, "failed to finalize part file")
			}
		}
	}

	if err := rdr.Err(); err != nil {
		_ = closePart()
		return converrors.Wrap(err, converrors.ErrorTypeEngine, "failed to read delimited input").
			WithDetail("input", req.InputPath)
	}

	// An input file with no rows still produces one (empty) part so the
	// table's output always covers every input file.
	if w == nil && partIndex == 0 {
		w, err = e.newPartWriter(req.OutputDir, partIndex, writeSchema, opts)
		if err != nil {
			return err
		}
	}
	if err := closePart(); err != nil {
		return converrors.Wrap(err, converrors.ErrorTypeEngine, "failed to finalize part file")
	}

	e.log.Info("converted file",
		zap.String("input", req.InputPath),
		zap.Int64("rows", totalRows),
		zap.Duration("elapsed", time.Since(start)))

	return nil
}

// partWriter is one open part file.
type partWriter interface {
	write(arrow.Record) error
	close() error
}

func (e *Engine) newPartWriter(dir string, index int, schema *arrow.Schema, opts Options) (partWriter, error) {
	name := fmt.Sprintf("part-%d.%s", index, opts.Format.Ext())
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, converrors.Wrap(err, converrors.ErrorTypeIO, "failed to create part file")
	}

	switch opts.Format {
	case FormatCSV:
		return &csvPart{
			f: f,
			w: csv.NewWriter(f, schema, csv.WithComma(opts.Delimiter)),
		}, nil
	case FormatParquet:
		props := parquet.NewWriterProperties(parquet.WithCompression(opts.Compression))
		arrProps := pqarrow.NewArrowWriterProperties(pqarrow.WithAllocator(e.alloc))
		fw, err := pqarrow.NewFileWriter(schema, f, props, arrProps)
		if err != nil {
			f.Close()
			return nil, converrors.Wrap(err, converrors.ErrorTypeEngine, "failed to create parquet writer")
		}
		return &parquetPart{f: f, w: fw}, nil
	default:
		f.Close()
		return nil, converrors.Newf(converrors.ErrorTypeConfig, "invalid output format: %s", opts.Format)
	}
}

type parquetPart struct {
	f *os.File
	w *pqarrow.FileWriter
}

func (p *parquetPart) write(rec arrow.Record) error {
	return p.w.Write(rec)
}

func (p *parquetPart) close() error {
	if err := p.w.Close(); err != nil {
		p.f.Close()
		return err
	}
	// The pqarrow writer closes the sink when it implements io.Closer.
	if err := p.f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}

type csvPart struct {
	f *os.File
	w *csv.Writer
}

func (p *csvPart) write(rec arrow.Record) error {
	return p.w.Write(rec)
}

func (p *csvPart) close() error {
	if err := p.w.Flush(); err != nil {
		p.f.Close()
		return err
	}
	return p.f.Close()
}

// projectSchema returns the schema restricted to the projected columns.
func projectSchema(s *arrow.Schema, projection []int) *arrow.Schema {
	if projection == nil {
		return s
	}
	fields := make([]arrow.Field, len(projection))
	for i, idx := range projection {
		fields[i] = s.Field(idx)
	}
	return arrow.NewSchema(fields, nil)
}

// projectRecord gathers the projected columns of rec into a record with the
// given schema. The caller must Release the result.
func projectRecord(schema *arrow.Schema, rec arrow.Record, projection []int) arrow.Record {
	if projection == nil {
		rec.Retain()
		return rec
	}
	cols := make([]arrow.Array, len(projection))
	for i, idx := range projection {
		cols[i] = rec.Column(idx)
	}
	return array.NewRecord(schema, cols, rec.NumRows())
}
