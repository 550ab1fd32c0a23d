// Package convert implements the conversion pipeline: per-table conversion
// of raw delimited dumps into flat, densely numbered part files, and the
// driver that runs it across a whole benchmark.
package convert

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"go.uber.org/zap"

	"github.com/ajitpratap0/tpcarrow/pkg/converrors"
	"github.com/ajitpratap0/tpcarrow/pkg/engine"
	"github.com/ajitpratap0/tpcarrow/pkg/logger"
)

// placeholderColumn absorbs the empty trailing field produced by
// delimiter-terminated records. It is projected out of every written part.
const placeholderColumn = "__placeholder"

// TableSpec describes one table to convert.
type TableSpec struct {
	// Name is the table name, e.g. "lineitem".
	Name string
	// Ext is the raw dump file extension without dot, e.g. "tbl".
	Ext string
	// Schema is the table's declared column schema.
	Schema *arrow.Schema
	// TerminatedRecords indicates the raw dump ends every record with a
	// field delimiter, requiring a placeholder column during decoding.
	TerminatedRecords bool
}

// FileWriter converts a single delimited input file into one or more part
// files under a directory. Implemented by engine.Engine.
type FileWriter interface {
	ConvertFile(ctx context.Context, req engine.FileRequest) error
}

// TableConverter converts one table at a time: it validates preconditions,
// creates the table's output directory, and drives the writer and the part
// flattener over the table's input files in enumeration order.
type TableConverter struct {
	writer FileWriter
	opts   engine.Options
	log    *zap.Logger
}

// NewTableConverter returns a TableConverter that emits parts via writer
// using the given engine options.
func NewTableConverter(writer FileWriter, opts engine.Options) *TableConverter {
	return &TableConverter{
		writer: writer,
		opts:   opts,
		log:    logger.With(zap.String("component", "converter")),
	}
}

// ConvertTable converts every input file of spec found under
// {inputRoot}/{name}.{ext}/ into {outputRoot}/{name}.parquet/part-N files.
// The input directory must exist; the output directory must not.
func (c *TableConverter) ConvertTable(ctx context.Context, spec TableSpec, inputRoot, outputRoot string) error {
	log := c.log.With(zap.String("table", spec.Name))

	inputDir := filepath.Join(inputRoot, spec.Name+"."+spec.Ext)
	fi, err := os.Stat(inputDir)
	if err != nil {
		return converrors.Newf(converrors.ErrorTypePrecondition, "input path does not exist: %s", inputDir)
	}
	if !fi.IsDir() {
		return converrors.Newf(converrors.ErrorTypePrecondition, "input path is not a directory: %s", inputDir)
	}

	outputDir := filepath.Join(outputRoot, spec.Name+".parquet")
	if _, err := os.Stat(outputDir); err == nil {
		return converrors.Newf(converrors.ErrorTypePrecondition, "output dir already exists: %s", outputDir)
	} else if !os.IsNotExist(err) {
		return converrors.Wrap(err, converrors.ErrorTypeIO, "failed to stat output dir")
	}

	log.Info("creating directory", zap.String("dir", outputDir))
	if err := os.Mkdir(outputDir, 0o755); err != nil {
		return converrors.Wrap(err, converrors.ErrorTypeIO, "failed to create output dir")
	}

	readSchema, projection := buildReadSchema(spec)

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return converrors.Wrap(err, converrors.ErrorTypeIO, "failed to list input dir")
	}

	part := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		stub := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		tempDir := filepath.Join(outputDir, stub+"-temp.parquet")

		log.Info("writing parts", zap.String("input", entry.Name()), zap.String("temp_dir", tempDir))

		err := c.writer.ConvertFile(ctx, engine.FileRequest{
			InputPath:  filepath.Join(inputDir, entry.Name()),
			OutputDir:  tempDir,
			ReadSchema: readSchema,
			Projection: projection,
			Options:    c.opts,
		})
		if err != nil {
			return err
		}

		part, err = flattenParts(tempDir, outputDir, c.opts.Format.Ext(), part, log)
		if err != nil {
			return err
		}

		log.Debug("removing temp dir", zap.String("dir", tempDir))
		if err := os.RemoveAll(tempDir); err != nil {
			return converrors.Wrap(err, converrors.ErrorTypeIO, "failed to remove temp dir")
		}
	}

	log.Info("table converted", zap.Int("parts", part))
	return nil
}

// buildReadSchema returns the schema the raw text is decoded against, and
// the projection of columns to persist. For delimiter-terminated dumps the
// read schema grows a trailing nullable text placeholder and the projection
// drops it, so written output matches the declared schema exactly.
func buildReadSchema(spec TableSpec) (*arrow.Schema, []int) {
	if !spec.TerminatedRecords {
		return spec.Schema, nil
	}

	n := spec.Schema.NumFields()
	fields := make([]arrow.Field, 0, n+1)
	fields = append(fields, spec.Schema.Fields()...)
	fields = append(fields, arrow.Field{
		Name:     placeholderColumn,
		Type:     arrow.BinaryTypes.String,
		Nullable: true,
	})

	projection := make([]int, n)
	for i := range projection {
		projection[i] = i
	}

	return arrow.NewSchema(fields, nil), projection
}
