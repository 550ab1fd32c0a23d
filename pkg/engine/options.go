package engine

import (
	"strings"

	"github.com/apache/arrow-go/v18/parquet/compress"

	"github.com/ajitpratap0/tpcarrow/pkg/converrors"
)

// Format identifies the output file format.
type Format string

const (
	// FormatParquet writes columnar parquet part files.
	FormatParquet Format = "parquet"
	// FormatCSV writes delimited text part files.
	FormatCSV Format = "csv"
)

// DefaultBatchSize is the number of rows decoded per record batch.
const DefaultBatchSize = 8192

// Options controls how the engine converts one input file.
type Options struct {
	// Format selects the output file format. Default parquet.
	Format Format
	// Compression is the parquet codec. Ignored for csv output.
	Compression compress.Compression
	// BatchSize is the number of rows per decoded record batch.
	BatchSize int
	// Delimiter is the input field delimiter. Default '|'.
	Delimiter rune
	// RowsPerFile bounds the rows written to a single part file. Zero
	// means a single part per input file.
	RowsPerFile int64
}

// DefaultOptions returns the defaults used by the conversion pipeline:
// snappy-compressed parquet, pipe delimiter, 8192-row batches.
func DefaultOptions() Options {
	return Options{
		Format:      FormatParquet,
		Compression: compress.Codecs.Snappy,
		BatchSize:   DefaultBatchSize,
		Delimiter:   '|',
	}
}

// ParseFormat resolves an output format name. Only parquet and csv are
// supported; anything else is a config error with no fallback.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "parquet":
		return FormatParquet, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", converrors.Newf(converrors.ErrorTypeConfig, "invalid output format: %s", name)
	}
}

// ParseCompression resolves a parquet codec name. An unrecognized name is
// a config error; there is no fallback substitution.
func ParseCompression(name string) (compress.Compression, error) {
	switch strings.ToLower(name) {
	case "none", "uncompressed":
		return compress.Codecs.Uncompressed, nil
	case "snappy":
		return compress.Codecs.Snappy, nil
	case "gzip":
		return compress.Codecs.Gzip, nil
	case "lz4":
		return compress.Codecs.Lz4Raw, nil
	case "zstd":
		return compress.Codecs.Zstd, nil
	default:
		return compress.Codecs.Uncompressed, converrors.Newf(converrors.ErrorTypeConfig, "invalid compression format: %s", name)
	}
}

// Ext returns the part-file extension for the format.
func (f Format) Ext() string {
	if f == FormatCSV {
		return "csv"
	}
	return "parquet"
}
