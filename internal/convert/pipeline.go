package convert

import (
	"context"
	"errors"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/ajitpratap0/tpcarrow/pkg/catalog"
	"github.com/ajitpratap0/tpcarrow/pkg/converrors"
	"github.com/ajitpratap0/tpcarrow/pkg/logger"
)

// Pipeline runs the full conversion for one benchmark: every table, in the
// benchmark's declared order, strictly sequentially. The first table-level
// failure stops the run.
type Pipeline struct {
	benchmark catalog.Benchmark
	converter *TableConverter
	log       *zap.Logger
}

// NewPipeline returns a Pipeline over the given benchmark and converter.
func NewPipeline(benchmark catalog.Benchmark, converter *TableConverter) *Pipeline {
	return &Pipeline{
		benchmark: benchmark,
		converter: converter,
		log:       logger.With(zap.String("benchmark", benchmark.Name())),
	}
}

// Run converts every table of the benchmark from inputRoot into outputRoot.
// inputRoot must be an existing directory; outputRoot is created if absent.
func (p *Pipeline) Run(ctx context.Context, inputRoot, outputRoot string) error {
	fi, err := os.Stat(inputRoot)
	if err != nil {
		return converrors.Newf(converrors.ErrorTypePrecondition, "input root does not exist: %s", inputRoot)
	}
	if !fi.IsDir() {
		return converrors.Newf(converrors.ErrorTypePrecondition, "input root is not a directory: %s", inputRoot)
	}

	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return converrors.Wrap(err, converrors.ErrorTypeIO, "failed to create output root")
	}

	start := time.Now()
	for _, table := range p.benchmark.TableNames() {
		tableStart := time.Now()
		p.log.Info("converting table", zap.String("table", table))

		schema, err := p.benchmark.Schema(table)
		if err != nil {
			return err
		}

		spec := TableSpec{
			Name:              table,
			Ext:               p.benchmark.TableExt(),
			Schema:            schema,
			TerminatedRecords: p.benchmark.TerminatedRecords(),
		}

		if err := p.converter.ConvertTable(ctx, spec, inputRoot, outputRoot); err != nil {
			var cerr *converrors.Error
			if errors.As(err, &cerr) {
				cerr.WithDetail("table", table)
			}
			return err
		}

		p.log.Info("table completed",
			zap.String("table", table),
			zap.Duration("elapsed", time.Since(tableStart)))
	}

	p.log.Info("conversion completed",
		zap.Int("tables", len(p.benchmark.TableNames())),
		zap.Duration("elapsed", time.Since(start)))

	return nil
}
