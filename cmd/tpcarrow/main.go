package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/tpcarrow/internal/convert"
	"github.com/ajitpratap0/tpcarrow/pkg/catalog"
	"github.com/ajitpratap0/tpcarrow/pkg/config"
	"github.com/ajitpratap0/tpcarrow/pkg/engine"
	"github.com/ajitpratap0/tpcarrow/pkg/logger"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	root := &cobra.Command{
		Use:   "tpcarrow",
		Short: "tpcarrow - Benchmark dump to parquet converter",
		Long: `tpcarrow converts raw benchmark dataset dumps (pipe-delimited flat files)
into columnar, compressed, multi-part parquet output suitable for analytical
query engines.`,
	}

	// Version command
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tpcarrow v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	// Tables command to list a benchmark's tables in conversion order
	var tablesBenchmark string
	tablesCmd := &cobra.Command{
		Use:   "tables",
		Short: "List a benchmark's tables in conversion order",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := catalog.Lookup(tablesBenchmark)
			if err != nil {
				return err
			}
			for _, table := range b.TableNames() {
				fmt.Printf("  - %s.%s\n", table, b.TableExt())
			}
			return nil
		},
	}
	tablesCmd.Flags().StringVarP(&tablesBenchmark, "benchmark", "b", "", "Benchmark name: tpch or tpcds (required)")
	_ = tablesCmd.MarkFlagRequired("benchmark")
	root.AddCommand(tablesCmd)

	// Main convert command
	cfg := config.Default()
	var configFile string

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a benchmark's raw dumps to parquet",
		Long: `Convert every table of a benchmark from pipe-delimited dump files into
flat, densely numbered parquet part files, one output directory per table.

Example:
  tpcarrow convert --benchmark tpch --input /data/tpch-sf1 --output /data/tpch-sf1-parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, configFile, cfg)
		},
	}

	// Required flags
	convertCmd.Flags().StringVarP(&cfg.Benchmark, "benchmark", "b", "", "Benchmark name: tpch or tpcds (required)")
	convertCmd.Flags().StringVarP(&cfg.InputPath, "input", "i", "", "Input root directory holding {table}.{ext}/ dump dirs (required)")
	convertCmd.Flags().StringVarP(&cfg.OutputPath, "output", "o", "", "Output root directory (required)")
	_ = convertCmd.MarkFlagRequired("benchmark")
	_ = convertCmd.MarkFlagRequired("input")
	_ = convertCmd.MarkFlagRequired("output")

	// Optional overrides
	convertCmd.Flags().StringVar(&configFile, "config", "", "Path to YAML run configuration file (optional)")
	convertCmd.Flags().StringVar(&cfg.Format, "format", cfg.Format, "Output format (parquet, csv)")
	convertCmd.Flags().StringVar(&cfg.Compression, "compression", cfg.Compression, "Parquet compression codec (none, snappy, gzip, lz4, zstd)")
	convertCmd.Flags().IntVar(&cfg.BatchSize, "batch-size", cfg.BatchSize, "Number of rows decoded per record batch")
	convertCmd.Flags().Int64Var(&cfg.RowsPerFile, "rows-per-file", cfg.RowsPerFile, "Maximum rows per part file (0 = one part per input file)")
	convertCmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	root.AddCommand(convertCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runConvert executes a conversion run with the merged configuration
func runConvert(cmd *cobra.Command, configFile string, cfg config.RunConfig) error {
	if configFile != "" {
		fileCfg := config.Default()
		if err := config.Load(configFile, &fileCfg); err != nil {
			return fmt.Errorf("run configuration error: %w", err)
		}
		mergeFlags(cmd, &fileCfg, cfg)
		cfg = fileCfg
	}

	if err := logger.Init(logger.Config{Level: cfg.LogLevel, Encoding: "console"}); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	benchmark, err := catalog.Lookup(cfg.Benchmark)
	if err != nil {
		return err
	}

	format, err := engine.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	compression, err := engine.ParseCompression(cfg.Compression)
	if err != nil {
		return err
	}

	opts := engine.Options{
		Format:      format,
		Compression: compression,
		BatchSize:   cfg.BatchSize,
		Delimiter:   '|',
		RowsPerFile: cfg.RowsPerFile,
	}

	log := logger.With(
		zap.String("benchmark", benchmark.Name()),
		zap.String("input", cfg.InputPath),
		zap.String("output", cfg.OutputPath))

	log.Info("starting conversion",
		zap.String("format", cfg.Format),
		zap.String("compression", cfg.Compression),
		zap.Int("batch_size", cfg.BatchSize))

	converter := convert.NewTableConverter(engine.New(), opts)
	pipeline := convert.NewPipeline(benchmark, converter)

	if err := pipeline.Run(context.Background(), cfg.InputPath, cfg.OutputPath); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	return nil
}

// mergeFlags overlays explicitly set command-line flags onto a file-loaded
// configuration, so flags always win over the YAML file.
func mergeFlags(cmd *cobra.Command, fileCfg *config.RunConfig, flagCfg config.RunConfig) {
	fileCfg.Benchmark = flagCfg.Benchmark
	fileCfg.InputPath = flagCfg.InputPath
	fileCfg.OutputPath = flagCfg.OutputPath

	if cmd.Flags().Changed("format") {
		fileCfg.Format = flagCfg.Format
	}
	if cmd.Flags().Changed("compression") {
		fileCfg.Compression = flagCfg.Compression
	}
	if cmd.Flags().Changed("batch-size") {
		fileCfg.BatchSize = flagCfg.BatchSize
	}
	if cmd.Flags().Changed("rows-per-file") {
		fileCfg.RowsPerFile = flagCfg.RowsPerFile
	}
	if cmd.Flags().Changed("log-level") {
		fileCfg.LogLevel = flagCfg.LogLevel
	}
}
