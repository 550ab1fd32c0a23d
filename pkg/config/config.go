// Package config provides run configuration for the conversion pipeline.
// A RunConfig can be loaded from a YAML file with ${ENV_VAR} substitution
// and is overridden by command-line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RunConfig holds one conversion run's settings.
type RunConfig struct {
	// Benchmark selects the table catalog ("tpch" or "tpcds").
	Benchmark string `yaml:"benchmark"`
	// InputPath is the root directory holding {table}.{ext}/ dump dirs.
	InputPath string `yaml:"input_path"`
	// OutputPath is the root directory receiving {table}.parquet/ dirs.
	OutputPath string `yaml:"output_path"`
	// Format is the output format name (parquet or csv).
	Format string `yaml:"format"`
	// Compression is the parquet codec name.
	Compression string `yaml:"compression"`
	// BatchSize is the rows decoded per record batch.
	BatchSize int `yaml:"batch_size"`
	// RowsPerFile bounds rows per part file; zero disables rolling.
	RowsPerFile int64 `yaml:"rows_per_file"`
	// LogLevel is the zap log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Default returns the defaults for a conversion run.
func Default() RunConfig {
	return RunConfig{
		Format:      "parquet",
		Compression: "snappy",
		BatchSize:   8192,
		LogLevel:    "info",
	}
}

// Load loads a configuration from a YAML file
func Load(filePath string, config interface{}) error {
	data, err := os.ReadFile(filePath) //nolint:gosec // G304: File path is controlled by caller and validated
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	if err := yaml.Unmarshal([]byte(content), config); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
func substituteEnvVars(content string) string {
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName := content[start+2 : end]
		envValue := os.Getenv(varName)
		content = content[:start] + envValue + content[end+1:]
	}
	return content
}
