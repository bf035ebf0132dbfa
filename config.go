package resize

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// MB is the number of bytes in a megabyte
	MB = 1024 * 1024

	// LocalToDisk is the ratio between the in-memory size of a table and its
	// size on disk. Size bounds are configured as on-disk megabytes, and
	// compared against the in-memory footprint of the rows
	LocalToDisk = 2
)

// Config holds the bounds of the produced tables. Exactly one of them must be
// positive, non-positive values are considered unset
type Config struct {
	// MaxRowsPerTable is the number of rows in each produced table
	MaxRowsPerTable int `yaml:"max_rows_per_table"`

	// MaxMBytesPerTable is the maximal size of each produced table, in
	// megabytes. See LocalToDisk
	MaxMBytesPerTable float64 `yaml:"max_mbytes_per_table"`

	// Logger receives debug logs of the resizing. Defaults to slog.Default()
	Logger *slog.Logger `yaml:"-"`
}

// MaxBytesPerTable returns the size bound converted to in-memory bytes
func (cfg Config) MaxBytesPerTable() float64 {
	return LocalToDisk * MB * cfg.MaxMBytesPerTable
}

// Validate makes sure exactly one of the bounds is set
func (cfg Config) Validate() error {
	rows, bytes := cfg.MaxRowsPerTable > 0, cfg.MaxBytesPerTable() > 0
	switch {
	case !rows && !bytes:
		return &ConfigurationError{cfg.MaxRowsPerTable, cfg.MaxMBytesPerTable,
			"neither max rows per table nor max table size are defined"}
	case rows && bytes:
		return &ConfigurationError{cfg.MaxRowsPerTable, cfg.MaxMBytesPerTable,
			"both max rows per table and max table size are defined, only one should be present"}
	}
	return nil
}

func (cfg Config) logger() *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.Default()
}

// ParseConfig decodes a YAML configuration and validates it
func ParseConfig(b []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to parse config")
	}
	return cfg, cfg.Validate()
}

// LoadConfig reads and validates a YAML configuration file
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config")
	}
	return ParseConfig(b)
}
