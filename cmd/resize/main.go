// Command resize re-chunks CSV files into tables of bounded size.
//
// Input files are read in order, as a single stream of tables. The resized
// tables are written to the output directory as part-NNNNN.csv files (or
// part-NNNNN.csv.zst when compressed). Bounds are read from a YAML file with
// max_rows_per_table or max_mbytes_per_table, and may be overridden by flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/panoplyio/resize"
)

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "resize: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	configPath := flag.String("config", "", "YAML configuration file")
	maxRows := flag.Int("max-rows", -1, "Max number of rows per table")
	maxMBytes := flag.Float64("max-mbytes", -1, "Max in-memory (not on-disk) table size (MB)")
	outDir := flag.String("out", ".", "Output directory")
	chunk := flag.Int("chunk", 10000, "Number of CSV rows read at once")
	useZstd := flag.Bool("zstd", false, "Compress output files with zstd")
	partitionBy := flag.Int("partition-by", -1, "Index of a column to resize separately by its values")
	shards := flag.Int("shards", 16, "Number of partitions used with -partition-by")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()
	if flag.NArg() == 0 {
		return errors.New("at least one input file is required")
	}

	ll := &slog.LevelVar{}
	if err := ll.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("invalid -log-level: %w", err)
	}
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(*configPath, *maxRows, *maxMBytes)
	if err != nil {
		return err
	}
	cfg.Logger = logger

	var resizer resize.Runner
	if *partitionBy >= 0 {
		resizer, err = resize.ResizeBy(cfg, *shards, *partitionBy)
	} else {
		resizer, err = resize.Resize(cfg)
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sink := &sink{Dir: *outDir, Zstd: *useZstd, Logger: logger}
	err = run(ctx, resize.Pipeline(resizer, sink), flag.Args(), *chunk)
	if ctx.Err() != nil && (err == nil || errors.Is(err, context.Canceled)) {
		logger.Warn("interrupted", "tables", sink.Written())
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("done", "files", len(flag.Args()), "tables", sink.Written())
	return nil
}

// loadConfig reads the configuration file, if any, and applies the explicitly
// set flags on top of it
func loadConfig(path string, maxRows int, maxMBytes float64) (resize.Config, error) {
	cfg := resize.Config{MaxRowsPerTable: maxRows, MaxMBytesPerTable: maxMBytes}
	if path == "" {
		return cfg, cfg.Validate()
	}

	cfg, err := resize.LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max-rows":
			cfg.MaxRowsPerTable = maxRows
		case "max-mbytes":
			cfg.MaxMBytesPerTable = maxMBytes
		}
	})
	return cfg, cfg.Validate()
}
