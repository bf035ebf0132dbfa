package main

import (
	"context"
	"os"
	"sync"

	"github.com/apache/arrow-go/v18/arrow/csv"
	"github.com/panoplyio/resize"
	"github.com/panoplyio/resize/arrowtable"
	"github.com/pkg/errors"
)

// run reads the given CSV files in order, and streams their records through
// the runner. The output of the runner is discarded
func run(ctx context.Context, r resize.Runner, paths []string, chunk int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inp := make(chan resize.Dataset)
	out := make(chan resize.Dataset)

	var wg sync.WaitGroup
	var readErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(inp)
		for _, path := range paths {
			if err := read(ctx, path, chunk, inp); err != nil {
				readErr = err
				cancel()
				return
			}
		}
	}()

	var err error
	go resize.Run(ctx, r, inp, out, cancel, &err)
	for range out {
	}
	wg.Wait()

	// a failing runner cancels the reading, prefer its error. A runner that
	// only observed the cancellation of a failed read reports the read error
	if readErr != nil && (err == nil || errors.Is(err, context.Canceled)) {
		return readErr
	}
	return err
}

// read sends the records of a single CSV file to inp. The schema is inferred
// from the header and the first chunk of rows
func read(ctx context.Context, path string, chunk int, inp chan resize.Dataset) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	rdr := csv.NewInferringReader(f, csv.WithHeader(true), csv.WithChunk(chunk))
	defer rdr.Release()

	err = arrowtable.Each(rdr, func(data resize.Dataset) error {
		select {
		case inp <- data:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	return errors.Wrapf(err, "failed to read %s", path)
}
