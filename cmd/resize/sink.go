package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/apache/arrow-go/v18/arrow/csv"
	"github.com/klauspost/compress/zstd"
	"github.com/panoplyio/resize"
	"github.com/panoplyio/resize/arrowtable"
	"github.com/pkg/errors"
)

// sink is a Runner that writes each of its input tables to a separate CSV
// file. It produces no output
type sink struct {
	Dir    string
	Zstd   bool
	Logger *slog.Logger

	written atomic.Int64
}

// Written returns the number of files written so far
func (s *sink) Written() int { return int(s.written.Load()) }

func (s *sink) Returns() []resize.Type { return []resize.Type{} }
func (s *sink) Run(ctx context.Context, inp, out chan resize.Dataset) error {
	for data := range inp {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := s.path(s.Written())
		if err := s.write(path, data); err != nil {
			return err
		}
		s.written.Add(1)
		s.Logger.Debug("wrote table", "path", path, "rows", data.Len(), "bytes", data.ByteSize())
	}
	return nil
}

func (s *sink) path(n int) string {
	name := fmt.Sprintf("part-%05d.csv", n)
	if s.Zstd {
		name += ".zst"
	}
	return filepath.Join(s.Dir, name)
}

func (s *sink) write(path string, data resize.Dataset) (err error) {
	rec, err := arrowtable.ToRecord(data)
	if err != nil {
		return err
	}
	defer rec.Release()

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	var w io.Writer = f
	if s.Zstd {
		enc, encErr := zstd.NewWriter(f)
		if encErr != nil {
			return encErr
		}
		defer func() {
			if closeErr := enc.Close(); err == nil {
				err = closeErr
			}
		}()
		w = enc
	}

	cw := csv.NewWriter(w, rec.Schema(), csv.WithHeader(true))
	if err := cw.Write(rec); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return errors.Wrapf(cw.Flush(), "failed to write %s", path)
}
