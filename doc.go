// Package resize re-chunks streams of columnar tables. Tables of widely
// varying sizes arrive one after the other and are re-emitted as tables that
// respect a single bound: either a maximal number of rows, or a maximal
// in-memory byte size. Rows that don't fill a complete table are carried over
// to the next input, and flushed at the end of the stream.
//
// Tables
//
// A table is a Dataset: a horizontal composition of typed Data columns. The
// package defines the interfaces only, see the arrowtable package for tables
// backed by Apache Arrow records.
//
// Resizing
//
// The Resizer is the stateful transform. It's driven directly:
//
//      r, err := resize.New(resize.Config{MaxRowsPerTable: 1000})
//      tables, _, err := r.Transform(data) // for each input, in order
//      tables, _ = r.Flush()               // once, after the last input
//
// Or as a Runner within a Pipeline, using Resize and ResizeBy.
//
package resize
