package resize

import (
	"log/slog"

	"github.com/satori/go.uuid"
)

// Metadata is auxiliary information produced alongside the resized tables.
// Resizing computes no statistics, so it's always empty
type Metadata map[string]interface{}

// Resizer receives a stream of tables of arbitrary sizes, and re-emits them as
// tables bounded by either a number of rows or a byte size. Rows that don't
// fill a complete table are buffered until the next call to Transform, and
// emitted by Flush once the input is exhausted. Order of rows is preserved.
//
// A Resizer is owned by a single caller: calls to Transform must be sequential
// and Flush must be the last call
type Resizer struct {
	cfg      Config
	maxBytes float64
	buffer   Dataset // nil when there are no buffered rows
	log      *slog.Logger
}

// New returns a Resizer for the given configuration. It fails with a
// *ConfigurationError unless exactly one of the bounds is set
func New(cfg Config) (*Resizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	uid, _ := uuid.NewV4()
	r := &Resizer{
		cfg:      cfg,
		maxBytes: cfg.MaxBytesPerTable(),
		log:      cfg.logger().With("resizer", uid.String()),
	}
	r.log.Debug("created resizer", "max_rows", cfg.MaxRowsPerTable, "max_bytes", r.maxBytes)
	return r, nil
}

// Buffered returns the number of rows currently buffered
func (r *Resizer) Buffered() int {
	if r.buffer == nil {
		return 0
	}
	return r.buffer.Len()
}

// Transform appends the given table to the buffered rows and returns all of
// the complete tables that can be cut from them, in order. The remaining rows
// are buffered for the next call.
//
// If the buffered rows can't be concatenated with the given table, the buffer
// is replaced by the table and a *ConcatenationError is returned without any
// output. The previously buffered rows are lost
func (r *Resizer) Transform(data Dataset) ([]Dataset, Metadata, error) {
	r.log.Debug("got new table", "rows", data.Len())
	if r.buffer != nil {
		merged, err := Concat(r.buffer, data)
		if err != nil {
			err = &ConcatenationError{r.buffer.Len(), data.Len(), err}
			r.buffer = data
			return nil, Metadata{}, err
		}
		r.log.Debug("concatenated buffer", "buffered", r.buffer.Len(), "rows", merged.Len())
		data = merged
		r.buffer = nil
	}

	var cutpoints []int
	if r.cfg.MaxRowsPerTable > 0 {
		cutpoints = r.rowCutpoints(data)
	} else {
		cutpoints = r.byteCutpoints(data)
	}

	res := Cut(data, cutpoints...)
	var start int
	if len(cutpoints) > 0 {
		start = cutpoints[len(cutpoints)-1]
	}

	// the segment after the last cut point is incomplete, keep it for later
	if start < data.Len() {
		r.buffer = res[len(res)-1]
		res = res[:len(res)-1]
		r.log.Debug("buffering table", "start", start, "buffered", r.buffer.Len())
	}

	r.log.Debug("returning tables", "tables", len(res))
	return res, Metadata{}, nil
}

// rowCutpoints returns the end of each complete window of MaxRowsPerTable rows
func (r *Resizer) rowCutpoints(data Dataset) []int {
	var cutpoints []int
	size := r.cfg.MaxRowsPerTable
	for end := size; end <= data.Len(); end += size {
		cutpoints = append(cutpoints, end)
	}
	return cutpoints
}

// byteCutpoints accumulates the size of the rows, and cuts right before the
// row that made the total exceed the bound. The total then restarts from zero
// without that row, which only begins the next table. Thus if the very first
// row is too large by itself, an empty table is produced.
func (r *Resizer) byteCutpoints(data Dataset) []int {
	var cutpoints []int
	var total float64
	for n, size := range data.RowSizes() {
		total += float64(size)
		if total > r.maxBytes {
			r.log.Debug("capturing slice", "bytes", total)
			cutpoints = append(cutpoints, n)
			total = 0
		}
	}
	return cutpoints
}

// Flush returns the buffered rows, if any, as a single table and clears the
// buffer. Calling it again returns no tables
func (r *Resizer) Flush() ([]Dataset, Metadata) {
	res := []Dataset{}
	if r.buffer != nil && r.buffer.Len() > 0 {
		r.log.Debug("flushing buffered table", "buffered", r.buffer.Len())
		res = append(res, r.buffer)
	} else {
		r.log.Debug("empty buffer, nothing to flush")
	}
	r.buffer = nil
	return res, Metadata{}
}
