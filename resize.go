package resize

import (
	"context"

	"github.com/pkg/errors"
)

// Resize returns a Runner that makes sure its input continues the flow in
// tables bounded by the given configuration. Input data is not modified. Data
// flow may be blocked until there is enough input to produce a complete table.
// If the input is too large, it is broken into multiple tables. Leftover rows
// are sent once the input is closed.
//
// Schema changes between consecutive inputs drop the buffered rows. Such
// failures are logged and the flow continues with the new input
func Resize(cfg Config) (Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &resize{cfg}, nil
}

type resize struct {
	Config
}

func (r *resize) Returns() []Type { return []Type{Wildcard} }
func (r *resize) Run(ctx context.Context, inp, out chan Dataset) error {
	resizer, err := New(r.Config)
	if err != nil {
		return err
	}

	for data := range inp {
		tables, _, err := resizer.Transform(data)
		var concatErr *ConcatenationError
		if errors.As(err, &concatErr) {
			resizer.log.Warn("dropped buffered rows", "dropped", concatErr.BufferedRows,
				"rows", concatErr.InputRows, "err", concatErr.Err)
		} else if err != nil {
			return err
		}

		if !send(ctx, out, tables) {
			return nil
		}
	}

	// leftover buffer can be smaller than the bound
	tables, _ := resizer.Flush()
	send(ctx, out, tables)
	return nil
}

// send emits the non-empty tables to out, returns false if the context was
// canceled meanwhile
func send(ctx context.Context, out chan Dataset, tables []Dataset) bool {
	for _, data := range tables {
		if data.Len() == 0 {
			continue
		}

		select {
		case out <- data:
		case <-ctx.Done():
			return false
		}
	}
	return true
}
