package resizetest

import (
	"context"

	"github.com/panoplyio/resize"
)

// errRunner is a Runner that returns an error upon first input or inp closing
type errRunner struct {
	error
}

// NewErrRunner returns new errRunner
func NewErrRunner(e error) resize.Runner {
	return &errRunner{e}
}

func (*errRunner) Returns() []resize.Type { return []resize.Type{} }
func (r *errRunner) Run(ctx context.Context, inp, out chan resize.Dataset) error {
	for range inp {
		return r.error
	}
	return r.error
}
