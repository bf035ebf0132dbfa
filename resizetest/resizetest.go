// Package resizetest contains only tests utilities (without actual tests).
package resizetest

import (
	"context"

	"github.com/panoplyio/resize"
)

// Run is helper function for tests, that runs given runner with given
// list of input datasets. Output is consumed up to completion, then returned
// table by table
func Run(r resize.Runner, datasets ...resize.Dataset) ([]resize.Dataset, error) {
	return RunWithContext(context.Background(), r, datasets...)
}

// RunWithContext is helper function for tests, doing the same as Run
// with given context
func RunWithContext(ctx context.Context, r resize.Runner, datasets ...resize.Dataset) (res []resize.Dataset, err error) {
	inp := make(chan resize.Dataset)
	out := make(chan resize.Dataset)
	go resize.Run(ctx, r, inp, out, nil, &err)

	go func() {
		defer close(inp)
		for _, data := range datasets {
			select {
			case inp <- data:
			case <-ctx.Done():
				return
			}
		}
	}()

	res = []resize.Dataset{}
	for data := range out {
		res = append(res, data)
	}
	return res, err
}

// Transform feeds all of the datasets to the resizer, in order, followed by a
// flush. The output of every call is returned as is, flush output last.
// Transform stops at the first error
func Transform(r *resize.Resizer, datasets ...resize.Dataset) ([][]resize.Dataset, error) {
	var res [][]resize.Dataset
	for _, data := range datasets {
		tables, _, err := r.Transform(data)
		if err != nil {
			return res, err
		}
		res = append(res, tables)
	}

	tables, _ := r.Flush()
	return append(res, tables), nil
}

// Lens returns the number of rows of each dataset
func Lens(datasets []resize.Dataset) []int {
	lens := make([]int, len(datasets))
	for i, data := range datasets {
		lens[i] = data.Len()
	}
	return lens
}

// Rows returns the string representation of all rows of the given datasets,
// in order
func Rows(datasets ...resize.Dataset) []string {
	rows := []string{}
	for _, data := range datasets {
		rows = append(rows, data.Strings()...)
	}
	return rows
}
