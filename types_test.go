package resize_test

import (
	"context"
	"fmt"
	"strconv"

	"github.com/panoplyio/resize"
)

var str = &strType{}

type strType struct{}

func (*strType) Name() string           { return "string" }
func (s *strType) String() string       { return s.Name() }
func (*strType) Data(n int) resize.Data { return make(strs, n) }

// strs has no RowSizes, so it's measured one row at a time
type strs []string

func (strs) Type() resize.Type              { return str }
func (vs strs) Len() int                    { return len(vs) }
func (vs strs) Slice(s, e int) resize.Data  { return vs[s:e] }
func (vs strs) Strings() []string           { return vs }
func (vs strs) Append(o resize.Data) resize.Data {
	res := make(strs, 0, len(vs)+o.Len())
	return append(append(res, vs...), o.(strs)...)
}
func (vs strs) ByteSize() int {
	var size int
	for _, s := range vs {
		size += len(s)
	}
	return size
}

var integer = &integerType{}

type integerType struct{}

func (*integerType) Name() string           { return "integer" }
func (s *integerType) String() string       { return s.Name() }
func (*integerType) Data(n int) resize.Data { return make(integers, n) }

// integers occupy 8 bytes per row
type integers []int

func (integers) Type() resize.Type             { return integer }
func (vs integers) Len() int                   { return len(vs) }
func (vs integers) Slice(s, e int) resize.Data { return vs[s:e] }
func (vs integers) ByteSize() int              { return 8 * len(vs) }
func (vs integers) Append(o resize.Data) resize.Data {
	res := make(integers, 0, len(vs)+o.Len())
	return append(append(res, vs...), o.(integers)...)
}
func (vs integers) Strings() []string {
	res := make([]string, len(vs))
	for i, v := range vs {
		res[i] = strconv.Itoa(v)
	}
	return res
}
func (vs integers) RowSizes() []int {
	sizes := make([]int, len(vs))
	for i := range sizes {
		sizes[i] = 8
	}
	return sizes
}

// seq returns the integers from-to, inclusive
func seq(from, to int) integers {
	res := integers{}
	for i := from; i <= to; i++ {
		res = append(res, i)
	}
	return res
}

// count is a Runner that emits the number of rows of each of its inputs
type count struct{}

func (*count) Returns() []resize.Type { return []resize.Type{str} }
func (*count) Run(_ context.Context, inp, out chan resize.Dataset) error {
	for data := range inp {
		out <- resize.NewDataset(strs{fmt.Sprintf("%d", data.Len())})
	}
	return nil
}
