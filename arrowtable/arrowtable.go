// Package arrowtable implements resize tables on top of Apache Arrow records.
// Every column of a record becomes a Data named after its field, so schema
// changes between records surface as concatenation errors while resizing.
//
// Columns share the underlying arrow buffers whenever possible: slicing never
// copies, and only concatenation allocates, using Allocator.
package arrowtable

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/panoplyio/resize"
	"github.com/pkg/errors"
)

// Allocator is used for concatenating columns and creating null columns.
// The arrays it allocates are owned by the returned columns and are never
// released by this package. With an allocator other than the Go allocator,
// release Column.Array() once the column is no longer used
var Allocator memory.Allocator = memory.DefaultAllocator

// Type wraps an arrow data type as a resize.Type. Its name is the full arrow
// type string (e.g. "timestamp[ms, tz=UTC]"), so that any difference in
// parameters makes two types incompatible
type Type struct {
	arrow.DataType
}

// TypeOf returns the resize.Type of the given arrow data type
func TypeOf(dt arrow.DataType) *Type {
	return &Type{dt}
}

func (t *Type) String() string { return t.Name() }
func (t *Type) Name() string   { return t.DataType.String() }

// Data returns a column of n nulls
func (t *Type) Data(n int) resize.Data {
	return &Column{array.MakeArrayOfNull(Allocator, t.DataType, n), t}
}

// Column is a resize.Data holding a single arrow array
type Column struct {
	arr arrow.Array
	typ resize.Type
}

// NewColumn returns a Column of the given array, named by the given name
func NewColumn(arr arrow.Array, name string) *Column {
	return &Column{arr, resize.As(TypeOf(arr.DataType()), name)}
}

// Array returns the underlying arrow array
func (c *Column) Array() arrow.Array { return c.arr }

// Type implements resize.Data
func (c *Column) Type() resize.Type { return c.typ }

// Len implements resize.Data
func (c *Column) Len() int { return c.arr.Len() }

// Slice implements resize.Data. The returned column shares the buffers of the
// original one
func (c *Column) Slice(start, end int) resize.Data {
	return &Column{array.NewSlice(c.arr, int64(start), int64(end)), c.typ}
}

// Append implements resize.Data
func (c *Column) Append(other resize.Data) resize.Data {
	o := other.(*Column)
	arr, err := array.Concatenate([]arrow.Array{c.arr, o.arr}, Allocator)
	if err != nil {
		panic(err)
	}
	return &Column{arr, c.typ}
}

// Strings implements resize.Data. Nulls are represented by empty strings
func (c *Column) Strings() []string {
	res := make([]string, c.arr.Len())
	for i := range res {
		if !c.arr.IsNull(i) {
			res[i] = c.arr.ValueStr(i)
		}
	}
	return res
}

// ByteSize implements resize.Data, see RowSizes
func (c *Column) ByteSize() int {
	var size int
	for _, s := range c.RowSizes() {
		size += s
	}
	return size
}

// RowSizes implements resize.RowSizer. Sizes estimate the memory taken by
// each value: the bytes of fixed-width values (at least 1), the bytes of
// binary values plus their offset, and the length of the string form of any
// other value. Validity bitmaps are disregarded
func (c *Column) RowSizes() []int {
	sizes := make([]int, c.arr.Len())
	switch arr := c.arr.(type) {
	case *array.String:
		for i := range sizes {
			sizes[i] = arrow.Int32SizeBytes + len(arr.Value(i))
		}
	case *array.LargeString:
		for i := range sizes {
			sizes[i] = arrow.Int64SizeBytes + len(arr.Value(i))
		}
	case *array.Binary:
		for i := range sizes {
			sizes[i] = arrow.Int32SizeBytes + len(arr.Value(i))
		}
	case *array.LargeBinary:
		for i := range sizes {
			sizes[i] = arrow.Int64SizeBytes + len(arr.Value(i))
		}
	default:
		if fw, ok := c.arr.DataType().(arrow.FixedWidthDataType); ok {
			width := fw.BitWidth() / 8
			if width == 0 {
				width = 1
			}
			for i := range sizes {
				sizes[i] = width
			}
			break
		}

		for i := range sizes {
			if !c.arr.IsNull(i) {
				sizes[i] = len(c.arr.ValueStr(i))
			}
		}
	}
	return sizes
}

// FromRecord returns a dataset with the columns of the given record
func FromRecord(rec arrow.Record) resize.Dataset {
	cols := make([]resize.Data, rec.NumCols())
	for i, arr := range rec.Columns() {
		cols[i] = NewColumn(arr, rec.Schema().Field(i).Name)
	}
	return resize.NewDataset(cols...)
}

// ToRecord builds an arrow record from a dataset of arrow columns. Columns
// without a name are named resize.UnnamedColumn
func ToRecord(data resize.Dataset) (arrow.Record, error) {
	fields := make([]arrow.Field, data.Width())
	cols := make([]arrow.Array, data.Width())
	for i := range cols {
		col, ok := data.At(i).(*Column)
		if !ok {
			return nil, errors.Errorf("column %d is not an arrow column: %s", i, data.At(i).Type().Name())
		}

		name := resize.GetAlias(col.typ)
		if name == "" {
			name = resize.UnnamedColumn
		}
		fields[i] = arrow.Field{Name: name, Type: col.arr.DataType(), Nullable: true}
		cols[i] = col.arr
	}
	return array.NewRecord(arrow.NewSchema(fields, nil), cols, int64(data.Len())), nil
}

// Each calls fn with every record of the reader, in order, until the reader
// is exhausted or fn fails. Records are retained, as readers may release them
// upon the next call to Next()
func Each(rdr array.RecordReader, fn func(resize.Dataset) error) error {
	for rdr.Next() {
		rec := rdr.Record()
		rec.Retain()
		if err := fn(FromRecord(rec)); err != nil {
			return err
		}
	}
	return rdr.Err()
}
