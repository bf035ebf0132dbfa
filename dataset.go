package resize

import (
	"github.com/pkg/errors"
)

// Dataset is a composite Data interface, containing several internal Data
// objects (columns). It's the table moved between runners and resized by the
// Resizer: a Data in itself, that allows traversing the contained columns
type Dataset interface {
	Data // It's a Data - you can use it anywhere you'd use a Data object

	// Width returns the number of Data instances (columns) in the set
	Width() int

	// At returns the Data instance at index i
	At(i int) Data

	// RowSizes returns the byte size of each row, summed across all columns
	RowSizes() []int
}

type dataset []Data

// NewDataset creates a new Data object that's a horizontal composition of the
// provided Data objects
func NewDataset(data ...Data) Dataset {
	return dataset(data)
}

// Width of the dataset (number of columns)
func (set dataset) Width() int {
	return len(set)
}

// At returns the Data at index i
func (set dataset) At(i int) Data {
	return set[i]
}

// Len of the dataset (number of rows). Assumed that all columns are of equal
// length, and thus only checks the first
func (set dataset) Len() int {
	if len(set) == 0 {
		return 0
	}

	return set[0].Len()
}

// Append a data (assumed by the Data interface to be a Dataset). Panics on
// mismatching number of columns, see Concat for a checked version
func (set dataset) Append(data Data) Data {
	other := data.(Dataset)
	if len(set) == 0 {
		return other
	} else if other.Width() == 0 {
		return set
	}

	if len(set) != other.Width() {
		panic("Unable to append mismatching number of columns")
	}

	res := make(dataset, set.Width())
	for i := range set {
		res[i] = set[i].Append(other.At(i))
	}
	return res
}

// see Data.Slice. Returns a dataset
func (set dataset) Slice(start, end int) Data {
	res := make(dataset, len(set))
	for i := range set {
		res[i] = set[i].Slice(start, end)
	}
	return res
}

// see Data.ByteSize. Sum of all columns
func (set dataset) ByteSize() int {
	var size int
	for _, col := range set {
		size += col.ByteSize()
	}
	return size
}

// see Dataset.RowSizes
func (set dataset) RowSizes() []int {
	sizes := make([]int, set.Len())
	for _, col := range set {
		for i, s := range RowSizes(col) {
			sizes[i] += s
		}
	}
	return sizes
}

// see Data.Strings. Each row is formatted as (col1,col2,...)
func (set dataset) Strings() []string {
	res := make([]string, set.Len())
	for _, col := range set {
		for i, s := range col.Strings() {
			res[i] += s + ","
		}
	}
	for i, s := range res {
		if len(s) > 0 {
			s = s[:len(s)-1]
		}
		res[i] = "(" + s + ")"
	}
	return res
}

// see Data.Type
func (set dataset) Type() Type {
	return datasetTypeSingleton
}

var datasetTypeSingleton = &datasetType{}

type datasetType struct{}

func (*datasetType) Name() string  { return "Dataset" }
func (*datasetType) Data(int) Data { return dataset{} }

// Schema returns the column types of the given dataset
func Schema(data Dataset) []Type {
	types := make([]Type, data.Width())
	for i := range types {
		types[i] = data.At(i).Type()
	}
	return types
}

// Compatible returns an error describing the first difference between the
// schemas of a and b, or nil if rows of b can be appended to a
func Compatible(a, b Dataset) error {
	if a.Width() != b.Width() {
		return errors.Errorf("mismatch number of columns: %d and %d", a.Width(), b.Width())
	}
	if AreEqualTypes(Schema(a), Schema(b)) {
		return nil
	}

	for i := 0; i < a.Width(); i++ {
		t1, t2 := a.At(i).Type(), b.At(i).Type()
		if t1.Name() != t2.Name() {
			return errors.Errorf("type mismatch in column %d: %s and %s", i, t1.Name(), t2.Name())
		}
		if GetAlias(t1) != GetAlias(t2) {
			return errors.Errorf("name mismatch in column %d: %q and %q", i, GetAlias(t1), GetAlias(t2))
		}
	}
	return nil
}

// Concat appends the rows of b after the rows of a. Both datasets must have
// compatible schemas, unless one of them has no columns at all
func Concat(a, b Dataset) (Dataset, error) {
	if a.Width() == 0 {
		return b, nil
	} else if b.Width() == 0 {
		return a, nil
	}

	if err := Compatible(a, b); err != nil {
		return nil, err
	}
	return a.Append(b).(Dataset), nil
}
