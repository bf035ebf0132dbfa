package resize

// Data is an abstract interface representing a set of typed values. Implement
// it for each type of data that you need to support
type Data interface {
	// Type returns the data type of the contained values
	Type() Type

	// Len returns the number of values (rows)
	Len() int

	// Slice returns a new data object containing only the values from the start
	// to end indices
	Slice(start, end int) Data

	// Append another data object to this one. It can be assumed that the type
	// of the input data is similar to the current one, otherwise it's safe to
	// panic. Use Concat to append datasets of unknown compatibility
	Append(Data) Data

	// Strings returns the string representation of all of the Data values
	Strings() []string

	// ByteSize returns the in-memory footprint of the contained values
	ByteSize() int
}

// RowSizer is a Data that can report the byte size of each of its rows at
// once. The sum of the returned sizes must equal ByteSize(). Data objects that
// don't implement it are measured by slicing one row at a time
type RowSizer interface {
	Data

	// RowSizes returns the byte size of each row
	RowSizes() []int
}

// RowSizes returns the byte size of every row in data, using the columnar
// RowSizer when available
func RowSizes(data Data) []int {
	if s, ok := data.(RowSizer); ok {
		return s.RowSizes()
	}

	sizes := make([]int, data.Len())
	for i := range sizes {
		sizes[i] = data.Slice(i, i+1).ByteSize()
	}
	return sizes
}

// Cut the Dataset into several sub-segments at the provided cut-point indices.
// It's effectively the same as calling Slice() multiple times. Cut points are
// expected to be ascending; the segment after the last cut-point is included
// only if it's not empty
func Cut(data Dataset, cutpoints ...int) []Dataset {
	res := []Dataset{}
	var last int
	for _, i := range cutpoints {
		res = append(res, data.Slice(last, i).(Dataset))
		last = i
	}

	if last < data.Len() {
		res = append(res, data.Slice(last, data.Len()).(Dataset))
	}

	return res
}
