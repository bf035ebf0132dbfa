package resize

import (
	"fmt"
)

// ConfigurationError is returned when constructing a Resizer with neither or
// both of the row and size bounds. It's fatal, the Resizer cannot be used
type ConfigurationError struct {
	MaxRowsPerTable   int
	MaxMBytesPerTable float64
	Msg               string
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("%s (max_rows_per_table=%d, max_mbytes_per_table=%g)",
		err.Msg, err.MaxRowsPerTable, err.MaxMBytesPerTable)
}

// ConcatenationError is returned by Transform when the buffered rows cannot be
// concatenated with the incoming table, usually due to a schema change. The
// buffered rows are dropped and the incoming table takes their place, so the
// Resizer remains usable and callers may log and keep feeding it
type ConcatenationError struct {
	BufferedRows int   // number of rows dropped from the buffer
	InputRows    int   // number of rows now held in the buffer
	Err          error // reason of the mismatch
}

func (err *ConcatenationError) Error() string {
	return fmt.Sprintf("can not concatenate buffered table (%d rows) with input table (%d rows), dropping buffer: %v",
		err.BufferedRows, err.InputRows, err.Err)
}

// Cause implements the causer interface of github.com/pkg/errors
func (err *ConcatenationError) Cause() error { return err.Err }

// Unwrap allows errors.Is and errors.As to reach the mismatch reason
func (err *ConcatenationError) Unwrap() error { return err.Err }
