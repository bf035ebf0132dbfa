package resizetest

import (
	"fmt"
	"testing"

	"github.com/panoplyio/resize"
	"github.com/stretchr/testify/require"
)

// VerifyDataInterfaceInvariant makes sure all functions does not modify input
// data, but creating a modified copy when needed. It also verifies that the
// reported row sizes are consistent with the reported byte size
func VerifyDataInterfaceInvariant(t *testing.T, data resize.Data) {
	oldLen := data.Len()
	dataString := fmt.Sprintf("%+v", data.Strings())

	data.Len()
	require.Equal(t, oldLen, data.Len())
	require.Equal(t, dataString, fmt.Sprintf("%+v", data.Strings()))

	data.Type()
	require.Equal(t, oldLen, data.Len())
	require.Equal(t, dataString, fmt.Sprintf("%+v", data.Strings()))

	sliced := data.Slice(0, oldLen/2)
	require.Equal(t, oldLen/2, sliced.Len())
	require.Equal(t, oldLen, data.Len())
	require.Equal(t, dataString, fmt.Sprintf("%+v", data.Strings()))

	appended := data.Append(data)
	require.Equal(t, 2*oldLen, appended.Len())
	require.Equal(t, oldLen, data.Len())
	require.Equal(t, dataString, fmt.Sprintf("%+v", data.Strings()))

	size := data.ByteSize()
	require.Equal(t, 2*size, appended.ByteSize())
	require.Equal(t, dataString, fmt.Sprintf("%+v", data.Strings()))

	sizes := resize.RowSizes(data)
	require.Len(t, sizes, oldLen)
	var total int
	for i, s := range sizes {
		require.Equal(t, data.Slice(i, i+1).ByteSize(), s, "size of row %d", i)
		total += s
	}
	require.Equal(t, size, total)
	require.Equal(t, dataString, fmt.Sprintf("%+v", data.Strings()))
}
