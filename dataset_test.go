package resize_test

import (
	"fmt"
	"testing"

	"github.com/panoplyio/resize"
	"github.com/panoplyio/resize/resizetest"
	"github.com/stretchr/testify/require"
)

func ExampleDataset_Strings() {
	data := resize.NewDataset(integers{1, 2, 3}, strs{"a", "b", "c"})
	fmt.Println(data.Strings(), data.ByteSize(), data.RowSizes())

	// Output:
	// [(1,a) (2,b) (3,c)] 27 [9 9 9]
}

func TestDatasetInvariant(t *testing.T) {
	d1 := strs([]string{"1", "2", "4", "0", "3", "1", "1"})
	d2 := seq(1, 7)
	d3 := resize.Null.Data(7)

	resizetest.VerifyDataInterfaceInvariant(t, d1)
	resizetest.VerifyDataInterfaceInvariant(t, d2)
	resizetest.VerifyDataInterfaceInvariant(t, d3)
	resizetest.VerifyDataInterfaceInvariant(t, resize.NewDataset(d1, d2, d3))
}

func TestCompatible(t *testing.T) {
	cases := []struct {
		name string
		a, b resize.Dataset
		err  string
	}{
		{
			name: "same schema",
			a:    resize.NewDataset(integers{1}, strs{"a"}),
			b:    resize.NewDataset(integers{}, strs{}),
		}, {
			name: "different width",
			a:    resize.NewDataset(integers{1}, strs{"a"}),
			b:    resize.NewDataset(integers{1}),
			err:  "mismatch number of columns: 2 and 1",
		}, {
			name: "different order",
			a:    resize.NewDataset(integers{1}, strs{"a"}),
			b:    resize.NewDataset(strs{"a"}, integers{1}),
			err:  "type mismatch in column 0: integer and string",
		}, {
			name: "nulls",
			a:    resize.NewDataset(resize.Null.Data(1)),
			b:    resize.NewDataset(integers{1}),
			err:  "type mismatch in column 0: NULL and integer",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := resize.Compatible(tc.a, tc.b)
			if tc.err == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.err)
		})
	}
}

func TestConcat(t *testing.T) {
	a := resize.NewDataset(integers{1, 2}, strs{"a", "b"})
	b := resize.NewDataset(integers{3}, strs{"c"})

	res, err := resize.Concat(a, b)
	require.NoError(t, err)
	require.Equal(t, []string{"(1,a)", "(2,b)", "(3,c)"}, res.Strings())

	// inputs are left intact
	require.Equal(t, 2, a.Len())
	require.Equal(t, 1, b.Len())

	res, err = resize.Concat(resize.NewDataset(), b)
	require.NoError(t, err)
	require.Equal(t, b, res)

	res, err = resize.Concat(a, resize.NewDataset())
	require.NoError(t, err)
	require.Equal(t, a, res)

	_, err = resize.Concat(a, resize.NewDataset(strs{"c"}, integers{3}))
	require.Error(t, err)
}

func TestCut(t *testing.T) {
	data := resize.NewDataset(seq(1, 6))

	res := resize.Cut(data, 0, 2, 5)
	require.Equal(t, []int{0, 2, 3, 1}, resizetest.Lens(res))
	require.Equal(t, resizetest.Rows(data), resizetest.Rows(res...))

	res = resize.Cut(data, 6)
	require.Equal(t, []int{6}, resizetest.Lens(res))

	res = resize.Cut(data)
	require.Equal(t, []int{6}, resizetest.Lens(res))
}

func TestAs(t *testing.T) {
	named := resize.As(integer, "id")
	require.Equal(t, "integer", named.Name())
	require.Equal(t, "id", resize.GetAlias(named))
	require.Equal(t, "", resize.GetAlias(integer))

	renamed := resize.As(named, "key")
	require.Equal(t, "key", resize.GetAlias(renamed))
	require.Equal(t, "integer", renamed.Name())

	require.True(t, resize.AreEqualTypes([]resize.Type{named, str}, []resize.Type{resize.As(integer, "id"), str}))
	require.False(t, resize.AreEqualTypes([]resize.Type{named, str}, []resize.Type{renamed, str}))
	require.False(t, resize.AreEqualTypes([]resize.Type{named}, []resize.Type{named, str}))
}
