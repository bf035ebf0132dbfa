package resize

import (
	"fmt"
)

// Null is a Type representing NULL values. Use Null.Data(n) to create Data
// instances of `n` nulls. Nulls occupy no memory
var Null = &nullType{}

type nullType struct{}

func (t *nullType) String() string { return t.Name() }
func (*nullType) Data(n int) Data  { return nulls(n) }
func (*nullType) Name() string     { return "NULL" }

// nulls is implemented to satisfy both the Type and Data interfaces
type nulls int                         // number of nulls in the set
func (nulls) Type() Type               { return Null }
func (nulls) Slice(i, j int) Data      { return nulls(j - i) }
func (vs nulls) Append(data Data) Data { return vs + data.(nulls) }
func (vs nulls) Len() int              { return int(vs) }
func (vs nulls) Strings() []string     { return make([]string, vs) }
func (vs nulls) ByteSize() int         { return 0 }
func (vs nulls) RowSizes() []int       { return make([]int, vs) }

// to-string, for debugging. Same as array of <nil>.
func (vs nulls) String() string {
	return fmt.Sprintf("%v", make([]interface{}, vs.Len()))
}
