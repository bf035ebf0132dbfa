package resize

// Wildcard is a pseduo-type used to denote types that are dependent on their
// input type. Resizing runners return it, since they never change the shape of
// the data flowing through them. It should never be used in the datasets
// themselves, but only in API declaration.
var Wildcard = &wildcardType{}

// Type is an interface that represnts specific data types
type Type interface {
	Name() string

	// Data returns a new Data object of this type, containing `n` zero-values
	Data(n int) Data
}

// see Wildcard above.
type wildcardType struct{}

func (*wildcardType) Name() string  { return "*" }
func (*wildcardType) Data(int) Data { panic("wildcard has no concrete data") }

// UnnamedColumn used as default name for columns without an alias
const UnnamedColumn = "?column?"

// As returns a new Type that's assigned a name, Useful for cases where the name
// of the data represented by the type matters for later referencing, like
// schema compatibility checks between two tables. To fetch the name, use
// GetAlias
func As(t Type, name string) Type {
	if a, ok := t.(*asType); ok {
		t = a.Type
	}
	return &asType{t, name}
}

// GetAlias returns the alias of the given typed column, or an empty string if
// the column was never named
func GetAlias(t Type) string {
	if a, ok := t.(interface{ As() string }); ok {
		return a.As()
	}
	return ""
}

type asType struct {
	Type
	AsName string
}

func (t *asType) String() string { return t.Type.Name() }
func (t *asType) As() string     { return t.AsName }

// AreEqualTypes compares types by name and alias, in order
func AreEqualTypes(ts1, ts2 []Type) bool {
	if len(ts1) != len(ts2) {
		return false
	}
	for i := range ts1 {
		if ts1[i].Name() != ts2[i].Name() || GetAlias(ts1[i]) != GetAlias(ts2[i]) {
			return false
		}
	}
	return true
}
