package urlparser

// ParameterValue is a coerced placeholder value together with its type.
// Values are only built by Coerce, so the stored Go value always matches the type.
type ParameterValue struct {
	typ  ParameterType
	raw  string
	str  string
	num  int
	flag bool
}

// Type returns the declared type of the value.
func (v ParameterValue) Type() ParameterType {
	return v.typ
}

// Raw returns the path text the value was coerced from.
func (v ParameterValue) Raw() string {
	return v.raw
}

// Value returns the coerced value as a string, int or bool.
func (v ParameterValue) Value() any {
	switch v.typ {
	case TypeInt:
		return v.num
	case TypeBoolean:
		return v.flag
	default:
		return v.str
	}
}

// String implements fmt.Stringer.
func (v ParameterValue) String() string {
	return v.typ.String() + ":" + v.raw
}
