package urlparser

import "github.com/rohanthewiz/urlparser/consts"

// ParameterType identifies how the raw text of a placeholder is interpreted.
type ParameterType int

// The set of parameter types is closed.
const (
	TypeString ParameterType = iota + 1
	TypeInt
	TypeBoolean
)

// ParseParameterType looks up a type by its template name (STRING, INT or BOOLEAN).
// The lookup is exact and case-sensitive.
func ParseParameterType(name string) (ParameterType, error) {
	switch name {
	case consts.TypeString:
		return TypeString, nil
	case consts.TypeInt:
		return TypeInt, nil
	case consts.TypeBoolean:
		return TypeBoolean, nil
	default:
		return 0, &Error{Kind: KindTemplate, Value: name, Reason: "unknown parameter type"}
	}
}

// String returns the template name of the type.
func (pt ParameterType) String() string {
	switch pt {
	case TypeString:
		return consts.TypeString
	case TypeInt:
		return consts.TypeInt
	case TypeBoolean:
		return consts.TypeBoolean
	default:
		return "UNKNOWN"
	}
}
