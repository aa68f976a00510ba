package urlparser

import (
	"slices"
	"strconv"
	"strings"

	"github.com/rohanthewiz/urlparser/consts"
)

// Coerce converts raw path text into a value of the given type.
// A failure is a KindParse error carrying the raw text and the target type.
func Coerce(typ ParameterType, raw string) (ParameterValue, error) {
	v := ParameterValue{typ: typ, raw: raw}

	switch typ {
	case TypeString:
		v.str = raw

	case TypeInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return ParameterValue{}, &Error{Kind: KindParse, Value: raw, Expected: typ, Err: err}
		}
		v.num = n

	case TypeBoolean:
		b, err := ParseBoolean(raw)
		if err != nil {
			return ParameterValue{}, err
		}
		v.flag = b

	default:
		return ParameterValue{}, &Error{Kind: KindTemplate, Value: typ.String(), Reason: "unknown parameter type"}
	}

	return v, nil
}

// ParseBoolean accepts true/1/yes and false/0/no in any letter case.
func ParseBoolean(raw string) (bool, error) {
	word := strings.ToLower(raw)

	if slices.Contains(consts.BoolTrueWords, word) {
		return true, nil
	}
	if slices.Contains(consts.BoolFalseWords, word) {
		return false, nil
	}

	return false, &Error{Kind: KindParse, Value: raw, Expected: TypeBoolean}
}
