package urlparser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind tells the four failure classes apart.
type ErrorKind int

const (
	// KindTemplate is a malformed placeholder, unknown type name or bad delimiter.
	// The template has to be fixed.
	KindTemplate ErrorKind = iota + 1

	// KindParse is a path value that could not be coerced to its placeholder type.
	// The path does not satisfy the template.
	KindParse

	// KindNotProvided is a lookup of a name that is not in the map.
	KindNotProvided

	// KindIncompatibleType is a lookup with a type other than the stored one.
	KindIncompatibleType
)

// Sentinels for use with errors.Is.
var (
	ErrTemplate         = errors.New("invalid url template")
	ErrParse            = errors.New("url parameter could not be parsed")
	ErrNotProvided      = errors.New("url parameter not provided")
	ErrIncompatibleType = errors.New("url parameter has incompatible type")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindTemplate:
		return ErrTemplate
	case KindParse:
		return ErrParse
	case KindNotProvided:
		return ErrNotProvided
	case KindIncompatibleType:
		return ErrIncompatibleType
	default:
		return nil
	}
}

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return "unknown error kind"
}

// Error is returned by every failing operation of this package.
// Use errors.Is with the Err* sentinels to branch on the kind, and errors.As to read the details.
type Error struct {
	Kind ErrorKind

	// Name is the parameter name, when one is known.
	Name string

	// Value is the offending text: a path value for KindParse,
	// a template piece or type name for KindTemplate.
	Value string

	// Expected is the target type of a failed coercion or the requested type of a lookup.
	Expected ParameterType

	// Actual is the stored type for KindIncompatibleType.
	Actual ParameterType

	Reason string
	Err    error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())

	if e.Name != "" {
		fmt.Fprintf(&sb, " %q", e.Name)
	}

	switch e.Kind {
	case KindParse:
		fmt.Fprintf(&sb, ": %q is not a valid %s", e.Value, e.Expected)
	case KindIncompatibleType:
		fmt.Fprintf(&sb, ": %s can not be read as %s", e.Actual, e.Expected)
	case KindTemplate:
		if e.Value != "" {
			fmt.Fprintf(&sb, ": %q", e.Value)
		}
	}

	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}

	return sb.String()
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// KindOf returns the kind of err, or 0 if err did not come from this package.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
