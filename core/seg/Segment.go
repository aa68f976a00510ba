package seg

// Kind tells whether a segment is copied through literally or captures a value.
type Kind int

const (
	// KindLiteral is plain template text. It is skipped during matching
	// and never compared against the path.
	KindLiteral Kind = iota

	// KindPlaceholder is a {TYPE:name} token.
	KindPlaceholder
)

// Segment is one delimiter-separated unit of a compiled template.
//
// Example:
//   Template: /users/{INT:id}
//   Result:   []Segment{{Text: ""}, {Text: "users"}, {Kind: KindPlaceholder, Text: "{INT:id}", TypeName: "INT", Name: "id"}}
type Segment struct {
	Kind     Kind
	Text     string // the raw piece as it appears in the template
	TypeName string // placeholders only
	Name     string // placeholders only
}

// IsPlaceholder reports whether the segment captures a value.
func (s Segment) IsPlaceholder() bool {
	return s.Kind == KindPlaceholder
}

// Capture is a raw value taken from a path for a placeholder, before any type coercion.
// Captures are returned in template order.
type Capture struct {
	Name     string
	TypeName string
	Value    string
}
