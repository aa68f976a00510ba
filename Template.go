package urlparser

import (
	"errors"
	"slices"

	"github.com/rohanthewiz/urlparser/consts"
	"github.com/rohanthewiz/urlparser/core/seg"
)

// Template is a compiled URL template such as /users/{INT:id}/{STRING:name}.
//
// A Template is immutable once compiled and safe for concurrent use.
// Reconfiguring it with WithTemplate or WithDelimiter returns a new Template.
type Template struct {
	source   string
	splitter *seg.Splitter
	segments []seg.Segment
}

// Option configures Compile.
type Option func(*compileOpts)

type compileOpts struct {
	delimiter string
}

// WithDelimiterPattern sets the regular expression used to split templates and paths.
// The default is consts.DefaultDelimiter, a single forward or back slash.
func WithDelimiterPattern(pattern string) Option {
	return func(o *compileOpts) {
		o.delimiter = pattern
	}
}

// Compile parses template into its segments.
// Every placeholder is validated here, including ones a short path would never reach,
// so a Template that compiles can only fail a match with a KindParse error.
func Compile(template string, options ...Option) (*Template, error) {
	opts := compileOpts{delimiter: consts.DefaultDelimiter}
	for _, opt := range options {
		opt(&opts)
	}

	sp, err := seg.NewSplitter(opts.delimiter)
	if err != nil {
		return nil, &Error{Kind: KindTemplate, Value: opts.delimiter, Reason: "invalid delimiter pattern", Err: err}
	}

	return compile(template, sp)
}

// MustCompile is like Compile but panics if the template cannot be compiled.
func MustCompile(template string, options ...Option) *Template {
	t, err := Compile(template, options...)
	if err != nil {
		panic(err)
	}
	return t
}

func compile(template string, sp *seg.Splitter) (*Template, error) {
	segments, err := seg.Compile(template, sp)
	if err != nil {
		var synErr *seg.SyntaxError
		if errors.As(err, &synErr) {
			return nil, &Error{Kind: KindTemplate, Value: synErr.Piece, Reason: synErr.Reason}
		}
		return nil, &Error{Kind: KindTemplate, Err: err}
	}

	for _, s := range segments {
		if !s.IsPlaceholder() {
			continue
		}

		if _, err := ParseParameterType(s.TypeName); err != nil {
			var e *Error
			if errors.As(err, &e) {
				e.Name = s.Name
			}
			return nil, err
		}
	}

	return &Template{
		source:   template,
		splitter: sp,
		segments: segments,
	}, nil
}

// WithTemplate compiles a new template using the receiver's delimiter.
func (t *Template) WithTemplate(template string) (*Template, error) {
	return compile(template, t.splitter)
}

// WithDelimiter recompiles the receiver's template source with a different delimiter pattern.
func (t *Template) WithDelimiter(pattern string) (*Template, error) {
	return Compile(t.source, WithDelimiterPattern(pattern))
}

// Source returns the template text the Template was compiled from.
func (t *Template) Source() string {
	return t.source
}

// Delimiter returns the delimiter pattern.
func (t *Template) Delimiter() string {
	return t.splitter.Pattern()
}

// Segments returns a copy of the compiled segments in template order.
func (t *Template) Segments() []seg.Segment {
	return slices.Clone(t.segments)
}

// Placeholders returns the names of all placeholders in template order.
func (t *Template) Placeholders() []string {
	var names []string
	for _, s := range t.segments {
		if s.IsPlaceholder() {
			names = append(names, s.Name)
		}
	}
	return names
}

// Match extracts the placeholder values of path into a new ParametersMap.
func (t *Template) Match(path string) (*ParametersMap, error) {
	return t.MatchInto(path, nil)
}

// MatchInto extracts the placeholder values of path into params, which may hold results
// of earlier matches. A nil params gets a fresh map.
//
// Matching is positional and permissive:
//   - one trailing delimiter on path is ignored
//   - literal segments are not compared with the path
//   - placeholders past the end of path are left unset
//   - path segments past the end of the template are ignored
//
// The first value that fails coercion aborts the match with a KindParse error and a nil map.
func (t *Template) MatchInto(path string, params *ParametersMap) (*ParametersMap, error) {
	if params == nil {
		params = NewParametersMap()
	}

	pieces := t.splitter.Split(t.splitter.TrimTrailing(path))

	err := seg.Pair(t.segments, pieces, t.addTo(params))
	if err != nil {
		return nil, err
	}

	return params, nil
}

// Extract returns the raw placeholder values of path, in template order, without coercion.
func (t *Template) Extract(path string) []seg.Capture {
	return seg.Captures(t.segments, t.splitter.Split(t.splitter.TrimTrailing(path)))
}

// addTo returns the pairing callback that coerces each captured value into params.
func (t *Template) addTo(params *ParametersMap) func(seg.Segment, string) error {
	return func(s seg.Segment, value string) error {
		typ, err := ParseParameterType(s.TypeName)
		if err != nil {
			return err
		}
		return params.AddParameter(s.Name, typ, value)
	}
}
