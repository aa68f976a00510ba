package seg

import (
	"regexp"
	"unicode/utf8"
)

// Splitter breaks templates and paths into pieces on a delimiter pattern.
// A Splitter is immutable and safe for concurrent use.
type Splitter struct {
	pattern string
	split   *regexp.Regexp
	single  *regexp.Regexp // the pattern anchored to a whole string, for trailing checks
}

// NewSplitter compiles the delimiter pattern.
func NewSplitter(pattern string) (*Splitter, error) {
	split, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	single, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, err
	}

	return &Splitter{pattern: pattern, split: split, single: single}, nil
}

// Pattern returns the delimiter pattern the splitter was built from.
func (sp *Splitter) Pattern() string {
	return sp.pattern
}

// Split breaks s around every delimiter match.
// A leading delimiter yields a leading empty piece, which keeps positions aligned
// between a template and a path. Trailing empty pieces are dropped.
// When the delimiter does not occur at all the result is s itself, even if s is empty.
func (sp *Splitter) Split(s string) []string {
	pieces := sp.split.Split(s, -1)
	if len(pieces) <= 1 {
		return pieces
	}

	end := len(pieces)
	for end > 0 && pieces[end-1] == "" {
		end--
	}
	return pieces[:end]
}

// TrimTrailing removes exactly one trailing delimiter character from s, if there is one.
func (sp *Splitter) TrimTrailing(s string) string {
	if s == "" {
		return s
	}

	_, size := utf8.DecodeLastRuneInString(s)

	if sp.single.MatchString(s[len(s)-size:]) {
		return s[:len(s)-size]
	}
	return s
}
