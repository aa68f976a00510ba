package seg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rohanthewiz/urlparser/consts"
)

// SyntaxError describes a template piece that looks like a placeholder but is malformed.
type SyntaxError struct {
	Index  int    // position of the piece among the template segments
	Piece  string // the offending piece
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("segment %d %q: %s", e.Index, e.Piece, e.Reason)
}

// Compile splits template and classifies every piece as a literal or a placeholder.
// Placeholder syntax is checked here; type names are only extracted, the caller
// decides which names are valid.
func Compile(template string, sp *Splitter) ([]Segment, error) {
	pieces := sp.Split(template)
	segments := make([]Segment, 0, len(pieces))

	for i, piece := range pieces {
		if !looksLikePlaceholder(piece) {
			segments = append(segments, Segment{Kind: KindLiteral, Text: piece})
			continue
		}

		typeName, name, err := parsePlaceholder(piece)
		if err != nil {
			return nil, &SyntaxError{Index: i, Piece: piece, Reason: err.Error()}
		}

		segments = append(segments, Segment{
			Kind:     KindPlaceholder,
			Text:     piece,
			TypeName: typeName,
			Name:     name,
		})
	}

	return segments, nil
}

// looksLikePlaceholder reports whether piece opens with a brace.
// Such a piece has to be a complete {TYPE:name} token.
func looksLikePlaceholder(piece string) bool {
	return piece != "" && piece[0] == consts.RuneBraceOpen
}

// parsePlaceholder takes "{TYPE:name}" apart.
func parsePlaceholder(piece string) (typeName, name string, err error) {
	if len(piece) < 2 || piece[len(piece)-1] != consts.RuneBraceClose {
		return "", "", errors.New("missing closing brace")
	}

	inner := piece[1 : len(piece)-1]

	colon := strings.IndexByte(inner, consts.RuneColon)
	if colon < 0 {
		return "", "", fmt.Errorf("missing %q between type and name", consts.RuneColon)
	}

	typeName = inner[:colon]
	name = inner[colon+1:]

	if typeName == "" {
		return "", "", errors.New("empty type name")
	}
	if name == "" {
		return "", "", errors.New("empty parameter name")
	}
	if strings.IndexByte(name, consts.RuneColon) >= 0 || strings.IndexByte(name, consts.RuneBraceClose) >= 0 {
		return "", "", fmt.Errorf("parameter name may not contain %q or %q", consts.RuneColon, consts.RuneBraceClose)
	}

	return typeName, name, nil
}
