package seg

// Pair walks template segments and path pieces side by side and calls fn
// for every placeholder that has a path piece at the same position.
//
// Pairing is positional only:
//   - literal segments are skipped without comparing them to the path
//   - pieces beyond the shorter of the two lists are ignored
//
// The first error returned by fn stops the walk and is passed back.
func Pair(segments []Segment, pieces []string, fn func(s Segment, value string) error) error {
	n := min(len(segments), len(pieces))

	for i := range n {
		s := segments[i]
		if s.Kind != KindPlaceholder {
			continue
		}

		if err := fn(s, pieces[i]); err != nil {
			return err
		}
	}

	return nil
}

// Captures returns the raw placeholder values of pieces, in template order.
func Captures(segments []Segment, pieces []string) []Capture {
	var captures []Capture

	_ = Pair(segments, pieces, func(s Segment, value string) error {
		captures = append(captures, Capture{Name: s.Name, TypeName: s.TypeName, Value: value})
		return nil
	})

	return captures
}
