package urlparser_test

import (
	"testing"

	"github.com/rohanthewiz/urlparser"
	"github.com/rohanthewiz/urlparser/core/seg/testdata"
)

func BenchmarkCompile(b *testing.B) {
	cases := testdata.Cases("core/seg/testdata/cases.txt")

	for i := 0; i < b.N; i++ {
		for _, c := range cases {
			_, _ = urlparser.Compile(c.Template)
		}
	}
}

func BenchmarkMatch(b *testing.B) {
	for _, c := range testdata.Cases("core/seg/testdata/cases.txt") {
		tmpl := urlparser.MustCompile(c.Template)

		b.Run(c.Path, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = tmpl.Match(c.Path)
			}
		})
	}
}
