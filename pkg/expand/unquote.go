package expand

import (
	"strings"

	"github.com/elves/bashparse/pkg/parse"
)

// Unquote removes all quoting from w. Characters and escapes contribute
// the character itself, quoted regions contribute their unquoted content,
// and substitutions contribute their source text unchanged. Decoding
// $'…' escape sequences is the consumer's concern.
func Unquote(w parse.Word) string {
	var b strings.Builder
	unquoteInto(&b, w)
	return b.String()
}

func unquoteInto(b *strings.Builder, w parse.Word) {
	for _, sp := range w {
		switch sp := sp.(type) {
		case parse.Lit:
			b.WriteRune(sp.R)
		case parse.Escaped:
			b.WriteRune(sp.R)
		case parse.SglQuoted:
			b.WriteString(sp.Text)
		case parse.DblQuoted:
			unquoteInto(b, sp.Word)
		case parse.AnsiQuoted:
			unquoteInto(b, sp.Word)
		case parse.LocaleQuoted:
			unquoteInto(b, sp.Word)
		default:
			b.WriteString(parse.Word{sp}.String())
		}
	}
}
