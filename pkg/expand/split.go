package expand

import (
	"strings"

	"github.com/elves/bashparse/pkg/parse"
)

// Split performs IFS field splitting on w. Only unquoted plain characters
// in ifs delimit fields; empty fields are never emitted, so leading,
// trailing and repeated delimiters are skipped.
func Split(ifs string, w parse.Word) []parse.Word {
	var fields []parse.Word
	var cur parse.Word
	flush := func() {
		if len(cur) > 0 {
			fields = append(fields, cur)
			cur = nil
		}
	}
	for _, sp := range w {
		if l, ok := sp.(parse.Lit); ok && strings.ContainsRune(ifs, l.R) {
			flush()
			continue
		}
		cur = append(cur, sp)
	}
	flush()
	return fields
}
