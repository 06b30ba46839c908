// Package expand implements the purely lexical word expansions: brace
// expansion, IFS field splitting and quote removal. It operates on parsed
// words and never evaluates anything.
package expand

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/elves/bashparse/pkg/parse"
)

// Brace performs brace expansion on w. The result is never empty; a word
// without brace structure expands to itself. Alternations and sequences
// compose left to right, and each alternative and the suffix are expanded
// recursively.
func Brace(w parse.Word) []parse.Word {
	for i, sp := range w {
		l, ok := sp.(parse.Lit)
		if !ok || l.R != '{' {
			continue
		}
		end, commas := matchBrace(w, i)
		if end < 0 {
			continue
		}
		prefix := w[:i]
		inner := w[i+1 : end]
		suffixes := Brace(w[end+1:])
		if len(commas) > 0 {
			var out []parse.Word
			for _, part := range splitAt(inner, commas, i+1) {
				for _, pe := range Brace(part) {
					for _, se := range suffixes {
						out = append(out, concatWords(prefix, pe, se))
					}
				}
			}
			return out
		}
		if items, ok := seqItems(inner); ok {
			var out []parse.Word
			for _, item := range items {
				for _, se := range suffixes {
					out = append(out, concatWords(prefix, Literal(item), se))
				}
			}
			return out
		}
		// A lone {…} with a single part and no valid sequence stays
		// literal; keep looking for a later group.
	}
	return []parse.Word{w}
}

// matchBrace finds the unquoted '}' matching the '{' at index open, and
// the indices of the top-level commas between them. Returns end -1 when
// unmatched.
func matchBrace(w parse.Word, open int) (end int, commas []int) {
	depth := 0
	for i := open; i < len(w); i++ {
		l, ok := w[i].(parse.Lit)
		if !ok {
			continue
		}
		switch l.R {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, commas
			}
		case ',':
			if depth == 1 {
				commas = append(commas, i)
			}
		}
	}
	return -1, nil
}

// splitAt cuts the spans between the braces at the given comma indices.
// base is the word index of the first inner span.
func splitAt(inner parse.Word, commas []int, base int) []parse.Word {
	var parts []parse.Word
	start := 0
	for _, c := range commas {
		parts = append(parts, inner[start:c-base])
		start = c - base + 1
	}
	return append(parts, inner[start:])
}

func concatWords(ws ...parse.Word) parse.Word {
	var out parse.Word
	for _, w := range ws {
		out = append(out, w...)
	}
	return out
}

// Literal builds a word of plain characters from s.
func Literal(s string) parse.Word {
	w := make(parse.Word, 0, len(s))
	for _, r := range s {
		w = append(w, parse.Lit{R: r})
	}
	return w
}

// seqItems recognizes the {x..y} and {x..y..inc} sequence forms. The
// spans must all be plain characters.
func seqItems(inner parse.Word) ([]string, bool) {
	var b strings.Builder
	for _, sp := range inner {
		l, ok := sp.(parse.Lit)
		if !ok {
			return nil, false
		}
		b.WriteRune(l.R)
	}
	parts := strings.Split(b.String(), "..")
	if len(parts) != 2 && len(parts) != 3 {
		return nil, false
	}
	inc := 1
	if len(parts) == 3 {
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, false
		}
		inc = n
	}
	if x, err := strconv.Atoi(parts[0]); err == nil {
		y, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, false
		}
		return numSeq(parts[0], parts[1], x, y, inc), true
	}
	return alphaSeq(parts[0], parts[1], inc)
}

// numSeq yields the inclusive numeric sequence from x to y. The step
// direction follows the endpoints regardless of the increment's sign, as
// in Bash. Zero padding applies when either endpoint is written padded,
// to the larger endpoint's digit count, with the sign in front.
func numSeq(xs, ys string, x, y, inc int) []string {
	step := inc
	if step < 0 {
		step = -step
	}
	if step == 0 {
		step = 1
	}
	if y < x {
		step = -step
	}
	width := 0
	if zeroPadded(xs) || zeroPadded(ys) {
		width = max(len(strings.TrimPrefix(xs, "-")), len(strings.TrimPrefix(ys, "-")))
	}
	var items []string
	for n := x; (step > 0 && n <= y) || (step < 0 && n >= y); n += step {
		items = append(items, formatPadded(n, width))
	}
	return items
}

func zeroPadded(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return len(s) > 1 && s[0] == '0'
}

func formatPadded(n, width int) string {
	if width == 0 {
		return strconv.Itoa(n)
	}
	if n < 0 {
		return "-" + fmt.Sprintf("%0*d", width, -n)
	}
	return fmt.Sprintf("%0*d", width, n)
}

// alphaSeq yields the single-letter ASCII sequence from x to y.
func alphaSeq(xs, ys string, inc int) ([]string, bool) {
	if len(xs) != 1 || len(ys) != 1 || !isAlpha(xs[0]) || !isAlpha(ys[0]) {
		return nil, false
	}
	x, y := int(xs[0]), int(ys[0])
	step := inc
	if step < 0 {
		step = -step
	}
	if step == 0 {
		step = 1
	}
	if y < x {
		step = -step
	}
	var items []string
	for n := x; (step > 0 && n <= y) || (step < 0 && n >= y); n += step {
		items = append(items, string(rune(n)))
	}
	return items, true
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
