package parse

// Here-document capture. Heredocs are queued when their redirection is
// parsed and resolved in FIFO order when the grammar consumes the newline
// ending their logical line.

import "strings"

// readHeredocs fills the bodies of all pending here-docs, advancing the
// cursor past the consumed lines. Called immediately after a newline.
func (p *parser) readHeredocs() {
	pending := p.pendingHeredocs
	p.pendingHeredocs = nil
	for _, hd := range pending {
		hd.Body = p.heredocBody(hd)
	}
}

func (p *parser) heredocBody(hd *Heredoc) string {
	strip := hd.Op == "<<-"
	var b strings.Builder
	for {
		if p.eof() {
			p.errorf("unterminated here-document %q", hd.Delim)
		}
		line := p.rest()
		if i := strings.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
			p.consume(i + 1)
		} else {
			p.consume(len(line))
		}
		if strip {
			line = strings.TrimLeft(line, "\t")
		}
		if line == hd.Delim {
			return b.String()
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// heredocDelim derives the raw delimiter from the target word of a <<
// redirection and reports whether any part of it was quoted.
func heredocDelim(w Word) (delim string, quoted bool) {
	var b strings.Builder
	for _, sp := range w {
		switch sp := sp.(type) {
		case Lit:
			b.WriteRune(sp.R)
		case Escaped:
			quoted = true
			b.WriteRune(sp.R)
		case SglQuoted:
			quoted = true
			b.WriteString(sp.Text)
		case DblQuoted:
			quoted = true
			b.WriteString(flatten(sp.Word))
		case AnsiQuoted:
			quoted = true
			b.WriteString(flatten(sp.Word))
		case LocaleQuoted:
			quoted = true
			b.WriteString(flatten(sp.Word))
		default:
			b.WriteString(spanString(sp))
		}
	}
	return b.String(), quoted
}

// flatten is the quote-removing projection of a word, used only for
// delimiters; substitutions contribute their source text.
func flatten(w Word) string {
	var b strings.Builder
	for _, sp := range w {
		switch sp := sp.(type) {
		case Lit:
			b.WriteRune(sp.R)
		case Escaped:
			b.WriteRune(sp.R)
		case SglQuoted:
			b.WriteString(sp.Text)
		case DblQuoted:
			b.WriteString(flatten(sp.Word))
		case AnsiQuoted:
			b.WriteString(flatten(sp.Word))
		case LocaleQuoted:
			b.WriteString(flatten(sp.Word))
		default:
			b.WriteString(spanString(sp))
		}
	}
	return b.String()
}
