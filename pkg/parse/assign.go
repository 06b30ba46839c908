package parse

// The assignment lexer: name=value, name+=value, name[sub]=value and
// array literals in assignment position.

import "regexp"

var assignPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z_0-9]*(\+?=|\[)`)

// tryAssign speculatively parses an assignment, rolling back when the
// input is not one. Results are memoized by position.
func (p *parser) tryAssign() (Assign, bool) {
	key := memoKey{ruleAssign, p.pos}
	if e, hit := p.memo[key]; hit {
		if e.ok {
			p.pos = e.end
			return e.val.(Assign), true
		}
		return Assign{}, false
	}
	var a Assign
	ok := p.speculate(func() {
		a = p.assign()
	})
	p.memo[key] = memoEntry{ok: ok, end: p.pos, val: a}
	return a, ok
}

func (p *parser) assign() Assign {
	m := assignPattern.FindString(p.rest())
	if m == "" {
		p.errorf("not an assignment")
	}
	var a Assign
	switch m[len(m)-1] {
	case '[':
		a.Name = m[:len(m)-1]
		p.consume(len(m) - 1)
		a.Index = p.subscript()
		switch {
		case p.consumePrefix("+="):
			a.Append = true
		case p.consumePrefix("="):
		default:
			p.errorf("expected = after subscript")
		}
	default:
		p.consume(len(m))
		if m[len(m)-2] == '+' {
			a.Append = true
			a.Name = m[:len(m)-2]
		} else {
			a.Name = m[:len(m)-1]
		}
	}
	if p.hasPrefix("(") {
		a.Value = p.arrayValue()
	} else {
		a.Value = p.word(metachars)
	}
	return a
}

// arrayValue parses "(elem…)" with elements separated by arbitrary
// whitespace, including newlines and comments.
func (p *parser) arrayValue() *ArrayValue {
	p.consume(1)
	av := &ArrayValue{}
	for {
		p.newlines()
		if p.consumePrefix(")") {
			return av
		}
		if p.eof() {
			p.errorf("unterminated array literal")
		}
		var elem ArrayElem
		if p.hasPrefix("[") {
			elem.Index = p.subscript()
			if !p.consumePrefix("=") {
				p.errorf("expected = after subscript")
			}
		}
		elem.Value = p.word(metachars)
		if elem.Index == nil && len(elem.Value) == 0 {
			p.errorf("expected array element")
		}
		av.Elems = append(av.Elems, elem)
	}
}
