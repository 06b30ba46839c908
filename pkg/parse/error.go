package parse

import "fmt"

// Error is a parse error. Line and Col are 1-based; Offset is the byte
// offset into the source, usable with src.elv.sh/pkg/diag for showing
// context.
type Error struct {
	Name   string
	Line   int
	Col    int
	Offset int
	Msg    string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Name, e.Line, e.Col, e.Msg)
}
