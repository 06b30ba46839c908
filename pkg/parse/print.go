package parse

// Source re-emission. Every node prints to text that parses back to the
// same tree; statements are separated by newlines, which also gives
// here-doc bodies their place.

import (
	"fmt"
	"strings"
)

func (w Word) String() string {
	var b strings.Builder
	writeWord(&b, w)
	return b.String()
}

func spanString(sp Span) string {
	var b strings.Builder
	writeSpan(&b, sp)
	return b.String()
}

func writeWord(b *strings.Builder, w Word) {
	for _, sp := range w {
		writeSpan(b, sp)
	}
}

func writeSpan(b *strings.Builder, sp Span) {
	switch sp := sp.(type) {
	case Lit:
		b.WriteRune(sp.R)
	case Escaped:
		b.WriteByte('\\')
		b.WriteRune(sp.R)
	case SglQuoted:
		b.WriteByte('\'')
		b.WriteString(sp.Text)
		b.WriteByte('\'')
	case DblQuoted:
		b.WriteByte('"')
		writeWord(b, sp.Word)
		b.WriteByte('"')
	case AnsiQuoted:
		b.WriteString("$'")
		writeWord(b, sp.Word)
		b.WriteByte('\'')
	case LocaleQuoted:
		b.WriteString(`$"`)
		writeWord(b, sp.Word)
		b.WriteByte('"')
	case BackQuoted:
		b.WriteByte('`')
		writeWord(b, sp.Word)
		b.WriteByte('`')
	case ArithSubst:
		b.WriteString("$((")
		b.WriteString(sp.Text)
		b.WriteString("))")
	case CmdSubst:
		b.WriteString("$(")
		b.WriteString(sp.Text)
		b.WriteByte(')')
	case ProcSubst:
		b.WriteByte(sp.Dir)
		b.WriteByte('(')
		b.WriteString(sp.Text)
		b.WriteByte(')')
	case Bare:
		b.WriteByte('$')
		b.WriteString(sp.Param.Name)
	case Brace:
		b.WriteString("${")
		writeIndirect(b, sp.Indirect)
		writeParam(b, sp.Param)
		b.WriteByte('}')
	case Alt:
		b.WriteString("${")
		writeIndirect(b, sp.Indirect)
		writeParam(b, sp.Param)
		if sp.TestNull {
			b.WriteByte(':')
		}
		b.WriteByte(sp.Op)
		writeWord(b, sp.Word)
		b.WriteByte('}')
	case Substring:
		b.WriteString("${")
		writeIndirect(b, sp.Indirect)
		writeParam(b, sp.Param)
		b.WriteByte(':')
		writeWord(b, sp.Offset)
		if sp.Length != nil {
			b.WriteByte(':')
			writeWord(b, *sp.Length)
		}
		b.WriteByte('}')
	case Prefix:
		b.WriteString("${!")
		b.WriteString(sp.Prefix)
		b.WriteByte(sp.Mod)
		b.WriteByte('}')
	case Indices:
		b.WriteString("${!")
		writeParam(b, sp.Param)
		b.WriteByte('}')
	case Length:
		b.WriteString("${#")
		writeParam(b, sp.Param)
		b.WriteByte('}')
	case Delete:
		b.WriteString("${")
		writeIndirect(b, sp.Indirect)
		writeParam(b, sp.Param)
		op := "#"
		if sp.Dir == Back {
			op = "%"
		}
		b.WriteString(op)
		if !sp.Shortest {
			b.WriteString(op)
		}
		writeWord(b, sp.Pattern)
		b.WriteByte('}')
	case Replace:
		b.WriteString("${")
		writeIndirect(b, sp.Indirect)
		writeParam(b, sp.Param)
		b.WriteByte('/')
		switch {
		case sp.All:
			b.WriteByte('/')
		case sp.Dir == Front:
			b.WriteByte('#')
		case sp.Dir == Back:
			b.WriteByte('%')
		}
		writeWord(b, sp.Pattern)
		if sp.Repl != nil {
			b.WriteByte('/')
			writeWord(b, *sp.Repl)
		}
		b.WriteByte('}')
	case LetterCase:
		b.WriteString("${")
		writeIndirect(b, sp.Indirect)
		writeParam(b, sp.Param)
		op := byte('^')
		if sp.ToLower {
			op = ','
		}
		b.WriteByte(op)
		if !sp.StartCase {
			b.WriteByte(op)
		}
		writeWord(b, sp.Pattern)
		b.WriteByte('}')
	case BadSubst:
		b.WriteString(sp.Text)
	default:
		panic(fmt.Sprintf("unknown span type %T", sp))
	}
}

func writeIndirect(b *strings.Builder, indirect bool) {
	if indirect {
		b.WriteByte('!')
	}
}

func writeParam(b *strings.Builder, pr Param) {
	b.WriteString(pr.Name)
	if pr.Index != nil {
		b.WriteByte('[')
		writeWord(b, *pr.Index)
		b.WriteByte(']')
	}
}

func (pr Param) String() string {
	var b strings.Builder
	writeParam(&b, pr)
	return b.String()
}

// printer emits command nodes, deferring here-doc bodies to the newline
// ending their statement.
type printer struct {
	b        strings.Builder
	heredocs []*Heredoc
}

func render(f func(*printer)) string {
	var pr printer
	f(&pr)
	return strings.TrimSuffix(pr.b.String(), "\n")
}

func (pr *printer) str(ss ...string) {
	for _, s := range ss {
		pr.b.WriteString(s)
	}
}

func (pr *printer) word(w Word) {
	writeWord(&pr.b, w)
}

func (pr *printer) list(l List) {
	for _, st := range l {
		pr.stmt(st)
	}
}

func (pr *printer) stmt(st Stmt) {
	pr.andOr(st.AndOr)
	if st.Background {
		pr.str(" &")
	}
	pr.str("\n")
	pr.flushHeredocs()
}

func (pr *printer) flushHeredocs() {
	hds := pr.heredocs
	if len(hds) == 0 {
		return
	}
	pr.heredocs = nil
	for _, hd := range hds {
		pr.str(hd.Body, hd.Delim, "\n")
	}
}

func (pr *printer) andOr(ao AndOr) {
	switch ao := ao.(type) {
	case Last:
		pr.pipeline(ao.Pipeline)
	case And:
		pr.pipeline(ao.Left)
		pr.str(" && ")
		pr.andOr(ao.Right)
	case Or:
		pr.pipeline(ao.Left)
		pr.str(" || ")
		pr.andOr(ao.Right)
	default:
		panic(fmt.Sprintf("unknown and-or type %T", ao))
	}
}

func (pr *printer) pipeline(pl Pipeline) {
	switch pl := pl.(type) {
	case Pipe:
		for i, cmd := range pl.Cmds {
			if i > 0 {
				pr.str(" | ")
			}
			pr.command(cmd)
		}
	case Invert:
		pr.str("! ")
		pr.pipeline(pl.Pipeline)
	case Time:
		pr.str("time ")
		if pl.Posix {
			pr.str("-p ")
		}
		pr.pipeline(pl.Pipeline)
	default:
		panic(fmt.Sprintf("unknown pipeline type %T", pl))
	}
}

func (pr *printer) command(cmd Command) {
	pr.shellCommand(cmd.Cmd)
	for _, rd := range cmd.Redirs {
		pr.str(" ")
		pr.redir(rd)
	}
}

func (pr *printer) redir(rd Redir) {
	switch rd := rd.(type) {
	case FileRedir:
		pr.str(rd.N, rd.Op)
		pr.word(rd.Target)
	case *Heredoc:
		pr.str(rd.Op)
		if rd.Quoted {
			pr.str("'", rd.Delim, "'")
		} else {
			pr.str(rd.Delim)
		}
		pr.heredocs = append(pr.heredocs, rd)
	default:
		panic(fmt.Sprintf("unknown redir type %T", rd))
	}
}

func (pr *printer) shellCommand(sc ShellCommand) {
	switch sc := sc.(type) {
	case SimpleCommand:
		sep := ""
		for _, a := range sc.Assigns {
			pr.str(sep)
			pr.assign(a)
			sep = " "
		}
		for _, w := range sc.Words {
			pr.str(sep)
			pr.word(w)
			sep = " "
		}
	case AssignBuiltin:
		pr.str(sc.Name)
		for _, arg := range sc.Args {
			pr.str(" ")
			switch arg := arg.(type) {
			case Assign:
				pr.assign(arg)
			case Word:
				pr.word(arg)
			}
		}
	case If:
		pr.str("if ")
		pr.list(sc.Cond)
		pr.str("then ")
		pr.list(sc.Then)
		if sc.Else != nil {
			pr.str("else ")
			pr.list(sc.Else)
		}
		pr.str("fi")
	case Case:
		pr.str("case ")
		pr.word(sc.Word)
		pr.str(" in\n")
		for _, cl := range sc.Clauses {
			for i, pat := range cl.Patterns {
				if i > 0 {
					pr.str(" | ")
				}
				pr.word(pat)
			}
			pr.str(") ")
			pr.list(cl.Body)
			pr.str(cl.Term.String(), "\n")
		}
		pr.str("esac")
	case For:
		pr.str("for ", sc.Var, " in")
		for _, w := range sc.Words {
			pr.str(" ")
			pr.word(w)
		}
		pr.str("\n")
		pr.doGroup(sc.Body)
	case ArithFor:
		pr.str("for ((", sc.Expr, "))\n")
		pr.doGroup(sc.Body)
	case While:
		pr.str("while ")
		pr.list(sc.Cond)
		pr.doGroup(sc.Body)
	case Until:
		pr.str("until ")
		pr.list(sc.Cond)
		pr.doGroup(sc.Body)
	case Select:
		pr.str("select ", sc.Var, " in")
		for _, w := range sc.Words {
			pr.str(" ")
			pr.word(w)
		}
		pr.str("\n")
		pr.doGroup(sc.Body)
	case Subshell:
		pr.str("(")
		pr.list(sc.Body)
		pr.str(")")
	case Group:
		pr.str("{ ")
		pr.list(sc.Body)
		pr.str("}")
	case Cond:
		pr.str("[[")
		for _, w := range sc.Words {
			pr.str(" ")
			pr.word(w)
		}
		pr.str(" ]]")
	case Arith:
		pr.str("((", sc.Expr, "))")
	case Coproc:
		pr.str("coproc ")
		if sc.Name != "COPROC" {
			pr.str(sc.Name, " ")
		}
		pr.command(sc.Cmd)
	case FunctionDef:
		pr.str(sc.Name, "() ")
		pr.list(sc.Body)
	default:
		panic(fmt.Sprintf("unknown command type %T", sc))
	}
}

func (pr *printer) doGroup(body List) {
	pr.str("do ")
	pr.list(body)
	pr.str("done")
}

func (pr *printer) assign(a Assign) {
	pr.str(a.Name)
	if a.Index != nil {
		pr.str("[")
		pr.word(*a.Index)
		pr.str("]")
	}
	if a.Append {
		pr.str("+")
	}
	pr.str("=")
	switch v := a.Value.(type) {
	case Word:
		pr.word(v)
	case *ArrayValue:
		pr.str("(")
		for i, elem := range v.Elems {
			if i > 0 {
				pr.str(" ")
			}
			if elem.Index != nil {
				pr.str("[")
				pr.word(*elem.Index)
				pr.str("]=")
			}
			pr.word(elem.Value)
		}
		pr.str(")")
	default:
		panic(fmt.Sprintf("unknown assignment value type %T", v))
	}
}

func (l List) String() string     { return render(func(pr *printer) { pr.list(l) }) }
func (st Stmt) String() string    { return render(func(pr *printer) { pr.stmt(st) }) }
func (cmd Command) String() string {
	return render(func(pr *printer) { pr.command(cmd); pr.str("\n"); pr.flushHeredocs() })
}
func (a Assign) String() string { return render(func(pr *printer) { pr.assign(a) }) }

func (sc SimpleCommand) String() string { return shellCommandString(sc) }
func (sc AssignBuiltin) String() string { return shellCommandString(sc) }
func (sc If) String() string            { return shellCommandString(sc) }
func (sc Case) String() string          { return shellCommandString(sc) }
func (sc For) String() string           { return shellCommandString(sc) }
func (sc ArithFor) String() string      { return shellCommandString(sc) }
func (sc While) String() string         { return shellCommandString(sc) }
func (sc Until) String() string         { return shellCommandString(sc) }
func (sc Select) String() string        { return shellCommandString(sc) }
func (sc Subshell) String() string      { return shellCommandString(sc) }
func (sc Group) String() string         { return shellCommandString(sc) }
func (sc Cond) String() string          { return shellCommandString(sc) }
func (sc Arith) String() string         { return shellCommandString(sc) }
func (sc Coproc) String() string        { return shellCommandString(sc) }
func (sc FunctionDef) String() string   { return shellCommandString(sc) }

func shellCommandString(sc ShellCommand) string {
	return render(func(pr *printer) { pr.shellCommand(sc); pr.str("\n"); pr.flushHeredocs() })
}

func (rd FileRedir) String() string { return render(func(pr *printer) { pr.redir(rd) }) }
func (hd *Heredoc) String() string {
	return render(func(pr *printer) { pr.redir(hd); pr.str("\n"); pr.flushHeredocs() })
}
