package parse_test

import (
	"testing"

	"github.com/elves/bashparse/pkg/parse"
	"github.com/google/go-cmp/cmp"
)

func mustParseWord(t *testing.T, src string) parse.Word {
	t.Helper()
	w, err := parse.ParseWord("test", src)
	if err != nil {
		t.Fatalf("parse word %q: %v", src, err)
	}
	return w
}

func checkWord(t *testing.T, src string, want parse.Word) {
	t.Helper()
	got := mustParseWord(t, src)
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("word %q (-want+got):\n%s", src, diff)
	}
}

func TestWordSpans(t *testing.T) {
	checkWord(t, `a\ b`, parse.Word{
		parse.Lit{R: 'a'}, parse.Escaped{R: ' '}, parse.Lit{R: 'b'},
	})

	checkWord(t, `'sq'"d$x"`, parse.Word{
		parse.SglQuoted{Text: "sq"},
		parse.DblQuoted{Word: parse.Word{
			parse.Lit{R: 'd'},
			parse.Bare{Param: parse.Param{Name: "x"}},
		}},
	})

	checkWord(t, `$'a\n'`, parse.Word{
		parse.AnsiQuoted{Word: parse.Word{parse.Lit{R: 'a'}, parse.Escaped{R: 'n'}}},
	})

	checkWord(t, `$"msg"`, parse.Word{
		parse.LocaleQuoted{Word: lit("msg")},
	})

	checkWord(t, "`a \\$x`", parse.Word{
		parse.BackQuoted{Word: parse.Word{
			parse.Lit{R: 'a'}, parse.Lit{R: ' '},
			parse.Escaped{R: '$'}, parse.Lit{R: 'x'},
		}},
	})

	checkWord(t, `$(date "+%s")`, parse.Word{parse.CmdSubst{Text: `date "+%s"`}})
	checkWord(t, `$(echo "$(date)")`, parse.Word{parse.CmdSubst{Text: `echo "$(date)"`}})
	checkWord(t, `$((1+(2*3)))`, parse.Word{parse.ArithSubst{Text: "1+(2*3)"}})
	checkWord(t, `<(sort f)`, parse.Word{parse.ProcSubst{Dir: '<', Text: "sort f"}})
	checkWord(t, `>(cat)`, parse.Word{parse.ProcSubst{Dir: '>', Text: "cat"}})

	// A $ that starts no substitution is a plain character.
	checkWord(t, `a$`, parse.Word{parse.Lit{R: 'a'}, parse.Lit{R: '$'}})
}

func TestDoubleQuoteEscapes(t *testing.T) {
	// Inside double quotes backslash only escapes $ ` " \ and newline.
	checkWord(t, `"a\$b\c"`, parse.Word{parse.DblQuoted{Word: parse.Word{
		parse.Lit{R: 'a'},
		parse.Escaped{R: '$'},
		parse.Lit{R: 'b'},
		parse.Lit{R: '\\'},
		parse.Lit{R: 'c'},
	}}})
}

func TestLineContinuation(t *testing.T) {
	checkWord(t, "a\\\nb", lit("ab"))

	got := mustParse(t, "echo a\\\nb")
	want := list(stmt(simple("echo", "ab")))
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("line continuation (-want+got):\n%s", diff)
	}
}

func param(name string) parse.Param { return parse.Param{Name: name} }

func TestParamExpansions(t *testing.T) {
	atIdx := parse.Word{parse.Lit{R: '@'}}
	bar := lit("bar")
	two := lit("2")

	tests := []struct {
		src  string
		want parse.Span
	}{
		{`$x`, parse.Bare{Param: param("x")}},
		{`$1`, parse.Bare{Param: param("1")}},
		{`$?`, parse.Bare{Param: param("?")}},
		{`${x}`, parse.Brace{Param: param("x")}},
		{`${!x}`, parse.Brace{Indirect: true, Param: param("x")}},
		{`${arr[0]}`, parse.Brace{Param: parse.Param{Name: "arr", Index: wordPtr(lit("0"))}}},
		{`${!arr[@]}`, parse.Indices{Param: parse.Param{Name: "arr", Index: &atIdx}}},
		{`${!pre@}`, parse.Prefix{Prefix: "pre", Mod: '@'}},
		{`${!pre*}`, parse.Prefix{Prefix: "pre", Mod: '*'}},
		{`${#x}`, parse.Length{Param: param("x")}},
		{`${#}`, parse.Brace{Param: param("#")}},
		{`${var:-default}`, parse.Alt{Param: param("var"), TestNull: true, Op: '-', Word: lit("default")}},
		{`${var+alt}`, parse.Alt{Param: param("var"), Op: '+', Word: lit("alt")}},
		{`${var:=d}`, parse.Alt{Param: param("var"), TestNull: true, Op: '=', Word: lit("d")}},
		{`${x:1}`, parse.Substring{Param: param("x"), Offset: lit("1")}},
		{`${x:1:2}`, parse.Substring{Param: param("x"), Offset: lit("1"), Length: &two}},
		{`${x#*/}`, parse.Delete{Param: param("x"), Shortest: true, Dir: parse.Front, Pattern: lit("*/")}},
		{`${x##*/}`, parse.Delete{Param: param("x"), Dir: parse.Front, Pattern: lit("*/")}},
		{`${x%.c}`, parse.Delete{Param: param("x"), Shortest: true, Dir: parse.Back, Pattern: lit(".c")}},
		{`${x%%.*}`, parse.Delete{Param: param("x"), Dir: parse.Back, Pattern: lit(".*")}},
		{`${var/foo/bar}`, parse.Replace{Param: param("var"), Pattern: lit("foo"), Repl: &bar}},
		{`${var//foo/bar}`, parse.Replace{Param: param("var"), All: true, Pattern: lit("foo"), Repl: &bar}},
		{`${var/#foo}`, parse.Replace{Param: param("var"), Dir: parse.Front, Pattern: lit("foo")}},
		{`${var/%foo/}`, parse.Replace{Param: param("var"), Dir: parse.Back, Pattern: lit("foo"), Repl: wordPtr(lit(""))}},
		{`${x^}`, parse.LetterCase{Param: param("x"), StartCase: true}},
		{`${x^^[aeiou]}`, parse.LetterCase{Param: param("x"), Pattern: lit("[aeiou]")}},
		{`${x,,}`, parse.LetterCase{Param: param("x"), ToLower: true}},
		{`${!x:-d}`, parse.Alt{Indirect: true, Param: param("x"), TestNull: true, Op: '-', Word: lit("d")}},
		{`${x@Q}`, parse.BadSubst{Text: "${x@Q}"}},
		{`${}`, parse.BadSubst{Text: "${}"}},
	}
	for _, test := range tests {
		got := mustParseWord(t, test.src)
		want := parse.Word{test.want}
		if diff := cmp.Diff(want, got, opts...); diff != "" {
			t.Errorf("word %q (-want+got):\n%s", test.src, diff)
		}
	}
}

func wordPtr(w parse.Word) *parse.Word { return &w }

func TestNestedParamWord(t *testing.T) {
	// Inner words are scanned recursively; braces inside balance.
	checkWord(t, `${x:-{a}}`, parse.Word{parse.Alt{
		Param: param("x"), TestNull: true, Op: '-',
		Word: lit("{a}"),
	}})

	checkWord(t, `${x:-$(c)}`, parse.Word{parse.Alt{
		Param: param("x"), TestNull: true, Op: '-',
		Word: parse.Word{parse.CmdSubst{Text: "c"}},
	}})
}
