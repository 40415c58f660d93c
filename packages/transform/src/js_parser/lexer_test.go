package js_parser_test

import (
	"testing"

	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/js_parser"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/util"
)

func newLexer(src string) *js_parser.Lexer {
	return js_parser.NewLexer(util.NewParseSourceFile(src, "test.ts"))
}

func expectIdent(t *testing.T, l *js_parser.Lexer, name string) {
	t.Helper()
	if l.Token != js_parser.TokenIdent || l.Str != name {
		t.Fatalf("expected identifier %q, got %v %q", name, l.Token, l.Str)
	}
	l.Next()
}

func expectPunct(t *testing.T, l *js_parser.Lexer, s string) {
	t.Helper()
	if l.Token != js_parser.TokenPunct || l.Str != s {
		t.Fatalf("expected punctuator %q, got %v %q", s, l.Token, l.Str)
	}
	l.Next()
}

func expectString(t *testing.T, l *js_parser.Lexer, value string) {
	t.Helper()
	if l.Token != js_parser.TokenString || l.Str != value {
		t.Fatalf("expected string %q, got %v %q", value, l.Token, l.Str)
	}
	l.Next()
}

func TestScanSimpleStatement(t *testing.T) {
	l := newLexer("var a = '字面量';")
	expectIdent(t, l, "var")
	expectIdent(t, l, "a")
	expectPunct(t, l, "=")
	expectString(t, l, "字面量")
	expectPunct(t, l, ";")
	if l.Token != js_parser.TokenEOF {
		t.Fatalf("expected end of file, got %v %q", l.Token, l.Str)
	}
}

func TestScanStringEscapes(t *testing.T) {
	l := newLexer(`'a\n\t中\u{6587}'`)
	if l.Token != js_parser.TokenString || l.Str != "a\n\t中文" {
		t.Fatalf("got %v %q", l.Token, l.Str)
	}
}

func TestScanGreedyPunctuators(t *testing.T) {
	l := newLexer("a >>>= b ?? c?.d")
	expectIdent(t, l, "a")
	expectPunct(t, l, ">>>=")
	expectIdent(t, l, "b")
	expectPunct(t, l, "??")
	expectIdent(t, l, "c")
	expectPunct(t, l, "?.")
	expectIdent(t, l, "d")
}

func TestScanNumbers(t *testing.T) {
	for _, src := range []string{"0x1F", "1_000", "1.5e-3", ".25", "10n"} {
		l := newLexer(src)
		if l.Token != js_parser.TokenNumber || l.Raw != src {
			t.Errorf("scanning %q: got %v %q", src, l.Token, l.Raw)
		}
	}
}

func TestScanTemplateParts(t *testing.T) {
	l := newLexer("`a${x}b`")
	if l.Token != js_parser.TokenTemplate || l.Str != "a" || l.Tail {
		t.Fatalf("first part: got %v %q tail=%v", l.Token, l.Str, l.Tail)
	}
	l.Next()
	expectIdent(t, l, "x")
	if l.Token != js_parser.TokenPunct || l.Str != "}" {
		t.Fatalf("expected closing brace, got %v %q", l.Token, l.Str)
	}
	l.RescanTemplatePart()
	if l.Token != js_parser.TokenTemplate || l.Str != "b" || !l.Tail {
		t.Fatalf("tail part: got %v %q tail=%v", l.Token, l.Str, l.Tail)
	}
}

func TestRescanRegex(t *testing.T) {
	l := newLexer("/ab+[/]/g ")
	if l.Token != js_parser.TokenPunct || l.Str != "/" {
		t.Fatalf("expected slash, got %v %q", l.Token, l.Str)
	}
	l.RescanRegex()
	if l.Token != js_parser.TokenRegex || l.Raw != "/ab+[/]/g" {
		t.Fatalf("got %v %q", l.Token, l.Raw)
	}
}

func TestNewlineBeforeFlag(t *testing.T) {
	l := newLexer("a\nb c")
	expectIdent(t, l, "a")
	if !l.NewlineBefore {
		t.Error("expected NewlineBefore on b")
	}
	expectIdent(t, l, "b")
	if l.NewlineBefore {
		t.Error("did not expect NewlineBefore on c")
	}
}

func TestCommentsAreCollected(t *testing.T) {
	l := newLexer("// one\n/* two */ a")
	if l.Token != js_parser.TokenIdent || l.Str != "a" {
		t.Fatalf("got %v %q", l.Token, l.Str)
	}
	comments := l.TakeComments()
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Text != "// one" || comments[1].Text != "/* two */" {
		t.Errorf("got %q and %q", comments[0].Text, comments[1].Text)
	}
	if len(l.TakeComments()) != 0 {
		t.Error("TakeComments must drain the collected comments")
	}
}

func TestJSXChildScanning(t *testing.T) {
	l := newLexer("<div>中文 text</div>")
	expectPunct(t, l, "<")
	expectIdent(t, l, "div")
	if l.Token != js_parser.TokenPunct || l.Str != ">" {
		t.Fatalf("expected >, got %v %q", l.Token, l.Str)
	}
	l.NextJSXChild()
	if l.Token != js_parser.TokenJSXText || l.Str != "中文 text" {
		t.Fatalf("got %v %q", l.Token, l.Str)
	}
	l.NextJSXChild()
	if l.Token != js_parser.TokenPunct || l.Str != "<" {
		t.Fatalf("expected <, got %v %q", l.Token, l.Str)
	}
}
