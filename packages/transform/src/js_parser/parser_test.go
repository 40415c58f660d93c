package js_parser_test

import (
	"testing"

	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/js_ast"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/js_parser"
)

func parse(t *testing.T, src string) *js_ast.Program {
	t.Helper()
	prog, err := js_parser.Parse(src, "test.tsx")
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return prog
}

func firstStmt(t *testing.T, src string) js_ast.Stmt {
	t.Helper()
	prog := parse(t, src)
	if len(prog.Body) == 0 {
		t.Fatalf("Parse(%q) produced no statements", src)
	}
	return prog.Body[0]
}

func TestParseVarDecl(t *testing.T) {
	decl, ok := firstStmt(t, "var a = '字面量';").(*js_ast.VarDecl)
	if !ok {
		t.Fatal("expected a var declaration")
	}
	if decl.Kind != "var" || len(decl.Decls) != 1 {
		t.Fatalf("got kind %q with %d declarators", decl.Kind, len(decl.Decls))
	}
	lit, ok := decl.Decls[0].Init.(*js_ast.StringLit)
	if !ok || lit.Value != "字面量" {
		t.Fatalf("got initializer %#v", decl.Decls[0].Init)
	}
}

func TestParseImportForms(t *testing.T) {
	cases := []struct {
		src    string
		specs  int
		source string
	}{
		{"import i18n from 'i18n';", 1, "i18n"},
		{"import * as ns from 'mod';", 1, "mod"},
		{"import def, { a, b as c } from 'mod';", 3, "mod"},
		{"import 'polyfill';", 0, "polyfill"},
	}
	for _, tc := range cases {
		decl, ok := firstStmt(t, tc.src).(*js_ast.ImportDecl)
		if !ok {
			t.Fatalf("parsing %q: expected an import declaration", tc.src)
		}
		if len(decl.Specifiers) != tc.specs || decl.Source.Value != tc.source {
			t.Errorf("parsing %q: got %d specifiers from %q", tc.src, len(decl.Specifiers), decl.Source.Value)
		}
	}
}

func TestParseTemplateLiteral(t *testing.T) {
	decl := firstStmt(t, "const s = `前${x}后${y}`;").(*js_ast.VarDecl)
	lit, ok := decl.Decls[0].Init.(*js_ast.TemplateLit)
	if !ok {
		t.Fatal("expected a template literal")
	}
	if len(lit.Quasis) != 3 || len(lit.Exprs) != 2 {
		t.Fatalf("got %d quasis and %d expressions", len(lit.Quasis), len(lit.Exprs))
	}
	if lit.Quasis[0].Cooked != "前" || lit.Quasis[1].Cooked != "后" || lit.Quasis[2].Cooked != "" {
		t.Errorf("got quasis %q %q %q", lit.Quasis[0].Cooked, lit.Quasis[1].Cooked, lit.Quasis[2].Cooked)
	}
}

func TestParseObjectLiteralKeys(t *testing.T) {
	decl := firstStmt(t, "var o = { '键名': 10, 键名2: 20, [k]: 30 };").(*js_ast.VarDecl)
	obj := decl.Decls[0].Init.(*js_ast.ObjectLit)
	if len(obj.Props) != 3 {
		t.Fatalf("got %d members", len(obj.Props))
	}
	first := obj.Props[0].(*js_ast.Property)
	if _, ok := first.Key.(*js_ast.StringLit); !ok || first.Computed {
		t.Errorf("first key: got %#v computed=%v", first.Key, first.Computed)
	}
	second := obj.Props[1].(*js_ast.Property)
	if ident, ok := second.Key.(*js_ast.Ident); !ok || ident.Name != "键名2" {
		t.Errorf("second key: got %#v", second.Key)
	}
	third := obj.Props[2].(*js_ast.Property)
	if !third.Computed {
		t.Error("third key must be computed")
	}
}

func TestParseArrowFunctions(t *testing.T) {
	decl := firstStmt(t, "const f = async (a, b = 1) => a + b;").(*js_ast.VarDecl)
	arrow, ok := decl.Decls[0].Init.(*js_ast.ArrowFunc)
	if !ok {
		t.Fatal("expected an arrow function")
	}
	if !arrow.Async || len(arrow.Params) != 2 {
		t.Fatalf("got async=%v with %d params", arrow.Async, len(arrow.Params))
	}
	if _, ok := arrow.Body.(*js_ast.BinaryExpr); !ok {
		t.Fatalf("got body %#v", arrow.Body)
	}

	decl = firstStmt(t, "const g = x => x;").(*js_ast.VarDecl)
	arrow = decl.Decls[0].Init.(*js_ast.ArrowFunc)
	if len(arrow.Params) != 1 {
		t.Fatalf("got %d params", len(arrow.Params))
	}
}

func TestParseParenthesizedSequenceIsNotAnArrow(t *testing.T) {
	stmt := firstStmt(t, "(a, b);").(*js_ast.ExprStmt)
	paren, ok := stmt.X.(*js_ast.ParenExpr)
	if !ok {
		t.Fatalf("got %#v", stmt.X)
	}
	if _, ok := paren.X.(*js_ast.SeqExpr); !ok {
		t.Fatalf("got inner %#v", paren.X)
	}
}

func TestParseAsConstAssertion(t *testing.T) {
	decl := firstStmt(t, "const x = '中文' as const;").(*js_ast.VarDecl)
	as, ok := decl.Decls[0].Init.(*js_ast.TSAsExpr)
	if !ok {
		t.Fatal("expected an as-assertion")
	}
	ref, ok := as.Type.(*js_ast.TSTypeRef)
	if !ok || ref.Name != "const" {
		t.Fatalf("got type %#v", as.Type)
	}
}

func TestParseTypeAliasAndAnnotations(t *testing.T) {
	prog := parse(t, "type T = '类型' | number;\nvar a: T = 1;")
	alias, ok := prog.Body[0].(*js_ast.TypeAliasDecl)
	if !ok {
		t.Fatal("expected a type alias")
	}
	union, ok := alias.Type.(*js_ast.TSUnionType)
	if !ok || len(union.Types) != 2 {
		t.Fatalf("got %#v", alias.Type)
	}
	decl := prog.Body[1].(*js_ast.VarDecl)
	if decl.Decls[0].Type == nil {
		t.Error("annotation was dropped")
	}
}

func TestParseTypeUsedAsVariableName(t *testing.T) {
	decl, ok := firstStmt(t, "const type = 1;").(*js_ast.VarDecl)
	if !ok {
		t.Fatal("expected a var declaration")
	}
	ident := decl.Decls[0].Name.(*js_ast.Ident)
	if ident.Name != "type" {
		t.Fatalf("got %q", ident.Name)
	}
	stmt, ok := firstStmt(t, "type = 2;").(*js_ast.ExprStmt)
	if !ok {
		t.Fatal("expected an expression statement")
	}
	if _, ok := stmt.X.(*js_ast.AssignExpr); !ok {
		t.Fatalf("got %#v", stmt.X)
	}
}

func TestParseGenericFunction(t *testing.T) {
	decl := firstStmt(t, "function id<T>(x: T): T { return x; }").(*js_ast.FuncDecl)
	if decl.TypeParams != "<T>" {
		t.Errorf("got type params %q", decl.TypeParams)
	}
	if len(decl.Params) != 1 || decl.Params[0].Type == nil || decl.ReturnType == nil {
		t.Error("parameter or return annotations were dropped")
	}
}

func TestParseJSXElement(t *testing.T) {
	decl := firstStmt(t, `const el = <div title="标题" on={fn}>中文<br />嵌套</div>;`).(*js_ast.VarDecl)
	el, ok := decl.Decls[0].Init.(*js_ast.JSXElement)
	if !ok {
		t.Fatal("expected a JSX element")
	}
	if el.Opening.Name != "div" || len(el.Opening.Attrs) != 2 {
		t.Fatalf("got tag %q with %d attrs", el.Opening.Name, len(el.Opening.Attrs))
	}
	title := el.Opening.Attrs[0].(*js_ast.JSXAttr)
	if lit, ok := title.Value.(*js_ast.StringLit); !ok || lit.Value != "标题" {
		t.Fatalf("got title value %#v", title.Value)
	}
	if len(el.Children) != 3 {
		t.Fatalf("got %d children", len(el.Children))
	}
	if text, ok := el.Children[0].(*js_ast.JSXText); !ok || text.Value != "中文" {
		t.Fatalf("got first child %#v", el.Children[0])
	}
	br, ok := el.Children[1].(*js_ast.JSXElement)
	if !ok || !br.Opening.SelfClosing {
		t.Fatalf("got second child %#v", el.Children[1])
	}
}

func TestParseJSXFragment(t *testing.T) {
	decl := firstStmt(t, "const el = <>{x}</>;").(*js_ast.VarDecl)
	frag, ok := decl.Decls[0].Init.(*js_ast.JSXFragment)
	if !ok {
		t.Fatal("expected a JSX fragment")
	}
	if len(frag.Children) != 1 {
		t.Fatalf("got %d children", len(frag.Children))
	}
	if _, ok := frag.Children[0].(*js_ast.JSXExprContainer); !ok {
		t.Fatalf("got child %#v", frag.Children[0])
	}
}

func TestParseForInAndForOf(t *testing.T) {
	stmt := firstStmt(t, "for (const k in o) { f(k); }").(*js_ast.ForInStmt)
	if stmt.Of {
		t.Error("expected for-in, got for-of")
	}
	stmt = firstStmt(t, "for (const v of xs) { f(v); }").(*js_ast.ForInStmt)
	if !stmt.Of {
		t.Error("expected for-of")
	}
}

func TestParseAutomaticSemicolonInsertion(t *testing.T) {
	prog := parse(t, "let a = 1\nlet b = 2\nreturnValue()")
	if len(prog.Body) != 3 {
		t.Fatalf("got %d statements", len(prog.Body))
	}
}

func TestParseLeadingComments(t *testing.T) {
	prog := parse(t, "// note\nvar a = 1;")
	comments := prog.Body[0].LeadingComments()
	if len(comments) != 1 || comments[0].Text != "// note" {
		t.Fatalf("got %#v", comments)
	}
}

func TestParseErrorReportsLocation(t *testing.T) {
	_, err := js_parser.Parse("var = 1;", "broken.js")
	if err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestParseDynamicImportIsACall(t *testing.T) {
	stmt, ok := firstStmt(t, "import('mod');").(*js_ast.ExprStmt)
	if !ok {
		t.Fatal("expected an expression statement")
	}
	if _, ok := stmt.X.(*js_ast.CallExpr); !ok {
		t.Fatalf("got %#v", stmt.X)
	}
}
