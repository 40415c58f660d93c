package emitter_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/emitter"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/js_parser"
)

// expectEmit parses src and checks the printed output. The printer
// normalizes formatting, so want is the normalized form, not src.
func expectEmit(t *testing.T, src, want string) {
	t.Helper()
	prog, err := js_parser.Parse(src, "test.tsx")
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	got, err := emitter.Emit(prog)
	if err != nil {
		t.Fatalf("Emit(%q) failed: %v", src, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("emit mismatch for %q (-want +got):\n%s", src, diff)
	}
}

func TestEmitVarDecl(t *testing.T) {
	expectEmit(t, "var a = '字面量';", "var a = '字面量';\n")
}

func TestEmitNormalizesStringQuotes(t *testing.T) {
	expectEmit(t, `const s = "双引号";`, "const s = '双引号';\n")
	expectEmit(t, `const s = "it's";`, "const s = 'it\\'s';\n")
}

func TestEmitImportForms(t *testing.T) {
	expectEmit(t, `import x from "mod";`, "import x from 'mod';\n")
	expectEmit(t, "import def, { a, b as c } from 'mod';", "import def, { a, b as c } from 'mod';\n")
	expectEmit(t, "import * as ns from 'mod';", "import * as ns from 'mod';\n")
	expectEmit(t, "import 'polyfill';", "import 'polyfill';\n")
}

func TestEmitExportForms(t *testing.T) {
	expectEmit(t, "export default foo;", "export default foo;\n")
	expectEmit(t, "export { a as b };", "export { a as b };\n")
	expectEmit(t, "export const n = 1;", "export const n = 1;\n")
}

func TestEmitFunctionDecl(t *testing.T) {
	expectEmit(t,
		"function add(a: number, b: number): number { return a + b; }",
		"function add(a: number, b: number): number {\n"+
			"  return a + b;\n"+
			"}\n")
}

func TestEmitGenericFunction(t *testing.T) {
	expectEmit(t,
		"function id<T>(x: T): T { return x; }",
		"function id<T>(x: T): T {\n"+
			"  return x;\n"+
			"}\n")
}

func TestEmitBracesSingleStatementBodies(t *testing.T) {
	expectEmit(t,
		"if (x) f(); else g();",
		"if (x) {\n"+
			"  f();\n"+
			"} else {\n"+
			"  g();\n"+
			"}\n")
	expectEmit(t,
		"for (let i = 0; i < 10; i++) f(i);",
		"for (let i = 0; i < 10; i++) {\n"+
			"  f(i);\n"+
			"}\n")
	expectEmit(t,
		"for (const v of xs) f(v);",
		"for (const v of xs) {\n"+
			"  f(v);\n"+
			"}\n")
}

func TestEmitElseIfChainStaysFlat(t *testing.T) {
	expectEmit(t,
		"if (a) { f(); } else if (b) { g(); } else { h(); }",
		"if (a) {\n"+
			"  f();\n"+
			"} else if (b) {\n"+
			"  g();\n"+
			"} else {\n"+
			"  h();\n"+
			"}\n")
}

func TestEmitArrowFunctions(t *testing.T) {
	// A lone parameter gains parentheses.
	expectEmit(t, "const f = x => x * 2;", "const f = (x) => x * 2;\n")
	expectEmit(t, "const g = async () => ({ a: 1 });", "const g = async () => ({ a: 1 });\n")
}

func TestEmitObjectLiteral(t *testing.T) {
	expectEmit(t, "const o = { a: 1, b, [k]: 2 };", "const o = { a: 1, b, [k]: 2 };\n")
	expectEmit(t, "const o = { ...rest, 'x y': 3 };", "const o = { ...rest, 'x y': 3 };\n")
}

func TestEmitTemplateLiteral(t *testing.T) {
	expectEmit(t, "const s = `前${x}后`;", "const s = `前${x}后`;\n")
	expectEmit(t, "const q = gql`query { a }`;", "const q = gql`query { a }`;\n")
}

func TestEmitMultilineTemplateVerbatim(t *testing.T) {
	expectEmit(t,
		"function f() { return `line1\nline2`; }",
		"function f() {\n"+
			"  return `line1\n"+
			"line2`;\n"+
			"}\n")
}

func TestEmitOptionalChain(t *testing.T) {
	expectEmit(t, "a?.b?.[c]?.();", "a?.b?.[c]?.();\n")
	expectEmit(t, "const v = x!.y;", "const v = x!.y;\n")
}

func TestEmitAsConst(t *testing.T) {
	expectEmit(t, "const x = '中文' as const;", "const x = '中文' as const;\n")
	expectEmit(t, "const y = v as string[];", "const y = v as string[];\n")
}

func TestEmitNewExpr(t *testing.T) {
	expectEmit(t, "const a = new Foo();", "const a = new Foo();\n")
	expectEmit(t, "const b = new Foo;", "const b = new Foo;\n")
}

func TestEmitSwitch(t *testing.T) {
	expectEmit(t,
		"switch (x) { case 1: f(); break; default: g(); }",
		"switch (x) {\n"+
			"  case 1:\n"+
			"    f();\n"+
			"    break;\n"+
			"  default:\n"+
			"    g();\n"+
			"}\n")
}

func TestEmitTryCatch(t *testing.T) {
	expectEmit(t,
		"try { f(); } catch (e) { g(e); }",
		"try {\n"+
			"  f();\n"+
			"} catch (e) {\n"+
			"  g(e);\n"+
			"}\n")
}

func TestEmitClass(t *testing.T) {
	expectEmit(t,
		"class A extends B { private x: number = 1; static get y() { return 2; } }",
		"class A extends B {\n"+
			"  private x: number = 1;\n"+
			"  static get y() {\n"+
			"    return 2;\n"+
			"  }\n"+
			"}\n")
}

func TestEmitInterface(t *testing.T) {
	expectEmit(t,
		"interface P { name: string; age?: number; }",
		"interface P {\n"+
			"  name: string;\n"+
			"  age?: number;\n"+
			"}\n")
}

func TestEmitTypeAlias(t *testing.T) {
	expectEmit(t, "type T = string | number;", "type T = string | number;\n")
	expectEmit(t, "type K = keyof P;", "type K = keyof P;\n")
}

func TestEmitJSX(t *testing.T) {
	expectEmit(t,
		`const el = <div title="标题">中文{x}<br /></div>;`,
		"const el = <div title=\"标题\">中文{x}<br /></div>;\n")
	expectEmit(t, "const frag = <>{x}</>;", "const frag = <>{x}</>;\n")
}

func TestEmitKeepsComments(t *testing.T) {
	expectEmit(t, "// note\nvar a = 1;", "// note\nvar a = 1;\n")
}
