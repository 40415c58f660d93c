package emitter

import (
	"fmt"
	"strings"

	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/js_ast"
)

// wordOperators are unary operators spelled as keywords.
var wordOperators = map[string]bool{
	"typeof": true, "void": true, "delete": true, "await": true,
	"yield": true, "yield*": true,
}

func (e *emitter) emitExpr(expr js_ast.Expr) {
	switch x := expr.(type) {
	case *js_ast.Ident:
		e.print(x.Name)
	case *js_ast.StringLit:
		e.print(quoteSingle(x.Value))
	case *js_ast.NumberLit:
		e.print(x.Raw)
	case *js_ast.BoolLit:
		if x.Value {
			e.print("true")
		} else {
			e.print("false")
		}
	case *js_ast.NullLit:
		e.print("null")
	case *js_ast.RegexLit:
		e.print(x.Raw)
	case *js_ast.TemplateLit:
		e.emitTemplate(x)
	case *js_ast.TaggedTemplate:
		e.emitExpr(x.Tag)
		e.emitTemplate(x.Quasi)
	case *js_ast.ArrayLit:
		e.print("[")
		for i, elem := range x.Elems {
			if i > 0 {
				e.print(", ")
			}
			if elem != nil {
				e.emitExpr(elem)
			}
		}
		e.print("]")
	case *js_ast.ObjectLit:
		e.emitObject(x)
	case *js_ast.SpreadElement:
		e.print("...")
		e.emitExpr(x.Arg)
	case *js_ast.FuncExpr:
		e.emitFuncExpr(x)
	case *js_ast.ArrowFunc:
		e.emitArrow(x)
	case *js_ast.CallExpr:
		e.emitExpr(x.Callee)
		if x.Optional {
			e.print("?.")
		}
		e.emitArgs(x.Args)
	case *js_ast.NewExpr:
		e.print("new ")
		e.emitExpr(x.Callee)
		if x.Args != nil {
			e.emitArgs(x.Args)
		}
	case *js_ast.MemberExpr:
		e.emitExpr(x.Obj)
		switch {
		case x.Computed && x.Optional:
			e.print("?.[")
			e.emitExpr(x.Prop)
			e.print("]")
		case x.Computed:
			e.print("[")
			e.emitExpr(x.Prop)
			e.print("]")
		case x.Optional:
			e.print("?.")
			e.emitExpr(x.Prop)
		default:
			e.print(".")
			e.emitExpr(x.Prop)
		}
	case *js_ast.UnaryExpr:
		e.print(x.Op)
		if wordOperators[x.Op] {
			e.print(" ")
		}
		e.emitExpr(x.Arg)
	case *js_ast.UpdateExpr:
		if x.Prefix {
			e.print(x.Op)
			e.emitExpr(x.Arg)
		} else {
			e.emitExpr(x.Arg)
			e.print(x.Op)
		}
	case *js_ast.BinaryExpr:
		e.emitExpr(x.Lhs)
		e.print(" " + x.Op + " ")
		e.emitExpr(x.Rhs)
	case *js_ast.AssignExpr:
		e.emitExpr(x.Target)
		e.print(" " + x.Op + " ")
		e.emitExpr(x.Value)
	case *js_ast.CondExpr:
		e.emitExpr(x.Test)
		e.print(" ? ")
		e.emitExpr(x.Cons)
		e.print(" : ")
		e.emitExpr(x.Alt)
	case *js_ast.SeqExpr:
		for i, sub := range x.Exprs {
			if i > 0 {
				e.print(", ")
			}
			e.emitExpr(sub)
		}
	case *js_ast.ParenExpr:
		e.print("(")
		e.emitExpr(x.X)
		e.print(")")
	case *js_ast.TSAsExpr:
		e.emitExpr(x.X)
		e.print(" as ")
		e.emitType(x.Type)
	case *js_ast.TSNonNullExpr:
		e.emitExpr(x.X)
		e.print("!")
	case *js_ast.JSXElement:
		e.emitJSXElement(x)
	case *js_ast.JSXFragment:
		e.print("<>")
		e.emitJSXChildren(x.Children)
		e.print("</>")
	default:
		e.errorf("unsupported expression %T", expr)
	}
}

func (e *emitter) emitArgs(args []js_ast.Expr) {
	e.print("(")
	for i, arg := range args {
		if i > 0 {
			e.print(", ")
		}
		e.emitExpr(arg)
	}
	e.print(")")
}

func (e *emitter) emitTemplate(lit *js_ast.TemplateLit) {
	e.print("`")
	e.print(lit.Quasis[0].Raw)
	for i, x := range lit.Exprs {
		e.print("${")
		e.emitExpr(x)
		e.print("}")
		e.print(lit.Quasis[i+1].Raw)
	}
	e.print("`")
}

func (e *emitter) emitObject(lit *js_ast.ObjectLit) {
	if len(lit.Props) == 0 {
		e.print("{}")
		return
	}
	e.print("{ ")
	for i, member := range lit.Props {
		if i > 0 {
			e.print(", ")
		}
		switch m := member.(type) {
		case *js_ast.SpreadElement:
			e.print("...")
			e.emitExpr(m.Arg)
		case *js_ast.Property:
			e.emitProperty(m)
		default:
			e.errorf("unsupported object member %T", member)
		}
	}
	e.print(" }")
}

func (e *emitter) emitProperty(prop *js_ast.Property) {
	if prop.Shorthand {
		e.emitExpr(prop.Value)
		return
	}
	if prop.Kind != "" {
		e.print(prop.Kind + " ")
	}
	fe, isMethod := prop.Value.(*js_ast.FuncExpr)
	if (prop.Method || prop.Kind != "") && isMethod {
		if fe.Async {
			e.print("async ")
		}
		if fe.Generator {
			e.print("*")
		}
		e.emitPropertyKey(prop)
		e.print(fe.TypeParams)
		e.emitParams(fe.Params)
		e.emitReturnType(fe.ReturnType)
		e.print(" ")
		e.emitBlock(fe.Body)
		return
	}
	e.emitPropertyKey(prop)
	e.print(": ")
	e.emitExpr(prop.Value)
}

func (e *emitter) emitPropertyKey(prop *js_ast.Property) {
	if prop.Computed {
		e.print("[")
		e.emitExpr(prop.Key)
		e.print("]")
		return
	}
	e.emitExpr(prop.Key)
}

func (e *emitter) emitFuncExpr(fe *js_ast.FuncExpr) {
	if fe.Async {
		e.print("async ")
	}
	e.print("function")
	if fe.Generator {
		e.print("*")
	}
	if fe.Name != nil {
		e.print(" " + fe.Name.Name)
	}
	e.print(fe.TypeParams)
	e.emitParams(fe.Params)
	e.emitReturnType(fe.ReturnType)
	e.print(" ")
	e.emitBlock(fe.Body)
}

func (e *emitter) emitArrow(arrow *js_ast.ArrowFunc) {
	if arrow.Async {
		e.print("async ")
	}
	e.emitParams(arrow.Params)
	e.emitReturnType(arrow.ReturnType)
	e.print(" => ")
	switch body := arrow.Body.(type) {
	case *js_ast.BlockStmt:
		e.emitBlock(body)
	case *js_ast.ObjectLit:
		e.print("(")
		e.emitObject(body)
		e.print(")")
	case js_ast.Expr:
		e.emitExpr(body)
	default:
		e.errorf("unsupported arrow body %T", arrow.Body)
	}
}

// ---------------------------------------------------------------------------
// JSX

func (e *emitter) emitJSXElement(el *js_ast.JSXElement) {
	e.print("<" + el.Opening.Name)
	for _, attr := range el.Opening.Attrs {
		e.print(" ")
		switch a := attr.(type) {
		case *js_ast.JSXAttr:
			e.print(a.Name)
			switch v := a.Value.(type) {
			case nil:
			case *js_ast.StringLit:
				e.print("=" + quoteJSXAttr(v.Value))
			case *js_ast.JSXExprContainer:
				e.print("={")
				e.emitExpr(v.X)
				e.print("}")
			default:
				e.errorf("unsupported JSX attribute value %T", a.Value)
			}
		case *js_ast.JSXSpreadAttr:
			e.print("{...")
			e.emitExpr(a.Arg)
			e.print("}")
		default:
			e.errorf("unsupported JSX attribute %T", attr)
		}
	}
	if el.Opening.SelfClosing {
		e.print(" />")
		return
	}
	e.print(">")
	e.emitJSXChildren(el.Children)
	e.print("</" + el.Opening.Name + ">")
}

func (e *emitter) emitJSXChildren(children []js_ast.Node) {
	for _, child := range children {
		switch c := child.(type) {
		case *js_ast.JSXText:
			e.print(c.Value)
		case *js_ast.JSXExprContainer:
			e.print("{")
			if c.X != nil {
				e.emitExpr(c.X)
			}
			e.print("}")
		case *js_ast.JSXElement:
			e.emitJSXElement(c)
		case *js_ast.JSXFragment:
			e.print("<>")
			e.emitJSXChildren(c.Children)
			e.print("</>")
		default:
			e.errorf("unsupported JSX child %T", child)
		}
	}
}

// quoteSingle renders a string literal single-quoted, the form the rewriter
// emits for generated keys.
func quoteSingle(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			if r < 0x20 {
				b.WriteString(fmt.Sprintf(`\u%04x`, r))
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// quoteJSXAttr renders a JSX attribute string verbatim, choosing the quote
// that does not collide with the text.
func quoteJSXAttr(s string) string {
	if strings.Contains(s, `"`) {
		return "'" + s + "'"
	}
	return `"` + s + `"`
}

// ---------------------------------------------------------------------------
// Types

func (e *emitter) emitType(t js_ast.TSType) {
	switch x := t.(type) {
	case *js_ast.TSKeywordType:
		e.print(x.Name)
	case *js_ast.TSTypeRef:
		e.print(x.Name)
		if len(x.Args) > 0 {
			e.print("<")
			for i, arg := range x.Args {
				if i > 0 {
					e.print(", ")
				}
				e.emitType(arg)
			}
			e.print(">")
		}
	case *js_ast.TSLiteralType:
		e.emitExpr(x.Lit)
	case *js_ast.TSUnionType:
		for i, sub := range x.Types {
			if i > 0 {
				e.print(" | ")
			}
			e.emitType(sub)
		}
	case *js_ast.TSIntersectionType:
		for i, sub := range x.Types {
			if i > 0 {
				e.print(" & ")
			}
			e.emitType(sub)
		}
	case *js_ast.TSArrayType:
		e.emitType(x.Elem)
		e.print("[]")
	case *js_ast.TSParenType:
		e.print("(")
		e.emitType(x.X)
		e.print(")")
	case *js_ast.TSFunctionType:
		e.emitParams(x.Params)
		e.print(" => ")
		e.emitType(x.Return)
	case *js_ast.TSObjectType:
		if len(x.Members) == 0 {
			e.print("{}")
			return
		}
		e.print("{ ")
		for i, m := range x.Members {
			if i > 0 {
				e.print("; ")
			}
			e.emitTypeMember(m)
		}
		e.print(" }")
	case *js_ast.TSTupleType:
		e.print("[")
		for i, sub := range x.Elems {
			if i > 0 {
				e.print(", ")
			}
			e.emitType(sub)
		}
		e.print("]")
	case *js_ast.TSRestType:
		e.print("...")
		e.emitType(x.Elem)
	case *js_ast.TSTypeQuery:
		e.print("typeof " + x.Name)
	case *js_ast.TSIndexedAccessType:
		e.emitType(x.Obj)
		e.print("[")
		e.emitType(x.Index)
		e.print("]")
	case *js_ast.TSTypeOperator:
		e.print(x.Op + " ")
		e.emitType(x.X)
	case *js_ast.TSConditionalType:
		e.emitType(x.Check)
		e.print(" extends ")
		e.emitType(x.Extends)
		e.print(" ? ")
		e.emitType(x.True)
		e.print(" : ")
		e.emitType(x.False)
	default:
		e.errorf("unsupported type %T", t)
	}
}
