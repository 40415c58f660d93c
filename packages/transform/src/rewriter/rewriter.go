package rewriter

import (
	"strings"
	"unicode"

	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/core"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/emitter"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/js_ast"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/js_parser"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/pinyin_key"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/store"
)

// Transform rewrites one unit of source code. A non-nil error means the unit
// could not be parsed or printed; the caller skips it and continues.
func Transform(src, url string, cfg Config, st *store.Store) (string, error) {
	prog, err := js_parser.Parse(src, url)
	if err != nil {
		return "", err
	}
	injectImport(prog, cfg)
	r := &rewriter{cfg: cfg, store: st}
	r.stmts(prog.Body)
	return emitter.Emit(prog)
}

// injectImport prepends the lookup import unless a top-level import already
// binds the configured identity from the configured source. Matching both
// name and source keeps re-runs idempotent.
func injectImport(prog *js_ast.Program, cfg Config) {
	if !cfg.AutoImport.Enabled {
		return
	}
	for _, stmt := range prog.Body {
		imp, ok := stmt.(*js_ast.ImportDecl)
		if !ok || imp.Source == nil || imp.Source.Value != cfg.AutoImport.Source {
			continue
		}
		for _, spec := range imp.Specifiers {
			if spec.Local == cfg.AutoImport.Identity {
				return
			}
		}
	}
	decl := js_ast.NewImportDecl(cfg.AutoImport.Identity, cfg.AutoImport.Source)
	prog.Body = append([]js_ast.Stmt{decl}, prog.Body...)
}

// normalize trims the text and removes every internal whitespace run, so the
// same phrase maps to the same key however it was spaced in source.
func normalize(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

type rewriter struct {
	cfg   Config
	store *store.Store
}

func (r *rewriter) eligible(text string) bool {
	return core.HasHan(text, r.cfg.Ranges)
}

// lookup normalizes text, derives its key, records the entry and returns the
// replacement call expression.
func (r *rewriter) lookup(text string) *js_ast.CallExpr {
	norm := normalize(text)
	key := pinyin_key.Generate(norm)
	r.store.Put(norm, key)
	return js_ast.NewCallExpr(js_ast.NewIdent(r.cfg.LookupIdentity), js_ast.NewStringLit(key))
}

// ---------------------------------------------------------------------------
// Statements

func (r *rewriter) stmts(body []js_ast.Stmt) {
	for _, stmt := range body {
		r.stmt(stmt)
	}
}

func (r *rewriter) stmt(stmt js_ast.Stmt) {
	switch s := stmt.(type) {
	case *js_ast.ImportDecl:
		// Import sources stay as written.
	case *js_ast.ExportDecl:
		if s.Decl != nil {
			r.stmt(s.Decl)
		}
		if s.Expr != nil {
			s.Expr = r.expr(s.Expr)
		}
	case *js_ast.VarDecl:
		for _, d := range s.Decls {
			// Declarator names and type annotations are never rewritten.
			if d.Init != nil {
				d.Init = r.expr(d.Init)
			}
		}
	case *js_ast.FuncDecl:
		r.params(s.Params)
		r.stmt(s.Body)
	case *js_ast.ClassDecl:
		for _, m := range s.Members {
			if m.Computed {
				m.Key = r.expr(m.Key)
			}
			if m.Value != nil {
				m.Value = r.expr(m.Value)
			}
			if m.Body != nil {
				r.params(m.Params)
				r.stmt(m.Body)
			}
		}
	case *js_ast.TypeAliasDecl, *js_ast.InterfaceDecl:
		// Pure type-level contexts; literals here have no runtime value.
	case *js_ast.ReturnStmt:
		if s.Arg != nil {
			s.Arg = r.expr(s.Arg)
		}
	case *js_ast.ThrowStmt:
		s.Arg = r.expr(s.Arg)
	case *js_ast.IfStmt:
		s.Test = r.expr(s.Test)
		r.stmt(s.Cons)
		if s.Alt != nil {
			r.stmt(s.Alt)
		}
	case *js_ast.ForStmt:
		if s.Init != nil {
			r.stmt(s.Init)
		}
		if s.Test != nil {
			s.Test = r.expr(s.Test)
		}
		if s.Update != nil {
			s.Update = r.expr(s.Update)
		}
		r.stmt(s.Body)
	case *js_ast.ForInStmt:
		s.Right = r.expr(s.Right)
		r.stmt(s.Body)
	case *js_ast.WhileStmt:
		s.Test = r.expr(s.Test)
		r.stmt(s.Body)
	case *js_ast.SwitchStmt:
		s.Disc = r.expr(s.Disc)
		for _, c := range s.Cases {
			if c.Test != nil {
				c.Test = r.expr(c.Test)
			}
			r.stmts(c.Body)
		}
	case *js_ast.TryStmt:
		r.stmt(s.Block)
		if s.Catch != nil {
			r.stmt(s.Catch)
		}
		if s.Finally != nil {
			r.stmt(s.Finally)
		}
	case *js_ast.BreakStmt, *js_ast.ContinueStmt:
	case *js_ast.BlockStmt:
		r.stmts(s.Body)
	case *js_ast.ExprStmt:
		s.X = r.expr(s.X)
	}
}

func (r *rewriter) params(params []*js_ast.Param) {
	for _, p := range params {
		if p.Default != nil {
			p.Default = r.expr(p.Default)
		}
	}
}

// ---------------------------------------------------------------------------
// Expressions

// expr rewrites an expression tree, returning the (possibly replaced) node.
func (r *rewriter) expr(expr js_ast.Expr) js_ast.Expr {
	switch x := expr.(type) {
	case *js_ast.StringLit:
		if r.eligible(x.Value) {
			return r.lookup(x.Value)
		}
	case *js_ast.TemplateLit:
		r.template(x)
	case *js_ast.TaggedTemplate:
		x.Tag = r.expr(x.Tag)
		// Static parts of a tagged template carry meaning for the tag
		// function (styled-components, gql), so only the interpolations
		// are walked.
		for i := range x.Quasi.Exprs {
			x.Quasi.Exprs[i] = r.expr(x.Quasi.Exprs[i])
		}
	case *js_ast.ArrayLit:
		for i, elem := range x.Elems {
			if elem != nil {
				x.Elems[i] = r.expr(elem)
			}
		}
	case *js_ast.ObjectLit:
		r.object(x)
	case *js_ast.SpreadElement:
		x.Arg = r.expr(x.Arg)
	case *js_ast.FuncExpr:
		r.params(x.Params)
		r.stmt(x.Body)
	case *js_ast.ArrowFunc:
		r.params(x.Params)
		switch body := x.Body.(type) {
		case *js_ast.BlockStmt:
			r.stmt(body)
		case js_ast.Expr:
			x.Body = r.expr(body)
		}
	case *js_ast.CallExpr:
		x.Callee = r.expr(x.Callee)
		for i := range x.Args {
			x.Args[i] = r.expr(x.Args[i])
		}
	case *js_ast.NewExpr:
		x.Callee = r.expr(x.Callee)
		for i := range x.Args {
			x.Args[i] = r.expr(x.Args[i])
		}
	case *js_ast.MemberExpr:
		x.Obj = r.expr(x.Obj)
		if x.Computed {
			x.Prop = r.expr(x.Prop)
		}
	case *js_ast.UnaryExpr:
		x.Arg = r.expr(x.Arg)
	case *js_ast.UpdateExpr:
		x.Arg = r.expr(x.Arg)
	case *js_ast.BinaryExpr:
		x.Lhs = r.expr(x.Lhs)
		x.Rhs = r.expr(x.Rhs)
	case *js_ast.AssignExpr:
		x.Target = r.expr(x.Target)
		x.Value = r.expr(x.Value)
	case *js_ast.CondExpr:
		x.Test = r.expr(x.Test)
		x.Cons = r.expr(x.Cons)
		x.Alt = r.expr(x.Alt)
	case *js_ast.SeqExpr:
		for i := range x.Exprs {
			x.Exprs[i] = r.expr(x.Exprs[i])
		}
	case *js_ast.ParenExpr:
		x.X = r.expr(x.X)
	case *js_ast.TSAsExpr:
		// The type side is a type-level context and is never entered.
		x.X = r.expr(x.X)
	case *js_ast.TSNonNullExpr:
		x.X = r.expr(x.X)
	case *js_ast.JSXElement:
		r.jsxElement(x)
	case *js_ast.JSXFragment:
		x.Children = r.jsxChildren(x.Children)
	}
	return expr
}

// template splices every eligible static segment into empty boundary quasis
// with a lookup interpolation, preserving dynamic interpolations in order.
func (r *rewriter) template(lit *js_ast.TemplateLit) {
	quasis := make([]*js_ast.TemplateElement, 0, len(lit.Quasis))
	exprs := make([]js_ast.Expr, 0, len(lit.Exprs))
	for i, q := range lit.Quasis {
		if r.eligible(q.Cooked) {
			quasis = append(quasis, js_ast.NewTemplateElement(""))
			exprs = append(exprs, r.lookup(q.Cooked))
			quasis = append(quasis, js_ast.NewTemplateElement(""))
		} else {
			quasis = append(quasis, q)
		}
		if i < len(lit.Exprs) {
			exprs = append(exprs, r.expr(lit.Exprs[i]))
		}
	}
	lit.Quasis = quasis
	lit.Exprs = exprs
}

// object rewrites property keys into computed lookup keys and recurses into
// values independently.
func (r *rewriter) object(lit *js_ast.ObjectLit) {
	for _, member := range lit.Props {
		prop, ok := member.(*js_ast.Property)
		if !ok {
			spread := member.(*js_ast.SpreadElement)
			spread.Arg = r.expr(spread.Arg)
			continue
		}
		if prop.Computed {
			prop.Key = r.expr(prop.Key)
		} else if prop.Kind == "" && !prop.Method {
			keyText := ""
			switch key := prop.Key.(type) {
			case *js_ast.StringLit:
				keyText = key.Value
			case *js_ast.Ident:
				keyText = key.Name
			}
			if keyText != "" && r.eligible(keyText) {
				// A rewritten shorthand keeps its identifier as the value.
				prop.Shorthand = false
				prop.Computed = true
				prop.Key = r.lookup(keyText)
			}
		}
		if prop.Shorthand {
			continue
		}
		prop.Value = r.expr(prop.Value)
	}
}

func (r *rewriter) jsxElement(el *js_ast.JSXElement) {
	for _, attr := range el.Opening.Attrs {
		switch a := attr.(type) {
		case *js_ast.JSXAttr:
			switch v := a.Value.(type) {
			case *js_ast.StringLit:
				if r.eligible(v.Value) {
					a.Value = js_ast.NewJSXExprContainer(r.lookup(v.Value))
				}
			case *js_ast.JSXExprContainer:
				if v.X != nil {
					v.X = r.expr(v.X)
				}
			}
		case *js_ast.JSXSpreadAttr:
			a.Arg = r.expr(a.Arg)
		}
	}
	el.Children = r.jsxChildren(el.Children)
}

func (r *rewriter) jsxChildren(children []js_ast.Node) []js_ast.Node {
	for i, child := range children {
		switch c := child.(type) {
		case *js_ast.JSXText:
			if r.eligible(c.Value) {
				children[i] = js_ast.NewJSXExprContainer(r.lookup(c.Value))
			}
		case *js_ast.JSXExprContainer:
			if c.X != nil {
				c.X = r.expr(c.X)
			}
		case *js_ast.JSXElement:
			r.jsxElement(c)
		case *js_ast.JSXFragment:
			c.Children = r.jsxChildren(c.Children)
		}
	}
	return children
}
