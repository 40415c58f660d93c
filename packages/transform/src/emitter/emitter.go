package emitter

import (
	"fmt"
	"strings"

	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/js_ast"
)

// Emit prints a program back to source text. A non-nil error means the unit
// cannot be printed and must be skipped.
func Emit(prog *js_ast.Program) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ee, ok := r.(emitError); ok {
				out = ""
				err = fmt.Errorf("%s", string(ee))
				return
			}
			panic(r)
		}
	}()
	e := &emitter{ctx: CreateRootEmitterVisitorContext()}
	for _, stmt := range prog.Body {
		e.emitComments(stmt.LeadingComments())
		e.emitStmt(stmt)
		e.ctx.Println("")
	}
	e.emitComments(prog.Trailing)
	return e.ctx.ToSource(), nil
}

type emitError string

type emitter struct {
	ctx *EmitterVisitorContext
}

func (e *emitter) errorf(format string, args ...interface{}) {
	panic(emitError(fmt.Sprintf(format, args...)))
}

func (e *emitter) print(s string)   { e.ctx.Print(s) }
func (e *emitter) println(s string) { e.ctx.Println(s) }

func (e *emitter) emitComments(cs []*js_ast.Comment) {
	for _, c := range cs {
		e.println(c.Text)
	}
}

// ---------------------------------------------------------------------------
// Statements

func (e *emitter) emitStmt(stmt js_ast.Stmt) {
	switch s := stmt.(type) {
	case *js_ast.ImportDecl:
		e.emitImport(s)
	case *js_ast.ExportDecl:
		e.emitExport(s)
	case *js_ast.VarDecl:
		e.emitVarDeclInner(s)
		e.print(";")
	case *js_ast.FuncDecl:
		if s.Async {
			e.print("async ")
		}
		e.print("function")
		if s.Generator {
			e.print("*")
		}
		e.print(" " + s.Name.Name + s.TypeParams)
		e.emitParams(s.Params)
		e.emitReturnType(s.ReturnType)
		e.print(" ")
		e.emitBlock(s.Body)
	case *js_ast.ClassDecl:
		e.emitClass(s)
	case *js_ast.TypeAliasDecl:
		e.print("type " + s.Name.Name + s.TypeParams + " = ")
		e.emitType(s.Type)
		e.print(";")
	case *js_ast.InterfaceDecl:
		e.emitInterface(s)
	case *js_ast.ReturnStmt:
		e.print("return")
		if s.Arg != nil {
			e.print(" ")
			e.emitExpr(s.Arg)
		}
		e.print(";")
	case *js_ast.ThrowStmt:
		e.print("throw ")
		e.emitExpr(s.Arg)
		e.print(";")
	case *js_ast.IfStmt:
		e.emitIf(s)
	case *js_ast.ForStmt:
		e.print("for (")
		switch init := s.Init.(type) {
		case nil:
		case *js_ast.VarDecl:
			e.emitVarDeclInner(init)
		case *js_ast.ExprStmt:
			e.emitExpr(init.X)
		default:
			e.errorf("unsupported for-loop initializer %T", s.Init)
		}
		e.print("; ")
		if s.Test != nil {
			e.emitExpr(s.Test)
		}
		e.print("; ")
		if s.Update != nil {
			e.emitExpr(s.Update)
		}
		e.print(")")
		e.emitBody(s.Body)
	case *js_ast.ForInStmt:
		e.print("for (")
		switch left := s.Left.(type) {
		case *js_ast.VarDecl:
			e.emitVarDeclInner(left)
		case *js_ast.ExprStmt:
			e.emitExpr(left.X)
		default:
			e.errorf("unsupported for-in target %T", s.Left)
		}
		if s.Of {
			e.print(" of ")
		} else {
			e.print(" in ")
		}
		e.emitExpr(s.Right)
		e.print(")")
		e.emitBody(s.Body)
	case *js_ast.WhileStmt:
		e.print("while (")
		e.emitExpr(s.Test)
		e.print(")")
		e.emitBody(s.Body)
	case *js_ast.SwitchStmt:
		e.emitSwitch(s)
	case *js_ast.TryStmt:
		e.emitTry(s)
	case *js_ast.BreakStmt:
		e.print("break")
		if s.Label != "" {
			e.print(" " + s.Label)
		}
		e.print(";")
	case *js_ast.ContinueStmt:
		e.print("continue")
		if s.Label != "" {
			e.print(" " + s.Label)
		}
		e.print(";")
	case *js_ast.BlockStmt:
		e.emitBlock(s)
	case *js_ast.ExprStmt:
		e.emitExpr(s.X)
		e.print(";")
	default:
		e.errorf("unsupported statement %T", stmt)
	}
}

func (e *emitter) emitBlock(block *js_ast.BlockStmt) {
	if len(block.Body) == 0 {
		e.print("{}")
		return
	}
	e.println("{")
	e.ctx.IncIndent()
	for _, stmt := range block.Body {
		e.emitComments(stmt.LeadingComments())
		e.emitStmt(stmt)
		e.println("")
	}
	e.ctx.DecIndent()
	e.print("}")
}

// emitBody prints a loop or conditional body, bracing single statements.
func (e *emitter) emitBody(stmt js_ast.Stmt) {
	e.print(" ")
	if block, ok := stmt.(*js_ast.BlockStmt); ok {
		e.emitBlock(block)
		return
	}
	e.println("{")
	e.ctx.IncIndent()
	e.emitStmt(stmt)
	e.println("")
	e.ctx.DecIndent()
	e.print("}")
}

func (e *emitter) emitIf(s *js_ast.IfStmt) {
	e.print("if (")
	e.emitExpr(s.Test)
	e.print(")")
	e.emitBody(s.Cons)
	if s.Alt == nil {
		return
	}
	e.print(" else")
	if alt, ok := s.Alt.(*js_ast.IfStmt); ok {
		e.print(" ")
		e.emitIf(alt)
		return
	}
	e.emitBody(s.Alt)
}

func (e *emitter) emitSwitch(s *js_ast.SwitchStmt) {
	e.print("switch (")
	e.emitExpr(s.Disc)
	e.println(") {")
	e.ctx.IncIndent()
	for _, c := range s.Cases {
		if c.Test != nil {
			e.print("case ")
			e.emitExpr(c.Test)
			e.println(":")
		} else {
			e.println("default:")
		}
		e.ctx.IncIndent()
		for _, stmt := range c.Body {
			e.emitComments(stmt.LeadingComments())
			e.emitStmt(stmt)
			e.println("")
		}
		e.ctx.DecIndent()
	}
	e.ctx.DecIndent()
	e.print("}")
}

func (e *emitter) emitTry(s *js_ast.TryStmt) {
	e.print("try ")
	e.emitBlock(s.Block)
	if s.Catch != nil {
		e.print(" catch ")
		if s.CatchParam != nil {
			e.print("(")
			e.emitExpr(s.CatchParam)
			e.print(") ")
		}
		e.emitBlock(s.Catch)
	}
	if s.Finally != nil {
		e.print(" finally ")
		e.emitBlock(s.Finally)
	}
}

func (e *emitter) emitVarDeclInner(decl *js_ast.VarDecl) {
	e.print(decl.Kind + " ")
	for i, d := range decl.Decls {
		if i > 0 {
			e.print(", ")
		}
		e.emitExpr(d.Name)
		if d.Type != nil {
			e.print(": ")
			e.emitType(d.Type)
		}
		if d.Init != nil {
			e.print(" = ")
			e.emitExpr(d.Init)
		}
	}
}

func (e *emitter) emitImport(decl *js_ast.ImportDecl) {
	e.print("import ")
	if decl.TypeOnly {
		e.print("type ")
	}
	if len(decl.Specifiers) == 0 {
		e.print(quoteSingle(decl.Source.Value) + ";")
		return
	}
	var named []string
	wrote := false
	for _, spec := range decl.Specifiers {
		switch spec.Kind {
		case js_ast.ImportDefault:
			e.print(spec.Local)
			wrote = true
		case js_ast.ImportNamespace:
			if wrote {
				e.print(", ")
			}
			e.print("* as " + spec.Local)
			wrote = true
		case js_ast.ImportNamed:
			if spec.Imported == spec.Local {
				named = append(named, spec.Local)
			} else {
				named = append(named, spec.Imported+" as "+spec.Local)
			}
		}
	}
	if len(named) > 0 {
		if wrote {
			e.print(", ")
		}
		e.print("{ " + strings.Join(named, ", ") + " }")
	}
	e.print(" from " + quoteSingle(decl.Source.Value) + ";")
}

func (e *emitter) emitExport(decl *js_ast.ExportDecl) {
	e.print("export ")
	switch {
	case decl.Default:
		e.print("default ")
		if decl.Decl != nil {
			e.emitStmt(decl.Decl)
		} else {
			e.emitExpr(decl.Expr)
			e.print(";")
		}
	case decl.Specifiers != nil:
		var named []string
		for _, spec := range decl.Specifiers {
			if spec.Imported == spec.Local {
				named = append(named, spec.Local)
			} else {
				named = append(named, spec.Local+" as "+spec.Imported)
			}
		}
		e.print("{ " + strings.Join(named, ", ") + " }")
		if decl.Source != nil {
			e.print(" from " + quoteSingle(decl.Source.Value))
		}
		e.print(";")
	default:
		e.emitStmt(decl.Decl)
	}
}

func (e *emitter) emitClass(decl *js_ast.ClassDecl) {
	e.print("class " + decl.Name.Name + decl.TypeParams)
	if decl.SuperClass != nil {
		e.print(" extends ")
		e.emitExpr(decl.SuperClass)
	}
	if len(decl.Members) == 0 {
		e.print(" {}")
		return
	}
	e.println(" {")
	e.ctx.IncIndent()
	for _, m := range decl.Members {
		e.emitClassMember(m)
		e.println("")
	}
	e.ctx.DecIndent()
	e.print("}")
}

func (e *emitter) emitClassMember(m *js_ast.ClassMember) {
	for _, mod := range m.Modifiers {
		e.print(mod + " ")
	}
	if m.Static {
		e.print("static ")
	}
	if m.Async {
		e.print("async ")
	}
	switch m.Kind {
	case js_ast.ClassGetter:
		e.print("get ")
	case js_ast.ClassSetter:
		e.print("set ")
	}
	if m.Computed {
		e.print("[")
		e.emitExpr(m.Key)
		e.print("]")
	} else {
		e.emitExpr(m.Key)
	}
	if m.Optional {
		e.print("?")
	}
	if m.Kind == js_ast.ClassProperty {
		if m.Type != nil {
			e.print(": ")
			e.emitType(m.Type)
		}
		if m.Value != nil {
			e.print(" = ")
			e.emitExpr(m.Value)
		}
		e.print(";")
		return
	}
	e.print(m.TypeParams)
	e.emitParams(m.Params)
	e.emitReturnType(m.ReturnType)
	e.print(" ")
	e.emitBlock(m.Body)
}

func (e *emitter) emitInterface(decl *js_ast.InterfaceDecl) {
	e.print("interface " + decl.Name.Name + decl.TypeParams)
	if len(decl.Extends) > 0 {
		e.print(" extends ")
		for i, t := range decl.Extends {
			if i > 0 {
				e.print(", ")
			}
			e.emitType(t)
		}
	}
	if len(decl.Members) == 0 {
		e.print(" {}")
		return
	}
	e.println(" {")
	e.ctx.IncIndent()
	for _, m := range decl.Members {
		e.emitTypeMember(m)
		e.println(";")
	}
	e.ctx.DecIndent()
	e.print("}")
}

func (e *emitter) emitTypeMember(m *js_ast.TSPropertySignature) {
	e.emitExpr(m.Key)
	if m.Optional {
		e.print("?")
	}
	if m.Type != nil {
		e.print(": ")
		e.emitType(m.Type)
	}
}

func (e *emitter) emitParams(params []*js_ast.Param) {
	e.print("(")
	for i, param := range params {
		if i > 0 {
			e.print(", ")
		}
		if param.Rest {
			e.print("...")
		}
		e.emitExpr(param.Name)
		if param.Optional {
			e.print("?")
		}
		if param.Type != nil {
			e.print(": ")
			e.emitType(param.Type)
		}
		if param.Default != nil {
			e.print(" = ")
			e.emitExpr(param.Default)
		}
	}
	e.print(")")
}

func (e *emitter) emitReturnType(t js_ast.TSType) {
	if t != nil {
		e.print(": ")
		e.emitType(t)
	}
}
