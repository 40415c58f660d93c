// Package js_parser parses the JavaScript/TypeScript/JSX superset grammar
// into the js_ast tree and reports failures as *util.ParseError.
package js_parser

import (
	"fmt"

	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/js_ast"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/util"
)

// Parser consumes the lexer token by token. Parse errors unwind via panic
// and are converted back to errors at the Parse boundary.
type Parser struct {
	lexer *Lexer
	file  *util.ParseSourceFile
	// noIn suppresses the `in` operator while parsing a for-statement
	// header.
	noIn bool
}

// Parse parses one unit of source code. A non-nil error means the unit must
// be skipped; no partial tree is returned.
func Parse(src, url string) (prog *js_ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*util.ParseError); ok {
				prog = nil
				err = pe
				return
			}
			panic(r)
		}
	}()
	file := util.NewParseSourceFile(src, url)
	p := &Parser{lexer: NewLexer(file), file: file}
	return p.parseProgram(), nil
}

// ---------------------------------------------------------------------------
// Token helpers

func (p *Parser) next() { p.lexer.Next() }

func (p *Parser) tok() TokenType { return p.lexer.Token }

func (p *Parser) isPunct(s string) bool {
	return p.lexer.Token == TokenPunct && p.lexer.Str == s
}

func (p *Parser) isIdent(name string) bool {
	return p.lexer.Token == TokenIdent && p.lexer.Str == name
}

func (p *Parser) eatPunct(s string) bool {
	if p.isPunct(s) {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expectPunct(s string) {
	if !p.isPunct(s) {
		p.errorf("Expected %q but found %q", s, p.tokenText())
	}
	p.next()
}

func (p *Parser) expectIdent() string {
	if p.lexer.Token != TokenIdent {
		p.errorf("Expected identifier but found %q", p.tokenText())
	}
	name := p.lexer.Str
	p.next()
	return name
}

func (p *Parser) tokenText() string {
	switch p.lexer.Token {
	case TokenEOF:
		return "end of file"
	case TokenNumber, TokenRegex, TokenTemplate:
		return p.lexer.Raw
	default:
		return p.lexer.Str
	}
}

func (p *Parser) errorf(format string, args ...interface{}) {
	span := util.NewParseSourceSpan(p.lexer.Start, p.lexer.End)
	panic(util.NewParseError(span, fmt.Sprintf(format, args...)))
}

// span closes a source span opened at a captured token start.
func (p *Parser) span(start *util.ParseLocation) *util.ParseSourceSpan {
	return util.NewParseSourceSpan(start, p.lexer.PrevEnd)
}

func (p *Parser) tokenSpan() *util.ParseSourceSpan {
	return util.NewParseSourceSpan(p.lexer.Start, p.lexer.End)
}

// semicolon consumes an explicit `;` or applies automatic semicolon
// insertion at `}`, end of file or a preceding line terminator.
func (p *Parser) semicolon() {
	if p.eatPunct(";") {
		return
	}
	if p.tok() == TokenEOF || p.isPunct("}") || p.lexer.NewlineBefore {
		return
	}
	p.errorf("Expected \";\" but found %q", p.tokenText())
}

// ---------------------------------------------------------------------------
// Statements

func (p *Parser) parseProgram() *js_ast.Program {
	prog := &js_ast.Program{}
	start := p.lexer.Start
	for p.tok() != TokenEOF {
		leading := p.lexer.TakeComments()
		if p.eatPunct(";") {
			continue
		}
		stmt := p.parseStmt()
		stmt.SetLeadingComments(leading)
		prog.Body = append(prog.Body, stmt)
	}
	prog.Trailing = p.lexer.TakeComments()
	prog.SetSpan(p.span(start))
	return prog
}

func (p *Parser) parseStmt() js_ast.Stmt {
	start := p.lexer.Start
	if p.tok() == TokenIdent {
		switch p.lexer.Str {
		case "import":
			return p.parseImport(start)
		case "export":
			return p.parseExport(start)
		case "var", "let", "const":
			kind := p.lexer.Str
			p.next()
			return p.parseVarDecl(start, kind)
		case "function":
			return p.parseFuncDecl(start, false)
		case "async":
			save := *p.lexer
			p.next()
			if p.isIdent("function") && !p.lexer.NewlineBefore {
				return p.parseFuncDecl(start, true)
			}
			*p.lexer = save
		case "class":
			return p.parseClassDecl(start)
		case "type":
			if stmt := p.tryParseTypeAlias(start); stmt != nil {
				return stmt
			}
		case "interface":
			if stmt := p.tryParseInterface(start); stmt != nil {
				return stmt
			}
		case "return":
			p.next()
			stmt := &js_ast.ReturnStmt{}
			if !p.isPunct(";") && !p.isPunct("}") && p.tok() != TokenEOF && !p.lexer.NewlineBefore {
				stmt.Arg = p.parseExpr()
			}
			p.semicolon()
			stmt.SetSpan(p.span(start))
			return stmt
		case "throw":
			p.next()
			stmt := &js_ast.ThrowStmt{Arg: p.parseExpr()}
			p.semicolon()
			stmt.SetSpan(p.span(start))
			return stmt
		case "if":
			return p.parseIf(start)
		case "for":
			return p.parseFor(start)
		case "while":
			p.next()
			p.expectPunct("(")
			test := p.parseExpr()
			p.expectPunct(")")
			stmt := &js_ast.WhileStmt{Test: test, Body: p.parseStmt()}
			stmt.SetSpan(p.span(start))
			return stmt
		case "switch":
			return p.parseSwitch(start)
		case "try":
			return p.parseTry(start)
		case "break", "continue":
			kind := p.lexer.Str
			p.next()
			label := ""
			if p.tok() == TokenIdent && !p.lexer.NewlineBefore {
				label = p.lexer.Str
				p.next()
			}
			p.semicolon()
			if kind == "break" {
				stmt := &js_ast.BreakStmt{Label: label}
				stmt.SetSpan(p.span(start))
				return stmt
			}
			stmt := &js_ast.ContinueStmt{Label: label}
			stmt.SetSpan(p.span(start))
			return stmt
		}
	}
	if p.isPunct("{") {
		return p.parseBlock(start)
	}
	stmt := &js_ast.ExprStmt{X: p.parseExpr()}
	p.semicolon()
	stmt.SetSpan(p.span(start))
	return stmt
}

func (p *Parser) parseBlock(start *util.ParseLocation) *js_ast.BlockStmt {
	p.expectPunct("{")
	block := &js_ast.BlockStmt{}
	for !p.isPunct("}") {
		if p.tok() == TokenEOF {
			p.errorf("Expected \"}\" but found end of file")
		}
		leading := p.lexer.TakeComments()
		if p.eatPunct(";") {
			continue
		}
		stmt := p.parseStmt()
		stmt.SetLeadingComments(leading)
		block.Body = append(block.Body, stmt)
	}
	p.next()
	block.SetSpan(p.span(start))
	return block
}

func (p *Parser) parseImport(start *util.ParseLocation) js_ast.Stmt {
	p.next()
	if p.isPunct("(") {
		// Dynamic import is an expression, not a declaration.
		call := p.parseCallSuffix(js_ast.NewIdent("import"), false)
		stmt := &js_ast.ExprStmt{X: call}
		p.semicolon()
		stmt.SetSpan(p.span(start))
		return stmt
	}
	decl := &js_ast.ImportDecl{}
	if p.isIdent("type") {
		save := *p.lexer
		p.next()
		if p.tok() == TokenString || p.isIdent("from") {
			// `import type from ...` imports a binding named "type".
			*p.lexer = save
		} else {
			decl.TypeOnly = true
		}
	}
	if p.tok() == TokenString {
		decl.Source = p.stringLit()
		p.semicolon()
		decl.SetSpan(p.span(start))
		return decl
	}
	if p.tok() == TokenIdent && !p.isIdent("from") {
		decl.Specifiers = append(decl.Specifiers, &js_ast.ImportSpecifier{
			Kind:  js_ast.ImportDefault,
			Local: p.expectIdent(),
		})
		if !p.eatPunct(",") {
			p.expectFrom(decl)
			p.semicolon()
			decl.SetSpan(p.span(start))
			return decl
		}
	}
	switch {
	case p.isPunct("*"):
		p.next()
		if !p.isIdent("as") {
			p.errorf("Expected \"as\" but found %q", p.tokenText())
		}
		p.next()
		decl.Specifiers = append(decl.Specifiers, &js_ast.ImportSpecifier{
			Kind:  js_ast.ImportNamespace,
			Local: p.expectIdent(),
		})
	case p.isPunct("{"):
		p.next()
		for !p.isPunct("}") {
			imported := p.importedName()
			local := imported
			if p.isIdent("as") {
				p.next()
				local = p.expectIdent()
			}
			decl.Specifiers = append(decl.Specifiers, &js_ast.ImportSpecifier{
				Kind:     js_ast.ImportNamed,
				Local:    local,
				Imported: imported,
			})
			if !p.eatPunct(",") {
				break
			}
		}
		p.expectPunct("}")
	default:
		p.errorf("Expected import specifiers but found %q", p.tokenText())
	}
	p.expectFrom(decl)
	p.semicolon()
	decl.SetSpan(p.span(start))
	return decl
}

func (p *Parser) importedName() string {
	if p.tok() == TokenString {
		name := p.lexer.Str
		p.next()
		return name
	}
	return p.expectIdent()
}

func (p *Parser) expectFrom(decl *js_ast.ImportDecl) {
	if !p.isIdent("from") {
		p.errorf("Expected \"from\" but found %q", p.tokenText())
	}
	p.next()
	if p.tok() != TokenString {
		p.errorf("Expected import source but found %q", p.tokenText())
	}
	decl.Source = p.stringLit()
}

func (p *Parser) stringLit() *js_ast.StringLit {
	lit := js_ast.NewStringLit(p.lexer.Str)
	lit.SetSpan(p.tokenSpan())
	p.next()
	return lit
}

func (p *Parser) parseExport(start *util.ParseLocation) js_ast.Stmt {
	p.next()
	decl := &js_ast.ExportDecl{}
	switch {
	case p.isIdent("default"):
		p.next()
		decl.Default = true
		isAsyncFunc := false
		if p.isIdent("async") {
			save := *p.lexer
			p.next()
			isAsyncFunc = p.isIdent("function") && !p.lexer.NewlineBefore
			*p.lexer = save
		}
		if p.isIdent("function") || p.isIdent("class") || isAsyncFunc {
			decl.Decl = p.parseStmt()
		} else {
			decl.Expr = p.parseAssign()
			p.semicolon()
		}
	case p.isPunct("{"):
		p.next()
		for !p.isPunct("}") {
			local := p.importedName()
			exported := local
			if p.isIdent("as") {
				p.next()
				exported = p.importedName()
			}
			decl.Specifiers = append(decl.Specifiers, &js_ast.ImportSpecifier{
				Kind:     js_ast.ImportNamed,
				Local:    local,
				Imported: exported,
			})
			if !p.eatPunct(",") {
				break
			}
		}
		p.expectPunct("}")
		if p.isIdent("from") {
			p.next()
			if p.tok() != TokenString {
				p.errorf("Expected export source but found %q", p.tokenText())
			}
			decl.Source = p.stringLit()
		}
		p.semicolon()
	default:
		decl.Decl = p.parseStmt()
	}
	decl.SetSpan(p.span(start))
	return decl
}

func (p *Parser) parseVarDecl(start *util.ParseLocation, kind string) *js_ast.VarDecl {
	decl := &js_ast.VarDecl{Kind: kind}
	for {
		d := &js_ast.VarDeclarator{}
		dStart := p.lexer.Start
		d.Name = p.parseBindingTarget()
		if p.eatPunct("!") {
			// Definite assignment assertion, dropped on reprint.
		}
		if p.eatPunct(":") {
			d.Type = p.parseType()
		}
		if p.eatPunct("=") {
			d.Init = p.parseAssign()
		}
		d.SetSpan(p.span(dStart))
		decl.Decls = append(decl.Decls, d)
		if !p.eatPunct(",") {
			break
		}
	}
	p.semicolon()
	decl.SetSpan(p.span(start))
	return decl
}

// parseBindingTarget parses an identifier or a destructuring pattern.
// Patterns reuse the array/object literal nodes.
func (p *Parser) parseBindingTarget() js_ast.Expr {
	switch {
	case p.isPunct("["):
		return p.parseArrayLit()
	case p.isPunct("{"):
		return p.parseObjectLit()
	default:
		ident := js_ast.NewIdent(p.expectIdent())
		return ident
	}
}

// parseFuncDecl is called with the current token on "function"; for async
// functions the "async" keyword has already been consumed.
func (p *Parser) parseFuncDecl(start *util.ParseLocation, async bool) *js_ast.FuncDecl {
	p.next() // function
	decl := &js_ast.FuncDecl{Async: async}
	if p.eatPunct("*") {
		decl.Generator = true
	}
	decl.Name = js_ast.NewIdent(p.expectIdent())
	if p.isPunct("<") {
		decl.TypeParams = p.typeParamsRaw()
	}
	decl.Params = p.parseParams()
	if p.eatPunct(":") {
		decl.ReturnType = p.parseType()
	}
	decl.Body = p.parseBlock(p.lexer.Start)
	decl.SetSpan(p.span(start))
	return decl
}

func (p *Parser) parseParams() []*js_ast.Param {
	p.expectPunct("(")
	var params []*js_ast.Param
	for !p.isPunct(")") {
		param := &js_ast.Param{}
		pStart := p.lexer.Start
		if p.eatPunct("...") {
			param.Rest = true
		}
		param.Name = p.parseBindingTarget()
		if p.eatPunct("?") {
			param.Optional = true
		}
		if p.eatPunct(":") {
			param.Type = p.parseType()
		}
		if p.eatPunct("=") {
			param.Default = p.parseAssign()
		}
		param.SetSpan(p.span(pStart))
		params = append(params, param)
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct(")")
	return params
}

func (p *Parser) parseClassDecl(start *util.ParseLocation) *js_ast.ClassDecl {
	p.next()
	decl := &js_ast.ClassDecl{Name: js_ast.NewIdent(p.expectIdent())}
	if p.isPunct("<") {
		decl.TypeParams = p.typeParamsRaw()
	}
	if p.isIdent("extends") {
		p.next()
		decl.SuperClass = p.parseCallSuffix(p.parsePrimary(), false)
	}
	p.expectPunct("{")
	for !p.isPunct("}") {
		if p.eatPunct(";") {
			continue
		}
		decl.Members = append(decl.Members, p.parseClassMember())
	}
	p.next()
	decl.SetSpan(p.span(start))
	return decl
}

// classModifiers are identifiers that act as member modifiers when another
// member name follows.
var classModifiers = map[string]bool{
	"static": true, "async": true, "get": true, "set": true,
	"public": true, "private": true, "protected": true, "readonly": true,
	"override": true, "declare": true,
}

func (p *Parser) parseClassMember() *js_ast.ClassMember {
	start := p.lexer.Start
	member := &js_ast.ClassMember{Kind: js_ast.ClassProperty}
	for p.tok() == TokenIdent && classModifiers[p.lexer.Str] {
		name := p.lexer.Str
		save := *p.lexer
		p.next()
		if p.isPunct("(") || p.isPunct(":") || p.isPunct("=") || p.isPunct(";") ||
			p.isPunct("}") || p.isPunct("?") || p.isPunct("!") || p.lexer.NewlineBefore {
			// The "modifier" was the member name itself.
			*p.lexer = save
			break
		}
		switch name {
		case "static":
			member.Static = true
		case "async":
			member.Async = true
		case "get":
			member.Kind = js_ast.ClassGetter
		case "set":
			member.Kind = js_ast.ClassSetter
		default:
			member.Modifiers = append(member.Modifiers, name)
		}
	}
	member.Key, member.Computed = p.parsePropertyKey()
	if p.eatPunct("?") {
		member.Optional = true
	}
	p.eatPunct("!")
	if p.isPunct("<") {
		member.TypeParams = p.typeParamsRaw()
	}
	if p.isPunct("(") {
		if member.Kind == js_ast.ClassProperty {
			member.Kind = js_ast.ClassMethod
		}
		member.Params = p.parseParams()
		if p.eatPunct(":") {
			member.ReturnType = p.parseType()
		}
		member.Body = p.parseBlock(p.lexer.Start)
		member.SetSpan(p.span(start))
		return member
	}
	if p.eatPunct(":") {
		member.Type = p.parseType()
	}
	if p.eatPunct("=") {
		member.Value = p.parseAssign()
	}
	p.semicolon()
	member.SetSpan(p.span(start))
	return member
}

func (p *Parser) parsePropertyKey() (js_ast.Expr, bool) {
	switch {
	case p.isPunct("["):
		p.next()
		key := p.parseAssign()
		p.expectPunct("]")
		return key, true
	case p.tok() == TokenString:
		return p.stringLit(), false
	case p.tok() == TokenNumber:
		lit := &js_ast.NumberLit{Raw: p.lexer.Raw}
		lit.SetSpan(p.tokenSpan())
		p.next()
		return lit, false
	default:
		ident := js_ast.NewIdent(p.expectIdent())
		return ident, false
	}
}

func (p *Parser) tryParseTypeAlias(start *util.ParseLocation) js_ast.Stmt {
	save := *p.lexer
	p.next()
	if p.tok() != TokenIdent || p.lexer.NewlineBefore {
		*p.lexer = save
		return nil
	}
	name := p.lexer.Str
	p.next()
	typeParams := ""
	if p.isPunct("<") {
		typeParams = p.typeParamsRaw()
	}
	if !p.isPunct("=") {
		*p.lexer = save
		return nil
	}
	p.next()
	decl := &js_ast.TypeAliasDecl{Name: js_ast.NewIdent(name), TypeParams: typeParams, Type: p.parseType()}
	p.semicolon()
	decl.SetSpan(p.span(start))
	return decl
}

func (p *Parser) tryParseInterface(start *util.ParseLocation) js_ast.Stmt {
	save := *p.lexer
	p.next()
	if p.tok() != TokenIdent || p.lexer.NewlineBefore {
		*p.lexer = save
		return nil
	}
	decl := &js_ast.InterfaceDecl{Name: js_ast.NewIdent(p.expectIdent())}
	if p.isPunct("<") {
		decl.TypeParams = p.typeParamsRaw()
	}
	if p.isIdent("extends") {
		p.next()
		for {
			decl.Extends = append(decl.Extends, p.parseType())
			if !p.eatPunct(",") {
				break
			}
		}
	}
	if !p.isPunct("{") {
		*p.lexer = save
		return nil
	}
	decl.Members = p.parseTypeMembers()
	decl.SetSpan(p.span(start))
	return decl
}

func (p *Parser) parseTypeMembers() []*js_ast.TSPropertySignature {
	p.expectPunct("{")
	var members []*js_ast.TSPropertySignature
	for !p.isPunct("}") {
		if p.tok() == TokenEOF {
			p.errorf("Expected \"}\" but found end of file")
		}
		m := &js_ast.TSPropertySignature{}
		mStart := p.lexer.Start
		m.Key, _ = p.parsePropertyKey()
		if p.eatPunct("?") {
			m.Optional = true
		}
		if p.eatPunct(":") {
			m.Type = p.parseType()
		}
		if !p.eatPunct(";") {
			p.eatPunct(",")
		}
		m.SetSpan(p.span(mStart))
		members = append(members, m)
	}
	p.next()
	return members
}

func (p *Parser) parseIf(start *util.ParseLocation) *js_ast.IfStmt {
	p.next()
	p.expectPunct("(")
	stmt := &js_ast.IfStmt{Test: p.parseExpr()}
	p.expectPunct(")")
	stmt.Cons = p.parseStmt()
	if p.isIdent("else") {
		p.next()
		stmt.Alt = p.parseStmt()
	}
	stmt.SetSpan(p.span(start))
	return stmt
}

func (p *Parser) parseFor(start *util.ParseLocation) js_ast.Stmt {
	p.next()
	p.expectPunct("(")
	var init js_ast.Stmt
	p.noIn = true
	if !p.isPunct(";") {
		initStart := p.lexer.Start
		if p.isIdent("var") || p.isIdent("let") || p.isIdent("const") {
			kind := p.lexer.Str
			p.next()
			d := &js_ast.VarDeclarator{Name: p.parseBindingTarget()}
			if p.isIdent("in") || p.isIdent("of") {
				p.noIn = false
				return p.parseForIn(start, &js_ast.VarDecl{Kind: kind, Decls: []*js_ast.VarDeclarator{d}})
			}
			if p.eatPunct(":") {
				d.Type = p.parseType()
			}
			if p.eatPunct("=") {
				d.Init = p.parseAssign()
			}
			decl := &js_ast.VarDecl{Kind: kind, Decls: []*js_ast.VarDeclarator{d}}
			for p.eatPunct(",") {
				d2 := &js_ast.VarDeclarator{Name: p.parseBindingTarget()}
				if p.eatPunct(":") {
					d2.Type = p.parseType()
				}
				if p.eatPunct("=") {
					d2.Init = p.parseAssign()
				}
				decl.Decls = append(decl.Decls, d2)
			}
			decl.SetSpan(p.span(initStart))
			init = decl
		} else {
			x := p.parseExpr()
			if p.isIdent("in") || p.isIdent("of") {
				p.noIn = false
				left := &js_ast.ExprStmt{X: x}
				left.SetSpan(p.span(initStart))
				return p.parseForIn(start, left)
			}
			stmt := &js_ast.ExprStmt{X: x}
			stmt.SetSpan(p.span(initStart))
			init = stmt
		}
	}
	p.noIn = false
	p.expectPunct(";")
	stmt := &js_ast.ForStmt{Init: init}
	if !p.isPunct(";") {
		stmt.Test = p.parseExpr()
	}
	p.expectPunct(";")
	if !p.isPunct(")") {
		stmt.Update = p.parseExpr()
	}
	p.expectPunct(")")
	stmt.Body = p.parseStmt()
	stmt.SetSpan(p.span(start))
	return stmt
}

func (p *Parser) parseForIn(start *util.ParseLocation, left js_ast.Stmt) js_ast.Stmt {
	of := p.isIdent("of")
	p.next()
	stmt := &js_ast.ForInStmt{Of: of, Left: left, Right: p.parseAssign()}
	p.expectPunct(")")
	stmt.Body = p.parseStmt()
	stmt.SetSpan(p.span(start))
	return stmt
}

func (p *Parser) parseSwitch(start *util.ParseLocation) *js_ast.SwitchStmt {
	p.next()
	p.expectPunct("(")
	stmt := &js_ast.SwitchStmt{Disc: p.parseExpr()}
	p.expectPunct(")")
	p.expectPunct("{")
	for !p.isPunct("}") {
		c := &js_ast.SwitchCase{}
		cStart := p.lexer.Start
		if p.isIdent("case") {
			p.next()
			c.Test = p.parseExpr()
		} else if p.isIdent("default") {
			p.next()
		} else {
			p.errorf("Expected \"case\" or \"default\" but found %q", p.tokenText())
		}
		p.expectPunct(":")
		for !p.isPunct("}") && !p.isIdent("case") && !p.isIdent("default") {
			c.Body = append(c.Body, p.parseStmt())
		}
		c.SetSpan(p.span(cStart))
		stmt.Cases = append(stmt.Cases, c)
	}
	p.next()
	stmt.SetSpan(p.span(start))
	return stmt
}

func (p *Parser) parseTry(start *util.ParseLocation) *js_ast.TryStmt {
	p.next()
	stmt := &js_ast.TryStmt{Block: p.parseBlock(p.lexer.Start)}
	if p.isIdent("catch") {
		p.next()
		if p.eatPunct("(") {
			stmt.CatchParam = p.parseBindingTarget()
			if p.eatPunct(":") {
				p.parseType() // catch clause annotations are dropped
			}
			p.expectPunct(")")
		}
		stmt.Catch = p.parseBlock(p.lexer.Start)
	}
	if p.isIdent("finally") {
		p.next()
		stmt.Finally = p.parseBlock(p.lexer.Start)
	}
	stmt.SetSpan(p.span(start))
	return stmt
}
