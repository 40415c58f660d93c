package js_parser

import (
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/js_ast"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/util"
)

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"**=": true, "<<=": true, ">>=": true, ">>>=": true, "&=": true,
	"|=": true, "^=": true, "&&=": true, "||=": true, "??=": true,
}

// binPrec maps binary operators to their precedence level. Zero means "not
// a binary operator".
var binPrec = map[string]int{
	"??": 1, "||": 2, "&&": 3, "|": 4, "^": 5, "&": 6,
	"==": 7, "!=": 7, "===": 7, "!==": 7,
	"<": 8, ">": 8, "<=": 8, ">=": 8, "in": 8, "instanceof": 8,
	"<<": 9, ">>": 9, ">>>": 9,
	"+": 10, "-": 10,
	"*": 11, "/": 11, "%": 11,
	"**": 12,
}

func (p *Parser) parseExpr() js_ast.Expr {
	start := p.lexer.Start
	e := p.parseAssign()
	if !p.isPunct(",") {
		return e
	}
	seq := &js_ast.SeqExpr{Exprs: []js_ast.Expr{e}}
	for p.eatPunct(",") {
		seq.Exprs = append(seq.Exprs, p.parseAssign())
	}
	seq.SetSpan(p.span(start))
	return seq
}

func (p *Parser) parseAssign() js_ast.Expr {
	start := p.lexer.Start
	e := p.parseCond()

	// `x => ...`: a lone identifier followed by an arrow is a parameter.
	if p.isPunct("=>") && !p.lexer.NewlineBefore {
		if ident, ok := e.(*js_ast.Ident); ok {
			p.next()
			arrow := &js_ast.ArrowFunc{Params: []*js_ast.Param{{Name: ident}}}
			arrow.Body = p.parseArrowBody()
			arrow.SetSpan(p.span(start))
			return arrow
		}
	}

	if p.lexer.Token == TokenPunct && assignOps[p.lexer.Str] {
		op := p.lexer.Str
		p.next()
		assign := &js_ast.AssignExpr{Op: op, Target: e, Value: p.parseAssign()}
		assign.SetSpan(p.span(start))
		return assign
	}
	return e
}

func (p *Parser) parseCond() js_ast.Expr {
	start := p.lexer.Start
	e := p.parseBinary(1)
	if !p.isPunct("?") {
		return e
	}
	p.next()
	cond := &js_ast.CondExpr{Test: e, Cons: p.parseAssign()}
	p.expectPunct(":")
	cond.Alt = p.parseAssign()
	cond.SetSpan(p.span(start))
	return cond
}

func (p *Parser) parseBinary(minPrec int) js_ast.Expr {
	start := p.lexer.Start
	left := p.parseUnary()
	for {
		if p.isIdent("as") && !p.lexer.NewlineBefore {
			p.next()
			as := &js_ast.TSAsExpr{X: left}
			if p.isIdent("const") {
				as.Type = &js_ast.TSTypeRef{Name: "const"}
				p.next()
			} else {
				as.Type = p.parseType()
			}
			as.SetSpan(p.span(start))
			left = as
			continue
		}

		op := ""
		if p.lexer.Token == TokenPunct {
			op = p.lexer.Str
		} else if p.isIdent("instanceof") || (p.isIdent("in") && !p.noIn) {
			op = p.lexer.Str
		}
		prec := binPrec[op]
		if prec == 0 || prec < minPrec {
			return left
		}
		p.next()
		nextMin := prec + 1
		if op == "**" {
			nextMin = prec
		}
		bin := &js_ast.BinaryExpr{Op: op, Lhs: left, Rhs: p.parseBinary(nextMin)}
		bin.SetSpan(p.span(start))
		left = bin
	}
}

var unaryOps = map[string]bool{
	"!": true, "~": true, "+": true, "-": true,
	"typeof": true, "void": true, "delete": true, "await": true,
}

func (p *Parser) parseUnary() js_ast.Expr {
	start := p.lexer.Start
	switch {
	case p.lexer.Token == TokenPunct && unaryOps[p.lexer.Str],
		p.lexer.Token == TokenIdent && unaryOps[p.lexer.Str]:
		op := p.lexer.Str
		p.next()
		e := &js_ast.UnaryExpr{Op: op, Arg: p.parseUnary()}
		e.SetSpan(p.span(start))
		return e
	case p.isIdent("yield"):
		p.next()
		op := "yield"
		if p.eatPunct("*") {
			op = "yield*"
		}
		if p.isExprStart() {
			e := &js_ast.UnaryExpr{Op: op, Arg: p.parseAssign()}
			e.SetSpan(p.span(start))
			return e
		}
		return js_ast.NewIdent("yield")
	case p.isPunct("++") || p.isPunct("--"):
		op := p.lexer.Str
		p.next()
		e := &js_ast.UpdateExpr{Op: op, Prefix: true, Arg: p.parseUnary()}
		e.SetSpan(p.span(start))
		return e
	}

	e := p.parseCallSuffix(p.parsePrimary(), false)
	for (p.isPunct("++") || p.isPunct("--")) && !p.lexer.NewlineBefore {
		op := p.lexer.Str
		p.next()
		upd := &js_ast.UpdateExpr{Op: op, Arg: e}
		upd.SetSpan(p.span(start))
		e = upd
	}
	return e
}

// isExprStart reports whether the current token can begin an expression; it
// only needs to be accurate for the bare-yield ambiguity.
func (p *Parser) isExprStart() bool {
	switch p.tok() {
	case TokenIdent, TokenNumber, TokenString, TokenTemplate:
		return true
	case TokenPunct:
		switch p.lexer.Str {
		case "(", "[", "{", "<", "!", "~", "+", "-", "++", "--", "/":
			return true
		}
	}
	return false
}

func (p *Parser) parseCallSuffix(e js_ast.Expr, noCall bool) js_ast.Expr {
	start := p.lexer.Start
	for {
		switch {
		case p.isPunct("."):
			p.next()
			m := &js_ast.MemberExpr{Obj: e, Prop: js_ast.NewIdent(p.expectIdent())}
			m.SetSpan(p.span(start))
			e = m
		case p.isPunct("?."):
			p.next()
			switch {
			case p.isPunct("("):
				call := &js_ast.CallExpr{Callee: e, Args: p.parseArgs(), Optional: true}
				call.SetSpan(p.span(start))
				e = call
			case p.isPunct("["):
				p.next()
				m := &js_ast.MemberExpr{Obj: e, Prop: p.parseExpr(), Computed: true, Optional: true}
				p.expectPunct("]")
				m.SetSpan(p.span(start))
				e = m
			default:
				m := &js_ast.MemberExpr{Obj: e, Prop: js_ast.NewIdent(p.expectIdent()), Optional: true}
				m.SetSpan(p.span(start))
				e = m
			}
		case p.isPunct("["):
			p.next()
			m := &js_ast.MemberExpr{Obj: e, Prop: p.parseExpr(), Computed: true}
			p.expectPunct("]")
			m.SetSpan(p.span(start))
			e = m
		case p.isPunct("(") && !noCall:
			call := &js_ast.CallExpr{Callee: e, Args: p.parseArgs()}
			call.SetSpan(p.span(start))
			e = call
		case p.tok() == TokenTemplate:
			tagged := &js_ast.TaggedTemplate{Tag: e, Quasi: p.parseTemplate()}
			tagged.SetSpan(p.span(start))
			e = tagged
		case p.isPunct("!") && !p.lexer.NewlineBefore:
			p.next()
			nn := &js_ast.TSNonNullExpr{X: e}
			nn.SetSpan(p.span(start))
			e = nn
		default:
			return e
		}
	}
}

// parseArgs always returns a non-nil slice; a nil argument list on NewExpr
// means `new Foo` was written without parentheses.
func (p *Parser) parseArgs() []js_ast.Expr {
	p.expectPunct("(")
	args := []js_ast.Expr{}
	for !p.isPunct(")") {
		if p.isPunct("...") {
			sStart := p.lexer.Start
			p.next()
			spread := &js_ast.SpreadElement{Arg: p.parseAssign()}
			spread.SetSpan(p.span(sStart))
			args = append(args, spread)
		} else {
			args = append(args, p.parseAssign())
		}
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct(")")
	return args
}

func (p *Parser) parsePrimary() js_ast.Expr {
	start := p.lexer.Start
	switch p.tok() {
	case TokenNumber:
		lit := &js_ast.NumberLit{Raw: p.lexer.Raw}
		lit.SetSpan(p.tokenSpan())
		p.next()
		return lit
	case TokenString:
		return p.stringLit()
	case TokenTemplate:
		return p.parseTemplate()
	case TokenIdent:
		switch p.lexer.Str {
		case "function":
			return p.parseFuncExpr(start, false)
		case "async":
			return p.parseAsyncExpr(start)
		case "new":
			p.next()
			callee := p.parseCallSuffix(p.parsePrimary(), true)
			e := &js_ast.NewExpr{Callee: callee}
			if p.isPunct("(") {
				e.Args = p.parseArgs()
			}
			e.SetSpan(p.span(start))
			return e
		case "true", "false":
			lit := &js_ast.BoolLit{Value: p.lexer.Str == "true"}
			lit.SetSpan(p.tokenSpan())
			p.next()
			return lit
		case "null":
			lit := &js_ast.NullLit{}
			lit.SetSpan(p.tokenSpan())
			p.next()
			return lit
		}
		ident := js_ast.NewIdent(p.lexer.Str)
		ident.SetSpan(p.tokenSpan())
		p.next()
		return ident
	case TokenPunct:
		switch p.lexer.Str {
		case "(":
			if arrow := p.tryParseParenArrow(start, false); arrow != nil {
				return arrow
			}
			p.next()
			e := &js_ast.ParenExpr{X: p.parseExpr()}
			p.expectPunct(")")
			e.SetSpan(p.span(start))
			return e
		case "[":
			return p.parseArrayLit()
		case "{":
			return p.parseObjectLit()
		case "<":
			return p.parseJSX()
		case "/", "/=":
			p.lexer.RescanRegex()
			lit := &js_ast.RegexLit{Raw: p.lexer.Raw}
			lit.SetSpan(p.tokenSpan())
			p.next()
			return lit
		}
	}
	p.errorf("Unexpected token %q", p.tokenText())
	return nil
}

func (p *Parser) parseFuncExpr(start *util.ParseLocation, async bool) *js_ast.FuncExpr {
	p.next() // function
	fe := &js_ast.FuncExpr{Async: async}
	if p.eatPunct("*") {
		fe.Generator = true
	}
	if p.tok() == TokenIdent {
		fe.Name = js_ast.NewIdent(p.lexer.Str)
		p.next()
	}
	if p.isPunct("<") {
		fe.TypeParams = p.typeParamsRaw()
	}
	fe.Params = p.parseParams()
	if p.eatPunct(":") {
		fe.ReturnType = p.parseType()
	}
	fe.Body = p.parseBlock(p.lexer.Start)
	fe.SetSpan(p.span(start))
	return fe
}

// parseAsyncExpr disambiguates the many expression forms that begin with
// the contextual keyword `async`.
func (p *Parser) parseAsyncExpr(start *util.ParseLocation) js_ast.Expr {
	save := *p.lexer
	p.next()
	switch {
	case p.isIdent("function") && !p.lexer.NewlineBefore:
		return p.parseFuncExpr(start, true)
	case p.tok() == TokenIdent && !p.lexer.NewlineBefore:
		name := p.lexer.Str
		p.next()
		if p.isPunct("=>") && !p.lexer.NewlineBefore {
			p.next()
			arrow := &js_ast.ArrowFunc{
				Params: []*js_ast.Param{{Name: js_ast.NewIdent(name)}},
				Async:  true,
			}
			arrow.Body = p.parseArrowBody()
			arrow.SetSpan(p.span(start))
			return arrow
		}
	case p.isPunct("(") && !p.lexer.NewlineBefore:
		if arrow := p.tryParseParenArrow(start, true); arrow != nil {
			return arrow
		}
	}
	*p.lexer = save
	ident := js_ast.NewIdent("async")
	ident.SetSpan(p.tokenSpan())
	p.next()
	return ident
}

// tryParseParenArrow speculatively parses `(params)[: type] => body`. On
// failure the lexer is restored and nil returned.
func (p *Parser) tryParseParenArrow(start *util.ParseLocation, async bool) js_ast.Expr {
	save := *p.lexer
	arrow := func() (arrow *js_ast.ArrowFunc) {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(*util.ParseError); ok {
					arrow = nil
					return
				}
				panic(r)
			}
		}()
		params := p.parseParams()
		var ret js_ast.TSType
		if p.eatPunct(":") {
			ret = p.parseType()
		}
		if !p.isPunct("=>") {
			return nil
		}
		p.next()
		a := &js_ast.ArrowFunc{Params: params, ReturnType: ret, Async: async}
		a.Body = p.parseArrowBody()
		return a
	}()
	if arrow == nil {
		*p.lexer = save
		return nil
	}
	arrow.SetSpan(p.span(start))
	return arrow
}

func (p *Parser) parseArrowBody() js_ast.Node {
	if p.isPunct("{") {
		return p.parseBlock(p.lexer.Start)
	}
	return p.parseAssign()
}

func (p *Parser) parseArrayLit() *js_ast.ArrayLit {
	start := p.lexer.Start
	p.expectPunct("[")
	lit := &js_ast.ArrayLit{}
	for !p.isPunct("]") {
		if p.isPunct(",") {
			// Elision hole.
			lit.Elems = append(lit.Elems, nil)
			p.next()
			continue
		}
		if p.isPunct("...") {
			sStart := p.lexer.Start
			p.next()
			spread := &js_ast.SpreadElement{Arg: p.parseAssign()}
			spread.SetSpan(p.span(sStart))
			lit.Elems = append(lit.Elems, spread)
		} else {
			lit.Elems = append(lit.Elems, p.parseAssign())
		}
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct("]")
	lit.SetSpan(p.span(start))
	return lit
}

func (p *Parser) parseObjectLit() *js_ast.ObjectLit {
	start := p.lexer.Start
	p.expectPunct("{")
	lit := &js_ast.ObjectLit{}
	for !p.isPunct("}") {
		if p.tok() == TokenEOF {
			p.errorf("Expected \"}\" but found end of file")
		}
		if p.isPunct("...") {
			sStart := p.lexer.Start
			p.next()
			spread := &js_ast.SpreadElement{Arg: p.parseAssign()}
			spread.SetSpan(p.span(sStart))
			lit.Props = append(lit.Props, spread)
			if !p.eatPunct(",") {
				break
			}
			continue
		}
		lit.Props = append(lit.Props, p.parseObjectProperty())
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct("}")
	lit.SetSpan(p.span(start))
	return lit
}

func (p *Parser) parseObjectProperty() *js_ast.Property {
	start := p.lexer.Start
	prop := &js_ast.Property{}
	async := false
	generator := false

	if p.tok() == TokenIdent && (p.lexer.Str == "get" || p.lexer.Str == "set" || p.lexer.Str == "async") {
		name := p.lexer.Str
		save := *p.lexer
		p.next()
		if p.tok() == TokenIdent || p.tok() == TokenString || p.tok() == TokenNumber ||
			p.isPunct("[") || p.isPunct("*") {
			if name == "async" {
				async = true
			} else {
				prop.Kind = name
			}
		} else {
			*p.lexer = save
		}
	}
	if p.eatPunct("*") {
		generator = true
	}

	prop.Key, prop.Computed = p.parsePropertyKey()

	switch {
	case p.isPunct("("):
		fe := &js_ast.FuncExpr{Async: async, Generator: generator}
		fe.Params = p.parseParams()
		if p.eatPunct(":") {
			fe.ReturnType = p.parseType()
		}
		fe.Body = p.parseBlock(p.lexer.Start)
		if prop.Kind == "" {
			prop.Method = true
		}
		prop.Value = fe
	case p.eatPunct(":"):
		prop.Value = p.parseAssign()
	case p.isPunct("="):
		// Destructuring default inside an object pattern.
		p.next()
		prop.Shorthand = true
		prop.Value = &js_ast.AssignExpr{Op: "=", Target: prop.Key, Value: p.parseAssign()}
	default:
		prop.Shorthand = true
		prop.Value = prop.Key
	}
	prop.SetSpan(p.span(start))
	return prop
}

func (p *Parser) parseTemplate() *js_ast.TemplateLit {
	start := p.lexer.Start
	lit := &js_ast.TemplateLit{}
	for {
		elem := &js_ast.TemplateElement{Raw: p.lexer.Raw, Cooked: p.lexer.Str}
		elem.SetSpan(p.tokenSpan())
		lit.Quasis = append(lit.Quasis, elem)
		if p.lexer.Tail {
			break
		}
		p.next()
		lit.Exprs = append(lit.Exprs, p.parseExpr())
		if !p.isPunct("}") {
			p.errorf("Expected \"}\" but found %q", p.tokenText())
		}
		p.lexer.RescanTemplatePart()
	}
	p.next()
	lit.SetSpan(p.span(start))
	return lit
}
