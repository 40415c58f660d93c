package js_parser

import (
	"strings"

	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/js_ast"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/util"
)

// typeParamsRaw consumes a generic parameter list starting at the current
// "<" token and returns its source text verbatim.
func (p *Parser) typeParamsRaw() string {
	startOff := p.lexer.Start.Offset
	depth := 0
	for {
		if p.tok() == TokenEOF {
			p.errorf("Unterminated type parameter list")
		}
		if p.tok() == TokenPunct {
			switch p.lexer.Str {
			case "<":
				depth++
			case ">":
				depth--
			case ">>":
				depth -= 2
			case ">>>":
				depth -= 3
			}
		}
		endOff := p.lexer.End.Offset
		p.next()
		if depth <= 0 {
			return p.file.Content[startOff:endOff]
		}
	}
}

// expectCloseAngle consumes one ">", splitting it off a longer token such as
// ">>" when generic argument lists nest.
func (p *Parser) expectCloseAngle() {
	if p.isPunct(">") {
		p.next()
		return
	}
	if p.tok() == TokenPunct && len(p.lexer.Str) > 1 && p.lexer.Str[0] == '>' {
		p.lexer.Str = p.lexer.Str[1:]
		return
	}
	p.errorf("Expected \">\" but found %q", p.tokenText())
}

func (p *Parser) parseType() js_ast.TSType {
	start := p.lexer.Start
	t := p.parseUnionType()
	if p.isIdent("extends") {
		p.next()
		cond := &js_ast.TSConditionalType{Check: t, Extends: p.parseUnionType()}
		p.expectPunct("?")
		cond.True = p.parseType()
		p.expectPunct(":")
		cond.False = p.parseType()
		cond.SetSpan(p.span(start))
		return cond
	}
	return t
}

func (p *Parser) parseUnionType() js_ast.TSType {
	start := p.lexer.Start
	p.eatPunct("|")
	t := p.parseIntersectionType()
	if !p.isPunct("|") {
		return t
	}
	union := &js_ast.TSUnionType{Types: []js_ast.TSType{t}}
	for p.eatPunct("|") {
		union.Types = append(union.Types, p.parseIntersectionType())
	}
	union.SetSpan(p.span(start))
	return union
}

func (p *Parser) parseIntersectionType() js_ast.TSType {
	start := p.lexer.Start
	t := p.parsePostfixType()
	if !p.isPunct("&") {
		return t
	}
	inter := &js_ast.TSIntersectionType{Types: []js_ast.TSType{t}}
	for p.eatPunct("&") {
		inter.Types = append(inter.Types, p.parsePostfixType())
	}
	inter.SetSpan(p.span(start))
	return inter
}

func (p *Parser) parsePostfixType() js_ast.TSType {
	start := p.lexer.Start
	t := p.parsePrimaryType()
	for p.isPunct("[") && !p.lexer.NewlineBefore {
		p.next()
		if p.eatPunct("]") {
			arr := &js_ast.TSArrayType{Elem: t}
			arr.SetSpan(p.span(start))
			t = arr
			continue
		}
		idx := &js_ast.TSIndexedAccessType{Obj: t, Index: p.parseType()}
		p.expectPunct("]")
		idx.SetSpan(p.span(start))
		t = idx
	}
	return t
}

// tsKeywordTypes are the built-in keyword types printed bare.
var tsKeywordTypes = map[string]bool{
	"string": true, "number": true, "boolean": true, "any": true,
	"unknown": true, "never": true, "void": true, "null": true,
	"undefined": true, "object": true, "symbol": true, "bigint": true,
	"this": true,
}

func (p *Parser) parsePrimaryType() js_ast.TSType {
	start := p.lexer.Start
	switch p.tok() {
	case TokenString:
		t := &js_ast.TSLiteralType{Lit: p.stringLit()}
		t.SetSpan(p.span(start))
		return t
	case TokenNumber:
		lit := &js_ast.NumberLit{Raw: p.lexer.Raw}
		lit.SetSpan(p.tokenSpan())
		p.next()
		t := &js_ast.TSLiteralType{Lit: lit}
		t.SetSpan(p.span(start))
		return t
	case TokenTemplate:
		t := &js_ast.TSLiteralType{Lit: p.parseTemplate()}
		t.SetSpan(p.span(start))
		return t
	case TokenIdent:
		switch p.lexer.Str {
		case "typeof":
			p.next()
			t := &js_ast.TSTypeQuery{Name: p.parseDottedName()}
			t.SetSpan(p.span(start))
			return t
		case "keyof", "readonly", "infer", "unique":
			op := p.lexer.Str
			p.next()
			t := &js_ast.TSTypeOperator{Op: op, X: p.parsePostfixType()}
			t.SetSpan(p.span(start))
			return t
		case "true", "false":
			lit := &js_ast.BoolLit{Value: p.lexer.Str == "true"}
			lit.SetSpan(p.tokenSpan())
			p.next()
			t := &js_ast.TSLiteralType{Lit: lit}
			t.SetSpan(p.span(start))
			return t
		}
		if tsKeywordTypes[p.lexer.Str] {
			t := &js_ast.TSKeywordType{Name: p.lexer.Str}
			t.SetSpan(p.tokenSpan())
			p.next()
			return t
		}
		ref := &js_ast.TSTypeRef{Name: p.parseDottedName()}
		if p.isPunct("<") {
			ref.Args = p.parseTypeArgs()
		}
		ref.SetSpan(p.span(start))
		return ref
	case TokenPunct:
		switch p.lexer.Str {
		case "(":
			if t := p.tryParseFunctionType(); t != nil {
				return t
			}
			p.next()
			t := &js_ast.TSParenType{X: p.parseType()}
			p.expectPunct(")")
			t.SetSpan(p.span(start))
			return t
		case "{":
			t := &js_ast.TSObjectType{Members: p.parseTypeMembers()}
			t.SetSpan(p.span(start))
			return t
		case "[":
			p.next()
			t := &js_ast.TSTupleType{}
			for !p.isPunct("]") {
				if p.isPunct("...") {
					eStart := p.lexer.Start
					p.next()
					rest := &js_ast.TSRestType{Elem: p.parseType()}
					rest.SetSpan(p.span(eStart))
					t.Elems = append(t.Elems, rest)
				} else {
					t.Elems = append(t.Elems, p.parseType())
				}
				if !p.eatPunct(",") {
					break
				}
			}
			p.expectPunct("]")
			t.SetSpan(p.span(start))
			return t
		case "-":
			p.next()
			if p.tok() != TokenNumber {
				p.errorf("Expected number but found %q", p.tokenText())
			}
			lit := &js_ast.NumberLit{Raw: "-" + p.lexer.Raw}
			p.next()
			t := &js_ast.TSLiteralType{Lit: lit}
			t.SetSpan(p.span(start))
			return t
		}
	}
	p.errorf("Unexpected token %q in type", p.tokenText())
	return nil
}

func (p *Parser) parseDottedName() string {
	var b strings.Builder
	b.WriteString(p.expectIdent())
	for p.eatPunct(".") {
		b.WriteByte('.')
		b.WriteString(p.expectIdent())
	}
	return b.String()
}

func (p *Parser) parseTypeArgs() []js_ast.TSType {
	p.expectPunct("<")
	var args []js_ast.TSType
	for {
		args = append(args, p.parseType())
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectCloseAngle()
	return args
}

// tryParseFunctionType speculatively parses `(params) => T`; nil and a
// restored lexer on failure.
func (p *Parser) tryParseFunctionType() js_ast.TSType {
	save := *p.lexer
	start := p.lexer.Start
	ft := func() (ft *js_ast.TSFunctionType) {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(*util.ParseError); ok {
					ft = nil
					return
				}
				panic(r)
			}
		}()
		params := p.parseParams()
		if !p.isPunct("=>") {
			return nil
		}
		p.next()
		return &js_ast.TSFunctionType{Params: params, Return: p.parseType()}
	}()
	if ft == nil {
		*p.lexer = save
		return nil
	}
	ft.SetSpan(p.span(start))
	return ft
}
