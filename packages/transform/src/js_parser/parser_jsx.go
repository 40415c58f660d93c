package js_parser

import (
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/js_ast"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/util"
)

// parseJSX parses a JSX element or fragment in expression position. The
// current token is "<".
func (p *Parser) parseJSX() js_ast.Expr {
	start := p.lexer.Start
	p.next()
	e := p.parseJSXAfterLT(start)
	p.next()
	return e
}

// parseJSXAfterLT parses an element or fragment whose "<" has already been
// consumed. It returns with the closing ">" as the current token and no
// lookahead scanned, so the caller chooses the next scan mode.
func (p *Parser) parseJSXAfterLT(start *util.ParseLocation) js_ast.Expr {
	if p.isPunct(">") {
		frag := &js_ast.JSXFragment{Children: p.parseJSXChildren("")}
		frag.SetSpan(p.span(start))
		return frag
	}

	opening := &js_ast.JSXOpening{Name: p.parseJSXName()}
	for {
		switch {
		case p.isPunct("{"):
			aStart := p.lexer.Start
			p.next()
			p.expectPunct("...")
			attr := &js_ast.JSXSpreadAttr{Arg: p.parseAssign()}
			p.expectPunct("}")
			attr.SetSpan(p.span(aStart))
			opening.Attrs = append(opening.Attrs, attr)
			continue
		case p.tok() == TokenIdent:
			aStart := p.lexer.Start
			attr := &js_ast.JSXAttr{Name: p.parseJSXName()}
			if p.isPunct("=") {
				p.lexer.NextJSXAttrValue()
				switch {
				case p.tok() == TokenString:
					attr.Value = p.stringLit()
				case p.isPunct("{"):
					p.next()
					container := js_ast.NewJSXExprContainer(p.parseAssign())
					p.expectPunct("}")
					attr.Value = container
				default:
					p.errorf("Expected JSX attribute value but found %q", p.tokenText())
				}
			}
			attr.SetSpan(p.span(aStart))
			opening.Attrs = append(opening.Attrs, attr)
			continue
		}
		break
	}

	el := &js_ast.JSXElement{Opening: opening}
	switch {
	case p.isPunct("/"):
		p.next()
		if !p.isPunct(">") {
			p.errorf("Expected \">\" but found %q", p.tokenText())
		}
		opening.SelfClosing = true
	case p.isPunct(">"):
		el.Children = p.parseJSXChildren(opening.Name)
	default:
		p.errorf("Expected \">\" but found %q", p.tokenText())
	}
	el.SetSpan(p.span(start))
	return el
}

// parseJSXName reads a (possibly dotted, hyphenated or namespaced) tag or
// attribute name.
func (p *Parser) parseJSXName() string {
	name := p.expectIdentStay()
	p.next()
	for p.isPunct(".") || p.isPunct("-") || p.isPunct(":") {
		name += p.lexer.Str
		p.next()
		name += p.expectIdentStay()
		p.next()
	}
	return name
}

func (p *Parser) expectIdentStay() string {
	if p.tok() != TokenIdent {
		p.errorf("Expected identifier but found %q", p.tokenText())
	}
	return p.lexer.Str
}

// parseJSXChildren consumes children until the matching closing tag. The
// opening ">" is the current token on entry; the closing ">" is the current
// token on return, with no lookahead scanned. Closing-tag names are matched
// laxly: any well-nested closer ends the element.
func (p *Parser) parseJSXChildren(tag string) []js_ast.Node {
	var children []js_ast.Node
	for {
		p.lexer.NextJSXChild()
		switch {
		case p.tok() == TokenJSXText:
			text := &js_ast.JSXText{Value: p.lexer.Str}
			text.SetSpan(p.tokenSpan())
			children = append(children, text)
		case p.isPunct("{"):
			cStart := p.lexer.Start
			p.next()
			container := &js_ast.JSXExprContainer{}
			if !p.isPunct("}") {
				container.X = p.parseExpr()
				if !p.isPunct("}") {
					p.errorf("Expected \"}\" but found %q", p.tokenText())
				}
			}
			// Comments inside an empty container would otherwise attach to
			// the next statement.
			p.lexer.TakeComments()
			container.SetSpan(p.span(cStart))
			children = append(children, container)
		case p.isPunct("<"):
			cStart := p.lexer.Start
			p.next()
			if p.isPunct("/") {
				p.next()
				for !p.isPunct(">") {
					if p.tok() == TokenEOF {
						p.errorf("Unterminated JSX element <%s>", tag)
					}
					p.next()
				}
				return children
			}
			children = append(children, p.parseJSXAfterLT(cStart))
		case p.tok() == TokenEOF:
			p.errorf("Unterminated JSX element <%s>", tag)
		default:
			p.errorf("Unexpected token %q in JSX", p.tokenText())
		}
	}
}
