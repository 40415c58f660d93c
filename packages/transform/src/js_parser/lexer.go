package js_parser

import (
	"strings"
	"unicode/utf8"

	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/core"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/js_ast"
	"github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/util"
)

// puncts lists all punctuators, longest first so scanning is greedy.
var puncts = []string{
	">>>=",
	"...", "===", "!==", "**=", "<<=", ">>=", ">>>", "&&=", "||=", "??=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "**", "<<", ">>",
	"{", "}", "(", ")", "[", "]", ";", ",", "<", ">", "+", "-", "*", "/",
	"%", "&", "|", "^", "!", "~", "?", ":", "=", ".", "@", "#",
}

// Lexer is an on-demand scanner over one source file. The parser drives it
// token by token and switches it into template, regex and JSX modes where the
// grammar requires lookahead the token stream alone cannot provide.
type Lexer struct {
	file  *util.ParseSourceFile
	src   string
	pos   int // byte offset of peek
	peek  rune
	width int
	line  int
	col   int

	// Current token.
	Token TokenType
	Str   string // cooked value for strings/templates, text for idents/puncts
	Raw   string // source spelling for numbers, regexes and template parts
	Quote rune   // quote character of a string token
	Tail  bool   // template part ended the literal (true) or hit `${` (false)

	Start   *util.ParseLocation
	End     *util.ParseLocation
	PrevEnd *util.ParseLocation
	// NewlineBefore reports whether a line terminator was crossed before the
	// current token; the parser consults it for semicolon insertion.
	NewlineBefore bool

	comments []*js_ast.Comment
}

// NewLexer creates a lexer positioned before the first token.
func NewLexer(file *util.ParseSourceFile) *Lexer {
	l := &Lexer{
		file: file,
		src:  file.Content,
		pos:  0,
	}
	l.decode()
	l.Start = l.loc()
	l.End = l.loc()
	l.Next()
	return l
}

func (l *Lexer) decode() {
	if l.pos >= len(l.src) {
		l.peek = core.CharEOF
		l.width = 0
		return
	}
	l.peek, l.width = utf8.DecodeRuneInString(l.src[l.pos:])
}

func (l *Lexer) advance() {
	if l.pos >= len(l.src) {
		return
	}
	if l.peek == core.CharLF {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	l.pos += l.width
	l.decode()
}

func (l *Lexer) loc() *util.ParseLocation {
	return util.NewParseLocation(l.file, l.pos, l.line, l.col)
}

// reset rewinds the scanner to a previously captured location.
func (l *Lexer) reset(at *util.ParseLocation) {
	l.pos = at.Offset
	l.line = at.Line
	l.col = at.Col
	l.decode()
}

func (l *Lexer) errorf(msg string) {
	span := util.NewParseSourceSpan(l.loc(), l.loc())
	panic(util.NewParseError(span, msg))
}

// TakeComments returns the comments collected since the last call.
func (l *Lexer) TakeComments() []*js_ast.Comment {
	cs := l.comments
	l.comments = nil
	return cs
}

func (l *Lexer) skipSpacesAndComments() {
	for {
		if l.peek == core.CharLF {
			l.NewlineBefore = true
		}
		if l.pos < len(l.src) && core.IsWhitespace(l.peek) {
			l.advance()
			continue
		}
		if l.peek == core.CharSLASH && strings.HasPrefix(l.src[l.pos:], "//") {
			start := l.loc()
			for l.pos < len(l.src) && !core.IsNewLine(l.peek) {
				l.advance()
			}
			l.addComment(start)
			continue
		}
		if l.peek == core.CharSLASH && strings.HasPrefix(l.src[l.pos:], "/*") {
			start := l.loc()
			l.advance()
			l.advance()
			for !strings.HasPrefix(l.src[l.pos:], "*/") {
				if l.pos >= len(l.src) {
					l.errorf("Unterminated comment")
				}
				if core.IsNewLine(l.peek) {
					l.NewlineBefore = true
				}
				l.advance()
			}
			l.advance()
			l.advance()
			l.addComment(start)
			continue
		}
		return
	}
}

func (l *Lexer) addComment(start *util.ParseLocation) {
	c := &js_ast.Comment{Text: l.src[start.Offset:l.pos]}
	c.SetSpan(util.NewParseSourceSpan(start, l.loc()))
	l.comments = append(l.comments, c)
}

// Next advances to the next token.
func (l *Lexer) Next() {
	l.PrevEnd = l.End
	l.NewlineBefore = false
	l.skipSpacesAndComments()
	l.Start = l.loc()
	l.Str = ""
	l.Raw = ""

	switch {
	case l.pos >= len(l.src):
		l.Token = TokenEOF
	case core.IsIdentifierStart(l.peek):
		l.scanIdentifier()
	case core.IsDigit(l.peek):
		l.scanNumber()
	case l.peek == core.CharPERIOD && l.pos+1 < len(l.src) && core.IsDigit(rune(l.src[l.pos+1])):
		l.scanNumber()
	case l.peek == core.CharSQ || l.peek == core.CharDQ:
		l.scanString(false)
	case l.peek == core.CharBT:
		l.advance()
		l.scanTemplatePart()
	default:
		l.scanPunct()
	}
	l.End = l.loc()
}

func (l *Lexer) scanIdentifier() {
	start := l.pos
	l.advance()
	for core.IsIdentifierPart(l.peek) {
		l.advance()
	}
	l.Token = TokenIdent
	l.Str = l.src[start:l.pos]
}

func (l *Lexer) scanNumber() {
	start := l.pos
	if l.peek == '0' && l.pos+1 < len(l.src) {
		next := l.src[l.pos+1]
		if next == 'x' || next == 'X' || next == 'o' || next == 'O' || next == 'b' || next == 'B' {
			l.advance()
			l.advance()
			for core.IsAsciiHexDigit(l.peek) || l.peek == core.CharUnderscore {
				l.advance()
			}
			if l.peek == 'n' {
				l.advance()
			}
			l.Token = TokenNumber
			l.Raw = l.src[start:l.pos]
			return
		}
	}
	for core.IsDigit(l.peek) || l.peek == core.CharUnderscore {
		l.advance()
	}
	if l.peek == core.CharPERIOD {
		l.advance()
		for core.IsDigit(l.peek) || l.peek == core.CharUnderscore {
			l.advance()
		}
	}
	if l.peek == 'e' || l.peek == 'E' {
		l.advance()
		if l.peek == core.CharPLUS || l.peek == core.CharMINUS {
			l.advance()
		}
		if !core.IsDigit(l.peek) {
			l.errorf("Invalid exponent")
		}
		for core.IsDigit(l.peek) {
			l.advance()
		}
	}
	if l.peek == 'n' {
		l.advance()
	}
	l.Token = TokenNumber
	l.Raw = l.src[start:l.pos]
}

// scanString scans a single- or double-quoted string. In jsx mode escape
// sequences are not processed, matching JSX attribute semantics.
func (l *Lexer) scanString(jsx bool) {
	quote := l.peek
	l.advance()
	var b strings.Builder
	for l.peek != quote {
		switch {
		case l.pos >= len(l.src):
			l.errorf("Unterminated string literal")
		case !jsx && core.IsNewLine(l.peek):
			l.errorf("Unterminated string literal")
		case !jsx && l.peek == core.CharBACKSLASH:
			l.scanEscape(&b)
		default:
			b.WriteRune(l.peek)
			l.advance()
		}
	}
	l.advance()
	l.Token = TokenString
	l.Str = b.String()
	l.Quote = quote
}

func (l *Lexer) scanEscape(b *strings.Builder) {
	l.advance() // backslash
	switch l.peek {
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'v':
		b.WriteByte('\v')
	case '0':
		b.WriteByte(0)
	case 'x':
		l.advance()
		b.WriteRune(l.scanHex(2))
		return
	case 'u':
		l.advance()
		if l.peek == core.CharLBRACE {
			l.advance()
			code := rune(0)
			for l.peek != core.CharRBRACE {
				code = code*16 + hexValue(l.peek, l)
				l.advance()
			}
			l.advance()
			b.WriteRune(code)
			return
		}
		b.WriteRune(l.scanHex(4))
		return
	case core.CharLF, core.CharCR:
		// Line continuation contributes nothing.
		if l.peek == core.CharCR && strings.HasPrefix(l.src[l.pos:], "\r\n") {
			l.advance()
		}
	default:
		b.WriteRune(l.peek)
	}
	l.advance()
}

func (l *Lexer) scanHex(n int) rune {
	code := rune(0)
	for i := 0; i < n; i++ {
		code = code*16 + hexValue(l.peek, l)
		l.advance()
	}
	return code
}

func hexValue(c rune, l *Lexer) rune {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	l.errorf("Invalid hexadecimal escape")
	return 0
}

// scanTemplatePart scans one static segment of a template literal. The
// caller has consumed the opening backtick or the `}` closing an
// interpolation.
func (l *Lexer) scanTemplatePart() {
	rawStart := l.pos
	var b strings.Builder
	for {
		switch {
		case l.pos >= len(l.src):
			l.errorf("Unterminated template literal")
		case l.peek == core.CharBT:
			l.Raw = l.src[rawStart:l.pos]
			l.advance()
			l.Token = TokenTemplate
			l.Str = b.String()
			l.Tail = true
			return
		case l.peek == core.CharDollar && strings.HasPrefix(l.src[l.pos:], "${"):
			l.Raw = l.src[rawStart:l.pos]
			l.advance()
			l.advance()
			l.Token = TokenTemplate
			l.Str = b.String()
			l.Tail = false
			return
		case l.peek == core.CharBACKSLASH:
			l.scanEscape(&b)
		default:
			b.WriteRune(l.peek)
			l.advance()
		}
	}
}

// RescanTemplatePart continues a template literal after the `}` that closed
// an interpolation.
func (l *Lexer) RescanTemplatePart() {
	l.PrevEnd = l.End
	l.Start = l.loc()
	l.scanTemplatePart()
	l.End = l.loc()
}

// RescanRegex re-scans the current `/` or `/=` token as a regular expression
// literal. The parser calls this only in expression position.
func (l *Lexer) RescanRegex() {
	l.reset(l.Start)
	start := l.pos
	l.advance() // opening slash
	inClass := false
	for {
		switch {
		case l.pos >= len(l.src) || core.IsNewLine(l.peek):
			l.errorf("Unterminated regular expression")
		case l.peek == core.CharBACKSLASH:
			l.advance()
			l.advance()
			continue
		case l.peek == core.CharLBRACKET:
			inClass = true
		case l.peek == core.CharRBRACKET:
			inClass = false
		case l.peek == core.CharSLASH && !inClass:
			l.advance()
			for core.IsIdentifierPart(l.peek) {
				l.advance()
			}
			l.Token = TokenRegex
			l.Raw = l.src[start:l.pos]
			l.End = l.loc()
			return
		}
		l.advance()
	}
}

func (l *Lexer) scanPunct() {
	rest := l.src[l.pos:]
	for _, p := range puncts {
		if strings.HasPrefix(rest, p) {
			for range p {
				l.advance()
			}
			l.Token = TokenPunct
			l.Str = p
			return
		}
	}
	l.errorf("Unexpected character " + string(l.peek))
}

// NextJSXChild scans the next token in JSX child position: raw text, `<` or
// `{`. Whitespace is part of the text, never skipped.
func (l *Lexer) NextJSXChild() {
	l.PrevEnd = l.End
	l.Start = l.loc()
	l.Str = ""
	l.Raw = ""
	switch l.peek {
	case core.CharLT, core.CharLBRACE:
		l.Token = TokenPunct
		l.Str = string(l.peek)
		l.advance()
	default:
		if l.pos >= len(l.src) {
			l.Token = TokenEOF
			break
		}
		start := l.pos
		for l.pos < len(l.src) && l.peek != core.CharLT && l.peek != core.CharLBRACE {
			l.advance()
		}
		l.Token = TokenJSXText
		l.Str = l.src[start:l.pos]
	}
	l.End = l.loc()
}

// NextJSXAttrValue scans a JSX attribute value. Quoted values keep their
// text verbatim; anything else is scanned as a regular token.
func (l *Lexer) NextJSXAttrValue() {
	l.PrevEnd = l.End
	l.NewlineBefore = false
	l.skipSpacesAndComments()
	if l.peek == core.CharSQ || l.peek == core.CharDQ {
		l.Start = l.loc()
		l.scanString(true)
		l.End = l.loc()
		return
	}
	l.Next()
}
