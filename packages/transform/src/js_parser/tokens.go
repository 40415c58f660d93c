package js_parser

// TokenType represents the type of a token.
type TokenType int

const (
	TokenEOF TokenType = iota
	// TokenIdent covers identifiers and keywords; the parser decides which
	// identifiers act as keywords from context.
	TokenIdent
	TokenString
	TokenNumber
	TokenPunct
	// TokenTemplate is one static part of a template literal. Tail reports
	// whether the part ended the literal or ran into an interpolation.
	TokenTemplate
	TokenRegex
	// TokenJSXText is raw text between JSX tags, produced only by
	// NextJSXChild.
	TokenJSXText
)

// String returns a readable name for the token type.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end of file"
	case TokenIdent:
		return "identifier"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenPunct:
		return "punctuator"
	case TokenTemplate:
		return "template part"
	case TokenRegex:
		return "regular expression"
	case TokenJSXText:
		return "jsx text"
	default:
		return "unknown"
	}
}
