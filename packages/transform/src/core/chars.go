package core

import "unicode"

// Character code constants used by the scanner.
const (
	CharEOF       = 0
	CharTAB       = 9
	CharLF        = 10
	CharVTAB      = 11
	CharFF        = 12
	CharCR        = 13
	CharSPACE     = 32
	CharBANG      = 33
	CharDQ        = 34
	CharHASH      = 35
	CharDollar    = 36
	CharPERCENT   = 37
	CharAMPERSAND = 38
	CharSQ        = 39
	CharLPAREN    = 40
	CharRPAREN    = 41
	CharSTAR      = 42
	CharPLUS      = 43
	CharCOMMA     = 44
	CharMINUS     = 45
	CharPERIOD    = 46
	CharSLASH     = 47
	CharCOLON     = 58
	CharSEMICOLON = 59
	CharLT        = 60
	CharEQ        = 61
	CharGT        = 62
	CharQUESTION  = 63
	CharAT        = 64

	Char0 = 48
	Char9 = 57

	CharA = 65
	CharZ = 90

	CharLBRACKET   = 91
	CharBACKSLASH  = 92
	CharRBRACKET   = 93
	CharCARET      = 94
	CharUnderscore = 95
	CharBT         = 96

	CharLowerA = 97
	CharLowerZ = 122

	CharLBRACE = 123
	CharBAR    = 124
	CharRBRACE = 125
	CharTILDA  = 126
	CharNBSP   = 160
)

// IsWhitespace checks if a rune is whitespace, including line terminators.
func IsWhitespace(code rune) bool {
	return (code >= CharTAB && code <= CharSPACE) || code == CharNBSP || unicode.IsSpace(code)
}

// IsNewLine checks if a rune is a line terminator.
func IsNewLine(code rune) bool {
	return code == CharLF || code == CharCR
}

// IsDigit checks if a rune is a decimal digit.
func IsDigit(code rune) bool {
	return Char0 <= code && code <= Char9
}

// IsAsciiLetter checks if a rune is an ASCII letter.
func IsAsciiLetter(code rune) bool {
	return (code >= CharLowerA && code <= CharLowerZ) || (code >= CharA && code <= CharZ)
}

// IsAsciiHexDigit checks if a rune is a hexadecimal digit.
func IsAsciiHexDigit(code rune) bool {
	return (code >= 'a' && code <= 'f') || (code >= 'A' && code <= 'F') || IsDigit(code)
}

// IsQuote checks if a rune is a quote character.
func IsQuote(code rune) bool {
	return code == CharSQ || code == CharDQ || code == CharBT
}

// IsIdentifierStart checks if a rune can start an identifier. JavaScript
// identifiers may begin with any Unicode letter, which is how CJK property
// names such as `键名` end up as bare identifiers.
func IsIdentifierStart(code rune) bool {
	return IsAsciiLetter(code) || code == CharUnderscore || code == CharDollar ||
		(code > 127 && unicode.IsLetter(code))
}

// IsIdentifierPart checks if a rune can continue an identifier.
func IsIdentifierPart(code rune) bool {
	return IsIdentifierStart(code) || IsDigit(code) || (code > 127 && unicode.IsDigit(code))
}
