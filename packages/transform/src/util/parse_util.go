package util

import (
	"fmt"
	"strings"
)

// ParseSourceFile represents one source file being transformed.
type ParseSourceFile struct {
	Content string
	URL     string
}

// NewParseSourceFile creates a new ParseSourceFile.
func NewParseSourceFile(content, url string) *ParseSourceFile {
	return &ParseSourceFile{
		Content: content,
		URL:     url,
	}
}

// ParseLocation represents a location in a source file.
type ParseLocation struct {
	File   *ParseSourceFile
	Offset int
	Line   int
	Col    int
}

// NewParseLocation creates a new ParseLocation.
func NewParseLocation(file *ParseSourceFile, offset, line, col int) *ParseLocation {
	return &ParseLocation{
		File:   file,
		Offset: offset,
		Line:   line,
		Col:    col,
	}
}

// String returns a string representation of the location.
func (p *ParseLocation) String() string {
	if p.Offset >= 0 {
		return fmt.Sprintf("%s@%d:%d", p.File.URL, p.Line, p.Col)
	}
	return p.File.URL
}

// ParseSourceSpan represents a span of source code.
type ParseSourceSpan struct {
	Start *ParseLocation
	End   *ParseLocation
}

// NewParseSourceSpan creates a new ParseSourceSpan.
func NewParseSourceSpan(start, end *ParseLocation) *ParseSourceSpan {
	return &ParseSourceSpan{Start: start, End: end}
}

// String returns the source text covered by this span.
func (p *ParseSourceSpan) String() string {
	if p == nil || p.Start == nil || p.End == nil {
		return ""
	}
	content := p.Start.File.Content
	if p.Start.Offset < 0 || p.End.Offset > len(content) {
		return ""
	}
	return content[p.Start.Offset:p.End.Offset]
}

// ParseError represents a parse or print error for a single unit. The unit is
// skipped; the batch continues.
type ParseError struct {
	Span *ParseSourceSpan
	Msg  string
}

// NewParseError creates a new ParseError.
func NewParseError(span *ParseSourceSpan, msg string) *ParseError {
	return &ParseError{Span: span, Msg: msg}
}

// Error implements the error interface.
func (p *ParseError) Error() string {
	if p.Span == nil || p.Span.Start == nil {
		return p.Msg
	}
	return fmt.Sprintf("%s: %s", p.Msg, p.Span.Start)
}

// ContextualMessage returns the error message with surrounding source context.
func (p *ParseError) ContextualMessage() string {
	if p.Span == nil || p.Span.Start == nil || p.Span.Start.Offset < 0 {
		return p.Msg
	}
	content := p.Span.Start.File.Content
	offset := p.Span.Start.Offset
	if offset > len(content) {
		offset = len(content)
	}
	before := content[:offset]
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	after := content[offset:]
	if i := strings.IndexByte(after, '\n'); i >= 0 {
		after = after[:i]
	}
	return fmt.Sprintf("%s (%q[ERROR ->]%q)", p.Msg, before, after)
}
