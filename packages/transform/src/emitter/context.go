// Package emitter prints a js_ast tree back to source text. Output is
// normalized: two-space indentation, single-quoted strings, one statement
// per line.
package emitter

import "strings"

var indentWith = "  "

// EmittedLine represents a line being emitted.
type EmittedLine struct {
	Parts  []string
	Indent int
}

// NewEmittedLine creates a new EmittedLine.
func NewEmittedLine(indent int) *EmittedLine {
	return &EmittedLine{Parts: []string{}, Indent: indent}
}

// EmitterVisitorContext accumulates output lines at the current indent.
type EmitterVisitorContext struct {
	lines  []*EmittedLine
	indent int
}

// CreateRootEmitterVisitorContext creates a root context.
func CreateRootEmitterVisitorContext() *EmitterVisitorContext {
	return &EmitterVisitorContext{lines: []*EmittedLine{NewEmittedLine(0)}}
}

func (ctx *EmitterVisitorContext) currentLine() *EmittedLine {
	return ctx.lines[len(ctx.lines)-1]
}

// LineIsEmpty checks if the current line is empty.
func (ctx *EmitterVisitorContext) LineIsEmpty() bool {
	return len(ctx.currentLine().Parts) == 0
}

// Print appends a part to the current line. Embedded newlines split the part
// across lines; continuation lines carry no indent so verbatim text such as
// template literals and JSX children survives untouched.
func (ctx *EmitterVisitorContext) Print(part string) {
	if part == "" {
		return
	}
	if !strings.Contains(part, "\n") {
		ctx.appendPart(part)
		return
	}
	segs := strings.Split(part, "\n")
	ctx.appendPart(segs[0])
	for _, seg := range segs[1:] {
		ctx.lines = append(ctx.lines, NewEmittedLine(0))
		ctx.appendPart(seg)
	}
}

// Println appends a part and terminates the line.
func (ctx *EmitterVisitorContext) Println(part string) {
	ctx.Print(part)
	ctx.lines = append(ctx.lines, NewEmittedLine(ctx.indent))
}

func (ctx *EmitterVisitorContext) appendPart(part string) {
	if part == "" {
		return
	}
	line := ctx.currentLine()
	line.Parts = append(line.Parts, part)
}

// IncIndent increases the indentation level.
func (ctx *EmitterVisitorContext) IncIndent() {
	ctx.indent++
	if ctx.LineIsEmpty() {
		ctx.currentLine().Indent = ctx.indent
	}
}

// DecIndent decreases the indentation level.
func (ctx *EmitterVisitorContext) DecIndent() {
	ctx.indent--
	if ctx.LineIsEmpty() {
		ctx.currentLine().Indent = ctx.indent
	}
}

// ToSource joins the emitted lines into source text with a trailing newline.
func (ctx *EmitterVisitorContext) ToSource() string {
	var b strings.Builder
	for _, line := range ctx.lines {
		if len(line.Parts) == 0 {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(strings.Repeat(indentWith, line.Indent))
		b.WriteString(strings.Join(line.Parts, ""))
		b.WriteByte('\n')
	}
	out := b.String()
	return strings.TrimRight(out, "\n") + "\n"
}
