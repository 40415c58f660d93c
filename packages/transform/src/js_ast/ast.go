// Package js_ast defines the syntax tree for the JavaScript/TypeScript/JSX
// superset grammar consumed by the transform. The node set is closed: the
// rewriter and the emitter dispatch over it with exhaustive type switches.
package js_ast

import "github.com/skyclouds2001/babel-i18n-transform-tool/packages/transform/src/util"

// Node is a node in the syntax tree.
type Node interface {
	Span() *util.ParseSourceSpan
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement node. Statements carry leading comments so a
// parse/print round trip does not drop them.
type Stmt interface {
	Node
	stmtNode()
	LeadingComments() []*Comment
	SetLeadingComments([]*Comment)
}

// TSType is a type-level node. The rewriter never descends into type
// positions: literals below a TSType have no runtime representation.
type TSType interface {
	Node
	typeNode()
}

// ObjectMember is an entry in an object literal.
type ObjectMember interface {
	Node
	objectMemberNode()
}

type node struct {
	span *util.ParseSourceSpan
}

func (n *node) Span() *util.ParseSourceSpan { return n.span }

// SetSpan attaches a source span to the node. Nodes synthesized by the
// rewriter keep a nil span.
func (n *node) SetSpan(span *util.ParseSourceSpan) { n.span = span }

type stmtBase struct {
	node
	leading []*Comment
}

func (s *stmtBase) stmtNode()                        {}
func (s *stmtBase) LeadingComments() []*Comment      { return s.leading }
func (s *stmtBase) SetLeadingComments(cs []*Comment) { s.leading = cs }

// Comment is a single line or block comment, text inclusive of the markers.
type Comment struct {
	node
	Text string
}

// ---------------------------------------------------------------------------
// Statements

// Program is the top-level unit body.
type Program struct {
	node
	Body []Stmt
	// Trailing comments after the last statement.
	Trailing []*Comment
}

// ImportSpecKind distinguishes the binding forms of an import specifier.
type ImportSpecKind int

const (
	ImportDefault ImportSpecKind = iota
	ImportNamed
	ImportNamespace
)

// ImportSpecifier is one binding introduced by an import declaration.
type ImportSpecifier struct {
	node
	Kind ImportSpecKind
	// Local is the name bound in this unit.
	Local string
	// Imported is the exported name for named specifiers; empty otherwise.
	Imported string
}

// ImportDecl represents `import ... from "source";`.
type ImportDecl struct {
	stmtBase
	Specifiers []*ImportSpecifier
	Source     *StringLit
	// TypeOnly marks `import type`.
	TypeOnly bool
}

// NewImportDecl creates an import declaration binding a single default
// specifier, the form the injector inserts.
func NewImportDecl(local, source string) *ImportDecl {
	return &ImportDecl{
		Specifiers: []*ImportSpecifier{{Kind: ImportDefault, Local: local}},
		Source:     NewStringLit(source),
	}
}

// ExportDecl represents `export <decl>` or `export default <expr>`.
type ExportDecl struct {
	stmtBase
	// Decl is set for `export const ...`, `export function ...` and similar.
	Decl Stmt
	// Default marks `export default`; the exported value is either Decl
	// (function/class) or Expr.
	Default bool
	Expr    Expr
	// Specifiers and Source carry `export { a as b } [from "source"]`.
	Specifiers []*ImportSpecifier
	Source     *StringLit
}

// VarDeclarator is one `name[: type][= init]` entry of a declaration.
type VarDeclarator struct {
	node
	// Name is an identifier or a destructuring pattern.
	Name Expr
	Type TSType
	Init Expr
}

// VarDecl represents a `var`/`let`/`const` declaration statement.
type VarDecl struct {
	stmtBase
	Kind  string
	Decls []*VarDeclarator
}

// Param is a function parameter.
type Param struct {
	node
	Name     Expr
	Type     TSType
	Optional bool
	Default  Expr
	Rest     bool
}

// FuncDecl represents a function declaration statement. TypeParams carries a
// generic parameter list verbatim from the source, angle brackets included.
type FuncDecl struct {
	stmtBase
	Name       *Ident
	TypeParams string
	Params     []*Param
	ReturnType TSType
	Body       *BlockStmt
	Async      bool
	Generator  bool
}

// ClassMemberKind distinguishes methods from property definitions.
type ClassMemberKind int

const (
	ClassMethod ClassMemberKind = iota
	ClassProperty
	ClassGetter
	ClassSetter
)

// ClassMember is a method or property definition inside a class body.
// Modifiers keeps access and readonly modifiers in source order; static,
// async, get and set are carried as structured fields.
type ClassMember struct {
	node
	Kind      ClassMemberKind
	Modifiers []string
	Static    bool
	Key       Expr
	Computed  bool
	Optional  bool

	// Method form.
	TypeParams string
	Params     []*Param
	ReturnType TSType
	Body       *BlockStmt
	Async      bool

	// Property form.
	Type  TSType
	Value Expr
}

// ClassDecl represents a class declaration statement.
type ClassDecl struct {
	stmtBase
	Name       *Ident
	TypeParams string
	SuperClass Expr
	Members    []*ClassMember
}

// TypeAliasDecl represents `type Name = T;`. Its right-hand side is a pure
// type-level context.
type TypeAliasDecl struct {
	stmtBase
	Name       *Ident
	TypeParams string
	Type       TSType
}

// TSPropertySignature is one member of an interface or object type.
type TSPropertySignature struct {
	node
	Key      Expr
	Optional bool
	Type     TSType
}

// InterfaceDecl represents `interface Name [extends ...] { ... }`.
type InterfaceDecl struct {
	stmtBase
	Name       *Ident
	TypeParams string
	Extends    []TSType
	Members    []*TSPropertySignature
}

// ReturnStmt represents `return [expr];`.
type ReturnStmt struct {
	stmtBase
	Arg Expr
}

// ThrowStmt represents `throw expr;`.
type ThrowStmt struct {
	stmtBase
	Arg Expr
}

// IfStmt represents an if/else statement.
type IfStmt struct {
	stmtBase
	Test Expr
	Cons Stmt
	Alt  Stmt
}

// ForStmt represents a classic three-clause for loop. Init is a *VarDecl or
// an expression statement, either possibly nil.
type ForStmt struct {
	stmtBase
	Init   Stmt
	Test   Expr
	Update Expr
	Body   Stmt
}

// ForInStmt represents `for (left in|of right) body`.
type ForInStmt struct {
	stmtBase
	// Of is true for for-of.
	Of    bool
	Left  Stmt
	Right Expr
	Body  Stmt
}

// WhileStmt represents a while loop.
type WhileStmt struct {
	stmtBase
	Test Expr
	Body Stmt
}

// SwitchCase is one case (or default, when Test is nil) of a switch.
type SwitchCase struct {
	node
	Test Expr
	Body []Stmt
}

// SwitchStmt represents a switch statement.
type SwitchStmt struct {
	stmtBase
	Disc  Expr
	Cases []*SwitchCase
}

// TryStmt represents try/catch/finally.
type TryStmt struct {
	stmtBase
	Block      *BlockStmt
	CatchParam Expr
	Catch      *BlockStmt
	Finally    *BlockStmt
}

// BreakStmt represents `break [label];`.
type BreakStmt struct {
	stmtBase
	Label string
}

// ContinueStmt represents `continue [label];`.
type ContinueStmt struct {
	stmtBase
	Label string
}

// BlockStmt represents a braced statement list.
type BlockStmt struct {
	stmtBase
	Body []Stmt
}

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	stmtBase
	X Expr
}

// ---------------------------------------------------------------------------
// Expressions

type exprBase struct {
	node
}

func (e *exprBase) exprNode() {}

// Ident is an identifier reference.
type Ident struct {
	exprBase
	Name string
}

// NewIdent creates a new identifier expression.
func NewIdent(name string) *Ident {
	return &Ident{Name: name}
}

// StringLit is a string literal. Value holds the cooked (unescaped) text.
type StringLit struct {
	exprBase
	Value string
}

// NewStringLit creates a new string literal.
func NewStringLit(value string) *StringLit {
	return &StringLit{Value: value}
}

// NumberLit is a numeric literal; Raw preserves the source spelling.
type NumberLit struct {
	exprBase
	Raw string
}

// BoolLit is `true` or `false`.
type BoolLit struct {
	exprBase
	Value bool
}

// NullLit is `null`.
type NullLit struct {
	exprBase
}

// RegexLit is a regular expression literal, kept verbatim.
type RegexLit struct {
	exprBase
	Raw string
}

// TemplateElement is one static segment of a template literal.
type TemplateElement struct {
	node
	// Raw is the source spelling, Cooked the unescaped text.
	Raw    string
	Cooked string
}

// NewTemplateElement creates a template element whose raw and cooked forms
// coincide.
func NewTemplateElement(text string) *TemplateElement {
	return &TemplateElement{Raw: text, Cooked: text}
}

// TemplateLit is a template literal. There is always exactly one more quasi
// than interpolated expression.
type TemplateLit struct {
	exprBase
	Quasis []*TemplateElement
	Exprs  []Expr
}

// TaggedTemplate represents tag`...`.
type TaggedTemplate struct {
	exprBase
	Tag   Expr
	Quasi *TemplateLit
}

// ArrayLit is an array literal.
type ArrayLit struct {
	exprBase
	Elems []Expr
}

// Property is a key/value member of an object literal. For shorthand members
// Value is the same identifier as Key. For methods Value is a *FuncExpr.
type Property struct {
	node
	Key       Expr
	Computed  bool
	Shorthand bool
	Method    bool
	Kind      string // "", "get" or "set"
	Value     Expr
}

func (p *Property) objectMemberNode() {}

// SpreadElement represents `...expr` in arrays, objects, calls and patterns.
type SpreadElement struct {
	exprBase
	Arg Expr
}

func (s *SpreadElement) objectMemberNode() {}

// ObjectLit is an object literal.
type ObjectLit struct {
	exprBase
	Props []ObjectMember
}

// FuncExpr is a function expression.
type FuncExpr struct {
	exprBase
	Name       *Ident
	TypeParams string
	Params     []*Param
	ReturnType TSType
	Body       *BlockStmt
	Async      bool
	Generator  bool
}

// ArrowFunc is an arrow function. Body is a *BlockStmt or an Expr.
type ArrowFunc struct {
	exprBase
	Params     []*Param
	ReturnType TSType
	Body       Node
	Async      bool
}

// CallExpr is a call expression.
type CallExpr struct {
	exprBase
	Callee   Expr
	Args     []Expr
	Optional bool
}

// NewCallExpr creates a call expression.
func NewCallExpr(callee Expr, args ...Expr) *CallExpr {
	return &CallExpr{Callee: callee, Args: args}
}

// NewExpr is a `new` expression.
type NewExpr struct {
	exprBase
	Callee Expr
	Args   []Expr
}

// MemberExpr is a member access, dot or computed.
type MemberExpr struct {
	exprBase
	Obj      Expr
	Prop     Expr
	Computed bool
	Optional bool
}

// UnaryExpr is a prefix unary expression (typeof, void, delete, !, -, +, ~).
type UnaryExpr struct {
	exprBase
	Op  string
	Arg Expr
}

// UpdateExpr is ++ or --, prefix or postfix.
type UpdateExpr struct {
	exprBase
	Op     string
	Prefix bool
	Arg    Expr
}

// BinaryExpr covers arithmetic, comparison, logical and nullish operators.
type BinaryExpr struct {
	exprBase
	Op  string
	Lhs Expr
	Rhs Expr
}

// AssignExpr is an assignment, including compound operators.
type AssignExpr struct {
	exprBase
	Op     string
	Target Expr
	Value  Expr
}

// CondExpr is the ternary conditional.
type CondExpr struct {
	exprBase
	Test Expr
	Cons Expr
	Alt  Expr
}

// SeqExpr is a comma sequence.
type SeqExpr struct {
	exprBase
	Exprs []Expr
}

// ParenExpr preserves explicit parentheses through the round trip.
type ParenExpr struct {
	exprBase
	X Expr
}

// TSAsExpr is `expr as Type`, including `as const`.
type TSAsExpr struct {
	exprBase
	X    Expr
	Type TSType
}

// TSNonNullExpr is the postfix `!` assertion.
type TSNonNullExpr struct {
	exprBase
	X Expr
}

// ---------------------------------------------------------------------------
// JSX

// JSXAttrNode is an attribute entry of a JSX opening tag.
type JSXAttrNode interface {
	Node
	jsxAttrNode()
}

// JSXAttr is `name`, `name="value"` or `name={expr}`.
type JSXAttr struct {
	node
	Name string
	// Value is nil, a *StringLit or a *JSXExprContainer.
	Value Node
}

func (a *JSXAttr) jsxAttrNode() {}

// JSXSpreadAttr is `{...expr}` in an opening tag.
type JSXSpreadAttr struct {
	node
	Arg Expr
}

func (a *JSXSpreadAttr) jsxAttrNode() {}

// JSXOpening is the opening tag of an element.
type JSXOpening struct {
	node
	Name        string
	Attrs       []JSXAttrNode
	SelfClosing bool
}

// JSXElement is a JSX element. Children hold *JSXText, *JSXExprContainer,
// *JSXElement and *JSXFragment nodes.
type JSXElement struct {
	exprBase
	Opening  *JSXOpening
	Children []Node
}

// JSXFragment is `<>...</>`.
type JSXFragment struct {
	exprBase
	Children []Node
}

// JSXText is raw text between tags.
type JSXText struct {
	node
	Value string
}

// JSXExprContainer is `{expr}` used as an attribute value or a child.
type JSXExprContainer struct {
	node
	X Expr
}

// NewJSXExprContainer wraps an expression in a JSX container.
func NewJSXExprContainer(x Expr) *JSXExprContainer {
	return &JSXExprContainer{X: x}
}

// ---------------------------------------------------------------------------
// Types

type typeBase struct {
	node
}

func (t *typeBase) typeNode() {}

// TSKeywordType is a built-in keyword type such as `string` or `number`.
type TSKeywordType struct {
	typeBase
	Name string
}

// TSTypeRef is a (possibly dotted, possibly generic) type reference. The
// `const` of an `as const` assertion parses as a TSTypeRef named "const".
type TSTypeRef struct {
	typeBase
	Name string
	Args []TSType
}

// TSLiteralType is a literal used as a type. Its literal never has a runtime
// representation and is never rewritten.
type TSLiteralType struct {
	typeBase
	Lit Expr
}

// TSUnionType is `A | B | ...`.
type TSUnionType struct {
	typeBase
	Types []TSType
}

// TSIntersectionType is `A & B & ...`.
type TSIntersectionType struct {
	typeBase
	Types []TSType
}

// TSArrayType is `T[]`.
type TSArrayType struct {
	typeBase
	Elem TSType
}

// TSParenType is a parenthesized type.
type TSParenType struct {
	typeBase
	X TSType
}

// TSFunctionType is `(params) => T`.
type TSFunctionType struct {
	typeBase
	Params []*Param
	Return TSType
}

// TSObjectType is an inline object type literal.
type TSObjectType struct {
	typeBase
	Members []*TSPropertySignature
}

// TSTupleType is `[A, B, ...]`.
type TSTupleType struct {
	typeBase
	Elems []TSType
}

// TSTypeQuery is `typeof name`.
type TSTypeQuery struct {
	typeBase
	Name string
}

// TSIndexedAccessType is `T[K]`.
type TSIndexedAccessType struct {
	typeBase
	Obj   TSType
	Index TSType
}

// TSRestType is `...T` inside a tuple.
type TSRestType struct {
	typeBase
	Elem TSType
}

// TSTypeOperator is a prefix operator type such as `keyof T` or `readonly T`.
type TSTypeOperator struct {
	typeBase
	Op string
	X  TSType
}

// TSConditionalType is `C extends E ? T : F`.
type TSConditionalType struct {
	typeBase
	Check   TSType
	Extends TSType
	True    TSType
	False   TSType
}
