// Package ast defines the abstract syntax tree for Zen programs.
//
// Nodes are plain data produced by the parser; no logic lives here. Each of
// the four syntactic categories (Declaration, Statement, Expression, Pattern)
// is a closed interface with an unexported marker method.
package ast

// Program is a fully parsed Zen source file. Declaration order is
// significant: the emitter reproduces it without reordering.
type Program struct {
	Declarations []Declaration
	Statements   []Statement
}

// Declaration is a top-level declaration.
type Declaration interface {
	declNode()
}

// Statement is an executable statement.
type Statement interface {
	stmtNode()
}

// Expression is a value-producing form.
type Expression interface {
	exprNode()
}

// Pattern is a match-arm pattern.
type Pattern interface {
	patternNode()
}

// ---------- Declarations ----------

// Param is a named, typed function parameter.
type Param struct {
	Name string
	Type Type
}

// Function represents a named function declaration.
type Function struct {
	Name       string
	Params     []Param
	ReturnType Type // nil means void
	Body       []Statement
}

func (*Function) declNode() {}

// Field is a struct field, optionally carrying a default value.
type Field struct {
	Name    string
	Type    Type
	Default Expression // nil when the field has no default
}

// StructDecl represents a struct declaration with fields and methods.
type StructDecl struct {
	Name    string
	Fields  []Field
	Methods []*Function
}

func (*StructDecl) declNode() {}

// EnumVariantDef is one variant of an enum declaration.
type EnumVariantDef struct {
	Name    string
	Payload Type // nil for payload-less variants
}

// EnumDecl represents an enum declaration.
type EnumDecl struct {
	Name     string
	Variants []EnumVariantDef
	Methods  []*Function
}

func (*EnumDecl) declNode() {}

// ConstantDecl is a top-level constant binding.
type ConstantDecl struct {
	Name  string
	Value Expression
}

func (*ConstantDecl) declNode() {}

// TypeAlias names an existing type. It has no runtime representation.
type TypeAlias struct {
	Name   string
	Target Type
}

func (*TypeAlias) declNode() {}

// ImplBlock attaches methods to a previously declared type.
type ImplBlock struct {
	TypeName string
	Methods  []*Function
}

func (*ImplBlock) declNode() {}

// ExportDecl lists symbols exported from the module.
type ExportDecl struct {
	Symbols []string
}

func (*ExportDecl) declNode() {}

// ModuleImport binds an alias to another module.
type ModuleImport struct {
	Alias      string
	ModulePath string
}

func (*ModuleImport) declNode() {}

// ComptimeBlock is a compile-time-evaluated block.
type ComptimeBlock struct {
	Body []Statement
}

func (*ComptimeBlock) declNode() {}

// BadDecl is a declaration the parser recognized but could not classify.
// Kind names the construct for diagnostics.
type BadDecl struct {
	Kind string
}

func (*BadDecl) declNode() {}

// ---------- Statements ----------

// ExpressionStmt is an expression evaluated for its side effects.
type ExpressionStmt struct {
	Expr Expression
}

func (*ExpressionStmt) stmtNode() {}

// ReturnStmt returns an expression from the enclosing function.
type ReturnStmt struct {
	Expr Expression
}

func (*ReturnStmt) stmtNode() {}

// VariableDecl binds a name. Mutable selects the binding keyword in the
// target; whether a fresh binding is emitted at all depends on scope state.
type VariableDecl struct {
	Name        string
	Initializer Expression // nil for a bare declaration
	Mutable     bool
}

func (*VariableDecl) stmtNode() {}

// Assignment assigns to an already-bound name.
type Assignment struct {
	Name  string
	Value Expression
}

func (*Assignment) stmtNode() {}

// LoopStmt is an unconditional loop when Condition is nil, otherwise a
// pre-test conditional loop.
type LoopStmt struct {
	Condition Expression
	Body      []Statement
}

func (*LoopStmt) stmtNode() {}

// BreakStmt exits the innermost loop.
type BreakStmt struct{}

func (*BreakStmt) stmtNode() {}

// ContinueStmt continues the innermost loop.
type ContinueStmt struct{}

func (*ContinueStmt) stmtNode() {}

// BlockStmt is a nested statement block.
type BlockStmt struct {
	Statements []Statement
}

func (*BlockStmt) stmtNode() {}

// DestructuringImport binds a list of names from a module expression.
type DestructuringImport struct {
	Names  []string
	Source Expression
}

func (*DestructuringImport) stmtNode() {}

// DeferStmt requests execution of a statement on scope exit.
type DeferStmt struct {
	Statement Statement
}

func (*DeferStmt) stmtNode() {}

// PointerAssignment assigns through an arbitrary assignable expression
// (field or index target) rather than a bare name.
type PointerAssignment struct {
	Target Expression
	Value  Expression
}

func (*PointerAssignment) stmtNode() {}

// BadStmt is a statement the parser could not classify.
type BadStmt struct {
	Kind string
}

func (*BadStmt) stmtNode() {}
