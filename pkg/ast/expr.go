package ast

// BinaryOp identifies a binary operator.
type BinaryOp int

// Binary operators.
const (
	OpAdd BinaryOp = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpEquals
	OpNotEquals
	OpLessThan
	OpGreaterThan
	OpLessThanEquals
	OpGreaterThanEquals
	OpAnd
	OpOr
	OpBitwiseAnd
	OpBitwiseOr
	OpBitwiseXor
	OpShiftLeft
	OpShiftRight
	OpStringConcat
)

// ---------- Literals ----------

// IntLit is an integer literal. Digits holds the literal text (possibly
// with a leading minus); Bits and Unsigned record the declared width.
type IntLit struct {
	Digits   string
	Bits     int // 8, 16, 32 or 64
	Unsigned bool
}

func (*IntLit) exprNode() {}

// FloatLit is a floating-point literal.
type FloatLit struct {
	Text string
	Bits int // 32 or 64
}

func (*FloatLit) exprNode() {}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
}

func (*BoolLit) exprNode() {}

// StringLit is a plain string literal with no interpolation.
type StringLit struct {
	Value string
}

func (*StringLit) exprNode() {}

// Identifier is a (possibly qualified) name reference.
type Identifier struct {
	Name string
}

func (*Identifier) exprNode() {}

// UnitLit is the unit value.
type UnitLit struct{}

func (*UnitLit) exprNode() {}

// NoneLit is the absent-optional value.
type NoneLit struct{}

func (*NoneLit) exprNode() {}

// ---------- Compound forms ----------

// BinaryExpr is a binary operation.
type BinaryExpr struct {
	Left  Expression
	Op    BinaryOp
	Right Expression
}

func (*BinaryExpr) exprNode() {}

// CallExpr is a call to a named function. Name may be qualified with dots.
type CallExpr struct {
	Name string
	Args []Expression
}

func (*CallExpr) exprNode() {}

// MethodCallExpr is a call through a receiver expression.
type MethodCallExpr struct {
	Object Expression
	Method string
	Args   []Expression
}

func (*MethodCallExpr) exprNode() {}

// MemberExpr accesses a member of an object.
type MemberExpr struct {
	Object Expression
	Member string
}

func (*MemberExpr) exprNode() {}

// IndexExpr indexes into an array.
type IndexExpr struct {
	Array Expression
	Index Expression
}

func (*IndexExpr) exprNode() {}

// ArrayLit is an ordered element list.
type ArrayLit struct {
	Elements []Expression
}

func (*ArrayLit) exprNode() {}

// FieldInit is one field initializer of a struct literal.
type FieldInit struct {
	Name  string
	Value Expression
}

// StructLit constructs a struct value. Fields are in struct-declaration
// order; the parser is responsible for that ordering.
type StructLit struct {
	Name   string
	Fields []FieldInit
}

func (*StructLit) exprNode() {}

// StringPart is one span of an interpolated string.
type StringPart interface {
	stringPartNode()
}

// TextPart is a literal text span.
type TextPart struct {
	Text string
}

func (*TextPart) stringPartNode() {}

// ExprPart is an embedded expression span.
type ExprPart struct {
	Expr Expression
}

func (*ExprPart) stringPartNode() {}

// InterpLit is a string with embedded expressions, parts in source order.
type InterpLit struct {
	Parts []StringPart
}

func (*InterpLit) exprNode() {}

// MatchArm is one pattern => body branch of a match expression.
type MatchArm struct {
	Pattern Pattern
	Guard   Expression // nil when the arm has no guard
	Body    Expression
}

// MatchExpr is a scrutinee ? arms pattern match.
type MatchExpr struct {
	Scrutinee Expression
	Arms      []MatchArm
}

func (*MatchExpr) exprNode() {}

// ClosureExpr is an anonymous single-expression function.
type ClosureExpr struct {
	Params []Param
	Body   Expression
}

func (*ClosureExpr) exprNode() {}

// BlockExpr is a statement block used as an expression.
type BlockExpr struct {
	Statements []Statement
}

func (*BlockExpr) exprNode() {}

// ReturnExpr is an early return in expression position.
type ReturnExpr struct {
	Expr Expression
}

func (*ReturnExpr) exprNode() {}

// BreakExpr is a break in expression position.
type BreakExpr struct{}

func (*BreakExpr) exprNode() {}

// ContinueExpr is a continue in expression position.
type ContinueExpr struct{}

func (*ContinueExpr) exprNode() {}

// EnumVariantExpr constructs an enum variant through its declared enum.
type EnumVariantExpr struct {
	EnumName string
	Variant  string
	Payload  Expression // nil for payload-less variants
}

func (*EnumVariantExpr) exprNode() {}

// EnumLit constructs a bare enum value from a leading-dot variant form.
type EnumLit struct {
	Variant string
	Payload Expression // nil for payload-less variants
}

func (*EnumLit) exprNode() {}

// SomeExpr wraps a present optional value.
type SomeExpr struct {
	Value Expression
}

func (*SomeExpr) exprNode() {}

// RangeExpr is a numeric range, half-open unless Inclusive.
type RangeExpr struct {
	Start     Expression
	End       Expression
	Inclusive bool
}

func (*RangeExpr) exprNode() {}

// LoopExpr is an unconditional loop in expression position.
type LoopExpr struct {
	Body Expression
}

func (*LoopExpr) exprNode() {}

// CollectionLoop iterates a collection with a per-element body.
type CollectionLoop struct {
	Collection Expression
	Param      string
	IndexParam string // empty when no index parameter was requested
	Body       Expression
}

func (*CollectionLoop) exprNode() {}

// RaiseExpr raises an error value.
type RaiseExpr struct {
	Value Expression
}

func (*RaiseExpr) exprNode() {}

// ComptimeExpr marks a compile-time-evaluated expression.
type ComptimeExpr struct {
	Expr Expression
}

func (*ComptimeExpr) exprNode() {}

// StdRef is the implicit standard-library handle (@std).
type StdRef struct{}

func (*StdRef) exprNode() {}

// SelfRef is the current-instance handle.
type SelfRef struct{}

func (*SelfRef) exprNode() {}

// BadExpr is an expression the parser could not classify.
type BadExpr struct {
	Kind string
}

func (*BadExpr) exprNode() {}
