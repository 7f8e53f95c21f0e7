package ast

// WildcardPattern matches anything and binds nothing.
type WildcardPattern struct{}

func (*WildcardPattern) patternNode() {}

// LiteralPattern matches by equality against a literal expression.
type LiteralPattern struct {
	Value Expression
}

func (*LiteralPattern) patternNode() {}

// IdentifierPattern always matches and binds the scrutinee to Name.
type IdentifierPattern struct {
	Name string
}

func (*IdentifierPattern) patternNode() {}

// EnumLiteralPattern matches a leading-dot variant form, optionally
// destructuring the payload with an inner pattern.
type EnumLiteralPattern struct {
	Variant string
	Payload Pattern // nil when no payload is destructured
}

func (*EnumLiteralPattern) patternNode() {}

// EnumVariantPattern matches an enum-qualified variant.
type EnumVariantPattern struct {
	EnumName string
	Variant  string
}

func (*EnumVariantPattern) patternNode() {}

// TypePattern matches by runtime type tag. Name is the source type name,
// or the literal tags "true"/"false".
type TypePattern struct {
	Name string
}

func (*TypePattern) patternNode() {}

// OrPattern matches when any alternative matches.
type OrPattern struct {
	Alternatives []Pattern
}

func (*OrPattern) patternNode() {}

// RangePattern matches a numeric range, half-open unless Inclusive.
type RangePattern struct {
	Start     Expression
	End       Expression
	Inclusive bool
}

func (*RangePattern) patternNode() {}

// BadPattern is a pattern the parser could not classify.
type BadPattern struct {
	Kind string
}

func (*BadPattern) patternNode() {}
