package ast

// Type is a Zen source type annotation. Types are erased during emission;
// they survive only as documentation annotations.
type Type interface {
	typeNode()
}

// PrimKind identifies a primitive type.
type PrimKind int

// Primitive kinds.
const (
	I8 PrimKind = iota
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	Usize
	F32
	F64
	Bool
	String
	Void
)

var primNames = map[PrimKind]string{
	I8:     "i8",
	I16:    "i16",
	I32:    "i32",
	I64:    "i64",
	U8:     "u8",
	U16:    "u16",
	U32:    "u32",
	U64:    "u64",
	Usize:  "usize",
	F32:    "f32",
	F64:    "f64",
	Bool:   "bool",
	String: "string",
	Void:   "void",
}

// String returns the source spelling of the primitive kind.
func (k PrimKind) String() string {
	if name, ok := primNames[k]; ok {
		return name
	}
	return "unknown"
}

// Primitive is a built-in scalar type.
type Primitive struct {
	Kind PrimKind
}

func (*Primitive) typeNode() {}

// Slice is a dynamically sized sequence type.
type Slice struct {
	Elem Type
}

func (*Slice) typeNode() {}

// FixedArray is a fixed-length sequence type.
type FixedArray struct {
	Elem Type
	Size int
}

func (*FixedArray) typeNode() {}

// NamedType refers to a declared struct, enum or alias by name.
type NamedType struct {
	Name string
}

func (*NamedType) typeNode() {}

// GenericType is a named type with type arguments.
type GenericType struct {
	Name string
	Args []Type
}

func (*GenericType) typeNode() {}

// FuncType is a function type.
type FuncType struct {
	Params []Type
	Return Type
}

func (*FuncType) typeNode() {}

// RefType is a reference to another type. References are identity in the
// target, so only the referent matters for documentation.
type RefType struct {
	Elem Type
}

func (*RefType) typeNode() {}
