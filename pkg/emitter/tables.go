package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zen-lang/zenjs/pkg/ast"
)

// The stdlib interception table is a stable contract: the qualified names
// below are rewritten to native runtime calls and downstream programs may
// rely on their availability.
//
//	io.println, println          -> console.log(...)
//	io.print, print              -> process.stdout.write(...)
//	io.read_line                 -> prompt("")
//	JSON.parse, JSON.stringify   -> same names, native JSON
//	document.getElementById, document.createElement,
//	document.querySelector, document.querySelectorAll
//	                             -> same names, native DOM
//	Math.floor, Math.ceil, Math.round, Math.random, Math.min,
//	Math.max, Math.abs, Math.sqrt, Math.pow
//	                             -> same names, native Math
//	cast(x, T)                   -> x (erased)
var interceptedCalls = []string{
	"io.println", "io.print", "io.read_line",
	"JSON.parse", "JSON.stringify",
	"document.getElementById", "document.createElement",
	"document.querySelector", "document.querySelectorAll",
	"Math.floor", "Math.ceil", "Math.round", "Math.random",
	"Math.min", "Math.max", "Math.abs", "Math.sqrt", "Math.pow",
}

// InterceptedCalls returns the qualified standard-library call names the
// emitter rewrites to native runtime equivalents.
func InterceptedCalls() []string {
	out := make([]string, len(interceptedCalls))
	copy(out, interceptedCalls)
	return out
}

// emitCall lowers a named function call, intercepting standard-library
// names. Unrecognized names are mangled and called positionally.
func (e *Emitter) emitCall(name string, args []ast.Expression) {
	switch name {
	case "io.println", "println":
		e.write("console.log(")
		e.emitArgs(args)
		e.write(")")
	case "io.print", "print":
		e.write("process.stdout.write(")
		if len(args) > 0 {
			e.emitExpression(args[0])
		}
		e.write(")")
	case "cast":
		// Type casts are no-ops once static types are gone.
		if len(args) > 0 {
			e.emitExpression(args[0])
		}
	default:
		e.write(mangle(name) + "(")
		e.emitArgs(args)
		e.write(")")
	}
}

// emitMethodCall lowers a receiver.method(...) call. When the receiver is a
// bare identifier forming a recognized qualified name, the call goes through
// the interception table; otherwise it is an ordinary method call.
func (e *Emitter) emitMethodCall(m *ast.MethodCallExpr) {
	if obj, ok := m.Object.(*ast.Identifier); ok {
		qualified := obj.Name + "." + m.Method
		if e.emitQualifiedCall(qualified, m.Args) {
			return
		}
	}

	e.emitExpression(m.Object)
	e.write("." + m.Method + "(")
	e.emitArgs(m.Args)
	e.write(")")
}

// emitQualifiedCall handles one interception-table entry and reports whether
// the name was recognized.
func (e *Emitter) emitQualifiedCall(qualified string, args []ast.Expression) bool {
	switch qualified {
	case "io.println":
		e.write("console.log(")
		e.emitArgs(args)
		e.write(")")
	case "io.print":
		e.write("process.stdout.write(String(")
		if len(args) > 0 {
			e.emitExpression(args[0])
		}
		e.write("))")
	case "io.read_line":
		e.write("prompt(\"\")")
	case "JSON.parse", "JSON.stringify",
		"document.getElementById", "document.createElement",
		"document.querySelector", "document.querySelectorAll":
		e.write(qualified + "(")
		if len(args) > 0 {
			e.emitExpression(args[0])
		}
		e.write(")")
	case "Math.floor", "Math.ceil", "Math.round", "Math.random",
		"Math.min", "Math.max", "Math.abs", "Math.sqrt", "Math.pow":
		e.write(qualified + "(")
		e.emitArgs(args)
		e.write(")")
	default:
		return false
	}
	return true
}

// binaryOpJS maps a source operator to its target spelling. Equality maps to
// the strict comparison forms so value-and-type equality is preserved.
func binaryOpJS(op ast.BinaryOp) string {
	switch op {
	case ast.OpAdd:
		return "+"
	case ast.OpSubtract:
		return "-"
	case ast.OpMultiply:
		return "*"
	case ast.OpDivide:
		return "/"
	case ast.OpModulo:
		return "%"
	case ast.OpEquals:
		return "==="
	case ast.OpNotEquals:
		return "!=="
	case ast.OpLessThan:
		return "<"
	case ast.OpGreaterThan:
		return ">"
	case ast.OpLessThanEquals:
		return "<="
	case ast.OpGreaterThanEquals:
		return ">="
	case ast.OpAnd:
		return "&&"
	case ast.OpOr:
		return "||"
	case ast.OpBitwiseAnd:
		return "&"
	case ast.OpBitwiseOr:
		return "|"
	case ast.OpBitwiseXor:
		return "^"
	case ast.OpShiftLeft:
		return "<<"
	case ast.OpShiftRight:
		return ">>"
	case ast.OpStringConcat:
		return "+"
	}
	return "/* ? */"
}

// jsdocType renders a source type as a JSDoc annotation.
func jsdocType(t ast.Type) string {
	switch ty := t.(type) {
	case nil:
		return "void"
	case *ast.Primitive:
		switch ty.Kind {
		case ast.I8, ast.I16, ast.I32, ast.U8, ast.U16, ast.U32, ast.Usize, ast.F32, ast.F64:
			return "number"
		case ast.I64, ast.U64:
			return "bigint"
		case ast.Bool:
			return "boolean"
		case ast.String:
			return "string"
		case ast.Void:
			return "void"
		}
	case *ast.Slice:
		return "Array<" + jsdocType(ty.Elem) + ">"
	case *ast.FixedArray:
		return "Array<" + jsdocType(ty.Elem) + "> /* [" + strconv.Itoa(ty.Size) + "] */"
	case *ast.NamedType:
		return ty.Name
	case *ast.GenericType:
		if len(ty.Args) == 0 {
			return ty.Name
		}
		args := make([]string, len(ty.Args))
		for i, a := range ty.Args {
			args[i] = jsdocType(a)
		}
		return ty.Name + "<" + strings.Join(args, ", ") + ">"
	case *ast.FuncType:
		params := make([]string, len(ty.Params))
		for i, p := range ty.Params {
			params[i] = jsdocType(p)
		}
		return "function(" + strings.Join(params, ", ") + ") : " + jsdocType(ty.Return)
	case *ast.RefType:
		return jsdocType(ty.Elem)
	}
	return "*"
}

// typeofName maps a source primitive type name to the target's runtime
// typeof category.
func typeofName(name string) string {
	switch name {
	case "i8", "i16", "i32", "u8", "u16", "u32", "f32", "f64":
		return "number"
	case "i64", "u64":
		return "bigint"
	case "bool":
		return "boolean"
	case "String", "string":
		return "string"
	default:
		return "object"
	}
}

// mangle flattens qualified names into single tokens.
func mangle(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}

// nodeKind names an AST node type for placeholder comments.
func nodeKind(node any) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", node), "*ast.")
}
