package emitter

import (
	"strings"

	"github.com/zen-lang/zenjs/pkg/ast"
)

func (e *Emitter) emitExpression(expr ast.Expression) {
	switch x := expr.(type) {
	case *ast.IntLit:
		// 64-bit values exceed the target's default numeric range; emit
		// them as BigInt literals.
		if x.Bits == 64 {
			e.write(x.Digits + "n")
		} else {
			e.write(x.Digits)
		}

	case *ast.FloatLit:
		e.write(x.Text)

	case *ast.BoolLit:
		if x.Value {
			e.write("true")
		} else {
			e.write("false")
		}

	case *ast.StringLit:
		e.write("\"" + strings.ReplaceAll(x.Value, "\"", "\\\"") + "\"")

	case *ast.Identifier:
		e.write(mangle(x.Name))

	case *ast.UnitLit:
		e.write("undefined")

	case *ast.NoneLit:
		e.write("null")

	case *ast.BinaryExpr:
		e.write("(")
		e.emitExpression(x.Left)
		e.write(" " + binaryOpJS(x.Op) + " ")
		e.emitExpression(x.Right)
		e.write(")")

	case *ast.CallExpr:
		e.emitCall(x.Name, x.Args)

	case *ast.MethodCallExpr:
		e.emitMethodCall(x)

	case *ast.MemberExpr:
		e.emitExpression(x.Object)
		e.write("." + x.Member)

	case *ast.IndexExpr:
		e.emitExpression(x.Array)
		e.write("[")
		e.emitExpression(x.Index)
		e.write("]")

	case *ast.ArrayLit:
		e.write("[")
		e.emitArgs(x.Elements)
		e.write("]")

	case *ast.StructLit:
		// Field values in struct-declaration order; the constructor's
		// parameters follow the same order.
		e.write("new " + x.Name + "(")
		for i, f := range x.Fields {
			if i > 0 {
				e.write(", ")
			}
			e.emitExpression(f.Value)
		}
		e.write(")")

	case *ast.InterpLit:
		e.write("`")
		for _, part := range x.Parts {
			switch p := part.(type) {
			case *ast.TextPart:
				e.write(strings.ReplaceAll(p.Text, "`", "\\`"))
			case *ast.ExprPart:
				e.write("${")
				e.emitExpression(p.Expr)
				e.write("}")
			}
		}
		e.write("`")

	case *ast.MatchExpr:
		e.emitMatch(x)

	case *ast.ClosureExpr:
		e.write("(" + paramNames(x.Params) + ") => ")
		e.emitExpression(x.Body)

	case *ast.BlockExpr:
		e.emitIIFE(x.Statements)

	case *ast.ReturnExpr:
		e.write("return ")
		e.emitExpression(x.Expr)

	case *ast.EnumVariantExpr:
		if x.Payload != nil {
			e.write(x.EnumName + "." + x.Variant + "(")
			e.emitExpression(x.Payload)
			e.write(")")
		} else {
			e.write(x.EnumName + "." + x.Variant)
		}

	case *ast.EnumLit:
		if x.Payload != nil {
			e.write("{ tag: \"" + x.Variant + "\", value: ")
			e.emitExpression(x.Payload)
			e.write(" }")
		} else {
			e.write("{ tag: \"" + x.Variant + "\" }")
		}

	case *ast.SomeExpr:
		// Presence is value-or-null in the target; unwrap transparently.
		e.emitExpression(x.Value)

	case *ast.RangeExpr:
		// Eagerly materialized finite sequence, not a lazy iterator.
		e.write("Array.from({ length: ")
		e.emitExpression(x.End)
		e.write(" - ")
		e.emitExpression(x.Start)
		if x.Inclusive {
			e.write(" + 1")
		}
		e.write(" }, (_, i) => ")
		e.emitExpression(x.Start)
		e.write(" + i)")

	case *ast.LoopExpr:
		e.emitIIFE([]ast.Statement{
			&ast.LoopStmt{Body: []ast.Statement{&ast.ExpressionStmt{Expr: x.Body}}},
		})

	case *ast.CollectionLoop:
		e.emitExpression(x.Collection)
		if x.IndexParam != "" {
			e.write(".forEach((" + x.Param + ", " + x.IndexParam + ") => ")
		} else {
			e.write(".forEach((" + x.Param + ") => ")
		}
		e.emitExpression(x.Body)
		e.write(")")

	case *ast.BreakExpr:
		e.write("break")

	case *ast.ContinueExpr:
		e.write("continue")

	case *ast.RaiseExpr:
		e.write("throw ")
		e.emitExpression(x.Value)

	case *ast.ComptimeExpr:
		e.write("/* comptime */ ")
		e.emitExpression(x.Expr)

	case *ast.StdRef:
		e.write("globalThis.__std")

	case *ast.SelfRef:
		e.write("this")

	default:
		e.write("/* unsupported: " + nodeKind(expr) + " */")
	}
}

func (e *Emitter) emitArgs(args []ast.Expression) {
	for i, arg := range args {
		if i > 0 {
			e.write(", ")
		}
		e.emitExpression(arg)
	}
}
