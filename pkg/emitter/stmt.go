package emitter

import (
	"strings"

	"github.com/zen-lang/zenjs/pkg/ast"
)

func (e *Emitter) emitStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		e.writeIndent()
		e.emitExpression(s.Expr)
		e.write(";\n")

	case *ast.ReturnStmt:
		e.writeIndent()
		e.write("return ")
		e.emitExpression(s.Expr)
		e.write(";\n")

	case *ast.VariableDecl:
		e.emitVariableDecl(s)

	case *ast.Assignment:
		e.writeIndent()
		e.write(s.Name + " = ")
		e.emitExpression(s.Value)
		e.write(";\n")

	case *ast.LoopStmt:
		if s.Condition == nil {
			e.line("while (true) {")
		} else {
			e.writeIndent()
			e.write("while (")
			e.emitExpression(s.Condition)
			e.write(") {\n")
		}
		e.indent()
		for _, inner := range s.Body {
			e.emitStatement(inner)
		}
		e.dedent()
		e.line("}")

	case *ast.BreakStmt:
		e.line("break;")

	case *ast.ContinueStmt:
		e.line("continue;")

	case *ast.BlockStmt:
		e.line("{")
		e.indent()
		for _, inner := range s.Statements {
			e.emitStatement(inner)
		}
		e.dedent()
		e.line("}")

	case *ast.DestructuringImport:
		// True destructuring from arbitrary module objects is out of scope;
		// surface the intent as a comment.
		e.writeIndent()
		e.write("// { " + strings.Join(s.Names, ", ") + " } = ")
		e.emitExpression(s.Source)
		e.write("\n")

	case *ast.DeferStmt:
		// Run-on-scope-exit is not reproduced; the deferred statement is
		// emitted in place, bracketed by comments.
		e.line("// defer {")
		e.indent()
		e.emitStatement(s.Statement)
		e.dedent()
		e.line("// }")

	case *ast.PointerAssignment:
		e.writeIndent()
		e.emitExpression(s.Target)
		e.write(" = ")
		e.emitExpression(s.Value)
		e.write(";\n")

	default:
		e.line("// [unsupported statement: " + nodeKind(stmt) + "]")
	}
}

// emitVariableDecl chooses between a fresh binding and a plain assignment.
// A name already bound anywhere on the scope stack is reassigned; otherwise
// it is declared in the innermost scope with let or const per mutability.
func (e *Emitter) emitVariableDecl(s *ast.VariableDecl) {
	if e.isDeclared(s.Name) {
		if s.Initializer == nil {
			return
		}
		e.writeIndent()
		e.write(s.Name + " = ")
		e.emitExpression(s.Initializer)
		e.write(";\n")
		return
	}

	e.declare(s.Name)
	keyword := "const"
	if s.Mutable {
		keyword = "let"
	}
	if s.Initializer == nil {
		e.line(keyword + " " + s.Name + ";")
		return
	}
	e.writeIndent()
	e.write(keyword + " " + s.Name + " = ")
	e.emitExpression(s.Initializer)
	e.write(";\n")
}
