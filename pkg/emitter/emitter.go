// Package emitter lowers a parsed Zen program to JavaScript source text.
//
// # Usage
//
//	js := emitter.New().EmitProgram(prog)
//
// The emitter walks the AST exactly once, in document order, and always
// produces output: constructs it does not recognize degrade to a marked
// placeholder comment instead of failing the emission. Validation belongs
// upstream; identical input yields byte-identical output.
//
// An Emitter is single-use state (output buffer, indentation, scope stack)
// and is not safe for concurrent use; construct one per transpilation.
package emitter

import (
	"bytes"

	"github.com/zen-lang/zenjs/pkg/ast"
)

const indentUnit = "  "

// Emitter generates JavaScript from a Zen AST.
type Emitter struct {
	out   bytes.Buffer
	depth int

	// scopes tracks names bound so far, one set per active scope.
	scopes []scope

	// matchDepth numbers nested match expressions so each gets a unique
	// scrutinee parameter name.
	matchDepth int
}

// New creates an Emitter ready to emit one program.
func New() *Emitter {
	return &Emitter{
		scopes: []scope{{}},
	}
}

// EmitProgram walks the program and returns the generated JavaScript.
func (e *Emitter) EmitProgram(prog *ast.Program) string {
	e.out.Reset()
	e.depth = 0
	e.scopes = []scope{{}}
	e.matchDepth = 0

	// Imports surface as comments; no runtime import is generated.
	for _, decl := range prog.Declarations {
		if imp, ok := decl.(*ast.ModuleImport); ok {
			e.line("// import " + imp.Alias + " from \"" + imp.ModulePath + "\";")
		}
	}

	for _, decl := range prog.Declarations {
		e.emitDeclaration(decl)
		e.newline()
	}

	for _, stmt := range prog.Statements {
		e.emitStatement(stmt)
	}

	if hasMainFunction(prog) {
		// Declarations already end with a separator newline.
		if len(prog.Statements) > 0 {
			e.newline()
		}
		e.line("// Entry point")
		e.line("main();")
	}

	return e.out.String()
}

func hasMainFunction(prog *ast.Program) bool {
	for _, decl := range prog.Declarations {
		if f, ok := decl.(*ast.Function); ok && f.Name == "main" {
			return true
		}
	}
	return false
}

// ---------- Output helpers ----------

func (e *Emitter) write(s string) {
	e.out.WriteString(s)
}

func (e *Emitter) writeIndent() {
	for i := 0; i < e.depth; i++ {
		e.out.WriteString(indentUnit)
	}
}

// line writes an indented line terminated by a newline.
func (e *Emitter) line(s string) {
	e.writeIndent()
	e.out.WriteString(s)
	e.out.WriteByte('\n')
}

func (e *Emitter) newline() {
	e.out.WriteByte('\n')
}

func (e *Emitter) indent() {
	e.depth++
}

func (e *Emitter) dedent() {
	if e.depth > 0 {
		e.depth--
	}
}

// emitBody emits a statement list, promoting a trailing bare expression
// statement to an explicit return so the surrounding callable yields its
// value. This is the implicit-last-expression-is-result rule shared by
// function bodies and immediately-invoked blocks.
func (e *Emitter) emitBody(stmts []ast.Statement) {
	if len(stmts) == 0 {
		return
	}
	for _, s := range stmts[:len(stmts)-1] {
		e.emitStatement(s)
	}
	if last, ok := stmts[len(stmts)-1].(*ast.ExpressionStmt); ok {
		e.writeIndent()
		e.write("return ")
		e.emitExpression(last.Expr)
		e.write(";\n")
		return
	}
	e.emitStatement(stmts[len(stmts)-1])
}

// emitIIFE wraps statements in an immediately-invoked zero-argument function
// so a statement sequence can stand in expression position.
func (e *Emitter) emitIIFE(stmts []ast.Statement) {
	e.write("(() => {\n")
	e.indent()
	e.emitBody(stmts)
	e.dedent()
	e.writeIndent()
	e.write("})()")
}
