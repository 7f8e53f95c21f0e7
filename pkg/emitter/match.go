package emitter

import (
	"strconv"

	"github.com/zen-lang/zenjs/pkg/ast"
)

// emitMatch lowers a pattern match to an immediately-invoked function whose
// single parameter binds the scrutinee, with one if/else-if branch per arm.
// Arms are tried top to bottom and the first match returns; with no terminal
// else, an unmatched scrutinee falls through and the function yields no
// value. Arms are not exhaustiveness-checked.
func (e *Emitter) emitMatch(m *ast.MatchExpr) {
	e.matchDepth++
	name := e.scrutineeName()

	e.write("((" + name + ") => {\n")
	e.indent()

	for i, arm := range m.Arms {
		e.writeIndent()
		if i == 0 {
			e.write("if (")
		} else {
			e.write("} else if (")
		}

		e.patternCondition(name, arm.Pattern)

		if arm.Guard != nil {
			e.write(" && (")
			e.emitExpression(arm.Guard)
			e.write(")")
		}

		e.write(") {\n")
		e.indent()
		e.patternBindings(name, arm.Pattern)
		e.writeIndent()
		e.write("return ")
		e.emitExpression(arm.Body)
		e.write(";\n")
		e.dedent()
	}

	if len(m.Arms) > 0 {
		e.line("}")
	}
	e.dedent()
	e.writeIndent()
	e.write("})(")

	// The scrutinee is evaluated outside the wrapper; a nested match inside
	// it belongs to the enclosing depth.
	e.matchDepth--
	e.emitExpression(m.Scrutinee)
	e.write(")")
}

// scrutineeName derives the scrutinee parameter name from the current match
// nesting depth, so nested matches cannot shadow one another.
func (e *Emitter) scrutineeName() string {
	if e.matchDepth <= 1 {
		return "__match"
	}
	return "__match" + strconv.Itoa(e.matchDepth)
}

func (e *Emitter) patternCondition(varName string, pattern ast.Pattern) {
	switch p := pattern.(type) {
	case *ast.WildcardPattern:
		e.write("true")

	case *ast.LiteralPattern:
		e.write(varName + " === ")
		e.emitExpression(p.Value)

	case *ast.IdentifierPattern:
		// Always matches; the binding happens in the arm body.
		e.write("true")

	case *ast.EnumLiteralPattern:
		e.write(varName + ".tag === \"" + p.Variant + "\"")

	case *ast.EnumVariantPattern:
		e.write(varName + ".tag === \"" + p.Variant + "\"")

	case *ast.TypePattern:
		switch p.Name {
		case "true":
			e.write(varName + " === true")
		case "false":
			e.write(varName + " === false")
		default:
			e.write("typeof " + varName + " === \"" + typeofName(p.Name) + "\"")
		}

	case *ast.OrPattern:
		e.write("(")
		for i, alt := range p.Alternatives {
			if i > 0 {
				e.write(" || ")
			}
			e.patternCondition(varName, alt)
		}
		e.write(")")

	case *ast.RangePattern:
		e.write("(" + varName + " >= ")
		e.emitExpression(p.Start)
		if p.Inclusive {
			e.write(" && " + varName + " <= ")
		} else {
			e.write(" && " + varName + " < ")
		}
		e.emitExpression(p.End)
		e.write(")")

	default:
		e.write("true /* unsupported pattern: " + nodeKind(pattern) + " */")
	}
}

// patternBindings emits the bindings a matched pattern introduces at the top
// of the arm body. A payload-bearing enum pattern recurses against the
// matched value's payload field.
func (e *Emitter) patternBindings(varName string, pattern ast.Pattern) {
	switch p := pattern.(type) {
	case *ast.IdentifierPattern:
		e.line("const " + p.Name + " = " + varName + ";")
	case *ast.EnumLiteralPattern:
		if p.Payload != nil {
			e.patternBindings(varName+".value", p.Payload)
		}
	}
}
