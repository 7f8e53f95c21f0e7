package emitter

import (
	"strings"

	"github.com/zen-lang/zenjs/pkg/ast"
)

func (e *Emitter) emitDeclaration(decl ast.Declaration) {
	switch d := decl.(type) {
	case *ast.Function:
		e.emitFunction(d)
	case *ast.StructDecl:
		e.emitStruct(d)
	case *ast.EnumDecl:
		e.emitEnum(d)
	case *ast.ConstantDecl:
		e.writeIndent()
		e.write("const " + d.Name + " = ")
		e.emitExpression(d.Value)
		e.write(";\n")
	case *ast.TypeAlias:
		e.line("/** @typedef {" + jsdocType(d.Target) + "} " + d.Name + " */")
	case *ast.ImplBlock:
		e.emitImplBlock(d)
	case *ast.ExportDecl:
		e.line("export { " + strings.Join(d.Symbols, ", ") + " };")
	case *ast.ModuleImport:
		// Surfaced once per program as a comment; nothing to emit here.
	case *ast.ComptimeBlock:
		e.line("// [comptime block elided]")
	default:
		e.line("// unsupported declaration: " + nodeKind(decl))
	}
}

func (e *Emitter) emitFunction(f *ast.Function) {
	if len(f.Params) > 0 || !isVoid(f.ReturnType) {
		e.line("/**")
		for _, p := range f.Params {
			e.line(" * @param {" + jsdocType(p.Type) + "} " + p.Name)
		}
		if !isVoid(f.ReturnType) {
			e.line(" * @returns {" + jsdocType(f.ReturnType) + "}")
		}
		e.line(" */")
	}

	e.writeIndent()
	e.write("function " + mangle(f.Name) + "(" + paramNames(f.Params) + ") {\n")

	done := e.pushScope()
	defer done()
	// Parameters count as already declared inside the body.
	for _, p := range f.Params {
		e.declare(p.Name)
	}

	e.indent()
	e.emitBody(f.Body)
	e.dedent()

	e.line("}")
}

func (e *Emitter) emitStruct(s *ast.StructDecl) {
	e.line("class " + s.Name + " {")
	e.indent()

	fieldNames := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		fieldNames[i] = f.Name
	}
	e.writeIndent()
	e.write("constructor(" + strings.Join(fieldNames, ", ") + ") {\n")
	e.indent()
	for _, f := range s.Fields {
		if f.Default != nil {
			e.writeIndent()
			e.write("this." + f.Name + " = " + f.Name + " ?? ")
			e.emitExpression(f.Default)
			e.write(";\n")
		} else {
			e.line("this." + f.Name + " = " + f.Name + ";")
		}
	}
	e.dedent()
	e.line("}")

	for _, m := range s.Methods {
		e.newline()
		e.writeIndent()
		e.write(m.Name + "(" + instanceParamNames(m.Params) + ") {\n")
		e.indent()
		for _, stmt := range m.Body {
			e.emitStatement(stmt)
		}
		e.dedent()
		e.line("}")
	}

	e.dedent()
	e.line("}")
}

func (e *Emitter) emitEnum(d *ast.EnumDecl) {
	e.line("// enum " + d.Name)
	e.line("const " + d.Name + " = Object.freeze({")
	e.indent()
	for _, v := range d.Variants {
		if v.Payload == nil {
			e.line(v.Name + ": Object.freeze({ tag: \"" + v.Name + "\" }),")
		} else {
			e.line(v.Name + ": (value) => Object.freeze({ tag: \"" + v.Name + "\", value }),")
		}
	}
	e.dedent()
	e.line("});")

	// Enum methods operate on the tag value as an explicit argument, so they
	// become free functions with every parameter visible.
	for _, m := range d.Methods {
		e.newline()
		e.writeIndent()
		e.write("function " + d.Name + "__" + m.Name + "(" + paramNames(m.Params) + ") {\n")
		e.indent()
		for _, stmt := range m.Body {
			e.emitStatement(stmt)
		}
		e.dedent()
		e.line("}")
	}
}

func (e *Emitter) emitImplBlock(imp *ast.ImplBlock) {
	e.line("// impl " + imp.TypeName + " {")
	for _, m := range imp.Methods {
		e.line(imp.TypeName + ".prototype." + m.Name + " = function(" + instanceParamNames(m.Params) + ") {")
		e.indent()
		for _, stmt := range m.Body {
			e.emitStatement(stmt)
		}
		e.dedent()
		e.line("};")
		e.newline()
	}
	e.line("// }")
}

func paramNames(params []ast.Param) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// instanceParamNames drops self-shaped parameters: the target form supplies
// instance context implicitly.
func instanceParamNames(params []ast.Param) string {
	var names []string
	for _, p := range params {
		if p.Name == "self" {
			continue
		}
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

func isVoid(t ast.Type) bool {
	if t == nil {
		return true
	}
	p, ok := t.(*ast.Primitive)
	return ok && p.Kind == ast.Void
}
