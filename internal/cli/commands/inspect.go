package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/zen-lang/zenjs/internal/cli/config"
	"github.com/zen-lang/zenjs/internal/cli/output"
	"github.com/zen-lang/zenjs/pkg/ast"
	"github.com/zen-lang/zenjs/pkg/parser"
)

// declSummary is one row of the inspect report.
type declSummary struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Details string `json:"details"`
}

// InspectOptions holds options for the inspect command.
type InspectOptions struct {
	Format string // table or json
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect <file.zen>",
		Short: "Show the declarations in a Zen file",
		Long: `Parse a Zen source file and list its top-level declarations:
functions with their parameters, structs with their fields, enums with
their variants, constants, and imports.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "", "Output format (table|json)")

	return cmd
}

func runInspect(cmd *cobra.Command, path string, opts *InspectOptions) error {
	cfg := config.GetCurrentConfig()

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	prog, err := parser.Parse(string(source))
	if err != nil {
		return err
	}

	rows := summarize(prog)

	format := opts.Format
	if format == "" && cfg.OutputFormat == string(output.ModeJSON) {
		format = "json"
	}
	if format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	renderDeclTable(cmd.OutOrStdout(), path, rows)
	return nil
}

func summarize(prog *ast.Program) []declSummary {
	var rows []declSummary
	for _, decl := range prog.Declarations {
		switch d := decl.(type) {
		case *ast.Function:
			rows = append(rows, declSummary{
				Kind:    "function",
				Name:    d.Name,
				Details: functionSignature(d),
			})
		case *ast.StructDecl:
			names := make([]string, len(d.Fields))
			for i, f := range d.Fields {
				names[i] = f.Name
			}
			rows = append(rows, declSummary{
				Kind:    "struct",
				Name:    d.Name,
				Details: fmt.Sprintf("fields: %s", strings.Join(names, ", ")),
			})
		case *ast.EnumDecl:
			names := make([]string, len(d.Variants))
			for i, v := range d.Variants {
				names[i] = v.Name
			}
			rows = append(rows, declSummary{
				Kind:    "enum",
				Name:    d.Name,
				Details: fmt.Sprintf("variants: %s", strings.Join(names, ", ")),
			})
		case *ast.ConstantDecl:
			rows = append(rows, declSummary{Kind: "constant", Name: d.Name})
		case *ast.TypeAlias:
			rows = append(rows, declSummary{Kind: "type alias", Name: d.Name})
		case *ast.ImplBlock:
			methods := make([]string, len(d.Methods))
			for i, m := range d.Methods {
				methods[i] = m.Name
			}
			rows = append(rows, declSummary{
				Kind:    "impl",
				Name:    d.TypeName,
				Details: fmt.Sprintf("methods: %s", strings.Join(methods, ", ")),
			})
		case *ast.ModuleImport:
			rows = append(rows, declSummary{
				Kind:    "import",
				Name:    d.Alias,
				Details: d.ModulePath,
			})
		case *ast.ExportDecl:
			rows = append(rows, declSummary{Kind: "export", Name: strings.Join(d.Symbols, ", ")})
		}
	}
	return rows
}

func functionSignature(f *ast.Function) string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Name
	}
	return fmt.Sprintf("(%s)", strings.Join(params, ", "))
}

func renderDeclTable(w io.Writer, path string, rows []declSummary) {
	if len(rows) == 0 {
		_, _ = fmt.Fprintf(w, "%s: no declarations\n", path)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(path)
	t.AppendHeader(table.Row{"Kind", "Name", "Details"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Kind, r.Name, r.Details})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d declarations)\n", len(rows))
}
