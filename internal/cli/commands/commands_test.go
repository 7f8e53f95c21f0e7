package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zen-lang/zenjs/internal/cli/output"
)

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(buf.String(), "zenjs v1.2.3") {
		t.Errorf("version output = %q, want it to contain %q", buf.String(), "zenjs v1.2.3")
	}
}

func TestBuildFromStdin(t *testing.T) {
	cmd := NewBuildCommand()
	cmd.SetIn(strings.NewReader("x := 1"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got, want := out.String(), "const x = 1;\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestBuildFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.zen")
	program := "main = () {\n    io.println(\"hi\")\n}\n"
	if err := os.WriteFile(src, []byte(program), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := NewBuildCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{src})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	js, err := os.ReadFile(filepath.Join(dir, "main.js"))
	if err != nil {
		t.Fatalf("reading generated file: %v", err)
	}
	for _, want := range []string{"function main()", `console.log("hi")`, "// Entry point"} {
		if !strings.Contains(string(js), want) {
			t.Errorf("generated JavaScript missing %q:\n%s", want, js)
		}
	}
	if !strings.Contains(out.String(), "Compiled 1 file(s)") {
		t.Errorf("build output = %q, want a compile summary", out.String())
	}
}

func TestBuildExplicitOutputPath(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.zen")
	if err := os.WriteFile(src, []byte("x := 1"), 0644); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "out", "bundle.js")

	cmd := NewBuildCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{src, "-o", dst})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	js, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("reading %s: %v", dst, err)
	}
	if got, want := string(js), "const x = 1;\n"; got != want {
		t.Errorf("output file = %q, want %q", got, want)
	}
}

func TestBuildOutFlagRejectsMultipleInputs(t *testing.T) {
	cmd := NewBuildCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"a.zen", "b.zen", "-o", "x.js"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Execute() error = nil, want an error for -o with multiple inputs")
	}
	if !strings.Contains(err.Error(), "exactly one input") {
		t.Errorf("error = %q, want it to mention single-input restriction", err)
	}
}

func TestBuildSyntaxErrorNamesFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.zen")
	if err := os.WriteFile(src, []byte("x := "), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := NewBuildCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{src})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Execute() error = nil, want a syntax error")
	}
	if !strings.Contains(err.Error(), "broken.zen") {
		t.Errorf("error = %q, want it to name the failing file", err)
	}
}

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"main.zen", "main.js"},
		{"MAIN.ZEN", "MAIN.js"},
		{"src/app.zen", "src/app.js"},
		{"script", "script.js"},
		{"notes.txt", "notes.txt.js"},
	}

	for _, tt := range tests {
		if got := DeriveOutputPath(tt.in); got != tt.want {
			t.Errorf("DeriveOutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInitCreatesProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")
	var buf bytes.Buffer
	r := output.NewRenderer(&buf, &buf, output.ModeText)

	if err := runInit(r, dir, false); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	for _, p := range []string{"zenjs.yaml", "src", "dist", filepath.Join("src", "main.zen")} {
		if _, err := os.Stat(filepath.Join(dir, p)); err != nil {
			t.Errorf("expected %s to exist: %v", p, err)
		}
	}
	if !strings.Contains(buf.String(), "Initialized zenjs project") {
		t.Errorf("init output = %q, want a success message", buf.String())
	}
}

func TestInitRefusesOverwriteWithoutForce(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	r := output.NewRenderer(&buf, &buf, output.ModeText)

	if err := runInit(r, dir, false); err != nil {
		t.Fatalf("first runInit() error = %v", err)
	}
	if err := runInit(r, dir, false); err == nil {
		t.Fatal("second runInit() error = nil, want refusal without --force")
	}
	if err := runInit(r, dir, true); err != nil {
		t.Fatalf("runInit() with force error = %v", err)
	}
}

func TestInitStarterProgramCompiles(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	r := output.NewRenderer(&buf, &buf, output.ModeText)
	if err := runInit(r, dir, false); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	cmd := NewBuildCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{filepath.Join(dir, "src", "main.zen")})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("starter program failed to compile: %v", err)
	}
}

func TestInspectJSON(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "lib.zen")
	program := `add = (a: i32, b: i32) i32 {
    a + b
}

Point = struct {
    x: i32,
    y: i32,
}
`
	if err := os.WriteFile(src, []byte(program), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := NewInspectCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{src, "--format", "json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var rows []declSummary
	if err := json.Unmarshal(out.Bytes(), &rows); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if len(rows) != 2 {
		t.Fatalf("got %d declarations, want 2: %+v", len(rows), rows)
	}
	if rows[0].Kind != "function" || rows[0].Name != "add" || rows[0].Details != "(a, b)" {
		t.Errorf("function row = %+v", rows[0])
	}
	if rows[1].Kind != "struct" || rows[1].Name != "Point" || rows[1].Details != "fields: x, y" {
		t.Errorf("struct row = %+v", rows[1])
	}
}

func TestInspectTableWithoutDeclarations(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "top.zen")
	if err := os.WriteFile(src, []byte("x := 1"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := NewInspectCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{src})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), "no declarations") {
		t.Errorf("output = %q, want a no-declarations notice", out.String())
	}
}
