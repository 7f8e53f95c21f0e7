package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestRendererPlainWhenNotTerminal(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeAuto)

	r.Success("compiled %d files", 3)
	if got, want := out.String(), "compiled 3 files\n"; got != want {
		t.Errorf("Success output = %q, want unstyled %q", got, want)
	}

	r.Error("bad input")
	if got, want := errOut.String(), "bad input\n"; got != want {
		t.Errorf("Error output = %q, want unstyled %q on stderr", got, want)
	}
}

func TestRendererStderrSeparation(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeText)

	r.Println("to stdout")
	r.Warning("to stderr")

	if strings.Contains(out.String(), "to stderr") {
		t.Error("warning leaked to stdout")
	}
	if strings.Contains(errOut.String(), "to stdout") {
		t.Error("stdout line leaked to stderr")
	}
}

func TestRendererMode(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeJSON)
	if r.Mode() != ModeJSON {
		t.Errorf("Mode() = %q, want %q", r.Mode(), ModeJSON)
	}
	if r.Styles() == nil {
		t.Fatal("Styles() = nil")
	}
}

func TestRendererPrintf(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeText)
	r.Printf("%s:%d\n", "main.zen", 7)
	if got, want := buf.String(), "main.zen:7\n"; got != want {
		t.Errorf("Printf output = %q, want %q", got, want)
	}
}
