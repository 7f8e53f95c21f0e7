// Package output provides terminal rendering helpers for the zenjs CLI.
//
// A Renderer wraps the command's stdout/stderr with a set of lipgloss
// styles. Styling is disabled automatically when output is not a terminal
// or when the user requests plain text.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects how output is rendered.
type Mode string

const (
	ModeAuto Mode = "auto" // styled when stdout is a terminal
	ModeText Mode = "text" // plain text, no styling
	ModeJSON Mode = "json" // machine-readable where a command supports it
)

// Styles holds the lipgloss styles used across commands.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style
}

func defaultStyles() *Styles {
	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Muted:   lipgloss.NewStyle().Faint(true),
	}
}

func plainStyles() *Styles {
	s := lipgloss.NewStyle()
	return &Styles{Title: s, Success: s, Error: s, Warning: s, Info: s, Muted: s}
}

// Renderer writes styled output to a command's stdout and stderr.
type Renderer struct {
	out    io.Writer
	err    io.Writer
	mode   Mode
	styles *Styles
}

// NewRenderer creates a renderer for the given writers and mode.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	r := &Renderer{out: out, err: errOut, mode: mode}
	if r.styled() {
		r.styles = defaultStyles()
	} else {
		r.styles = plainStyles()
	}
	return r
}

func (r *Renderer) styled() bool {
	switch r.mode {
	case ModeText, ModeJSON:
		return false
	}
	if f, ok := r.out.(*os.File); ok {
		return term.IsTerminal(int(f.Fd())) && termenv.EnvColorProfile() != termenv.Ascii
	}
	return false
}

// Mode returns the renderer's output mode.
func (r *Renderer) Mode() Mode { return r.mode }

// Styles returns the renderer's style set.
func (r *Renderer) Styles() *Styles { return r.styles }

// Out returns the renderer's stdout writer.
func (r *Renderer) Out() io.Writer { return r.out }

// Println writes a plain line to stdout.
func (r *Renderer) Println(args ...any) {
	_, _ = fmt.Fprintln(r.out, args...)
}

// Printf writes formatted text to stdout.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Success writes a styled success line to stdout.
func (r *Renderer) Success(format string, args ...any) {
	_, _ = fmt.Fprintln(r.out, r.styles.Success.Render(fmt.Sprintf(format, args...)))
}

// Error writes a styled error line to stderr.
func (r *Renderer) Error(format string, args ...any) {
	_, _ = fmt.Fprintln(r.err, r.styles.Error.Render(fmt.Sprintf(format, args...)))
}

// Warning writes a styled warning line to stderr.
func (r *Renderer) Warning(format string, args ...any) {
	_, _ = fmt.Fprintln(r.err, r.styles.Warning.Render(fmt.Sprintf(format, args...)))
}

// Muted writes a de-emphasized line to stdout.
func (r *Renderer) Muted(format string, args ...any) {
	_, _ = fmt.Fprintln(r.out, r.styles.Muted.Render(fmt.Sprintf(format, args...)))
}
