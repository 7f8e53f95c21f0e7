package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/zen-lang/zenjs/pkg/transpile"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive Zen to JavaScript session",
		Long: `Start an interactive session. Each entry is compiled and the generated
JavaScript is printed. Input continues across lines until braces and
parentheses balance.`,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	historyFile := filepath.Join(os.TempDir(), "zenjs_history")
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".zenjs_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "zen> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "zenjs REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	var buffer strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buffer.Reset()
			rl.SetPrompt("zen> ")
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" && buffer.Len() == 0 {
			continue
		}

		// Dot-commands only apply outside a multi-line entry
		if buffer.Len() == 0 && strings.HasPrefix(trimmed, ".") {
			if trimmed == ".quit" || trimmed == ".exit" {
				break
			}
			if trimmed == ".help" {
				printREPLHelp(cmd.OutOrStdout())
				continue
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s\n", trimmed)
			continue
		}

		buffer.WriteString(line)
		buffer.WriteString("\n")

		// Keep reading until braces and parens balance
		if !balanced(buffer.String()) {
			rl.SetPrompt("...> ")
			continue
		}
		rl.SetPrompt("zen> ")

		source := buffer.String()
		buffer.Reset()

		js, err := transpile.Transpile(source)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), js)
	}

	return nil
}

// balanced reports whether all braces, brackets, and parentheses in the
// source are closed. String contents are skipped.
func balanced(src string) bool {
	depth := 0
	inString := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		if inString {
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '(', '[':
			depth++
		case '}', ')', ']':
			depth--
		}
	}
	return depth <= 0
}

func printREPLHelp(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Commands:")
	_, _ = fmt.Fprintln(w, "  .help    Show this help")
	_, _ = fmt.Fprintln(w, "  .quit    Exit the REPL")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Anything else is compiled to JavaScript and printed.")
}
