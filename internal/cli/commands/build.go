// Package commands implements the zenjs subcommands.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/zen-lang/zenjs/internal/cli/config"
	"github.com/zen-lang/zenjs/internal/cli/output"
	"github.com/zen-lang/zenjs/pkg/transpile"
	"golang.org/x/sync/errgroup"
)

// BuildOptions holds options for the build command.
type BuildOptions struct {
	OutPath string // Explicit output path (single input only)
	Stdout  bool   // Write generated code to stdout
}

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	opts := &BuildOptions{}
	cmd := &cobra.Command{
		Use:   "build [file.zen ...]",
		Short: "Compile Zen files to JavaScript",
		Long: `Compile one or more Zen source files to JavaScript.

With no arguments, source is read from stdin and the generated JavaScript
is written to stdout. With file arguments, each file is compiled to a .js
file next to it, or under the configured output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutPath, "out", "o", "", "Output file path (single input only)")
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "Write generated JavaScript to stdout")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string, opts *BuildOptions) error {
	cfg := config.GetCurrentConfig()
	logger := config.GetLogger(cmd.Context())
	renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	// No files: stdin -> stdout
	if len(args) == 0 {
		source, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		js, err := transpile.Transpile(string(source))
		if err != nil {
			return err
		}
		if opts.OutPath != "" {
			return writeOutput(opts.OutPath, js)
		}
		_, err = io.WriteString(cmd.OutOrStdout(), js)
		return err
	}

	if opts.OutPath != "" && len(args) > 1 {
		return fmt.Errorf("-o requires exactly one input file, got %d", len(args))
	}

	start := time.Now()

	// Compile files in parallel; each input is independent.
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for _, arg := range args {
		arg := arg
		g.Go(func() error {
			source, err := os.ReadFile(arg)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", arg, err)
			}
			js, err := transpile.Transpile(string(source))
			if err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}

			if opts.Stdout {
				_, err = io.WriteString(cmd.OutOrStdout(), js)
				return err
			}

			outPath := opts.OutPath
			if outPath == "" {
				outPath = DeriveOutputPath(arg)
			}
			if err := writeOutput(outPath, js); err != nil {
				return err
			}
			logger.Debug("compiled", "source", arg, "output", outPath)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if !opts.Stdout {
		renderer.Success("Compiled %d file(s) in %s", len(args), time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// DeriveOutputPath maps a Zen source path to its JavaScript output path.
func DeriveOutputPath(srcPath string) string {
	ext := filepath.Ext(srcPath)
	if strings.EqualFold(ext, ".zen") {
		return srcPath[:len(srcPath)-len(ext)] + ".js"
	}
	return srcPath + ".js"
}

func writeOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
