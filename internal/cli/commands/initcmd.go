package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zen-lang/zenjs/internal/cli/config"
	"github.com/zen-lang/zenjs/internal/cli/output"
	"gopkg.in/yaml.v3"
)

// sampleProgram is the starter source written by init.
const sampleProgram = `main = () {
    greeting := "hello from zen"
    io.println(greeting)
}
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new zenjs project",
		Long: `Initialize a new zenjs project with default directory structure and
configuration.

This creates:
  - src/ directory with a starter main.zen
  - dist/ directory for generated JavaScript
  - zenjs.yaml configuration file`,
		Example: `  # Initialize in current directory
  zenjs init

  # Initialize in a new directory
  zenjs init my-project

  # Force overwrite existing config
  zenjs init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg := config.GetCurrentConfig()
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
			return runInit(r, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(r *output.Renderer, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "zenjs.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("zenjs.yaml already exists. Use --force to overwrite")
	}

	// Project config file with defaults spelled out
	cfgYAML, err := yaml.Marshal(map[string]string{
		"src_dir": config.DefaultSrcDir,
		"out_dir": config.DefaultOutDir,
		"output":  config.DefaultOutput,
	})
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	if err := os.WriteFile(configPath, cfgYAML, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	for _, sub := range []string{config.DefaultSrcDir, config.DefaultOutDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0750); err != nil {
			return fmt.Errorf("failed to create %s: %w", sub, err)
		}
	}

	mainPath := filepath.Join(dir, config.DefaultSrcDir, "main.zen")
	if _, err := os.Stat(mainPath); os.IsNotExist(err) || force {
		if err := os.WriteFile(mainPath, []byte(sampleProgram), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", mainPath, err)
		}
	}

	r.Success("Initialized zenjs project in %s", dir)
	r.Println()
	r.Println("Next steps:")
	r.Printf("  zenjs build %s\n", mainPath)
	r.Printf("  node %s\n", DeriveOutputPath(mainPath))
	return nil
}
