package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/zen-lang/zenjs/internal/cli/config"
	"github.com/zen-lang/zenjs/internal/cli/output"
	"github.com/zen-lang/zenjs/pkg/transpile"
)

// watchDebounce coalesces editor write bursts into a single rebuild.
const watchDebounce = 200 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dir]",
		Short: "Recompile Zen files on change",
		Long: `Watch a directory tree for changes to .zen files and recompile each
changed file as it is saved. Defaults to the configured source directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := config.GetCurrentConfig()
	logger := config.GetLogger(cmd.Context())
	renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	dir := cfg.SrcDir
	if len(args) == 1 {
		dir = args[0]
	}
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("watch directory does not exist: %s", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watchTree(watcher, dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	renderer.Printf("Watching %s for .zen changes (Ctrl+C to stop)\n", dir)

	return watchLoop(cmd.Context(), watcher, renderer, logger)
}

// watchTree adds dir and all its subdirectories to the watcher.
func watchTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, renderer *output.Renderer, logger *slog.Logger) error {
	var debounceTimer *time.Timer
	pending := make(map[string]struct{})
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// New subdirectories join the watch set
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
					continue
				}
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".zen") {
				continue
			}

			pending[event.Name] = struct{}{}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			for path := range pending {
				delete(pending, path)
				rebuildFile(path, renderer, logger)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			renderer.Warning("watch error: %v", err)
		}
	}
}

func rebuildFile(path string, renderer *output.Renderer, logger *slog.Logger) {
	source, err := os.ReadFile(path)
	if err != nil {
		renderer.Error("%s: %v", path, err)
		return
	}
	js, err := transpile.Transpile(string(source))
	if err != nil {
		renderer.Error("%s: %v", path, err)
		return
	}
	outPath := DeriveOutputPath(path)
	if err := writeOutput(outPath, js); err != nil {
		renderer.Error("%v", err)
		return
	}
	logger.Debug("recompiled", "source", path, "output", outPath)
	renderer.Success("%s -> %s", path, outPath)
}
