package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// chdir changes the working directory for the duration of the test.
// Equivalent of t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("", nil)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.SrcDir, filepath.Join(wd, DefaultSrcDir); got != want {
		t.Errorf("SrcDir = %q, want %q", got, want)
	}
	if got, want := cfg.OutDir, filepath.Join(wd, DefaultOutDir); got != want {
		t.Errorf("OutDir = %q, want %q", got, want)
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want false by default")
	}
	if cfg.OutputFormat != DefaultOutput {
		t.Errorf("OutputFormat = %q, want %q", cfg.OutputFormat, DefaultOutput)
	}
	if GetConfigFileUsed() != "" {
		t.Errorf("GetConfigFileUsed() = %q, want empty", GetConfigFileUsed())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "zenjs.yaml")
	content := "src_dir: sources\nout_dir: build\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(cfgPath, nil)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got, want := cfg.SrcDir, filepath.Join(dir, "sources"); got != want {
		t.Errorf("SrcDir = %q, want %q", got, want)
	}
	if got, want := cfg.OutDir, filepath.Join(dir, "build"); got != want {
		t.Errorf("OutDir = %q, want %q", got, want)
	}
	if cfg.ProjectRoot != dir {
		t.Errorf("ProjectRoot = %q, want %q", cfg.ProjectRoot, dir)
	}
	if GetConfigFileUsed() != cfgPath {
		t.Errorf("GetConfigFileUsed() = %q, want %q", GetConfigFileUsed(), cfgPath)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "zenjs.yaml")
	if err := os.WriteFile(cfgPath, []byte("out_dir: from_file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ZENJS_OUT_DIR", "from_env")

	cfg, err := LoadConfig(cfgPath, nil)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got, want := cfg.OutDir, filepath.Join(dir, "from_env"); got != want {
		t.Errorf("OutDir = %q, want %q", got, want)
	}
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "zenjs.yaml")
	if err := os.WriteFile(cfgPath, []byte("src_dir: from_file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ZENJS_SRC_DIR", "from_env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("src-dir", "", "")
	if err := flags.Set("src-dir", "from_flag"); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(cfgPath, flags)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got, want := cfg.SrcDir, filepath.Join(dir, "from_flag"); got != want {
		t.Errorf("SrcDir = %q, want %q", got, want)
	}
}

func TestLoadConfigUnchangedFlagIgnored(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "zenjs.yaml")
	if err := os.WriteFile(cfgPath, []byte("src_dir: from_file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Registered but never set: the file value wins.
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("src-dir", "flag_default", "")

	cfg, err := LoadConfig(cfgPath, flags)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got, want := cfg.SrcDir, filepath.Join(dir, "from_file"); got != want {
		t.Errorf("SrcDir = %q, want %q", got, want)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "zenjs.yml"), []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0750); err != nil {
		t.Fatal(err)
	}

	if got := findProjectRoot(nested); got != root {
		t.Errorf("findProjectRoot(%q) = %q, want %q", nested, got, root)
	}
}

func TestFindProjectRootWithoutConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lonely")
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatal(err)
	}
	if got := findProjectRoot(dir); got != dir {
		t.Errorf("findProjectRoot(%q) = %q, want the start directory back", dir, got)
	}
}

func TestResolvePathRelativeTo(t *testing.T) {
	tests := []struct {
		path string
		base string
		want string
	}{
		{"", "/base", ""},
		{"/abs/path", "/base", "/abs/path"},
		{"rel", "/base", filepath.Join("/base", "rel")},
	}
	for _, tt := range tests {
		if got := resolvePathRelativeTo(tt.path, tt.base); got != tt.want {
			t.Errorf("resolvePathRelativeTo(%q, %q) = %q, want %q", tt.path, tt.base, got, tt.want)
		}
	}
}

func TestGetCurrentConfigFallsBackToDefaults(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	cfg := GetCurrentConfig()
	if cfg == nil {
		t.Fatal("GetCurrentConfig() = nil")
	}
	if cfg.SrcDir != DefaultSrcDir {
		t.Errorf("SrcDir = %q, want %q", cfg.SrcDir, DefaultSrcDir)
	}
}

func TestGetLogger(t *testing.T) {
	if GetLogger(context.Background()) == nil {
		t.Fatal("GetLogger() = nil, want a discard logger fallback")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(context.Background(), loggerKey{}, logger)
	if got := GetLogger(ctx); got != logger {
		t.Error("GetLogger() did not return the logger stored in context")
	}
}
