package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/zen-lang/zenjs/internal/cli/output"
	"github.com/zen-lang/zenjs/internal/testutil"
)

func TestRebuildFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.zen")
	if err := os.WriteFile(src, []byte("x := 1"), 0644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	r := output.NewRenderer(&out, &errOut, output.ModeText)
	rebuildFile(src, r, testutil.NewTestLogger(t))

	js, err := os.ReadFile(filepath.Join(dir, "main.js"))
	if err != nil {
		t.Fatalf("reading rebuilt file: %v", err)
	}
	if got, want := string(js), "const x = 1;\n"; got != want {
		t.Errorf("rebuilt output = %q, want %q", got, want)
	}
	if !strings.Contains(out.String(), "->") {
		t.Errorf("rebuild message = %q, want a source -> output line", out.String())
	}
}

func TestRebuildFileReportsSyntaxErrors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.zen")
	if err := os.WriteFile(src, []byte("x := "), 0644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	r := output.NewRenderer(&out, &errOut, output.ModeText)
	rebuildFile(src, r, testutil.NewTestLogger(t))

	if errOut.Len() == 0 {
		t.Error("expected an error report on stderr")
	}
	if _, err := os.Stat(filepath.Join(dir, "broken.js")); !os.IsNotExist(err) {
		t.Error("no output file should be written for a broken source")
	}
}

func TestWatchTreeAddsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0750); err != nil {
		t.Fatal(err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watchTree(watcher, dir); err != nil {
		t.Fatalf("watchTree() error = %v", err)
	}
	if got := len(watcher.WatchList()); got != 3 {
		t.Errorf("watching %d directories, want 3: %v", got, watcher.WatchList())
	}
}

func TestWatchLoopRecompilesOnWrite(t *testing.T) {
	dir := t.TempDir()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = watcher.Close() }()
	if err := watchTree(watcher, dir); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out, errOut bytes.Buffer
	r := output.NewRenderer(&out, &errOut, output.ModeText)
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, watcher, r, testutil.NewTestLogger(t))
	}()

	src := filepath.Join(dir, "live.zen")
	if err := os.WriteFile(src, []byte("x := 1"), 0644); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(dir, "live.js")
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(outPath); err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchLoop() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watchLoop did not stop on context cancellation")
	}

	js, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("watched file was not recompiled: %v\nstderr: %s", err, errOut.String())
	}
	if got, want := string(js), "const x = 1;\n"; got != want {
		t.Errorf("recompiled output = %q, want %q", got, want)
	}
}

func TestREPLBalanced(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"x := 1", true},
		{"main = () {", false},
		{"main = () {\n    io.println(\"hi\")\n}", true},
		{"xs := [1, 2", false},
		{"quote := \"unterminated {\"", true},
		{"s := \"brace { inside\"", true},
		{"n ? {\n    0 => \"zero\",", false},
	}

	for _, tt := range tests {
		if got := balanced(tt.src); got != tt.want {
			t.Errorf("balanced(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}
