package command

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/asyncstorage-go/internal/storage"
	"github.com/yndnr/asyncstorage-go/pkg/keyhash"
)

// syncBuffer is a bytes.Buffer safe for concurrent use.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// result is the outcome of one CLI invocation.
type result struct {
	stdout string
	stderr string
	err    error
}

// runCLI runs the app with args and captures its output.
func runCLI(t *testing.T, args ...string) result {
	t.Helper()
	return runCLIContext(t, context.Background(), args...)
}

func runCLIContext(t *testing.T, ctx context.Context, args ...string) result {
	t.Helper()
	isolateConfig(t)
	var stdout, stderr syncBuffer
	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.RunContext(ctx, append([]string{"asyncstorage-cli"}, args...))
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// isolateConfig hides any configuration file in the real user config dir.
func isolateConfig(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
}

// newStorageDir creates base/<appID>/RCTAsyncLocalStorage_V1 and returns
// the base directory and the storage directory.
func newStorageDir(t *testing.T, appID string) (base, dir string) {
	t.Helper()
	base = t.TempDir()
	dir = filepath.Join(base, appID, storage.StorageDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	return base, dir
}

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, storage.ManifestFileName), content)
}

func writeValueFile(t *testing.T, dir, key, content string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, keyhash.Hash(key)), content)
}

// sampleDir is a storage directory with a few entries.
func sampleDir(t *testing.T) string {
	t.Helper()
	_, dir := newStorageDir(t, "com.example.app")
	writeManifest(t, dir, `{"foo":"bar","num":42,"prefs":{"dark":true},"baz":null}`)
	writeValueFile(t, dir, "baz", "qux")
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

// exitCode returns the exit code carried by err, or -1 if err carries none.
func exitCode(err error) int {
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// mustSucceed fails the test if the invocation returned an error.
func mustSucceed(t *testing.T, res result) {
	t.Helper()
	if res.err != nil {
		t.Fatalf("Run() error = %v, stderr = %q", res.err, res.stderr)
	}
}

// checkJSON compares got with want after decoding both.
func checkJSON(t *testing.T, want, got string) {
	t.Helper()
	var w, g any
	if err := json.Unmarshal([]byte(want), &w); err != nil {
		t.Fatalf("decode want: %v", err)
	}
	if err := json.Unmarshal([]byte(got), &g); err != nil {
		t.Fatalf("decode output %q: %v", got, err)
	}
	if diff := cmp.Diff(w, g); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

// waitFor polls cond until it holds or two seconds pass.
func waitFor(t *testing.T, cond func() bool, what string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
