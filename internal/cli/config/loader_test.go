package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolvePath_Explicit(t *testing.T) {
	if got := ResolvePath("/nonexistent/as.yaml"); got != "/nonexistent/as.yaml" {
		t.Errorf("ResolvePath() = %q, want explicit path", got)
	}
}

func TestResolvePath_Default(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only drives os.UserConfigDir on linux")
	}
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	want := filepath.Join(home, "asyncstorage", "config.yaml")
	if got := DefaultConfigPath(); got != want {
		t.Errorf("DefaultConfigPath() = %q, want %q", got, want)
	}
	if got := ResolvePath(""); got != "" {
		t.Errorf("ResolvePath() = %q, want empty when default is missing", got)
	}

	if err := os.MkdirAll(filepath.Dir(want), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(want, []byte("log:\n  level: debug\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if got := ResolvePath(""); got != want {
		t.Errorf("ResolvePath() = %q, want %q", got, want)
	}
}
