package confloader

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Storage struct {
		BaseDir string `koanf:"basedir"`
		AppID   string `koanf:"appid"`
	} `koanf:"storage"`
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}
	if l.IsLoaded() {
		t.Error("IsLoaded() = true before Load()")
	}
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader(
		WithEnvPrefix("TEST_"),
		WithConfigFile("/path/to/config.yaml"),
	)

	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.filePath != "/path/to/config.yaml" {
		t.Errorf("filePath = %q, want %q", l.filePath, "/path/to/config.yaml")
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
storage:
  basedir: /srv/support
  appid: com.example.app
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got := l.GetString("storage.appid"); got != "com.example.app" {
		t.Errorf("storage.appid = %q, want %q", got, "com.example.app")
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	if err := NewLoader().LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFile() error = nil, want error")
	}
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	if err := NewLoader().LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") error = %v, want nil", err)
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("ASYNCSTORAGE_STORAGE_BASEDIR", "/from/env")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := l.GetString("storage.basedir"); got != "/from/env" {
		t.Errorf("storage.basedir = %q, want %q", got, "/from/env")
	}
}

func TestLoader_LoadEnv_CustomPrefix(t *testing.T) {
	t.Setenv("MYAPP_LOG_LEVEL", "debug")

	l := NewLoader(WithEnvPrefix("MYAPP_"))
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := l.GetString("log.level"); got != "debug" {
		t.Errorf("log.level = %q, want %q", got, "debug")
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
storage:
  basedir: /from/file
  appid: file.app
log:
  level: info
`)
	t.Setenv("ASYNCSTORAGE_STORAGE_APPID", "env.app")

	l := NewLoader(
		WithConfigFile(path),
		WithDefaults(map[string]any{
			"storage.basedir": "/from/default",
			"log.level":       "warn",
		}),
		WithOverrides(map[string]any{"log.level": "debug"}),
	)

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Storage.BaseDir != "/from/file" {
		t.Errorf("BaseDir = %q, want %q (file should override defaults)", cfg.Storage.BaseDir, "/from/file")
	}
	if cfg.Storage.AppID != "env.app" {
		t.Errorf("AppID = %q, want %q (env should override file)", cfg.Storage.AppID, "env.app")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, want %q (overrides should win)", cfg.Log.Level, "debug")
	}
	if !l.IsLoaded() {
		t.Error("IsLoaded() = false after Load()")
	}
}

func TestLoader_Load_DefaultsOnly(t *testing.T) {
	l := NewLoader(WithEnvPrefix("ASYNCSTORAGE_TEST_UNUSED_"), WithDefaults(map[string]any{
		"storage.basedir": "/d",
		"log.level":       "warn",
	}))

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Storage.BaseDir != "/d" || cfg.Log.Level != "warn" {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoader_Load_BadFile(t *testing.T) {
	path := writeConfig(t, "storage: [unterminated")

	var cfg testConfig
	if err := NewLoader(WithConfigFile(path)).Load(&cfg); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}

func TestMapProvider_Read(t *testing.T) {
	got, err := mapProvider{"a.b.c": 1, "a.d": "x", "e": true}.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	a, ok := got["a"].(map[string]any)
	if !ok {
		t.Fatalf("a = %T, want map", got["a"])
	}
	if a["d"] != "x" {
		t.Errorf("a.d = %v, want x", a["d"])
	}
	if b, _ := a["b"].(map[string]any); b["c"] != 1 {
		t.Errorf("a.b.c = %v, want 1", b["c"])
	}
	if got["e"] != true {
		t.Errorf("e = %v, want true", got["e"])
	}

	if _, err := (mapProvider{}).ReadBytes(); err != ErrReadBytesNotSupported {
		t.Errorf("ReadBytes() error = %v, want %v", err, ErrReadBytesNotSupported)
	}
}

func TestLoader_Keys(t *testing.T) {
	l := NewLoader()
	if err := l.LoadMap(map[string]any{"storage.dir": "/x", "log.format": "json"}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}
	if keys := l.Keys(); len(keys) != 2 {
		t.Errorf("Keys() = %v, want 2 keys", keys)
	}
}
