package config

import (
	"testing"

	"github.com/yndnr/asyncstorage-go/internal/infra/confloader"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %v, want %v", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Log.Format != DefaultLogFormat {
		t.Errorf("Log.Format = %v, want %v", cfg.Log.Format, DefaultLogFormat)
	}
	if cfg.Storage != (StorageSection{}) {
		t.Errorf("Storage = %+v, want zero", cfg.Storage)
	}
	if err := Verify(cfg); err != nil {
		t.Errorf("Verify(Default()) error = %v", err)
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "debug json", mutate: func(c *Config) { c.Log.Level = "debug"; c.Log.Format = "json" }},
		{name: "upper case level", mutate: func(c *Config) { c.Log.Level = "ERROR" }},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: true},
		{name: "empty level", mutate: func(c *Config) { c.Log.Level = "" }, wantErr: true},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
		{name: "storage unset", mutate: func(c *Config) { c.Storage = StorageSection{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Verify(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Verify() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestVerify_Nil(t *testing.T) {
	if err := Verify(nil); err == nil {
		t.Error("Verify(nil) error = nil, want error")
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("ASYNCSTORAGE_STORAGE_APPID", "com.example.app")
	t.Setenv("ASYNCSTORAGE_STORAGE_BASEDIR", "/support")
	t.Setenv("ASYNCSTORAGE_METRICS_TEXTFILE", "/tmp/as.prom")

	var cfg Config
	if err := confloader.NewLoader(confloader.WithDefaults(Defaults())).Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := StorageSection{BaseDir: "/support", AppID: "com.example.app"}
	if cfg.Storage != want {
		t.Errorf("Storage = %+v, want %+v", cfg.Storage, want)
	}
	if cfg.Metrics.Textfile != "/tmp/as.prom" {
		t.Errorf("Metrics.Textfile = %v, want /tmp/as.prom", cfg.Metrics.Textfile)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %v, want %v", cfg.Log.Level, DefaultLogLevel)
	}
}
