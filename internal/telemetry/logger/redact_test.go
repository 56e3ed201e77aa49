package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestRedactSensitive(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		want string
	}{
		{name: "value", attr: slog.String("value", "dark"), want: redactedValue},
		{name: "file content", attr: slog.String("file_content", "{}"), want: redactedValue},
		{name: "empty value kept", attr: slog.String("value", ""), want: ""},
		{name: "non-string value", attr: slog.Int("value", 42), want: redactedValue},
		{name: "storage key kept", attr: slog.String("storage_key", "theme"), want: "theme"},
		{name: "path kept", attr: slog.String("path", "/tmp/x"), want: "/tmp/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := redactSensitive(tt.attr).Value.String()
			if got != tt.want {
				t.Errorf("redactSensitive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRedactSensitive_Group(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Config{Level: "info", Format: "json", Output: &buf})

	l.Slog().Info("grouped", slog.Group("entry", slog.String("storage_key", "k"), slog.String("value", "v1")))

	out := buf.String()
	if strings.Contains(out, "v1") {
		t.Errorf("output = %q, grouped value not redacted", out)
	}
	if !strings.Contains(out, `"storage_key":"k"`) {
		t.Errorf("output = %q, want storage_key", out)
	}
}

func TestIsSensitiveKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"value", true},
		{"Value", true},
		{"raw_text", true},
		{"auth_token", true},
		{"password", true},
		{"storage_key", false},
		{"reason", false},
		{"dir", false},
	}
	for _, tt := range tests {
		if got := IsSensitiveKey(tt.key); got != tt.want {
			t.Errorf("IsSensitiveKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
