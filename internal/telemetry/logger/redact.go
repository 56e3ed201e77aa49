// Package logger provides structured logging for asyncstorage.
package logger

import (
	"log/slog"
	"strings"
)

// Attribute key patterns that mark stored content or credentials.
var sensitiveKeyPatterns = []string{
	"value",
	"content",
	"text",
	"password",
	"secret",
	"token",
}

// redactedValue is the placeholder for redacted data.
const redactedValue = "***REDACTED***"

// redactSensitive replaces attributes that may carry stored content.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	if !IsSensitiveKey(a.Key) {
		return a
	}
	if a.Value.Kind() == slog.KindString && a.Value.String() == "" {
		return a
	}
	return slog.String(a.Key, redactedValue)
}

// IsSensitiveKey checks if an attribute key suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
