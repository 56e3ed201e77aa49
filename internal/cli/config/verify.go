package config

import (
	"errors"
	"fmt"

	"github.com/yndnr/asyncstorage-go/internal/telemetry/logger"
)

// Verify validates the configuration.
//
// A missing AppID is not an error: lookups simply report absence.
func Verify(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := verifyLog(&cfg.Log); err != nil {
		return err
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	if !logger.ValidLevel(cfg.Level) {
		return fmt.Errorf("log.level %q must be one of debug, info, warn, error", cfg.Level)
	}
	if !logger.ValidFormat(cfg.Format) {
		return fmt.Errorf("log.format %q must be json or text", cfg.Format)
	}
	return nil
}
