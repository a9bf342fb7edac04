// Package logging provides structured logging for the device inventory.
//
// It wraps log/slog with JSON or text output, level filtering and default
// fields (service, version) on every entry.
//
// # Configuration
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr, discard
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("starting service", "port", 8080)
//	logger.Error("failed to connect", "error", err)
//
// Never log secrets, tokens or password hashes.
package logging
