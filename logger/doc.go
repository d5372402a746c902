// Package logger builds the zap logger used across the tool.
//
// Usage:
//
//	log, err := logger.New("cli", "info")
//	if err != nil {
//	    panic(err)
//	}
//	log.Info("source file written", zap.String("path", path))
package logger
