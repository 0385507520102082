// Package logging provides structured logging for the team builder.
//
// It wraps Go's log/slog to write JSON lines either to stderr or to a
// debug.log file, optionally rotated by size. The terminal UI owns stdout,
// so interactive runs should always log to a file.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/logs", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("creature added", "name", "pikachu", "roster_size", 1)
//
// # Child Loggers
//
// Child loggers carry persistent attributes:
//
//	apiLogger := logger.WithComponent("pokeapi")
//	apiLogger.Debug("fetching creature", "name", "eevee")
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"fetching creature","component":"pokeapi","name":"eevee"}
//
// # Log Rotation
//
//	logger, err := logging.NewLoggerWithRotation(dir, "INFO", logging.RotationConfig{
//	    MaxSizeMB:  10,
//	    MaxBackups: 3,
//	})
//
// Rotated files are named debug.log.1, debug.log.2, ... where .1 is the most
// recent backup; with Compress set they become debug.log.1.gz and so on.
//
// # Testing
//
// Use [NopLogger] to discard all output.
package logging
