// Package log provides the logging abstraction used by crtools packages.
//
// Library code never talks to a logging backend directly. It receives a
// Logger and emits messages with structured fields:
//
//	logger.Info("packed asset", log.String("name", name), log.Int("bytes", n))
//
// Use the zerolog adapter in commands:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//
// Or the no-op logger in tests:
//
//	logger := log.NewNoopLogger()
package log
