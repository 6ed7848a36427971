// Package log provides the structured logging facade for the scru64 CLI.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. Internally it is backed by the standard
// library slog via a custom handler that feeds a formatter/output pipeline,
// so output stays consistent while slog-aware values (such as scru64.ID via
// slog.LogValuer) render naturally.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("generate"))
//	l.Info("minted identifiers", log.Int("count", 5))
//
// # Configuration
//
// Use ApplyConfig to build a logger from a declarative Config with a level
// name and a "text" or "json" format.
package log
