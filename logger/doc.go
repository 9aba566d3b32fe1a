// Package logger provides structured logging for ssrclient using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.NewDefault("ssrclient")
//	log.Debug("client created", logger.Fields("base_url", u))
package logger
