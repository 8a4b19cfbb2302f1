// Package logger provides structured logging for obtkit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers carrying structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("result")
//	log.Info("operation completed", logger.Fields("op", "save"))
package logger
