// Package logger wraps zerolog with service- and component-scoped loggers.
//
// Components receive a *Logger at construction and tag their output:
//
//	log := logger.NewDefault("authkit").WithComponent("auth")
//	log.Info("user registered", logger.Fields(logger.FieldUserID, id))
//
// A package-level global logger is available for code without an injected
// instance (middleware recovery, process startup).
package logger
