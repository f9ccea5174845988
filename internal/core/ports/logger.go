// Package ports defines the interfaces between the resolution engine and
// its collaborators: logging, section parsing, filesystem access, watching
// and tracing.
package ports

// Logger defines the logging interface used across the application.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a message that is only useful when tracing resolution.
	Debug(msg string)
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a warning message.
	Warn(msg string)
	// Error logs an error with its structured context.
	Error(err error)
}
