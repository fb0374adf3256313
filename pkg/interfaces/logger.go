package interfaces

import "context"

// Logger is the leveled logging contract the landing runtime writes to. It is
// deliberately narrower than github.com/goliatone/go-logger: the runtime never
// terminates the process or emits trace-level entries, so only the four levels
// it actually uses are required. A go-logger instance still satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out named loggers, one per module namespace.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for attaching persistent structured
// fields. Providers that support it return a new logger carrying the fields
// on every entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
