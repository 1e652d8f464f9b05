package contract

// Logger is the sink the pipeline reports classified failures to.
//
// Implementations must be safe for concurrent use, must not block indefinitely
// and must not panic.
type Logger interface {
	Errorf(format string, args ...any)
}
