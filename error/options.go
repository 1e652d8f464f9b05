package error

// Option configures an Error during construction via New or a Named constructor.
type Option func(*Error)

// WithName sets the error name. "" and the generic "Error" resolve to DefaultName.
func WithName(name string) Option { return func(e *Error) { e.name = name } }

// WithHTTPStatus overrides the status passed to the constructor.
func WithHTTPStatus(status int) Option { return func(e *Error) { e.httpStatus = status } }

// WithCause sets the underlying cause to be returned by Unwrap().
// A cause carrying a github.com/pkg/errors stack trace donates that stack.
func WithCause(cause error) Option { return func(e *Error) { e.cause = cause } }
