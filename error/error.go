package error

import (
	"fmt"
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/next-trace/scg-errhandler/contract"
)

const (
	// DefaultName is assigned when the source value carries no meaningful name.
	DefaultName = "ExecutionError"
	// DefaultMessage is assigned when the source value carries no message.
	DefaultMessage = "An unexpected error has occurred"
	// DefaultHTTPStatus is used whenever no positive status can be derived.
	DefaultHTTPStatus = 500
)

// Error is the canonical error type of the pipeline.
//
// Fields:
//   - Name:       short type tag (e.g. "ExecutionError", "NotFoundError")
//   - Message:    human-readable description, never empty
//   - HTTPStatus: positive numeric status, 500 unless the source said otherwise
//   - Cause:      the original value, when it was an error
type Error struct {
	name       string
	message    string
	httpStatus int
	cause      error
	stack      pkgerrors.StackTrace
}

// compile-time guarantee that *Error implements contract.Error
var _ contract.Error = (*Error)(nil)

// ------ standard error interface

// Error returns "<name>: <message>".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	return e.name + ": " + e.message
}

func (e *Error) Unwrap() error { return e.cause }

// ------ contract.Error getters

func (e *Error) Name() string    { return e.name }
func (e *Error) Message() string { return e.message }
func (e *Error) HTTPStatus() int { return e.httpStatus }

// StackTrace exposes the captured frames in the shape github.com/pkg/errors uses,
// so errors wrapping an *Error keep reporting the original stack.
func (e *Error) StackTrace() pkgerrors.StackTrace { return e.stack }

// Detail returns Error() followed by the captured stack frames.
func (e *Error) Detail() string {
	if e == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(e.Error())

	if len(e.stack) > 0 {
		fmt.Fprintf(&b, "%+v", e.stack)
	}

	return b.String()
}

// Format prints Detail for %+v and Error for %v and %s.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Detail())
			return
		}

		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// Renamed returns a copy of e carrying the given name. An empty name leaves it unchanged.
func (e *Error) Renamed(name string) *Error {
	c := e.clone()
	if name != "" {
		c.name = name
	}

	return c
}

// ------ core constructors

// New creates a new Error. An empty message or a non-positive status falls back to
// DefaultMessage and DefaultHTTPStatus.
func New(message string, httpStatus int, opts ...Option) *Error {
	return build(message, httpStatus, callers(1), opts)
}

// Constructor creates errors of one named type.
type Constructor func(message string, httpStatus int, opts ...Option) *Error

// Named returns a Constructor for errors tagged with name, e.g.
//
//	NotFound := error.Named("NotFoundError")
//	err := NotFound("customer 42 not found", http.StatusNotFound)
func Named(name string) Constructor {
	return func(message string, httpStatus int, opts ...Option) *Error {
		return build(message, httpStatus, callers(1), append([]Option{WithName(name)}, opts...))
	}
}

func build(message string, httpStatus int, stack pkgerrors.StackTrace, opts []Option) *Error {
	e := &Error{
		name:       DefaultName,
		message:    message,
		httpStatus: httpStatus,
		stack:      stack,
	}
	for _, o := range opts {
		o(e)
	}

	if st := stackOf(e.cause); st != nil {
		e.stack = st
	}

	e.normalize()

	return e
}

func (e *Error) normalize() {
	if e.name == "" || e.name == "Error" {
		e.name = DefaultName
	}

	if e.message == "" {
		e.message = DefaultMessage
	}

	if e.httpStatus <= 0 {
		e.httpStatus = DefaultHTTPStatus
	}
}

// normalized returns a copy with defaults applied, for values built without New.
func (e *Error) normalized() *Error {
	c := e.clone()
	c.normalize()

	return c
}

func (e *Error) clone() *Error {
	c := *e
	return &c
}
