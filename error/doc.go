// Package error provides the canonical, transport-agnostic failure value of the pipeline.
//
// It exposes a single concrete type Error that implements contract.Error and integrates
// with the standard library's errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Name, Message and HTTPStatus are always populated (defaults: ExecutionError,
//     a fixed placeholder message and 500)
//   - A stack trace captured with github.com/pkg/errors at construction, or inherited
//     from a cause that already carries one
//   - Detail renders the name, message and stack for development clients
//
// New and Named construct errors directly; Ensure coerces any value (an error, a
// string, a status code, a map decoded from JSON, nil) into an *Error and never fails.
package error
