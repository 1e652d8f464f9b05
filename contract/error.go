// Package contract exposes the minimal interfaces the error pipeline depends on.
//
// Implementations live elsewhere: the canonical error in package error, logging
// sinks in package logging and transport bindings under transport/.
package contract

// Error is the canonical error shape every failure is normalized into.
//
// Implementations must:
//   - Respect Go initialisms (HTTPStatus).
//   - Return a positive HTTPStatus and a non-empty Message.
//   - Support errors.Unwrap via Unwrap().
type Error interface {
	error
	Name() string
	Message() string
	HTTPStatus() int
	// Detail returns the structured snapshot exposed only to development clients.
	Detail() string
	Unwrap() error
}
