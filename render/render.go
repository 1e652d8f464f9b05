// Package render shapes canonical errors into transport-agnostic response payloads.
package render

import (
	"github.com/next-trace/scg-errhandler/contract"
)

// UnexpectedPrefix opens the message of every fallback payload.
const UnexpectedPrefix = "An unexpected exception has occurred. "

// Payload is the body sent to the client. Error is omitted from the encoding
// unless the renderer exposes internals.
type Payload struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Renderer builds payloads. ExposeInternals adds the error detail (name, message
// and stack) to every payload and is meant for development only.
type Renderer struct {
	ExposeInternals bool
}

// Payload renders a classified error.
func (r Renderer) Payload(e contract.Error) Payload {
	return r.build(e.Message(), e)
}

// Unexpected renders the fallback payload for an error that could not be classified.
func (r Renderer) Unexpected(e contract.Error) Payload {
	return r.build(UnexpectedPrefix+e.Message(), e)
}

func (r Renderer) build(message string, e contract.Error) Payload {
	p := Payload{
		Success: false,
		Message: message,
	}
	if r.ExposeInternals {
		p.Error = e.Detail()
	}

	return p
}
