package handler

import (
	"net/http"

	"github.com/next-trace/scg-errhandler/classify"
	apiError "github.com/next-trace/scg-errhandler/error"
	"github.com/next-trace/scg-errhandler/render"
)

// Outcome is the terminal state of one pipeline run.
type Outcome int

const (
	OutcomeNormal Outcome = iota
	OutcomeFallback
)

func (o Outcome) String() string {
	if o == OutcomeFallback {
		return "fallback"
	}

	return "normal"
}

// Result is what Handle produces. Payload is set for OutcomeNormal, Unexpected
// for OutcomeFallback; Error is always the coerced failure.
type Result struct {
	Outcome    Outcome
	Error      *apiError.Error
	Category   classify.Category
	Payload    render.Payload
	Unexpected *UnexpectedError
}

// Status is the HTTP status of the coerced failure.
func (r Result) Status() int { return r.Error.HTTPStatus() }

// UnexpectedError is the fallback result for failures whose status is neither 4xx nor 5xx.
// Its message is the fallback payload message; errors.Is and errors.As reach both
// the coerced failure and the classification error.
type UnexpectedError struct {
	Err     *apiError.Error
	Reason  error
	Payload render.Payload
}

func (u *UnexpectedError) Error() string { return u.Payload.Message }

func (u *UnexpectedError) Unwrap() []error { return []error{u.Err, u.Reason} }

// HTTPStatus is the status frameworks should answer a fallback with.
func (u *UnexpectedError) HTTPStatus() int { return http.StatusInternalServerError }
