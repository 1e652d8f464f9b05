package handler

import (
	"github.com/go-kit/log/level"

	"github.com/next-trace/scg-errhandler/render"
)

// CallbackFunc receives exactly one of a fallback error or a payload.
type CallbackFunc func(err error, payload *render.Payload)

// Callback runs the pipeline for raw and passes the outcome to cb: (nil, payload)
// on OutcomeNormal, (*UnexpectedError, nil) on OutcomeFallback. The pipeline
// still runs, and logs, when cb is nil.
func (h *Handler) Callback(raw any, cb CallbackFunc) {
	r := h.Handle(raw)
	if cb == nil {
		return
	}

	if r.Outcome == OutcomeFallback {
		cb(r.Unexpected, nil)
		return
	}

	_ = level.Debug(h.debug).Log("msg", "submitting callback response")

	p := r.Payload
	cb(nil, &p)
}
