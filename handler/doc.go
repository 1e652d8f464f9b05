// Package handler runs the error pipeline: coerce the failure into an *error.Error,
// classify it by status, log it through the configured sink and render the payload.
//
// Every invocation ends in exactly one of two outcomes. A classified failure
// (4xx or 5xx) yields OutcomeNormal with a payload for the client. Anything else
// yields OutcomeFallback carrying an *UnexpectedError, which transports hand to the
// surrounding framework's own error path instead of rendering it.
//
// Two transports are built in:
//   - Respond writes a content-negotiated response through contract.Response
//     (bindings for net/http and gin live under transport/)
//   - Callback delivers the outcome to a continuation
//
// A Handler is immutable after New and safe for concurrent use.
package handler
