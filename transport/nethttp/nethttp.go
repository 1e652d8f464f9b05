// Package nethttp binds the error pipeline's synchronous transport to net/http.
package nethttp

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/next-trace/scg-errhandler/contract"
	"github.com/next-trace/scg-errhandler/handler"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Request adapts *http.Request to contract.Request.
type Request struct {
	r *http.Request
}

func NewRequest(r *http.Request) Request { return Request{r: r} }

func (r Request) Accept() string { return r.r.Header.Get("Accept") }

// Response adapts http.ResponseWriter to contract.Response. The status is held
// back until a body is sent.
type Response struct {
	w      http.ResponseWriter
	status int
}

var (
	_ contract.Request  = Request{}
	_ contract.Response = (*Response)(nil)
)

func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w, status: http.StatusOK}
}

func (r *Response) SetStatus(code int) { r.status = code }

func (r *Response) SetHeader(name, value string) { r.w.Header().Set(name, value) }

func (r *Response) SendJSON(payload any) error {
	return writeJSON(r.w, r.status, payload)
}

func (r *Response) SendText(body string) error {
	return writeText(r.w, r.status, body)
}

func (r *Response) NotAcceptable() error {
	return writeText(r.w, http.StatusNotAcceptable, "Not Acceptable")
}

func writeJSON(w http.ResponseWriter, status int, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, err = w.Write(data)

	return err
}

func writeText(w http.ResponseWriter, status int, body string) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write([]byte(body))

	return err
}

// HandlerFunc is an http handler that reports failures by returning them.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// FallbackFunc receives what the pipeline did not answer itself: an
// *handler.UnexpectedError, or a write failure after the response has started.
type FallbackFunc func(w http.ResponseWriter, r *http.Request, err error)

// DefaultFallback answers an *handler.UnexpectedError with status 500 and its
// payload as JSON and ignores write failures.
func DefaultFallback(w http.ResponseWriter, _ *http.Request, err error) {
	var unexpected *handler.UnexpectedError
	if !errors.As(err, &unexpected) {
		return
	}

	_ = writeJSON(w, unexpected.HTTPStatus(), unexpected.Payload)
}

// Option configures Wrap.
type Option func(*middleware)

// WithFallback replaces DefaultFallback.
func WithFallback(f FallbackFunc) Option {
	return func(m *middleware) {
		if f != nil {
			m.fallback = f
		}
	}
}

type middleware struct {
	h        *handler.Handler
	next     HandlerFunc
	fallback FallbackFunc
}

// Wrap returns an http.Handler running next and sending every error it returns,
// or value it panics with, through h.
func Wrap(h *handler.Handler, next HandlerFunc, opts ...Option) http.Handler {
	m := &middleware{h: h, next: next, fallback: DefaultFallback}
	for _, o := range opts {
		o(m)
	}

	return m
}

func (m *middleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if v := recover(); v != nil {
			if v == http.ErrAbortHandler {
				panic(v)
			}

			m.serveError(w, r, v)
		}
	}()

	if err := m.next(w, r); err != nil {
		m.serveError(w, r, err)
	}
}

func (m *middleware) serveError(w http.ResponseWriter, r *http.Request, raw any) {
	if err := ServeError(m.h, w, r, raw); err != nil {
		m.fallback(w, r, err)
	}
}

// ServeError runs h's synchronous transport for raw on a net/http exchange.
func ServeError(h *handler.Handler, w http.ResponseWriter, r *http.Request, raw any) error {
	return h.Respond(NewRequest(r), NewResponse(w), raw)
}
