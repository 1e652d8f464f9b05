// Package ginerr binds the error pipeline's synchronous transport to gin.
package ginerr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/next-trace/scg-errhandler/contract"
	"github.com/next-trace/scg-errhandler/handler"
)

type request struct {
	c *gin.Context
}

func (r request) Accept() string { return r.c.GetHeader("Accept") }

type response struct {
	c      *gin.Context
	status int
}

var (
	_ contract.Request  = request{}
	_ contract.Response = (*response)(nil)
)

func (r *response) SetStatus(code int) {
	r.status = code
	r.c.Status(code)
}

func (r *response) SetHeader(name, value string) { r.c.Header(name, value) }

func (r *response) SendJSON(payload any) error {
	r.c.JSON(r.status, payload)
	return nil
}

func (r *response) SendText(body string) error {
	r.c.Data(r.status, "text/plain; charset=utf-8", []byte(body))
	return nil
}

func (r *response) NotAcceptable() error {
	r.c.Data(http.StatusNotAcceptable, "text/plain; charset=utf-8", []byte("Not Acceptable"))
	return nil
}

// FallbackFunc answers a failure the pipeline could not classify.
type FallbackFunc func(c *gin.Context, err *handler.UnexpectedError)

// DefaultFallback aborts with status 500 and the fallback payload as JSON.
func DefaultFallback(c *gin.Context, err *handler.UnexpectedError) {
	c.AbortWithStatusJSON(err.HTTPStatus(), err.Payload)
}

// Option configures Middleware.
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
	fallback FallbackFunc
}

// Middleware answers the last error attached with c.Error by downstream handlers,
// unless they already wrote a response. Fallback errors are attached to c.Errors
// before the fallback runs.
func Middleware(h *handler.Handler, opts ...Option) gin.HandlerFunc {
	m := &middleware{h: h, fallback: DefaultFallback}
	for _, o := range opts {
		o(m)
	}

	return m.handle
}

func (m *middleware) handle(c *gin.Context) {
	c.Next()

	last := c.Errors.Last()
	if last == nil || c.Writer.Written() {
		return
	}

	err := m.h.Respond(request{c: c}, &response{c: c}, last.Err)
	if err == nil {
		return
	}

	_ = c.Error(err)

	var unexpected *handler.UnexpectedError
	if errors.As(err, &unexpected) {
		m.fallback(c, unexpected)
	}
}
