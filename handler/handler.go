package handler

import (
	"fmt"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/next-trace/scg-errhandler/classify"
	"github.com/next-trace/scg-errhandler/config"
	"github.com/next-trace/scg-errhandler/contract"
	apiError "github.com/next-trace/scg-errhandler/error"
	"github.com/next-trace/scg-errhandler/logging"
	"github.com/next-trace/scg-errhandler/render"
)

// Handler is the error pipeline bound to one configuration.
type Handler struct {
	cfg      config.Config
	logger   contract.Logger
	debug    kitlog.Logger
	renderer render.Renderer
	metrics  *metrics
}

// Option configures a Handler during New.
type Option func(*Handler)

// WithLogger sets the sink classified failures are reported to. Defaults to logging.Nop.
func WithLogger(l contract.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithDebugLogger traces every pipeline step at debug level. Defaults to a nop logger.
func WithDebugLogger(l kitlog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.debug = l
		}
	}
}

// WithRegisterer counts handled failures by category on reg as errhandler_errors_total.
// Registering two handlers on the same registerer panics.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(h *Handler) { h.metrics = newMetrics(reg) }
}

// New returns a Handler for cfg. Only cfg.Environment "development" exposes error
// internals; the zero Config does not.
func New(cfg config.Config, opts ...Option) *Handler {
	h := &Handler{
		cfg:    cfg,
		logger: logging.Nop,
		debug:  kitlog.NewNopLogger(),
	}
	for _, o := range opts {
		o(h)
	}

	h.renderer = render.Renderer{ExposeInternals: cfg.Development()}

	_ = level.Debug(h.debug).Log("msg", "setting up error handler", "environment", cfg.Environment)

	return h
}

// Config returns the configuration the handler was built with.
func (h *Handler) Config() config.Config { return h.cfg }

// Handle runs the pipeline for raw and returns its outcome.
func (h *Handler) Handle(raw any) Result {
	_ = level.Debug(h.debug).Log("msg", "received error", "err", fmt.Sprint(raw))

	e := apiError.Ensure(raw)
	if h.cfg.ErrorName != "" {
		e = e.Renamed(h.cfg.ErrorName)
	}

	policy, err := classify.Elect(e.HTTPStatus())
	if err != nil {
		_ = level.Debug(h.debug).Log("msg", "failed to elect handler", "status", e.HTTPStatus())

		return Result{
			Outcome:    OutcomeFallback,
			Error:      e,
			Category:   classify.Unclassifiable,
			Unexpected: h.unexpected(e, err),
		}
	}

	_ = level.Debug(h.debug).Log("msg", "elected handler", "category", policy.Category)

	policy.Log(h.logger, e)
	h.metrics.observe(policy.Category)

	return Result{
		Outcome:  OutcomeNormal,
		Error:    e,
		Category: policy.Category,
		Payload:  h.renderer.Payload(e),
	}
}

func (h *Handler) unexpected(e *apiError.Error, reason error) *UnexpectedError {
	_ = level.Debug(h.debug).Log("msg", "invoking unexpected error handler")

	h.logger.Errorf(render.UnexpectedPrefix+"%s (%v)", e.Error(), reason)
	h.metrics.observe(classify.Unclassifiable)

	return &UnexpectedError{
		Err:     e,
		Reason:  reason,
		Payload: h.renderer.Unexpected(e),
	}
}
