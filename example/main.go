// Package main demonstrates usage of the scg-errhandler packages.
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log/level"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/next-trace/scg-errhandler/config"
	apiError "github.com/next-trace/scg-errhandler/error"
	"github.com/next-trace/scg-errhandler/handler"
	"github.com/next-trace/scg-errhandler/logging"
	"github.com/next-trace/scg-errhandler/render"
	"github.com/next-trace/scg-errhandler/transport/ginerr"
	"github.com/next-trace/scg-errhandler/transport/nethttp"
)

var errNotFound = apiError.Named("NotFoundError")

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg, os.Stderr)
	reg := prometheus.NewRegistry()

	h := handler.New(cfg,
		handler.WithLogger(logging.GoKit(logger)),
		handler.WithDebugLogger(logger),
		handler.WithRegisterer(reg),
	)

	// Callback transport, e.g. for a websocket message handler.
	h.Callback(errNotFound("customer 42 not found", http.StatusNotFound), func(err error, payload *render.Payload) {
		if err != nil {
			_ = level.Warn(logger).Log("msg", "unexpected failure", "err", err)
			return
		}
		_ = level.Info(logger).Log("msg", "callback payload", "message", payload.Message)
	})

	r := mux.NewRouter()
	r.Handle("/customers/{id}", nethttp.Wrap(h, func(_ http.ResponseWriter, req *http.Request) error {
		return errNotFound("customer "+mux.Vars(req)["id"]+" not found", http.StatusNotFound)
	}))
	r.Handle("/boom", nethttp.Wrap(h, func(http.ResponseWriter, *http.Request) error {
		return errors.New("boom")
	}))
	r.Handle("/redirect", nethttp.Wrap(h, func(http.ResponseWriter, *http.Request) error {
		// 3xx is not an error status and ends in the fallback path
		return apiError.New("moved", http.StatusFound)
	}))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), ginerr.Middleware(h))
	engine.GET("/gin/orders/:id", func(c *gin.Context) {
		_ = c.Error(apiError.New("order "+c.Param("id")+" is locked", http.StatusConflict))
	})
	r.PathPrefix("/gin/").Handler(engine)

	_ = level.Info(logger).Log("msg", "listening", "addr", ":8080", "environment", cfg.Environment)

	if err := http.ListenAndServe(":8080", r); err != nil {
		_ = level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
