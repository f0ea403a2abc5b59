// Package api exposes the dispatcher over HTTP.
//
// Routes:
//
//	GET /healthz
//	GET /v1/carriers
//	GET /v1/stats
//	GET /v1/tracking/{carrier}/{number}
//
// Errors use the body {"error":{"code":"...","message":"..."}} with
// INVALID_INPUT and UNSUPPORTED answered as 400, NOT_FOUND as 404,
// UPSTREAM as 502 and anything else as 500.
package api

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/parceltrack/pkg/observability"
	"github.com/matzehuels/parceltrack/pkg/tracking"
)

// Dispatcher is the part of tracking.Dispatcher the API needs.
type Dispatcher interface {
	FetchTrackingByCarrier(ctx context.Context, carrierID, trackingNumber string) (*tracking.Record, error)
	Carriers() []tracking.CarrierInfo
}

// Config configures the router.
type Config struct {
	Dispatcher Dispatcher
	// Counters backs /v1/stats; nil serves zeroed stats.
	Counters *observability.Counters
	Logger   *log.Logger
	// Timeout bounds one tracking request. Zero means no extra bound.
	Timeout time.Duration
}

// NewRouter builds the HTTP handler.
func NewRouter(cfg Config) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Counters == nil {
		cfg.Counters = observability.NewCounters()
	}
	h := &handler{cfg: cfg}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger{Logger: cfg.Logger}.Middleware)

	r.Get("/healthz", h.health)
	r.Route("/v1", func(v chi.Router) {
		v.Get("/carriers", h.carriers)
		v.Get("/stats", h.stats)
		v.Get("/tracking/{carrier}/{number}", h.track)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		JSONError(w, http.StatusNotFound, "ROUTE_NOT_FOUND", "no such route")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		JSONError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})
	return r
}

// Serve runs handler on addr until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
