package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/parceltrack/pkg/buildinfo"
	"github.com/matzehuels/parceltrack/pkg/carriers"
)

type handler struct {
	cfg Config
}

// health handles GET /healthz.
func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{"status": "ok", "version": buildinfo.Version})
}

// carriers handles GET /v1/carriers.
func (h *handler) carriers(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{"data": h.cfg.Dispatcher.Carriers()})
}

// stats handles GET /v1/stats.
func (h *handler) stats(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{"data": h.cfg.Counters.Snapshot()})
}

// track handles GET /v1/tracking/{carrier}/{number}. The query parameter
// refresh=true skips the provider cache read.
func (h *handler) track(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh")); refresh {
		ctx = carriers.WithRefresh(ctx)
	}
	if h.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.Timeout)
		defer cancel()
	}

	carrier := chi.URLParam(r, "carrier")
	number := chi.URLParam(r, "number")
	rec, err := h.cfg.Dispatcher.FetchTrackingByCarrier(ctx, carrier, number)
	if err != nil {
		h.cfg.Logger.Debug("tracking failed", "carrier", carrier, "number", number, "err", err, "request_id", GetRequestID(ctx))
		writeError(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]any{"data": rec})
}
