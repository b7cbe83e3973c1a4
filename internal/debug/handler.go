package debug

import (
	"context"
	"expvar"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"

	"github.com/bornholm/rentacar/pkg/log"
	"github.com/pkg/errors"
)

type HealthCheckFunc func(ctx context.Context) error

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// NewHandler exposes the runtime profiles and the health of the service
// under the given prefix.
func NewHandler(prefix string, healthCheck HealthCheckFunc) *Handler {
	mux := &http.ServeMux{}

	pprofPrefix := prefix + "/pprof"

	mux.HandleFunc(fmt.Sprintf("%s/", pprofPrefix), pprof.Index)
	mux.HandleFunc(fmt.Sprintf("%s/cmdline", pprofPrefix), pprof.Cmdline)
	mux.HandleFunc(fmt.Sprintf("%s/profile", pprofPrefix), pprof.Profile)
	mux.HandleFunc(fmt.Sprintf("%s/symbol", pprofPrefix), pprof.Symbol)
	mux.HandleFunc(fmt.Sprintf("%s/trace", pprofPrefix), pprof.Trace)
	mux.HandleFunc(fmt.Sprintf("%s/{name}", pprofPrefix), func(w http.ResponseWriter, r *http.Request) {
		pprof.Handler(r.PathValue("name")).ServeHTTP(w, r)
	})

	mux.Handle(fmt.Sprintf("GET %s/vars", prefix), expvar.Handler())
	mux.HandleFunc(fmt.Sprintf("GET %s/health", prefix), func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := healthCheck(ctx); err != nil {
			slog.ErrorContext(ctx, "health check failed", log.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})

	return &Handler{mux}
}

var _ http.Handler = &Handler{}
