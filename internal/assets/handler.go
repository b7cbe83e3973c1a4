package assets

import (
	"io"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/bornholm/rentacar/pkg/log"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

type Handler struct {
	prefix string
	source Source
	mux    *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// URL returns the public URL of the named asset.
func (h *Handler) URL(name string) string {
	return path.Join(h.prefix, strings.TrimPrefix(name, "/"))
}

func (h *Handler) serveAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name := path.Clean("/" + r.PathValue("name"))

	obj, err := h.source.Open(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.NotFound(w, r)
			return
		}

		slog.ErrorContext(ctx, "could not open asset", log.Error(errors.WithStack(err)), slog.String("name", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	defer obj.Close()

	slog.DebugContext(ctx, "serving asset", slog.String("name", name), slog.String("size", humanize.Bytes(uint64(max(obj.Size, 0)))))

	if obj.ContentType != "" {
		w.Header().Set("Content-Type", obj.ContentType)
	}

	if obj.Size >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	}

	if !obj.ModTime.IsZero() {
		w.Header().Set("Last-Modified", obj.ModTime.UTC().Format(http.TimeFormat))
	}

	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(time.Hour.Seconds())))

	if _, err := io.Copy(w, obj); err != nil {
		slog.ErrorContext(ctx, "could not write asset", log.Error(errors.WithStack(err)), slog.String("name", name))
	}
}

func NewHandler(prefix string, source Source) *Handler {
	prefix = "/" + strings.Trim(prefix, "/")

	h := &Handler{
		prefix: prefix,
		source: source,
		mux:    &http.ServeMux{},
	}

	h.mux.HandleFunc("GET "+prefix+"/{name...}", h.serveAsset)

	return h
}

var _ http.Handler = &Handler{}
