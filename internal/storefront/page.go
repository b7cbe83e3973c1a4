package storefront

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/rentacar/internal/ui"
	"github.com/bornholm/rentacar/internal/ui/navbar"
	"github.com/bornholm/rentacar/pkg/log"
	"github.com/pkg/errors"
)

type PageTemplateData struct {
	ui.HeadTemplateData
	Navbar navbar.ViewData
	Toasts navbar.Toasts
}

// Page prepares the data shared by every storefront page: the navbar of the
// visitor and the notifications left by previous requests.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request, title string) PageTemplateData {
	ctx := r.Context()

	visit := h.newVisit(w, r)
	visit.ConsumeFlashes()

	nb := visit.Navbar(navbar.WithCurrentRoute(r.URL.Path))

	if err := visit.Save(false); err != nil {
		slog.ErrorContext(ctx, "could not save navbar session", log.Error(errors.WithStack(err)))
	}

	return PageTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: title,
		},
		Navbar: nb.View(),
		Toasts: visit.Toasts(false),
	}
}

// Notify keeps a notification for the next rendered page of the visitor.
func (h *Handler) Notify(w http.ResponseWriter, r *http.Request, notification navbar.Notification) {
	visit := h.newVisit(w, r)
	visit.Notify(notification)

	if err := visit.Save(true); err != nil {
		slog.ErrorContext(r.Context(), "could not save navbar session", log.Error(errors.WithStack(err)))
	}
}

type IndexPageTemplateData struct {
	PageTemplateData
}

func (h *Handler) getIndexPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := IndexPageTemplateData{
		PageTemplateData: h.Page(w, r, "Rentacar"),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := templates.ExecuteTemplate(w, "index", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}
