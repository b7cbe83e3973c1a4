package storefront

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bornholm/rentacar/internal/ui/navbar"
	"github.com/bornholm/rentacar/pkg/log"
	"github.com/pkg/errors"
)

func (h *Handler) handleToggleMenu(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, func(ctx context.Context, nb *navbar.Navbar) {
		nb.ToggleMobileMenu()
	})
}

func (h *Handler) handleOpenProfile(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, func(ctx context.Context, nb *navbar.Navbar) {
		nb.OpenProfileDrawer()
	})
}

func (h *Handler) handleCloseProfile(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, func(ctx context.Context, nb *navbar.Navbar) {
		nb.CloseProfileDrawer()
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, func(ctx context.Context, nb *navbar.Navbar) {
		nb.RequestLogin()
	})
}

func (h *Handler) handleChangeRole(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, func(ctx context.Context, nb *navbar.Navbar) {
		nb.RequestRoleChange(ctx)
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, func(ctx context.Context, nb *navbar.Navbar) {
		if err := nb.Logout(ctx); err != nil {
			slog.DebugContext(ctx, "logout did not complete", log.Error(err))
		}
	})
}

// handleAction runs the given navbar interaction then answers with the
// updated navbar fragment for htmx requests, or a redirection for plain
// form submissions.
func (h *Handler) handleAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, nb *navbar.Navbar)) {
	ctx := r.Context()

	returnPath := sanitizeReturnPath(r.FormValue("return"))

	visit := h.newVisit(w, r)
	nb := visit.Navbar(navbar.WithCurrentRoute(returnPath))

	action(ctx, nb)

	visit.state = nb.State()

	partial := isHTMX(r) && visit.redirect == ""

	if err := visit.Save(!partial); err != nil {
		slog.ErrorContext(ctx, "could not save navbar session", log.Error(errors.WithStack(err)))
	}

	if !partial {
		location := returnPath
		if visit.redirect != "" {
			location = visit.redirect
		}

		if isHTMX(r) {
			w.Header().Set("HX-Redirect", location)
			w.WriteHeader(http.StatusOK)
			return
		}

		http.Redirect(w, r, location, http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := nb.Render(w); err != nil {
		slog.ErrorContext(ctx, "could not render navbar", log.Error(errors.WithStack(err)))
		return
	}

	if err := templates.ExecuteTemplate(w, "toasts", visit.Toasts(true)); err != nil {
		slog.ErrorContext(ctx, "could not render toasts", log.Error(errors.WithStack(err)))
		return
	}
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// sanitizeReturnPath keeps only local absolute paths.
func sanitizeReturnPath(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return "/"
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}

	return u.RequestURI()
}
