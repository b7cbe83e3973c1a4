package owner

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/rentacar/internal/authn"
	"github.com/bornholm/rentacar/internal/store"
	"github.com/bornholm/rentacar/internal/storefront"
	"github.com/bornholm/rentacar/internal/ui/navbar"
	"github.com/bornholm/rentacar/pkg/log"
	"github.com/pkg/errors"
)

type DashboardTemplateData struct {
	storefront.PageTemplateData
	OwnerSince time.Time
	OwnerCount int64
	UserCount  int64
}

func (h *Handler) serveDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authUser, err := authn.ContextUser(ctx)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	storeUser, ok := authUser.(*store.User)
	if !ok || !storeUser.IsOwner {
		h.pages.Notify(w, r, navbar.NewNotification(navbar.LevelError, "Only owners can access the dashboard"))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := DashboardTemplateData{
		PageTemplateData: h.pages.Page(w, r, "Owner dashboard"),
		OwnerSince:       storeUser.OwnerSince,
	}

	// Counters are informative, the dashboard renders without them
	if data.UserCount, err = h.store.CountUsers(ctx); err != nil {
		slog.ErrorContext(ctx, "could not count users", log.Error(errors.WithStack(err)))
	}

	if data.OwnerCount, err = h.store.CountOwners(ctx); err != nil {
		slog.ErrorContext(ctx, "could not count owners", log.Error(errors.WithStack(err)))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := templates.ExecuteTemplate(w, "dashboard", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}
