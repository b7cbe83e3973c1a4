package oauth2

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/rentacar/pkg/log"
	"github.com/markbates/goth/gothic"
	"github.com/pkg/errors"
)

func (h *Handler) handleProvider(w http.ResponseWriter, r *http.Request) {
	if _, err := gothic.CompleteUserAuth(w, r); err == nil {
		http.Redirect(w, r, fmt.Sprintf("%s/logout", h.prefix), http.StatusTemporaryRedirect)
	} else {
		gothic.BeginAuthHandler(w, r)
	}
}

func (h *Handler) handleProviderCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	gothUser, err := gothic.CompleteUserAuth(w, r)
	if err != nil {
		slog.ErrorContext(ctx, "could not complete user auth", log.Error(errors.WithStack(err)))
		http.Redirect(w, r, fmt.Sprintf("%s/logout", h.prefix), http.StatusTemporaryRedirect)
		return
	}

	slog.DebugContext(ctx, "authenticated user", slog.String("provider", gothUser.Provider), slog.String("subject", gothUser.UserID))

	fullName := gothUser.Name
	if fullName == "" {
		fullName = strings.TrimSpace(gothUser.FirstName + " " + gothUser.LastName)
	}

	user := &User{
		Subject:  gothUser.UserID,
		Provider: gothUser.Provider,

		Nickname: gothUser.NickName,
		FullName: fullName,
		Email:    gothUser.Email,
	}

	if user.UserSubject() == "" {
		slog.ErrorContext(ctx, "could not authenticate user", log.Error(errors.New("user subject missing")))
		http.Redirect(w, r, fmt.Sprintf("%s/logout", h.prefix), http.StatusTemporaryRedirect)
		return
	}

	if user.UserProvider() == "" {
		slog.ErrorContext(ctx, "could not authenticate user", log.Error(errors.New("user provider missing")))
		http.Redirect(w, r, fmt.Sprintf("%s/logout", h.prefix), http.StatusTemporaryRedirect)
		return
	}

	if rawPreferredUsername, exists := gothUser.RawData["preferred_username"]; exists {
		if preferredUsername, ok := rawPreferredUsername.(string); ok && preferredUsername != "" {
			user.Nickname = preferredUsername
		}
	}

	if err := h.storeSessionUser(w, r, user); err != nil {
		slog.ErrorContext(ctx, "could not store session user", log.Error(errors.WithStack(err)))
		http.Redirect(w, r, fmt.Sprintf("%s/logout", h.prefix), http.StatusTemporaryRedirect)
		return
	}

	http.Redirect(w, r, h.postLoginRedirect, http.StatusSeeOther)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.retrieveSessionUser(r)
	if err != nil && !errors.Is(err, errSessionNotFound) {
		slog.ErrorContext(ctx, "could not retrieve session user", log.Error(errors.WithStack(err)))
	}

	if err := h.Logout(w, r); err != nil {
		slog.ErrorContext(ctx, "could not clear session", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if user == nil {
		http.Redirect(w, r, h.postLogoutRedirect, http.StatusTemporaryRedirect)
		return
	}

	redirectURL := fmt.Sprintf("%s/providers/%s/logout", h.prefix, user.UserProvider())

	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

func (h *Handler) handleProviderLogout(w http.ResponseWriter, r *http.Request) {
	if err := gothic.Logout(w, r); err != nil {
		slog.ErrorContext(r.Context(), "could not logout from provider", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.postLogoutRedirect, http.StatusTemporaryRedirect)
}
