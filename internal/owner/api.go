package owner

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/rentacar/internal/authn"
	"github.com/bornholm/rentacar/internal/store"
	"github.com/bornholm/rentacar/internal/ui/navbar"
	"github.com/bornholm/rentacar/pkg/log"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	MessageRoleChanged      = "Now you can list cars"
	MessageRoleChangeFailed = "Could not change your role, please retry"
	MessageNotAuthenticated = "You must be logged in to list cars"
)

type APIHandler struct {
	store *store.Store
	mux   *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *APIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewAPIHandler(changeRolePath string, store *store.Store) *APIHandler {
	h := &APIHandler{
		store: store,
		mux:   &http.ServeMux{},
	}

	h.mux.HandleFunc("POST "+changeRolePath, h.handleChangeRole)

	return h
}

func (h *APIHandler) handleChangeRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authUser, err := authn.ContextUser(ctx)
	if err != nil {
		Unauthorized(w, r)
		return
	}

	storeUser, ok := authUser.(*store.User)
	if !ok {
		slog.ErrorContext(ctx, "unexpected user type", slog.Any("user", authUser))
		writeJSON(w, r, http.StatusInternalServerError, &navbar.RoleChangeResponse{Success: false, Message: MessageRoleChangeFailed})
		return
	}

	if storeUser.IsOwner {
		writeJSON(w, r, http.StatusOK, &navbar.RoleChangeResponse{Success: true, Message: MessageRoleChanged})
		return
	}

	if _, err := h.store.SetOwner(ctx, storeUser.ID, true); err != nil {
		slog.ErrorContext(ctx, "could not set owner role", log.Error(errors.WithStack(err)), slog.Int64("userID", storeUser.ID))
		writeJSON(w, r, http.StatusInternalServerError, &navbar.RoleChangeResponse{Success: false, Message: MessageRoleChangeFailed})
		return
	}

	slog.InfoContext(ctx, "user is now an owner", slog.Int64("userID", storeUser.ID))

	writeJSON(w, r, http.StatusOK, &navbar.RoleChangeResponse{Success: true, Message: MessageRoleChanged})
}

// Unauthorized answers anonymous API calls.
func Unauthorized(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusUnauthorized, &navbar.RoleChangeResponse{Success: false, Message: MessageNotAuthenticated})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(data); err != nil {
		slog.ErrorContext(r.Context(), "could not write response", log.Error(errors.WithStack(err)))
	}
}

var _ http.Handler = &APIHandler{}
