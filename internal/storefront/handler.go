package storefront

import (
	"fmt"
	"net/http"

	"github.com/bornholm/rentacar/internal/ui/navbar"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/singleflight"
)

type Handler struct {
	mux            *http.ServeMux
	sessionStore   sessions.Store
	sessionName    string
	prefix         string
	loginURL       string
	logoutRedirect string
	logout         LogoutFunc
	client         ClientFunc
	navbarOptions  []navbar.OptionFunc
	roleChanges    singleflight.Group
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(sessionStore sessions.Store, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux:            http.NewServeMux(),
		sessionStore:   sessionStore,
		sessionName:    opts.SessionName,
		prefix:         opts.Prefix,
		loginURL:       opts.LoginURL,
		logoutRedirect: opts.LogoutRedirect,
		logout:         opts.Logout,
		client:         opts.Client,
		navbarOptions:  opts.Navbar,
	}

	h.mux.HandleFunc("GET /{$}", h.getIndexPage)

	actions := navbar.NewActions(h.prefix)

	h.mux.HandleFunc(fmt.Sprintf("POST %s", actions.ToggleMenu), h.handleToggleMenu)
	h.mux.HandleFunc(fmt.Sprintf("POST %s", actions.OpenProfile), h.handleOpenProfile)
	h.mux.HandleFunc(fmt.Sprintf("POST %s", actions.CloseProfile), h.handleCloseProfile)
	h.mux.HandleFunc(fmt.Sprintf("POST %s", actions.Login), h.handleLogin)
	h.mux.HandleFunc(fmt.Sprintf("POST %s", actions.ChangeRole), h.handleChangeRole)
	h.mux.HandleFunc(fmt.Sprintf("POST %s", actions.Logout), h.handleLogout)

	return h
}

var _ http.Handler = &Handler{}
