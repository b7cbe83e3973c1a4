package owner

import (
	"fmt"
	"net/http"

	"github.com/bornholm/rentacar/internal/store"
	"github.com/bornholm/rentacar/internal/storefront"
	"github.com/bornholm/rentacar/internal/ui/navbar"
)

// Pages provides the storefront layout shared by the owner pages.
type Pages interface {
	Page(w http.ResponseWriter, r *http.Request, title string) storefront.PageTemplateData
	Notify(w http.ResponseWriter, r *http.Request, notification navbar.Notification)
}

type Handler struct {
	prefix string
	store  *store.Store
	pages  Pages
	mux    *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(prefix string, store *store.Store, pages Pages) *Handler {
	handler := &Handler{
		prefix: prefix,
		store:  store,
		pages:  pages,
		mux:    &http.ServeMux{},
	}

	handler.mux.HandleFunc(fmt.Sprintf("GET %s", prefix), handler.serveDashboard)

	return handler
}

var _ http.Handler = &Handler{}
