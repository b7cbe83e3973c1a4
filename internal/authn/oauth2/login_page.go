package oauth2

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/rentacar/internal/ui"
	"github.com/bornholm/rentacar/pkg/log"
	"github.com/pkg/errors"
)

type LoginPageTemplateData struct {
	ui.HeadTemplateData
	Prefix    string
	Providers []Provider
}

func (h *Handler) getLoginPage(w http.ResponseWriter, r *http.Request) {
	data := LoginPageTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: "Login",
		},
		Prefix:    h.prefix,
		Providers: h.providers,
	}

	if err := templates.ExecuteTemplate(w, "login", data); err != nil {
		slog.ErrorContext(r.Context(), "could not execute template", log.Error(errors.WithStack(err)))
	}
}
