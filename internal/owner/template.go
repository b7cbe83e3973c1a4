package owner

import (
	"embed"
	"html/template"

	"github.com/bornholm/rentacar/internal/ui"
	"github.com/bornholm/rentacar/internal/ui/navbar"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, navbar.Templates(), templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}
