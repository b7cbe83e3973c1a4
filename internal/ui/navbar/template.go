package navbar

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/bornholm/rentacar/internal/ui"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

// Templates returns the navbar templates, to be merged into pages
// embedding the navbar.
func Templates() fs.FS {
	return templateFs
}
