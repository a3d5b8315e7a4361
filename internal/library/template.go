package library

import (
	"embed"
	"html/template"

	"github.com/bornholm/libraryms/internal/ui"
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

// PageTemplateData contains the data needed to render a destination page
type PageTemplateData struct {
	ui.HeadTemplateData
	Navbar      ui.NavbarTemplateData
	Title       string
	Description string
	Icon        string
}

// SearchTemplateData contains the data needed to render the search results page
type SearchTemplateData struct {
	ui.HeadTemplateData
	Navbar ui.NavbarTemplateData
	Query  string
}
