// Package web renders the public site: the layout with its navigation
// header and the static pages placed inside it.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// NavLink is one entry of the public navigation bar.
type NavLink struct {
	Label string
	Href  string
}

// DefaultNavLinks are shown in every public header.
var DefaultNavLinks = []NavLink{
	{Label: "Home", Href: "/"},
	{Label: "Customer", Href: "/customer"},
}

// PublicNavbar renders the navigation bar.
func PublicNavbar() template.HTML {
	return mustRender("navbar", DefaultNavLinks)
}

// PublicLayout places children, in order, directly after a header holding
// the navigation bar.
func PublicLayout(children ...template.HTML) template.HTML {
	return mustRender("layout", struct {
		Navbar   template.HTML
		Children []template.HTML
	}{
		Navbar:   PublicNavbar(),
		Children: children,
	})
}

// CustomerPage renders the customer landing content.
func CustomerPage() template.HTML {
	return mustRender("customer", nil)
}

// Document wraps body in a complete HTML document.
func Document(title string, body template.HTML) template.HTML {
	return mustRender("document", struct {
		Title string
		Body  template.HTML
	}{
		Title: title,
		Body:  body,
	})
}

// mustRender panics on failure. Templates are embedded and parsed at init and
// the data passed in is fixed, so an error here is a programming error.
func mustRender(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		panic(fmt.Sprintf("web: render %s: %v", name, err))
	}
	return template.HTML(buf.String())
}
