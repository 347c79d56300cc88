package web

import (
	"html/template"
	"sort"
	"strings"
)

// Page is a static page served inside the public layout.
type Page struct {
	Name   string
	Title  string
	Path   string
	Render func() template.HTML
}

var pages = []Page{
	{Name: "customer", Title: "Customer", Path: "/customer", Render: CustomerPage},
}

// Pages lists the static pages.
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// LookupPage finds a page by name.
func LookupPage(name string) (Page, bool) {
	for _, p := range pages {
		if p.Name == name {
			return p, true
		}
	}
	return Page{}, false
}

// PageNames returns the sorted page names.
func PageNames() []string {
	names := make([]string, 0, len(pages))
	for _, p := range pages {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// FullDocument renders p inside the layout and a document titled
// "<page> | <site>".
func (p Page) FullDocument(siteTitle string) template.HTML {
	title := p.Title
	if s := strings.TrimSpace(siteTitle); s != "" {
		title = p.Title + " | " + s
	}
	return Document(title, PublicLayout(p.Render()))
}
