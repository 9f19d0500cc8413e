package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"sort"

	"github.com/user/scanreport/pkg/engine"
)

//go:embed templates/document.html.tmpl
var documentFS embed.FS

// Translator returns the translation function for a language.
type Translator = engine.Translator

// Section collects the rendered fragments sharing a fragment name.
type Section struct {
	Title    string
	Priority int
	Items    []template.HTML
}

type document struct {
	Lang        string
	GeneratedAt string
	Count       int
	Sections    []Section
}

// HTMLRenderer composes the email body from the rendered fragments of each entry.
type HTMLRenderer struct {
	tr   Translator
	tmpl *template.Template
}

// NewHTMLRenderer parses the document template. A nil translator leaves headings
// in the source language.
func NewHTMLRenderer(tr Translator) (*HTMLRenderer, error) {
	stub := template.FuncMap{"tr": func(s string) string { return s }}
	tmpl, err := template.New("document.html.tmpl").Funcs(stub).ParseFS(documentFS, "templates/document.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse document template: %w", err)
	}
	return &HTMLRenderer{tr: tr, tmpl: tmpl}, nil
}

func (h *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

// Render writes the document. Fragment HTML was escaped when the fragment was
// rendered and is inserted as is.
func (h *HTMLRenderer) Render(w io.Writer, result *engine.Result) error {
	tr := func(s string) string { return s }
	if h.tr != nil {
		tr = h.tr.Func(result.Language)
	}

	t, err := h.tmpl.Clone()
	if err != nil {
		return err
	}
	t.Funcs(template.FuncMap{"tr": tr})

	doc := document{
		Lang:        result.Language.Tag(),
		GeneratedAt: result.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"),
		Count:       len(result.Entries),
		Sections:    Sections(result),
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, doc); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// Sections groups the fragments of all entries by fragment name, sections in
// priority order and items in entry order.
func Sections(result *engine.Result) []Section {
	index := make(map[string]int)
	var sections []Section
	names := make([]string, 0)
	for _, e := range result.Entries {
		for _, f := range e.Fragments {
			i, ok := index[f.Name]
			if !ok {
				i = len(sections)
				index[f.Name] = i
				names = append(names, f.Name)
				sections = append(sections, Section{Title: f.Title, Priority: f.Priority})
			}
			sections[i].Items = append(sections[i].Items, template.HTML(f.HTML))
		}
	}
	order := make([]int, len(sections))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := sections[order[a]], sections[order[b]]
		if sa.Priority != sb.Priority {
			return sa.Priority < sb.Priority
		}
		return names[order[a]] < names[order[b]]
	})
	out := make([]Section, len(order))
	for i, k := range order {
		out[i] = sections[k]
	}
	return out
}
