// Package templating holds the localized template fragments reporters declare for
// their report types.
package templating

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"

	"github.com/user/scanreport/pkg/report"
)

// Data is what a fragment template is executed with.
type Data struct {
	Report   report.Report
	Language report.Language
}

// Fragment is a named piece of template content rendered for every report of the
// types it applies to. Lower priorities are composed first.
type Fragment struct {
	Name        string
	Title       string
	Priority    int
	ReportTypes []report.Type

	tmpl *template.Template
}

// New parses source as an html/template. Escaping happens when the fragment is
// rendered, after messages have been composed and translated.
func New(name, title string, priority int, source string, types ...report.Type) (Fragment, error) {
	t, err := template.New(name).Funcs(Funcs(nil, report.DefaultLanguage)).Parse(source)
	if err != nil {
		return Fragment{}, fmt.Errorf("failed to parse fragment %s: %w", name, err)
	}
	return Fragment{
		Name:        name,
		Title:       title,
		Priority:    priority,
		ReportTypes: append([]report.Type(nil), types...),
		tmpl:        t,
	}, nil
}

// FromFS reads a fragment from fsys; the fragment is named after the file.
func FromFS(fsys fs.FS, file, title string, priority int, types ...report.Type) (Fragment, error) {
	src, err := fs.ReadFile(fsys, file)
	if err != nil {
		return Fragment{}, err
	}
	return New(path.Base(file), title, priority, string(src), types...)
}

// MustFromFS is FromFS for fragments embedded into the binary.
func MustFromFS(fsys fs.FS, file, title string, priority int, types ...report.Type) Fragment {
	f, err := FromFS(fsys, file, title, priority, types...)
	if err != nil {
		panic(err)
	}
	return f
}

// AppliesTo reports whether the fragment renders reports of type t.
func (f Fragment) AppliesTo(t report.Type) bool {
	for _, rt := range f.ReportTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// Render executes the fragment for one report. tr translates source messages.
func (f Fragment) Render(r report.Report, lang report.Language, tr func(string) string) (string, error) {
	if f.tmpl == nil {
		return "", fmt.Errorf("fragment %q was not created with templating.New", f.Name)
	}
	t, err := f.tmpl.Clone()
	if err != nil {
		return "", err
	}
	t.Funcs(Funcs(tr, lang))

	var buf bytes.Buffer
	if err := t.Execute(&buf, Data{Report: r, Language: lang}); err != nil {
		return "", fmt.Errorf("failed to render fragment %s: %w", f.Name, err)
	}
	return buf.String(), nil
}

// Funcs returns the functions available to fragment templates. A nil tr leaves
// messages untranslated.
func Funcs(tr func(string) string, lang report.Language) template.FuncMap {
	if tr == nil {
		tr = func(s string) string { return s }
	}
	return template.FuncMap{
		"tr":   tr,
		"lang": func() string { return string(lang) },
	}
}

// Sort orders fragments by priority, then by name.
func Sort(fragments []Fragment) {
	sort.SliceStable(fragments, func(i, j int) bool {
		if fragments[i].Priority != fragments[j].Priority {
			return fragments[i].Priority < fragments[j].Priority
		}
		return fragments[i].Name < fragments[j].Name
	})
}
