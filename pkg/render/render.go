// Package render turns an aggregation result into the final document.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/user/scanreport/pkg/engine"
)

const (
	FormatHTML = "html"
	FormatJSON = "json"
)

// Renderer writes a finished aggregation result.
type Renderer interface {
	Render(w io.Writer, result *engine.Result) error
	ContentType() string
}

// For returns the renderer for an output format name.
func For(format string, tr Translator) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", FormatHTML:
		h, err := NewHTMLRenderer(tr)
		if err != nil {
			return nil, err
		}
		return h, nil
	case FormatJSON:
		return NewJSONWriter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (use %s or %s)", format, FormatHTML, FormatJSON)
	}
}
