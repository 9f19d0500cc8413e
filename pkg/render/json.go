package render

import (
	"encoding/json"
	"io"

	"github.com/user/scanreport/pkg/engine"
)

// JSONWriter writes the result as indented JSON.
type JSONWriter struct {
	Indent string
}

func NewJSONWriter() *JSONWriter { return &JSONWriter{Indent: "  "} }

func (w *JSONWriter) ContentType() string { return "application/json; charset=utf-8" }

func (w *JSONWriter) Render(out io.Writer, result *engine.Result) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", w.Indent)
	return enc.Encode(struct {
		Version string `json:"version"`
		*engine.Result
	}{
		Version: "1.0",
		Result:  result,
	})
}
