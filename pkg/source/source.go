// Package source loads batches of task results exported from the task queue.
package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/user/scanreport/pkg/report"
)

var readFile = os.ReadFile

const maxLineSize = 16 << 20

// Load reads task results from a JSON array file, or from a JSON-lines file when
// the extension is .jsonl or .ndjson. A path of "-" reads standard input.
func Load(path string) ([]report.TaskResult, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = readFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read task results: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson":
		return DecodeLines(bytes.NewReader(data))
	}
	return Decode(data)
}

// LoadAll loads every path and concatenates the results in argument order.
func LoadAll(paths []string) ([]report.TaskResult, error) {
	var out []report.TaskResult
	for _, p := range paths {
		results, err := Load(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		out = append(out, results...)
	}
	return out, nil
}

// Decode parses a JSON array of task results. Input that does not start with '['
// is treated as JSON lines.
func Decode(data []byte) ([]report.TaskResult, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] != '[' {
		return DecodeLines(bytes.NewReader(trimmed))
	}
	var results []report.TaskResult
	if err := json.Unmarshal(trimmed, &results); err != nil {
		return nil, fmt.Errorf("unmarshal task results: %w", err)
	}
	return results, nil
}

// DecodeLines parses one task result per line. Blank lines are skipped.
func DecodeLines(r io.Reader) ([]report.TaskResult, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var results []report.TaskResult
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		var tr report.TaskResult
		if err := json.Unmarshal(text, &tr); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		results = append(results, tr)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}
	return results, nil
}
