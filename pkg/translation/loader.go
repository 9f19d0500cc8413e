package translation

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/user/scanreport/pkg/report"
	"gopkg.in/yaml.v3"
)

// File is the on-disk format of a translation override file:
//
//	language: pl_PL
//	messages:
//	  "Source message.": "Przetłumaczona wiadomość."
type File struct {
	Language string            `yaml:"language"`
	Messages map[string]string `yaml:"messages"`
}

// LoadFile reads a single override file.
func LoadFile(path string) (report.Language, Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return "", nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	lang, err := report.ParseLanguage(f.Language)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return lang, Table(f.Messages), nil
}

// LoadDir reads every .yaml/.yml file in dir. Files are applied in name order, so
// a later file wins when two of them translate the same message.
func LoadDir(dir string) (map[report.Language]Table, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	out := make(map[report.Language]Table)
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		lang, table, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		Merge(out, map[report.Language]Table{lang: table})
	}
	return out, nil
}

// SaveFile writes table as an override file for lang.
func SaveFile(path string, lang report.Language, table Table) error {
	data, err := yaml.Marshal(File{Language: string(lang), Messages: table})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
