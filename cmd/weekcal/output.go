package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// printer renders command results in the format chosen with --output
type printer struct {
	format string
}

func newPrinter(format string) (*printer, error) {
	switch format {
	case "text", "json", "yaml", "toml":
		return &printer{format: format}, nil
	}
	return nil, fmt.Errorf("--output must be text, json, yaml or toml, got '%s'", format)
}

// print writes v in the structured formats and calls text for plain text.
// TOML needs a table at the top level, so v must be a struct or a map.
func (p *printer) print(w io.Writer, v any, text func(io.Writer)) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(v)
	}
	text(w)
	return nil
}
