package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cascade/pkg/chart"
	"github.com/matzehuels/cascade/pkg/errors"
	"github.com/matzehuels/cascade/pkg/pipeline"
)

// Definition is a chart described in a file: the dataset plus the
// layout and render options needed to reproduce it.
type Definition struct {
	Title      string           `json:"title,omitempty" toml:"title"`
	Categories []chart.Category `json:"categories" toml:"categories"`
	Chart      chart.Config     `json:"chart,omitempty" toml:"chart"`
	Formats    []string         `json:"formats,omitempty" toml:"formats"`
	Style      string           `json:"style,omitempty" toml:"style"`
}

// Options converts the definition into pipeline options.
func (d *Definition) Options() pipeline.Options {
	return pipeline.Options{
		Title:      d.Title,
		Categories: d.Categories,
		Chart:      d.Chart,
		Formats:    d.Formats,
		Style:      d.Style,
	}
}

// ReadDefinition loads a chart definition from path. The format is
// selected by extension: .json or .toml.
func ReadDefinition(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadJSONDefinition(f)
	case ".toml":
		return ReadTOMLDefinition(f)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported definition format: %s (use .json or .toml)", filepath.Ext(path))
	}
}

// ReadJSONDefinition decodes a JSON chart definition from r.
func ReadJSONDefinition(r io.Reader) (*Definition, error) {
	var d Definition
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode definition")
	}
	if err := chart.ValidateCategories(d.Categories); err != nil {
		return nil, err
	}
	return &d, nil
}

// ReadTOMLDefinition decodes a TOML chart definition from r.
func ReadTOMLDefinition(r io.Reader) (*Definition, error) {
	var d Definition
	if _, err := toml.NewDecoder(r).Decode(&d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode definition")
	}
	if err := chart.ValidateCategories(d.Categories); err != nil {
		return nil, err
	}
	return &d, nil
}
