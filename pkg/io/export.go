package io

import (
	"io"
	"os"

	"github.com/matzehuels/cascade/pkg/chart/layout"
	"github.com/matzehuels/cascade/pkg/errors"
)

// WriteGeometry encodes a geometry snapshot as JSON and writes it to w.
// The output can be re-imported with [ReadGeometry] for round-trip
// rendering without another layout pass.
func WriteGeometry(g *layout.Geometry, w io.Writer) error {
	data, err := layout.MarshalGeometry(g)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode geometry")
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write geometry")
	}
	return nil
}

// ExportGeometry writes a geometry snapshot to a JSON file at path.
func ExportGeometry(g *layout.Geometry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	defer f.Close()
	return WriteGeometry(g, f)
}

// ReadGeometry decodes a geometry snapshot from r.
func ReadGeometry(r io.Reader) (*layout.Geometry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read geometry")
	}
	return layout.UnmarshalGeometry(data)
}

// ImportGeometry reads a geometry snapshot from a JSON file at path.
func ImportGeometry(path string) (*layout.Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadGeometry(f)
}
