package layout

import (
	"encoding/json"

	"github.com/matzehuels/cascade/pkg/errors"
)

// MarshalGeometry serializes a geometry snapshot to indented JSON.
// Field order is fixed, so identical snapshots marshal to identical
// bytes and can be content-hashed for caching.
func MarshalGeometry(g *Geometry) ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}

// UnmarshalGeometry deserializes JSON bytes into a Geometry and checks
// that the frame is present.
func UnmarshalGeometry(data []byte) (*Geometry, error) {
	var g Geometry
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal geometry")
	}
	if g.Width <= 0 || g.Height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "geometry missing frame dimensions")
	}
	return &g, nil
}
