// Package cache provides content-addressed caching for the two expensive
// stages of chart production: geometry layout and artifact rendering.
//
// Keys are derived from the input content, so identical datasets and
// options always hit the same entry regardless of where or when they
// were computed. Backends:
//   - file: directory-based cache for CLI usage
//   - redis: shared cache for multi-instance server deployments
//   - null: disabled caching for tests and one-shot runs
package cache

import (
	"context"
	"time"
)

// TTLs per stage. Geometry is cheap to recompute relative to its size,
// rendered artifacts are the opposite.
const (
	// TTLLayout is the lifetime of cached geometry snapshots.
	TTLLayout = 24 * time.Hour

	// TTLArtifact is the lifetime of cached rendered artifacts.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts are the config fields that change the computed
// geometry. Two runs with the same dataset hash and the same opts are
// guaranteed to produce the same snapshot.
type LayoutKeyOpts struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	MarginTop    float64 `json:"margin_top"`
	MarginRight  float64 `json:"margin_right"`
	MarginBottom float64 `json:"margin_bottom"`
	MarginLeft   float64 `json:"margin_left"`
	Stacked      bool    `json:"stacked"`
	ShowTotal    bool    `json:"show_total"`
	TotalLabel   string  `json:"total_label"`
	TotalColor   string  `json:"total_color"`
	BarPadding   float64 `json:"bar_padding"`
	ScaleType    string  `json:"scale_type"`
}

// ArtifactKeyOpts are the options that change the rendered bytes for a
// given geometry.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Style  string `json:"style"`
	Title  string `json:"title"`
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// LayoutKey generates a key for a geometry snapshot computed from
	// the dataset with the given content hash.
	LayoutKey(dataHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for an artifact rendered from the
	// geometry with the given content hash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator. Keys embed a stage prefix
// and a SHA-256 over the content hash plus options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for geometry caching.
func (k *DefaultKeyer) LayoutKey(dataHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", dataHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
