// Package store provides persistence for saved charts.
//
// This package defines the Store interface for chart storage, with
// implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for server deployments
//
// A saved chart holds the full definition (dataset plus config) and
// optionally the computed geometry snapshot, so it can be re-rendered
// without another layout pass.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/cascade/pkg/chart"
	"github.com/matzehuels/cascade/pkg/chart/layout"
)

// Chart is a saved chart document.
type Chart struct {
	ID         string           `json:"id" bson:"_id"`
	Title      string           `json:"title,omitempty" bson:"title,omitempty"`
	Categories []chart.Category `json:"categories" bson:"categories"`
	Config     chart.Config     `json:"config" bson:"config"`
	Geometry   *layout.Geometry `json:"geometry,omitempty" bson:"geometry,omitempty"`
	CreatedAt  time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at" bson:"updated_at"`
}

// Summary is the listing view of a saved chart.
type Summary struct {
	ID         string    `json:"id" bson:"_id"`
	Title      string    `json:"title,omitempty" bson:"title,omitempty"`
	Categories int       `json:"categories" bson:"categories"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// Store is the interface for chart storage backends.
type Store interface {
	// Get retrieves a chart by ID. Returns an error with code
	// CHART_NOT_FOUND when no chart has that ID.
	Get(ctx context.Context, id string) (*Chart, error)

	// Put stores a chart, replacing any existing chart with the same ID.
	Put(ctx context.Context, c *Chart) error

	// Delete removes a chart. Deleting a missing chart is an error with
	// code CHART_NOT_FOUND.
	Delete(ctx context.Context, id string) error

	// List returns summaries of all charts, newest first.
	List(ctx context.Context) ([]Summary, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// NewID generates a chart ID.
func NewID() string {
	return uuid.NewString()
}

// New creates a chart document with a fresh ID and timestamps.
func New(title string, categories []chart.Category, cfg chart.Config) *Chart {
	now := time.Now().UTC()
	return &Chart{
		ID:         NewID(),
		Title:      title,
		Categories: categories,
		Config:     cfg,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Summarize builds the listing view of a chart.
func (c *Chart) Summarize() Summary {
	return Summary{
		ID:         c.ID,
		Title:      c.Title,
		Categories: len(c.Categories),
		CreatedAt:  c.CreatedAt,
	}
}
