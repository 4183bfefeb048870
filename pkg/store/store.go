// Package store persists charts: the input series together with the
// computed layout, keyed by a generated ID.
//
// Two backends ship with the library: an in-memory store for tests and
// single-process servers, and a MongoDB store for deployments that need
// durable storage.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chartkit/chartkit/pkg/chart"
	"github.com/chartkit/chartkit/pkg/errors"
	"github.com/chartkit/chartkit/pkg/series"
)

// ErrNotFound is returned when a chart ID does not exist.
var ErrNotFound = errors.New(errors.ErrCodeChartNotFound, "chart not found")

// Chart is a stored chart: the input series plus its computed layout.
type Chart struct {
	ID        string         `json:"id" bson:"_id"`
	Title     string         `json:"title,omitempty" bson:"title,omitempty"`
	Series    series.Series  `json:"series" bson:"series"`
	Layout    chart.Snapshot `json:"layout" bson:"layout"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
}

// NewChart creates a chart record with a fresh ID and timestamp.
func NewChart(s series.Series, snap chart.Snapshot) Chart {
	return Chart{
		ID:        uuid.NewString(),
		Title:     s.Title,
		Series:    s,
		Layout:    snap,
		CreatedAt: time.Now().UTC(),
	}
}

// Store is the persistence interface for charts.
type Store interface {
	// Put stores a chart, replacing any existing chart with the same ID.
	Put(ctx context.Context, c Chart) error

	// Get retrieves a chart by ID. Returns ErrNotFound when missing.
	Get(ctx context.Context, id string) (Chart, error)

	// List returns all stored charts, newest first.
	List(ctx context.Context) ([]Chart, error)

	// Delete removes a chart. Deleting a missing ID returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
