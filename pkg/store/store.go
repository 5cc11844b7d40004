// Package store persists computed legend layouts.
//
// A layout document records one sizing computation (the spec digest, the
// resolved dimension, and the line grouping) so it can be fetched later by
// ID, shared between chart services, or inspected when debugging layout
// regressions.
//
// Two backends implement [Store]:
//   - file: JSON documents in a directory, for CLI use
//   - mongo: a collection for serve-mode deployments
//
// # Usage
//
//	doc := store.NewDocument(specHash, chartWidth, dim, part)
//	if err := st.Put(ctx, doc); err != nil { ... }
//	doc, err := st.Get(ctx, id)
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dana-c0914/tui.chart/pkg/buildinfo"
	"github.com/dana-c0914/tui.chart/pkg/legend"
	"github.com/dana-c0914/tui.chart/pkg/legend/layout"
)

// ErrNotFound is returned when a layout document does not exist.
var ErrNotFound = errors.New("layout not found")

// Document is one persisted sizing computation. EngineVersion records which
// build produced the layout, for debugging regressions across releases.
type Document struct {
	ID            string             `json:"id" bson:"_id"`
	SpecHash      string             `json:"spec_hash" bson:"spec_hash"`
	ChartWidth    float64            `json:"chart_width" bson:"chart_width"`
	Dimension     legend.Dimension   `json:"dimension" bson:"dimension"`
	Lines         []layout.LineGroup `json:"lines,omitempty" bson:"lines,omitempty"`
	EngineVersion string             `json:"engine_version" bson:"engine_version"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}

// NewDocument builds a Document with a fresh ID and creation timestamp.
func NewDocument(specHash string, chartWidth float64, dim legend.Dimension, part layout.Partition) *Document {
	return &Document{
		ID:            uuid.NewString(),
		SpecHash:      specHash,
		ChartWidth:    chartWidth,
		Dimension:     dim,
		Lines:         part.Lines,
		EngineVersion: buildinfo.Version,
		CreatedAt:     time.Now().UTC(),
	}
}

// Store is the interface for layout document backends.
type Store interface {
	// Get retrieves a document by ID. Returns ErrNotFound when absent.
	Get(ctx context.Context, id string) (*Document, error)

	// Put stores a document, overwriting any existing one with the same ID.
	Put(ctx context.Context, doc *Document) error

	// Delete removes a document. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
