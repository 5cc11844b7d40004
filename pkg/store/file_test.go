package store

import (
	"context"
	"errors"
	"testing"

	"github.com/dana-c0914/tui.chart/pkg/legend"
	"github.com/dana-c0914/tui.chart/pkg/legend/layout"
)

func testDocument() *Document {
	height := 44.0
	return NewDocument(
		"abc123",
		640,
		legend.Dimension{Width: 90, Height: &height},
		layout.Partition{Lines: []layout.LineGroup{{"a", "b"}, {"c"}}},
	)
}

func TestFileStore_PutGet(t *testing.T) {
	ctx := context.Background()
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	doc := testDocument()
	if err := st.Put(ctx, doc); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	got, err := st.Get(ctx, doc.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.ID != doc.ID || got.SpecHash != doc.SpecHash || got.ChartWidth != doc.ChartWidth {
		t.Errorf("Get() = %+v, want %+v", got, doc)
	}
	if got.Dimension.Width != 90 || got.Dimension.HeightOrZero() != 44 {
		t.Errorf("dimension = %+v, want width 90 height 44", got.Dimension)
	}
	if len(got.Lines) != 2 {
		t.Errorf("lines = %d, want 2", len(got.Lines))
	}
}

func TestFileStore_SkippedDimensionRoundTrip(t *testing.T) {
	ctx := context.Background()
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	doc := NewDocument("abc123", 640, legend.Dimension{Width: 0}, layout.Partition{})
	if err := st.Put(ctx, doc); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	got, err := st.Get(ctx, doc.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	// The absent height of a skipped legend must survive persistence.
	if got.Dimension.Height != nil {
		t.Errorf("Height = %v, want nil", *got.Dimension.Height)
	}
}

func TestFileStore_GetMissing(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	if _, err := st.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestFileStore_Delete(t *testing.T) {
	ctx := context.Background()
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	doc := testDocument()
	if err := st.Put(ctx, doc); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := st.Delete(ctx, doc.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := st.Get(ctx, doc.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}

	// Deleting a missing ID is not an error.
	if err := st.Delete(ctx, "nope"); err != nil {
		t.Errorf("Delete(missing) failed: %v", err)
	}
}

func TestNewDocument_AssignsIdentity(t *testing.T) {
	a := testDocument()
	b := testDocument()

	if a.ID == "" || b.ID == "" {
		t.Fatal("NewDocument() left ID empty")
	}
	if a.ID == b.ID {
		t.Error("NewDocument() reused an ID")
	}
	if a.CreatedAt.IsZero() {
		t.Error("NewDocument() left CreatedAt zero")
	}
}
