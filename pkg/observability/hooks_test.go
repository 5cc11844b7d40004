package observability

import (
	"context"
	"testing"
	"time"
)

type recordingLayoutHooks struct {
	starts    int
	completes int
	skipped   bool
}

func (h *recordingLayoutHooks) OnSizeStart(string, int) { h.starts++ }

func (h *recordingLayoutHooks) OnSizeComplete(_ string, _, _ float64, skipped bool, _ time.Duration) {
	h.completes++
	h.skipped = skipped
}

func TestSetLayoutHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingLayoutHooks{}
	SetLayoutHooks(rec)

	Layout().OnSizeStart("top", 3)
	Layout().OnSizeComplete("top", 90, 44, false, time.Millisecond)

	if rec.starts != 1 || rec.completes != 1 {
		t.Errorf("starts = %d, completes = %d, want 1 and 1", rec.starts, rec.completes)
	}
	if rec.skipped {
		t.Error("skipped = true, want false")
	}
}

func TestSetHooks_NilIgnored(t *testing.T) {
	t.Cleanup(Reset)

	SetLayoutHooks(nil)
	SetMeasureHooks(nil)
	SetCacheHooks(nil)
	SetServerHooks(nil)

	// Nil registrations keep the no-op defaults; calls must not panic.
	Layout().OnSizeStart("top", 0)
	Measure().OnMeasure("approx", "a", 1)
	Cache().OnCacheHit(context.Background(), "size")
	Server().OnRequest(context.Background(), "GET", "/healthz")
}

func TestReset(t *testing.T) {
	rec := &recordingLayoutHooks{}
	SetLayoutHooks(rec)
	Reset()

	Layout().OnSizeStart("top", 1)
	if rec.starts != 0 {
		t.Errorf("hooks still registered after Reset, starts = %d", rec.starts)
	}
}

func TestDefaultsAreNoop(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Errorf("Layout() = %T, want NoopLayoutHooks", Layout())
	}
	if _, ok := Measure().(NoopMeasureHooks); !ok {
		t.Errorf("Measure() = %T, want NoopMeasureHooks", Measure())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Errorf("Server() = %T, want NoopServerHooks", Server())
	}
}
