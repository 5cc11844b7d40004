package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidAlign, "unknown alignment: %s", "middle")

	if got := err.Error(); !strings.Contains(got, "INVALID_ALIGN") || !strings.Contains(got, "middle") {
		t.Errorf("Error() = %q, want code and message", got)
	}
	if !Is(err, ErrCodeInvalidAlign) {
		t.Error("Is() = false, want true")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is() matched wrong code")
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeStore, cause, "save layout %s", "abc")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause lost from chain")
	}
	if GetCode(err) != ErrCodeStore {
		t.Errorf("GetCode() = %q, want %q", GetCode(err), ErrCodeStore)
	}
	if got := err.Error(); !strings.Contains(got, "disk full") {
		t.Errorf("Error() = %q, want cause included", got)
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestGetCode_WrappedInChain(t *testing.T) {
	inner := New(ErrCodeLayoutNotFound, "layout missing")
	outer := fmt.Errorf("handling request: %w", inner)

	if got := GetCode(outer); got != ErrCodeLayoutNotFound {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeLayoutNotFound)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidSpec, "too many labels")
	if got := UserMessage(err); got != "too many labels" {
		t.Errorf("UserMessage() = %q, want message without code", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage() = %q, want error string", got)
	}
}

func TestValidateAlign(t *testing.T) {
	for _, align := range []string{"", "top", "bottom", "left", "right", "center", "outer"} {
		if err := ValidateAlign(align); err != nil {
			t.Errorf("ValidateAlign(%q) failed: %v", align, err)
		}
	}
	for _, align := range []string{"middle", "TOP", "top "} {
		if err := ValidateAlign(align); !Is(err, ErrCodeInvalidAlign) {
			t.Errorf("ValidateAlign(%q) error = %v, want INVALID_ALIGN", align, err)
		}
	}
}

func TestValidateChartType(t *testing.T) {
	for _, ct := range []string{"line", "pie", "column", "radial-bar"} {
		if err := ValidateChartType(ct); err != nil {
			t.Errorf("ValidateChartType(%q) failed: %v", ct, err)
		}
	}
	for _, ct := range []string{"", "Line", "line chart", "line-", "-bar", "pie3"} {
		if err := ValidateChartType(ct); !Is(err, ErrCodeInvalidChartType) {
			t.Errorf("ValidateChartType(%q) error = %v, want INVALID_CHART_TYPE", ct, err)
		}
	}
}

func TestValidateLabels(t *testing.T) {
	if err := ValidateLabels(nil); err != nil {
		t.Errorf("ValidateLabels(nil) failed: %v", err)
	}
	if err := ValidateLabels([]string{"revenue", "コスト", ""}); err != nil {
		t.Errorf("ValidateLabels() failed: %v", err)
	}

	if err := ValidateLabels([]string{"bad\x00label"}); !Is(err, ErrCodeInvalidSpec) {
		t.Errorf("control character error = %v, want INVALID_SPEC", err)
	}
	if err := ValidateLabels([]string{strings.Repeat("x", maxLabelLength+1)}); !Is(err, ErrCodeInvalidSpec) {
		t.Errorf("oversized label error = %v, want INVALID_SPEC", err)
	}

	many := make([]string, maxLabels+1)
	if err := ValidateLabels(many); !Is(err, ErrCodeInvalidSpec) {
		t.Errorf("too many labels error = %v, want INVALID_SPEC", err)
	}
}

func TestValidateLayoutID(t *testing.T) {
	if err := ValidateLayoutID("0193e5a8-1b2c-4d5e-8f90-a1b2c3d4e5f6"); err != nil {
		t.Errorf("ValidateLayoutID() failed: %v", err)
	}
	for _, id := range []string{"", "not-a-uuid", "0193E5A8-1B2C-4D5E-8F90-A1B2C3D4E5F6"} {
		if err := ValidateLayoutID(id); !Is(err, ErrCodeInvalidLayoutID) {
			t.Errorf("ValidateLayoutID(%q) error = %v, want INVALID_LAYOUT_ID", id, err)
		}
	}
}
