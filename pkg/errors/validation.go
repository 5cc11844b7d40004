package errors

import (
	"regexp"
	"unicode"
)

// maxLabels bounds the number of legend entries one spec may carry. The
// partitioning loop is linear in label count per division, so this is a
// request-size guard for the API, not an algorithmic necessity.
const maxLabels = 10000

// maxLabelLength bounds a single label's byte length.
const maxLabelLength = 1024

// validAligns mirrors the alignment set the sizing policies recognize.
// Kept here so the validation layer has no dependency on pkg/legend.
var validAligns = map[string]bool{
	"":       true, // empty resolves to the default
	"top":    true,
	"bottom": true,
	"left":   true,
	"right":  true,
	"center": true,
	"outer":  true,
}

// ValidateAlign checks that align names a recognized alignment mode.
func ValidateAlign(align string) error {
	if !validAligns[align] {
		return New(ErrCodeInvalidAlign, "unknown legend alignment: %q", align)
	}
	return nil
}

// chartTypeRegex matches chart type identifiers: lowercase words, optionally
// dash-separated.
var chartTypeRegex = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)

// ValidateChartType checks that chartType is a well-formed identifier.
// Unknown but well-formed types are accepted; only the pie family needs
// exact classification and unknown types are simply not in it.
func ValidateChartType(chartType string) error {
	if chartType == "" {
		return New(ErrCodeInvalidChartType, "chart type cannot be empty")
	}
	if !chartTypeRegex.MatchString(chartType) {
		return New(ErrCodeInvalidChartType, "invalid chart type: %q", chartType)
	}
	return nil
}

// ValidateLabels checks the label sequence for size limits and control
// characters. An empty sequence is valid; the core sizes it to zero.
func ValidateLabels(labels []string) error {
	if len(labels) > maxLabels {
		return New(ErrCodeInvalidSpec, "too many labels (max %d)", maxLabels)
	}
	for i, label := range labels {
		if len(label) > maxLabelLength {
			return New(ErrCodeInvalidSpec, "label %d too long (max %d bytes)", i, maxLabelLength)
		}
		for _, r := range label {
			if unicode.IsControl(r) {
				return New(ErrCodeInvalidSpec, "label %d contains control characters", i)
			}
		}
	}
	return nil
}

// layoutIDRegex matches UUID-shaped layout document IDs.
var layoutIDRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ValidateLayoutID checks that id is a well-formed layout document ID.
func ValidateLayoutID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidLayoutID, "layout id cannot be empty")
	}
	if !layoutIDRegex.MatchString(id) {
		return New(ErrCodeInvalidLayoutID, "invalid layout id: %q", id)
	}
	return nil
}
