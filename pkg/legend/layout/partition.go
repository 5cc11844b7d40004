package layout

import "math"

// LineGroup is one visual row of legend entries in horizontal layout.
type LineGroup []string

// Partition is a division of the label sequence into lines. Concatenating
// Lines in order always reconstructs the original label sequence.
type Partition struct {
	Lines        []LineGroup
	MaxLineWidth float64
}

// divide splits labels into count contiguous groups of near-equal size.
// Groups are sized by label count, not content width: the per-group target
// is round(len(labels)/count), and any remainder forms a final shorter group.
func (s Sizer) divide(labels []string, count int) Partition {
	if len(labels) == 0 {
		return Partition{Lines: []LineGroup{{}}}
	}

	target := int(math.Round(float64(len(labels)) / float64(count)))
	if target < 1 {
		target = 1
	}

	lines := make([]LineGroup, 0, count)
	current := make(LineGroup, 0, target)
	for _, label := range labels {
		if len(current) == target {
			lines = append(lines, current)
			current = make(LineGroup, 0, target)
		}
		current = append(current, label)
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}

	var maxWidth float64
	for _, line := range lines {
		if w := s.lineWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return Partition{Lines: lines, MaxLineWidth: maxWidth}
}

// Fit partitions labels into lines whose widest cumulative footprint comes as
// close as possible to availWidth without exceeding it, when that is
// achievable at all.
//
// Starting from a single line, the division count is raised while the widest
// line still overflows availWidth. The loop stops at a fixed point: when a
// finer division no longer shrinks the widest line, the previous division is
// kept. A single label wider than availWidth is therefore accepted as an
// unavoidable overflow rather than looping in search of an unreachable fit.
func (s Sizer) Fit(labels []string, availWidth float64) Partition {
	prev := s.divide(labels, 1)
	if prev.MaxLineWidth < availWidth {
		return prev
	}

	for count := 2; ; count++ {
		next := s.divide(labels, count)
		if next.MaxLineWidth == prev.MaxLineWidth {
			return prev
		}
		if next.MaxLineWidth < availWidth {
			return next
		}
		prev = next
	}
}
