package model

import (
	"fmt"
	"strings"
)

// WarningCode classifies a non-fatal conversion issue.
type WarningCode int

const (
	// WarnImageMissing: a chart placeholder has no image file.
	WarnImageMissing WarningCode = iota + 1
	// WarnImageUnreadable: the image file exists but cannot be decoded.
	WarnImageUnreadable
	// WarnTableSkipped: a table lacks headers or data rows.
	WarnTableSkipped
	// WarnTruncated: blocks beyond a placement limit were dropped.
	WarnTruncated
)

func (c WarningCode) String() string {
	switch c {
	case WarnImageMissing:
		return "image-missing"
	case WarnImageUnreadable:
		return "image-unreadable"
	case WarnTableSkipped:
		return "table-skipped"
	case WarnTruncated:
		return "truncated"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal issue found while converting.
type Warning struct {
	Code    WarningCode
	Slide   int // 1-indexed, 0 when not tied to a slide
	Message string
}

func (w Warning) String() string {
	if w.Slide > 0 {
		return fmt.Sprintf("slide %d: %s: %s", w.Slide, w.Code, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// IsResource reports whether the warning concerns an external resource.
func (w Warning) IsResource() bool {
	return w.Code == WarnImageMissing || w.Code == WarnImageUnreadable
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
