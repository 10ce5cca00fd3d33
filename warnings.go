package enbx2html

import (
	"fmt"
	"strings"
)

// WarningKind identifies a non-fatal condition encountered during
// conversion.
type WarningKind int

const (
	// WarningMetadataMissing: Document.xml was absent or unparsable and
	// the conversion proceeded with empty metadata.
	WarningMetadataMissing WarningKind = iota
	// WarningSlideSkipped: a declared slide id had no usable definition
	// file and was left out of the output.
	WarningSlideSkipped
	// WarningMissingResource: an element referenced a resource id that
	// did not resolve; a placeholder was emitted instead.
	WarningMissingResource
	// WarningOCRUnavailable: OCR alt text was requested but the OCR
	// engine could not be initialized.
	WarningOCRUnavailable
)

func (k WarningKind) String() string {
	switch k {
	case WarningMetadataMissing:
		return "metadata-missing"
	case WarningSlideSkipped:
		return "slide-skipped"
	case WarningMissingResource:
		return "missing-resource"
	case WarningOCRUnavailable:
		return "ocr-unavailable"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal issue: the conversion succeeded but the
// output may be incomplete in the described way.
type Warning struct {
	Kind    WarningKind
	SlideID string // empty for document-level warnings
	Detail  string
}

func (w Warning) String() string {
	if w.SlideID != "" {
		return fmt.Sprintf("[%s] slide %s: %s", w.Kind, w.SlideID, w.Detail)
	}
	return fmt.Sprintf("[%s] %s", w.Kind, w.Detail)
}

// FormatWarnings renders warnings one per line for display.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, 0, len(warnings))
	for _, w := range warnings {
		lines = append(lines, w.String())
	}
	return strings.Join(lines, "\n")
}
