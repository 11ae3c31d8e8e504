package presenta

import (
	"fmt"
	"strings"
)

// Warning codes reported by terminal operations.
const (
	// WarnMissingImage is reported when an image element references a file
	// that cannot be found under the configured base directory.
	WarnMissingImage = "missing_image"

	// WarnUnreadableImage is reported when an image file exists but its
	// dimensions cannot be decoded.
	WarnUnreadableImage = "unreadable_image"

	// WarnOCRUnavailable is reported when image text recovery was requested
	// but the binary was built without the ocr tag.
	WarnOCRUnavailable = "ocr_unavailable"

	// WarnOCRFailed is reported when OCR ran but could not read an image.
	WarnOCRFailed = "ocr_failed"
)

// Warning describes a non-fatal issue encountered during conversion. The
// operation succeeded but the result may be degraded.
type Warning struct {
	Code    string // Stable machine-readable code
	Message string // Human-readable description
	Detail  string // Optional context (a path, a snippet)
}

// String returns the warning as "code: message (detail)".
func (w Warning) String() string {
	if w.Detail == "" {
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", w.Code, w.Message, w.Detail)
}

// FormatWarnings joins warnings into a single string, one per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, 0, len(warnings))
	for _, w := range warnings {
		lines = append(lines, w.String())
	}
	return strings.Join(lines, "\n")
}
