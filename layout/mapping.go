package layout

import (
	"fmt"

	"github.com/tsawler/presenta/model"
)

// MappingError reports a document that could not be arranged for a target:
// an unsupported target format, or an element with no content payload.
type MappingError struct {
	Message      string
	ElementType  string
	SourceFormat string
	TargetFormat string
	Frame        int
}

// Error implements the error interface.
func (e *MappingError) Error() string {
	msg := e.Message
	if e.ElementType != "" {
		msg = fmt.Sprintf("%s (element type %s)", msg, e.ElementType)
	}
	if e.Frame > 0 {
		msg = fmt.Sprintf("frame %d: %s", e.Frame, msg)
	}
	if e.TargetFormat != "" {
		msg = fmt.Sprintf("%s -> %s: %s", e.SourceFormat, e.TargetFormat, msg)
	}
	return msg
}

// ForTarget arranges a document for the named target format. Only "pptx"
// placement is implemented; asking for "latex" output is recognized but not
// yet supported, and anything else is an unsupported target.
func ForTarget(doc *model.Document, target string) (*model.Document, error) {
	source := ""
	if doc != nil {
		source = doc.SourceFormat
	}

	switch target {
	case "pptx":
		return Arrange(doc)
	case "latex":
		return nil, &MappingError{
			Message:      "latex output is not yet implemented",
			SourceFormat: source,
			TargetFormat: target,
		}
	default:
		return nil, &MappingError{
			Message:      "unsupported target format",
			SourceFormat: source,
			TargetFormat: target,
		}
	}
}

// SupportedConversions reports which target formats each source format can
// be converted to. Recognized-but-unimplemented targets are included so
// callers can distinguish "not yet" from "never".
func SupportedConversions() map[string][]string {
	return map[string][]string{
		"latex": {"pptx"},
		"pptx":  {"latex"},
	}
}
