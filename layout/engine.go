package layout

import (
	"strings"

	"github.com/tsawler/presenta/model"
)

// Slide geometry and flow constants, in inches.
const (
	// SlideWidth is the width of a standard slide.
	SlideWidth = 10.0
	// SlideHeight is the height of a standard slide.
	SlideHeight = 7.5
	// MarginLeft is the left content margin.
	MarginLeft = 1.0
	// MarginRight is the right content margin.
	MarginRight = 1.0
	// MarginTop is where content starts, below the title band.
	MarginTop = 2.5
	// ElementSpacing is the vertical gap between consecutive elements.
	ElementSpacing = 0.4
	// ContentWidth is the width available to content between the margins.
	ContentWidth = SlideWidth - MarginLeft - MarginRight
)

// Height estimation constants, in inches.
const (
	// TextLineHeight is the height added per line of running text.
	TextLineHeight = 0.3
	// ListItemHeight is the height added per list item.
	ListItemHeight = 0.4
	// ImageHeight is the fixed height reserved for an image.
	ImageHeight = 4.0
	// DefaultHeight is the height for element types with no specific rule.
	DefaultHeight = 0.5
)

// Arrange returns a copy of doc in which every element has been assigned a
// Position by the vertical flow rules. The input document is not modified,
// so the same unpositioned document can be arranged again for a different
// target. Arrange fails only when an element carries no content payload;
// the error identifies the element type and frame number.
//
// Frames tagged with a column layout are still arranged as a single column;
// the layout kind is preserved for the renderer.
func Arrange(doc *model.Document) (*model.Document, error) {
	if doc == nil {
		return nil, &MappingError{Message: "no document to arrange"}
	}

	out := doc.Clone()

	for _, frame := range out.Frames {
		cursor := MarginTop
		for _, elem := range frame.Elements {
			if elem.Content == nil {
				return nil, &MappingError{
					Message:     "element has no content",
					ElementType: elem.Type.String(),
					Frame:       frame.Number,
				}
			}

			h := estimateHeight(elem)
			elem.Position = &model.Position{
				X:      MarginLeft,
				Y:      cursor,
				Width:  ContentWidth,
				Height: h,
			}
			cursor += h + ElementSpacing
		}
	}

	return out, nil
}

// estimateHeight computes an element's flow height from its content.
// Text-like content grows with its line count, lists with their item count;
// images and everything else use fixed constants.
func estimateHeight(elem *model.Element) float64 {
	switch c := elem.Content.(type) {
	case model.TextContent:
		if elem.Type == model.ElementImage {
			return ImageHeight
		}
		if elem.Type != model.ElementText {
			return DefaultHeight
		}
		return heightForLines(c.Text)
	case model.BlockContent:
		return heightForLines(c.Body)
	case model.ListContent:
		n := len(c.Items)
		if n == 0 {
			n = 1
		}
		return ListItemHeight * float64(n)
	case model.ImageContent:
		return ImageHeight
	default:
		return DefaultHeight
	}
}

// heightForLines applies the per-line text rule with its minimum floor.
func heightForLines(text string) float64 {
	lines := strings.Count(text, "\n") + 1
	h := TextLineHeight * float64(lines)
	if h < TextLineHeight {
		h = TextLineHeight
	}
	return h
}
