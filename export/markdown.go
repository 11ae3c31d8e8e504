package export

import (
	"fmt"
	"strings"

	"github.com/tsawler/presenta/model"
)

// Markdown returns the document as a markdown outline: the deck title as a
// top-level heading, one second-level heading per frame, and each element
// rendered in the closest markdown construct.
func Markdown(doc *model.Document) string {
	var sb strings.Builder

	if doc.Metadata.Title != "" {
		sb.WriteString("# " + doc.Metadata.Title + "\n\n")
	}
	if doc.Metadata.Author != "" {
		sb.WriteString("*" + doc.Metadata.Author + "*\n\n")
	}

	for _, frame := range doc.Frames {
		heading := fmt.Sprintf("## Slide %d", frame.Number)
		if frame.Title != "" {
			heading += ": " + frame.Title
		}
		sb.WriteString(heading + "\n\n")
		if frame.Subtitle != "" {
			sb.WriteString("*" + frame.Subtitle + "*\n\n")
		}

		for _, el := range frame.Elements {
			writeMarkdownElement(&sb, el)
		}

		for _, note := range frame.Notes {
			sb.WriteString("> " + note + "\n")
		}
		if len(frame.Notes) > 0 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func writeMarkdownElement(sb *strings.Builder, el *model.Element) {
	switch c := el.Content.(type) {
	case model.TextContent:
		switch el.Type {
		case model.ElementTitle, model.ElementSubtitle:
			// Frame titles are emitted with the slide heading.
		case model.ElementCode:
			sb.WriteString("```\n" + c.Text + "\n```\n\n")
		default:
			if c.Text != "" {
				sb.WriteString(c.Text + "\n\n")
			}
		}
	case model.ListContent:
		for i, item := range c.Items {
			if c.Ordered {
				sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
			} else {
				sb.WriteString("- " + item + "\n")
			}
		}
		if len(c.Items) > 0 {
			sb.WriteString("\n")
		}
	case model.BlockContent:
		if c.Title != "" {
			sb.WriteString("**" + c.Title + ":** ")
		}
		sb.WriteString(c.Body + "\n\n")
	case model.ImageContent:
		sb.WriteString(fmt.Sprintf("![%s](%s)\n\n", c.Caption, c.Path))
	case model.EquationContent:
		if c.Kind == model.EquationDisplay {
			sb.WriteString("$$\n" + c.Source + "\n$$\n\n")
		} else {
			sb.WriteString("$" + c.Source + "$\n\n")
		}
	}
}

// Text returns the document as plain text, frames separated by blank lines.
// Useful for search indexing and quick inspection.
func Text(doc *model.Document) string {
	var sb strings.Builder

	if doc.Metadata.Title != "" {
		sb.WriteString(doc.Metadata.Title + "\n\n")
	}

	for i, frame := range doc.Frames {
		if i > 0 {
			sb.WriteString("\n")
		}
		if frame.Title != "" {
			sb.WriteString(frame.Title + "\n")
		}
		if frame.Subtitle != "" {
			sb.WriteString(frame.Subtitle + "\n")
		}
		for _, el := range frame.Elements {
			if el.Type == model.ElementTitle || el.Type == model.ElementSubtitle {
				continue
			}
			if text := el.Text(); text != "" {
				sb.WriteString(text + "\n")
			}
		}
	}

	return sb.String()
}
