package pptx

import "strings"

// Slide represents a parsed slide.
type Slide struct {
	Index    int         // 0-indexed slide number
	Title    string      // Slide title (from title placeholder)
	Subtitle string      // Slide subtitle (from subTitle placeholder)
	Content  []TextBlock // Text content in reading order
	Tables   []Table     // Tables on the slide
	Images   []Image     // Embedded pictures
	Notes    string      // Speaker notes
	IsTitle  bool        // Built from a centered-title layout
}

// TextBlock represents a block of text on a slide.
type TextBlock struct {
	Text        string
	Paragraphs  []Paragraph
	IsTitle     bool   // Is this the slide title?
	IsSubtitle  bool   // Is this a subtitle?
	Placeholder string // Placeholder type (title, body, etc.)
	X, Y        int    // Position in EMUs
	Width       int    // Width in EMUs
	Height      int    // Height in EMUs
}

// Paragraph represents a paragraph within a text block.
type Paragraph struct {
	Text       string
	Level      int    // Bullet/indent level (0 = top level)
	IsBullet   bool   // Has bullet point
	IsNumbered bool   // Is numbered list
	BulletChar string // Bullet character (if custom)
	Alignment  string // l, ctr, r, just
	Runs       []Run  // Text runs with formatting
}

// Run represents a text run with consistent formatting.
type Run struct {
	Text     string
	Bold     bool
	Italic   bool
	FontSize int // In hundredths of a point
}

// Table represents a table on a slide.
type Table struct {
	Rows    [][]TableCell
	Columns int
}

// TableCell represents a cell in a table.
type TableCell struct {
	Text     string
	RowSpan  int
	ColSpan  int
	IsMerged bool // Part of a merged cell (not the origin)
}

// Image represents an embedded picture, resolved to its archive path.
type Image struct {
	Name   string // Shape name from the slide
	Target string // Archive path, e.g. ppt/media/image1.png
}

// GetText returns all text from the slide as a single string.
func (s *Slide) GetText() string {
	var sb strings.Builder

	if s.Title != "" {
		sb.WriteString(s.Title + "\n\n")
	}

	for _, block := range s.Content {
		if block.IsTitle {
			continue // Already added
		}
		for _, para := range block.Paragraphs {
			if para.Text == "" {
				continue
			}
			if para.IsBullet || para.IsNumbered {
				for i := 0; i < para.Level; i++ {
					sb.WriteString("  ")
				}
				if para.BulletChar != "" {
					sb.WriteString(para.BulletChar + " ")
				} else {
					sb.WriteString("• ")
				}
			}
			sb.WriteString(para.Text + "\n")
		}
	}

	for _, table := range s.Tables {
		for _, row := range table.Rows {
			for j, cell := range row {
				if j > 0 {
					sb.WriteString("\t")
				}
				sb.WriteString(cell.Text)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
