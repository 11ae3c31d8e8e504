package model

// Content is the payload of an Element. The concrete type carried must agree
// with the element's Type tag; the constructors in this package keep the two
// in sync, so a mismatch can only be introduced by hand-building elements or
// by decoding untrusted data (the export package rejects mismatches there).
type Content interface {
	isContent()
}

// TextContent holds plain or styled run text. It is the payload for Text,
// Title, Subtitle, Table, Math, Code, Hyperlink, Shape and Chart elements.
type TextContent struct {
	Text       string
	Formatting []Formatting
	FontSize   string
	FontColor  string
	FontFamily string
}

func (TextContent) isContent() {}

// ListContent holds the items of an Itemize or Enumerate element.
// Ordered distinguishes the two; it mirrors the element's type tag.
type ListContent struct {
	Items   []string
	Ordered bool
}

func (ListContent) isContent() {}

// BlockContent holds a titled callout (informational, alert, or example).
// Body may be empty; an empty block is still a real element.
type BlockContent struct {
	Kind  BlockKind
	Title string
	Body  string
}

func (BlockContent) isContent() {}

// ImageContent references an image by path, with an optional caption.
// The path is as written in the source; resolution against a base
// directory happens downstream.
type ImageContent struct {
	Path    string
	Caption string
}

func (ImageContent) isContent() {}

// EquationContent holds raw equation source, either inline or display.
type EquationContent struct {
	Source string
	Kind   EquationKind
}

func (EquationContent) isContent() {}

// BlockKind classifies a block callout.
type BlockKind int

const (
	// BlockPlain is an informational block.
	BlockPlain BlockKind = iota
	// BlockAlert is a warning/alert block.
	BlockAlert
	// BlockExample is an example block.
	BlockExample
)

// String returns the source-level environment name for the block kind.
func (k BlockKind) String() string {
	switch k {
	case BlockAlert:
		return "alertblock"
	case BlockExample:
		return "exampleblock"
	default:
		return "block"
	}
}

// ParseBlockKind maps an environment name to its BlockKind.
func ParseBlockKind(s string) (BlockKind, bool) {
	switch s {
	case "block":
		return BlockPlain, true
	case "alertblock":
		return BlockAlert, true
	case "exampleblock":
		return BlockExample, true
	}
	return BlockPlain, false
}

// EquationKind distinguishes inline equations (rendered within a text line)
// from display equations (rendered on their own line).
type EquationKind int

const (
	// EquationInline is an equation embedded in running text.
	EquationInline EquationKind = iota
	// EquationDisplay is an equation set on its own visual line.
	EquationDisplay
)

// String returns "inline" or "display".
func (k EquationKind) String() string {
	if k == EquationDisplay {
		return "display"
	}
	return "inline"
}

// ParseEquationKind maps "inline" or "display" to its EquationKind.
func ParseEquationKind(s string) (EquationKind, bool) {
	switch s {
	case "inline":
		return EquationInline, true
	case "display":
		return EquationDisplay, true
	}
	return EquationInline, false
}
