package model

// ElementType identifies what kind of content an element carries.
type ElementType int

const (
	// ElementUnknown is content that couldn't be classified.
	ElementUnknown ElementType = iota
	// ElementText is running body text.
	ElementText
	// ElementTitle is a frame or document title.
	ElementTitle
	// ElementSubtitle is secondary title text.
	ElementSubtitle
	// ElementItemize is an unordered (bulleted) list.
	ElementItemize
	// ElementEnumerate is an ordered (numbered) list.
	ElementEnumerate
	// ElementBlock is a titled callout box.
	ElementBlock
	// ElementImage is a referenced image.
	ElementImage
	// ElementEquation is mathematical notation, inline or display.
	ElementEquation
	// ElementTable is tabular content.
	ElementTable
	// ElementMath is a math fragment outside an equation environment.
	ElementMath
	// ElementCode is a source code listing.
	ElementCode
	// ElementHyperlink is a link with visible text.
	ElementHyperlink
	// ElementShape is a drawn shape with optional label text.
	ElementShape
	// ElementChart is a chart placeholder.
	ElementChart
)

// String returns a stable lowercase name for the element type.
func (t ElementType) String() string {
	switch t {
	case ElementText:
		return "text"
	case ElementTitle:
		return "title"
	case ElementSubtitle:
		return "subtitle"
	case ElementItemize:
		return "itemize"
	case ElementEnumerate:
		return "enumerate"
	case ElementBlock:
		return "block"
	case ElementImage:
		return "image"
	case ElementEquation:
		return "equation"
	case ElementTable:
		return "table"
	case ElementMath:
		return "math"
	case ElementCode:
		return "code"
	case ElementHyperlink:
		return "hyperlink"
	case ElementShape:
		return "shape"
	case ElementChart:
		return "chart"
	default:
		return "unknown"
	}
}

// ParseElementType maps a name produced by [ElementType.String] back to its
// value. The second return reports whether the name was recognized.
func ParseElementType(s string) (ElementType, bool) {
	for t := ElementText; t <= ElementChart; t++ {
		if t.String() == s {
			return t, true
		}
	}
	if s == "unknown" {
		return ElementUnknown, true
	}
	return ElementUnknown, false
}

// Formatting is a character-level style applied to a text run.
type Formatting int

const (
	// FormatNormal is unstyled text.
	FormatNormal Formatting = iota
	// FormatBold is bold text.
	FormatBold
	// FormatItalic is italic text.
	FormatItalic
	// FormatUnderline is underlined text.
	FormatUnderline
	// FormatStrikethrough is struck-through text.
	FormatStrikethrough
	// FormatSuperscript is raised text.
	FormatSuperscript
	// FormatSubscript is lowered text.
	FormatSubscript
	// FormatMonospace is fixed-width text.
	FormatMonospace
)

// String returns a stable lowercase name for the formatting style.
func (f Formatting) String() string {
	switch f {
	case FormatBold:
		return "bold"
	case FormatItalic:
		return "italic"
	case FormatUnderline:
		return "underline"
	case FormatStrikethrough:
		return "strikethrough"
	case FormatSuperscript:
		return "superscript"
	case FormatSubscript:
		return "subscript"
	case FormatMonospace:
		return "monospace"
	default:
		return "normal"
	}
}

// Element is one piece of frame content: a type tag, a payload whose concrete
// type matches the tag, and an optional position assigned by the layout
// engine. Elements produced by readers have a nil Position; positioning is a
// separate, later step. Level is the nesting depth for list indentation,
// zero for top-level content.
type Element struct {
	Type     ElementType
	Content  Content
	Position *Position
	Size     *Size
	Level    int
	Style    map[string]string
	Meta     map[string]string
}

// NewTextElement returns a Text element carrying plain running text.
func NewTextElement(text string) *Element {
	return &Element{
		Type:    ElementText,
		Content: TextContent{Text: text},
	}
}

// NewTitleElement returns a Title element.
func NewTitleElement(text string) *Element {
	return &Element{
		Type:    ElementTitle,
		Content: TextContent{Text: text},
	}
}

// NewSubtitleElement returns a Subtitle element.
func NewSubtitleElement(text string) *Element {
	return &Element{
		Type:    ElementSubtitle,
		Content: TextContent{Text: text},
	}
}

// NewItemizeElement returns an unordered list element over items.
func NewItemizeElement(items []string) *Element {
	return &Element{
		Type:    ElementItemize,
		Content: ListContent{Items: items},
	}
}

// NewEnumerateElement returns an ordered list element over items.
func NewEnumerateElement(items []string) *Element {
	return &Element{
		Type:    ElementEnumerate,
		Content: ListContent{Items: items, Ordered: true},
	}
}

// NewBlockElement returns a Block element of the given kind. Body may be
// empty.
func NewBlockElement(kind BlockKind, title, body string) *Element {
	return &Element{
		Type:    ElementBlock,
		Content: BlockContent{Kind: kind, Title: title, Body: body},
	}
}

// NewImageElement returns an Image element referencing path.
func NewImageElement(path string) *Element {
	return &Element{
		Type:    ElementImage,
		Content: ImageContent{Path: path},
	}
}

// NewEquationElement returns an Equation element over raw source.
func NewEquationElement(source string, kind EquationKind) *Element {
	return &Element{
		Type:    ElementEquation,
		Content: EquationContent{Source: source, Kind: kind},
	}
}

// NewCodeElement returns a Code element carrying a listing verbatim.
func NewCodeElement(code string) *Element {
	return &Element{
		Type:    ElementCode,
		Content: TextContent{Text: code, FontFamily: "monospace"},
	}
}

// Text returns the element's visible text, regardless of payload shape.
// Lists join their items with newlines; blocks join title and body; images
// return their caption; equations return their source. Unknown payloads
// return "".
func (e *Element) Text() string {
	switch c := e.Content.(type) {
	case TextContent:
		return c.Text
	case ListContent:
		return joinLines(c.Items)
	case BlockContent:
		if c.Body == "" {
			return c.Title
		}
		if c.Title == "" {
			return c.Body
		}
		return c.Title + "\n" + c.Body
	case ImageContent:
		return c.Caption
	case EquationContent:
		return c.Source
	}
	return ""
}

// Clone returns a deep copy of the element. Content payloads are value
// types and copy with the struct.
func (e *Element) Clone() *Element {
	out := &Element{
		Type:    e.Type,
		Content: e.Content,
		Level:   e.Level,
		Style:   cloneMap(e.Style),
		Meta:    cloneMap(e.Meta),
	}
	if e.Position != nil {
		p := *e.Position
		out.Position = &p
	}
	if e.Size != nil {
		s := *e.Size
		out.Size = &s
	}
	return out
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// SetMeta records a key/value annotation on the element, allocating the
// map on first use.
func (e *Element) SetMeta(key, value string) {
	if e.Meta == nil {
		e.Meta = make(map[string]string)
	}
	e.Meta[key] = value
}

// SetStyle records a style property on the element, allocating the map on
// first use.
func (e *Element) SetStyle(key, value string) {
	if e.Style == nil {
		e.Style = make(map[string]string)
	}
	e.Style[key] = value
}

func joinLines(items []string) string {
	out := ""
	for i, it := range items {
		if i > 0 {
			out += "\n"
		}
		out += it
	}
	return out
}
