package model

// LayoutKind names the visual arrangement a frame should receive. The zero
// value is LayoutTitleAndContent, the arrangement used when nothing more
// specific applies.
type LayoutKind int

const (
	// LayoutTitleAndContent is a title bar with content below it.
	LayoutTitleAndContent LayoutKind = iota
	// LayoutTitleSlide is a centered title page.
	LayoutTitleSlide
	// LayoutSectionHeader is a section divider.
	LayoutSectionHeader
	// LayoutTwoColumn is content split over two columns.
	LayoutTwoColumn
	// LayoutThreeColumn is content split over three columns.
	LayoutThreeColumn
	// LayoutBlank has no predefined regions.
	LayoutBlank
	// LayoutContentOnly is content with no title bar.
	LayoutContentOnly
)

// String returns a stable lowercase name for the layout kind.
func (k LayoutKind) String() string {
	switch k {
	case LayoutTitleSlide:
		return "title_slide"
	case LayoutSectionHeader:
		return "section_header"
	case LayoutTwoColumn:
		return "two_column"
	case LayoutThreeColumn:
		return "three_column"
	case LayoutBlank:
		return "blank"
	case LayoutContentOnly:
		return "content_only"
	default:
		return "title_and_content"
	}
}

// ParseLayoutKind maps a name produced by [LayoutKind.String] back to its
// value. The second return reports whether the name was recognized.
func ParseLayoutKind(s string) (LayoutKind, bool) {
	for k := LayoutTitleAndContent; k <= LayoutContentOnly; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return LayoutTitleAndContent, false
}

// Frame is a single slide: a title, an ordered list of content elements, the
// layout it should be arranged with, and any speaker notes attached to it.
// Element order is source order and is preserved through every later stage.
// Background is a color override for the slide, empty when the theme
// default applies.
type Frame struct {
	Number     int
	Title      string
	Subtitle   string
	Elements   []*Element
	Layout     LayoutKind
	Background string
	Notes      []string
	Meta       map[string]string
}

// NewFrame returns an empty frame with the given number.
func NewFrame(number int) *Frame {
	return &Frame{Number: number}
}

// AddElement appends an element to the frame, preserving insertion order.
// Nil elements are ignored.
func (f *Frame) AddElement(e *Element) {
	if e == nil {
		return
	}
	f.Elements = append(f.Elements, e)
}

// AddNote appends a speaker note to the frame. Empty notes are ignored.
func (f *Frame) AddNote(note string) {
	if note == "" {
		return
	}
	f.Notes = append(f.Notes, note)
}

// ElementsByType returns the frame's elements of type t, in order.
func (f *Frame) ElementsByType(t ElementType) []*Element {
	var out []*Element
	for _, e := range f.Elements {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// TextElements returns the frame's plain text elements, in order.
func (f *Frame) TextElements() []*Element {
	return f.ElementsByType(ElementText)
}

// Text returns the frame's visible text, one line per element, with the
// title first when present.
func (f *Frame) Text() string {
	var out string
	if f.Title != "" {
		out = f.Title
	}
	for _, e := range f.Elements {
		t := e.Text()
		if t == "" {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += t
	}
	return out
}

// Clone returns a deep copy of the frame and its elements.
func (f *Frame) Clone() *Frame {
	out := &Frame{
		Number:     f.Number,
		Title:      f.Title,
		Subtitle:   f.Subtitle,
		Layout:     f.Layout,
		Background: f.Background,
		Notes:      append([]string(nil), f.Notes...),
		Meta:       cloneMap(f.Meta),
	}
	for _, e := range f.Elements {
		out.Elements = append(out.Elements, e.Clone())
	}
	return out
}

// SetMeta records a key/value annotation on the frame, allocating the map
// on first use.
func (f *Frame) SetMeta(key, value string) {
	if f.Meta == nil {
		f.Meta = make(map[string]string)
	}
	f.Meta[key] = value
}
