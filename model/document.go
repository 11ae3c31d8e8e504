package model

// Metadata is document-level information gathered from a presentation's
// preamble or file properties. Fields that the source doesn't provide are
// left empty. Custom carries source-specific values that have no field of
// their own, such as the original document class.
type Metadata struct {
	Title     string
	Author    string
	Date      string
	Institute string
	Subject   string
	Keywords  []string
	Custom    map[string]string
}

// Document is a presentation in source order: its metadata and its frames.
// It is the common ground between readers, which produce it, and the layout
// and export stages, which consume it. SourceFormat names the format the
// document was read from ("latex", "pptx", and so on); SourcePath is the
// file it came from, when there was one, and is used for diagnostics and
// relative asset resolution only.
type Document struct {
	Metadata     Metadata
	Frames       []*Frame
	SourceFormat string
	SourcePath   string
	Settings     map[string]string
}

// NewDocument returns an empty document with initialized Custom and
// Settings maps.
func NewDocument() *Document {
	return &Document{
		Metadata: Metadata{
			Custom: make(map[string]string),
		},
		Settings: make(map[string]string),
	}
}

// AddFrame appends a frame to the document and renumbers it so that frame
// numbers are always dense, starting at 1. Nil frames are ignored.
func (d *Document) AddFrame(f *Frame) {
	if f == nil {
		return
	}
	f.Number = len(d.Frames) + 1
	d.Frames = append(d.Frames, f)
}

// GetFrame returns the frame with the given 1-based number, or nil if the
// number is out of range.
func (d *Document) GetFrame(number int) *Frame {
	if number < 1 || number > len(d.Frames) {
		return nil
	}
	return d.Frames[number-1]
}

// TitleFrame returns the document's title slide, or nil when no frame
// carries the title slide layout.
func (d *Document) TitleFrame() *Frame {
	for _, f := range d.Frames {
		if f.Layout == LayoutTitleSlide {
			return f
		}
	}
	return nil
}

// FrameCount returns the number of frames in the document.
func (d *Document) FrameCount() int {
	return len(d.Frames)
}

// Text returns all visible document text, frames in order, one blank line
// between frames.
func (d *Document) Text() string {
	var out string
	for _, f := range d.Frames {
		t := f.Text()
		if t == "" {
			continue
		}
		if out != "" {
			out += "\n\n"
		}
		out += t
	}
	return out
}

// Merge appends copies of the frames of others onto d in argument order,
// renumbering so the combined document stays dense. The merged-in documents
// are not modified and share nothing with d afterwards. Metadata of the
// merged-in documents is discarded; d keeps its own.
func (d *Document) Merge(others ...*Document) {
	for _, o := range others {
		if o == nil {
			continue
		}
		for _, f := range o.Frames {
			d.AddFrame(f.Clone())
		}
	}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{
		Metadata:     d.Metadata.clone(),
		SourceFormat: d.SourceFormat,
		SourcePath:   d.SourcePath,
		Settings:     cloneMap(d.Settings),
	}
	for _, f := range d.Frames {
		out.Frames = append(out.Frames, f.Clone())
	}
	return out
}

func (m Metadata) clone() Metadata {
	out := m
	out.Keywords = append([]string(nil), m.Keywords...)
	out.Custom = cloneMap(m.Custom)
	return out
}
