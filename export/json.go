package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/presenta/model"
)

// ErrContentMismatch reports imported data whose content payload shape does
// not match its element type tag. Such data is rejected, never coerced.
var ErrContentMismatch = errors.New("element content does not match its type tag")

// Format defines the available JSON export layouts.
type Format int

const (
	// FormatJSON exports the whole document as one JSON object.
	FormatJSON Format = iota
	// FormatJSONL exports one JSON object per frame, one per line.
	FormatJSONL
)

// String returns "json" or "jsonl".
func (f Format) String() string {
	if f == FormatJSONL {
		return "jsonl"
	}
	return "json"
}

// Config holds export configuration.
type Config struct {
	// Format selects the output layout.
	Format Format

	// PrettyPrint indents JSON output.
	PrettyPrint bool

	// IncludeNotes carries speaker notes into the output.
	IncludeNotes bool

	// IncludeMetadata carries document metadata into the output.
	IncludeMetadata bool
}

// DefaultConfig returns the configuration most callers want: a single
// pretty-printed JSON document with metadata and notes included.
func DefaultConfig() Config {
	return Config{
		Format:          FormatJSON,
		PrettyPrint:     true,
		IncludeNotes:    true,
		IncludeMetadata: true,
	}
}

// Exporter writes documents in the configured format.
type Exporter struct {
	config Config
}

// NewExporter creates an exporter with default configuration.
func NewExporter() *Exporter {
	return &Exporter{config: DefaultConfig()}
}

// NewExporterWithConfig creates an exporter with custom configuration.
func NewExporterWithConfig(config Config) *Exporter {
	return &Exporter{config: config}
}

// Wire schema. Field names are stable; renderers and tests depend on them.

type documentJSON struct {
	Metadata     *metadataJSON     `json:"metadata,omitempty"`
	Frames       []frameJSON       `json:"frames"`
	SourceFormat string            `json:"source_format,omitempty"`
	SourcePath   string            `json:"source_path,omitempty"`
	Settings     map[string]string `json:"settings,omitempty"`
}

type metadataJSON struct {
	Title     string            `json:"title,omitempty"`
	Author    string            `json:"author,omitempty"`
	Date      string            `json:"date,omitempty"`
	Institute string            `json:"institute,omitempty"`
	Subject   string            `json:"subject,omitempty"`
	Keywords  []string          `json:"keywords,omitempty"`
	Custom    map[string]string `json:"custom,omitempty"`
}

type frameJSON struct {
	Number     int               `json:"number"`
	Title      string            `json:"title,omitempty"`
	Subtitle   string            `json:"subtitle,omitempty"`
	Layout     string            `json:"layout"`
	Background string            `json:"background,omitempty"`
	Notes      []string          `json:"notes,omitempty"`
	Meta       map[string]string `json:"meta,omitempty"`
	Elements   []elementJSON     `json:"elements"`
}

type elementJSON struct {
	Type     string            `json:"type"`
	Content  contentJSON       `json:"content"`
	Level    int               `json:"level,omitempty"`
	Position *positionJSON     `json:"position,omitempty"`
	Size     *sizeJSON         `json:"size,omitempty"`
	Style    map[string]string `json:"style,omitempty"`
	Meta     map[string]string `json:"meta,omitempty"`
}

// contentJSON is the union payload with a "type" discriminator. Only the
// fields for the discriminated shape are populated.
type contentJSON struct {
	Type string `json:"type"`

	// text
	Text       string   `json:"text,omitempty"`
	Formatting []string `json:"formatting,omitempty"`
	FontSize   string   `json:"font_size,omitempty"`
	FontColor  string   `json:"font_color,omitempty"`
	FontFamily string   `json:"font_family,omitempty"`

	// list
	Items   []string `json:"items,omitempty"`
	Ordered bool     `json:"ordered,omitempty"`

	// block
	Kind  string `json:"kind,omitempty"`
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`

	// image
	Path    string `json:"path,omitempty"`
	Caption string `json:"caption,omitempty"`

	// equation
	Source       string `json:"source,omitempty"`
	EquationKind string `json:"equation_kind,omitempty"`
}

type positionJSON struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type sizeJSON struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Scale  float64 `json:"scale,omitempty"`
}

// Export writes doc to w in the configured format.
func (e *Exporter) Export(doc *model.Document, w io.Writer) error {
	if doc == nil {
		return fmt.Errorf("no document to export")
	}

	switch e.config.Format {
	case FormatJSONL:
		return e.exportJSONL(doc, w)
	default:
		return e.exportJSON(doc, w)
	}
}

// ExportToString exports doc and returns the result as a string.
func (e *Exporter) ExportToString(doc *model.Document) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(doc, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportToFile exports doc to a file.
func (e *Exporter) ExportToFile(doc *model.Document, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()
	return e.Export(doc, f)
}

func (e *Exporter) exportJSON(doc *model.Document, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if e.config.PrettyPrint {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(e.documentToJSON(doc))
}

func (e *Exporter) exportJSONL(doc *model.Document, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for i, f := range doc.Frames {
		if err := encoder.Encode(e.frameToJSON(f)); err != nil {
			return fmt.Errorf("encoding frame %d: %w", i+1, err)
		}
	}
	return nil
}

func (e *Exporter) documentToJSON(doc *model.Document) documentJSON {
	out := documentJSON{
		SourceFormat: doc.SourceFormat,
		SourcePath:   doc.SourcePath,
		Settings:     doc.Settings,
		Frames:       make([]frameJSON, 0, len(doc.Frames)),
	}
	if e.config.IncludeMetadata {
		out.Metadata = &metadataJSON{
			Title:     doc.Metadata.Title,
			Author:    doc.Metadata.Author,
			Date:      doc.Metadata.Date,
			Institute: doc.Metadata.Institute,
			Subject:   doc.Metadata.Subject,
			Keywords:  doc.Metadata.Keywords,
			Custom:    doc.Metadata.Custom,
		}
	}
	for _, f := range doc.Frames {
		out.Frames = append(out.Frames, e.frameToJSON(f))
	}
	return out
}

func (e *Exporter) frameToJSON(f *model.Frame) frameJSON {
	out := frameJSON{
		Number:     f.Number,
		Title:      f.Title,
		Subtitle:   f.Subtitle,
		Layout:     f.Layout.String(),
		Background: f.Background,
		Meta:       f.Meta,
		Elements:   make([]elementJSON, 0, len(f.Elements)),
	}
	if e.config.IncludeNotes {
		out.Notes = f.Notes
	}
	for _, el := range f.Elements {
		out.Elements = append(out.Elements, elementToJSON(el))
	}
	return out
}

func elementToJSON(el *model.Element) elementJSON {
	out := elementJSON{
		Type:    el.Type.String(),
		Content: contentToJSON(el.Content),
		Level:   el.Level,
		Style:   el.Style,
		Meta:    el.Meta,
	}
	if el.Position != nil {
		out.Position = &positionJSON{
			X: el.Position.X, Y: el.Position.Y,
			Width: el.Position.Width, Height: el.Position.Height,
		}
	}
	if el.Size != nil {
		out.Size = &sizeJSON{
			Width: el.Size.Width, Height: el.Size.Height, Scale: el.Size.Scale,
		}
	}
	return out
}

func contentToJSON(c model.Content) contentJSON {
	switch v := c.(type) {
	case model.TextContent:
		out := contentJSON{
			Type:       "text",
			Text:       v.Text,
			FontSize:   v.FontSize,
			FontColor:  v.FontColor,
			FontFamily: v.FontFamily,
		}
		for _, f := range v.Formatting {
			out.Formatting = append(out.Formatting, f.String())
		}
		return out
	case model.ListContent:
		return contentJSON{Type: "list", Items: v.Items, Ordered: v.Ordered}
	case model.BlockContent:
		return contentJSON{Type: "block", Kind: v.Kind.String(), Title: v.Title, Body: v.Body}
	case model.ImageContent:
		return contentJSON{Type: "image", Path: v.Path, Caption: v.Caption}
	case model.EquationContent:
		return contentJSON{Type: "equation", Source: v.Source, EquationKind: v.Kind.String()}
	default:
		return contentJSON{Type: "text"}
	}
}

// Import reads a JSON document previously produced by Export and rebuilds
// the model values. Elements whose content shape disagrees with their type
// tag are rejected with an error wrapping ErrContentMismatch.
func Import(r io.Reader) (*model.Document, error) {
	var raw documentJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return documentFromJSON(raw)
}

// ImportFile reads a JSON document from a file.
func ImportFile(filename string) (*model.Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	doc, err := Import(f)
	if err != nil {
		return nil, err
	}
	doc.SourcePath = filename
	return doc, nil
}

func documentFromJSON(raw documentJSON) (*model.Document, error) {
	doc := model.NewDocument()
	doc.SourceFormat = raw.SourceFormat
	doc.SourcePath = raw.SourcePath
	if raw.Settings != nil {
		doc.Settings = raw.Settings
	}
	if raw.Metadata != nil {
		doc.Metadata.Title = raw.Metadata.Title
		doc.Metadata.Author = raw.Metadata.Author
		doc.Metadata.Date = raw.Metadata.Date
		doc.Metadata.Institute = raw.Metadata.Institute
		doc.Metadata.Subject = raw.Metadata.Subject
		doc.Metadata.Keywords = raw.Metadata.Keywords
		if raw.Metadata.Custom != nil {
			doc.Metadata.Custom = raw.Metadata.Custom
		}
	}

	for i, rf := range raw.Frames {
		frame, err := frameFromJSON(rf)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i+1, err)
		}
		doc.AddFrame(frame)
	}
	return doc, nil
}

func frameFromJSON(raw frameJSON) (*model.Frame, error) {
	frame := model.NewFrame(raw.Number)
	frame.Title = raw.Title
	frame.Subtitle = raw.Subtitle
	frame.Background = raw.Background
	frame.Notes = raw.Notes
	frame.Meta = raw.Meta
	if kind, ok := model.ParseLayoutKind(raw.Layout); ok {
		frame.Layout = kind
	}

	for i, re := range raw.Elements {
		el, err := elementFromJSON(re)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i+1, err)
		}
		frame.AddElement(el)
	}
	return frame, nil
}

func elementFromJSON(raw elementJSON) (*model.Element, error) {
	typ, ok := model.ParseElementType(raw.Type)
	if !ok {
		return nil, fmt.Errorf("unknown element type %q", raw.Type)
	}

	content, err := contentFromJSON(typ, raw.Content)
	if err != nil {
		return nil, err
	}

	el := &model.Element{
		Type:    typ,
		Content: content,
		Level:   raw.Level,
		Style:   raw.Style,
		Meta:    raw.Meta,
	}
	if raw.Position != nil {
		el.Position = &model.Position{
			X: raw.Position.X, Y: raw.Position.Y,
			Width: raw.Position.Width, Height: raw.Position.Height,
		}
	}
	if raw.Size != nil {
		el.Size = &model.Size{
			Width: raw.Size.Width, Height: raw.Size.Height, Scale: raw.Size.Scale,
		}
	}
	return el, nil
}

// contentFromJSON decodes the union payload, enforcing that its
// discriminator agrees with the element's type tag.
func contentFromJSON(typ model.ElementType, raw contentJSON) (model.Content, error) {
	want := expectedContentType(typ)
	if raw.Type != want {
		return nil, fmt.Errorf("%w: element %q carries %q content, want %q",
			ErrContentMismatch, typ, raw.Type, want)
	}

	switch raw.Type {
	case "list":
		return model.ListContent{Items: raw.Items, Ordered: raw.Ordered}, nil
	case "block":
		kind, ok := model.ParseBlockKind(raw.Kind)
		if !ok {
			return nil, fmt.Errorf("%w: unknown block kind %q", ErrContentMismatch, raw.Kind)
		}
		return model.BlockContent{Kind: kind, Title: raw.Title, Body: raw.Body}, nil
	case "image":
		return model.ImageContent{Path: raw.Path, Caption: raw.Caption}, nil
	case "equation":
		kind, ok := model.ParseEquationKind(raw.EquationKind)
		if !ok {
			return nil, fmt.Errorf("%w: unknown equation kind %q", ErrContentMismatch, raw.EquationKind)
		}
		return model.EquationContent{Source: raw.Source, Kind: kind}, nil
	default:
		c := model.TextContent{
			Text:       raw.Text,
			FontSize:   raw.FontSize,
			FontColor:  raw.FontColor,
			FontFamily: raw.FontFamily,
		}
		for _, name := range raw.Formatting {
			c.Formatting = append(c.Formatting, parseFormatting(name))
		}
		return c, nil
	}
}

// expectedContentType maps an element type tag to its payload discriminator.
func expectedContentType(typ model.ElementType) string {
	switch typ {
	case model.ElementItemize, model.ElementEnumerate:
		return "list"
	case model.ElementBlock:
		return "block"
	case model.ElementImage:
		return "image"
	case model.ElementEquation:
		return "equation"
	default:
		return "text"
	}
}

func parseFormatting(name string) model.Formatting {
	for f := model.FormatNormal; f <= model.FormatMonospace; f++ {
		if f.String() == name {
			return f
		}
	}
	return model.FormatNormal
}
