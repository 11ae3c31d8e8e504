// Package odp provides ODP (OpenDocument Presentation) parsing.
package odp

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/presenta/model"
)

// Reader provides access to ODP presentation content.
type Reader struct {
	zipReader *zip.Reader
	closer    io.Closer
	content   *documentContentXML
	meta      *metaXML
}

// Open opens an ODP file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r, err := newReader(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	r.closer = zr
	return r, nil
}

// NewReader reads an ODP presentation from in-memory or streamed content.
func NewReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return newReader(zr)
}

func newReader(zr *zip.Reader) (*Reader, error) {
	r := &Reader{zipReader: zr}

	if err := r.validate(); err != nil {
		return nil, err
	}

	if err := r.parseContent(); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}

	// Parse metadata (optional)
	r.parseMetadata()

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// validate checks that required ODP files exist.
func (r *Reader) validate() error {
	for _, f := range r.zipReader.File {
		if f.Name == "content.xml" {
			return nil
		}
	}
	return fmt.Errorf("missing required file: content.xml")
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// parseContent parses the content.xml file.
func (r *Reader) parseContent() error {
	data, err := r.getFileContent("content.xml")
	if err != nil {
		return err
	}

	r.content = &documentContentXML{}
	if err := xml.Unmarshal(data, r.content); err != nil {
		return err
	}

	if len(r.content.Body.Presentation.Pages) == 0 {
		return fmt.Errorf("no slides found in presentation")
	}
	return nil
}

// parseMetadata parses the meta.xml file.
func (r *Reader) parseMetadata() {
	data, err := r.getFileContent("meta.xml")
	if err != nil {
		return
	}

	r.meta = &metaXML{}
	xml.Unmarshal(data, r.meta)
}

// SlideCount returns the number of slides.
func (r *Reader) SlideCount() int {
	return len(r.content.Body.Presentation.Pages)
}

// Metadata returns presentation metadata.
func (r *Reader) Metadata() model.Metadata {
	meta := model.Metadata{Custom: make(map[string]string)}
	if r.meta == nil || r.meta.Meta == nil {
		return meta
	}

	m := r.meta.Meta
	meta.Title = m.Title
	meta.Author = m.Creator
	meta.Subject = m.Subject
	meta.Date = m.Date
	meta.Keywords = m.Keywords
	if m.Generator != "" {
		meta.Custom["generator"] = m.Generator
	}
	return meta
}

// Document returns a model.Document representation of the presentation.
// Each draw:page becomes a frame; presentation:class typing drives the
// frame title and subtitle, text:list boxes become list elements, and
// draw:image frames become image elements referencing their archive path.
func (r *Reader) Document() (*model.Document, error) {
	doc := model.NewDocument()
	doc.SourceFormat = "odp"
	doc.Metadata = r.Metadata()

	for i, page := range r.content.Body.Presentation.Pages {
		frame := model.NewFrame(i + 1)
		if page.Name != "" {
			frame.SetMeta("page_name", page.Name)
		}

		hasSubtitleClass := false
		for _, df := range page.Frames {
			switch df.Class {
			case "title":
				if frame.Title == "" {
					frame.Title = frameText(&df)
					continue
				}
			case "subtitle":
				hasSubtitleClass = true
				if frame.Subtitle == "" {
					frame.Subtitle = frameText(&df)
					continue
				}
			case "notes":
				continue
			}
			appendFrameElements(frame, &df)
		}

		// A title page carries a subtitle placeholder instead of content.
		if i == 0 && hasSubtitleClass {
			frame.Layout = model.LayoutTitleSlide
		}

		if page.Notes != nil {
			for _, nf := range page.Notes.Frames {
				for _, line := range strings.Split(frameText(&nf), "\n") {
					frame.AddNote(strings.TrimSpace(line))
				}
			}
		}

		doc.AddFrame(frame)
	}

	return doc, nil
}

// appendFrameElements converts one draw:frame into model elements.
func appendFrameElements(frame *model.Frame, df *frameXML) {
	if df.Image != nil && df.Image.Href != "" {
		el := model.NewImageElement(df.Image.Href)
		if df.Name != "" {
			el.SetMeta("name", df.Name)
		}
		frame.AddElement(el)
		return
	}

	if df.Table != nil {
		frame.AddElement(tableElement(df.Table))
		return
	}

	if df.TextBox == nil {
		return
	}

	for _, p := range df.TextBox.P {
		text := paragraphText(p)
		if text == "" {
			continue
		}
		frame.AddElement(model.NewTextElement(text))
	}

	for _, list := range df.TextBox.Lists {
		items := collectListItems(list, 0)
		if len(items) > 0 {
			frame.AddElement(model.NewItemizeElement(items))
		}
	}
}

// collectListItems flattens a text:list, indenting nested levels.
func collectListItems(list textListXML, level int) []string {
	var items []string
	for _, item := range list.Items {
		for _, p := range item.P {
			text := paragraphText(p)
			if text == "" {
				continue
			}
			items = append(items, strings.Repeat("  ", level)+text)
		}
		for _, sub := range item.Lists {
			items = append(items, collectListItems(sub, level+1)...)
		}
	}
	return items
}

// frameText returns all paragraph text in a frame's text box, one line per
// paragraph.
func frameText(df *frameXML) string {
	if df.TextBox == nil {
		return ""
	}
	var lines []string
	for _, p := range df.TextBox.P {
		if text := paragraphText(p); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}

// paragraphText joins a paragraph's direct text with its span text.
func paragraphText(p textPXML) string {
	var parts []string
	if t := strings.TrimSpace(p.Text); t != "" {
		parts = append(parts, t)
	}
	for _, span := range p.Spans {
		if t := strings.TrimSpace(span.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// tableElement renders a table into a tab-separated table element.
func tableElement(tbl *tableXML) *model.Element {
	var sb strings.Builder
	for i, row := range tbl.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, cell := range row.Cells {
			if j > 0 {
				sb.WriteString("\t")
			}
			var cellParts []string
			for _, p := range cell.P {
				if text := paragraphText(p); text != "" {
					cellParts = append(cellParts, text)
				}
			}
			sb.WriteString(strings.Join(cellParts, " "))
		}
	}
	return &model.Element{
		Type:    model.ElementTable,
		Content: model.TextContent{Text: sb.String()},
	}
}
