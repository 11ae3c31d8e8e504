package presenta

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/presenta/beamer"
	"github.com/tsawler/presenta/export"
	"github.com/tsawler/presenta/format"
	"github.com/tsawler/presenta/htmldeck"
	"github.com/tsawler/presenta/layout"
	"github.com/tsawler/presenta/model"
	"github.com/tsawler/presenta/ocr"
	"github.com/tsawler/presenta/odp"
	"github.com/tsawler/presenta/pptx"
	"github.com/tsawler/presenta/render"
)

// Converter provides a fluent API for converting presentations. Chainable
// methods return a new Converter, so configured converters can be reused
// and shared:
//
//	base := presenta.Open("talk.tex").Theme("academic")
//	doc, warnings, err := base.IncludeNotes(false).Document()
//
// Errors from chainable methods are deferred: the first error is recorded
// and returned by whichever terminal operation runs.
type Converter struct {
	filename string
	data     []byte
	format   format.Format
	options  convertOptions
	err      error
}

// clone creates a copy of the converter so chained methods never mutate
// the converter they were called on. The buffered source data is shared;
// it is never written after construction.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename: c.filename,
		data:     c.data,
		format:   c.format,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// Theme selects the theme recorded on the converted document. Unknown
// theme names are reported by the terminal operation.
func (c *Converter) Theme(name string) *Converter {
	nc := c.clone()
	if _, ok := render.ThemeByName(name); !ok {
		nc.err = fmt.Errorf("unknown theme %q (have %s)", name, strings.Join(render.ThemeNames(), ", "))
		return nc
	}
	nc.options.theme = name
	return nc
}

// BaseDir sets the directory against which relative image paths are
// resolved. It defaults to the directory of the source file.
func (c *Converter) BaseDir(dir string) *Converter {
	nc := c.clone()
	nc.options.baseDir = dir
	return nc
}

// IncludeImages controls whether image elements are kept in the converted
// document. Defaults to true.
func (c *Converter) IncludeImages(include bool) *Converter {
	nc := c.clone()
	nc.options.includeImages = include
	return nc
}

// IncludeNotes controls whether speaker notes are kept in the converted
// document. Defaults to true.
func (c *Converter) IncludeNotes(include bool) *Converter {
	nc := c.clone()
	nc.options.includeNotes = include
	return nc
}

// PreserveColors controls whether color styling from the source survives
// conversion. When false, color style properties are stripped and only
// structure remains. Defaults to true.
func (c *Converter) PreserveColors(preserve bool) *Converter {
	nc := c.clone()
	nc.options.preserveColors = preserve
	return nc
}

// RecoverImageText runs OCR over resolved image assets and records the
// recognized text on each image element under the "recovered_text" meta
// key. Requires a binary built with the ocr tag; without it the option
// degrades to a warning. Defaults to false.
func (c *Converter) RecoverImageText(enable bool) *Converter {
	nc := c.clone()
	nc.options.recoverImageText = enable
	return nc
}

// Document parses the source and returns the format-neutral document,
// without layout positions. Non-fatal issues (missing image files, OCR
// unavailable) come back as warnings alongside the result.
func (c *Converter) Document() (*model.Document, []Warning, error) {
	return c.convert()
}

// Positioned parses the source and runs the layout engine, returning a
// document whose elements all carry positions and sizes.
func (c *Converter) Positioned() (*model.Document, []Warning, error) {
	doc, warnings, err := c.convert()
	if err != nil {
		return nil, warnings, err
	}
	positioned, err := layout.Arrange(doc)
	if err != nil {
		return nil, warnings, err
	}
	return positioned, warnings, nil
}

// Frames returns the converted document's frames in order.
func (c *Converter) Frames() ([]*model.Frame, []Warning, error) {
	doc, warnings, err := c.convert()
	if err != nil {
		return nil, warnings, err
	}
	return doc.Frames, warnings, nil
}

// FrameCount returns the number of frames in the presentation.
func (c *Converter) FrameCount() (int, []Warning, error) {
	doc, warnings, err := c.convert()
	if err != nil {
		return 0, warnings, err
	}
	return doc.FrameCount(), warnings, nil
}

// Metadata returns the presentation metadata (title, author, date, ...).
func (c *Converter) Metadata() (model.Metadata, []Warning, error) {
	doc, warnings, err := c.convert()
	if err != nil {
		return model.Metadata{}, warnings, err
	}
	return doc.Metadata, warnings, nil
}

// Text returns the presentation as plain text, one frame after another.
func (c *Converter) Text() (string, []Warning, error) {
	doc, warnings, err := c.convert()
	if err != nil {
		return "", warnings, err
	}
	return export.Text(doc), warnings, nil
}

// Markdown returns the presentation as a markdown outline, one heading
// per frame.
func (c *Converter) Markdown() (string, []Warning, error) {
	doc, warnings, err := c.convert()
	if err != nil {
		return "", warnings, err
	}
	return export.Markdown(doc), warnings, nil
}

// JSON returns the presentation in the document JSON schema. The output
// round-trips through FromReader with format.JSON.
func (c *Converter) JSON() (string, []Warning, error) {
	doc, warnings, err := c.convert()
	if err != nil {
		return "", warnings, err
	}
	cfg := export.DefaultConfig()
	cfg.IncludeNotes = c.options.includeNotes
	out, err := export.NewExporterWithConfig(cfg).ExportToString(doc)
	if err != nil {
		return "", warnings, err
	}
	return out, warnings, nil
}

// convert runs the full pipeline: detect the format, parse the source
// into a document, and apply the configured options.
func (c *Converter) convert() (*model.Document, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	doc, err := c.buildDocument()
	if err != nil {
		return nil, nil, err
	}
	if c.filename != "" {
		doc.SourcePath = c.filename
	}
	if doc.Settings == nil {
		doc.Settings = make(map[string]string)
	}
	doc.Settings["theme"] = c.options.theme

	var warnings []Warning
	if !c.options.includeNotes {
		for _, frame := range doc.Frames {
			frame.Notes = nil
		}
	}
	if !c.options.preserveColors {
		stripColors(doc)
	}
	if c.options.includeImages {
		warnings = c.resolveImages(doc, warnings)
	} else {
		dropImages(doc)
	}

	return doc, warnings, nil
}

// buildDocument loads the source bytes, detects the format and parses.
func (c *Converter) buildDocument() (*model.Document, error) {
	data, err := c.sourceBytes()
	if err != nil {
		return nil, err
	}

	f := c.format
	if f == format.Unknown && c.filename != "" {
		f = format.Detect(c.filename)
	}
	if f == format.Unknown {
		f = format.DetectFromMagic(data)
	}
	if f == format.Unknown && len(data) >= 4 && bytes.HasPrefix(data, []byte("PK\x03\x04")) {
		f, err = format.DetectFromReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
	}

	switch f {
	case format.LaTeX:
		r, err := beamer.Parse(string(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return r.Document()
	case format.PPTX:
		r, err := pptx.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return r.Document()
	case format.ODP:
		r, err := odp.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return r.Document()
	case format.HTML:
		r, err := htmldeck.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return r.Document()
	case format.JSON:
		return export.Import(bytes.NewReader(data))
	default:
		if c.filename != "" {
			return nil, fmt.Errorf("cannot determine presentation format of %s", c.filename)
		}
		return nil, fmt.Errorf("cannot determine presentation format of input")
	}
}

// sourceBytes returns the raw source, reading the file on first use.
func (c *Converter) sourceBytes() ([]byte, error) {
	if c.data != nil {
		return c.data, nil
	}
	if c.filename == "" {
		return nil, fmt.Errorf("no input source configured")
	}
	data, err := os.ReadFile(c.filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", c.filename, err)
	}
	return data, nil
}

// resolveImages locates each image asset, records its fitted size, and
// optionally runs OCR. Problems with individual assets become warnings,
// never errors.
func (c *Converter) resolveImages(doc *model.Document, warnings []Warning) []Warning {
	dir := c.options.baseDir
	if dir == "" && c.filename != "" {
		dir = filepath.Dir(c.filename)
	}
	resolver := render.NewAssetResolver(dir)

	var ocrClient *ocr.Client
	if c.options.recoverImageText {
		client, err := ocr.New()
		switch {
		case errors.Is(err, ocr.ErrOCRNotEnabled):
			warnings = append(warnings, Warning{
				Code:    WarnOCRUnavailable,
				Message: "image text recovery requested but this binary was built without the ocr tag",
			})
		case err != nil:
			warnings = append(warnings, Warning{
				Code:    WarnOCRFailed,
				Message: "could not start OCR engine",
				Detail:  err.Error(),
			})
		default:
			ocrClient = client
			defer ocrClient.Close()
		}
	}

	box := model.Position{Width: layout.ContentWidth, Height: layout.ImageHeight}
	for _, frame := range doc.Frames {
		for _, elem := range frame.Elements {
			img, ok := elem.Content.(model.ImageContent)
			if !ok {
				continue
			}

			path, err := resolver.Resolve(img.Path)
			if err != nil {
				warnings = append(warnings, Warning{
					Code:    WarnMissingImage,
					Message: fmt.Sprintf("frame %d references a missing image", frame.Number),
					Detail:  img.Path,
				})
				continue
			}

			if w, h, err := resolver.ProbeSize(path); err != nil {
				warnings = append(warnings, Warning{
					Code:    WarnUnreadableImage,
					Message: fmt.Sprintf("frame %d image could not be decoded", frame.Number),
					Detail:  path,
				})
			} else {
				size := render.FitSize(w, h, box)
				elem.Size = &size
			}

			if ocrClient != nil {
				text, err := ocrClient.RecognizeFile(path)
				if err != nil {
					warnings = append(warnings, Warning{
						Code:    WarnOCRFailed,
						Message: fmt.Sprintf("OCR failed on frame %d image", frame.Number),
						Detail:  err.Error(),
					})
					continue
				}
				if text != "" {
					elem.SetMeta("recovered_text", text)
				}
			}
		}
	}
	return warnings
}

// stripColors removes color styling so only document structure remains.
func stripColors(doc *model.Document) {
	for _, frame := range doc.Frames {
		frame.Background = ""
		for _, elem := range frame.Elements {
			delete(elem.Style, "color")
			delete(elem.Style, "background")
			if tc, ok := elem.Content.(model.TextContent); ok && tc.FontColor != "" {
				tc.FontColor = ""
				elem.Content = tc
			}
		}
	}
}

// dropImages removes image elements from every frame.
func dropImages(doc *model.Document) {
	for _, frame := range doc.Frames {
		kept := frame.Elements[:0]
		for _, elem := range frame.Elements {
			if elem.Type != model.ElementImage {
				kept = append(kept, elem)
			}
		}
		frame.Elements = kept
	}
}
