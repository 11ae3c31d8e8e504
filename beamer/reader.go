package beamer

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tsawler/presenta/model"
)

var (
	frameOpenRe     = regexp.MustCompile(`(?i)\\begin\{frame\}`)
	frameCloseRe    = regexp.MustCompile(`(?i)\\end\{frame\}`)
	titleMetaRe     = regexp.MustCompile(`\\title(?:\[[^\]]*\])?\{([^}]*)\}`)
	subtitleMetaRe  = regexp.MustCompile(`\\subtitle(?:\[[^\]]*\])?\{([^}]*)\}`)
	authorMetaRe    = regexp.MustCompile(`\\author(?:\[[^\]]*\])?\{([^}]*)\}`)
	dateMetaRe      = regexp.MustCompile(`\\date\{([^}]*)\}`)
	instituteMetaRe = regexp.MustCompile(`\\institute(?:\[[^\]]*\])?\{([^}]*)\}`)
	subjectMetaRe   = regexp.MustCompile(`\\subject\{([^}]*)\}`)
	keywordsMetaRe  = regexp.MustCompile(`\\keywords\{([^}]*)\}`)
	docclassRe      = regexp.MustCompile(`\\documentclass(?:\[[^\]]*\])?\{([^}]*)\}`)
	sectionRe       = regexp.MustCompile(`\\section\*?(?:\[[^\]]*\])?\{([^}]*)\}`)
)

// Reader provides access to the content of a LaTeX Beamer presentation.
// Parsing happens once, when the Reader is created; the accessor methods
// only report what was found.
type Reader struct {
	source   string
	path     string
	doc      *model.Document
	sections []string
}

// Open opens a Beamer .tex file for reading.
func Open(filename string) (*Reader, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, &ParseError{
			Message: fmt.Sprintf("reading file: %v", err),
			Path:    filename,
			Err:     err,
		}
	}
	return newReader(b, filename)
}

// OpenReader parses Beamer source from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{
			Message: fmt.Sprintf("reading source: %v", err),
			Err:     err,
		}
	}
	return newReader(b, "")
}

// Parse parses Beamer source held in a string.
func Parse(source string) (*Reader, error) {
	return newReader([]byte(source), "")
}

func newReader(raw []byte, path string) (*Reader, error) {
	source, err := decodeSource(raw, path)
	if err != nil {
		return nil, err
	}

	r := &Reader{
		source: stripComments(source),
		path:   path,
		doc:    model.NewDocument(),
	}
	r.doc.SourceFormat = "latex"
	r.doc.SourcePath = path

	r.extractMetadata()
	r.collectSections()
	r.extractFrames()

	if r.doc.FrameCount() == 0 {
		return nil, &ParseError{
			Message: "no frames found in source",
			Path:    path,
			Snippet: snippet(r.source),
		}
	}

	return r, nil
}

// decodeSource turns raw bytes into text, honoring a UTF-8 or UTF-16 byte
// order mark when present. Bytes that are neither are rejected rather than
// silently replaced.
func decodeSource(raw []byte, path string) (string, error) {
	if !hasBOM(raw) && !utf8.Valid(raw) {
		return "", &ParseError{
			Message: "source text is not valid UTF-8",
			Path:    path,
		}
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", &ParseError{
			Message: fmt.Sprintf("decoding source: %v", err),
			Path:    path,
			Err:     err,
		}
	}
	return string(decoded), nil
}

func hasBOM(b []byte) bool {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return true
	}
	if len(b) >= 2 && ((b[0] == 0xFE && b[1] == 0xFF) || (b[0] == 0xFF && b[1] == 0xFE)) {
		return true
	}
	return false
}

// snippet returns the first non-blank line of src, shortened for error
// messages.
func snippet(src string) string {
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > 60 {
			line = line[:60] + "..."
		}
		return line
	}
	return ""
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close (no file handles kept)
	return nil
}

// Document returns the parsed presentation.
func (r *Reader) Document() (*model.Document, error) {
	return r.doc, nil
}

// Metadata returns the document metadata gathered from the preamble.
func (r *Reader) Metadata() model.Metadata {
	return r.doc.Metadata
}

// FrameCount returns the number of frames in the presentation.
func (r *Reader) FrameCount() (int, error) {
	return r.doc.FrameCount(), nil
}

// Sections returns the section titles in declaration order.
func (r *Reader) Sections() []string {
	out := make([]string, len(r.sections))
	copy(out, r.sections)
	return out
}

// Text extracts and returns all visible text from the presentation.
func (r *Reader) Text() (string, error) {
	return r.doc.Text(), nil
}

// extractMetadata scans the whole source for preamble declarations. The
// first match of each command wins; a missing command leaves its field
// empty.
func (r *Reader) extractMetadata() {
	meta := &r.doc.Metadata

	meta.Title = metaValue(titleMetaRe, r.source)
	meta.Author = metaValue(authorMetaRe, r.source)
	meta.Date = metaValue(dateMetaRe, r.source)
	meta.Institute = metaValue(instituteMetaRe, r.source)
	meta.Subject = metaValue(subjectMetaRe, r.source)

	if m := subtitleMetaRe.FindStringSubmatch(r.source); m != nil {
		if v := cleanMetaValue(m[1]); v != "" {
			meta.Custom["subtitle"] = v
		}
	}
	if m := docclassRe.FindStringSubmatch(r.source); m != nil {
		meta.Custom["documentclass"] = strings.TrimSpace(m[1])
	}
	if m := keywordsMetaRe.FindStringSubmatch(r.source); m != nil {
		for _, kw := range strings.Split(m[1], ",") {
			if kw = cleanMetaValue(kw); kw != "" {
				meta.Keywords = append(meta.Keywords, kw)
			}
		}
	}
}

func metaValue(re *regexp.Regexp, source string) string {
	m := re.FindStringSubmatch(source)
	if m == nil {
		return ""
	}
	return cleanMetaValue(m[1])
}

// cleanMetaValue cleans a preamble value the same way body text is cleaned.
// Values that are nothing but markup (such as \today) are kept raw so the
// information isn't lost.
func cleanMetaValue(raw string) string {
	if v := cleanText(raw); v != "" {
		return v
	}
	return strings.TrimSpace(raw)
}

// collectSections gathers every section title in document order. The list
// is per-Reader state; each table of contents placeholder materializes the
// full final list.
func (r *Reader) collectSections() {
	for _, m := range sectionRe.FindAllStringSubmatch(r.source, -1) {
		if title := cleanText(m[1]); title != "" {
			r.sections = append(r.sections, title)
		}
	}
}

// extractFrames segments the source into frames and parses each one. A
// frame runs from its open marker to the nearest close marker, or to the
// next open marker (or end of input) when the close is missing.
func (r *Reader) extractFrames() {
	opens := frameOpenRe.FindAllStringIndex(r.source, -1)

	for i, open := range opens {
		limit := len(r.source)
		if i+1 < len(opens) {
			limit = opens[i+1][0]
		}
		segment := r.source[open[1]:limit]
		if m := frameCloseRe.FindStringIndex(segment); m != nil {
			segment = segment[:m[0]]
		}

		title, bodyStart := parseFrameStart(segment)
		r.addFrame(title, segment[bodyStart:])
	}
}

// parseFrameStart consumes the optional option group and inline title
// argument after a frame-open marker. The title must begin on the marker's
// own line; a braced group on a later line is body content.
func parseFrameStart(segment string) (title string, bodyStart int) {
	i := skipSpaces(segment, 0)
	if i < len(segment) && segment[i] == '[' {
		end := strings.IndexByte(segment[i:], ']')
		if end < 0 {
			return "", i
		}
		i = skipSpaces(segment, i+end+1)
	}
	if i < len(segment) && segment[i] == '{' {
		inner, next := bracedGroup(segment, i)
		return cleanText(inner), next
	}
	return "", i
}

// addFrame builds one frame from its body and appends it to the document.
// Title resolution: an inline title wins, then an explicit frame title
// command, then none; an untitled first frame holding a title page
// placeholder becomes the title slide and inherits the document title.
func (r *Reader) addFrame(inlineTitle, body string) {
	frame := model.NewFrame(0)
	frame.Title = inlineTitle

	if frame.Title == "" {
		if m := frametitleRe.FindStringSubmatch(body); m != nil {
			frame.Title = cleanText(m[1])
		}
	}
	if m := framesubtitleRe.FindStringSubmatch(body); m != nil {
		frame.Subtitle = cleanText(m[1])
	}

	if frame.Title == "" && r.doc.FrameCount() == 0 && strings.Contains(body, `\titlepage`) {
		frame.Layout = model.LayoutTitleSlide
		frame.Title = r.doc.Metadata.Title
	}

	p := &bodyParser{
		frame:    frame,
		sections: r.sections,
	}
	p.run(body)

	r.doc.AddFrame(frame)
}
