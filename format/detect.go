// Package format provides input format detection for the presenta library.
package format

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported presentation format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// LaTeX indicates a LaTeX Beamer source file.
	LaTeX
	// PPTX indicates a Microsoft PowerPoint (.pptx) presentation.
	PPTX
	// ODP indicates an OpenDocument Presentation (.odp) file.
	ODP
	// HTML indicates an HTML slide deck.
	HTML
	// JSON indicates a document previously exported by this library.
	JSON
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case LaTeX:
		return "LaTeX"
	case PPTX:
		return "PPTX"
	case ODP:
		return "ODP"
	case HTML:
		return "HTML"
	case JSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case LaTeX:
		return ".tex"
	case PPTX:
		return ".pptx"
	case ODP:
		return ".odp"
	case HTML:
		return ".html"
	case JSON:
		return ".json"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".tex", ".latex":
		return LaTeX
	case ".pptx", ".ppt":
		return PPTX
	case ".odp":
		return ODP
	case ".html", ".htm":
		return HTML
	case ".json":
		return JSON
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format.
// This provides more reliable detection than extension-based detection.
// Returns Unknown if the format cannot be determined from the bytes alone.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// ZIP magic (PPTX and ODP are ZIP archives): PK\x03\x04
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		// Could be PPTX, ODP, or some other ZIP-based format.
		// Return Unknown here - caller should use DetectFromReader for ZIP files.
		return Unknown
	}

	if detectLaTeXMagic(data) {
		return LaTeX
	}

	// HTML detection: check for <!DOCTYPE or <html or <?xml
	if detectHTMLMagic(data) {
		return HTML
	}

	if detectJSONMagic(data) {
		return JSON
	}

	return Unknown
}

// detectLaTeXMagic checks if the data looks like LaTeX source.
func detectLaTeXMagic(data []byte) bool {
	text := string(trimLeadingSpace(data))
	for _, marker := range []string{
		`\documentclass`,
		`\begin{document}`,
		`\begin{frame}`,
		`\usepackage`,
	} {
		if strings.HasPrefix(text, marker) {
			return true
		}
	}
	// LaTeX comment lines may precede the preamble.
	if strings.HasPrefix(text, "%") && strings.Contains(text, `\documentclass`) {
		return true
	}
	return false
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	data = trimLeadingSpace(data)
	if len(data) == 0 {
		return false
	}

	// Check for common HTML signatures (case-insensitive for DOCTYPE)
	upper := strings.ToUpper(string(data))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper[:min(500, len(upper))], "<HTML") {
		return true
	}

	return false
}

// detectJSONMagic checks if the data starts like a JSON document.
func detectJSONMagic(data []byte) bool {
	data = trimLeadingSpace(data)
	return len(data) > 0 && (data[0] == '{' || data[0] == '[')
}

func trimLeadingSpace(data []byte) []byte {
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	return data[start:]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// DetectFromReader inspects the content to determine format.
// This is more reliable than extension-based detection and can
// distinguish between the ZIP-based formats (PPTX, ODP).
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	// Read the leading bytes first (need enough for text-based detection)
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	// Check for ZIP-based format
	if len(magic) >= 4 && magic[0] == 0x50 && magic[1] == 0x4B && magic[2] == 0x03 && magic[3] == 0x04 {
		// It's a ZIP archive - check contents to determine specific format
		return detectZIPFormat(r, size)
	}

	if detectLaTeXMagic(magic) {
		return LaTeX, nil
	}

	if detectHTMLMagic(magic) {
		return HTML, nil
	}

	if detectJSONMagic(magic) {
		return JSON, nil
	}

	return Unknown, nil
}

// detectZIPFormat inspects a ZIP archive to determine if it's PPTX or ODP.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	// Check for OpenDocument Format first (has mimetype file at the start)
	for _, f := range zr.File {
		if f.Name == "mimetype" {
			rc, err := f.Open()
			if err == nil {
				data := make([]byte, 256)
				n, _ := rc.Read(data)
				rc.Close()
				mimeType := string(data[:n])
				if strings.Contains(mimeType, "application/vnd.oasis.opendocument.presentation") {
					return ODP, nil
				}
			}
		}
	}

	// Check for Office Open XML markers
	for _, f := range zr.File {
		switch {
		case f.Name == "[Content_Types].xml":
			// This is an OOXML file - check for specific format markers
			continue
		case strings.HasPrefix(f.Name, "ppt/"):
			return PPTX, nil
		}
	}

	return Unknown, nil
}
