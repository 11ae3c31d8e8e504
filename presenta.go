// Package presenta converts presentation files (LaTeX Beamer, PPTX, ODP,
// reveal.js-style HTML, and its own JSON schema) into a format-neutral
// document model, with optional deterministic layout.
//
// The fluent API starts from Open, FromReader or FromString, chains
// configuration, and ends in a terminal operation:
//
//	doc, warnings, err := presenta.Open("talk.tex").Document()
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, w := range warnings {
//		log.Println(w)
//	}
//	fmt.Println(doc.Metadata.Title)
//
// Chainable methods never mutate their receiver, so converters can be
// built up and reused:
//
//	base := presenta.Open("deck.pptx").Theme("professional")
//	md, _, err := base.Markdown()
//	positioned, _, err := base.IncludeNotes(false).Positioned()
//
// Terminal operations return the result, a slice of warnings for
// non-fatal issues (missing image files, OCR unavailable), and an error.
// The Must and MustResult helpers panic on error for scripts and tests:
//
//	text := presenta.MustResult(presenta.Open("talk.tex").Text())
package presenta

import (
	"io"

	"github.com/tsawler/presenta/format"
	"github.com/tsawler/presenta/model"
)

// Open creates a Converter for the named presentation file. The format is
// detected from the extension, falling back to content sniffing. The file
// is not read until a terminal operation runs, so Open never fails; a
// missing file is reported by the terminal operation.
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates a Converter that reads the presentation from r in
// the given format. Pass format.Unknown to sniff the format from the
// content. The reader is consumed immediately.
func FromReader(r io.Reader, f format.Format) *Converter {
	data, err := io.ReadAll(r)
	return &Converter{
		data:    data,
		format:  f,
		options: defaultOptions(),
		err:     err,
	}
}

// FromString creates a Converter for LaTeX Beamer source held in a
// string.
func FromString(source string) *Converter {
	return &Converter{
		data:    []byte(source),
		format:  format.LaTeX,
		options: defaultOptions(),
	}
}

// Merge combines documents into a new document: the first document's
// metadata and settings, copies of everyone's frames in order, renumbered
// to keep the combined document dense. The inputs are not modified.
func Merge(docs ...*model.Document) *model.Document {
	merged := model.NewDocument()
	if len(docs) == 0 {
		return merged
	}
	merged.Metadata = docs[0].Metadata
	merged.SourceFormat = docs[0].SourceFormat
	for k, v := range docs[0].Settings {
		merged.Settings[k] = v
	}
	merged.Merge(docs...)
	return merged
}

// Must panics if err is non-nil, otherwise returns val. Use it for
// two-value calls where an error is a programming bug:
//
//	theme := presenta.Must(render.LoadThemeFile("corporate.yaml"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult panics if err is non-nil, otherwise returns val, discarding
// warnings. It adapts terminal operations for use in single-value
// contexts:
//
//	fmt.Println(presenta.MustResult(presenta.Open("talk.tex").Text()))
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
