// Package beamer parses LaTeX Beamer source into the presentation model.
//
// The entry points are Open, OpenReader, and Parse. Parsing happens once,
// up front: comments are stripped, the preamble is scanned for metadata,
// and each frame environment is segmented and walked by a line scanner
// that recognizes the environments slide decks actually use (itemize,
// enumerate, block callouts, display equations, columns) along with
// inline math, images, and speaker notes.
//
// The parser is deliberately forgiving. Unknown commands are reduced to
// their visible text, unbalanced environments keep what they collected,
// and markup it cannot interpret degrades to plain text. Only input that
// yields no frames at all is rejected, with a ParseError.
package beamer
