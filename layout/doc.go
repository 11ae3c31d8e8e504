// Package layout assigns slide positions to document elements.
//
// The entry point is Arrange, which takes a document produced by a reader
// and returns a structural copy in which every element carries a Position.
// Placement follows a single vertical flow: a cursor starts below the title
// band and advances past each element by its estimated height plus a fixed
// spacing. Heights are estimated per element type from the content alone,
// so arranging the same document twice always yields identical positions.
//
// All measurements are in inches on a standard 10 x 7.5 inch slide. The
// margins, spacing, and height rules are exported constants; themes change
// fonts and colors downstream but never positions.
package layout
