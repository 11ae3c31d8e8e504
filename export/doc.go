// Package export serializes documents for interchange and inspection.
//
// JSON export mirrors the model types with snake_case keys; each element's
// content is written as an object carrying a "type" discriminator so the
// payload can be decoded back into the right concrete type. Import is the
// one place a payload shape can disagree with its element type tag, and it
// rejects such input rather than coercing it.
//
// Markdown and plain-text export produce a human-readable outline of the
// deck, useful for review and for search indexing.
package export
