// Package model provides the format-neutral intermediate representation (IR)
// for presentation content.
//
// This package defines the user-facing data structures that represent the
// semantic structure of a slide deck. All reading operations ultimately
// produce these types, and the layout and export stages consume them,
// making them the primary API for working with converted presentations.
//
// # Document Structure
//
// The [Document] type represents a complete presentation with metadata and
// frames:
//
//	doc := model.NewDocument()
//	doc.Metadata.Title = "My Talk"
//	doc.AddFrame(frame)
//
// Each [Frame] is a single slide: a title, an ordered list of [Element]
// values, a [LayoutKind] naming how it should be arranged, and any speaker
// notes. Frame numbers are dense and 1-based; [Document.AddFrame] renumbers
// on every append so they stay that way regardless of how the document was
// assembled.
//
// # Elements
//
// An [Element] pairs an [ElementType] tag with a [Content] payload whose
// concrete type matches the tag:
//
//   - [TextContent] - running text, titles, code listings
//   - [ListContent] - ordered and unordered lists
//   - [BlockContent] - titled callout boxes
//   - [ImageContent] - referenced images
//   - [EquationContent] - inline and display equations
//
// The constructors (NewTextElement, NewItemizeElement, and so on) keep tag
// and payload in agreement. Element order within a frame is source order
// and is preserved through every stage.
//
// # Geometry
//
// Elements are created without positions. The layout stage assigns each one
// a [Position], a rectangle in inches measured from the slide's top-left
// corner. Until then Position is nil, which is how later stages tell raw
// documents from arranged ones.
package model
