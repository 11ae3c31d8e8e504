// Package render defines the contract between positioned documents and
// slide-deck writers.
//
// No writer is implemented here. The Renderer interface is what a concrete
// deck builder must satisfy: it receives a document whose elements already
// carry positions from the layout package and must honor them without
// recomputing placement. Options and themes govern fonts and colors only.
//
// The package also provides asset resolution for image elements: locating
// the referenced file relative to a base directory and probing its pixel
// dimensions so a renderer can scale it to fit its positioned box.
package render
