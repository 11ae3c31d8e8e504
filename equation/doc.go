// Package equation defines the boundary to an external equation renderer.
//
// Turning equation source into an image requires a typesetting toolchain
// that lives outside this library. The Rasterizer interface is what such a
// toolchain wrapper must satisfy; Cache wraps any Rasterizer with in-memory
// memoization so identical equations are typeset only once per process.
package equation
