// Package render turns parsed slides into positioned HTML and assembles
// the final navigable document.
//
// The renderer emits one fragment per slide: an absolutely positioned
// element tree inside a canvas-sized container, so the generated markup
// needs no per-slide rescaling as long as the viewer renders at native
// board units. The assembler combines fragments into a single index.html
// with client-side navigation and copies the referenced resource files
// into the output directory, unless output and package root coincide.
package render
