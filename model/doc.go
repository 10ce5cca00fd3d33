// Package model defines the document model shared by the parsing and
// rendering layers: board geometry and the positioned slide elements
// (text, image, shape, group) extracted from a courseware package.
//
// All coordinates are in board units with the origin at the top-left
// corner of the canvas, matching the CSS coordinate space the renderer
// emits. Element positions are absolute in board space; only children of
// a Group are relative to their group's origin.
package model
