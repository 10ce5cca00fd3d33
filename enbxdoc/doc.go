// Package enbxdoc provides parsing for EasiNote courseware (ENBX)
// packages: an OPC-style ZIP container holding a document descriptor
// (Document.xml), board geometry and slide order (Board.xml), a resource
// manifest (Reference.xml), and one definition file per slide under
// Slides/.
//
// The package operates on an unpacked container. Unpack extracts a
// .enbx archive into a working directory; OpenPackage then gives access
// to strongly-typed parse functions, each failing with a named error
// kind (ErrMetadata, ErrBoard, ErrReference, ErrSlideMapping) so callers
// can decide per entity whether a failure is fatal or tolerable.
package enbxdoc
