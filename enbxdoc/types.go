package enbxdoc

import (
	"path/filepath"

	"enbx2html/model"
)

// Package is an unpacked courseware container rooted at a directory.
// It is created once at unpack time and read-only thereafter.
type Package struct {
	Root string
}

// OpenPackage returns a Package rooted at dir. The directory is not
// validated here; each parse function reports its own named error when a
// descriptor is missing.
func OpenPackage(dir string) *Package {
	return &Package{Root: dir}
}

// Path resolves a slash-separated relative part path against the
// package root.
func (p *Package) Path(rel string) string {
	return filepath.Join(p.Root, filepath.FromSlash(rel))
}

// DocumentMetadata holds document-level descriptor fields. Missing
// fields are empty strings; the values are informational only and never
// affect layout.
type DocumentMetadata struct {
	Name             string
	Creator          string
	CreatedDateTime  string
	ModifiedDateTime string
}

// Fields returns the metadata as ordered label/value pairs for display.
func (m DocumentMetadata) Fields() [][2]string {
	return [][2]string{
		{"Name", m.Name},
		{"Creator", m.Creator},
		{"CreatedDateTime", m.CreatedDateTime},
		{"ModifiedDateTime", m.ModifiedDateTime},
	}
}

// Board holds the global canvas dimensions and the declared slide order.
// The id order is authoritative for presentation order.
type Board struct {
	Width    float64
	Height   float64
	SlideIDs []string
}

// SlideRef pairs a declared slide id with its definition file.
type SlideRef struct {
	ID   string
	Path string // absolute path to the slide XML
}

// Slide is one parsed slide: its id, optional background image resource,
// and the ordered element list (document order).
type Slide struct {
	ID           string
	BackgroundID string
	Elements     []model.Element
}
