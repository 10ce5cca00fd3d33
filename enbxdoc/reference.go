package enbxdoc

import (
	"fmt"
	"image"
	"os"
	"strings"

	// Decoders registered for resource probing. The standard formats
	// cover most EasiNote exports; the x/image formats show up in
	// packages authored from scanned material.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// referenceXML mirrors the structure of Reference.xml. Unlike OOXML
// relationship files, id and target are child elements, not attributes.
type referenceXML struct {
	Relationships struct {
		Relationship []struct {
			ID     string `xml:"Id"`
			Target string `xml:"Target"`
		} `xml:"Relationship"`
	} `xml:"Relationships"`
}

// ResourceManifest maps resource identifiers to relative file paths
// inside the package. Identifiers are unique; duplicates are rejected at
// parse time. Whether a target file actually exists is checked lazily,
// when an element asks for it: dead manifest entries are common in real
// packages and harmless until referenced.
type ResourceManifest struct {
	root    string
	targets map[string]string
}

// ParseReferences parses the resource manifest (Reference.xml). A
// duplicate identifier fails with ErrReference: ambiguous resolution is
// never silently resolved by last-wins, since it risks wrong output. A
// wholly absent manifest yields an empty mapping instead of failing;
// packages without embedded media simply omit the file.
func (p *Package) ParseReferences() (*ResourceManifest, error) {
	var raw referenceXML
	if err := decodeXMLFile(p.Path("Reference.xml"), &raw); err != nil {
		if os.IsNotExist(err) {
			return &ResourceManifest{root: p.Root, targets: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrReference, err)
	}

	m := &ResourceManifest{
		root:    p.Root,
		targets: make(map[string]string, len(raw.Relationships.Relationship)),
	}

	for _, rel := range raw.Relationships.Relationship {
		id := strings.TrimSpace(rel.ID)
		if id == "" {
			continue
		}
		if _, exists := m.targets[id]; exists {
			return nil, fmt.Errorf("%w: duplicate identifier %q", ErrReference, id)
		}
		// Targets are authored with Windows separators.
		m.targets[id] = strings.ReplaceAll(strings.TrimSpace(rel.Target), `\`, "/")
	}

	return m, nil
}

// Len returns the number of manifest entries.
func (m *ResourceManifest) Len() int {
	return len(m.targets)
}

// Lookup returns the relative target path for an identifier without
// touching the filesystem.
func (m *ResourceManifest) Lookup(id string) (string, bool) {
	target, ok := m.targets[id]
	return target, ok
}

// Resolve returns the relative target path for an identifier, verifying
// that the target file exists inside the package. This is the render-time
// entry point: a false return is the reportable missing-resource
// condition, never a conversion failure.
func (m *ResourceManifest) Resolve(id string) (string, bool) {
	target, ok := m.targets[id]
	if !ok {
		return "", false
	}
	p := Package{Root: m.root}
	if _, err := os.Stat(p.Path(target)); err != nil {
		return "", false
	}
	return target, true
}

// Targets returns the identifier-to-path mapping as a copy.
func (m *ResourceManifest) Targets() map[string]string {
	out := make(map[string]string, len(m.targets))
	for id, target := range m.targets {
		out[id] = target
	}
	return out
}

// Probe decodes the header of an image resource and returns its pixel
// dimensions. Used for --info statistics and for image elements that
// omit an explicit size.
func (m *ResourceManifest) Probe(id string) (width, height int, err error) {
	target, ok := m.Resolve(id)
	if !ok {
		return 0, 0, fmt.Errorf("resource %q not resolvable", id)
	}

	p := Package{Root: m.root}
	f, err := os.Open(p.Path(target))
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decoding %s: %w", target, err)
	}
	return cfg.Width, cfg.Height, nil
}

// SourceID extracts the resource identifier from an element source
// attribute of the form "id://NNN". Sources in any other scheme are not
// resource references.
func SourceID(source string) (string, bool) {
	source = strings.TrimSpace(source)
	if !strings.HasPrefix(source, "id://") {
		return "", false
	}
	id := strings.TrimPrefix(source, "id://")
	if id == "" {
		return "", false
	}
	return id, true
}
