package render

import (
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"enbx2html/enbxdoc"
)

// Assembler combines rendered slide fragments into the final output:
// a single index.html with client-side navigation plus the resource
// files the slides reference.
type Assembler struct {
	Board    enbxdoc.Board
	Metadata enbxdoc.DocumentMetadata
	// Title overrides the document name in the page title; the CLI
	// passes the input file stem.
	Title string
	// PackageRoot is the unpacked container directory resources are
	// copied from.
	PackageRoot string
}

// Assemble writes index.html into outDir and copies every resource used
// by at least one slide. It returns the relative paths copied; copying
// is skipped entirely when outDir and the package root are the same
// directory, since the unpacked tree already satisfies the relative
// layout the generated URLs expect.
func (a *Assembler) Assemble(outDir string, slides []*RenderedSlide) (copied []string, sameDir bool, err error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, false, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(outDir, "index.html"))
	if err != nil {
		return nil, false, fmt.Errorf("creating index.html: %w", err)
	}
	if err := a.WriteDocument(f, slides); err != nil {
		f.Close()
		return nil, false, err
	}
	if err := f.Close(); err != nil {
		return nil, false, err
	}

	return a.copyResources(outDir, slides)
}

// copyResources copies used resources into outDir, deduplicated by
// relative path and in sorted order for determinism.
func (a *Assembler) copyResources(outDir string, slides []*RenderedSlide) (copied []string, sameDir bool, err error) {
	same, err := sameDirectory(a.PackageRoot, outDir)
	if err != nil {
		return nil, false, err
	}
	if same {
		return nil, true, nil
	}

	seen := make(map[string]bool)
	var targets []string
	for _, slide := range slides {
		for _, rel := range slide.Used {
			if !seen[rel] {
				seen[rel] = true
				targets = append(targets, rel)
			}
		}
	}
	sort.Strings(targets)

	for _, rel := range targets {
		src := filepath.Join(a.PackageRoot, filepath.FromSlash(rel))
		dst := filepath.Join(outDir, filepath.FromSlash(rel))
		if err := copyFile(src, dst); err != nil {
			return copied, false, fmt.Errorf("copying resource %s: %w", rel, err)
		}
		copied = append(copied, rel)
	}

	return copied, false, nil
}

// sameDirectory reports whether two paths name the same directory.
func sameDirectory(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	if filepath.Clean(absA) == filepath.Clean(absB) {
		return true, nil
	}

	// Symlinked spellings of the same directory.
	infoA, errA := os.Stat(absA)
	infoB, errB := os.Stat(absB)
	if errA != nil || errB != nil {
		return false, nil
	}
	return os.SameFile(infoA, infoB), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// WriteDocument writes the complete HTML document: canvas container
// sized to the board, one hidden .slide per fragment (first active),
// navigation buttons, keyboard bindings, and the document-info modal.
// Output is deterministic for identical input.
func (a *Assembler) WriteDocument(w io.Writer, slides []*RenderedSlide) error {
	title := a.Title
	if title == "" {
		title = a.Metadata.Name
	}
	if title == "" {
		title = "EasiNote Export"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, documentHead, html.EscapeString(title), formatUnit(a.Board.Width), formatUnit(a.Board.Height))

	for _, slide := range slides {
		sb.WriteString(slide.HTML)
	}

	fmt.Fprintf(&sb, documentTail, a.metadataRows())

	_, err := io.WriteString(w, sb.String())
	return err
}

// metadataRows renders the info-modal table body. Labels stay in the
// product's original locale; empty fields are omitted.
func (a *Assembler) metadataRows() string {
	var sb strings.Builder

	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&sb, "<tr><td>%s</td><td>%s</td></tr>", label, value)
	}

	row("文档名称", html.EscapeString(a.Metadata.Name))
	if creator := a.Metadata.Creator; creator != "" {
		row("作者", fmt.Sprintf(`<a href="https://k.seewo.com/personalPage/%s" target="_blank">%s</a>`,
			html.EscapeString(creator), html.EscapeString(creator)))
	}
	row("创建时间", html.EscapeString(a.Metadata.CreatedDateTime))
	row("上次修改时间", html.EscapeString(a.Metadata.ModifiedDateTime))

	return sb.String()
}
