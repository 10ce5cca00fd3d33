package enbx2html

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"enbx2html/enbxdoc"
	"enbx2html/format"
	"enbx2html/ocr"
	"enbx2html/render"
	"enbx2html/report"
)

// Converter provides a fluent interface for converting one courseware
// container. Each configuration method returns a new Converter instance,
// making chains safe to fork and reuse.
type Converter struct {
	input   string
	options ConvertOptions

	// Accumulated error (fail-fast through the chain).
	err error
}

// clone creates a copy of the Converter with copied options.
func (c *Converter) clone() *Converter {
	return &Converter{
		input:   c.input,
		options: c.options.clone(),
		err:     c.err,
	}
}

// OutputDir sets the target directory for generated HTML and copied
// resources. The default is "<input stem>_html" beside the input.
func (c *Converter) OutputDir(dir string) *Converter {
	nc := c.clone()
	nc.options.outputDir = dir
	return nc
}

// Title overrides the page title. The default is the input file stem.
func (c *Converter) Title(title string) *Converter {
	nc := c.clone()
	nc.options.title = title
	return nc
}

// WithReporter installs a progress reporter. The default discards all
// events.
func (c *Converter) WithReporter(r report.Reporter) *Converter {
	nc := c.clone()
	if r == nil {
		r = report.Discard{}
	}
	nc.options.reporter = r
	return nc
}

// Parallel caps concurrent slide rendering at n workers. Slides are
// self-contained once the manifest is built, so rendering fans out
// safely; assembly always follows the board's declared order.
func (c *Converter) Parallel(n int) *Converter {
	nc := c.clone()
	if n < 1 {
		n = 1
	}
	nc.options.parallelism = n
	return nc
}

// WithOCR enables OCR alt text for image elements. lang is a Tesseract
// language spec ("chi_sim+eng"); empty keeps the engine default. Without
// the ocr build tag the engine is unavailable and conversion proceeds
// with a warning instead of failing.
func (c *Converter) WithOCR(lang string) *Converter {
	nc := c.clone()
	nc.options.ocrEnabled = true
	nc.options.ocrLanguage = lang
	return nc
}

// Info holds the parse-only summary produced by Converter.Info.
type Info struct {
	Metadata      enbxdoc.DocumentMetadata
	Board         enbxdoc.Board
	SlideCount    int
	ResourceCount int
}

// Result describes a completed conversion.
type Result struct {
	// OutputDir is the directory the presentation was written to.
	OutputDir string
	// IndexPath is the path of the generated index.html.
	IndexPath string
	// SlideCount is the number of slides actually rendered.
	SlideCount int
	// CopiedResources lists the relative resource paths copied into the
	// output directory (empty for same-directory runs).
	CopiedResources []string
	// SameDir reports that output and package root coincided and the
	// resource copy was skipped.
	SameDir bool
}

// Info parses the container's descriptors and returns a summary without
// rendering slides or writing any output. Containers are unpacked into
// a temporary directory that is removed before returning.
func (c *Converter) Info() (*Info, error) {
	if c.err != nil {
		return nil, c.err
	}

	var pkg *enbxdoc.Package
	switch format.Detect(c.input) {
	case format.ENBX:
		tmp, err := os.MkdirTemp("", "enbx2html-info-")
		if err != nil {
			return nil, err
		}
		defer os.RemoveAll(tmp)
		if err := enbxdoc.Unpack(c.input, tmp); err != nil {
			return nil, err
		}
		pkg = enbxdoc.OpenPackage(tmp)
	case format.PackageDir:
		pkg = enbxdoc.OpenPackage(c.input)
	default:
		return nil, fmt.Errorf("%w: %s is not an ENBX container or package directory",
			enbxdoc.ErrArchive, c.input)
	}

	return c.summarize(pkg)
}

// summarize gathers the Info fields from an opened package. The board
// and manifest must parse; metadata is tolerated when absent.
func (c *Converter) summarize(pkg *enbxdoc.Package) (*Info, error) {
	meta, err := pkg.ParseMetadata()
	if err != nil {
		meta = enbxdoc.DocumentMetadata{}
	}

	board, err := pkg.ParseBoard()
	if err != nil {
		return nil, err
	}

	manifest, err := pkg.ParseReferences()
	if err != nil {
		return nil, err
	}

	return &Info{
		Metadata:      meta,
		Board:         board,
		SlideCount:    len(board.SlideIDs),
		ResourceCount: manifest.Len(),
	}, nil
}

// Convert runs the full pipeline: unpack, parse, render, assemble.
// It returns the result, any non-fatal warnings, and an error for
// conditions that corrupt the whole document (invalid archive, invalid
// board, ambiguous manifest). Failures scoped to one slide or one
// element degrade to warnings so the output covers everything that did
// parse.
func (c *Converter) Convert() (*Result, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	reporter := c.options.reporter
	var warnings []Warning
	warn := func(w Warning) {
		warnings = append(warnings, w)
		reporter.Report(report.Event{Kind: report.WarningRaised, Detail: w.String()})
	}

	pkg, outDir, err := c.prepare(reporter)
	if err != nil {
		return nil, nil, err
	}
	reporter.Report(report.Event{Kind: report.Converting, Detail: pkg.Root + " -> " + outDir})

	// Metadata is informational; tolerate a broken descriptor.
	meta, err := pkg.ParseMetadata()
	if err != nil {
		meta = enbxdoc.DocumentMetadata{}
		warn(Warning{Kind: WarningMetadataMissing, Detail: err.Error()})
	} else {
		reporter.Report(report.Event{Kind: report.MetadataParsed, Detail: meta.Name})
	}

	board, err := pkg.ParseBoard()
	if err != nil {
		return nil, warnings, err
	}
	reporter.Report(report.Event{
		Kind:   report.BoardParsed,
		Detail: fmt.Sprintf("%sx%s, %d slides", formatDim(board.Width), formatDim(board.Height), len(board.SlideIDs)),
	})

	manifest, err := pkg.ParseReferences()
	if err != nil {
		return nil, warnings, err
	}
	reporter.Report(report.Event{Kind: report.ReferencesParsed, Detail: strconv.Itoa(manifest.Len())})

	refs, missing, err := pkg.MapSlides(board.SlideIDs)
	if err != nil {
		return nil, warnings, err
	}
	for _, id := range missing {
		warnings = append(warnings, Warning{Kind: WarningSlideSkipped, SlideID: id,
			Detail: enbxdoc.ErrSlideMapping.Error()})
		reporter.Report(report.Event{Kind: report.SlideSkipped, Detail: id})
	}
	reporter.Report(report.Event{Kind: report.SlidesMapped, Detail: strconv.Itoa(len(refs))})

	renderer := &render.Renderer{Board: board, Manifest: manifest}
	if c.options.ocrEnabled {
		altText, cleanup := c.altTextFunc(pkg, warn)
		if altText != nil {
			renderer.AltText = altText
			defer cleanup()
		}
	}

	rendered, slideWarnings := c.renderSlides(pkg, renderer, refs, reporter)
	warnings = append(warnings, slideWarnings...)

	if len(rendered) > 0 {
		// The first rendered slide starts visible.
		rendered[0].HTML = strings.Replace(rendered[0].HTML, `class="slide"`, `class="slide active"`, 1)
	}

	assembler := &render.Assembler{
		Board:       board,
		Metadata:    meta,
		Title:       c.pageTitle(),
		PackageRoot: pkg.Root,
	}
	copied, sameDir, err := assembler.Assemble(outDir, rendered)
	if err != nil {
		return nil, warnings, err
	}
	if sameDir {
		reporter.Report(report.Event{Kind: report.ResourceCopySkipped,
			Detail: "source and output are the same directory"})
	} else {
		for _, rel := range copied {
			reporter.Report(report.Event{Kind: report.ResourceCopied, Detail: rel})
		}
	}

	indexPath := filepath.Join(outDir, "index.html")
	reporter.Report(report.Event{Kind: report.Done, Detail: indexPath})

	return &Result{
		OutputDir:       outDir,
		IndexPath:       indexPath,
		SlideCount:      len(rendered),
		CopiedResources: copied,
		SameDir:         sameDir,
	}, warnings, nil
}

// prepare resolves the input into an opened package and an output
// directory. A packed container is extracted straight into the output
// directory (which then doubles as the package root, so resource copy is
// skipped later); a directory input is used in place.
func (c *Converter) prepare(reporter report.Reporter) (*enbxdoc.Package, string, error) {
	outDir := c.options.outputDir
	if outDir == "" {
		outDir = defaultOutputDir(c.input)
	}

	switch format.Detect(c.input) {
	case format.ENBX:
		reporter.Report(report.Event{Kind: report.Unpacking, Detail: c.input})
		if err := enbxdoc.Unpack(c.input, outDir); err != nil {
			return nil, "", err
		}
		return enbxdoc.OpenPackage(outDir), outDir, nil

	case format.PackageDir:
		return enbxdoc.OpenPackage(c.input), outDir, nil

	default:
		return nil, "", fmt.Errorf("%w: %s is not an ENBX container or package directory",
			enbxdoc.ErrArchive, c.input)
	}
}

// renderSlides parses and renders the mapped slides, fanning out across
// workers when Parallel was requested. Results are collected into an
// index-addressed slice so assembly order always matches the board's
// declared order regardless of completion order.
func (c *Converter) renderSlides(pkg *enbxdoc.Package, renderer *render.Renderer,
	refs []enbxdoc.SlideRef, reporter report.Reporter) ([]*render.RenderedSlide, []Warning) {

	type outcome struct {
		frag *render.RenderedSlide
		err  error
	}
	outcomes := make([]outcome, len(refs))

	renderOne := func(i int) {
		slide, err := pkg.ParseSlide(refs[i])
		if err != nil {
			outcomes[i] = outcome{err: err}
			return
		}
		outcomes[i] = outcome{frag: renderer.RenderSlide(slide, false)}
	}

	if c.options.parallelism > 1 && len(refs) > 1 {
		var wg sync.WaitGroup
		sem := make(chan struct{}, c.options.parallelism)
		for i := range refs {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer wg.Done()
				defer func() { <-sem }()
				renderOne(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range refs {
			renderOne(i)
		}
	}

	var rendered []*render.RenderedSlide
	var warnings []Warning
	for i, out := range outcomes {
		if out.err != nil {
			warnings = append(warnings, Warning{Kind: WarningSlideSkipped,
				SlideID: refs[i].ID, Detail: out.err.Error()})
			reporter.Report(report.Event{Kind: report.SlideSkipped, Detail: refs[i].ID})
			continue
		}
		for _, id := range out.frag.Missing {
			warnings = append(warnings, Warning{Kind: WarningMissingResource,
				SlideID: out.frag.SlideID, Detail: "resource " + id + " not resolvable"})
			reporter.Report(report.Event{Kind: report.WarningRaised,
				Detail: fmt.Sprintf("slide %s references missing resource %s", out.frag.SlideID, id)})
		}
		reporter.Report(report.Event{Kind: report.SlideRendered, Detail: out.frag.SlideID})
		rendered = append(rendered, out.frag)
	}

	return rendered, warnings
}

// altTextFunc builds the OCR hook for the renderer. When the OCR engine
// is unavailable (no ocr build tag, or Tesseract missing) it degrades to
// a warning and a nil hook.
func (c *Converter) altTextFunc(pkg *enbxdoc.Package, warn func(Warning)) (func(string) string, func()) {
	client, err := ocr.New()
	if err != nil {
		warn(Warning{Kind: WarningOCRUnavailable, Detail: err.Error()})
		return nil, nil
	}
	if c.options.ocrLanguage != "" {
		if err := client.SetLanguage(c.options.ocrLanguage); err != nil {
			warn(Warning{Kind: WarningOCRUnavailable, Detail: err.Error()})
			client.Close()
			return nil, nil
		}
	}

	// The engine holds per-call state, so recognition is serialized and
	// cached by path; the same image referenced twice is recognized once.
	var mu sync.Mutex
	cache := make(map[string]string)

	hook := func(rel string) string {
		mu.Lock()
		defer mu.Unlock()
		if text, ok := cache[rel]; ok {
			return text
		}
		text, err := client.RecognizeFile(pkg.Path(rel))
		if err != nil {
			text = ""
		}
		cache[rel] = text
		return text
	}

	return hook, func() { client.Close() }
}

// pageTitle picks the HTML page title: explicit option first, then the
// input file stem.
func (c *Converter) pageTitle() string {
	if c.options.title != "" {
		return c.options.title
	}
	return inputStem(c.input)
}

// defaultOutputDir derives "<stem>_html" beside the input.
func defaultOutputDir(input string) string {
	return filepath.Join(filepath.Dir(input), inputStem(input)+"_html")
}

// inputStem returns the input's base name without the .enbx extension.
func inputStem(input string) string {
	base := filepath.Base(filepath.Clean(input))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// formatDim formats a board dimension without trailing zeros.
func formatDim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
