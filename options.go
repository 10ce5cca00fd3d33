package enbx2html

import "enbx2html/report"

// ConvertOptions holds configuration for a conversion run.
type ConvertOptions struct {
	// outputDir is the target directory; empty means "<input stem>_html"
	// beside the input.
	outputDir string

	// title overrides the document name in the page title.
	title string

	// parallelism caps concurrent slide rendering; <= 1 is sequential.
	parallelism int

	// reporter receives structured progress events.
	reporter report.Reporter

	// OCR alt text for image elements (requires the ocr build tag).
	ocrEnabled  bool
	ocrLanguage string
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		outputDir:   "",
		title:       "",
		parallelism: 1,
		reporter:    report.Discard{},
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return o
}
