// Package enbx2html converts EasiNote courseware containers (.enbx,
// an OPC-style ZIP package) into self-contained navigable HTML
// presentations.
//
// Basic usage:
//
//	result, warnings, err := enbx2html.Open("lesson.enbx").Convert()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", enbx2html.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := enbx2html.Open("lesson.enbx").
//	    OutputDir("out").
//	    Parallel(4).
//	    Convert()
//
// An already-unpacked package directory is accepted in place of the
// .enbx file. For a parse-only summary that writes nothing, use Info:
//
//	info, err := enbx2html.Open("lesson.enbx").Info()
package enbx2html

// Open prepares a Converter for the given input: a .enbx container file
// or an unpacked package directory. Configuration methods return new
// Converter instances, so a chain is safe to fork; Convert and Info are
// the terminal operations.
func Open(input string) *Converter {
	return &Converter{
		input:   input,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call returning (T, error) and panics if
// the error is non-nil. Intended for scripts and tests.
//
// Example:
//
//	info := enbx2html.Must(enbx2html.Open("lesson.enbx").Info())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustConvert wraps a Convert call and panics on error, discarding
// warnings.
//
// Example:
//
//	result := enbx2html.MustConvert(enbx2html.Open("lesson.enbx").Convert())
func MustConvert[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
