package enbxdoc

import "errors"

// Error kinds for container parsing. Parse failures wrap one of these so
// callers can classify with errors.Is and decide which are fatal.
var (
	// ErrArchive indicates the input is not a readable ENBX archive.
	ErrArchive = errors.New("enbx: invalid or corrupted archive")

	// ErrMetadata indicates Document.xml is absent or unparsable.
	ErrMetadata = errors.New("enbx: document descriptor missing or invalid")

	// ErrBoard indicates Board.xml is absent, has missing or non-positive
	// dimensions, or declares no slides.
	ErrBoard = errors.New("enbx: board descriptor missing or invalid")

	// ErrReference indicates the resource manifest is absent, unparsable,
	// or contains duplicate identifiers.
	ErrReference = errors.New("enbx: resource manifest invalid")

	// ErrSlideMapping indicates a declared slide id has no definition file.
	ErrSlideMapping = errors.New("enbx: slide has no definition file")
)
