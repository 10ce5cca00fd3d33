// Package report decouples the conversion pipeline from console output.
// The pipeline emits structured events through a Reporter; the CLI
// installs Console to reproduce the familiar progress lines, tests
// install Recorder to assert on what happened, and library callers that
// want silence use Discard.
package report

import (
	"fmt"
	"io"
	"sync"
)

// EventKind identifies a pipeline progress event.
type EventKind int

const (
	// Unpacking: the container is being extracted. Detail: source path.
	Unpacking EventKind = iota
	// Converting: source and destination are decided. Detail: "src -> dst".
	Converting
	// MetadataParsed: Document.xml parsed. Detail: document name.
	MetadataParsed
	// BoardParsed: Board.xml parsed. Detail: dimensions and slide count.
	BoardParsed
	// ReferencesParsed: Reference.xml parsed. Detail: resource count.
	ReferencesParsed
	// SlidesMapped: slide ids matched to files. Detail: mapped count.
	SlidesMapped
	// SlideRendered: one slide rendered. Detail: slide id.
	SlideRendered
	// SlideSkipped: a declared slide had no definition file. Detail: id.
	SlideSkipped
	// ResourceCopied: one resource file copied. Detail: relative path.
	ResourceCopied
	// ResourceCopySkipped: same-directory run, no copies. Detail: reason.
	ResourceCopySkipped
	// WarningRaised: a non-fatal condition occurred. Detail: message.
	WarningRaised
	// Done: conversion finished. Detail: output path.
	Done
)

func (k EventKind) String() string {
	switch k {
	case Unpacking:
		return "Unpacking"
	case Converting:
		return "Converting"
	case MetadataParsed:
		return "MetadataParsed"
	case BoardParsed:
		return "BoardParsed"
	case ReferencesParsed:
		return "ReferencesParsed"
	case SlidesMapped:
		return "SlidesMapped"
	case SlideRendered:
		return "SlideRendered"
	case SlideSkipped:
		return "SlideSkipped"
	case ResourceCopied:
		return "ResourceCopied"
	case ResourceCopySkipped:
		return "ResourceCopySkipped"
	case WarningRaised:
		return "WarningRaised"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// Event is one structured progress notification.
type Event struct {
	Kind   EventKind
	Detail string
}

// Reporter receives pipeline progress events. Implementations must be
// safe for concurrent use: slide rendering may fan out.
type Reporter interface {
	Report(Event)
}

// Console writes human-readable progress lines to an io.Writer.
type Console struct {
	W io.Writer

	mu sync.Mutex
}

// NewConsole returns a Console reporter writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{W: w}
}

// Report prints one progress line per event.
func (c *Console) Report(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch e.Kind {
	case Unpacking:
		fmt.Fprintf(c.W, "Unzipping %s...\n", e.Detail)
	case Converting:
		fmt.Fprintf(c.W, "Converting %s...\n", e.Detail)
	case MetadataParsed:
		fmt.Fprintf(c.W, "Document metadata: %s\n", e.Detail)
	case BoardParsed:
		fmt.Fprintf(c.W, "Board parsed: %s\n", e.Detail)
	case ReferencesParsed:
		fmt.Fprintf(c.W, "References parsed: %s resources found\n", e.Detail)
	case SlidesMapped:
		fmt.Fprintf(c.W, "Mapped %s slide files\n", e.Detail)
	case SlideRendered:
		fmt.Fprintf(c.W, "Rendered slide %s\n", e.Detail)
	case SlideSkipped:
		fmt.Fprintf(c.W, "Warning: slide %s not found in mapped files, skipping\n", e.Detail)
	case ResourceCopied:
		fmt.Fprintf(c.W, "Copied %s\n", e.Detail)
	case ResourceCopySkipped:
		fmt.Fprintf(c.W, "Skipping resource copy: %s\n", e.Detail)
	case WarningRaised:
		fmt.Fprintf(c.W, "Warning: %s\n", e.Detail)
	case Done:
		fmt.Fprintf(c.W, "Done! Output at: %s\n", e.Detail)
	}
}

// Recorder captures events in order for test assertions.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Report appends the event to the record.
func (r *Recorder) Report(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Count returns how many events of the given kind were recorded.
func (r *Recorder) Count(kind EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Discard drops all events.
type Discard struct{}

// Report does nothing.
func (Discard) Report(Event) {}
