package enbxdoc

import (
	"fmt"
	"strconv"
	"strings"
)

// boardXML mirrors the structure of Board.xml.
type boardXML struct {
	SlideWidth  string `xml:"SlideWidth"`
	SlideHeight string `xml:"SlideHeight"`
	Slides      struct {
		Items []string `xml:"Item"`
	} `xml:"Slides"`
}

// ParseBoard parses the board descriptor (Board.xml): canvas width and
// height in board units plus the declared slide id sequence. The
// declared order is authoritative for presentation order, independent of
// filesystem listing order, and is returned verbatim. Missing,
// non-numeric, or non-positive dimensions and an empty slide list all
// fail with ErrBoard: a package without a canvas or without slides is
// not convertible.
func (p *Package) ParseBoard() (Board, error) {
	var raw boardXML
	if err := decodeXMLFile(p.Path("Board.xml"), &raw); err != nil {
		return Board{}, fmt.Errorf("%w: %v", ErrBoard, err)
	}

	width, err := parseDimension(raw.SlideWidth)
	if err != nil {
		return Board{}, fmt.Errorf("%w: SlideWidth %v", ErrBoard, err)
	}
	height, err := parseDimension(raw.SlideHeight)
	if err != nil {
		return Board{}, fmt.Errorf("%w: SlideHeight %v", ErrBoard, err)
	}

	ids := make([]string, 0, len(raw.Slides.Items))
	for _, item := range raw.Slides.Items {
		if id := strings.TrimSpace(item); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return Board{}, fmt.Errorf("%w: no slides declared", ErrBoard)
	}

	return Board{Width: width, Height: height, SlideIDs: ids}, nil
}

// parseDimension parses a strictly positive canvas dimension.
func parseDimension(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("is missing")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not numeric", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%v is not positive", v)
	}
	return v, nil
}
