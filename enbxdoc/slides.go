package enbxdoc

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"enbx2html/model"
)

// slideIDXML reads just the root Id of a slide file during mapping.
type slideIDXML struct {
	ID string `xml:"Id"`
}

// slideXML mirrors a full slide definition file.
type slideXML struct {
	ID         string         `xml:"Id"`
	Background *backgroundXML `xml:"Background"`
	Elements   *elementsXML   `xml:"Elements"`
}

type backgroundXML struct {
	ImageBrush *imageBrushXML `xml:"ImageBrush"`
}

type imageBrushXML struct {
	Source string `xml:"Source"`
}

// elementsXML captures every child element regardless of tag; the tag
// name drives variant dispatch in convertElement.
type elementsXML struct {
	Items []elementXML `xml:",any"`
}

type elementXML struct {
	XMLName  xml.Name
	X        string `xml:"X"`
	Y        string `xml:"Y"`
	Width    string `xml:"Width"`
	Height   string `xml:"Height"`
	Rotation string `xml:"Rotation"`
	ZIndex   string `xml:"ZIndex"`

	Source     string         `xml:"Source"`
	RichText   *richTextXML   `xml:"RichText"`
	Text       *nestedTextXML `xml:"Text"`
	Background *backgroundXML `xml:"Background"`

	ShapeType   string    `xml:"ShapeType"`
	Fill        *brushXML `xml:"Fill"`
	Stroke      *brushXML `xml:"Stroke"`
	StrokeWidth string    `xml:"StrokeWidth"`

	Elements *elementsXML `xml:"Elements"`
}

// nestedTextXML is the Text child of an ActivityItem composite.
type nestedTextXML struct {
	RichText *richTextXML `xml:"RichText"`
}

type brushXML struct {
	ColorBrush string `xml:"ColorBrush"`
}

type richTextXML struct {
	VerticalTextAlignment string `xml:"VerticalTextAlignment"`
	TextLines             struct {
		Lines []textLineXML `xml:"TextLine"`
	} `xml:"TextLines"`
}

type textLineXML struct {
	TextAlignment string `xml:"TextAlignment"`
	TextRuns      struct {
		Runs []textRunXML `xml:"TextRun"`
	} `xml:"TextRuns"`
}

type textRunXML struct {
	Text       string `xml:"Text"`
	FontSize   string `xml:"FontSize"`
	FontFamily struct {
		Source string `xml:"Source"`
	} `xml:"FontFamily"`
	Foreground struct {
		ColorBrush string `xml:"ColorBrush"`
	} `xml:"Foreground"`
	FontWeight string `xml:"FontWeight"`
}

// MapSlides pairs the board's declared slide id sequence with definition
// files found under Slides/. The returned refs preserve declared order
// and form a subsequence of it; ids with no matching file come back in
// missing rather than failing the whole conversion (callers skip and
// warn, wrapping ErrSlideMapping per id). Slide files that fail to parse
// are ignored during mapping.
func (p *Package) MapSlides(ids []string) (refs []SlideRef, missing []string, err error) {
	slidesDir := p.Path("Slides")
	entries, err := os.ReadDir(slidesDir)
	if err != nil {
		if os.IsNotExist(err) {
			// No Slides directory at all: every declared id is unmapped.
			return nil, append([]string(nil), ids...), nil
		}
		return nil, nil, fmt.Errorf("reading %s: %w", slidesDir, err)
	}

	// Sort for a deterministic winner if two files claim the same id.
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".xml") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	byID := make(map[string]string, len(names))
	for _, name := range names {
		path := filepath.Join(slidesDir, name)
		var idx slideIDXML
		if err := decodeXMLFile(path, &idx); err != nil {
			continue
		}
		id := strings.TrimSpace(idx.ID)
		if id == "" {
			continue
		}
		if _, taken := byID[id]; !taken {
			byID[id] = path
		}
	}

	for _, id := range ids {
		if path, ok := byID[id]; ok {
			refs = append(refs, SlideRef{ID: id, Path: path})
		} else {
			missing = append(missing, id)
		}
	}

	return refs, missing, nil
}

// ParseSlide parses one slide definition file into its element list.
// Document order is preserved; it becomes paint order for elements
// without an explicit z-index.
func (p *Package) ParseSlide(ref SlideRef) (*Slide, error) {
	var raw slideXML
	if err := decodeXMLFile(ref.Path, &raw); err != nil {
		return nil, fmt.Errorf("%w: slide %s: %v", ErrSlideMapping, ref.ID, err)
	}

	slide := &Slide{ID: ref.ID}

	if raw.Background != nil && raw.Background.ImageBrush != nil {
		if id, ok := SourceID(raw.Background.ImageBrush.Source); ok {
			slide.BackgroundID = id
		}
	}

	if raw.Elements != nil {
		slide.Elements = convertElements(raw.Elements.Items)
	}

	return slide, nil
}

// convertElements converts raw elements in document order, assigning the
// document index as z-order unless the element declares its own.
func convertElements(items []elementXML) []model.Element {
	elements := make([]model.Element, 0, len(items))
	for i, item := range items {
		if elem := convertElement(item, i); elem != nil {
			elements = append(elements, elem)
		}
	}
	return elements
}

// convertElement dispatches one raw element to its model variant.
func convertElement(e elementXML, index int) model.Element {
	bbox := model.NewBBox(
		parseFloat(e.X), parseFloat(e.Y),
		parseFloat(e.Width), parseFloat(e.Height),
	)
	rotation := parseFloat(e.Rotation)
	zOrder := index
	if z, err := strconv.Atoi(strings.TrimSpace(e.ZIndex)); err == nil {
		zOrder = z
	}

	switch {
	case e.XMLName.Local == "Group" && e.Elements != nil:
		return &model.Group{
			Children: convertElements(e.Elements.Items),
			BBox:     bbox,
			ZOrder:   zOrder,
			Rotation: rotation,
		}

	case e.XMLName.Local == "Text" && e.RichText != nil:
		return convertText(e.RichText, "", bbox, zOrder, rotation)

	case e.XMLName.Local == "ActivityItem" && e.Text != nil && e.Text.RichText != nil:
		// Activity items carry rich text over an optional background image.
		background := ""
		if e.Background != nil && e.Background.ImageBrush != nil {
			if id, ok := SourceID(e.Background.ImageBrush.Source); ok {
				background = id
			}
		}
		return convertText(e.Text.RichText, background, bbox, zOrder, rotation)

	default:
		if id, ok := SourceID(e.Source); ok {
			return &model.Image{
				ResourceID: id,
				BBox:       bbox,
				ZOrder:     zOrder,
				Rotation:   rotation,
			}
		}
		if bbox.IsEmpty() {
			return nil
		}
		// Anything else with geometry renders as a bounded box; exact
		// shape fidelity is out of scope, bounding-box fidelity is not.
		return &model.Shape{
			Kind:        shapeKind(e),
			Fill:        parseBrush(e.Fill),
			Stroke:      parseBrush(e.Stroke),
			StrokeWidth: parseFloat(e.StrokeWidth),
			BBox:        bbox,
			ZOrder:      zOrder,
			Rotation:    rotation,
		}
	}
}

func shapeKind(e elementXML) string {
	if k := strings.TrimSpace(e.ShapeType); k != "" {
		return k
	}
	return e.XMLName.Local
}

func convertText(rt *richTextXML, backgroundID string, bbox model.BBox, zOrder int, rotation float64) *model.Text {
	text := &model.Text{
		VAlign:       parseVAlign(rt.VerticalTextAlignment),
		BBox:         bbox,
		ZOrder:       zOrder,
		Rotation:     rotation,
		BackgroundID: backgroundID,
	}

	for _, line := range rt.TextLines.Lines {
		tl := model.TextLine{Alignment: parseAlign(line.TextAlignment)}
		for _, run := range line.TextRuns.Runs {
			if run.Text == "" {
				continue
			}
			tr := model.TextRun{
				Text:       run.Text,
				FontSize:   parseFloat(run.FontSize),
				FontFamily: strings.TrimSpace(run.FontFamily.Source),
				Bold:       strings.TrimSpace(run.FontWeight) == "Bold",
			}
			if c, ok := model.ParseColor(run.Foreground.ColorBrush); ok {
				tr.Color = &c
			}
			tl.Runs = append(tl.Runs, tr)
		}
		text.Lines = append(text.Lines, tl)
	}

	return text
}

func parseBrush(b *brushXML) *model.Color {
	if b == nil {
		return nil
	}
	if c, ok := model.ParseColor(b.ColorBrush); ok {
		return &c
	}
	return nil
}

func parseAlign(s string) model.TextAlignment {
	switch strings.TrimSpace(s) {
	case "Center":
		return model.AlignCenter
	case "Right":
		return model.AlignRight
	default:
		return model.AlignLeft
	}
}

func parseVAlign(s string) model.VerticalAlignment {
	switch strings.TrimSpace(s) {
	case "Center":
		return model.VAlignCenter
	case "Bottom":
		return model.VAlignBottom
	default:
		return model.VAlignTop
	}
}

// parseFloat parses a coordinate value, defaulting to 0 for absent or
// malformed input. Coordinates are best-effort; only board dimensions
// are validated strictly.
func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
