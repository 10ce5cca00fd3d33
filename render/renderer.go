package render

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	"enbx2html/enbxdoc"
	"enbx2html/model"
)

// RenderedSlide is one slide's HTML fragment plus the bookkeeping the
// assembler needs: which resource paths the fragment references and
// which resource ids failed to resolve.
type RenderedSlide struct {
	SlideID string
	HTML    string
	// Used holds relative resource paths referenced by the fragment.
	Used []string
	// Missing holds resource ids that did not resolve; each produced a
	// visible placeholder instead of aborting the slide.
	Missing []string
}

// Renderer renders slides against a board's coordinate space. It only
// reads the shared manifest, so a single Renderer may be used from
// multiple goroutines.
type Renderer struct {
	Board    enbxdoc.Board
	Manifest *enbxdoc.ResourceManifest

	// AltText, when set, supplies alternative text for a resolved image
	// resource given its path relative to the package root. The OCR
	// integration hangs off this hook.
	AltText func(relPath string) string
}

// RenderSlide renders one parsed slide to an HTML fragment. The first
// slide of the document is rendered active (visible).
func (r *Renderer) RenderSlide(slide *enbxdoc.Slide, active bool) *RenderedSlide {
	out := &RenderedSlide{SlideID: slide.ID}

	var sb strings.Builder
	class := "slide"
	if active {
		class += " active"
	}

	if slide.BackgroundID != "" {
		if target, ok := r.Manifest.Resolve(slide.BackgroundID); ok {
			fmt.Fprintf(&sb, `<div class="%s" style="background-image: url('%s');">`,
				class, html.EscapeString(target))
			out.Used = append(out.Used, target)
		} else {
			out.Missing = append(out.Missing, slide.BackgroundID)
			fmt.Fprintf(&sb, `<div class="%s">`, class)
		}
	} else {
		fmt.Fprintf(&sb, `<div class="%s">`, class)
	}
	sb.WriteString("\n")

	for _, elem := range paintOrder(slide.Elements) {
		r.renderElement(&sb, elem, out)
	}

	sb.WriteString("</div>\n")
	out.HTML = sb.String()
	return out
}

// paintOrder sorts elements by z-index, stably, so that equal indices
// keep document order (later-declared elements paint on top).
func paintOrder(elements []model.Element) []model.Element {
	ordered := append([]model.Element(nil), elements...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZIndex() < ordered[j].ZIndex()
	})
	return ordered
}

// renderElement dispatches one element to its variant renderer.
func (r *Renderer) renderElement(sb *strings.Builder, elem model.Element, out *RenderedSlide) {
	switch e := elem.(type) {
	case *model.Text:
		r.renderText(sb, e, out)
	case *model.Image:
		r.renderImage(sb, e, out)
	case *model.Shape:
		r.renderShape(sb, e)
	case *model.Group:
		r.renderGroup(sb, e, out)
	}
}

func (r *Renderer) renderText(sb *strings.Builder, t *model.Text, out *RenderedSlide) {
	style := boxStyle(t.BBox, t.Rotation)

	if t.BackgroundID != "" {
		if target, ok := r.Manifest.Resolve(t.BackgroundID); ok {
			style += fmt.Sprintf(" background-image: url('%s'); background-size: 100%% 100%%;",
				html.EscapeString(target))
			out.Used = append(out.Used, target)
		} else {
			out.Missing = append(out.Missing, t.BackgroundID)
		}
	}

	fmt.Fprintf(sb, `<div class="element" style="%s">`, style)
	fmt.Fprintf(sb, `<div style="display: flex; flex-direction: column; justify-content: %s; height: 100%%;">`,
		t.VAlign.CSS())

	for _, line := range t.Lines {
		fmt.Fprintf(sb, `<div style="text-align: %s; line-height: 1.2;">`, line.Alignment.CSS())
		for _, run := range line.Runs {
			sb.WriteString(renderRun(run))
		}
		sb.WriteString("</div>")
	}

	sb.WriteString("</div></div>\n")
}

func (r *Renderer) renderImage(sb *strings.Builder, img *model.Image, out *RenderedSlide) {
	target, ok := r.Manifest.Resolve(img.ResourceID)
	if !ok {
		out.Missing = append(out.Missing, img.ResourceID)
		fmt.Fprintf(sb, `<div class="element missing-resource" style="%s">%s</div>`+"\n",
			boxStyle(img.BBox, img.Rotation),
			html.EscapeString("missing resource "+img.ResourceID))
		return
	}

	bbox := img.BBox
	if bbox.Width == 0 && bbox.Height == 0 {
		// Element declared no size: fall back to the image's own pixels.
		if w, h, err := r.Manifest.Probe(img.ResourceID); err == nil {
			bbox.Width = float64(w)
			bbox.Height = float64(h)
		}
	}

	alt := img.AltText
	if alt == "" && r.AltText != nil {
		alt = r.AltText(target)
	}

	out.Used = append(out.Used, target)
	fmt.Fprintf(sb, `<div class="element" style="%s"><img src="%s" alt="%s" draggable="false"></div>`+"\n",
		boxStyle(bbox, img.Rotation), html.EscapeString(target), html.EscapeString(alt))
}

func (r *Renderer) renderShape(sb *strings.Builder, s *model.Shape) {
	style := boxStyle(s.BBox, s.Rotation)
	if s.Fill != nil {
		style += " background-color: " + s.Fill.CSS() + ";"
	}
	if s.Stroke != nil {
		width := s.StrokeWidth
		if width <= 0 {
			width = 1
		}
		style += fmt.Sprintf(" border: %spx solid %s;", formatUnit(width), s.Stroke.CSS())
	}
	fmt.Fprintf(sb, `<div class="element" style="%s"></div>`+"\n", style)
}

func (r *Renderer) renderGroup(sb *strings.Builder, g *model.Group, out *RenderedSlide) {
	// The group container carries the offset; children keep their own
	// coordinates relative to the group origin.
	fmt.Fprintf(sb, `<div class="element" style="%s">`+"\n", boxStyle(g.BBox, g.Rotation))
	for _, child := range paintOrder(g.Children) {
		r.renderElement(sb, child, out)
	}
	sb.WriteString("</div>\n")
}

// renderRun emits one styled text span.
func renderRun(run model.TextRun) string {
	var style strings.Builder
	if run.FontSize > 0 {
		fmt.Fprintf(&style, "font-size: %spx; ", formatUnit(run.FontSize))
	}
	if run.FontFamily != "" {
		fmt.Fprintf(&style, "font-family: '%s', sans-serif; ", html.EscapeString(run.FontFamily))
	}
	if run.Color != nil {
		fmt.Fprintf(&style, "color: %s; ", run.Color.CSS())
	}
	if run.Bold {
		style.WriteString("font-weight: bold; ")
	}

	return fmt.Sprintf(`<span style="%s">%s</span>`,
		strings.TrimSuffix(style.String(), " "), html.EscapeString(run.Text))
}

// boxStyle builds the absolute-position style for an element box.
func boxStyle(b model.BBox, rotation float64) string {
	style := fmt.Sprintf("left: %spx; top: %spx; width: %spx; height: %spx;",
		formatUnit(b.X), formatUnit(b.Y), formatUnit(b.Width), formatUnit(b.Height))
	if rotation != 0 {
		style += fmt.Sprintf(" transform: rotate(%sdeg);", formatUnit(rotation))
	}
	return style
}

// formatUnit formats a board unit without trailing zeros (100, 12.5).
func formatUnit(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
