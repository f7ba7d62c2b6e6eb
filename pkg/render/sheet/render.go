package sheet

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/matzehuels/scoresheet/pkg/errors"
	"github.com/matzehuels/scoresheet/pkg/render/sheet/layout"
	"github.com/matzehuels/scoresheet/pkg/render/sheet/link"
	"github.com/matzehuels/scoresheet/pkg/render/sheet/styles"
	"github.com/matzehuels/scoresheet/pkg/score"
)

// MaxPixels bounds the area of the strip and of the final image.
const MaxPixels = 1 << 28

// Metadata text position on the final image.
const (
	metaLeft = 10
	metaTop  = 10
	metaGap  = 12
)

type RenderOption func(*renderer)

type renderer struct {
	style  styles.Style
	noMeta bool
	links  []link.Segment
	logger *log.Logger
}

func WithStyle(s styles.Style) RenderOption { return func(r *renderer) { r.style = s } }
func WithoutMetadata() RenderOption         { return func(r *renderer) { r.noMeta = true } }
func WithLogger(l *log.Logger) RenderOption { return func(r *renderer) { r.logger = l } }

// WithLinks draws the given connectors instead of scanning the document.
func WithLinks(segs []link.Segment) RenderOption {
	return func(r *renderer) { r.links = segs }
}

func newRenderer(opts ...RenderOption) renderer {
	r := renderer{style: styles.Default(nil, nil), logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Render draws doc into a paginated sheet. l must be computed for doc, see
// [layout.ForDocument].
func Render(doc *score.Document, l layout.Layout, opts ...RenderOption) (image.Image, error) {
	r := newRenderer(opts...)
	if r.links == nil {
		r.links = link.Scan(doc.Notes)
	}

	strip, err := r.drawStrip(doc, l)
	if err != nil {
		return nil, err
	}
	return r.composite(strip, doc.MetaData, l)
}

// Strip draws doc as a single unpaginated column.
func Strip(doc *score.Document, l layout.Layout, opts ...RenderOption) (image.Image, error) {
	r := newRenderer(opts...)
	if r.links == nil {
		r.links = link.Scan(doc.Notes)
	}
	return r.drawStrip(doc, l)
}

func (r *renderer) drawStrip(doc *score.Document, l layout.Layout) (image.Image, error) {
	w, h := layout.PixelSize(l.StripWidth()), layout.PixelSize(l.StripHeight())
	if err := checkCanvas("strip", w, h); err != nil {
		return nil, err
	}

	dc := gg.NewContext(w, h)
	drawGrid(dc, l, r.style)

	for _, seg := range r.links {
		line(dc, r.style.Sync,
			l.NotePosition(seg.From.Lane, seg.From.Time),
			l.NotePosition(seg.To.Lane, seg.To.Time))
	}

	p := &painter{dc: dc, layout: l, style: r.style}
	notes := doc.VisibleNotes()
	for _, n := range notes {
		n.Draw(p)
	}
	r.logger.Debug("strip drawn", "width", w, "height", h, "notes", len(notes), "links", len(r.links))
	return dc.Image(), nil
}

func (r *renderer) composite(strip image.Image, meta score.MetaData, l layout.Layout) (image.Image, error) {
	w, h := layout.PixelSize(l.FinalWidth()), layout.PixelSize(l.FinalHeight())
	if err := checkCanvas("sheet", w, h); err != nil {
		return nil, err
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(r.style.Background)
	dc.Clear()

	if !r.noMeta {
		drawMeta(dc, meta, r.style)
	}

	bounds := strip.Bounds()
	for _, win := range l.Windows() {
		// With a margin under the overlap the window reaches past the
		// strip; the clipped rows shift the paste down.
		top := round(win.SourceTop)
		src := image.Rect(bounds.Min.X, top, bounds.Max.X, top+round(win.SourceHeight)).Intersect(bounds)
		if !src.Empty() {
			dc.DrawImage(imaging.Crop(strip, src), round(win.TargetLeft), round(win.TargetTop)+src.Min.Y-top)
		}

		x1, x2 := l.RuleSpan(win)
		if win.BottomRule {
			y := l.FinalHeight() - l.Margin
			line(dc, r.style.Bar, layout.Point{X: x1, Y: y}, layout.Point{X: x2, Y: y})
		}
		if win.TopRule {
			line(dc, r.style.Bar, layout.Point{X: x1, Y: l.Margin}, layout.Point{X: x2, Y: l.Margin})
		}
		r.logger.Debug("column placed", "column", win.Column, "bars", win.Bars(), "first", win.StartBar+1)
	}
	return dc.Image(), nil
}

func drawMeta(dc *gg.Context, meta score.MetaData, st styles.Style) {
	if st.MetaFace != nil {
		dc.SetFontFace(st.MetaFace)
	}
	dc.SetColor(textColor(st))
	dc.DrawStringAnchored(meta.Headline(), metaLeft, metaTop, 0, 1)
	dc.DrawStringAnchored(meta.BPMLine(), metaLeft, dc.FontHeight()+metaGap, 0, 1)
}

func textColor(st styles.Style) color.Color {
	if st.Text == nil {
		return color.White
	}
	return st.Text
}

func checkCanvas(what string, w, h int) error {
	if w <= 0 || h <= 0 {
		return errors.New(errors.ErrCodeLayout, "%s has empty size %dx%d", what, w, h)
	}
	if int64(w)*int64(h) > MaxPixels {
		return errors.New(errors.ErrCodeRenderIO, "%s of %dx%d pixels exceeds the %d pixel limit", what, w, h, MaxPixels)
	}
	return nil
}

func round(v float64) int { return int(math.Round(v)) }
