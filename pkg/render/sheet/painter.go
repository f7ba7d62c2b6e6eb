package sheet

import (
	"github.com/fogleman/gg"

	"github.com/matzehuels/scoresheet/pkg/render/sheet/layout"
	"github.com/matzehuels/scoresheet/pkg/render/sheet/styles"
	"github.com/matzehuels/scoresheet/pkg/score"
	"github.com/matzehuels/scoresheet/pkg/timing"
)

// painter draws note glyphs onto the strip canvas.
type painter struct {
	dc     *gg.Context
	layout layout.Layout
	style  styles.Style
}

var _ score.Painter = (*painter)(nil)

func (p *painter) Note(lane int, t timing.Timing, fill score.Fill) {
	p.glyph(p.layout.NotePosition(lane, t), fill, false)
}

func (p *painter) Marker(lane int, t timing.Timing, fill score.Fill) {
	p.glyph(p.layout.NotePosition(lane, t), fill, true)
}

func (p *painter) glyph(c layout.Point, fill score.Fill, rectOnly bool) {
	dc, s := p.dc, p.layout.Settings
	dc.SetColor(p.style.FillColor(fill))
	dc.SetLineWidth(s.NoteOuterWidth)

	if !rectOnly {
		dc.DrawCircle(c.X, c.Y, s.InnerRadius())
		dc.Fill()
		dc.DrawCircle(c.X, c.Y, s.NoteRadius)
		dc.Stroke()
	}

	w, h := s.NoteRectWidth(), s.NoteRectHeight()
	dc.DrawRectangle(c.X-w/2, c.Y-h/2, w, h)
	dc.Stroke()
}

func (p *painter) Flick(lane int, t timing.Timing) {
	dc, s := p.dc, p.layout.Settings
	c := p.layout.NotePosition(lane, t)
	dc.SetColor(p.style.Flick)
	dc.SetLineWidth(s.NoteOuterWidth)

	diamond(dc, c, s.NoteRadius)
	dc.Stroke()
	diamond(dc, c, s.InnerRadius())
	dc.Fill()
}

func (p *painter) SlidePath(from, to score.Tick) {
	dc, r := p.dc, p.layout.NoteRadius
	c1 := p.layout.NotePosition(from.Lane, from.Time)
	c2 := p.layout.NotePosition(to.Lane, to.Time)

	dc.SetColor(p.style.SlidePath)
	dc.NewSubPath()
	dc.MoveTo(c1.X-r, c1.Y)
	dc.LineTo(c2.X-r, c2.Y)
	dc.LineTo(c2.X+r, c2.Y)
	dc.LineTo(c1.X+r, c1.Y)
	dc.ClosePath()
	dc.Fill()
}

func diamond(dc *gg.Context, c layout.Point, r float64) {
	dc.NewSubPath()
	dc.MoveTo(c.X, c.Y-r)
	dc.LineTo(c.X-r, c.Y)
	dc.LineTo(c.X, c.Y+r)
	dc.LineTo(c.X+r, c.Y)
	dc.ClosePath()
}

func line(dc *gg.Context, s styles.Stroke, a, b layout.Point) {
	dc.SetColor(s.Color)
	dc.SetLineWidth(s.Width)
	dc.DrawLine(a.X, a.Y, b.X, b.Y)
	dc.Stroke()
}
