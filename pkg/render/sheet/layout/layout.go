// Package layout computes score sheet geometry.
//
// Bars are laid out bottom-to-top in one tall strip: bar 0 sits at the
// bottom and time increases upward. The strip is then cut into columns of
// [Settings.BarsPerColumn] bars that are placed left-to-right on the final
// image. Everything here is pure arithmetic over [Settings] and the number
// of bars; no drawing happens in this package.
package layout

import (
	"math"

	"github.com/matzehuels/scoresheet/pkg/errors"
	"github.com/matzehuels/scoresheet/pkg/score"
	"github.com/matzehuels/scoresheet/pkg/timing"
)

// Lanes is the number of note columns on the sheet. The grid has one more
// line than there are lanes, so gridlines sit between note columns.
const Lanes = 7

// GridLines is the number of vertical lane lines drawn on the strip.
const GridLines = Lanes + 1

// Settings holds the base constants every dimension is derived from.
// All lengths are in pixels.
type Settings struct {
	LaneSpacing    float64 `toml:"lane_spacing"`
	NoteRadius     float64 `toml:"note_radius"`
	BarHeight      float64 `toml:"bar_height"`
	Margin         float64 `toml:"margin"`
	BarsPerColumn  int     `toml:"bars_per_column"`
	NoteOuterWidth float64 `toml:"note_outer_width"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		LaneSpacing:    48,
		NoteRadius:     20,
		BarHeight:      600,
		Margin:         100,
		BarsPerColumn:  4,
		NoteOuterWidth: 2,
	}
}

// Validate rejects settings that cannot produce a sheet.
func (s Settings) Validate() error {
	switch {
	case s.LaneSpacing <= 0:
		return errors.New(errors.ErrCodeLayout, "lane spacing must be positive, got %v", s.LaneSpacing)
	case s.NoteRadius <= 0:
		return errors.New(errors.ErrCodeLayout, "note radius must be positive, got %v", s.NoteRadius)
	case s.BarHeight <= 0:
		return errors.New(errors.ErrCodeLayout, "bar height must be positive, got %v", s.BarHeight)
	case s.Margin < 0:
		return errors.New(errors.ErrCodeLayout, "margin must not be negative, got %v", s.Margin)
	case s.BarsPerColumn <= 0:
		return errors.New(errors.ErrCodeLayout, "bars per column must be positive, got %d", s.BarsPerColumn)
	case s.NoteOuterWidth <= 0:
		return errors.New(errors.ErrCodeLayout, "note outline width must be positive, got %v", s.NoteOuterWidth)
	}
	return nil
}

// InnerRadius is the radius of the filled disc inside a note ring.
func (s Settings) InnerRadius() float64 { return s.NoteRadius * 0.8 }

// NoteRectWidth is the width of the horizontal bar through a note.
func (s Settings) NoteRectWidth() float64 { return s.NoteRadius*2 + 6 }

// NoteRectHeight is the height of the horizontal bar through a note.
func (s Settings) NoteRectHeight() float64 { return s.NoteRadius * 0.2 }

// Point is a canvas position in pixels, y growing downward.
type Point struct {
	X, Y float64
}

// Layout is the geometry of one sheet.
type Layout struct {
	Settings
	NumberOfBars int
}

// New returns the layout for a sheet of numberOfBars bars.
func New(s Settings, numberOfBars int) (Layout, error) {
	if err := s.Validate(); err != nil {
		return Layout{}, err
	}
	if numberOfBars < 1 {
		return Layout{}, errors.New(errors.ErrCodeLayout, "sheet needs at least one bar, got %d", numberOfBars)
	}
	return Layout{Settings: s, NumberOfBars: numberOfBars}, nil
}

// ForDocument sizes the sheet to the latest note end of doc.
func ForDocument(s Settings, doc *score.Document) (Layout, error) {
	last, err := doc.LastEnd()
	if err != nil {
		return Layout{}, err
	}
	return New(s, last.Bar+1)
}

// NotePosition returns where a note at lane and t is centered.
func (l Layout) NotePosition(lane int, t timing.Timing) Point {
	x := l.Margin + l.LaneSpacing*float64(lane)
	y := l.StripHeight() - (l.Margin + l.BarHeight*float64(t.Bar) + l.BarHeight*t.Fraction())
	return Point{X: x, Y: y}
}

// GridPosition returns the lane line position left of lane at t.
func (l Layout) GridPosition(lane int, t timing.Timing) Point {
	p := l.NotePosition(lane, t)
	p.X -= l.LaneSpacing / 2
	return p
}

// StripWidth is the width of the full-height strip.
func (l Layout) StripWidth() float64 {
	return l.Margin*2 + l.LaneSpacing*float64(Lanes-1)
}

// StripHeight is the height of the full-height strip.
func (l Layout) StripHeight() float64 {
	return l.Margin*2 + l.BarHeight*float64(l.NumberOfBars)
}

// Columns is the number of columns on the final image.
func (l Layout) Columns() int {
	return (l.NumberOfBars + l.BarsPerColumn - 1) / l.BarsPerColumn
}

// ColumnWidth is the horizontal advance from one column to the next.
// Neighbouring columns share one margin.
func (l Layout) ColumnWidth() float64 {
	return l.StripWidth() - l.Margin
}

// ColumnBars is the bar count of the tallest column.
func (l Layout) ColumnBars() int {
	return min(l.NumberOfBars, l.BarsPerColumn)
}

// FinalWidth is the width of the composited image.
func (l Layout) FinalWidth() float64 {
	return l.ColumnWidth()*float64(l.Columns()) + l.Margin
}

// FinalHeight is the height of the composited image. The extra quarter bar
// holds the eighth-bar overlap shown above and below every column.
func (l Layout) FinalHeight() float64 {
	return l.Margin*2 + l.BarHeight*(float64(l.ColumnBars())+0.25)
}

// PixelSize rounds a float dimension up to whole pixels.
func PixelSize(v float64) int {
	return int(math.Ceil(v))
}
