// Package styles defines the colors, strokes and faces a sheet is drawn
// with. A [Style] is built once per render and passed by value to every
// drawing call; nothing in it is mutated while drawing.
package styles

import (
	"image/color"

	"golang.org/x/image/font"

	"github.com/matzehuels/scoresheet/pkg/score"
)

// Stroke is a line color and width.
type Stroke struct {
	Color color.Color
	Width float64
}

// Style holds every drawing resource of a sheet.
type Style struct {
	Background color.Color
	Text       color.Color

	Track  Stroke // inner lane lines
	Bar    Stroke // outer lane lines, bar lines, column rules
	SubBar Stroke // quarter-bar lines
	Sync   Stroke // connector lines

	Tap       color.Color
	Skill     color.Color
	Slide     color.Color
	Flick     color.Color
	SlidePath color.Color

	MetaFace      font.Face
	BarNumberFace font.Face
}

var (
	colorBackground = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	colorWhite      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorTrack      = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	colorSubBar     = color.NRGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}
	colorSync       = color.NRGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff} // sky blue
	colorGold       = color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	colorGreen      = color.NRGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
	colorDeepPink   = color.NRGBA{R: 0xff, G: 0x14, B: 0x93, A: 0xff}
	colorPath       = color.NRGBA{R: 0x00, G: 0x80, B: 0x00, A: 60}
)

// Default returns the standard dark sheet style using the given faces.
func Default(meta, barNumber font.Face) Style {
	return Style{
		Background: colorBackground,
		Text:       colorWhite,

		Track:  Stroke{Color: colorTrack, Width: 1},
		Bar:    Stroke{Color: colorWhite, Width: 2},
		SubBar: Stroke{Color: colorSubBar, Width: 1},
		Sync:   Stroke{Color: colorSync, Width: 3},

		Tap:       colorWhite,
		Skill:     colorGold,
		Slide:     colorGreen,
		Flick:     colorDeepPink,
		SlidePath: colorPath,

		MetaFace:      meta,
		BarNumberFace: barNumber,
	}
}

// FillColor returns the color for a note fill.
func (s Style) FillColor(f score.Fill) color.Color {
	switch f {
	case score.FillSkill:
		return s.Skill
	case score.FillSlide:
		return s.Slide
	}
	return s.Tap
}
