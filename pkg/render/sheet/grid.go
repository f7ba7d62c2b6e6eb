package sheet

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/matzehuels/scoresheet/pkg/render/sheet/layout"
	"github.com/matzehuels/scoresheet/pkg/render/sheet/styles"
	"github.com/matzehuels/scoresheet/pkg/timing"
)

// beatsPerBar is the number of quarter-bar divisions drawn in each bar.
const beatsPerBar = 4

// drawGrid draws lane lines, bar lines with their numbers, and quarter-bar
// lines onto the strip.
func drawGrid(dc *gg.Context, l layout.Layout, st styles.Style) {
	bottom := timing.New(0, 0, 1)
	top := timing.New(l.NumberOfBars, 0, 1)
	for lane := 0; lane < layout.GridLines; lane++ {
		stroke := st.Track
		if lane == 0 || lane == layout.GridLines-1 {
			stroke = st.Bar
		}
		line(dc, stroke, l.GridPosition(lane, bottom), l.GridPosition(lane, top))
	}

	if st.BarNumberFace != nil {
		dc.SetFontFace(st.BarNumberFace)
	}
	for bar := 0; bar <= l.NumberOfBars; bar++ {
		at := timing.New(bar, 0, 1)
		left := l.GridPosition(0, at)
		line(dc, st.Bar, left, l.GridPosition(layout.GridLines-1, at))

		dc.SetColor(textColor(st))
		dc.DrawStringAnchored(fmt.Sprintf("%03d", bar+1), left.X-2, left.Y, 1, 0.5)

		if bar == l.NumberOfBars {
			continue
		}
		for beat := 1; beat < beatsPerBar; beat++ {
			sub := timing.New(bar, beat, beatsPerBar)
			line(dc, st.SubBar, l.GridPosition(0, sub), l.GridPosition(layout.GridLines-1, sub))
		}
	}
}
