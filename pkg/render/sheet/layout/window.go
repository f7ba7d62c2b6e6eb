package layout

// Window maps one column of the final image to the strip rectangle it
// shows. Source coordinates are strip pixels, target coordinates are
// final-image pixels.
type Window struct {
	Column int

	// StartBar and EndBar delimit the bars shown, EndBar exclusive.
	StartBar, EndBar int

	SourceTop, SourceHeight float64
	TargetLeft, TargetTop   float64

	// BottomRule is set when bars precede this column; a rule marks the
	// cut at the column's bottom edge.
	BottomRule bool
	// TopRule is set when bars follow this column; a rule marks the cut
	// at the column's top edge.
	TopRule bool
}

// Bars returns the number of bars shown in w.
func (w Window) Bars() int { return w.EndBar - w.StartBar }

// Overlap is the strip height shown above and below each column beyond
// its own bars.
func (l Layout) Overlap() float64 { return l.BarHeight / 8 }

// Windows returns the pagination of the strip, one window per column,
// left to right.
func (l Layout) Windows() []Window {
	windows := make([]Window, 0, l.Columns())
	col := 0
	for start := 0; start < l.NumberOfBars; start += l.BarsPerColumn {
		end := min(start+l.BarsPerColumn, l.NumberOfBars)
		bars := end - start
		windows = append(windows, Window{
			Column:       col,
			StartBar:     start,
			EndBar:       end,
			SourceTop:    l.StripHeight() - l.Margin - float64(end)*l.BarHeight - l.Overlap(),
			SourceHeight: float64(bars)*l.BarHeight + 2*l.Overlap(),
			TargetLeft:   float64(col) * l.ColumnWidth(),
			TargetTop:    l.Margin + float64(l.ColumnBars()-bars)*l.BarHeight,
			BottomRule:   start > 0,
			TopRule:      end < l.NumberOfBars,
		})
		col++
	}
	return windows
}

// RuleSpan returns the horizontal extent of the divider rules of w on the
// final image.
func (l Layout) RuleSpan(w Window) (x1, x2 float64) {
	return w.TargetLeft + l.Margin - l.LaneSpacing/2, w.TargetLeft + l.ColumnWidth() + l.LaneSpacing/2
}
