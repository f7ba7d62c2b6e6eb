// Package score defines the chart model rendered onto a score sheet.
//
// # Notes
//
// A chart is a sequence of notes. The variant set is closed:
//
//   - [Tap]: a single hit at one lane and time
//   - [Slide]: a held note following an ordered list of [Tick] waypoints
//   - [Special]: an invisible timing command, skipped by every visible pass
//
// Every variant implements [Note], which exposes visibility, start and end
// timings, and a draw contract expressed against [Painter]. Notes never
// compute pixel positions themselves; the renderer's painter maps lanes and
// timings to the canvas.
//
// # Documents
//
// A [Document] pairs [MetaData] with notes in chart order. Chart order is
// time-ascending by construction of the input and is never re-sorted.
//
//	doc := &score.Document{Notes: []score.Note{
//	    &score.Tap{Attrs: score.Attrs{Lane: 3, Time: timing.New(0, 0, 1)}},
//	}}
//	last, err := doc.LastEnd() // EMPTY_SCORE when there are no notes
package score
