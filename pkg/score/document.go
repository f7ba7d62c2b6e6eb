package score

import (
	"strconv"
	"strings"

	"github.com/matzehuels/scoresheet/pkg/errors"
	"github.com/matzehuels/scoresheet/pkg/timing"
)

// MetaData is the display-only header of a chart.
type MetaData struct {
	Title      string  `json:"title"`
	Difficulty string  `json:"difficulty"`
	Level      int     `json:"level"`
	Combo      int     `json:"combo"`
	Bpm        float64 `json:"bpm"`
}

// Headline returns the first metadata line printed on a sheet,
// e.g. "Song [EXPERT] ★26 Combo 901".
func (m MetaData) Headline() string {
	return m.Title + " [" + strings.ToUpper(m.Difficulty) + "] ★" +
		strconv.Itoa(m.Level) + " Combo " + strconv.Itoa(m.Combo)
}

// BPMLine returns the second metadata line, e.g. "BPM 180".
func (m MetaData) BPMLine() string {
	return "BPM " + strconv.FormatFloat(m.Bpm, 'f', -1, 64)
}

// Document is a chart ready for rendering: metadata plus notes in chart
// order. It is built once by the ingestion layer and never modified.
type Document struct {
	MetaData MetaData
	Notes    []Note
}

// VisibleNotes returns the visible notes in chart order.
func (d *Document) VisibleNotes() []Note {
	visible := make([]Note, 0, len(d.Notes))
	for _, n := range d.Notes {
		if n.Visible() {
			visible = append(visible, n)
		}
	}
	return visible
}

// LastEnd returns the latest end timing over all notes, visible or not.
func (d *Document) LastEnd() (timing.Timing, error) {
	if len(d.Notes) == 0 {
		return timing.Timing{}, errors.New(errors.ErrCodeEmptyScore, "document has no notes")
	}
	last := d.Notes[0].End()
	for _, n := range d.Notes[1:] {
		if end := n.End(); last.Less(end) {
			last = end
		}
	}
	return last, nil
}

// Stats summarizes the notes of a document.
type Stats struct {
	Taps, Slides, Specials int
	Flicks, Skills         int
	Ticks                  int
}

// Stats counts notes per variant. Flicks and skills are counted over
// visible notes only.
func (d *Document) Stats() Stats {
	var s Stats
	for _, n := range d.Notes {
		switch n := n.(type) {
		case *Tap:
			s.Taps++
		case *Slide:
			s.Slides++
			s.Ticks += len(n.Ticks)
		case *Special:
			s.Specials++
			continue
		}
		a := n.Attributes()
		if a.IsFlick {
			s.Flicks++
		}
		if a.IsSkill {
			s.Skills++
		}
	}
	return s
}
