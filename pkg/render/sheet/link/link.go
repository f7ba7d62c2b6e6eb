// Package link finds the connector lines drawn between notes.
//
// Two kinds of connectors exist. Simultaneous links join adjacent visible
// notes that start at the same moment. Continuation links join a slide's
// end to the note that picks it up: a tap on the slide's last beat, a
// slide starting where it ends, or a second slide ending together with it.
//
// [Scanner] makes one forward pass over the visible notes in chart order
// and tracks at most one open slide at a time. A longer concurrent slide
// replaces the open one without drawing anything, so the replaced slide's
// own end is never linked.
package link

import (
	"github.com/matzehuels/scoresheet/pkg/score"
	"github.com/matzehuels/scoresheet/pkg/timing"
)

// Anchor is a lane and timing on the sheet.
type Anchor struct {
	Lane int
	Time timing.Timing
}

// Segment is a connector line between two anchors.
type Segment struct {
	From, To Anchor
}

// Reason tells why a segment was emitted.
type Reason int

const (
	// Simultaneous joins two notes starting at the same moment.
	Simultaneous Reason = iota
	// TapClose joins a tap on a slide's end to that end.
	TapClose
	// Chain joins a slide starting where the open slide ends.
	Chain
	// JointEnd joins two slides ending at the same moment.
	JointEnd
)

// Link is a segment together with the rule that produced it.
type Link struct {
	Segment
	Reason Reason
}

// State is the scanner's continuation state.
type State struct {
	slide *score.Slide
}

// Idle reports whether no slide is open.
func (s State) Idle() bool { return s.slide == nil }

// Slide returns the open slide and true, or nil and false when idle.
func (s State) Slide() (*score.Slide, bool) { return s.slide, s.slide != nil }

func idle() State                   { return State{} }
func tracking(s *score.Slide) State { return State{slide: s} }

// Scanner accumulates links over visible notes in chart order.
type Scanner struct {
	state State
	links []Link
}

// State returns the current continuation state.
func (sc *Scanner) State() State { return sc.state }

// Links returns the links found so far in emission order.
func (sc *Scanner) Links() []Link { return sc.links }

// Run scans notes, which must be visible notes in chart order.
func (sc *Scanner) Run(notes []score.Note) {
	for i, curr := range notes {
		if i+1 < len(notes) {
			sc.simultaneous(curr, notes[i+1])
		}
		sc.advance(curr)
	}
}

func (sc *Scanner) simultaneous(curr, next score.Note) {
	if !curr.Start().Equal(next.Start()) {
		return
	}
	sc.emit(Simultaneous,
		Anchor{Lane: curr.Attributes().Lane, Time: curr.Start()},
		Anchor{Lane: next.Attributes().Lane, Time: next.Start()})
}

func (sc *Scanner) advance(curr score.Note) {
	active, open := sc.state.Slide()
	if !open {
		if s, ok := curr.(*score.Slide); ok {
			sc.state = tracking(s)
		}
		return
	}

	activeEnd := Anchor{Lane: active.LastLane(), Time: active.End()}

	switch n := curr.(type) {
	case *score.Tap:
		if n.Time.Equal(active.End()) {
			sc.emit(TapClose, Anchor{Lane: n.Lane, Time: n.Start()}, activeEnd)
			sc.state = idle()
		}
	case *score.Slide:
		if n.Start().Equal(active.End()) {
			sc.emit(Chain, Anchor{Lane: n.Lane, Time: n.Start()}, activeEnd)
			sc.state = tracking(n)
			return
		}
		switch c := n.End().Compare(active.End()); {
		case c == 0:
			sc.emit(JointEnd, Anchor{Lane: n.LastLane(), Time: n.End()}, activeEnd)
			sc.state = idle()
		case c > 0:
			sc.state = tracking(n)
		}
	}
}

func (sc *Scanner) emit(r Reason, from, to Anchor) {
	sc.links = append(sc.links, Link{Segment: Segment{From: from, To: to}, Reason: r})
}

// Scan returns the connector segments for the visible notes of notes,
// which must be in chart order. Invisible notes are dropped before
// scanning.
func Scan(notes []score.Note) []Segment {
	visible := make([]score.Note, 0, len(notes))
	for _, n := range notes {
		if n.Visible() {
			visible = append(visible, n)
		}
	}
	var sc Scanner
	sc.Run(visible)
	segments := make([]Segment, len(sc.links))
	for i, l := range sc.links {
		segments[i] = l.Segment
	}
	return segments
}
