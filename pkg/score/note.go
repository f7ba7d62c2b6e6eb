package score

import (
	"fmt"

	"github.com/matzehuels/scoresheet/pkg/timing"
)

// MaxLane is the highest lane index a note may occupy.
const MaxLane = 7

// Kind identifies a note variant.
type Kind int

const (
	KindTap Kind = iota
	KindSlide
	KindSpecial
)

func (k Kind) String() string {
	switch k {
	case KindTap:
		return "tap"
	case KindSlide:
		return "slide"
	case KindSpecial:
		return "special"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Fill selects the color a glyph is filled with.
type Fill int

const (
	FillTap Fill = iota
	FillSkill
	FillSlide
)

// Painter draws note glyphs anchored at a lane and a timing.
// The renderer implements it; notes only decide which glyphs to draw.
type Painter interface {
	// Note draws the full note glyph: filled inner circle, outer ring
	// and the horizontal note rectangle.
	Note(lane int, t timing.Timing, fill Fill)
	// Marker draws only the note rectangle.
	Marker(lane int, t timing.Timing, fill Fill)
	// Flick draws a diamond outline with a filled inner diamond.
	Flick(lane int, t timing.Timing)
	// SlidePath fills the trapezoid joining the rectangles of two ticks.
	SlidePath(from, to Tick)
}

// Attrs holds the fields every note variant shares.
type Attrs struct {
	IsFlick bool          `json:"is_flick"`
	IsSkill bool          `json:"is_skill"`
	Lane    int           `json:"track_idx"`
	Time    timing.Timing `json:"time"`
}

// Attributes returns the shared note fields.
func (a Attrs) Attributes() Attrs { return a }

// Note is one of [Tap], [Slide] or [Special].
type Note interface {
	Kind() Kind
	Attributes() Attrs
	// Visible reports whether the note is drawn and takes part in linking.
	Visible() bool
	Start() timing.Timing
	End() timing.Timing
	Draw(p Painter)
	// Validate reports a note that cannot be placed on a sheet.
	Validate() error
}

// Tap is a single hit.
type Tap struct {
	Attrs
}

func (n *Tap) Kind() Kind           { return KindTap }
func (n *Tap) Visible() bool        { return true }
func (n *Tap) Start() timing.Timing { return n.Time }
func (n *Tap) End() timing.Timing   { return n.Time }
func (n *Tap) Validate() error      { return validateAnchor(n.Lane, n.Time) }
func (n *Tap) Draw(p Painter)       { drawHead(p, n.Lane, n.Time, n.IsFlick, tapFill(n.IsSkill)) }

// Tick is one waypoint of a slide.
type Tick struct {
	Lane int           `json:"track_idx"`
	Time timing.Timing `json:"time"`
}

// Slide is a held note following its ticks. Ticks are strictly
// increasing in time and never empty once validated.
type Slide struct {
	Attrs
	Ticks []Tick `json:"ticks"`
}

func (n *Slide) Kind() Kind    { return KindSlide }
func (n *Slide) Visible() bool { return true }

// Start returns the time of the first tick.
func (n *Slide) Start() timing.Timing {
	if len(n.Ticks) == 0 {
		return n.Time
	}
	return n.Ticks[0].Time
}

// End returns the time of the last tick.
func (n *Slide) End() timing.Timing {
	if len(n.Ticks) == 0 {
		return n.Time
	}
	return n.Ticks[len(n.Ticks)-1].Time
}

// LastLane returns the lane of the last tick.
func (n *Slide) LastLane() int {
	if len(n.Ticks) == 0 {
		return n.Lane
	}
	return n.Ticks[len(n.Ticks)-1].Lane
}

func (n *Slide) Validate() error {
	if len(n.Ticks) == 0 {
		return fmt.Errorf("slide has no ticks")
	}
	if err := validateAnchor(n.Lane, n.Time); err != nil {
		return err
	}
	for i, tick := range n.Ticks {
		if err := validateAnchor(tick.Lane, tick.Time); err != nil {
			return fmt.Errorf("tick %d: %w", i, err)
		}
		if i > 0 && !n.Ticks[i-1].Time.Less(tick.Time) {
			return fmt.Errorf("tick %d at %v does not follow %v", i, tick.Time, n.Ticks[i-1].Time)
		}
	}
	return nil
}

// Draw fills the path between consecutive ticks, marks every tick but
// the last, and finishes with a head glyph at the last tick.
func (n *Slide) Draw(p Painter) {
	if len(n.Ticks) == 0 {
		return
	}
	for i := 0; i < len(n.Ticks)-1; i++ {
		p.SlidePath(n.Ticks[i], n.Ticks[i+1])
	}
	for i, tick := range n.Ticks[:len(n.Ticks)-1] {
		if i == 0 {
			fill := FillSlide
			if n.IsSkill {
				fill = FillSkill
			}
			p.Note(tick.Lane, tick.Time, fill)
			continue
		}
		p.Marker(tick.Lane, tick.Time, FillSlide)
	}
	last := n.Ticks[len(n.Ticks)-1]
	drawHead(p, last.Lane, last.Time, n.IsFlick, FillSlide)
}

// Special carries a timing command (BPM change and the like) that was
// consumed upstream. It is never drawn and never linked.
type Special struct {
	Attrs
	Command string `json:"command"`
}

func (n *Special) Kind() Kind           { return KindSpecial }
func (n *Special) Visible() bool        { return false }
func (n *Special) Start() timing.Timing { return n.Time }
func (n *Special) End() timing.Timing   { return n.Time }
func (n *Special) Draw(Painter)         {}
func (n *Special) Validate() error      { return n.Time.Validate() }

func tapFill(skill bool) Fill {
	if skill {
		return FillSkill
	}
	return FillTap
}

func drawHead(p Painter, lane int, t timing.Timing, flick bool, fill Fill) {
	if flick {
		p.Flick(lane, t)
		return
	}
	p.Note(lane, t, fill)
}

func validateAnchor(lane int, t timing.Timing) error {
	if lane < 0 || lane > MaxLane {
		return fmt.Errorf("lane %d outside 0..%d", lane, MaxLane)
	}
	return t.Validate()
}

var (
	_ Note = (*Tap)(nil)
	_ Note = (*Slide)(nil)
	_ Note = (*Special)(nil)
)
