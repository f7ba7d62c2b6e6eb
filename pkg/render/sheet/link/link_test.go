package link

import (
	"reflect"
	"testing"

	"github.com/matzehuels/scoresheet/pkg/score"
	"github.com/matzehuels/scoresheet/pkg/timing"
)

func at(bar, beat, den int) timing.Timing { return timing.New(bar, beat, den) }

func tap(lane int, t timing.Timing) *score.Tap {
	return &score.Tap{Attrs: score.Attrs{Lane: lane, Time: t}}
}

func slide(ticks ...score.Tick) *score.Slide {
	return &score.Slide{Attrs: score.Attrs{Lane: ticks[0].Lane, Time: ticks[0].Time}, Ticks: ticks}
}

func tk(lane int, t timing.Timing) score.Tick { return score.Tick{Lane: lane, Time: t} }

func run(notes ...score.Note) *Scanner {
	var sc Scanner
	sc.Run(notes)
	return &sc
}

func TestSimultaneousTaps(t *testing.T) {
	sc := run(tap(1, at(0, 1, 2)), tap(5, at(0, 2, 4)))

	want := []Link{{
		Segment: Segment{From: Anchor{1, at(0, 1, 2)}, To: Anchor{5, at(0, 2, 4)}},
		Reason:  Simultaneous,
	}}
	if !reflect.DeepEqual(sc.Links(), want) {
		t.Errorf("Links() = %+v, want %+v", sc.Links(), want)
	}
	if !sc.State().Idle() {
		t.Error("taps alone must not open a slide")
	}
}

func TestNonAdjacentSimultaneousNotLinked(t *testing.T) {
	sc := run(tap(1, at(0, 0, 1)), tap(2, at(0, 1, 4)), tap(3, at(0, 0, 1)))
	if len(sc.Links()) != 0 {
		t.Errorf("Links() = %+v, want none", sc.Links())
	}
}

func TestSlideClosedByTap(t *testing.T) {
	s := slide(tk(2, at(0, 0, 1)), tk(4, at(0, 1, 2)))
	sc := run(s, tap(6, at(0, 2, 4)))

	want := []Link{{
		Segment: Segment{From: Anchor{6, at(0, 2, 4)}, To: Anchor{4, at(0, 1, 2)}},
		Reason:  TapClose,
	}}
	if !reflect.DeepEqual(sc.Links(), want) {
		t.Errorf("Links() = %+v, want %+v", sc.Links(), want)
	}
	if !sc.State().Idle() {
		t.Error("closing tap must leave no open slide")
	}
}

func TestUnrelatedTapKeepsSlideOpen(t *testing.T) {
	s := slide(tk(2, at(0, 0, 1)), tk(4, at(1, 0, 1)))
	sc := run(s, tap(6, at(0, 1, 2)))

	if len(sc.Links()) != 0 {
		t.Errorf("Links() = %+v, want none", sc.Links())
	}
	if got, ok := sc.State().Slide(); !ok || got != s {
		t.Errorf("State().Slide() = %v, %v; want the open slide", got, ok)
	}
}

func TestSlidesEndingTogether(t *testing.T) {
	a := slide(tk(0, at(0, 0, 1)), tk(1, at(2, 0, 1)))
	b := slide(tk(6, at(0, 1, 4)), tk(5, at(2, 0, 4)))
	sc := run(a, b)

	want := []Link{{
		Segment: Segment{From: Anchor{5, at(2, 0, 4)}, To: Anchor{1, at(2, 0, 1)}},
		Reason:  JointEnd,
	}}
	if !reflect.DeepEqual(sc.Links(), want) {
		t.Errorf("Links() = %+v, want %+v", sc.Links(), want)
	}
	if !sc.State().Idle() {
		t.Error("joint end must leave no open slide")
	}
}

func TestChainedSlides(t *testing.T) {
	a := slide(tk(0, at(0, 0, 1)), tk(2, at(0, 1, 2)))
	b := slide(tk(3, at(0, 1, 2)), tk(5, at(1, 0, 1)))
	c := tap(5, at(1, 0, 1))
	sc := run(a, b, c)

	want := []Link{
		{Segment: Segment{From: Anchor{3, at(0, 1, 2)}, To: Anchor{2, at(0, 1, 2)}}, Reason: Chain},
		{Segment: Segment{From: Anchor{5, at(1, 0, 1)}, To: Anchor{5, at(1, 0, 1)}}, Reason: TapClose},
	}
	if !reflect.DeepEqual(sc.Links(), want) {
		t.Errorf("Links() = %+v, want %+v", sc.Links(), want)
	}
	if !sc.State().Idle() {
		t.Error("chain closed by tap must end idle")
	}
}

func TestLongerSlideSupersedes(t *testing.T) {
	a := slide(tk(0, at(0, 0, 1)), tk(1, at(1, 0, 1)))
	b := slide(tk(6, at(0, 1, 4)), tk(6, at(2, 0, 1)))
	sc := run(a, b, tap(1, at(1, 0, 1)))

	if len(sc.Links()) != 0 {
		t.Errorf("Links() = %+v, want none: the superseded slide's end is not linked", sc.Links())
	}
	if got, _ := sc.State().Slide(); got != b {
		t.Error("longer slide should be the open slide")
	}
}

func TestShorterSlideIgnored(t *testing.T) {
	a := slide(tk(0, at(0, 0, 1)), tk(1, at(2, 0, 1)))
	b := slide(tk(6, at(0, 1, 4)), tk(6, at(1, 0, 1)))
	sc := run(a, b)

	if len(sc.Links()) != 0 {
		t.Errorf("Links() = %+v, want none", sc.Links())
	}
	if got, _ := sc.State().Slide(); got != a {
		t.Error("shorter slide must not replace the open slide")
	}
}

func TestSimultaneousIndependentOfState(t *testing.T) {
	s := slide(tk(1, at(0, 0, 1)), tk(1, at(0, 1, 2)))
	sc := run(s, tap(4, at(0, 0, 1)), tap(1, at(0, 1, 2)))

	want := []Link{
		{Segment: Segment{From: Anchor{1, at(0, 0, 1)}, To: Anchor{4, at(0, 0, 1)}}, Reason: Simultaneous},
		{Segment: Segment{From: Anchor{1, at(0, 1, 2)}, To: Anchor{1, at(0, 1, 2)}}, Reason: TapClose},
	}
	if !reflect.DeepEqual(sc.Links(), want) {
		t.Errorf("Links() = %+v, want %+v", sc.Links(), want)
	}
}

func TestScanSkipsInvisible(t *testing.T) {
	notes := []score.Note{
		tap(2, at(0, 0, 1)),
		&score.Special{Attrs: score.Attrs{Time: at(0, 0, 1)}, Command: "bpm"},
		tap(3, at(0, 0, 1)),
	}
	got := Scan(notes)
	want := []Segment{{From: Anchor{2, at(0, 0, 1)}, To: Anchor{3, at(0, 0, 1)}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan() = %+v, want %+v", got, want)
	}
}

func TestScanEmpty(t *testing.T) {
	if got := Scan(nil); len(got) != 0 {
		t.Errorf("Scan(nil) = %+v, want none", got)
	}
}
