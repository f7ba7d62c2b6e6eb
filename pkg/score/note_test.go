package score

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/matzehuels/scoresheet/pkg/timing"
)

// recorder is a Painter that records every call as a string.
type recorder struct {
	calls []string
}

func (r *recorder) Note(lane int, t timing.Timing, fill Fill) {
	r.calls = append(r.calls, fmt.Sprintf("note %d %v %d", lane, t, fill))
}

func (r *recorder) Marker(lane int, t timing.Timing, fill Fill) {
	r.calls = append(r.calls, fmt.Sprintf("marker %d %v %d", lane, t, fill))
}

func (r *recorder) Flick(lane int, t timing.Timing) {
	r.calls = append(r.calls, fmt.Sprintf("flick %d %v", lane, t))
}

func (r *recorder) SlidePath(from, to Tick) {
	r.calls = append(r.calls, fmt.Sprintf("path %d %v -> %d %v", from.Lane, from.Time, to.Lane, to.Time))
}

func tick(lane, bar, beat, den int) Tick {
	return Tick{Lane: lane, Time: timing.New(bar, beat, den)}
}

func TestTapDraw(t *testing.T) {
	at := timing.New(1, 1, 4)
	tests := []struct {
		name string
		tap  Tap
		want []string
	}{
		{"plain", Tap{Attrs{Lane: 2, Time: at}}, []string{"note 2 1:1/4 0"}},
		{"skill", Tap{Attrs{IsSkill: true, Lane: 2, Time: at}}, []string{"note 2 1:1/4 1"}},
		{"flick", Tap{Attrs{IsFlick: true, Lane: 5, Time: at}}, []string{"flick 5 1:1/4"}},
		{"flick wins over skill", Tap{Attrs{IsFlick: true, IsSkill: true, Lane: 0, Time: at}}, []string{"flick 0 1:1/4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			tt.tap.Draw(&r)
			if !reflect.DeepEqual(r.calls, tt.want) {
				t.Errorf("Draw() calls = %v, want %v", r.calls, tt.want)
			}
		})
	}
}

func TestSlideDraw(t *testing.T) {
	ticks := []Tick{tick(1, 0, 0, 1), tick(2, 0, 1, 2), tick(4, 1, 0, 1)}

	t.Run("skill start and plain end", func(t *testing.T) {
		s := &Slide{Attrs: Attrs{IsSkill: true, Lane: 1}, Ticks: ticks}
		var r recorder
		s.Draw(&r)
		want := []string{
			"path 1 0:0/1 -> 2 0:1/2",
			"path 2 0:1/2 -> 4 1:0/1",
			"note 1 0:0/1 1",
			"marker 2 0:1/2 2",
			"note 4 1:0/1 2",
		}
		if !reflect.DeepEqual(r.calls, want) {
			t.Errorf("Draw() calls = %v, want %v", r.calls, want)
		}
	})

	t.Run("flick end", func(t *testing.T) {
		s := &Slide{Attrs: Attrs{IsFlick: true, Lane: 1}, Ticks: ticks[:2]}
		var r recorder
		s.Draw(&r)
		want := []string{
			"path 1 0:0/1 -> 2 0:1/2",
			"note 1 0:0/1 2",
			"flick 2 0:1/2",
		}
		if !reflect.DeepEqual(r.calls, want) {
			t.Errorf("Draw() calls = %v, want %v", r.calls, want)
		}
	})
}

func TestSpecialIsInvisible(t *testing.T) {
	s := &Special{Attrs: Attrs{Time: timing.New(2, 0, 1)}, Command: "bpm"}
	if s.Visible() {
		t.Error("Special must not be visible")
	}
	var r recorder
	s.Draw(&r)
	if len(r.calls) != 0 {
		t.Errorf("Special.Draw() made calls: %v", r.calls)
	}
}

func TestSlideExtent(t *testing.T) {
	s := &Slide{Attrs: Attrs{Lane: 6}, Ticks: []Tick{tick(6, 0, 1, 4), tick(3, 2, 3, 8)}}
	if got := s.Start(); got != timing.New(0, 1, 4) {
		t.Errorf("Start() = %v, want 0:1/4", got)
	}
	if got := s.End(); got != timing.New(2, 3, 8) {
		t.Errorf("End() = %v, want 2:3/8", got)
	}
	if got := s.LastLane(); got != 3 {
		t.Errorf("LastLane() = %d, want 3", got)
	}
}

func TestValidate(t *testing.T) {
	ok := timing.New(0, 0, 1)
	tests := []struct {
		name    string
		note    Note
		wantErr bool
	}{
		{"tap", &Tap{Attrs{Lane: 7, Time: ok}}, false},
		{"tap lane too high", &Tap{Attrs{Lane: 8, Time: ok}}, true},
		{"tap negative lane", &Tap{Attrs{Lane: -1, Time: ok}}, true},
		{"tap bad denominator", &Tap{Attrs{Lane: 1, Time: timing.New(0, 0, 0)}}, true},
		{"slide", &Slide{Attrs: Attrs{Time: ok}, Ticks: []Tick{tick(0, 0, 0, 1), tick(1, 0, 1, 4)}}, false},
		{"slide without ticks", &Slide{Attrs: Attrs{Time: ok}}, true},
		{"slide ticks out of order", &Slide{Attrs: Attrs{Time: ok}, Ticks: []Tick{tick(0, 0, 1, 2), tick(1, 0, 2, 4)}}, true},
		{"slide tick lane", &Slide{Attrs: Attrs{Time: ok}, Ticks: []Tick{tick(9, 0, 0, 1)}}, true},
		{"special ignores lane", &Special{Attrs: Attrs{Lane: -3, Time: ok}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.note.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{KindTap: "tap", KindSlide: "slide", KindSpecial: "special", Kind(9): "Kind(9)"} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
