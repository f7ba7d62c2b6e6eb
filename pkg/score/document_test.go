package score

import (
	"testing"

	"github.com/matzehuels/scoresheet/pkg/errors"
	"github.com/matzehuels/scoresheet/pkg/timing"
)

func sampleDocument() *Document {
	return &Document{
		MetaData: MetaData{Title: "Yes! BanG_Dream!", Difficulty: "expert", Level: 26, Combo: 5, Bpm: 180},
		Notes: []Note{
			&Special{Attrs: Attrs{Time: timing.New(0, 0, 1)}, Command: "bpm"},
			&Tap{Attrs{Lane: 1, Time: timing.New(0, 0, 1), IsSkill: true}},
			&Slide{Attrs: Attrs{Lane: 2, Time: timing.New(0, 1, 2)}, Ticks: []Tick{
				{Lane: 2, Time: timing.New(0, 1, 2)},
				{Lane: 3, Time: timing.New(3, 1, 4)},
			}},
			&Tap{Attrs{Lane: 6, Time: timing.New(1, 0, 1), IsFlick: true}},
			&Special{Attrs: Attrs{Time: timing.New(5, 0, 1)}, Command: "end"},
		},
	}
}

func TestVisibleNotes(t *testing.T) {
	doc := sampleDocument()
	visible := doc.VisibleNotes()
	if len(visible) != 3 {
		t.Fatalf("VisibleNotes() len = %d, want 3", len(visible))
	}
	kinds := []Kind{KindTap, KindSlide, KindTap}
	for i, n := range visible {
		if n.Kind() != kinds[i] {
			t.Errorf("VisibleNotes()[%d].Kind() = %v, want %v", i, n.Kind(), kinds[i])
		}
	}
}

func TestLastEnd(t *testing.T) {
	t.Run("includes invisible notes", func(t *testing.T) {
		last, err := sampleDocument().LastEnd()
		if err != nil {
			t.Fatalf("LastEnd() error = %v", err)
		}
		if last != timing.New(5, 0, 1) {
			t.Errorf("LastEnd() = %v, want 5:0/1", last)
		}
	})

	t.Run("slide end counts", func(t *testing.T) {
		doc := sampleDocument()
		doc.Notes = doc.Notes[:4]
		last, err := doc.LastEnd()
		if err != nil {
			t.Fatalf("LastEnd() error = %v", err)
		}
		if last != timing.New(3, 1, 4) {
			t.Errorf("LastEnd() = %v, want 3:1/4", last)
		}
	})

	t.Run("empty", func(t *testing.T) {
		_, err := (&Document{}).LastEnd()
		if !errors.Is(err, errors.ErrCodeEmptyScore) {
			t.Errorf("LastEnd() error = %v, want EMPTY_SCORE", err)
		}
	})
}

func TestStats(t *testing.T) {
	got := sampleDocument().Stats()
	want := Stats{Taps: 2, Slides: 1, Specials: 2, Flicks: 1, Skills: 1, Ticks: 2}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestMetaDataLines(t *testing.T) {
	m := sampleDocument().MetaData
	if got, want := m.Headline(), "Yes! BanG_Dream! [EXPERT] ★26 Combo 5"; got != want {
		t.Errorf("Headline() = %q, want %q", got, want)
	}
	if got, want := m.BPMLine(), "BPM 180"; got != want {
		t.Errorf("BPMLine() = %q, want %q", got, want)
	}
	m.Bpm = 172.5
	if got, want := m.BPMLine(), "BPM 172.5"; got != want {
		t.Errorf("BPMLine() = %q, want %q", got, want)
	}
}
