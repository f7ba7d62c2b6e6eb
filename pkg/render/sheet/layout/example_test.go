package layout_test

import (
	"fmt"

	"github.com/matzehuels/scoresheet/pkg/render/sheet/layout"
)

func ExampleLayout_Windows() {
	// Six bars at four per column: a full column and a short one
	l, err := layout.New(layout.DefaultSettings(), 6)
	if err != nil {
		panic(err)
	}

	for _, w := range l.Windows() {
		fmt.Printf("column %d bars %d-%d: source top %.0f height %.0f, target (%.0f, %.0f)\n",
			w.Column, w.StartBar+1, w.EndBar, w.SourceTop, w.SourceHeight, w.TargetLeft, w.TargetTop)
	}
	fmt.Printf("sheet %.0fx%.0f\n", l.FinalWidth(), l.FinalHeight())
	// Output:
	// column 0 bars 1-4: source top 1225 height 2550, target (0, 100)
	// column 1 bars 5-6: source top 25 height 1350, target (388, 1300)
	// sheet 876x2750
}
