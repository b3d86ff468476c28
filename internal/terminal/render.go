package terminal

import (
	"fmt"
	"io"
	"strings"

	"keirsey-sorter/internal/scoring"
	"keirsey-sorter/internal/service"
)

// slotLabels names the aggregator slots for the diagnostic table.
var slotLabels = [scoring.SlotCount]string{
	"facet 1 (E/I)",
	"facet 2",
	"facet 3",
	"S/N (facets 2+3)",
	"facet 4",
	"facet 5",
	"T/F (facets 4+5)",
	"facet 6",
	"facet 7",
	"J/P (facets 6+7)",
}

// RenderResult prints the temperament code, answer shares and the texts
// selected for the classification.
func RenderResult(w io.Writer, s Styles, res service.Result) {
	fmt.Fprintf(w, "\nYour temperament code: %s\n", s.Code.Render(string(res.Code)))
	fmt.Fprintf(w, "A: %.2f%%\nB: %.2f%%\n", res.PercentA, res.PercentB)

	switch res.Classification.Kind {
	case scoring.KindAllTied:
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Heading.Render("Perfectly balanced"))
		fmt.Fprintln(w, res.Narrative)
		return
	case scoring.KindUnclassified:
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Muted.Render("Your answers do not settle on a single temperament. Here are all four:"))
	}
	for _, section := range res.Sections {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Heading.Render(string(section.Category)))
		fmt.Fprintln(w, section.Description)
	}
}

// RenderClassification prints a code with its outcome.
func RenderClassification(w io.Writer, s Styles, code scoring.Code, class scoring.Classification) {
	fmt.Fprintf(w, "%s: %s\n", s.Code.Render(string(code)), class)
}

// RenderTallies prints the ten aggregator slots followed by the resolved
// letter and answer count of each dichotomy.
func RenderTallies(w io.Writer, s Styles, t scoring.Tallies) {
	fmt.Fprintln(w, s.Heading.Render("Tallies"))
	width := 0
	for _, label := range slotLabels {
		if len(label) > width {
			width = len(label)
		}
	}
	for i, tally := range t {
		label := slotLabels[i] + strings.Repeat(" ", width-len(slotLabels[i]))
		fmt.Fprintf(w, "%2d  %s  A=%-3d B=%-3d\n", i, label, tally.Yes, tally.No)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Heading.Render("Dichotomies"))
	for i, agg := range t.Dichotomies() {
		d := scoring.Dichotomies[i]
		fmt.Fprintf(w, "%-26s %c  (%d answers)\n", d.Name, scoring.Resolve(d, agg), agg.Total())
	}
}
