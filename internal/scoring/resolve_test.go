package scoring

import "testing"

func TestResolve(t *testing.T) {
	cases := []struct {
		dichotomy int
		tally     Tally
		want      byte
	}{
		{0, Tally{Yes: 3, No: 1}, 'E'},
		{0, Tally{Yes: 1, No: 3}, 'I'},
		{0, Tally{Yes: 2, No: 2}, Tie},
		{1, Tally{Yes: 11, No: 9}, 'S'},
		{1, Tally{Yes: 9, No: 11}, 'N'},
		{2, Tally{Yes: 20}, 'T'},
		{2, Tally{No: 20}, 'F'},
		{3, Tally{Yes: 5, No: 4}, 'J'},
		{3, Tally{Yes: 4, No: 5}, 'P'},
		{3, Tally{}, Tie},
	}
	for _, tc := range cases {
		got := Resolve(Dichotomies[tc.dichotomy], tc.tally)
		if got != tc.want {
			t.Fatalf("dichotomy %d with %+v: expected %c, got %c", tc.dichotomy, tc.tally, tc.want, got)
		}
	}
}

func TestResolveCode_EmptyLedgerIsAllTied(t *testing.T) {
	if got := ResolveCode(Tallies{}); got != AllTied {
		t.Fatalf("expected %s, got %s", AllTied, got)
	}
}

func TestResolveCode_FirstFacetYesOthersNo(t *testing.T) {
	tallies := Aggregate(repeatBatch("ABBBBBB", 10))
	code := ResolveCode(tallies)
	if code != "ENFP" {
		t.Fatalf("expected ENFP, got %s", code)
	}
	c := Classify(code)
	if c.Kind != KindCategory {
		t.Fatalf("expected a category, got %s", c)
	}
	matches := 0
	for _, cat := range []string{"Artisan", "Guardian", "Idealist", "Rational"} {
		for _, p := range Patterns(categoryByName(t, cat)) {
			if p == code {
				matches++
				if string(c.Category) != cat {
					t.Fatalf("expected %s, got %s", cat, c.Category)
				}
			}
		}
	}
	if matches != 1 {
		t.Fatalf("expected exactly one literal pattern for %s, found %d", code, matches)
	}
}

func TestResolveCode_UsesMergedSlotsOnly(t *testing.T) {
	// Position 1 leans S, position 2 leans N more strongly: the merged slot wins.
	batches := append(repeatBatch("AABBAAB", 2), repeatBatch("BBBAABA", 1)...)
	tallies := Aggregate(batches)
	if tallies[1] != (Tally{Yes: 2, No: 1}) || tallies[2] != (Tally{No: 3}) {
		t.Fatalf("unexpected raw tallies: %+v", tallies)
	}
	if got := ResolveCode(tallies)[1]; got != 'N' {
		t.Fatalf("expected N from merged slot, got %c", got)
	}
}
