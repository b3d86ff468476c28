package scoring

import "keirsey-sorter/internal/domain"

// Tally counts yes (A) and no (B) answers.
type Tally struct {
	Yes int
	No  int
}

// Add returns the pairwise sum of two tallies.
func (t Tally) Add(o Tally) Tally {
	return Tally{Yes: t.Yes + o.Yes, No: t.No + o.No}
}

// Total returns the number of answers behind the tally.
func (t Tally) Total() int {
	return t.Yes + t.No
}

// SlotCount is the number of entries Aggregate produces.
const SlotCount = 10

// Tallies is the aggregator output: raw facet tallies interleaved with the
// merged dichotomy aggregates.
type Tallies [SlotCount]Tally

// slotSources maps each output slot to the facet positions summed into it.
// Position 0 alone decides the first dichotomy; (1,2), (3,4) and (5,6) are
// merged for the other three.
var slotSources = [SlotCount][]int{
	{0},
	{1},
	{2},
	{2, 1},
	{3},
	{4},
	{4, 3},
	{5},
	{6},
	{6, 5},
}

// dichotomySlots are the output slots consumed by the resolver, in E/I, S/N,
// T/F, J/P order.
var dichotomySlots = [DichotomyCount]int{0, 3, 6, 9}

// Aggregate sums every facet position across batches and builds the ten
// output slots. Batches shorter than a position contribute nothing to it.
func Aggregate(batches [][]domain.Answer) Tallies {
	var raw [BatchSize]Tally
	for _, batch := range batches {
		for i := 0; i < BatchSize && i < len(batch); i++ {
			if batch[i].IsYes() {
				raw[i].Yes++
			} else {
				raw[i].No++
			}
		}
	}

	var out Tallies
	for slot, sources := range slotSources {
		for _, src := range sources {
			out[slot] = out[slot].Add(raw[src])
		}
	}
	return out
}

// Dichotomies returns the four aggregates that decide the temperament code.
func (t Tallies) Dichotomies() [DichotomyCount]Tally {
	var out [DichotomyCount]Tally
	for i, slot := range dichotomySlots {
		out[i] = t[slot]
	}
	return out
}
