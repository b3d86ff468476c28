package scoring

import "keirsey-sorter/internal/domain"

// BatchSize is the number of facet positions in one administration of the
// facet block.
const BatchSize = 7

// Ledger stores answers in arrival order, framed into batches of BatchSize.
// It is not safe for concurrent use; record and read from a single goroutine.
type Ledger struct {
	batches [][]domain.Answer
	count   int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Record appends an answer, opening a new batch when the current one is full.
func (l *Ledger) Record(answer domain.Answer) {
	n := len(l.batches)
	if n == 0 || (len(l.batches[n-1]) > 0 && len(l.batches[n-1])%BatchSize == 0) {
		l.batches = append(l.batches, make([]domain.Answer, 0, BatchSize))
		n++
	}
	l.batches[n-1] = append(l.batches[n-1], answer)
	l.count++
}

// Batches returns a copy of the recorded batches. The final batch may be short.
func (l *Ledger) Batches() [][]domain.Answer {
	out := make([][]domain.Answer, len(l.batches))
	for i, b := range l.batches {
		out[i] = append([]domain.Answer(nil), b...)
	}
	return out
}

// Len returns the total number of answers recorded.
func (l *Ledger) Len() int {
	return l.count
}
