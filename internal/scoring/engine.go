package scoring

import "keirsey-sorter/internal/domain"

// Engine wraps a Ledger with the derived scoring queries.
type Engine struct {
	ledger *Ledger
	a, b   int
}

// NewEngine returns an engine over an empty ledger.
func NewEngine() *Engine {
	return &Engine{ledger: NewLedger()}
}

// Record stores one answer.
func (e *Engine) Record(answer domain.Answer) {
	e.ledger.Record(answer)
	if answer.IsYes() {
		e.a++
	} else {
		e.b++
	}
}

// Batches returns the recorded answers framed into batches.
func (e *Engine) Batches() [][]domain.Answer {
	return e.ledger.Batches()
}

// Len returns the number of answers recorded so far.
func (e *Engine) Len() int {
	return e.ledger.Len()
}

// Tallies returns the ten aggregator slots for the current ledger.
func (e *Engine) Tallies() Tallies {
	return Aggregate(e.ledger.batches)
}

// TemperamentCode resolves the current ledger into a four-letter code.
func (e *Engine) TemperamentCode() Code {
	return ResolveCode(e.Tallies())
}

// Classification classifies the current temperament code.
func (e *Engine) Classification() Classification {
	return Classify(e.TemperamentCode())
}

// Score returns the running A and B totals.
func (e *Engine) Score() (a, b int) {
	return e.a, e.b
}

// Percentages returns the share of A and B answers. Both are zero when nothing
// has been recorded.
func (e *Engine) Percentages() (a, b float64) {
	total := e.a + e.b
	if total == 0 {
		return 0, 0
	}
	return float64(e.a) / float64(total) * 100, float64(e.b) / float64(total) * 100
}
