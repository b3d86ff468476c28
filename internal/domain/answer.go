package domain

import "strings"

// Answer is the binary response to one questionnaire item. A counts as the
// "yes" side of a facet and B as the "no" side.
type Answer string

const (
	AnswerA Answer = "A"
	AnswerB Answer = "B"
)

// ParseAnswer normaliza la entrada del usuario (espacios y mayusculas).
func ParseAnswer(raw string) (Answer, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(AnswerA):
		return AnswerA, true
	case string(AnswerB):
		return AnswerB, true
	default:
		return "", false
	}
}

// IsYes reports whether the answer is counted on the first letter of a dichotomy.
func (a Answer) IsYes() bool {
	return a == AnswerA
}
