// Package questionnaire loads the questions and category texts consumed by the
// sorter: questions from JSON, category descriptions from YAML. Both have
// embedded defaults.
package questionnaire

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"keirsey-sorter/internal/domain"
	"keirsey-sorter/internal/scoring"
)

//go:embed defaults/questions.json defaults/categories.yaml
var defaults embed.FS

var (
	ErrQuestionnaireEmpty = errors.New("questionnaire has no questions")
	ErrFacetCount         = errors.New("question count is not a multiple of the facet block size")
	ErrEmptyQuestion      = errors.New("question text is empty")
	ErrMissingOption      = errors.New("question is missing an option")
)

type rawQuestionnaire struct {
	Questions []rawQuestion `json:"questions"`
}

// rawQuestion mirrors {"question": "...", "options": [{"a": "..."}, {"b": "..."}]}.
type rawQuestion struct {
	Question string              `json:"question"`
	Options  []map[string]string `json:"options"`
}

// Load reads and validates a questionnaire file.
func Load(path string) (domain.Questionnaire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Questionnaire{}, fmt.Errorf("read questionnaire %s: %w", path, err)
	}
	q, err := Parse(data)
	if err != nil {
		return domain.Questionnaire{}, fmt.Errorf("questionnaire %s: %w", path, err)
	}
	return q, nil
}

// Default returns the embedded questionnaire.
func Default() (domain.Questionnaire, error) {
	data, err := defaults.ReadFile("defaults/questions.json")
	if err != nil {
		return domain.Questionnaire{}, err
	}
	return Parse(data)
}

// Parse decodes questionnaire JSON and validates its shape.
func Parse(data []byte) (domain.Questionnaire, error) {
	var raw rawQuestionnaire
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Questionnaire{}, fmt.Errorf("decode questionnaire: %w", err)
	}

	out := domain.Questionnaire{Questions: make([]domain.Question, 0, len(raw.Questions))}
	for i, rq := range raw.Questions {
		q, err := rq.toDomain()
		if err != nil {
			return domain.Questionnaire{}, fmt.Errorf("question %d: %w", i+1, err)
		}
		out.Questions = append(out.Questions, q)
	}
	if err := Validate(out); err != nil {
		return domain.Questionnaire{}, err
	}
	return out, nil
}

// Validate checks the facet count and that every question is complete.
func Validate(q domain.Questionnaire) error {
	n := len(q.Questions)
	if n == 0 {
		return ErrQuestionnaireEmpty
	}
	if n%scoring.BatchSize != 0 {
		return fmt.Errorf("%w: got %d questions, block size %d", ErrFacetCount, n, scoring.BatchSize)
	}
	for i, question := range q.Questions {
		if strings.TrimSpace(question.Text) == "" {
			return fmt.Errorf("question %d: %w", i+1, ErrEmptyQuestion)
		}
		if strings.TrimSpace(question.OptionA) == "" || strings.TrimSpace(question.OptionB) == "" {
			return fmt.Errorf("question %d: %w", i+1, ErrMissingOption)
		}
	}
	return nil
}

func (rq rawQuestion) toDomain() (domain.Question, error) {
	q := domain.Question{Text: strings.TrimSpace(rq.Question)}
	for _, opt := range rq.Options {
		for key, text := range opt {
			switch strings.ToLower(strings.TrimSpace(key)) {
			case "a":
				q.OptionA = strings.TrimSpace(text)
			case "b":
				q.OptionB = strings.TrimSpace(text)
			default:
				return domain.Question{}, fmt.Errorf("unknown option %q", key)
			}
		}
	}
	return q, nil
}
