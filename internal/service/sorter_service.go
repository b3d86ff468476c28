package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"keirsey-sorter/internal/domain"
	"keirsey-sorter/internal/scoring"
)

// SorterService administers the temperament questionnaire and scores sessions.
type SorterService struct {
	questionnaire domain.Questionnaire
	texts         domain.CategoryTexts
	logger        *zap.Logger
}

var (
	ErrSorterNotConfigured = errors.New("sorter service not configured")
	ErrSessionComplete     = errors.New("session already answered every question")
	ErrInvalidAnswer       = errors.New("invalid answer")
)

func NewSorterService(questionnaire domain.Questionnaire, texts domain.CategoryTexts, logger *zap.Logger) *SorterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SorterService{
		questionnaire: questionnaire,
		texts:         texts,
		logger:        logger,
	}
}

// NewSession starts a fresh questionnaire run.
func (s *SorterService) NewSession() (*Session, error) {
	if s == nil || len(s.questionnaire.Questions) == 0 {
		return nil, ErrSorterNotConfigured
	}
	sess := &Session{
		ID:      uuid.NewString(),
		service: s,
		engine:  scoring.NewEngine(),
	}
	s.logger.Debug("session started",
		zap.String("session_id", sess.ID),
		zap.Int("questions", len(s.questionnaire.Questions)),
	)
	return sess, nil
}

// ScoreAnswers scores a complete answer string such as "ABBA...", one letter
// per question. Whitespace is ignored.
func (s *SorterService) ScoreAnswers(answers string) (Result, error) {
	sess, err := s.NewSession()
	if err != nil {
		return Result{}, err
	}
	letters := strings.Join(strings.Fields(answers), "")
	for i, r := range letters {
		a, ok := domain.ParseAnswer(string(r))
		if !ok {
			return Result{}, fmt.Errorf("%w %q at position %d", ErrInvalidAnswer, r, i+1)
		}
		if err := sess.Record(a); err != nil {
			return Result{}, fmt.Errorf("answer %d: %w", i+1, err)
		}
	}
	if !sess.Done() {
		answered, total := sess.Progress()
		s.logger.Warn("scoring incomplete answer set",
			zap.String("session_id", sess.ID),
			zap.Int("answered", answered),
			zap.Int("total", total),
		)
	}
	return sess.Result(), nil
}

// Session is a single run through the questionnaire. It is not safe for
// concurrent use.
type Session struct {
	ID      string
	service *SorterService
	engine  *scoring.Engine
}

// Next returns the next unanswered question.
func (s *Session) Next() (domain.Question, bool) {
	questions := s.service.questionnaire.Questions
	n := s.engine.Len()
	if n >= len(questions) {
		return domain.Question{}, false
	}
	return questions[n], true
}

// Record stores the answer to the current question.
func (s *Session) Record(answer domain.Answer) error {
	if s.Done() {
		return ErrSessionComplete
	}
	normalized, ok := domain.ParseAnswer(string(answer))
	if !ok {
		return fmt.Errorf("%w %q", ErrInvalidAnswer, answer)
	}
	s.engine.Record(normalized)
	return nil
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return s.engine.Len() >= len(s.service.questionnaire.Questions)
}

// Progress returns answered and total question counts.
func (s *Session) Progress() (answered, total int) {
	return s.engine.Len(), len(s.service.questionnaire.Questions)
}

// Score returns the running A/B totals.
func (s *Session) Score() (a, b int) {
	return s.engine.Score()
}

// Result scores the answers recorded so far.
func (s *Session) Result() Result {
	code := s.engine.TemperamentCode()
	class := scoring.Classify(code)
	pa, pb := s.engine.Percentages()

	res := Result{
		SessionID:      s.ID,
		Code:           code,
		Classification: class,
		Tallies:        s.engine.Tallies(),
		PercentA:       pa,
		PercentB:       pb,
	}
	res.Sections, res.Narrative = s.service.sectionsFor(class)

	s.service.logger.Info("session scored",
		zap.String("session_id", s.ID),
		zap.String("code", string(code)),
		zap.String("classification", class.String()),
		zap.Int("answers", s.engine.Len()),
	)
	return res
}

// sectionsFor picks the texts to display: one family for a match, every family
// when the code is unclassified, and the narrative when everything tied.
func (s *SorterService) sectionsFor(class scoring.Classification) ([]Section, string) {
	switch {
	case class.Kind == scoring.KindAllTied:
		return nil, s.texts.AllTied
	case class.IsCategory():
		return []Section{{Category: class.Category, Description: s.texts.Description(class.Category)}}, ""
	default:
		sections := make([]Section, 0, len(domain.Categories))
		for _, c := range domain.Categories {
			sections = append(sections, Section{Category: c, Description: s.texts.Description(c)})
		}
		return sections, ""
	}
}

// Section is a category heading with its description.
type Section struct {
	Category    domain.Category
	Description string
}

// Result is everything the renderer needs after a session.
type Result struct {
	SessionID      string
	Code           scoring.Code
	Classification scoring.Classification
	Tallies        scoring.Tallies
	PercentA       float64
	PercentB       float64
	Sections       []Section
	Narrative      string
}
