package questionnaire

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"keirsey-sorter/internal/domain"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrMissingCategory = errors.New("category description missing")
)

type rawCategories struct {
	AllTied    string            `yaml:"all_tied"`
	Categories map[string]string `yaml:"categories"`
}

// LoadCategories reads category descriptions from a YAML file.
func LoadCategories(path string) (domain.CategoryTexts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.CategoryTexts{}, fmt.Errorf("read categories %s: %w", path, err)
	}
	texts, err := ParseCategories(data)
	if err != nil {
		return domain.CategoryTexts{}, fmt.Errorf("categories %s: %w", path, err)
	}
	return texts, nil
}

// DefaultCategories returns the embedded category descriptions.
func DefaultCategories() (domain.CategoryTexts, error) {
	data, err := defaults.ReadFile("defaults/categories.yaml")
	if err != nil {
		return domain.CategoryTexts{}, err
	}
	return ParseCategories(data)
}

// ParseCategories decodes category YAML. Every temperament family must be
// described; the all-tied narrative is optional.
func ParseCategories(data []byte) (domain.CategoryTexts, error) {
	var raw rawCategories
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.CategoryTexts{}, fmt.Errorf("decode categories: %w", err)
	}

	texts := domain.CategoryTexts{
		Descriptions: make(map[domain.Category]string, len(domain.Categories)),
		AllTied:      strings.TrimSpace(raw.AllTied),
	}
	for name, text := range raw.Categories {
		c, ok := domain.ParseCategory(name)
		if !ok {
			return domain.CategoryTexts{}, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
		}
		texts.Descriptions[c] = strings.TrimSpace(text)
	}
	for _, c := range domain.Categories {
		if texts.Descriptions[c] == "" {
			return domain.CategoryTexts{}, fmt.Errorf("%w: %s", ErrMissingCategory, c)
		}
	}
	return texts, nil
}
