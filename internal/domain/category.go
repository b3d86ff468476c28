package domain

import "strings"

// Category is one of the four Keirsey temperament families.
type Category string

const (
	CategoryArtisan  Category = "Artisan"
	CategoryGuardian Category = "Guardian"
	CategoryIdealist Category = "Idealist"
	CategoryRational Category = "Rational"
)

// Categories lists every temperament family in display order.
var Categories = []Category{
	CategoryArtisan,
	CategoryGuardian,
	CategoryIdealist,
	CategoryRational,
}

// ParseCategory resolves a case-insensitive category name.
func ParseCategory(raw string) (Category, bool) {
	name := strings.TrimSpace(raw)
	for _, c := range Categories {
		if strings.EqualFold(name, string(c)) {
			return c, true
		}
	}
	return "", false
}
