package scoring

import "keirsey-sorter/internal/domain"

// Kind distinguishes the three classification outcomes.
type Kind int

const (
	// KindCategory means the code matched a temperament family.
	KindCategory Kind = iota
	// KindAllTied means every dichotomy was tied.
	KindAllTied
	// KindUnclassified means the code matched no pattern.
	KindUnclassified
)

func (k Kind) String() string {
	switch k {
	case KindCategory:
		return "category"
	case KindAllTied:
		return "all_tied"
	case KindUnclassified:
		return "unclassified"
	default:
		return "unknown"
	}
}

// Classification is the outcome of Classify. Category is set only when Kind
// is KindCategory.
type Classification struct {
	Kind     Kind
	Category domain.Category
}

// IsCategory reports whether the classification names a single family.
func (c Classification) IsCategory() bool {
	return c.Kind == KindCategory
}

func (c Classification) String() string {
	if c.IsCategory() {
		return string(c.Category)
	}
	return c.Kind.String()
}

type categoryPatterns struct {
	category domain.Category
	patterns []Code
}

// patternTable is mutually exclusive across categories: Artisans are S..P,
// Guardians S..J, Idealists NF and Rationals NT.
var patternTable = []categoryPatterns{
	{domain.CategoryArtisan, []Code{"ISFP", "XSFP", "XSTP", "XSXP", "ESXP", "ISTP", "ISXP", "ESFP", "ESTP"}},
	{domain.CategoryGuardian, []Code{"ISFJ", "XSFJ", "ISXJ", "ESXJ", "XSXJ", "XSTJ", "ESFJ", "ESTJ", "ISTJ"}},
	{domain.CategoryIdealist, []Code{"INFP", "INFJ", "ENFP", "ENFJ", "XNFX", "ENFX", "INFX", "XNFJ", "XNFP"}},
	{domain.CategoryRational, []Code{"INTP", "INTJ", "ENTP", "ENTJ", "XNTX", "ENTX", "INTX", "XNTJ", "XNTP"}},
}

// Patterns returns the codes listed for a category.
func Patterns(c domain.Category) []Code {
	for _, entry := range patternTable {
		if entry.category == c {
			return append([]Code(nil), entry.patterns...)
		}
	}
	return nil
}

// Classify maps a temperament code to its outcome. It never fails.
func Classify(code Code) Classification {
	if code == AllTied {
		return Classification{Kind: KindAllTied}
	}
	for _, entry := range patternTable {
		for _, p := range entry.patterns {
			if p.Matches(code) {
				return Classification{Kind: KindCategory, Category: entry.category}
			}
		}
	}
	return Classification{Kind: KindUnclassified}
}

// Matches reports whether code fits the pattern c. A Tie in the pattern accepts
// either letter of that dichotomy or a tie; any other letter must match exactly.
func (c Code) Matches(code Code) bool {
	if len(c) != DichotomyCount || len(code) != DichotomyCount {
		return false
	}
	for i := 0; i < DichotomyCount; i++ {
		if c[i] != Tie {
			if c[i] != code[i] {
				return false
			}
			continue
		}
		d := Dichotomies[i]
		if code[i] != d.First && code[i] != d.Second && code[i] != Tie {
			return false
		}
	}
	return true
}

// Valid reports whether every letter of the code belongs to its dichotomy or
// is a tie.
func (c Code) Valid() bool {
	return AllTied.Matches(c)
}
