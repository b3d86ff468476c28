package domain

// Question is a single forced-choice item with its two options.
type Question struct {
	Text    string
	OptionA string
	OptionB string
}

// Questionnaire is the ordered list of items administered in one session.
type Questionnaire struct {
	Questions []Question
}

// CategoryTexts holds the descriptive copy shown with a classification.
type CategoryTexts struct {
	Descriptions map[Category]string
	AllTied      string
}

// Description returns the text for a category, empty when unknown.
func (t CategoryTexts) Description(c Category) string {
	if t.Descriptions == nil {
		return ""
	}
	return t.Descriptions[c]
}
