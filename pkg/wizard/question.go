// Package wizard implements the guided-intake engine: the question model,
// the session state document, the pending-question queue, the orchestrator
// that decides what to ask next, and the navigation controller that
// interprets user input against the session state.
package wizard

// Language tags supported by the question catalogs.
const (
	LangEN = "en"
	LangPT = "pt"
)

// SupportedLanguages lists every language a question must carry text for.
var SupportedLanguages = []string{LangEN, LangPT}

// Text maps a language tag to a localized string.
type Text map[string]string

// Get returns the string for lang, falling back to English, then to any entry.
func (t Text) Get(lang string) string {
	if t == nil {
		return ""
	}
	if s, ok := t[lang]; ok && s != "" {
		return s
	}
	if s, ok := t[LangEN]; ok && s != "" {
		return s
	}
	for _, s := range t {
		if s != "" {
			return s
		}
	}
	return ""
}

// QuestionType enumerates the supported answer shapes.
type QuestionType string

const (
	TypeEnum        QuestionType = "enum"
	TypeText        QuestionType = "text"
	TypeMultiSelect QuestionType = "multiselect"
)

// Option is a selectable value for enum and multiselect questions.
type Option struct {
	Value string `yaml:"value" json:"value"`
	Label Text   `yaml:"label" json:"label"`
}

// Validation constrains acceptable answers.
type Validation struct {
	Required  bool `yaml:"required" json:"required"`
	MinLength int  `yaml:"min_length,omitempty" json:"min_length,omitempty"`
	MaxLength int  `yaml:"max_length,omitempty" json:"max_length,omitempty"`
}

// SaveTo names the destination paths for a normalized answer.
// Answers is a dot-path into the answers document and is mandatory;
// Company optionally mirrors the value into the company profile.
type SaveTo struct {
	Answers string `yaml:"answers" json:"answers"`
	Company string `yaml:"company,omitempty" json:"company,omitempty"`
}

// Provenance values for Question.CreatedBy.
const (
	CreatedByCore = "core"
	CreatedByDeep = "deep"
)

// Question is a unit of information to collect. IDs are globally unique and
// stable across sessions; they are the dedup and resume key.
type Question struct {
	ID          string       `yaml:"id" json:"id"`
	Text        Text         `yaml:"text" json:"text"`
	Type        QuestionType `yaml:"type" json:"type"`
	Options     []Option     `yaml:"options,omitempty" json:"options,omitempty"`
	Placeholder Text         `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Validation  *Validation  `yaml:"validation,omitempty" json:"validation,omitempty"`
	SaveTo      SaveTo       `yaml:"save_to" json:"save_to"`
	Tags        []string     `yaml:"tags,omitempty" json:"tags,omitempty"`
	Priority    int          `yaml:"priority" json:"priority"`
	CreatedBy   string       `yaml:"created_by,omitempty" json:"created_by,omitempty"`
}

// IsRequired reports whether the question must be answered (SKIP rejected).
func (q *Question) IsRequired() bool {
	return q.Validation != nil && q.Validation.Required
}

// HasOptions reports whether the question type carries an option list.
func (q *Question) HasOptions() bool {
	return q.Type == TypeEnum || q.Type == TypeMultiSelect
}

// OptionValues returns the canonical option values in declaration order.
func (q *Question) OptionValues() []string {
	values := make([]string, 0, len(q.Options))
	for i := range q.Options {
		values = append(values, q.Options[i].Value)
	}
	return values
}

// ValidateQuestion checks a question definition for structural problems and
// returns one error string per violation. An empty result means the question
// is safe to enqueue. Consumers inserting questions into a queue must filter
// through this and silently drop invalid entries; malformed specialist output
// is never surfaced to the user.
func ValidateQuestion(q *Question) []string {
	var errs []string

	if q == nil {
		return []string{"question is nil"}
	}
	if q.ID == "" {
		errs = append(errs, "missing id")
	}
	if q.Type == "" {
		errs = append(errs, "missing type")
	}
	for _, lang := range SupportedLanguages {
		if q.Text[lang] == "" {
			errs = append(errs, "missing text for language "+lang)
		}
	}
	if q.SaveTo.Answers == "" {
		errs = append(errs, "missing save_to.answers path")
	}
	if q.HasOptions() {
		if len(q.Options) == 0 {
			errs = append(errs, "option question has no options")
		}
		for i := range q.Options {
			opt := &q.Options[i]
			if opt.Value == "" {
				errs = append(errs, "option without value")
			}
			for _, lang := range SupportedLanguages {
				if opt.Label[lang] == "" {
					errs = append(errs, "option "+opt.Value+" missing label for language "+lang)
				}
			}
		}
	}

	return errs
}

// FilterValid returns only the questions that pass ValidateQuestion,
// preserving input order. Invalid entries are dropped without error.
func FilterValid(questions []Question) []Question {
	valid := make([]Question, 0, len(questions))
	for i := range questions {
		if len(ValidateQuestion(&questions[i])) == 0 {
			valid = append(valid, questions[i])
		}
	}
	return valid
}
