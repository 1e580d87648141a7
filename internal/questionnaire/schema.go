// Package questionnaire defines the assessment sections and the questions each
// tab asks, as one schema shared by validation and scoring.
package questionnaire

import (
	"fmt"
	"sort"
	"strings"

	"rasbita/internal/mapping"
)

// Category is a RASBITA scoring category.
type Category string

const (
	CategoryRisk             Category = "risk"
	CategorySecurityControls Category = "securityControls"
	CategoryArchitecture     Category = "architecture"
	CategoryGovern           Category = "govern"
	CategoryIdentify         Category = "identify"
	CategoryProtect          Category = "protect"
	CategoryDetect           Category = "detect"
	CategoryRespond          Category = "respond"
	CategoryRecover          Category = "recover"
)

// Categories lists every category in report order.
func Categories() []Category {
	return []Category{
		CategoryRisk, CategorySecurityControls, CategoryArchitecture,
		CategoryGovern, CategoryIdentify, CategoryProtect, CategoryDetect, CategoryRespond, CategoryRecover,
	}
}

type Answer string

const (
	AnswerYes     Answer = "yes"
	AnswerPartial Answer = "partial"
	AnswerNo      Answer = "no"
	AnswerNA      Answer = "na"
)

func ParseAnswer(s string) (Answer, error) {
	switch a := Answer(strings.ToLower(strings.TrimSpace(s))); a {
	case AnswerYes, AnswerPartial, AnswerNo, AnswerNA:
		return a, nil
	case "n/a":
		return AnswerNA, nil
	default:
		return "", fmt.Errorf("invalid answer: %q", s)
	}
}

type Question struct {
	ID       string   `json:"id"`
	Section  string   `json:"section"`
	Prompt   string   `json:"prompt"`
	Category Category `json:"category"`
	Weight   int      `json:"weight"`
	Severity string   `json:"severity"`
}

type Section struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	SOSParameter string     `json:"sosParameter"`
	Questions    []Question `json:"questions"`
}

var questionIndex = func() map[string]Question {
	idx := make(map[string]Question)
	for _, s := range sections {
		for _, q := range s.Questions {
			q.Section = s.ID
			idx[q.ID] = q
		}
	}
	return idx
}()

// Sections returns every section with its questions, in tab order.
func Sections() []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = s
		out[i].Questions = make([]Question, len(s.Questions))
		for j, q := range s.Questions {
			q.Section = s.ID
			out[i].Questions[j] = q
		}
	}
	return out
}

// Questions returns every question sorted by ID.
func Questions() []Question {
	out := make([]Question, 0, len(questionIndex))
	for _, q := range questionIndex {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func Lookup(id string) (Question, bool) {
	q, ok := questionIndex[id]
	return q, ok
}

// ValidationError lists every invalid answer in a submission.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid answers: " + strings.Join(e.Problems, "; ")
}

// Validate normalises raw answers keyed by question ID. Unknown questions and
// unrecognised answer values are rejected.
func Validate(raw map[string]string) (map[string]Answer, error) {
	out := make(map[string]Answer, len(raw))
	var problems []string
	for id, v := range raw {
		if _, ok := questionIndex[id]; !ok {
			problems = append(problems, fmt.Sprintf("%s: unknown question", id))
			continue
		}
		a, err := ParseAnswer(v)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", id, err))
			continue
		}
		out[id] = a
	}
	if len(problems) > 0 {
		sort.Strings(problems)
		return nil, &ValidationError{Problems: problems}
	}
	return out, nil
}

// Check verifies the built-in schema: every section maps to a known SOS
// parameter and every question has a positive weight, a known category and a
// reportable severity.
func Check() error {
	known := make(map[Category]bool)
	for _, c := range Categories() {
		known[c] = true
	}
	for _, s := range sections {
		if _, ok := mapping.Lookup(s.SOSParameter); !ok {
			return fmt.Errorf("section %s: no relevance mapping for %q", s.ID, s.SOSParameter)
		}
		for _, q := range s.Questions {
			if q.Weight <= 0 {
				return fmt.Errorf("question %s: weight must be positive", q.ID)
			}
			if !known[q.Category] {
				return fmt.Errorf("question %s: unknown category %q", q.ID, q.Category)
			}
			switch q.Severity {
			case "critical", "high", "medium", "low":
			default:
				return fmt.Errorf("question %s: invalid severity %q", q.ID, q.Severity)
			}
		}
	}
	return nil
}
