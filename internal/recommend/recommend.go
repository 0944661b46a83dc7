package recommend

import (
	"strings"

	"github.com/julianstephens/coachdesk/internal/models"
)

// Field names the method attribute a rule inspects.
type Field string

const (
	FieldKeywords    Field = "keywords"
	FieldCategory    Field = "category"
	FieldDescription Field = "description"
)

// Rule matches a method when its Field contains MethodTerm and the client's
// goals contain GoalTerm. Both comparisons are case-insensitive substring checks.
type Rule struct {
	Field      Field
	MethodTerm string
	GoalTerm   string
}

// DefaultRules is the built-in rule table.
var DefaultRules = []Rule{
	{Field: FieldKeywords, MethodTerm: "führung", GoalTerm: "führung"},
	{Field: FieldKeywords, MethodTerm: "ziele", GoalTerm: "entwickeln"},
	{Field: FieldKeywords, MethodTerm: "stress", GoalTerm: "balance"},
	{Field: FieldKeywords, MethodTerm: "kommunikation", GoalTerm: "team"},
	{Field: FieldCategory, MethodTerm: "persönlichkeit", GoalTerm: "persönlich"},
	{Field: FieldDescription, MethodTerm: "vision", GoalTerm: "vision"},
}

type Recommender struct {
	rules []Rule
}

// New creates a recommender over rules. A nil slice selects DefaultRules.
func New(rules []Rule) *Recommender {
	if rules == nil {
		rules = DefaultRules
	}
	return &Recommender{rules: rules}
}

// Recommend returns the methods matched by at least one rule, in catalog order.
func (r *Recommender) Recommend(goals string, methods []models.CoachingMethod) []models.CoachingMethod {
	out := []models.CoachingMethod{}
	g := strings.ToLower(strings.TrimSpace(goals))
	if g == "" {
		return out
	}
	for _, m := range methods {
		if len(r.matching(g, m)) > 0 {
			out = append(out, m)
		}
	}
	return out
}

// Explain returns the rules that select method for goals.
func (r *Recommender) Explain(goals string, method models.CoachingMethod) []Rule {
	g := strings.ToLower(strings.TrimSpace(goals))
	if g == "" {
		return nil
	}
	return r.matching(g, method)
}

// ForClient recommends methods based on the client's stated goals.
func (r *Recommender) ForClient(c models.Client, methods []models.CoachingMethod) []models.CoachingMethod {
	return r.Recommend(c.CoachingGoals, methods)
}

func (r *Recommender) matching(goals string, m models.CoachingMethod) []Rule {
	var matched []Rule
	for _, rule := range r.rules {
		if !strings.Contains(goals, strings.ToLower(rule.GoalTerm)) {
			continue
		}
		if methodHas(m, rule.Field, strings.ToLower(rule.MethodTerm)) {
			matched = append(matched, rule)
		}
	}
	return matched
}

func methodHas(m models.CoachingMethod, field Field, term string) bool {
	switch field {
	case FieldKeywords:
		for _, k := range m.Keywords {
			if strings.Contains(strings.ToLower(k), term) {
				return true
			}
		}
		return false
	case FieldCategory:
		return strings.Contains(strings.ToLower(m.Category), term)
	case FieldDescription:
		return strings.Contains(strings.ToLower(m.Description), term)
	}
	return false
}

// Recommend applies DefaultRules.
func Recommend(goals string, methods []models.CoachingMethod) []models.CoachingMethod {
	return New(nil).Recommend(goals, methods)
}
