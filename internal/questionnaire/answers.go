// Package questionnaire turns raw questionnaire submissions into an
// immutable AnswerSet that rule predicates can query without type checks.
package questionnaire

import "sort"

type FlowType string

const (
	FlowRecentLoss    FlowType = "recent_loss"
	FlowPlanningAhead FlowType = "planning_ahead"
)

func ParseFlowType(s string) (FlowType, bool) {
	switch f := FlowType(s); f {
	case FlowRecentLoss, FlowPlanningAhead:
		return f, true
	default:
		return "", false
	}
}

const unknownJurisdiction = "unknown"

// Jurisdiction is the structured answer to a "where" question.
type Jurisdiction struct {
	State  string `json:"state"`
	County string `json:"county"`
}

// Known reports whether the state was answered with something other than
// the "unknown" option.
func (j Jurisdiction) Known() bool {
	return j.State != "" && j.State != unknownJurisdiction
}

func (j Jurisdiction) CountyKnown() bool {
	return j.Known() && j.County != "" && j.County != unknownJurisdiction
}

// AnswerSet holds the answers of one questionnaire submission. Keys that
// are absent are unanswered. An AnswerSet is never mutated after Normalize.
type AnswerSet struct {
	flow          FlowType
	scalars       map[string]string
	lists         map[string][]string
	jurisdictions map[string]Jurisdiction
}

// Flow returns the explicit flow tag, or "" when the submission did not
// carry one.
func (a AnswerSet) Flow() FlowType {
	return a.flow
}

// WithFlow returns a copy of a tagged with flow. The answer maps are shared
// since neither copy mutates them.
func (a AnswerSet) WithFlow(flow FlowType) AnswerSet {
	a.flow = flow
	return a
}

func (a AnswerSet) Text(key string) (string, bool) {
	v, ok := a.scalars[key]
	return v, ok
}

// Equals is an exact, case-sensitive comparison against a scalar answer.
func (a AnswerSet) Equals(key, option string) bool {
	v, ok := a.scalars[key]
	return ok && v == option
}

// List returns a copy of a multi-select answer.
func (a AnswerSet) List(key string) []string {
	v, ok := a.lists[key]
	if !ok {
		return nil
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}

// Includes reports whether option was selected in a multi-select answer.
func (a AnswerSet) Includes(key, option string) bool {
	for _, v := range a.lists[key] {
		if v == option {
			return true
		}
	}
	return false
}

func (a AnswerSet) IncludesAny(key string, options ...string) bool {
	for _, option := range options {
		if a.Includes(key, option) {
			return true
		}
	}
	return false
}

func (a AnswerSet) Jurisdiction(key string) (Jurisdiction, bool) {
	j, ok := a.jurisdictions[key]
	return j, ok
}

// Answered reports whether key holds any usable answer. A negative option
// such as "No" still counts as answered.
func (a AnswerSet) Answered(key string) bool {
	if _, ok := a.scalars[key]; ok {
		return true
	}
	if _, ok := a.lists[key]; ok {
		return true
	}
	_, ok := a.jurisdictions[key]
	return ok
}

// Keys returns the answered keys in lexical order.
func (a AnswerSet) Keys() []string {
	keys := make([]string, 0, a.Len())
	for k := range a.scalars {
		keys = append(keys, k)
	}
	for k := range a.lists {
		keys = append(keys, k)
	}
	for k := range a.jurisdictions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (a AnswerSet) Len() int {
	return len(a.scalars) + len(a.lists) + len(a.jurisdictions)
}
