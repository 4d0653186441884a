package rules

import "github.com/adanyl0v/checklist/internal/questionnaire"

// OptionRef records a question key, and optionally an option literal, that
// a predicate depends on.
type OptionRef struct {
	Key    string
	Option string
}

// Predicate is a condition over an AnswerSet. The zero Predicate never
// matches. A predicate evaluated against a missing key is false.
type Predicate struct {
	match func(questionnaire.AnswerSet) bool
	refs  []OptionRef
}

func (p Predicate) Match(answers questionnaire.AnswerSet) bool {
	if p.match == nil {
		return false
	}
	return p.match(answers)
}

// Refs lists the question keys and options the predicate reads.
func (p Predicate) Refs() []OptionRef {
	out := make([]OptionRef, len(p.refs))
	copy(out, p.refs)
	return out
}

// Always matches every answer set. Rules using it emit the anchor tasks of
// a flow.
func Always() Predicate {
	return Predicate{match: func(questionnaire.AnswerSet) bool { return true }}
}

func Equals(key, option string) Predicate {
	return Predicate{
		match: func(a questionnaire.AnswerSet) bool { return a.Equals(key, option) },
		refs:  []OptionRef{{Key: key, Option: option}},
	}
}

// OneOf matches a scalar answer equal to any of options.
func OneOf(key string, options ...string) Predicate {
	refs := make([]OptionRef, 0, len(options))
	for _, option := range options {
		refs = append(refs, OptionRef{Key: key, Option: option})
	}
	return Predicate{
		match: func(a questionnaire.AnswerSet) bool {
			for _, option := range options {
				if a.Equals(key, option) {
					return true
				}
			}
			return false
		},
		refs: refs,
	}
}

// Includes matches a multi-select answer containing option.
func Includes(key, option string) Predicate {
	return Predicate{
		match: func(a questionnaire.AnswerSet) bool { return a.Includes(key, option) },
		refs:  []OptionRef{{Key: key, Option: option}},
	}
}

func IncludesAny(key string, options ...string) Predicate {
	refs := make([]OptionRef, 0, len(options))
	for _, option := range options {
		refs = append(refs, OptionRef{Key: key, Option: option})
	}
	return Predicate{
		match: func(a questionnaire.AnswerSet) bool { return a.IncludesAny(key, options...) },
		refs:  refs,
	}
}

func Answered(key string) Predicate {
	return Predicate{
		match: func(a questionnaire.AnswerSet) bool { return a.Answered(key) },
		refs:  []OptionRef{{Key: key}},
	}
}

// JurisdictionKnown matches a jurisdiction answer whose state is present
// and not "unknown".
func JurisdictionKnown(key string) Predicate {
	return Predicate{
		match: func(a questionnaire.AnswerSet) bool {
			j, ok := a.Jurisdiction(key)
			return ok && j.Known()
		},
		refs: []OptionRef{{Key: key}},
	}
}

// CountyKnown is JurisdictionKnown that also requires a known county.
func CountyKnown(key string) Predicate {
	return Predicate{
		match: func(a questionnaire.AnswerSet) bool {
			j, ok := a.Jurisdiction(key)
			return ok && j.CountyKnown()
		},
		refs: []OptionRef{{Key: key}},
	}
}

// AllOf is a conjunction. AllOf() with no operands matches.
func AllOf(preds ...Predicate) Predicate {
	return Predicate{
		match: func(a questionnaire.AnswerSet) bool {
			for _, p := range preds {
				if !p.Match(a) {
					return false
				}
			}
			return true
		},
		refs: collectRefs(preds),
	}
}

// AnyOf is a disjunction. AnyOf() with no operands never matches.
func AnyOf(preds ...Predicate) Predicate {
	return Predicate{
		match: func(a questionnaire.AnswerSet) bool {
			for _, p := range preds {
				if p.Match(a) {
					return true
				}
			}
			return false
		},
		refs: collectRefs(preds),
	}
}

// Not negates p. Note that Not(Equals(k, v)) matches when k is unanswered.
func Not(p Predicate) Predicate {
	return Predicate{
		match: func(a questionnaire.AnswerSet) bool { return !p.Match(a) },
		refs:  p.Refs(),
	}
}

func collectRefs(preds []Predicate) []OptionRef {
	var refs []OptionRef
	for _, p := range preds {
		refs = append(refs, p.refs...)
	}
	return refs
}
