package rules

import "sort"

// Vocabulary maps a question key to the option strings known for it. A key
// with no options stands for a free-form or structured question.
type Vocabulary map[string][]string

// Mismatch is a predicate reference that a questionnaire vocabulary does
// not know. Option is empty when the whole key is unknown.
type Mismatch struct {
	Rule   string `json:"rule"`
	Key    string `json:"key"`
	Option string `json:"option,omitempty"`
}

// TableVocabulary collects the keys and option literals referenced by the
// predicates of t.
func TableVocabulary(t Table) Vocabulary {
	vocab := make(Vocabulary)
	for _, r := range t.Rules {
		for _, ref := range r.When.refs {
			options := vocab[ref.Key]
			if ref.Option != "" && !contains(options, ref.Option) {
				options = append(options, ref.Option)
			}
			vocab[ref.Key] = options
		}
	}
	for key := range vocab {
		sort.Strings(vocab[key])
	}
	return vocab
}

// CheckVocabulary reports every key or option referenced by t that is
// missing from known. Renamed questionnaire options silently disable rules,
// so this is meant to run whenever the questionnaire changes.
func CheckVocabulary(t Table, known Vocabulary) []Mismatch {
	var mismatches []Mismatch
	for _, r := range t.Rules {
		reported := make(map[OptionRef]bool)
		for _, ref := range r.When.refs {
			options, ok := known[ref.Key]
			if !ok {
				ref.Option = ""
			}
			if reported[ref] {
				continue
			}

			switch {
			case !ok:
				reported[ref] = true
				mismatches = append(mismatches, Mismatch{Rule: r.Name, Key: ref.Key})
			case ref.Option != "" && !contains(options, ref.Option):
				reported[ref] = true
				mismatches = append(mismatches, Mismatch{Rule: r.Name, Key: ref.Key, Option: ref.Option})
			}
		}
	}
	return mismatches
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
