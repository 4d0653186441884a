package questionnaire

import (
	"encoding/json"
	"strings"
)

// Normalize converts a decoded questionnaire submission into an AnswerSet.
// It never fails: nil values, numbers, booleans, empty strings, empty lists
// and objects without a state or county are all treated as unanswered.
// Strings are kept verbatim so rule predicates match the exact option text.
func Normalize(raw map[string]any) AnswerSet {
	set := AnswerSet{
		scalars:       make(map[string]string),
		lists:         make(map[string][]string),
		jurisdictions: make(map[string]Jurisdiction),
	}

	for key, value := range raw {
		if key == "" {
			continue
		}

		switch v := value.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				set.scalars[key] = v
			}
		case []string:
			if list := compactStrings(v); len(list) > 0 {
				set.lists[key] = list
			}
		case []any:
			if list := stringsOf(v); len(list) > 0 {
				set.lists[key] = list
			}
		case map[string]any:
			if j, ok := jurisdictionOf(v); ok {
				set.jurisdictions[key] = j
			}
		case map[string]string:
			j := Jurisdiction{State: v["state"], County: v["county"]}
			if j.State != "" || j.County != "" {
				set.jurisdictions[key] = j
			}
		case Jurisdiction:
			if v.State != "" || v.County != "" {
				set.jurisdictions[key] = v
			}
		}
	}

	return set
}

// NormalizeJSON decodes a JSON object and normalizes it. Malformed input
// yields an empty AnswerSet.
func NormalizeJSON(data []byte) AnswerSet {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Normalize(nil)
	}
	return Normalize(raw)
}

func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func stringsOf(in []any) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func jurisdictionOf(m map[string]any) (Jurisdiction, bool) {
	state, _ := m["state"].(string)
	county, _ := m["county"].(string)
	if state == "" && county == "" {
		return Jurisdiction{}, false
	}
	return Jurisdiction{State: state, County: county}, true
}
