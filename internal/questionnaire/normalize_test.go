package questionnaire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/checklist/internal/questionnaire"
)

func TestNormalize(t *testing.T) {
	t.Run("Should treat nil input as an empty answer set", func(t *testing.T) {
		set := questionnaire.Normalize(nil)
		assert.Equal(t, 0, set.Len())
		assert.False(t, set.Answered("anything"))
	})

	t.Run("Should keep scalar strings verbatim", func(t *testing.T) {
		set := questionnaire.Normalize(map[string]any{"will_status": " No"})
		v, ok := set.Text("will_status")
		require.True(t, ok)
		assert.Equal(t, " No", v)
		assert.False(t, set.Equals("will_status", "No"))
	})

	t.Run("Should drop values of unexpected types", func(t *testing.T) {
		set := questionnaire.Normalize(map[string]any{
			"age":        42.0,
			"is_veteran": true,
			"nothing":    nil,
			"blank":      "   ",
			"nested":     map[string]any{"foo": "bar"},
			"":           "empty key",
		})
		assert.Equal(t, 0, set.Len())
	})

	t.Run("Should keep only string members of list answers", func(t *testing.T) {
		set := questionnaire.Normalize(map[string]any{
			"financial_accounts": []any{"Bank accounts", 3, nil, "", "Credit cards"},
			"empty_list":         []any{1, 2},
		})
		assert.Equal(t, []string{"Bank accounts", "Credit cards"}, set.List("financial_accounts"))
		assert.True(t, set.Includes("financial_accounts", "Credit cards"))
		assert.False(t, set.Answered("empty_list"))
	})

	t.Run("Should accept typed string slices", func(t *testing.T) {
		set := questionnaire.Normalize(map[string]any{
			"digital_accounts": []string{"Email", " "},
		})
		assert.Equal(t, []string{"Email"}, set.List("digital_accounts"))
	})

	t.Run("Should read jurisdiction objects", func(t *testing.T) {
		set := questionnaire.Normalize(map[string]any{
			"jurisdiction": map[string]any{"state": "Ohio", "county": 12},
			"nowhere":      map[string]any{"state": ""},
		})
		j, ok := set.Jurisdiction("jurisdiction")
		require.True(t, ok)
		assert.Equal(t, "Ohio", j.State)
		assert.Empty(t, j.County)
		assert.True(t, j.Known())
		assert.False(t, j.CountyKnown())
		assert.False(t, set.Answered("nowhere"))
	})

	t.Run("Should not alias the returned list", func(t *testing.T) {
		set := questionnaire.Normalize(map[string]any{"property": []string{"Home"}})
		list := set.List("property")
		list[0] = "Boat"
		assert.True(t, set.Includes("property", "Home"))
	})
}

func TestNormalizeJSON(t *testing.T) {
	t.Run("Should return an empty set for malformed json", func(t *testing.T) {
		set := questionnaire.NormalizeJSON([]byte(`{"will_status": `))
		assert.Equal(t, 0, set.Len())
	})

	t.Run("Should decode lists and jurisdictions", func(t *testing.T) {
		set := questionnaire.NormalizeJSON([]byte(`{
			"financial_accounts": ["Bank accounts"],
			"jurisdiction": {"state": "Texas", "county": "Travis"}
		}`))
		assert.Equal(t, []string{"financial_accounts", "jurisdiction"}, set.Keys())
		j, _ := set.Jurisdiction("jurisdiction")
		assert.True(t, j.CountyKnown())
	})
}

func TestAnswerSet_Answered(t *testing.T) {
	set := questionnaire.Normalize(map[string]any{
		"planning_reason":      "Health concerns",
		"healthcare_directive": "No",
		"assets":               []any{"Home"},
		"jurisdiction":         map[string]any{"state": "unknown"},
	})
	assert.True(t, set.Answered("planning_reason"))
	assert.True(t, set.Answered("healthcare_directive"))
	assert.True(t, set.Answered("assets"))
	assert.True(t, set.Answered("jurisdiction"))
	assert.False(t, set.Answered("will_status"))
}

func TestJurisdiction_Known(t *testing.T) {
	assert.False(t, questionnaire.Jurisdiction{}.Known())
	assert.False(t, questionnaire.Jurisdiction{State: "unknown", County: "Travis"}.Known())
	assert.False(t, questionnaire.Jurisdiction{State: "Texas", County: "unknown"}.CountyKnown())
	assert.True(t, questionnaire.Jurisdiction{State: "Texas", County: "Travis"}.CountyKnown())
}

func TestParseFlowType(t *testing.T) {
	flow, ok := questionnaire.ParseFlowType("planning_ahead")
	assert.True(t, ok)
	assert.Equal(t, questionnaire.FlowPlanningAhead, flow)

	_, ok = questionnaire.ParseFlowType("PLANNING_AHEAD")
	assert.False(t, ok)
}

func TestAnswerSet_WithFlow(t *testing.T) {
	set := questionnaire.Normalize(map[string]any{"will_status": "No"})
	tagged := set.WithFlow(questionnaire.FlowRecentLoss)
	assert.Equal(t, questionnaire.FlowType(""), set.Flow())
	assert.Equal(t, questionnaire.FlowRecentLoss, tagged.Flow())
	assert.True(t, tagged.Equals("will_status", "No"))
}
