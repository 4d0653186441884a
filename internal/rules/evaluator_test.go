package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/checklist/internal/models"
	"github.com/adanyl0v/checklist/internal/questionnaire"
	"github.com/adanyl0v/checklist/internal/rules"
)

func titles(stubs []rules.TaskStub) []string {
	out := make([]string, len(stubs))
	for i, s := range stubs {
		out[i] = s.Title
	}
	return out
}

func generate(raw map[string]any) []rules.TaskStub {
	return rules.Dedupe(rules.Default().Evaluate(questionnaire.Normalize(raw)))
}

func tableTitles(t rules.Table) map[string]bool {
	out := make(map[string]bool)
	for _, r := range t.Rules {
		for _, tmpl := range r.Tasks {
			out[tmpl.Title] = true
		}
	}
	return out
}

func TestEvaluator_EmptyAnswers(t *testing.T) {
	stubs := generate(map[string]any{})

	assert.Equal(t, []string{
		rules.TitleDeathCertificate,
		"Gather important documents",
		"Notify the Social Security Administration",
		"Forward or hold mail",
		"File final income tax returns",
	}, titles(stubs))
	assert.Equal(t, models.CategoryImmediate, stubs[0].Category)
}

func TestEvaluator_FinancialAccounts(t *testing.T) {
	stubs := generate(map[string]any{
		"financial_accounts": []any{"Bank accounts", "Credit cards"},
	})

	got := titles(stubs)
	assert.Equal(t, 1, countOf(got, rules.TitleNotifyBanks))
	assert.Equal(t, 1, countOf(got, rules.TitleCancelCreditCards))
	assert.Less(t, indexOf(got, rules.TitleNotifyBanks), indexOf(got, rules.TitleCancelCreditCards))
}

func TestEvaluator_PlanningAhead(t *testing.T) {
	answers := questionnaire.Normalize(map[string]any{
		"will_status":          "No",
		"healthcare_directive": "No",
		"planning_reason":      "Health concerns",
	})
	evaluator := rules.Default()

	require.Equal(t, questionnaire.FlowPlanningAhead, evaluator.SelectFlow(answers))

	stubs := rules.Dedupe(evaluator.Evaluate(answers))
	assert.Equal(t, []string{
		rules.TitleAssetInventory,
		rules.TitleBeneficiaryReview,
		rules.TitleEstateAttorney,
		"Draft a will",
		rules.TitleAdvanceDirective,
		rules.TitleHealthcareProxy,
		"Review long-term care options",
		"Discuss care preferences with family",
		rules.TitleShareDocumentPlace,
	}, titles(stubs))

	recentLoss := tableTitles(rules.RecentLossTable())
	for _, s := range stubs {
		assert.False(t, recentLoss[s.Title], "unexpected recent-loss task %q", s.Title)
	}
}

func TestEvaluator_SelectFlow(t *testing.T) {
	evaluator := rules.Default()

	t.Run("Should default to recent loss", func(t *testing.T) {
		answers := questionnaire.Normalize(map[string]any{"deceased_had_will": "Yes"})
		assert.Equal(t, questionnaire.FlowRecentLoss, evaluator.SelectFlow(answers))
	})

	t.Run("Should treat a negative planning answer as present", func(t *testing.T) {
		answers := questionnaire.Normalize(map[string]any{"power_of_attorney": "No"})
		assert.Equal(t, questionnaire.FlowPlanningAhead, evaluator.SelectFlow(answers))
	})

	t.Run("Should ignore blank planning answers", func(t *testing.T) {
		answers := questionnaire.Normalize(map[string]any{"planning_reason": ""})
		assert.Equal(t, questionnaire.FlowRecentLoss, evaluator.SelectFlow(answers))
	})

	t.Run("Should prefer an explicit flow over inferred keys", func(t *testing.T) {
		answers := questionnaire.Normalize(map[string]any{"planning_reason": "Health concerns"}).
			WithFlow(questionnaire.FlowRecentLoss)
		assert.Equal(t, questionnaire.FlowRecentLoss, evaluator.SelectFlow(answers))
	})

	t.Run("Should fall back to inference for a flow without a table", func(t *testing.T) {
		e, err := rules.NewEvaluator(rules.RecentLossTable())
		require.NoError(t, err)
		answers := questionnaire.Normalize(nil).WithFlow(questionnaire.FlowPlanningAhead)
		assert.Equal(t, questionnaire.FlowRecentLoss, e.SelectFlow(answers))
	})
}

func TestEvaluator_RecentLossRules(t *testing.T) {
	t.Run("Should combine executor and will answers", func(t *testing.T) {
		got := titles(generate(map[string]any{
			"is_executor":       "Yes",
			"deceased_had_will": "Yes",
		}))
		assert.Contains(t, got, "File the will with the probate court")
		assert.Contains(t, got, "Open an estate bank account")
		assert.NotContains(t, got, "Apply for letters of administration")
	})

	t.Run("Should not match options case-insensitively", func(t *testing.T) {
		got := titles(generate(map[string]any{
			"financial_accounts": []any{"bank accounts"},
			"has_pets":           "yes",
		}))
		assert.NotContains(t, got, rules.TitleNotifyBanks)
		assert.NotContains(t, got, "Arrange care for pets")
	})

	t.Run("Should require a known jurisdiction", func(t *testing.T) {
		unknown := titles(generate(map[string]any{
			"jurisdiction": map[string]any{"state": "unknown", "county": "Travis"},
		}))
		assert.NotContains(t, unknown, "Contact the local probate court")

		known := titles(generate(map[string]any{
			"jurisdiction": map[string]any{"state": "Texas"},
		}))
		assert.Contains(t, known, "Contact the local probate court")
		assert.NotContains(t, known, "Check county recorder requirements for property transfers")
	})

	t.Run("Should require both benefit and relationship for survivor benefits", func(t *testing.T) {
		got := titles(generate(map[string]any{"benefits": []any{"Social Security"}}))
		assert.NotContains(t, got, "Apply for Social Security survivor benefits")

		got = titles(generate(map[string]any{
			"benefits":     []any{"Social Security"},
			"relationship": "Spouse or partner",
		}))
		assert.Contains(t, got, "Apply for Social Security survivor benefits")
	})

	t.Run("Should accept either veterans answer", func(t *testing.T) {
		got := titles(generate(map[string]any{"was_veteran": "Yes"}))
		assert.Contains(t, got, "Request VA burial and survivor benefits")
	})

	t.Run("Should emit custom categories for family tasks", func(t *testing.T) {
		stubs := generate(map[string]any{"had_dependents": "Yes"})
		idx := indexOf(titles(stubs), "Arrange guardianship or support for dependents")
		require.GreaterOrEqual(t, idx, 0)
		assert.True(t, stubs[idx].Category.IsCustom())
		assert.Equal(t, "family", stubs[idx].Category.String())
	})
}

func TestEvaluator_DuplicateTemplates(t *testing.T) {
	evaluator := rules.Default()
	answers := questionnaire.Normalize(map[string]any{
		"financial_accounts": []any{"Credit cards", "Loans or mortgages"},
		"property":           []any{"Home"},
		"insurance":          []any{"Homeowners or renters insurance"},
	})

	raw := titles(evaluator.Evaluate(answers))
	assert.Equal(t, 2, countOf(raw, rules.TitleCreditBureaus))
	assert.Equal(t, 2, countOf(raw, rules.TitleHomeInsurance))

	deduped := titles(rules.Dedupe(evaluator.Evaluate(answers)))
	assert.Equal(t, 1, countOf(deduped, rules.TitleCreditBureaus))
	assert.Equal(t, 1, countOf(deduped, rules.TitleHomeInsurance))
	assert.Equal(t, indexOf(deduped, rules.TitleCancelCreditCards)+1, indexOf(deduped, rules.TitleCreditBureaus))
}

func TestEvaluator_EvaluateFlowUnknown(t *testing.T) {
	assert.Empty(t, rules.Default().EvaluateFlow("unknown", questionnaire.Normalize(nil)))
}

func TestEvaluator_MatchedRules(t *testing.T) {
	names := rules.Default().MatchedRules(
		questionnaire.FlowRecentLoss,
		questionnaire.Normalize(map[string]any{"has_pets": "Yes"}),
	)
	assert.Equal(t, []string{"immediate-anchors", "pets", "social-security", "closing-anchors"}, names)
}

func TestEvaluator_Deterministic(t *testing.T) {
	raw := map[string]any{
		"financial_accounts": []any{"Bank accounts", "Credit cards", "Retirement accounts"},
		"digital_accounts":   []any{"Email", "Subscriptions"},
		"is_executor":        "Yes",
	}
	first := titles(generate(raw))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, titles(generate(raw)))
	}
}

func indexOf(list []string, s string) int {
	for i, item := range list {
		if item == s {
			return i
		}
	}
	return -1
}

func countOf(list []string, s string) int {
	n := 0
	for _, item := range list {
		if item == s {
			n++
		}
	}
	return n
}
