package rules

import (
	"fmt"

	"github.com/adanyl0v/checklist/internal/questionnaire"
)

// PlanningKeys are questions only the planning-ahead questionnaire asks.
// A submission without an explicit flow that answers any of them is
// evaluated against the planning-ahead table.
var PlanningKeys = []string{
	KeyPlanningReason,
	KeyPlanningFor,
	KeyWillStatus,
	KeyHealthcareDirective,
	KeyPowerOfAttorney,
}

type Evaluator struct {
	tables map[questionnaire.FlowType]Table
}

// NewEvaluator validates every table and indexes it by flow. Declaring two
// tables for the same flow is an error.
func NewEvaluator(tables ...Table) (*Evaluator, error) {
	e := &Evaluator{tables: make(map[questionnaire.FlowType]Table, len(tables))}
	for _, t := range tables {
		if err := ValidateTable(t); err != nil {
			return nil, err
		}
		if _, exists := e.tables[t.Flow]; exists {
			return nil, fmt.Errorf("%w: duplicate table for flow %q", ErrInvalidTable, t.Flow)
		}
		e.tables[t.Flow] = t
	}
	return e, nil
}

// Default returns an evaluator over the built-in recent-loss and
// planning-ahead tables. It panics if a built-in table is invalid.
func Default() *Evaluator {
	e, err := NewEvaluator(RecentLossTable(), PlanningAheadTable())
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Evaluator) Table(flow questionnaire.FlowType) (Table, bool) {
	t, ok := e.tables[flow]
	return t, ok
}

// SelectFlow returns the explicit flow of answers when the evaluator has a
// table for it. Otherwise it infers the flow from the presence of planning
// keys, defaulting to recent loss.
func (e *Evaluator) SelectFlow(answers questionnaire.AnswerSet) questionnaire.FlowType {
	if flow := answers.Flow(); flow != "" {
		if _, ok := e.tables[flow]; ok {
			return flow
		}
	}
	for _, key := range PlanningKeys {
		if answers.Answered(key) {
			return questionnaire.FlowPlanningAhead
		}
	}
	return questionnaire.FlowRecentLoss
}

// Evaluate selects a table for answers and evaluates it.
func (e *Evaluator) Evaluate(answers questionnaire.AnswerSet) []TaskStub {
	return e.EvaluateFlow(e.SelectFlow(answers), answers)
}

// EvaluateFlow walks the table of flow in declaration order and appends the
// templates of every matching rule. An unknown flow yields no stubs. The
// result may contain repeated titles; see Dedupe.
func (e *Evaluator) EvaluateFlow(flow questionnaire.FlowType, answers questionnaire.AnswerSet) []TaskStub {
	t, ok := e.tables[flow]
	if !ok {
		return nil
	}

	stubs := make([]TaskStub, 0, len(t.Rules))
	for _, r := range t.Rules {
		if !r.When.Match(answers) {
			continue
		}
		for _, tmpl := range r.Tasks {
			stubs = append(stubs, tmpl.Stub())
		}
	}
	return stubs
}

// MatchedRules returns the names of the rules of flow that match answers,
// in table order.
func (e *Evaluator) MatchedRules(flow questionnaire.FlowType, answers questionnaire.AnswerSet) []string {
	t, ok := e.tables[flow]
	if !ok {
		return nil
	}

	var names []string
	for _, r := range t.Rules {
		if r.When.Match(answers) {
			names = append(names, r.Name)
		}
	}
	return names
}
