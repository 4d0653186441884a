// Package rules holds the declarative task tables and the evaluator that
// turns an AnswerSet into an ordered list of task stubs.
//
// Each flow has its own table. Tables are walked in declaration order and
// that order is the only ordering signal of the output: there is no
// priority field and no time component.
package rules

import (
	"github.com/adanyl0v/checklist/internal/models"
	"github.com/adanyl0v/checklist/internal/questionnaire"
)

// TaskTemplate is the authored form of a task a rule may emit.
type TaskTemplate struct {
	Title       string          `validate:"required,max=255"`
	Category    models.Category `validate:"required"`
	Description string          `validate:"max=2000"`
}

// TaskStub is an in-memory candidate task that has not been persisted.
type TaskStub struct {
	Title       string          `json:"title"`
	Category    models.Category `json:"category"`
	Description string          `json:"description,omitempty"`
}

func (t TaskTemplate) Stub() TaskStub {
	return TaskStub{
		Title:       t.Title,
		Category:    t.Category,
		Description: t.Description,
	}
}

type Rule struct {
	Name  string         `validate:"required"`
	When  Predicate      `validate:"-"`
	Tasks []TaskTemplate `validate:"required,min=1,dive"`
}

type Table struct {
	Flow  questionnaire.FlowType `validate:"required"`
	Rules []Rule                 `validate:"dive"`
}

// Task is shorthand for authoring a template inside a table.
func Task(title string, category models.Category, description string) TaskTemplate {
	return TaskTemplate{
		Title:       title,
		Category:    category,
		Description: description,
	}
}
