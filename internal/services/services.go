package services

import (
	"context"
	"errors"

	"github.com/adanyl0v/checklist/internal/models"
	"github.com/adanyl0v/checklist/internal/progress"
	"github.com/adanyl0v/checklist/internal/questionnaire"
	"github.com/adanyl0v/checklist/internal/rules"
	"github.com/adanyl0v/checklist/internal/store"
)

var (
	ErrTaskNotFound      = store.ErrTaskNotFound
	ErrInvalidTaskStatus = errors.New("invalid task status")
	ErrInvalidCategory   = errors.New("invalid task category")
	ErrEmptyTitle        = errors.New("task title is empty")
	ErrTaskNotCustom     = errors.New("only custom tasks can be deleted")
	ErrEmptySubject      = errors.New("subject id is empty")
)

type GenerationService interface {
	// Generate normalizes the answers, evaluates the rule table of the
	// selected flow and replaces the personalized tasks of the subject.
	//
	// It never fails the caller: any error is reported in the Err field
	// of the result, after being logged and counted.
	Generate(ctx context.Context, params GenerateParams) *GenerationResult

	// Preview runs the same evaluation without touching the store.
	Preview(params PreviewParams) *Preview
}

type TaskService interface {
	// CreateCustomTask adds a user-authored task. Custom tasks survive
	// regeneration.
	//
	// It returns ErrEmptyTitle if the title is blank.
	CreateCustomTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	GetTasks(ctx context.Context, params GetTasksParams) ([]*models.Task, error)

	// UpdateTask edits the title, description or category of a task.
	//
	// It returns ErrTaskNotFound if the subject has no such task.
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error)

	// UpdateTaskStatus returns ErrInvalidTaskStatus for statuses outside
	// pending, in_progress and completed.
	UpdateTaskStatus(ctx context.Context, params UpdateTaskStatusParams) (*models.Task, error)

	// ToggleTaskStatus flips a checklist checkbox. Concurrent toggles are
	// not merged: the last write wins.
	ToggleTaskStatus(ctx context.Context, params TaskRef) (*models.Task, error)

	// DeleteTask removes a custom task. Personalized tasks are owned by
	// generation and return ErrTaskNotCustom.
	DeleteTask(ctx context.Context, params TaskRef) error
}

type ProgressService interface {
	GetProgress(ctx context.Context, subjectID string) (*progress.Summary, error)
}

type GenerateParams struct {
	SubjectID string
	ActorID   string
	// FlowType is optional. When empty the flow is inferred from the
	// answers.
	FlowType questionnaire.FlowType
	Answers  questionnaire.AnswerSet
}

type GenerationResult struct {
	SubjectID    string
	GenerationID string
	Flow         questionnaire.FlowType
	MatchedRules []string
	Tasks        []rules.TaskStub
	Deleted      int64
	Inserted     int64
	// Superseded is set when a concurrent run with a newer generation id
	// won and this run's records were discarded.
	Superseded bool
	Err        error
}

func (r *GenerationResult) OK() bool {
	return r.Err == nil
}

type PreviewParams struct {
	FlowType questionnaire.FlowType
	Answers  questionnaire.AnswerSet
}

type Preview struct {
	Flow         questionnaire.FlowType
	MatchedRules []string
	Tasks        []rules.TaskStub
}

type CreateTaskParams struct {
	SubjectID   string
	ActorID     string
	Title       string
	Description string
	Category    string
}

type GetTasksParams struct {
	SubjectID string
	Category  string
	Status    models.Status
	// Origin is "personalized", "custom" or empty for both.
	Origin string
}

type UpdateTaskParams struct {
	SubjectID   string
	ID          string
	Title       *string
	Description *string
	Category    *string
}

type UpdateTaskStatusParams struct {
	SubjectID string
	ID        string
	Status    models.Status
}

type TaskRef struct {
	SubjectID string
	ID        string
}

const (
	OriginPersonalized = "personalized"
	OriginCustom       = "custom"
)
