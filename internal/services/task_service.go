package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/checklist/internal/metrics"
	"github.com/adanyl0v/checklist/internal/models"
	"github.com/adanyl0v/checklist/internal/store"
)

type taskServiceImpl struct {
	logger  zerolog.Logger
	store   store.Store
	metrics *metrics.Metrics
}

func NewTaskService(
	logger zerolog.Logger,
	st store.Store,
	m *metrics.Metrics,
) TaskService {
	return &taskServiceImpl{
		logger:  logger,
		store:   st,
		metrics: m,
	}
}

func (s *taskServiceImpl) CreateCustomTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	category := models.CategoryPersonal
	if label := strings.TrimSpace(params.Category); label != "" {
		category = models.ParseCategory(label)
	}

	task := &models.Task{
		SubjectID:   params.SubjectID,
		Title:       title,
		Category:    category,
		Description: params.Description,
		Status:      models.StatusPending,
		IsCustom:    true,
		CreatedBy:   params.ActorID,
	}

	err := s.store.Insert(ctx, []*models.Task{task})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("subject_id", params.SubjectID).
			Msg("failed to insert task")
		return nil, err
	}
	s.logger.Debug().
		Str("task_id", task.ID).
		Msg("inserted task")

	s.logger.Info().
		Str("task_id", task.ID).
		Str("subject_id", task.SubjectID).
		Msg("created custom task")
	return task, nil
}

func (s *taskServiceImpl) GetTasks(ctx context.Context, params GetTasksParams) ([]*models.Task, error) {
	if params.Status != "" && !params.Status.Valid() {
		return nil, ErrInvalidTaskStatus
	}

	filter := store.Filter{
		SubjectID: params.SubjectID,
		Category:  params.Category,
		Status:    params.Status,
	}
	switch params.Origin {
	case OriginPersonalized:
		filter.Personalized = store.Bool(true)
	case OriginCustom:
		filter.Custom = store.Bool(true)
	}

	tasks, err := s.store.List(ctx, filter)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("subject_id", params.SubjectID).
			Msg("failed to select tasks")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Str("subject_id", params.SubjectID).
		Msg("selected tasks")
	return tasks, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error) {
	var fields store.UpdateFields
	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		if title == "" {
			return nil, ErrEmptyTitle
		}
		fields.Title = &title
	}
	fields.Description = params.Description
	if params.Category != nil {
		category := models.ParseCategory(strings.TrimSpace(*params.Category))
		if !category.Valid() {
			return nil, ErrInvalidCategory
		}
		fields.Category = &category
	}

	if fields.Empty() {
		return s.store.Get(ctx, params.SubjectID, params.ID)
	}

	task, err := s.store.Update(ctx, params.SubjectID, params.ID, fields)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Error().
				Str("task_id", params.ID).
				Str("subject_id", params.SubjectID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", params.ID).
			Msg("failed to update task")
		return nil, err
	}
	s.logger.Debug().
		Str("task_id", task.ID).
		Msg("updated task")

	s.logger.Info().
		Str("task_id", task.ID).
		Str("subject_id", task.SubjectID).
		Msg("updated task")
	return task, nil
}

func (s *taskServiceImpl) UpdateTaskStatus(ctx context.Context, params UpdateTaskStatusParams) (*models.Task, error) {
	if !params.Status.Valid() {
		return nil, ErrInvalidTaskStatus
	}
	return s.setStatus(ctx, params.SubjectID, params.ID, params.Status)
}

func (s *taskServiceImpl) ToggleTaskStatus(ctx context.Context, params TaskRef) (*models.Task, error) {
	task, err := s.store.Get(ctx, params.SubjectID, params.ID)
	if err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Error().
				Err(err).
				Str("task_id", params.ID).
				Msg("failed to select task")
		}
		return nil, err
	}
	return s.setStatus(ctx, params.SubjectID, params.ID, task.Status.Toggle())
}

func (s *taskServiceImpl) setStatus(ctx context.Context, subjectID, id string, status models.Status) (*models.Task, error) {
	task, err := s.store.Update(ctx, subjectID, id, store.UpdateFields{Status: &status})
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Error().
				Str("task_id", id).
				Str("subject_id", subjectID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to update task status")
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ObserveStatusUpdate(string(status))
	}
	s.logger.Debug().
		Str("task_id", id).
		Str("status", string(status)).
		Msg("updated task status")

	s.logger.Info().
		Str("task_id", id).
		Str("subject_id", subjectID).
		Msg("updated task status")
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, params TaskRef) error {
	task, err := s.store.Get(ctx, params.SubjectID, params.ID)
	if err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Error().
				Err(err).
				Str("task_id", params.ID).
				Msg("failed to select task")
		}
		return err
	}
	if !task.IsCustom {
		return ErrTaskNotCustom
	}

	n, err := s.store.Delete(ctx, store.Filter{
		SubjectID: params.SubjectID,
		ID:        params.ID,
		Custom:    store.Bool(true),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("task_id", params.ID).
			Msg("failed to delete task")
		return err
	}
	if n == 0 {
		s.logger.Error().
			Str("task_id", params.ID).
			Str("subject_id", params.SubjectID).
			Msg("task not found")
		return ErrTaskNotFound
	}
	s.logger.Debug().
		Str("task_id", params.ID).
		Msg("deleted task")

	s.logger.Info().
		Str("task_id", params.ID).
		Str("subject_id", params.SubjectID).
		Msg("deleted task")
	return nil
}
