package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/checklist/internal/models"
	"github.com/adanyl0v/checklist/internal/rules"
	"github.com/adanyl0v/checklist/internal/store"
)

type SyncParams struct {
	SubjectID    string
	ActorID      string
	GenerationID string
	Stubs        []rules.TaskStub
}

type SyncResult struct {
	Deleted    int64
	Inserted   int64
	Superseded bool
	Err        error
}

// Synchronizer replaces the personalized tasks of a subject with a fresh
// set of stubs. Custom tasks are never touched.
type Synchronizer struct {
	logger zerolog.Logger
	store  store.Store
}

func NewSynchronizer(logger zerolog.Logger, st store.Store) *Synchronizer {
	return &Synchronizer{
		logger: logger,
		store:  st,
	}
}

// Synchronize uses an atomic replace when the store offers one. Otherwise
// it deletes, inserts and then reconciles: of all personalized records of
// the subject only those of the greatest generation id are kept, so
// interleaved runs converge on a single answer set.
func (s *Synchronizer) Synchronize(ctx context.Context, params SyncParams) SyncResult {
	tasks := make([]*models.Task, len(params.Stubs))
	for i, stub := range params.Stubs {
		tasks[i] = &models.Task{
			SubjectID:      params.SubjectID,
			Title:          stub.Title,
			Category:       stub.Category,
			Description:    stub.Description,
			Status:         models.StatusPending,
			IsPersonalized: true,
			IsCustom:       false,
			GenerationID:   params.GenerationID,
			Position:       i,
			CreatedBy:      params.ActorID,
		}
	}

	if replacer, ok := s.store.(store.Replacer); ok {
		deleted, err := replacer.ReplacePersonalized(ctx, params.SubjectID, tasks)
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("subject_id", params.SubjectID).
				Str("generation_id", params.GenerationID).
				Msg("failed to replace personalized tasks")
			return SyncResult{Err: fmt.Errorf("replacing personalized tasks: %w", err)}
		}
		s.logger.Debug().
			Str("subject_id", params.SubjectID).
			Int64("deleted", deleted).
			Int("inserted", len(tasks)).
			Msg("replaced personalized tasks")
		return SyncResult{Deleted: deleted, Inserted: int64(len(tasks))}
	}

	return s.replaceAndReconcile(ctx, params, tasks)
}

func (s *Synchronizer) replaceAndReconcile(ctx context.Context, params SyncParams, tasks []*models.Task) SyncResult {
	var result SyncResult

	deleted, err := s.store.Delete(ctx, store.Filter{
		SubjectID:    params.SubjectID,
		Personalized: store.Bool(true),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("subject_id", params.SubjectID).
			Msg("failed to delete personalized tasks")
		result.Err = fmt.Errorf("deleting personalized tasks: %w", err)
		return result
	}
	result.Deleted = deleted

	if len(tasks) > 0 {
		if err = s.store.Insert(ctx, tasks); err != nil {
			s.logger.Error().
				Err(err).
				Str("subject_id", params.SubjectID).
				Msg("failed to insert personalized tasks")
			result.Err = fmt.Errorf("inserting personalized tasks: %w", err)
			return result
		}
		result.Inserted = int64(len(tasks))
	}

	current, err := s.store.List(ctx, store.Filter{
		SubjectID:    params.SubjectID,
		Personalized: store.Bool(true),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("subject_id", params.SubjectID).
			Msg("failed to list personalized tasks")
		result.Err = fmt.Errorf("reconciling personalized tasks: %w", err)
		return result
	}

	latest := params.GenerationID
	for _, task := range current {
		if task.GenerationID > latest {
			latest = task.GenerationID
		}
	}
	if latest == params.GenerationID && len(current) == len(tasks) {
		return result
	}

	stale, err := s.store.Delete(ctx, store.Filter{
		SubjectID:        params.SubjectID,
		Personalized:     store.Bool(true),
		ExceptGeneration: latest,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("subject_id", params.SubjectID).
			Msg("failed to delete stale personalized tasks")
		result.Err = fmt.Errorf("reconciling personalized tasks: %w", err)
		return result
	}
	result.Superseded = latest != params.GenerationID

	s.logger.Warn().
		Str("subject_id", params.SubjectID).
		Str("generation_id", params.GenerationID).
		Str("kept_generation_id", latest).
		Int64("stale", stale).
		Msg("reconciled concurrent generations")
	return result
}
