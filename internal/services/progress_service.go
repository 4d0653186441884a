package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/checklist/internal/progress"
	"github.com/adanyl0v/checklist/internal/store"
)

type progressServiceImpl struct {
	logger zerolog.Logger
	store  store.Store
}

func NewProgressService(logger zerolog.Logger, st store.Store) ProgressService {
	return &progressServiceImpl{
		logger: logger,
		store:  st,
	}
}

func (s *progressServiceImpl) GetProgress(ctx context.Context, subjectID string) (*progress.Summary, error) {
	tasks, err := s.store.List(ctx, store.Filter{SubjectID: subjectID})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("subject_id", subjectID).
			Msg("failed to select tasks")
		return nil, err
	}

	summary := progress.NewView(tasks).Summary()
	s.logger.Debug().
		Str("subject_id", subjectID).
		Int("completed", summary.Completed).
		Int("total", summary.Total).
		Msg("summarized progress")
	return &summary, nil
}
