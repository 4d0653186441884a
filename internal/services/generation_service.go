package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/checklist/internal/metrics"
	"github.com/adanyl0v/checklist/internal/questionnaire"
	"github.com/adanyl0v/checklist/internal/rules"
)

const defaultGenerationTimeout = 30 * time.Second

type generationServiceImpl struct {
	logger    zerolog.Logger
	evaluator *rules.Evaluator
	sync      *Synchronizer
	metrics   *metrics.Metrics
	timeout   time.Duration
}

func NewGenerationService(
	logger zerolog.Logger,
	evaluator *rules.Evaluator,
	synchronizer *Synchronizer,
	m *metrics.Metrics,
	timeout time.Duration,
) GenerationService {
	if timeout <= 0 {
		timeout = defaultGenerationTimeout
	}
	return &generationServiceImpl{
		logger:    logger,
		evaluator: evaluator,
		sync:      synchronizer,
		metrics:   m,
		timeout:   timeout,
	}
}

func (s *generationServiceImpl) evaluate(flowType questionnaire.FlowType, answers questionnaire.AnswerSet) (questionnaire.FlowType, []string, []rules.TaskStub) {
	if flowType != "" {
		answers = answers.WithFlow(flowType)
	}
	flow := s.evaluator.SelectFlow(answers)
	stubs := rules.Dedupe(s.evaluator.EvaluateFlow(flow, answers))
	return flow, s.evaluator.MatchedRules(flow, answers), stubs
}

func (s *generationServiceImpl) Preview(params PreviewParams) *Preview {
	flow, matched, stubs := s.evaluate(params.FlowType, params.Answers)
	s.logger.Debug().
		Str("flow", string(flow)).
		Int("tasks", len(stubs)).
		Msg("previewed tasks")
	return &Preview{
		Flow:         flow,
		MatchedRules: matched,
		Tasks:        stubs,
	}
}

func (s *generationServiceImpl) Generate(ctx context.Context, params GenerateParams) *GenerationResult {
	start := time.Now()
	flow, matched, stubs := s.evaluate(params.FlowType, params.Answers)
	result := &GenerationResult{
		SubjectID:    params.SubjectID,
		Flow:         flow,
		MatchedRules: matched,
		Tasks:        stubs,
	}
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveGeneration(string(flow), result.OK(), len(stubs), time.Since(start))
		}
	}()

	if params.SubjectID == "" {
		s.logger.Error().Msg("no subject id provided")
		result.Err = ErrEmptySubject
		return result
	}

	id, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate generation id")
		result.Err = fmt.Errorf("generating generation id: %w", err)
		return result
	}
	result.GenerationID = id.String()

	// Synchronization is detached from request cancellation and bounded
	// by its own timeout.
	syncCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	sync := s.sync.Synchronize(syncCtx, SyncParams{
		SubjectID:    params.SubjectID,
		ActorID:      params.ActorID,
		GenerationID: result.GenerationID,
		Stubs:        stubs,
	})
	result.Deleted = sync.Deleted
	result.Inserted = sync.Inserted
	result.Superseded = sync.Superseded
	result.Err = sync.Err
	if result.Err != nil {
		s.logger.Error().
			Err(result.Err).
			Str("subject_id", params.SubjectID).
			Str("flow", string(flow)).
			Msg("task generation failed")
		return result
	}
	s.logger.Debug().
		Strs("matched_rules", matched).
		Str("generation_id", result.GenerationID).
		Msg("evaluated rules")

	s.logger.Info().
		Str("subject_id", params.SubjectID).
		Str("actor_id", params.ActorID).
		Str("flow", string(flow)).
		Int64("deleted", result.Deleted).
		Int64("inserted", result.Inserted).
		Msg("generated tasks")
	return result
}
