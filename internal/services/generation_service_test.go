package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/checklist/internal/metrics"
	"github.com/adanyl0v/checklist/internal/models"
	"github.com/adanyl0v/checklist/internal/questionnaire"
	"github.com/adanyl0v/checklist/internal/rules"
	"github.com/adanyl0v/checklist/internal/services"
	"github.com/adanyl0v/checklist/internal/store"
)

func newSQLiteStore(t *testing.T) *store.SQLite {
	t.Helper()
	ctx := context.Background()
	st, err := store.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, store.Migrate(ctx, st.DB(), store.DialectSQLite, zerolog.Nop()))
	return st
}

func newGenerationService(st store.Store, m *metrics.Metrics) services.GenerationService {
	logger := zerolog.Nop()
	return services.NewGenerationService(
		logger,
		rules.Default(),
		services.NewSynchronizer(logger, st),
		m,
		time.Second,
	)
}

func storedTitles(t *testing.T, st store.Store, filter store.Filter) []string {
	t.Helper()
	tasks, err := st.List(context.Background(), filter)
	require.NoError(t, err)
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Title
	}
	return out
}

func stubTitles(stubs []rules.TaskStub) []string {
	out := make([]string, len(stubs))
	for i, s := range stubs {
		out[i] = s.Title
	}
	return out
}

var (
	recentLossAnswers = questionnaire.Normalize(map[string]any{
		"financial_accounts": []any{"Bank accounts", "Credit cards"},
		"is_executor":        "Yes",
		"deceased_had_will":  "Yes",
		"has_pets":           "Yes",
	})
	planningAnswers = questionnaire.Normalize(map[string]any{
		"will_status":          "No",
		"healthcare_directive": "No",
		"planning_reason":      "Health concerns",
	})
)

func TestGenerationService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should persist deduplicated tasks as pending personalized records", func(t *testing.T) {
		st := newSQLiteStore(t)
		result := newGenerationService(st, metrics.New()).Generate(ctx, services.GenerateParams{
			SubjectID: "s1",
			ActorID:   "actor",
			Answers:   recentLossAnswers,
		})
		require.True(t, result.OK(), "%v", result.Err)
		assert.Equal(t, questionnaire.FlowRecentLoss, result.Flow)
		assert.NotEmpty(t, result.GenerationID)
		assert.Equal(t, int64(len(result.Tasks)), result.Inserted)

		tasks, err := st.List(ctx, store.Filter{SubjectID: "s1"})
		require.NoError(t, err)
		require.Len(t, tasks, len(result.Tasks))
		for i, task := range tasks {
			assert.Equal(t, result.Tasks[i].Title, task.Title)
			assert.Equal(t, models.StatusPending, task.Status)
			assert.True(t, task.IsPersonalized)
			assert.False(t, task.IsCustom)
			assert.Equal(t, "actor", task.CreatedBy)
			assert.Equal(t, result.GenerationID, task.GenerationID)
		}
	})

	t.Run("Should be idempotent in content", func(t *testing.T) {
		st := newSQLiteStore(t)
		svc := newGenerationService(st, metrics.New())
		params := services.GenerateParams{SubjectID: "s1", ActorID: "actor", Answers: recentLossAnswers}

		first := svc.Generate(ctx, params)
		require.True(t, first.OK())
		before := storedTitles(t, st, store.Filter{SubjectID: "s1"})

		second := svc.Generate(ctx, params)
		require.True(t, second.OK())
		assert.Equal(t, before, storedTitles(t, st, store.Filter{SubjectID: "s1"}))
		assert.Equal(t, int64(len(before)), second.Deleted)
	})

	t.Run("Should replace every task of the previous answers", func(t *testing.T) {
		st := newSQLiteStore(t)
		svc := newGenerationService(st, metrics.New())

		a := svc.Generate(ctx, services.GenerateParams{SubjectID: "s1", ActorID: "actor", Answers: recentLossAnswers})
		require.True(t, a.OK())
		b := svc.Generate(ctx, services.GenerateParams{SubjectID: "s1", ActorID: "actor", Answers: planningAnswers})
		require.True(t, b.OK())
		assert.Equal(t, questionnaire.FlowPlanningAhead, b.Flow)

		assert.Equal(t, stubTitles(b.Tasks), storedTitles(t, st, store.Filter{SubjectID: "s1"}))
	})

	t.Run("Should keep custom tasks across regeneration", func(t *testing.T) {
		st := newSQLiteStore(t)
		svc := newGenerationService(st, metrics.New())
		require.NoError(t, st.Insert(ctx, []*models.Task{{
			SubjectID: "s1",
			Title:     "Call Aunt Maria",
			Category:  models.CategoryPersonal,
			IsCustom:  true,
			CreatedBy: "actor",
		}}))

		result := svc.Generate(ctx, services.GenerateParams{SubjectID: "s1", ActorID: "actor", Answers: recentLossAnswers})
		require.True(t, result.OK())

		custom := storedTitles(t, st, store.Filter{SubjectID: "s1", Custom: store.Bool(true)})
		assert.Equal(t, []string{"Call Aunt Maria"}, custom)
	})

	t.Run("Should honour an explicit flow", func(t *testing.T) {
		st := newSQLiteStore(t)
		result := newGenerationService(st, metrics.New()).Generate(ctx, services.GenerateParams{
			SubjectID: "s1",
			FlowType:  questionnaire.FlowRecentLoss,
			Answers:   planningAnswers,
		})
		require.True(t, result.OK())
		assert.Equal(t, questionnaire.FlowRecentLoss, result.Flow)
		assert.Contains(t, stubTitles(result.Tasks), rules.TitleDeathCertificate)
	})

	t.Run("Should finish when the caller is cancelled", func(t *testing.T) {
		st := newSQLiteStore(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		result := newGenerationService(st, metrics.New()).Generate(cancelled, services.GenerateParams{
			SubjectID: "s1",
			Answers:   recentLossAnswers,
		})
		require.True(t, result.OK(), "%v", result.Err)
		assert.NotEmpty(t, storedTitles(t, st, store.Filter{SubjectID: "s1"}))
	})

	t.Run("Should report store failures without failing", func(t *testing.T) {
		broken := &memoryStore{err: errors.New("store unavailable")}
		m := metrics.New()

		var result *services.GenerationResult
		require.NotPanics(t, func() {
			result = newGenerationService(broken, m).Generate(ctx, services.GenerateParams{
				SubjectID: "s1",
				Answers:   recentLossAnswers,
			})
		})
		require.Error(t, result.Err)
		assert.False(t, result.OK())
		assert.ErrorContains(t, result.Err, "store unavailable")
		assert.NotEmpty(t, result.Tasks)
		assert.Equal(t, 1.0, testutil.ToFloat64(
			m.GenerationRuns.WithLabelValues(string(questionnaire.FlowRecentLoss), metrics.OutcomeFailed),
		))
	})

	t.Run("Should require a subject", func(t *testing.T) {
		result := newGenerationService(newSQLiteStore(t), nil).Generate(ctx, services.GenerateParams{})
		assert.ErrorIs(t, result.Err, services.ErrEmptySubject)
	})
}

func TestGenerationService_Preview(t *testing.T) {
	st := newSQLiteStore(t)
	preview := newGenerationService(st, nil).Preview(services.PreviewParams{Answers: planningAnswers})

	assert.Equal(t, questionnaire.FlowPlanningAhead, preview.Flow)
	assert.Contains(t, preview.MatchedRules, "no-will")
	assert.Contains(t, stubTitles(preview.Tasks), rules.TitleEstateAttorney)
	assert.Empty(t, storedTitles(t, st, store.Filter{SubjectID: "s1"}))
}
