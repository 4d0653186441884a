package progress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/checklist/internal/models"
	"github.com/adanyl0v/checklist/internal/progress"
)

func task(id string, category models.Category, status models.Status) *models.Task {
	return &models.Task{ID: id, Title: "task " + id, Category: category, Status: status}
}

func TestSummarize(t *testing.T) {
	t.Run("Should be zero for no tasks", func(t *testing.T) {
		s := progress.Summarize(nil)
		assert.Equal(t, 0, s.Total)
		assert.Equal(t, 0, s.Completed)
		assert.Equal(t, float64(0), s.Percentage)
		assert.Empty(t, s.Categories)
	})

	t.Run("Should group by category in display order", func(t *testing.T) {
		s := progress.Summarize([]*models.Task{
			task("1", models.CustomCategory("pets"), models.StatusCompleted),
			task("2", models.CategoryFinancial, models.StatusPending),
			task("3", models.CategoryImmediate, models.StatusCompleted),
			task("4", models.CategoryFinancial, models.StatusCompleted),
			task("5", models.CustomCategory("family"), models.StatusInProgress),
		})

		assert.Equal(t, 5, s.Total)
		assert.Equal(t, 3, s.Completed)
		assert.InDelta(t, 60.0, s.Percentage, 0.001)

		require.Len(t, s.Categories, 4)
		assert.Equal(t, "immediate", s.Categories[0].Category)
		assert.Equal(t, "Immediate Needs", s.Categories[0].Label)
		assert.Equal(t, "financial", s.Categories[1].Category)
		assert.Equal(t, 1, s.Categories[1].Completed)
		assert.Equal(t, 2, s.Categories[1].Total)
		assert.InDelta(t, 50.0, s.Categories[1].Percentage, 0.001)
		assert.Equal(t, "family", s.Categories[2].Category)
		assert.Equal(t, float64(0), s.Categories[2].Percentage)
		assert.Equal(t, "pets", s.Categories[3].Category)
	})

	t.Run("Should not count in-progress as completed", func(t *testing.T) {
		s := progress.Summarize([]*models.Task{task("1", models.CategoryLegal, models.StatusInProgress)})
		assert.Equal(t, 0, s.Completed)
		assert.Equal(t, 1, s.Total)
	})
}

func TestView(t *testing.T) {
	original := []*models.Task{
		task("a", models.CategoryLegal, models.StatusPending),
		task("b", models.CategoryLegal, models.StatusCompleted),
	}
	v := progress.NewView(original)

	t.Run("Should toggle locally without touching the input", func(t *testing.T) {
		status, ok := v.Toggle("a")
		require.True(t, ok)
		assert.Equal(t, models.StatusCompleted, status)
		assert.Equal(t, models.StatusPending, original[0].Status)
		assert.Equal(t, 100.0, v.Summary().Percentage)
	})

	t.Run("Should apply the last write", func(t *testing.T) {
		assert.True(t, v.SetStatus("b", models.StatusInProgress))
		assert.True(t, v.SetStatus("b", models.StatusPending))
		assert.Equal(t, models.StatusPending, v.Tasks()[1].Status)
	})

	t.Run("Should ignore unknown ids and statuses", func(t *testing.T) {
		_, ok := v.Toggle("missing")
		assert.False(t, ok)
		assert.False(t, v.SetStatus("a", "archived"))
		assert.False(t, v.SetStatus("missing", models.StatusPending))
	})
}
