// Package progress derives checklist progress from stored task records.
package progress

import (
	"sort"

	"github.com/adanyl0v/checklist/internal/models"
)

type CategoryProgress struct {
	Category   string  `json:"category"`
	Label      string  `json:"label"`
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

type Summary struct {
	Completed  int                `json:"completed"`
	Total      int                `json:"total"`
	Percentage float64            `json:"percentage"`
	Categories []CategoryProgress `json:"categories"`
}

// Summarize groups tasks by category and counts completed ones. Canonical
// categories come first in display order, custom categories follow sorted
// by label. Only categories with at least one task are listed.
func Summarize(tasks []*models.Task) Summary {
	counts := make(map[models.Category]*CategoryProgress)
	var order []models.Category

	var summary Summary
	for _, task := range tasks {
		if task == nil {
			continue
		}
		cp, ok := counts[task.Category]
		if !ok {
			cp = &CategoryProgress{
				Category: task.Category.String(),
				Label:    task.Category.Label(),
			}
			counts[task.Category] = cp
			order = append(order, task.Category)
		}

		cp.Total++
		summary.Total++
		if task.Status == models.StatusCompleted {
			cp.Completed++
			summary.Completed++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.Rank() != b.Rank() {
			return a.Rank() < b.Rank()
		}
		return a.String() < b.String()
	})

	summary.Categories = make([]CategoryProgress, 0, len(order))
	for _, c := range order {
		cp := counts[c]
		cp.Percentage = percentage(cp.Completed, cp.Total)
		summary.Categories = append(summary.Categories, *cp)
	}
	summary.Percentage = percentage(summary.Completed, summary.Total)
	return summary
}

func percentage(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
