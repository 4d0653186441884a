package store

import (
	"time"

	"github.com/adanyl0v/checklist/internal/models"
)

type taskRow struct {
	ID             string    `db:"id"`
	SubjectID      string    `db:"subject_id"`
	Title          string    `db:"title"`
	Category       string    `db:"category"`
	Description    string    `db:"description"`
	Status         string    `db:"status"`
	IsPersonalized bool      `db:"is_personalized"`
	IsCustom       bool      `db:"is_custom"`
	GenerationID   string    `db:"generation_id"`
	Position       int       `db:"position"`
	CreatedBy      string    `db:"created_by"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r *taskRow) toTask() *models.Task {
	return &models.Task{
		ID:             r.ID,
		SubjectID:      r.SubjectID,
		Title:          r.Title,
		Category:       models.ParseCategory(r.Category),
		Description:    r.Description,
		Status:         models.Status(r.Status),
		IsPersonalized: r.IsPersonalized,
		IsCustom:       r.IsCustom,
		GenerationID:   r.GenerationID,
		Position:       r.Position,
		CreatedBy:      r.CreatedBy,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toTasks(rows []*taskRow) []*models.Task {
	tasks := make([]*models.Task, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, r.toTask())
	}
	return tasks
}
