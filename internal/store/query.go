package store

import (
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/adanyl0v/checklist/internal/models"
)

const tasksTable = "generated_tasks"

var taskColumns = []string{
	"id",
	"subject_id",
	"title",
	"category",
	"description",
	"status",
	"is_personalized",
	"is_custom",
	"generation_id",
	"position",
	"created_by",
	"created_at",
	"updated_at",
}

func columnList() string {
	return strings.Join(taskColumns, ", ")
}

var taskOrder = []string{"is_custom ASC", "position ASC", "created_at ASC", "id ASC"}

func filterConditions(f Filter) []squirrel.Sqlizer {
	var conds []squirrel.Sqlizer
	if f.ID != "" {
		conds = append(conds, squirrel.Eq{"id": f.ID})
	}
	if f.SubjectID != "" {
		conds = append(conds, squirrel.Eq{"subject_id": f.SubjectID})
	}
	if f.Personalized != nil {
		conds = append(conds, squirrel.Eq{"is_personalized": *f.Personalized})
	}
	if f.Custom != nil {
		conds = append(conds, squirrel.Eq{"is_custom": *f.Custom})
	}
	if f.Category != "" {
		conds = append(conds, squirrel.Eq{"category": f.Category})
	}
	if f.Status != "" {
		conds = append(conds, squirrel.Eq{"status": string(f.Status)})
	}
	if f.ExceptGeneration != "" {
		conds = append(conds, squirrel.NotEq{"generation_id": f.ExceptGeneration})
	}
	return conds
}

func selectTasks(f Filter, ph squirrel.PlaceholderFormat) squirrel.SelectBuilder {
	sb := squirrel.Select(taskColumns...).
		From(tasksTable).
		OrderBy(taskOrder...).
		PlaceholderFormat(ph)
	for _, cond := range filterConditions(f) {
		sb = sb.Where(cond)
	}
	return sb
}

func deleteTasks(f Filter, ph squirrel.PlaceholderFormat) (squirrel.DeleteBuilder, error) {
	if f.SubjectID == "" && f.ID == "" {
		return squirrel.DeleteBuilder{}, ErrUnboundedDelete
	}
	db := squirrel.Delete(tasksTable).PlaceholderFormat(ph)
	for _, cond := range filterConditions(f) {
		db = db.Where(cond)
	}
	return db, nil
}

func insertTasks(tasks []*models.Task, ph squirrel.PlaceholderFormat, values func(*models.Task) []any) squirrel.InsertBuilder {
	ib := squirrel.Insert(tasksTable).
		Columns(taskColumns...).
		PlaceholderFormat(ph)
	for _, task := range tasks {
		ib = ib.Values(values(task)...)
	}
	return ib
}

func updateTask(subjectID, id string, fields UpdateFields, now any, ph squirrel.PlaceholderFormat) squirrel.UpdateBuilder {
	ub := squirrel.Update(tasksTable).PlaceholderFormat(ph)
	if fields.Title != nil {
		ub = ub.Set("title", *fields.Title)
	}
	if fields.Description != nil {
		ub = ub.Set("description", *fields.Description)
	}
	if fields.Category != nil {
		ub = ub.Set("category", fields.Category.String())
	}
	if fields.Status != nil {
		ub = ub.Set("status", string(*fields.Status))
	}
	return ub.Set("updated_at", now).
		Where(squirrel.Eq{"subject_id": subjectID}).
		Where(squirrel.Eq{"id": id})
}

// prepareTasks fills ids and timestamps and rejects records the schema
// would refuse anyway.
func prepareTasks(tasks []*models.Task, now time.Time) error {
	for _, task := range tasks {
		if task == nil || task.SubjectID == "" || task.Title == "" || !task.Category.Valid() {
			return ErrInvalidTask
		}
		if task.Status == "" {
			task.Status = models.StatusPending
		}
		if !task.Status.Valid() {
			return ErrInvalidTask
		}
		if task.ID == "" {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			task.ID = id.String()
		}
		if task.CreatedAt.IsZero() {
			task.CreatedAt = now
		}
		if task.UpdatedAt.IsZero() {
			task.UpdatedAt = task.CreatedAt
		}
	}
	return nil
}

func validateUpdate(fields UpdateFields) error {
	if fields.Title != nil && *fields.Title == "" {
		return ErrInvalidTask
	}
	if fields.Category != nil && !fields.Category.Valid() {
		return ErrInvalidTask
	}
	if fields.Status != nil && !fields.Status.Valid() {
		return ErrInvalidTask
	}
	return nil
}
