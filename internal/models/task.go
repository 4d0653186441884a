package models

import "time"

// Task is a persisted checklist entry for a subject. Personalized tasks are
// owned by exactly one generation run, custom tasks are authored by users.
type Task struct {
	ID             string
	SubjectID      string
	Title          string
	Category       Category
	Description    string
	Status         Status
	IsPersonalized bool
	IsCustom       bool
	GenerationID   string
	Position       int
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
