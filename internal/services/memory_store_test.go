package services_test

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/adanyl0v/checklist/internal/models"
	"github.com/adanyl0v/checklist/internal/store"
)

// memoryStore is a store.Store without transactions, used to exercise the
// reconcile path of the synchronizer.
type memoryStore struct {
	mu     sync.Mutex
	tasks  []*models.Task
	nextID int
	err    error

	// afterDelete runs once, right after the next Delete.
	afterDelete func(s *memoryStore)
}

func (s *memoryStore) add(tasks ...*models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, task := range tasks {
		s.nextID++
		cp := *task
		if cp.ID == "" {
			cp.ID = "m" + strconv.Itoa(s.nextID)
		}
		if cp.Status == "" {
			cp.Status = models.StatusPending
		}
		s.tasks = append(s.tasks, &cp)
	}
}

func matches(f store.Filter, t *models.Task) bool {
	switch {
	case f.ID != "" && t.ID != f.ID:
		return false
	case f.SubjectID != "" && t.SubjectID != f.SubjectID:
		return false
	case f.Personalized != nil && t.IsPersonalized != *f.Personalized:
		return false
	case f.Custom != nil && t.IsCustom != *f.Custom:
		return false
	case f.Category != "" && t.Category.String() != f.Category:
		return false
	case f.Status != "" && t.Status != f.Status:
		return false
	case f.ExceptGeneration != "" && t.GenerationID == f.ExceptGeneration:
		return false
	}
	return true
}

func (s *memoryStore) List(_ context.Context, filter store.Filter) ([]*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	var out []*models.Task
	for _, t := range s.tasks {
		if matches(filter, t) {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsCustom != out[j].IsCustom {
			return !out[i].IsCustom
		}
		return out[i].Position < out[j].Position
	})
	return out, nil
}

func (s *memoryStore) Get(ctx context.Context, subjectID, id string) (*models.Task, error) {
	tasks, err := s.List(ctx, store.Filter{SubjectID: subjectID, ID: id})
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, store.ErrTaskNotFound
	}
	return tasks[0], nil
}

func (s *memoryStore) Insert(_ context.Context, tasks []*models.Task) error {
	s.mu.Lock()
	if s.err != nil {
		s.mu.Unlock()
		return s.err
	}
	s.mu.Unlock()

	for _, task := range tasks {
		s.mu.Lock()
		s.nextID++
		task.ID = "m" + strconv.Itoa(s.nextID)
		s.mu.Unlock()
	}
	s.add(tasks...)
	return nil
}

func (s *memoryStore) Update(_ context.Context, subjectID, id string, fields store.UpdateFields) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	for _, t := range s.tasks {
		if t.SubjectID != subjectID || t.ID != id {
			continue
		}
		if fields.Title != nil {
			t.Title = *fields.Title
		}
		if fields.Description != nil {
			t.Description = *fields.Description
		}
		if fields.Category != nil {
			t.Category = *fields.Category
		}
		if fields.Status != nil {
			t.Status = *fields.Status
		}
		cp := *t
		return &cp, nil
	}
	return nil, store.ErrTaskNotFound
}

func (s *memoryStore) Delete(_ context.Context, filter store.Filter) (int64, error) {
	s.mu.Lock()
	if s.err != nil {
		s.mu.Unlock()
		return 0, s.err
	}

	kept := s.tasks[:0]
	var n int64
	for _, t := range s.tasks {
		if matches(filter, t) {
			n++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept

	hook := s.afterDelete
	s.afterDelete = nil
	s.mu.Unlock()

	if hook != nil {
		hook(s)
	}
	return n, nil
}

func (s *memoryStore) Close() error {
	return nil
}
