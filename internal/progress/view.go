package progress

import (
	"sync"

	"github.com/adanyl0v/checklist/internal/models"
)

// View is an in-memory copy of a subject's checklist for in-process
// callers. The progress service summarizes through it; UI-side callers may
// apply status changes locally first and persist them afterwards, the last
// write wins.
type View struct {
	mu    sync.RWMutex
	tasks []*models.Task
	index map[string]int
}

func NewView(tasks []*models.Task) *View {
	v := &View{
		tasks: make([]*models.Task, 0, len(tasks)),
		index: make(map[string]int, len(tasks)),
	}
	for _, task := range tasks {
		if task == nil {
			continue
		}
		cp := *task
		v.index[cp.ID] = len(v.tasks)
		v.tasks = append(v.tasks, &cp)
	}
	return v
}

// Toggle flips the status of task id and returns the new status.
func (v *View) Toggle(id string) (models.Status, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	i, ok := v.index[id]
	if !ok {
		return "", false
	}
	v.tasks[i].Status = v.tasks[i].Status.Toggle()
	return v.tasks[i].Status, true
}

func (v *View) SetStatus(id string, status models.Status) bool {
	if !status.Valid() {
		return false
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	i, ok := v.index[id]
	if !ok {
		return false
	}
	v.tasks[i].Status = status
	return true
}

// Tasks returns copies of the tasks in their original order.
func (v *View) Tasks() []*models.Task {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]*models.Task, len(v.tasks))
	for i, task := range v.tasks {
		cp := *task
		out[i] = &cp
	}
	return out
}

func (v *View) Summary() Summary {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return Summarize(v.tasks)
}
