package store

import (
	"context"
	"sort"
	"sync"

	"workforce/internal/core/domain"
	"workforce/internal/core/ports"
)

// TaskStore is the in-memory backing: a mutex-guarded map keyed by task id
// with a monotonically increasing id counter, plus per-task activity and
// comment logs. List and find results are snapshots ordered by id so the
// reconciliation pass sees a stable store ordering.
type TaskStore struct {
	mu         sync.RWMutex
	nextID     int64
	tasks      map[int64]domain.Task
	activities map[int64][]domain.Activity
	comments   map[int64][]domain.Comment
}

var _ ports.TaskStore = (*TaskStore)(nil)

func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks:      make(map[int64]domain.Task),
		activities: make(map[int64][]domain.Activity),
		comments:   make(map[int64][]domain.Comment),
	}
}

func (s *TaskStore) GetTask(_ context.Context, id int64) (domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return domain.Task{}, &domain.TaskNotFoundError{ID: id}
	}
	return task, nil
}

func (s *TaskStore) SaveTask(_ context.Context, task domain.Task) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.ID == 0 {
		s.nextID++
		task.ID = s.nextID
	} else if task.ID > s.nextID {
		s.nextID = task.ID
	}
	// Histories live in their own logs, never on the stored entity.
	task.Activities = nil
	task.Comments = nil
	s.tasks[task.ID] = task
	return task, nil
}

func (s *TaskStore) ListTasks(_ context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(func(domain.Task) bool { return true }), nil
}

func (s *TaskStore) FindByReference(_ context.Context, referenceID int64, referenceType domain.ReferenceType) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(func(t domain.Task) bool {
		return t.ReferenceID == referenceID && t.ReferenceType == referenceType
	}), nil
}

func (s *TaskStore) FindByAssignees(_ context.Context, assigneeIDs []int64) ([]domain.Task, error) {
	wanted := make(map[int64]struct{}, len(assigneeIDs))
	for _, id := range assigneeIDs {
		wanted[id] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(func(t domain.Task) bool {
		_, ok := wanted[t.AssigneeID]
		return ok
	}), nil
}

func (s *TaskStore) AppendActivity(_ context.Context, taskID int64, entry domain.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities[taskID] = append(s.activities[taskID], entry)
	return nil
}

func (s *TaskStore) ListActivity(_ context.Context, taskID int64) ([]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.activities[taskID]
	out := make([]domain.Activity, len(entries))
	copy(out, entries)
	return out, nil
}

func (s *TaskStore) AppendComment(_ context.Context, taskID int64, comment domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments[taskID] = append(s.comments[taskID], comment)
	return nil
}

func (s *TaskStore) ListComments(_ context.Context, taskID int64) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := s.comments[taskID]
	out := make([]domain.Comment, len(comments))
	copy(out, comments)
	return out, nil
}

// snapshot must be called with at least a read lock held.
func (s *TaskStore) snapshot(keep func(domain.Task) bool) []domain.Task {
	out := make([]domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if keep(task) {
			out = append(out, task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
