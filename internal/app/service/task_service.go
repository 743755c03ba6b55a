package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"workforce/internal/app/audit"
	"workforce/internal/core/domain"
	"workforce/internal/core/ports"
)

// TaskService orchestrates the task lifecycle: creation, mutation,
// reference reconciliation and the time-window views. It is the sole
// writer of audit entries; all state goes through the TaskStore.
type TaskService struct {
	store    ports.TaskStore
	composer *audit.Composer
	locks    *keyedLocks
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(store ports.TaskStore, composer *audit.Composer) *TaskService {
	return &TaskService{
		store:    store,
		composer: composer,
		locks:    newKeyedLocks(),
	}
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	task, err := s.store.GetTask(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if task.Activities, err = s.activityHistory(ctx, id); err != nil {
		return domain.Task{}, err
	}

	comments, err := s.store.ListComments(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	sort.SliceStable(comments, func(i, j int) bool { return comments[i].At.Before(comments[j].At) })
	task.Comments = comments

	return task, nil
}

func (s *TaskService) ListTasksByPriority(ctx context.Context, priority domain.Priority) ([]domain.Task, error) {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Priority == priority {
			matched = append(matched, task)
		}
	}
	return matched, nil
}

func (s *TaskService) CreateTasks(ctx context.Context, userName string, items []domain.CreateTaskItem) ([]domain.Task, error) {
	created := make([]domain.Task, 0, len(items))
	for _, item := range items {
		task := domain.Task{
			ReferenceID:   item.ReferenceID,
			ReferenceType: item.ReferenceType,
			Kind:          item.Kind,
			AssigneeID:    item.AssigneeID,
			Priority:      item.Priority,
			Deadline:      item.Deadline,
			Status:        domain.TaskStatusAssigned,
			Description:   "New task created.",
		}

		saved, err := s.store.SaveTask(ctx, task)
		if err != nil {
			return nil, err
		}

		zap.L().Info("task created",
			zap.String("user", userName),
			zap.Int64("task_id", saved.ID),
			zap.String("kind", string(saved.Kind)),
		)
		if err := s.store.AppendActivity(ctx, saved.ID, s.composer.TaskCreated(userName, saved.ID)); err != nil {
			return nil, err
		}

		if saved.Activities, err = s.activityHistory(ctx, saved.ID); err != nil {
			return nil, err
		}
		created = append(created, saved)
	}
	return created, nil
}

func (s *TaskService) UpdateTasks(ctx context.Context, userName string, items []domain.UpdateTaskItem) ([]domain.Task, error) {
	updated := make([]domain.Task, 0, len(items))
	for _, item := range items {
		task, err := s.applyUpdate(ctx, item.TaskID, func(task *domain.Task) {
			if item.Status != nil {
				task.Status = *item.Status
			}
			if item.Description != nil {
				task.Description = *item.Description
			}
		}, s.composer.TaskUpdated(userName, item.TaskID))
		if err != nil {
			return nil, err
		}

		zap.L().Info("task updated", zap.String("user", userName), zap.Int64("task_id", item.TaskID))
		updated = append(updated, task)
	}
	return updated, nil
}

func (s *TaskService) UpdateTaskPriority(ctx context.Context, userName string, items []domain.PriorityUpdateItem) ([]domain.Task, error) {
	updated := make([]domain.Task, 0, len(items))
	for _, item := range items {
		task, err := s.applyUpdate(ctx, item.TaskID, func(task *domain.Task) {
			task.Priority = item.Priority
		}, s.composer.PriorityChanged(userName, item.Priority, item.TaskID))
		if err != nil {
			return nil, err
		}

		zap.L().Info("task priority changed",
			zap.String("user", userName),
			zap.String("priority", string(item.Priority)),
			zap.Int64("task_id", item.TaskID),
		)
		updated = append(updated, task)
	}
	return updated, nil
}

func (s *TaskService) AssignByReference(ctx context.Context, userName string, input domain.AssignByReferenceInput) (string, error) {
	kinds, err := domain.KindsForReferenceType(input.ReferenceType)
	if err != nil {
		return "", err
	}

	unlock := s.locks.lock(fmt.Sprintf("ref/%s/%d", input.ReferenceType, input.ReferenceID))
	defer unlock()

	existing, err := s.store.FindByReference(ctx, input.ReferenceID, input.ReferenceType)
	if err != nil {
		return "", err
	}

	for _, kind := range kinds {
		// Cancelled tasks stay in history but never get reassigned.
		active := make([]domain.Task, 0, len(existing))
		for _, task := range existing {
			if task.Kind == kind && !task.Status.Terminal() {
				active = append(active, task)
			}
		}

		if len(active) == 0 {
			task := domain.Task{
				ReferenceID:   input.ReferenceID,
				ReferenceType: input.ReferenceType,
				Kind:          kind,
				AssigneeID:    input.AssigneeID,
				Status:        domain.TaskStatusAssigned,
			}
			if _, err := s.store.SaveTask(ctx, task); err != nil {
				return "", err
			}
			continue
		}

		// The first task in store order survives, the rest get cancelled.
		survivor, err := s.reconcileTask(ctx, active[0].ID, func(task *domain.Task) {
			task.AssigneeID = input.AssigneeID
			task.Status = domain.TaskStatusAssigned
		})
		if err != nil {
			return "", err
		}

		zap.L().Info("task reassigned",
			zap.String("user", userName),
			zap.Int64("task_id", survivor.ID),
			zap.String("kind", string(survivor.Kind)),
			zap.Int64("assignee_id", input.AssigneeID),
		)
		if err := s.store.AppendActivity(ctx, survivor.ID, s.composer.TaskReassigned(userName, survivor.ID, kind, input.AssigneeID)); err != nil {
			return "", err
		}

		for _, task := range active[1:] {
			if _, err := s.reconcileTask(ctx, task.ID, func(task *domain.Task) {
				task.Status = domain.TaskStatusCancelled
			}); err != nil {
				return "", err
			}
		}
	}

	return fmt.Sprintf("Tasks assigned successfully for reference %d", input.ReferenceID), nil
}

func (s *TaskService) FetchTasksByDate(ctx context.Context, window domain.DateWindow) ([]domain.Task, error) {
	tasks, err := s.store.FindByAssignees(ctx, window.AssigneeIDs)
	if err != nil {
		return nil, err
	}

	// The window means "due by": only the end bound filters, so open tasks
	// that were due before the window started stay visible.
	matched := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status.Terminal() {
			continue
		}
		if task.Deadline.After(window.End) {
			continue
		}
		matched = append(matched, task)
	}
	return matched, nil
}

func (s *TaskService) CommentOnTask(ctx context.Context, taskID int64, userName, body string) error {
	if _, err := s.store.GetTask(ctx, taskID); err != nil {
		return err
	}
	return s.store.AppendComment(ctx, taskID, s.composer.StampComment(userName, body))
}

// applyUpdate serializes the load-mutate-save sequence for one task id,
// appends the given audit entry and returns the task with its full sorted
// activity history attached.
func (s *TaskService) applyUpdate(ctx context.Context, taskID int64, mutate func(*domain.Task), entry domain.Activity) (domain.Task, error) {
	unlock := s.locks.lock(fmt.Sprintf("task/%d", taskID))
	defer unlock()

	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	mutate(&task)
	saved, err := s.store.SaveTask(ctx, task)
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.store.AppendActivity(ctx, taskID, entry); err != nil {
		return domain.Task{}, err
	}

	if saved.Activities, err = s.activityHistory(ctx, taskID); err != nil {
		return domain.Task{}, err
	}
	return saved, nil
}

// reconcileTask serializes one reconciliation write against concurrent
// updates to the same task: the task is reloaded under the task lock so
// the save never flushes a stale snapshot over a newer mutation. The
// reference lock is already held; task locks nest inside it, never the
// other way round.
func (s *TaskService) reconcileTask(ctx context.Context, taskID int64, mutate func(*domain.Task)) (domain.Task, error) {
	unlock := s.locks.lock(fmt.Sprintf("task/%d", taskID))
	defer unlock()

	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	mutate(&task)
	return s.store.SaveTask(ctx, task)
}

func (s *TaskService) activityHistory(ctx context.Context, taskID int64) ([]domain.Activity, error) {
	entries, err := s.store.ListActivity(ctx, taskID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].At.Before(entries[j].At) })
	return entries, nil
}
