package ports

import (
	"context"

	"workforce/internal/core/domain"
)

// TaskStore is the keyed storage contract the lifecycle service writes
// through. Implementations must be safe under concurrent callers; nothing
// is ever physically removed by any of these operations.
type TaskStore interface {
	// GetTask returns the task or a *domain.TaskNotFoundError.
	GetTask(ctx context.Context, id int64) (domain.Task, error)
	// SaveTask assigns an identifier when the task has none, otherwise
	// overwrites by identifier, and returns the stored task.
	SaveTask(ctx context.Context, task domain.Task) (domain.Task, error)
	// ListTasks returns a snapshot of all tasks at call time.
	ListTasks(ctx context.Context) ([]domain.Task, error)
	FindByReference(ctx context.Context, referenceID int64, referenceType domain.ReferenceType) ([]domain.Task, error)
	FindByAssignees(ctx context.Context, assigneeIDs []int64) ([]domain.Task, error)

	AppendActivity(ctx context.Context, taskID int64, entry domain.Activity) error
	ListActivity(ctx context.Context, taskID int64) ([]domain.Activity, error)
	AppendComment(ctx context.Context, taskID int64, comment domain.Comment) error
	ListComments(ctx context.Context, taskID int64) ([]domain.Comment, error)
}

type TaskService interface {
	GetTask(ctx context.Context, id int64) (domain.Task, error)
	ListTasksByPriority(ctx context.Context, priority domain.Priority) ([]domain.Task, error)
	CreateTasks(ctx context.Context, userName string, items []domain.CreateTaskItem) ([]domain.Task, error)
	UpdateTasks(ctx context.Context, userName string, items []domain.UpdateTaskItem) ([]domain.Task, error)
	UpdateTaskPriority(ctx context.Context, userName string, items []domain.PriorityUpdateItem) ([]domain.Task, error)
	AssignByReference(ctx context.Context, userName string, input domain.AssignByReferenceInput) (string, error)
	FetchTasksByDate(ctx context.Context, window domain.DateWindow) ([]domain.Task, error)
	CommentOnTask(ctx context.Context, taskID int64, userName, body string) error
}
