package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"workforce/internal/core/domain"
	"workforce/internal/core/ports"
)

// TaskStore backs the store port with MySQL. Append-only logs live in
// their own tables keyed by task id; AUTO_INCREMENT provides the id
// counter.
type TaskStore struct {
	db *sqlx.DB
}

var _ ports.TaskStore = (*TaskStore)(nil)

func NewTaskStore(db *sqlx.DB) *TaskStore {
	return &TaskStore{db: db}
}

type taskRow struct {
	ID            int64        `db:"id"`
	ReferenceID   int64        `db:"reference_id"`
	ReferenceType string       `db:"reference_type"`
	Kind          string       `db:"kind"`
	AssigneeID    int64        `db:"assignee_id"`
	Status        string       `db:"status"`
	Priority      string       `db:"priority"`
	Description   string       `db:"description"`
	Deadline      sql.NullTime `db:"deadline"`
}

type activityRow struct {
	OccurredAt  time.Time `db:"occurred_at"`
	UserName    string    `db:"user_name"`
	Description string    `db:"description"`
}

type commentRow struct {
	CommentedAt time.Time `db:"commented_at"`
	UserName    string    `db:"user_name"`
	Body        string    `db:"body"`
}

const selectTaskColumns = `id, reference_id, reference_type, kind, assignee_id, status, priority, description, deadline`

func (s *TaskStore) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	var row taskRow
	err := s.db.GetContext(ctx, &row, `SELECT `+selectTaskColumns+` FROM tasks WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, &domain.TaskNotFoundError{ID: id}
	}
	if err != nil {
		return domain.Task{}, err
	}
	return mapTaskRow(row), nil
}

func (s *TaskStore) SaveTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	var deadline sql.NullTime
	if !task.Deadline.IsZero() {
		deadline = sql.NullTime{Time: task.Deadline, Valid: true}
	}

	if task.ID == 0 {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO tasks (reference_id, reference_type, kind, assignee_id, status, priority, description, deadline)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			task.ReferenceID, task.ReferenceType, task.Kind, task.AssigneeID, task.Status, task.Priority, task.Description, deadline,
		)
		if err != nil {
			return domain.Task{}, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return domain.Task{}, err
		}
		task.ID = id
	} else {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO tasks (id, reference_id, reference_type, kind, assignee_id, status, priority, description, deadline)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			 ON DUPLICATE KEY UPDATE
			   reference_id = VALUES(reference_id),
			   reference_type = VALUES(reference_type),
			   kind = VALUES(kind),
			   assignee_id = VALUES(assignee_id),
			   status = VALUES(status),
			   priority = VALUES(priority),
			   description = VALUES(description),
			   deadline = VALUES(deadline)`,
			task.ID, task.ReferenceID, task.ReferenceType, task.Kind, task.AssigneeID, task.Status, task.Priority, task.Description, deadline,
		)
		if err != nil {
			return domain.Task{}, err
		}
	}

	task.Activities = nil
	task.Comments = nil
	return task, nil
}

func (s *TaskStore) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.selectTasks(ctx, `SELECT `+selectTaskColumns+` FROM tasks ORDER BY id`)
}

func (s *TaskStore) FindByReference(ctx context.Context, referenceID int64, referenceType domain.ReferenceType) ([]domain.Task, error) {
	return s.selectTasks(ctx,
		`SELECT `+selectTaskColumns+` FROM tasks WHERE reference_id = ? AND reference_type = ? ORDER BY id`,
		referenceID, referenceType,
	)
}

func (s *TaskStore) FindByAssignees(ctx context.Context, assigneeIDs []int64) ([]domain.Task, error) {
	if len(assigneeIDs) == 0 {
		return []domain.Task{}, nil
	}

	query, args, err := sqlx.In(`SELECT `+selectTaskColumns+` FROM tasks WHERE assignee_id IN (?) ORDER BY id`, assigneeIDs)
	if err != nil {
		return nil, err
	}
	return s.selectTasks(ctx, s.db.Rebind(query), args...)
}

func (s *TaskStore) AppendActivity(ctx context.Context, taskID int64, entry domain.Activity) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO task_activities (task_id, occurred_at, user_name, description) VALUES (?, ?, ?, ?)`,
		taskID, entry.At, entry.UserName, entry.Description,
	)
	return err
}

func (s *TaskStore) ListActivity(ctx context.Context, taskID int64) ([]domain.Activity, error) {
	var rows []activityRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT occurred_at, user_name, description FROM task_activities WHERE task_id = ? ORDER BY id`, taskID)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.Activity{At: row.OccurredAt, UserName: row.UserName, Description: row.Description})
	}
	return entries, nil
}

func (s *TaskStore) AppendComment(ctx context.Context, taskID int64, comment domain.Comment) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO task_comments (task_id, commented_at, user_name, body) VALUES (?, ?, ?, ?)`,
		taskID, comment.At, comment.UserName, comment.Body,
	)
	return err
}

func (s *TaskStore) ListComments(ctx context.Context, taskID int64) ([]domain.Comment, error) {
	var rows []commentRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT commented_at, user_name, body FROM task_comments WHERE task_id = ? ORDER BY id`, taskID)
	if err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, domain.Comment{At: row.CommentedAt, UserName: row.UserName, Body: row.Body})
	}
	return comments, nil
}

func (s *TaskStore) selectTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	var rows []taskRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRow(row))
	}
	return tasks, nil
}

func mapTaskRow(row taskRow) domain.Task {
	task := domain.Task{
		ID:            row.ID,
		ReferenceID:   row.ReferenceID,
		ReferenceType: domain.ReferenceType(row.ReferenceType),
		Kind:          domain.TaskKind(row.Kind),
		AssigneeID:    row.AssigneeID,
		Status:        domain.TaskStatus(row.Status),
		Priority:      domain.Priority(row.Priority),
		Description:   row.Description,
	}
	if row.Deadline.Valid {
		task.Deadline = row.Deadline.Time
	}
	return task
}
