package domain

import "time"

type CreateTaskItem struct {
	ReferenceID   int64
	ReferenceType ReferenceType
	Kind          TaskKind
	AssigneeID    int64
	Priority      Priority
	Deadline      time.Time
}

// UpdateTaskItem applies only the fields that are present; a nil field
// leaves the stored value untouched.
type UpdateTaskItem struct {
	TaskID      int64
	Status      *TaskStatus
	Description *string
}

type PriorityUpdateItem struct {
	TaskID   int64
	Priority Priority
}

type AssignByReferenceInput struct {
	ReferenceID   int64
	ReferenceType ReferenceType
	AssigneeID    int64
}

// DateWindow bounds FetchTasksByDate. Both instants are inclusive; only
// the end bound filters deadlines, open tasks due before Start stay
// visible.
type DateWindow struct {
	AssigneeIDs []int64
	Start       time.Time
	End         time.Time
}
